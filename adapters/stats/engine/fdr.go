package engine

import (
	"math"
	"sort"
)

// benjaminiHochberg applies the Benjamini-Hochberg FDR correction to a
// vector of raw p-values. Undefined (NaN) entries follow the convention of
// R's p.adjust: they are excluded from the hypothesis count and the ranking,
// and come back as NaN in place, so no gene is dropped from the output.
func benjaminiHochberg(pvals []float64) []float64 {
	fdr := make([]float64, len(pvals))
	order := make([]int, 0, len(pvals))
	for i, p := range pvals {
		if math.IsNaN(p) {
			fdr[i] = math.NaN()
			continue
		}
		order = append(order, i)
	}
	m := len(order)
	if m == 0 {
		return fdr
	}

	sort.Slice(order, func(a, b int) bool {
		return pvals[order[a]] < pvals[order[b]]
	})

	// Walk from the largest p-value down, enforcing monotonicity with a
	// running minimum (step-up procedure).
	runningMin := 1.0
	for rank := m; rank >= 1; rank-- {
		i := order[rank-1]
		adjusted := pvals[i] * float64(m) / float64(rank)
		if adjusted > 1 {
			adjusted = 1
		}
		if adjusted < runningMin {
			runningMin = adjusted
		} else {
			adjusted = runningMin
		}
		fdr[i] = adjusted
	}
	return fdr
}
