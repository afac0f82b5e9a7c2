package engine

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenjaminiHochberg_KnownVector(t *testing.T) {
	// matches R: p.adjust(c(0.005, 0.01, 0.03, 0.9), method = "BH")
	got := benjaminiHochberg([]float64{0.005, 0.01, 0.03, 0.9})
	want := []float64{0.02, 0.02, 0.04, 0.9}
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-12, "index %d", i)
	}
}

func TestBenjaminiHochberg_EqualPValues(t *testing.T) {
	got := benjaminiHochberg([]float64{0.01, 0.01, 0.01, 0.01, 0.01})
	for i, v := range got {
		assert.InDelta(t, 0.01, v, 1e-12, "index %d", i)
	}
}

func TestBenjaminiHochberg_NaNConvention(t *testing.T) {
	// NaN entries are excluded from m and ranking, like R's p.adjust on NA
	got := benjaminiHochberg([]float64{0.02, math.NaN(), 0.04})
	assert.InDelta(t, 0.04, got[0], 1e-12)
	assert.True(t, math.IsNaN(got[1]))
	assert.InDelta(t, 0.04, got[2], 1e-12)
}

func TestBenjaminiHochberg_CappedAtOne(t *testing.T) {
	got := benjaminiHochberg([]float64{0.6, 0.9, 0.99})
	for _, v := range got {
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestBenjaminiHochberg_MonotoneOverSortedP(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	pvals := make([]float64, 200)
	for i := range pvals {
		pvals[i] = rng.Float64()
	}
	fdr := benjaminiHochberg(pvals)

	type pair struct{ p, q float64 }
	pairs := make([]pair, len(pvals))
	for i := range pvals {
		pairs[i] = pair{pvals[i], fdr[i]}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].p < pairs[b].p })
	for i := 1; i < len(pairs); i++ {
		assert.GreaterOrEqual(t, pairs[i].q, pairs[i-1].q,
			"FDR must be non-decreasing over ascending p-values")
	}
	for _, pr := range pairs {
		assert.GreaterOrEqual(t, pr.q, pr.p, "BH never shrinks a p-value")
	}
}

func TestBenjaminiHochberg_Degenerate(t *testing.T) {
	assert.Empty(t, benjaminiHochberg(nil))

	allNaN := benjaminiHochberg([]float64{math.NaN(), math.NaN()})
	assert.True(t, math.IsNaN(allNaN[0]))
	assert.True(t, math.IsNaN(allNaN[1]))

	single := benjaminiHochberg([]float64{0.03})
	assert.InDelta(t, 0.03, single[0], 1e-12)
}
