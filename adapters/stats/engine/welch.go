package engine

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// finiteValues picks the non-NaN values of a gene row at the given sample
// indices (pairwise NaN omission).
func finiteValues(row []float64, indices []int) []float64 {
	out := make([]float64, 0, len(indices))
	for _, j := range indices {
		if v := row[j]; !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// groupMean returns the mean of an already NaN-omitted group, NaN when the
// group has no finite values left.
func groupMean(values []float64) float64 {
	m, err := stats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// welchTTest returns the two-tailed p-value of Welch's unequal-variance
// t-test between two NaN-omitted groups. The test is undefined (NaN) when a
// group has fewer than two finite values or both groups have zero variance.
func welchTTest(group1, group2 []float64) float64 {
	n1 := float64(len(group1))
	n2 := float64(len(group2))
	if n1 < 2 || n2 < 2 {
		return math.NaN()
	}

	mean1, err := stats.Mean(group1)
	if err != nil {
		return math.NaN()
	}
	mean2, err := stats.Mean(group2)
	if err != nil {
		return math.NaN()
	}
	var1, err := stats.SampleVariance(group1)
	if err != nil {
		return math.NaN()
	}
	var2, err := stats.SampleVariance(group2)
	if err != nil {
		return math.NaN()
	}

	se := math.Sqrt(var1/n1 + var2/n2)
	if se == 0 || math.IsNaN(se) {
		return math.NaN()
	}
	tStat := (mean1 - mean2) / se

	// Welch-Satterthwaite degrees of freedom
	num := math.Pow(var1/n1+var2/n2, 2)
	den := math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1)
	if den == 0 {
		return math.NaN()
	}
	df := num / den
	if df <= 0 || math.IsNaN(df) {
		return math.NaN()
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	return 2 * tDist.CDF(-math.Abs(tStat))
}
