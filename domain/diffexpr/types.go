package diffexpr

import (
	"math"

	"oncoexpr/domain/core"
)

// Category is the significance class of a tested gene
type Category string

const (
	CategoryUpregulated    Category = "Upregulated"
	CategoryDownregulated  Category = "Downregulated"
	CategoryNotSignificant Category = "Not Significant"
)

// Result is one differential-expression row. PValue and FDR are NaN when the
// per-gene test was degenerate; the gene is still reported.
type Result struct {
	Gene     string   `json:"gene"`
	Log2FC   float64  `json:"log2_fc"`
	PValue   float64  `json:"p_value"`
	FDR      float64  `json:"fdr"`
	Category Category `json:"category,omitempty"`
}

// Defined reports whether the gene's test produced a usable p-value
func (r Result) Defined() bool {
	return !math.IsNaN(r.PValue)
}

// NegLog10P returns -log10 of the raw p-value, NaN when the p-value is
// undefined. Consumers (volcano plotting) special-case NaN points.
func (r Result) NegLog10P() float64 {
	if math.IsNaN(r.PValue) {
		return math.NaN()
	}
	return -math.Log10(r.PValue)
}

// Table is the output of one differential-expression run: one row per input
// gene, sorted ascending by raw p-value with undefined p-values last.
// Produced fresh on every invocation, never cached.
type Table struct {
	RunID         core.RunID     `json:"run_id"`
	Cohort        string         `json:"cohort"`
	TumorCount    int            `json:"tumor_count"`
	NormalCount   int            `json:"normal_count"`
	ExcludedCount int            `json:"excluded_count"` // samples matching neither or both diagnosis patterns
	Rows          []Result       `json:"rows"`
	ComputedAt    core.Timestamp `json:"computed_at"`
}

// Len returns the number of gene rows
func (t *Table) Len() int {
	return len(t.Rows)
}
