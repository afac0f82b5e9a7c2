package diffexpr

// Thresholds configures significance classification
type Thresholds struct {
	FoldChange float64 // absolute log2 fold-change cut, strict
	PValue     float64 // raw p-value cut, strict
}

// DefaultThresholds are the fixed cuts the volcano collaborator expects
func DefaultThresholds() Thresholds {
	return Thresholds{FoldChange: 1.0, PValue: 0.05}
}

// Classify maps each row's (effect size, p-value) pair to a category and
// returns a new table; the input is left untouched. Rows with an undefined
// p-value classify as Not Significant since the comparison is false.
func Classify(t *Table, th Thresholds) *Table {
	out := *t
	out.Rows = make([]Result, len(t.Rows))
	for i, r := range t.Rows {
		r.Category = classifyRow(r, th)
		out.Rows[i] = r
	}
	return &out
}

func classifyRow(r Result, th Thresholds) Category {
	// NaN p-values fail both comparisons and fall through to Not Significant
	switch {
	case r.Log2FC > th.FoldChange && r.PValue < th.PValue:
		return CategoryUpregulated
	case r.Log2FC < -th.FoldChange && r.PValue < th.PValue:
		return CategoryDownregulated
	default:
		return CategoryNotSignificant
	}
}
