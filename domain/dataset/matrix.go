package dataset

// Matrix represents dense expression data ready for statistical analysis.
// Values are assumed to be on a log2 scale already; NaN marks a missing
// measurement and is omitted pairwise during statistics.
type Matrix struct {
	Data      [][]float64 // rows = genes, cols = samples
	GeneIDs   []string    // row gene identifiers
	SampleIDs []string    // column sample identifiers
}

// GeneCount returns the number of genes (rows)
func (m Matrix) GeneCount() int {
	return len(m.Data)
}

// SampleCount returns the number of samples (columns)
func (m Matrix) SampleCount() int {
	return len(m.SampleIDs)
}

// Row returns a copy of the expression values for row i
func (m Matrix) Row(i int) []float64 {
	row := make([]float64, len(m.Data[i]))
	copy(row, m.Data[i])
	return row
}
