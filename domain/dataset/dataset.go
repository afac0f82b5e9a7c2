package dataset

import (
	"fmt"
	"sort"
	"strings"

	"oncoexpr/domain/core"
)

// ExpressionSet is the canonical input to all analyses: a validated
// expression matrix joined with per-sample clinical metadata and a cohort
// label. It is immutable after construction and safe to share across
// concurrent analyses.
type ExpressionSet struct {
	matrix      Matrix
	clinical    *ClinicalTable
	cohortLabel string
	geneIndex   map[string]int
	sampleIndex map[string]int
}

// New validates the matrix/metadata pair and returns an immutable handle.
// The clinical sample-identifier set must exactly equal the matrix column
// set; genes and samples must be uniquely identified; a Diagnosis-equivalent
// clinical field must exist. Violations surface as schema errors.
func New(matrix Matrix, clinical *ClinicalTable, cohortLabel string) (*ExpressionSet, error) {
	if matrix.GeneCount() < 1 {
		return nil, core.NewSchemaError("expression matrix has no gene rows")
	}
	if matrix.SampleCount() < 1 {
		return nil, core.NewSchemaError("expression matrix has no sample columns")
	}
	if len(matrix.GeneIDs) != matrix.GeneCount() {
		return nil, core.NewSchemaError(fmt.Sprintf("%d gene ids for %d matrix rows", len(matrix.GeneIDs), matrix.GeneCount()))
	}
	for i, row := range matrix.Data {
		if len(row) != matrix.SampleCount() {
			return nil, core.NewSchemaError(fmt.Sprintf("gene row %q has %d values, expected %d", matrix.GeneIDs[i], len(row), matrix.SampleCount()))
		}
	}

	geneIndex := make(map[string]int, matrix.GeneCount())
	for i, gene := range matrix.GeneIDs {
		if _, dup := geneIndex[gene]; dup {
			return nil, core.NewSchemaError(fmt.Sprintf("duplicate gene id %q", gene))
		}
		geneIndex[gene] = i
	}
	sampleIndex := make(map[string]int, matrix.SampleCount())
	for j, sample := range matrix.SampleIDs {
		if _, dup := sampleIndex[sample]; dup {
			return nil, core.NewSchemaError(fmt.Sprintf("duplicate sample id %q", sample))
		}
		sampleIndex[sample] = j
	}

	if clinical == nil {
		return nil, core.NewSchemaError("clinical metadata is required")
	}
	if _, ok := clinical.DiagnosisField(); !ok {
		return nil, core.NewSchemaError("clinical metadata lacks a Diagnosis field")
	}
	if err := checkSampleSets(sampleIndex, clinical); err != nil {
		return nil, err
	}

	return &ExpressionSet{
		matrix:      matrix,
		clinical:    clinical,
		cohortLabel: cohortLabel,
		geneIndex:   geneIndex,
		sampleIndex: sampleIndex,
	}, nil
}

// checkSampleSets verifies the clinical identifier set equals the matrix
// column set, reporting the symmetric difference on mismatch.
func checkSampleSets(sampleIndex map[string]int, clinical *ClinicalTable) error {
	var onlyClinical, onlyMatrix []string
	clinicalIDs := clinical.SampleIDs()
	seen := make(map[string]bool, len(clinicalIDs))
	for _, id := range clinicalIDs {
		seen[id] = true
		if _, ok := sampleIndex[id]; !ok {
			onlyClinical = append(onlyClinical, id)
		}
	}
	for id := range sampleIndex {
		if !seen[id] {
			onlyMatrix = append(onlyMatrix, id)
		}
	}
	if len(onlyClinical) == 0 && len(onlyMatrix) == 0 {
		return nil
	}
	sort.Strings(onlyClinical)
	sort.Strings(onlyMatrix)
	return core.NewSchemaError(fmt.Sprintf(
		"sample identifier mismatch: %d only in clinical metadata %v, %d only in expression matrix %v",
		len(onlyClinical), onlyClinical, len(onlyMatrix), onlyMatrix))
}

// Expression returns the expression matrix
func (s *ExpressionSet) Expression() Matrix {
	return s.matrix
}

// Clinical returns the per-sample metadata table
func (s *ExpressionSet) Clinical() *ClinicalTable {
	return s.clinical
}

// CohortLabel returns the display label for this cohort
func (s *ExpressionSet) CohortLabel() string {
	return s.cohortLabel
}

// GeneCount returns the number of genes
func (s *ExpressionSet) GeneCount() int {
	return s.matrix.GeneCount()
}

// SampleCount returns the number of samples
func (s *ExpressionSet) SampleCount() int {
	return s.matrix.SampleCount()
}

// SampleIDs returns the sample identifiers in matrix column order
func (s *ExpressionSet) SampleIDs() []string {
	ids := make([]string, len(s.matrix.SampleIDs))
	copy(ids, s.matrix.SampleIDs)
	return ids
}

// GeneIDs returns the gene identifiers in matrix row order
func (s *ExpressionSet) GeneIDs() []string {
	ids := make([]string, len(s.matrix.GeneIDs))
	copy(ids, s.matrix.GeneIDs)
	return ids
}

// GeneRow returns a copy of the expression values for a gene, in matrix
// sample order
func (s *ExpressionSet) GeneRow(gene string) ([]float64, bool) {
	i, ok := s.geneIndex[gene]
	if !ok {
		return nil, false
	}
	return s.matrix.Row(i), true
}

// HasGene reports whether a gene is a row identifier of the matrix
func (s *ExpressionSet) HasGene(gene string) bool {
	_, ok := s.geneIndex[gene]
	return ok
}

// GroupIndices partitions the sample columns into tumor, normal and
// unassigned index sets, each in matrix column order.
func (s *ExpressionSet) GroupIndices() (tumor, normal, unassigned []int) {
	for j, sample := range s.matrix.SampleIDs {
		switch s.clinical.Group(sample) {
		case GroupTumor:
			tumor = append(tumor, j)
		case GroupNormal:
			normal = append(normal, j)
		default:
			unassigned = append(unassigned, j)
		}
	}
	return tumor, normal, unassigned
}

// Describe produces a human-readable summary of the dataset
func (s *ExpressionSet) Describe() string {
	tumor, normal, unassigned := s.GroupIndices()
	var b strings.Builder
	fmt.Fprintf(&b, "ExpressionSet %q: %d genes x %d samples", s.cohortLabel, s.GeneCount(), s.SampleCount())
	fmt.Fprintf(&b, " (tumor=%d, normal=%d", len(tumor), len(normal))
	if len(unassigned) > 0 {
		fmt.Fprintf(&b, ", unassigned=%d", len(unassigned))
	}
	b.WriteString(")")
	return b.String()
}
