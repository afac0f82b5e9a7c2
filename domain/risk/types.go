package risk

import (
	"oncoexpr/domain/core"
)

// Label is a per-sample risk category. The zero value marks an undefined
// label (NaN expression for the stratifying gene) and is never coerced to
// either defined level.
type Label string

const (
	LabelLow  Label = "Low Risk"
	LabelHigh Label = "High Risk"
)

// Defined reports whether the label carries one of the two risk levels
func (l Label) Defined() bool {
	return l == LabelLow || l == LabelHigh
}

// Levels returns the defined labels with "Low Risk" as the fixed
// reference/first level, regardless of computation order.
func Levels() []Label {
	return []Label{LabelLow, LabelHigh}
}

// Direction encodes the biological role of the stratifying gene
type Direction string

const (
	// LowRiskHighExpr: protective / tumor-suppressor semantics,
	// low expression means High Risk
	LowRiskHighExpr Direction = "low_risk_high_expr"
	// HighRiskHighExpr: oncogenic semantics,
	// high expression means High Risk
	HighRiskHighExpr Direction = "high_risk_high_expr"
)

// Valid reports whether the direction is one of the two recognized values
func (d Direction) Valid() bool {
	return d == LowRiskHighExpr || d == HighRiskHighExpr
}

// Assignment is the risk label for one sample
type Assignment struct {
	SampleID string `json:"sample_id"`
	Label    Label  `json:"label"`
}

// Stratification is the output of one risk-prediction call: one assignment
// per sample, in dataset sample order. It never mutates the dataset;
// attaching labels to clinical metadata is caller responsibility.
type Stratification struct {
	RunID       core.RunID     `json:"run_id"`
	Gene        string         `json:"gene"`
	Direction   Direction      `json:"direction"`
	Cutoff      float64        `json:"cutoff"` // NaN-omitted median of the gene row
	Assignments []Assignment   `json:"assignments"`
	ComputedAt  core.Timestamp `json:"computed_at"`
}

// Labels returns just the label vector, in dataset sample order
func (s *Stratification) Labels() []Label {
	labels := make([]Label, len(s.Assignments))
	for i, a := range s.Assignments {
		labels[i] = a.Label
	}
	return labels
}
