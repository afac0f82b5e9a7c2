package engine

import (
	"context"
	"math"

	"github.com/montanaflynn/stats"

	"oncoexpr/domain/core"
	"oncoexpr/domain/dataset"
	"oncoexpr/domain/risk"
)

// PredictRisk labels every sample Low/High Risk by splitting the given
// gene's expression at its NaN-omitted cohort median. The direction encodes
// the gene's biological role: for a protective gene (LowRiskHighExpr) low
// expression is High Risk, for an oncogene (HighRiskHighExpr) high
// expression is. An unrecognized direction fails fast rather than silently
// falling through to the oncogene branch.
//
// Samples with NaN expression keep an undefined label. The dataset is never
// mutated; attaching labels to clinical metadata is up to the caller.
func (e *Engine) PredictRisk(ctx context.Context, set *dataset.ExpressionSet, gene string, direction risk.Direction) (*risk.Stratification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !direction.Valid() {
		return nil, core.NewUnknownDirectionError(string(direction))
	}
	values, ok := set.GeneRow(gene)
	if !ok {
		return nil, core.NewUnknownGeneError(gene)
	}

	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	cutoff := math.NaN()
	if len(finite) > 0 {
		m, err := stats.Median(finite)
		if err != nil {
			return nil, err
		}
		cutoff = m
	}

	samples := set.SampleIDs()
	assignments := make([]risk.Assignment, len(values))
	for j, v := range values {
		assignments[j] = risk.Assignment{
			SampleID: samples[j],
			Label:    splitLabel(v, cutoff, direction),
		}
	}

	e.logger.Debug("cohort %s: stratified %d samples on %s (cutoff=%g, direction=%s)",
		set.CohortLabel(), len(assignments), gene, cutoff, direction)

	return &risk.Stratification{
		RunID:       core.NewRunID(),
		Gene:        gene,
		Direction:   direction,
		Cutoff:      cutoff,
		Assignments: assignments,
		ComputedAt:  core.Now(),
	}, nil
}

// splitLabel applies the median-split rule. Both branches use a strict
// comparison for High Risk, so a value exactly at the cutoff is Low Risk
// either way; this tie-break determines group balance at the median.
func splitLabel(value, cutoff float64, direction risk.Direction) risk.Label {
	if math.IsNaN(value) || math.IsNaN(cutoff) {
		return ""
	}
	if direction == risk.LowRiskHighExpr {
		if value < cutoff {
			return risk.LabelHigh
		}
		return risk.LabelLow
	}
	if value > cutoff {
		return risk.LabelHigh
	}
	return risk.LabelLow
}
