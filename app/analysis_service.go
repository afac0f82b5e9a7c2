package app

import (
	"context"

	"oncoexpr/domain/dataset"
	"oncoexpr/domain/diffexpr"
	"oncoexpr/domain/risk"
	"oncoexpr/internal"
	"oncoexpr/ports"
)

// AnalysisService orchestrates the two analyses a caller runs against a
// validated dataset: differential expression (with classification) and
// single-gene risk stratification. The service is stateless across calls.
type AnalysisService struct {
	analyzer   ports.DifferentialAnalyzer
	stratifier ports.RiskStratifier
	thresholds diffexpr.Thresholds
	logger     *internal.Logger
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(analyzer ports.DifferentialAnalyzer, stratifier ports.RiskStratifier, thresholds diffexpr.Thresholds, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &AnalysisService{
		analyzer:   analyzer,
		stratifier: stratifier,
		thresholds: thresholds,
		logger:     logger,
	}
}

// RunDifferentialExpression runs the engine and classifies every gene row
// against the configured thresholds. The returned table is ready for the
// volcano collaborator and for tabular export.
func (s *AnalysisService) RunDifferentialExpression(ctx context.Context, set *dataset.ExpressionSet) (*diffexpr.Table, error) {
	s.logger.Info("differential expression: %s", set.Describe())

	table, err := s.analyzer.DifferentialExpression(ctx, set)
	if err != nil {
		return nil, err
	}
	classified := diffexpr.Classify(table, s.thresholds)

	var up, down int
	for _, r := range classified.Rows {
		switch r.Category {
		case diffexpr.CategoryUpregulated:
			up++
		case diffexpr.CategoryDownregulated:
			down++
		}
	}
	s.logger.Info("run %s: %d upregulated, %d downregulated of %d genes",
		classified.RunID, up, down, classified.Len())

	return classified, nil
}

// StratifyRisk computes per-sample risk labels for one gene. Labels are
// returned to the caller; attaching them to clinical metadata is the
// caller's decision.
func (s *AnalysisService) StratifyRisk(ctx context.Context, set *dataset.ExpressionSet, gene string, direction risk.Direction) (*risk.Stratification, error) {
	strat, err := s.stratifier.PredictRisk(ctx, set, gene, direction)
	if err != nil {
		return nil, err
	}

	var high int
	for _, a := range strat.Assignments {
		if a.Label == risk.LabelHigh {
			high++
		}
	}
	s.logger.Info("run %s: %s split at %g, %d/%d samples high risk",
		strat.RunID, gene, strat.Cutoff, high, len(strat.Assignments))

	return strat, nil
}
