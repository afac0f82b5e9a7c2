package ports

import (
	"context"

	"oncoexpr/domain/dataset"
	"oncoexpr/domain/diffexpr"
	"oncoexpr/domain/risk"
)

// DifferentialAnalyzer computes per-gene differential expression between the
// tumor and normal diagnosis groups of a validated dataset.
type DifferentialAnalyzer interface {
	DifferentialExpression(ctx context.Context, set *dataset.ExpressionSet) (*diffexpr.Table, error)
}

// RiskStratifier assigns per-sample risk labels from a single gene's
// expression relative to the cohort median.
type RiskStratifier interface {
	PredictRisk(ctx context.Context, set *dataset.ExpressionSet, gene string, direction risk.Direction) (*risk.Stratification, error)
}
