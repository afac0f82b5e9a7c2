package engine

import (
	"context"
	"math"
	"sort"

	"golang.org/x/sync/errgroup"

	"oncoexpr/domain/core"
	"oncoexpr/domain/dataset"
	"oncoexpr/domain/diffexpr"
)

// minGroupSize is the smallest diagnosis group the unequal-variance
// t-statistic tolerates; below this the variance estimate is unstable.
const minGroupSize = 3

// DifferentialExpression computes per-gene effect size and significance
// between the tumor and normal groups of the dataset, applies BH FDR
// correction across all genes, and returns one row per input gene sorted
// ascending by raw p-value with undefined p-values last.
//
// Samples whose diagnosis matches neither or both group patterns are
// excluded from both groups with a warning; the count is surfaced on the
// result table. Degenerate per-gene tests are recovered as NaN rows, never
// as a failed call.
func (e *Engine) DifferentialExpression(ctx context.Context, set *dataset.ExpressionSet) (*diffexpr.Table, error) {
	tumor, normal, unassigned := set.GroupIndices()
	if len(unassigned) > 0 {
		e.logger.Warn("cohort %s: excluding %d sample(s) whose diagnosis matches neither or both groups",
			set.CohortLabel(), len(unassigned))
	}
	if len(tumor) < minGroupSize {
		return nil, core.NewInsufficientSamplesError("tumor", len(tumor), minGroupSize)
	}
	if len(normal) < minGroupSize {
		return nil, core.NewInsufficientSamplesError("normal", len(normal), minGroupSize)
	}

	matrix := set.Expression()
	rows := make([]diffexpr.Result, matrix.GeneCount())

	// Gene rows are independent; fan out across a bounded worker pool and
	// write results by index so the output never depends on scheduling.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i := 0; i < matrix.GeneCount(); i++ {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := matrix.Data[i]
			tumorVals := finiteValues(row, tumor)
			normalVals := finiteValues(row, normal)
			rows[i] = diffexpr.Result{
				Gene:   matrix.GeneIDs[i],
				Log2FC: groupMean(tumorVals) - groupMean(normalVals),
				PValue: welchTTest(tumorVals, normalVals),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	pvals := make([]float64, len(rows))
	for i, r := range rows {
		pvals[i] = r.PValue
	}
	fdrs := benjaminiHochberg(pvals)
	for i := range rows {
		rows[i].FDR = fdrs[i]
	}

	// Ascending raw p-value, NaN last; stable so ties keep input gene order
	sort.SliceStable(rows, func(a, b int) bool {
		pa, pb := rows[a].PValue, rows[b].PValue
		if math.IsNaN(pa) {
			return false
		}
		if math.IsNaN(pb) {
			return true
		}
		return pa < pb
	})

	e.logger.Info("cohort %s: tested %d genes (tumor=%d, normal=%d)",
		set.CohortLabel(), len(rows), len(tumor), len(normal))

	return &diffexpr.Table{
		RunID:         core.NewRunID(),
		Cohort:        set.CohortLabel(),
		TumorCount:    len(tumor),
		NormalCount:   len(normal),
		ExcludedCount: len(unassigned),
		Rows:          rows,
		ComputedAt:    core.Now(),
	}, nil
}
