package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oncoexpr/adapters/stats/engine"
	"oncoexpr/domain/core"
	"oncoexpr/domain/dataset"
	"oncoexpr/domain/diffexpr"
	"oncoexpr/domain/risk"
	"oncoexpr/internal"
	"oncoexpr/internal/testkit"
)

func newTestService() *AnalysisService {
	eng := engine.NewWithConfig(2, internal.NewLogger(internal.LogLevelError))
	return NewAnalysisService(eng, eng, diffexpr.DefaultThresholds(), internal.NewLogger(internal.LogLevelError))
}

func plantedCohort(t *testing.T) *dataset.ExpressionSet {
	t.Helper()
	set, err := testkit.NewCohortGenerator(testkit.CohortConfig{
		BackgroundGenes: 40,
		TumorSamples:    12,
		NormalSamples:   12,
		Planted: []testkit.PlantedGene{
			{ID: "ERBB2", TumorShift: 3.0},
			{ID: "CDH1", TumorShift: -3.0},
		},
		Seed:        99,
		CohortLabel: "TCGA-BRCA",
	}).Generate()
	require.NoError(t, err)
	return set
}

func TestRunDifferentialExpression_ClassifiesPlantedGenes(t *testing.T) {
	svc := newTestService()
	set := plantedCohort(t)

	table, err := svc.RunDifferentialExpression(context.Background(), set)
	require.NoError(t, err)
	require.Equal(t, set.GeneCount(), table.Len())

	byGene := make(map[string]diffexpr.Result)
	for _, r := range table.Rows {
		byGene[r.Gene] = r
	}
	assert.Equal(t, diffexpr.CategoryUpregulated, byGene["ERBB2"].Category)
	assert.Equal(t, diffexpr.CategoryDownregulated, byGene["CDH1"].Category)

	// every row is classified; nulls dominate the background
	var notSig int
	for _, r := range table.Rows {
		assert.NotEqual(t, diffexpr.Category(""), r.Category)
		if r.Category == diffexpr.CategoryNotSignificant {
			notSig++
		}
	}
	assert.Greater(t, notSig, 30)
}

func TestRunDifferentialExpression_PropagatesEngineErrors(t *testing.T) {
	svc := newTestService()
	cfg := testkit.DefaultCohortConfig()
	cfg.TumorSamples = 2 // below the engine minimum
	set, err := testkit.NewCohortGenerator(cfg).Generate()
	require.NoError(t, err)

	_, err = svc.RunDifferentialExpression(context.Background(), set)
	require.Error(t, err)
	assert.True(t, core.IsInsufficientSamplesError(err))
}

func TestStratifyRisk_OncogeneSplitsTumorsHigh(t *testing.T) {
	svc := newTestService()
	set := plantedCohort(t)

	strat, err := svc.StratifyRisk(context.Background(), set, "ERBB2", risk.HighRiskHighExpr)
	require.NoError(t, err)
	require.Len(t, strat.Assignments, set.SampleCount())

	// ERBB2 is shifted +3 in tumors, so nearly all tumor samples sit above
	// the cohort median
	tumorHigh := 0
	for _, a := range strat.Assignments {
		diagnosis, _ := set.Clinical().Diagnosis(a.SampleID)
		if dataset.ClassifyDiagnosis(diagnosis) == dataset.GroupTumor && a.Label == risk.LabelHigh {
			tumorHigh++
		}
	}
	assert.GreaterOrEqual(t, tumorHigh, 10)
}

func TestStratifyRisk_AttachingLabelsIsCallerResponsibility(t *testing.T) {
	svc := newTestService()
	set := plantedCohort(t)

	strat, err := svc.StratifyRisk(context.Background(), set, "ERBB2", risk.HighRiskHighExpr)
	require.NoError(t, err)

	// the service never touches the metadata...
	assert.Equal(t, []string{"Diagnosis"}, set.Clinical().Fields())

	// ...but the caller may attach the labels as a new clinical field
	labels := make(map[string]string, len(strat.Assignments))
	for _, a := range strat.Assignments {
		if a.Label.Defined() {
			labels[a.SampleID] = string(a.Label)
		}
	}
	require.NoError(t, set.Clinical().AddField("Risk", labels))
	v, ok := set.Clinical().Value(strat.Assignments[0].SampleID, "Risk")
	assert.True(t, ok)
	assert.Equal(t, string(strat.Assignments[0].Label), v)
}

func TestStratifyRisk_PropagatesValidationErrors(t *testing.T) {
	svc := newTestService()
	set := plantedCohort(t)

	_, err := svc.StratifyRisk(context.Background(), set, "MISSING", risk.HighRiskHighExpr)
	assert.True(t, core.IsUnknownGeneError(err))

	_, err = svc.StratifyRisk(context.Background(), set, "ERBB2", risk.Direction("bogus"))
	assert.True(t, core.IsUnknownDirectionError(err))
}
