package excel

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"oncoexpr/domain/diffexpr"
	"oncoexpr/domain/risk"
)

func TestWriteResults(t *testing.T) {
	table := &diffexpr.Table{
		Cohort: "TCGA-BRCA",
		Rows: []diffexpr.Result{
			{Gene: "ERBB2", Log2FC: 2.5, PValue: 0.001, FDR: 0.01, Category: diffexpr.CategoryUpregulated},
			{Gene: "CONST", Log2FC: 0, PValue: math.NaN(), FDR: math.NaN(), Category: diffexpr.CategoryNotSignificant},
		},
	}
	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, NewWriter().WriteResults(path, table))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "DifferentialExpression"
	cell := func(ref string) string {
		v, err := f.GetCellValue(sheet, ref)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Gene", cell("A1"))
	assert.Equal(t, "Category", cell("E1"))
	assert.Equal(t, "ERBB2", cell("A2"))
	assert.Equal(t, "2.5", cell("B2"))
	assert.Equal(t, "Upregulated", cell("E2"))
	// undefined statistics export as the NA marker
	assert.Equal(t, "NA", cell("C3"))
	assert.Equal(t, "NA", cell("D3"))
}

func TestWriteStratification(t *testing.T) {
	strat := &risk.Stratification{
		Gene: "ERBB2",
		Assignments: []risk.Assignment{
			{SampleID: "T01", Label: risk.LabelHigh},
			{SampleID: "N01", Label: risk.LabelLow},
			{SampleID: "X01", Label: ""},
		},
	}
	path := filepath.Join(t.TempDir(), "risk.xlsx")
	require.NoError(t, NewWriter().WriteStratification(path, strat))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	const sheet = "RiskStratification"
	v, err := f.GetCellValue(sheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "High Risk", v)
	v, err = f.GetCellValue(sheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "NA", v)
}
