package excel

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"oncoexpr/domain/diffexpr"
	"oncoexpr/domain/risk"
)

// Writer exports analysis outputs as xlsx workbooks for downstream
// consumers. Undefined numeric values are rendered as the string "NA".
type Writer struct{}

// NewWriter creates an excel writer
func NewWriter() *Writer {
	return &Writer{}
}

// WriteResults writes a differential-expression table, one gene per row in
// table order.
func (w *Writer) WriteResults(path string, table *diffexpr.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "DifferentialExpression"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headers := []string{"Gene", "Log2FC", "PValue", "FDR", "Category"}
	if err := w.writeHeader(f, sheet, headers); err != nil {
		return err
	}
	for i, r := range table.Rows {
		rowNum := i + 2
		cells := []interface{}{r.Gene, numeric(r.Log2FC), numeric(r.PValue), numeric(r.FDR), string(r.Category)}
		if err := w.writeRow(f, sheet, rowNum, cells); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

// WriteStratification writes per-sample risk labels in dataset sample order
func (w *Writer) WriteStratification(path string, strat *risk.Stratification) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "RiskStratification"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	if err := w.writeHeader(f, sheet, []string{"SampleID", "Risk"}); err != nil {
		return err
	}
	for i, a := range strat.Assignments {
		label := interface{}("NA")
		if a.Label.Defined() {
			label = string(a.Label)
		}
		if err := w.writeRow(f, sheet, i+2, []interface{}{a.SampleID, label}); err != nil {
			return err
		}
	}
	return f.SaveAs(path)
}

func (w *Writer) writeHeader(f *excelize.File, sheet string, headers []string) error {
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	return w.writeRow(f, sheet, 1, cells)
}

func (w *Writer) writeRow(f *excelize.File, sheet string, rowNum int, cells []interface{}) error {
	for col, value := range cells {
		name, err := excelize.CoordinatesToCellName(col+1, rowNum)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, name, value); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", name, err)
		}
	}
	return nil
}

// numeric maps NaN onto the exported "NA" marker
func numeric(v float64) interface{} {
	if math.IsNaN(v) {
		return "NA"
	}
	return v
}
