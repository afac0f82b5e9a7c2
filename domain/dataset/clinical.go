package dataset

import (
	"fmt"
	"strings"

	"oncoexpr/domain/core"
)

// diagnosisFieldName is the canonical clinical field consulted for group assignment
const diagnosisFieldName = "Diagnosis"

// Record holds the clinical values for one sample
type Record struct {
	SampleID string
	Values   map[string]string
}

// ClinicalTable holds per-sample clinical metadata keyed by sample identifier
type ClinicalTable struct {
	fields []string
	rows   []Record
	index  map[string]int // sample id -> row position
}

// NewClinicalTable builds a clinical table from ordered records.
// Sample identifiers must be unique.
func NewClinicalTable(fields []string, rows []Record) (*ClinicalTable, error) {
	index := make(map[string]int, len(rows))
	for i, row := range rows {
		if _, dup := index[row.SampleID]; dup {
			return nil, core.NewSchemaError(fmt.Sprintf("duplicate clinical sample id %q", row.SampleID))
		}
		index[row.SampleID] = i
	}
	t := &ClinicalTable{
		fields: append([]string(nil), fields...),
		rows:   rows,
		index:  index,
	}
	return t, nil
}

// Fields returns the clinical field names
func (t *ClinicalTable) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Len returns the number of samples
func (t *ClinicalTable) Len() int {
	return len(t.rows)
}

// SampleIDs returns the sample identifiers in table order
func (t *ClinicalTable) SampleIDs() []string {
	ids := make([]string, len(t.rows))
	for i, row := range t.rows {
		ids[i] = row.SampleID
	}
	return ids
}

// Value looks up a clinical field for a sample
func (t *ClinicalTable) Value(sampleID, field string) (string, bool) {
	i, ok := t.index[sampleID]
	if !ok {
		return "", false
	}
	v, ok := t.rows[i].Values[field]
	return v, ok
}

// DiagnosisField resolves the Diagnosis-equivalent field name, matched
// case-insensitively against the table's fields.
func (t *ClinicalTable) DiagnosisField() (string, bool) {
	for _, f := range t.fields {
		if strings.EqualFold(f, diagnosisFieldName) {
			return f, true
		}
	}
	return "", false
}

// Diagnosis returns the raw diagnosis value for a sample
func (t *ClinicalTable) Diagnosis(sampleID string) (string, bool) {
	field, ok := t.DiagnosisField()
	if !ok {
		return "", false
	}
	return t.Value(sampleID, field)
}

// Group returns the diagnosis group for a sample
func (t *ClinicalTable) Group(sampleID string) DiagnosisGroup {
	diagnosis, ok := t.Diagnosis(sampleID)
	if !ok {
		return GroupUnassigned
	}
	return ClassifyDiagnosis(diagnosis)
}

// AddField appends a derived field (e.g. a Risk column) to every sample.
// Extension is caller responsibility and never performed by the engines.
func (t *ClinicalTable) AddField(name string, values map[string]string) error {
	for _, f := range t.fields {
		if strings.EqualFold(f, name) {
			return core.NewSchemaError(fmt.Sprintf("clinical field %q already exists", name))
		}
	}
	for sampleID := range values {
		if _, ok := t.index[sampleID]; !ok {
			return core.NewSchemaError(fmt.Sprintf("clinical field %q references unknown sample %q", name, sampleID))
		}
	}
	t.fields = append(t.fields, name)
	for i := range t.rows {
		if t.rows[i].Values == nil {
			t.rows[i].Values = make(map[string]string, 1)
		}
		if v, ok := values[t.rows[i].SampleID]; ok {
			t.rows[i].Values[name] = v
		}
	}
	return nil
}
