package testkit

import (
	"fmt"
	"math"
	"math/rand"

	"oncoexpr/domain/dataset"
)

// PlantedGene describes a gene generated with a known tumor-vs-normal shift,
// so tests can assert which genes the analysis must flag.
type PlantedGene struct {
	ID         string
	TumorShift float64 // added to tumor means; negative plants downregulation
}

// CohortConfig configures the synthetic cohort generator
type CohortConfig struct {
	BackgroundGenes  int // null genes with no planted shift
	TumorSamples     int
	NormalSamples    int
	AmbiguousSamples int // diagnosis text matching both group patterns
	Planted          []PlantedGene
	MissingRate      float64 // probability of a NaN measurement per cell
	Seed             int64
	CohortLabel      string
}

// DefaultCohortConfig returns a small cohort suitable for most tests
func DefaultCohortConfig() CohortConfig {
	return CohortConfig{
		BackgroundGenes: 50,
		TumorSamples:    10,
		NormalSamples:   10,
		Seed:            42,
		CohortLabel:     "SYNTH-TEST",
	}
}

// CohortGenerator builds validated expression sets with known structure
type CohortGenerator struct {
	config CohortConfig
	rng    *rand.Rand
}

// NewCohortGenerator creates a generator for the given configuration
func NewCohortGenerator(config CohortConfig) *CohortGenerator {
	return &CohortGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the dataset: baseline log2 expression ~ N(8, 1), planted
// genes shifted in the tumor group, optional NaN dropout.
func (g *CohortGenerator) Generate() (*dataset.ExpressionSet, error) {
	sampleIDs, records := g.buildSamples()

	geneIDs := make([]string, 0, len(g.config.Planted)+g.config.BackgroundGenes)
	shifts := make([]float64, 0, cap(geneIDs))
	for _, p := range g.config.Planted {
		geneIDs = append(geneIDs, p.ID)
		shifts = append(shifts, p.TumorShift)
	}
	for i := 0; i < g.config.BackgroundGenes; i++ {
		geneIDs = append(geneIDs, fmt.Sprintf("GENE%04d", i+1))
		shifts = append(shifts, 0)
	}

	data := make([][]float64, len(geneIDs))
	for gi := range geneIDs {
		row := make([]float64, len(sampleIDs))
		for si := range sampleIDs {
			value := 8.0 + g.rng.NormFloat64()
			if si < g.config.TumorSamples {
				value += shifts[gi]
			}
			if g.config.MissingRate > 0 && g.rng.Float64() < g.config.MissingRate {
				value = math.NaN()
			}
			row[si] = value
		}
		data[gi] = row
	}

	clinical, err := dataset.NewClinicalTable([]string{"Diagnosis"}, records)
	if err != nil {
		return nil, err
	}
	return dataset.New(dataset.Matrix{
		Data:      data,
		GeneIDs:   geneIDs,
		SampleIDs: sampleIDs,
	}, clinical, g.config.CohortLabel)
}

func (g *CohortGenerator) buildSamples() ([]string, []dataset.Record) {
	total := g.config.TumorSamples + g.config.NormalSamples + g.config.AmbiguousSamples
	sampleIDs := make([]string, 0, total)
	records := make([]dataset.Record, 0, total)

	add := func(id, diagnosis string) {
		sampleIDs = append(sampleIDs, id)
		records = append(records, dataset.Record{
			SampleID: id,
			Values:   map[string]string{"Diagnosis": diagnosis},
		})
	}
	for i := 0; i < g.config.TumorSamples; i++ {
		add(fmt.Sprintf("T%03d", i+1), "Primary Tumor")
	}
	for i := 0; i < g.config.NormalSamples; i++ {
		add(fmt.Sprintf("N%03d", i+1), "Solid Tissue Normal")
	}
	for i := 0; i < g.config.AmbiguousSamples; i++ {
		// matches both group patterns, so it belongs to neither
		add(fmt.Sprintf("X%03d", i+1), "Tumor-adjacent normal tissue")
	}
	return sampleIDs, records
}
