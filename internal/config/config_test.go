package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ONCOEXPR_FC_THRESHOLD", "")
	t.Setenv("ONCOEXPR_P_THRESHOLD", "")
	t.Setenv("ONCOEXPR_WORKERS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Analysis.FoldChangeThreshold)
	assert.Equal(t, 0.05, cfg.Analysis.PValueThreshold)
	assert.GreaterOrEqual(t, cfg.Analysis.Workers, 1)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ONCOEXPR_FC_THRESHOLD", "1.5")
	t.Setenv("ONCOEXPR_P_THRESHOLD", "0.01")
	t.Setenv("ONCOEXPR_WORKERS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1.5, cfg.Analysis.FoldChangeThreshold)
	assert.Equal(t, 0.01, cfg.Analysis.PValueThreshold)
	assert.Equal(t, 3, cfg.Analysis.Workers)

	th := cfg.Thresholds()
	assert.Equal(t, 1.5, th.FoldChange)
	assert.Equal(t, 0.01, th.PValue)
}

func TestLoad_RejectsMalformedValues(t *testing.T) {
	t.Setenv("ONCOEXPR_FC_THRESHOLD", "lots")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsOutOfRangeValues(t *testing.T) {
	t.Setenv("ONCOEXPR_FC_THRESHOLD", "1.0")
	t.Setenv("ONCOEXPR_P_THRESHOLD", "1.5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "p-value threshold")

	t.Setenv("ONCOEXPR_P_THRESHOLD", "0.05")
	t.Setenv("ONCOEXPR_WORKERS", "0")
	_, err = Load()
	assert.Error(t, err)
}
