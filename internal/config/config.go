package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"

	"oncoexpr/domain/diffexpr"
)

// Config holds the analysis defaults a caller can tune from the environment.
// None of these change statistical semantics; they cover classification
// thresholds, worker count and log verbosity only.
type Config struct {
	Analysis AnalysisConfig
	LogLevel string
}

// AnalysisConfig carries the tunable analysis parameters
type AnalysisConfig struct {
	FoldChangeThreshold float64 // absolute log2FC cut for classification
	PValueThreshold     float64 // raw p-value cut for classification
	Workers             int     // per-gene loop parallelism
}

// Load reads configuration from the environment, with a best-effort .env
// load first, and validates it.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg := &Config{
		Analysis: AnalysisConfig{
			FoldChangeThreshold: 1.0,
			PValueThreshold:     0.05,
			Workers:             runtime.NumCPU(),
		},
		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if v := os.Getenv("ONCOEXPR_FC_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ONCOEXPR_FC_THRESHOLD %q: %w", v, err)
		}
		cfg.Analysis.FoldChangeThreshold = f
	}
	if v := os.Getenv("ONCOEXPR_P_THRESHOLD"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ONCOEXPR_P_THRESHOLD %q: %w", v, err)
		}
		cfg.Analysis.PValueThreshold = f
	}
	if v := os.Getenv("ONCOEXPR_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid ONCOEXPR_WORKERS %q: %w", v, err)
		}
		cfg.Analysis.Workers = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Analysis.FoldChangeThreshold <= 0 {
		return fmt.Errorf("fold-change threshold must be positive, got %g", c.Analysis.FoldChangeThreshold)
	}
	if c.Analysis.PValueThreshold <= 0 || c.Analysis.PValueThreshold >= 1 {
		return fmt.Errorf("p-value threshold must be in (0,1), got %g", c.Analysis.PValueThreshold)
	}
	if c.Analysis.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1, got %d", c.Analysis.Workers)
	}
	return nil
}

// Thresholds maps the loaded configuration onto classifier thresholds
func (c *Config) Thresholds() diffexpr.Thresholds {
	return diffexpr.Thresholds{
		FoldChange: c.Analysis.FoldChangeThreshold,
		PValue:     c.Analysis.PValueThreshold,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
