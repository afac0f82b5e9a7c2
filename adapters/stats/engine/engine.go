package engine

import (
	"runtime"

	"oncoexpr/internal"
)

// Engine provides the statistical computations over a validated
// ExpressionSet: differential expression and risk stratification. Engines
// hold no per-call state; a single Engine is safe for concurrent use.
type Engine struct {
	workers int
	logger  *internal.Logger
}

// New creates an engine with default parallelism and logging
func New() *Engine {
	return NewWithConfig(runtime.NumCPU(), internal.NewDefaultLogger())
}

// NewWithConfig creates an engine with an explicit worker count for the
// per-gene loop. workers <= 1 runs the loop serially; results are identical
// either way.
func NewWithConfig(workers int, logger *internal.Logger) *Engine {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Engine{workers: workers, logger: logger}
}
