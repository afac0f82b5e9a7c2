package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Construction errors
	ErrSchema = errors.New("dataset schema violation")

	// Analysis errors
	ErrInsufficientSamples = errors.New("insufficient samples in diagnosis group")
	ErrInsufficientData    = errors.New("insufficient data for analysis")

	// Risk stratification errors
	ErrUnknownGene      = errors.New("gene not present in expression matrix")
	ErrUnknownDirection = errors.New("unrecognized risk direction")
)

// Error constructors with context
func NewSchemaError(reason string) error {
	return fmt.Errorf("%w: %s", ErrSchema, reason)
}

func NewInsufficientSamplesError(group string, got, want int) error {
	return fmt.Errorf("%w: %s group has %d samples, need at least %d", ErrInsufficientSamples, group, got, want)
}

func NewUnknownGeneError(gene string) error {
	return fmt.Errorf("%w: %q", ErrUnknownGene, gene)
}

func NewUnknownDirectionError(direction string) error {
	return fmt.Errorf("%w: %q", ErrUnknownDirection, direction)
}

// Error checking helpers
func IsSchemaError(err error) bool {
	return errors.Is(err, ErrSchema)
}

func IsInsufficientSamplesError(err error) bool {
	return errors.Is(err, ErrInsufficientSamples)
}

func IsUnknownGeneError(err error) bool {
	return errors.Is(err, ErrUnknownGene)
}

func IsUnknownDirectionError(err error) bool {
	return errors.Is(err, ErrUnknownDirection)
}
