package config

import (
	"fmt"
	"runtime"

	"github.com/VrushabBayas/chessboard/internal/errors"
)

// BatchConfig controls parallel evaluation of query files.
type BatchConfig struct {
	// Workers is the number of goroutines evaluating queries
	Workers int

	// BufferSize is the capacity of the work and result channels
	BufferSize int

	// StopOnError aborts the batch at the first malformed query line
	StopOnError bool
}

// NewBatchConfig creates a BatchConfig with default values.
func NewBatchConfig() *BatchConfig {
	return &BatchConfig{
		Workers:    runtime.NumCPU(),
		BufferSize: 64,
	}
}

// Validate checks that the batch configuration is valid.
func (b *BatchConfig) Validate() error {
	if b.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", b.Workers, errors.ErrInvalidConfig)
	}
	if b.BufferSize < 1 {
		return fmt.Errorf("buffer size (%d) must be at least 1: %w", b.BufferSize, errors.ErrInvalidConfig)
	}
	return nil
}
