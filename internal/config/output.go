package config

import (
	"fmt"

	"github.com/VrushabBayas/chessboard/internal/errors"
)

// OutputFormat selects how results are rendered.
type OutputFormat int

const (
	TextFormat  OutputFormat = iota // "Queen E4: A4, B4, ..." lines
	JSONFormat                      // JSON array of result objects
	BoardFormat                     // ASCII board with destinations marked
)

var formatNames = []string{"text", "json", "board"}

// String returns the flag spelling of a format.
func (f OutputFormat) String() string {
	if f >= 0 && int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// ParseOutputFormat converts a flag value into an OutputFormat.
func ParseOutputFormat(s string) (OutputFormat, error) {
	for i, name := range formatNames {
		if s == name {
			return OutputFormat(i), nil
		}
	}
	return TextFormat, fmt.Errorf("unknown output format %q: %w", s, errors.ErrInvalidConfig)
}

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// Format selects text, JSON or board rendering
	Format OutputFormat

	// Color enables ANSI colours in board rendering
	Color bool

	// ShowQuery prefixes each text result with its piece and square
	ShowQuery bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		Format: TextFormat,
		Color:  true,
	}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	if o.Format < TextFormat || o.Format > BoardFormat {
		return fmt.Errorf("output format %d: %w", o.Format, errors.ErrInvalidConfig)
	}
	return nil
}
