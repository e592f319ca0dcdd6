// Package errors provides sentinel errors and error types for the chessboard module.
// It defines the failure conditions of square parsing, piece dispatch and
// query handling as values that can be inspected with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidPiece indicates a piece name with no registered move policy.
	ErrInvalidPiece = errors.New("invalid piece")

	// ErrInvalidSquare indicates a malformed or off-board square label.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidQuery indicates a batch query line that could not be read.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SquareError reports a square label that could not be turned into a board
// square. It always unwraps to ErrInvalidSquare.
type SquareError struct {
	Label  string // The label as supplied by the caller
	Reason string // What was wrong with it
}

// Error returns a message naming the label and the reason it was rejected.
func (e *SquareError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%v %q", ErrInvalidSquare, e.Label)
	}
	return fmt.Sprintf("%v %q: %s", ErrInvalidSquare, e.Label, e.Reason)
}

// Unwrap returns ErrInvalidSquare.
func (e *SquareError) Unwrap() error {
	return ErrInvalidSquare
}

// QueryError wraps errors with batch input context: the line number and the
// raw text of the query that failed.
type QueryError struct {
	Err  error  // The underlying error
	Line int    // 1-based line number (0 if not applicable)
	Text string // The query text that caused the error
}

// Error returns a formatted error message including all available context.
func (e *QueryError) Error() string {
	var parts []string

	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Text != "" {
		parts = append(parts, fmt.Sprintf("query %q", e.Text))
	}

	context := strings.Join(parts, ", ")
	switch {
	case e.Err == nil:
		return context
	case context == "":
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", context, e.Err)
}

// Unwrap returns the underlying error.
func (e *QueryError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
