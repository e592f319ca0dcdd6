package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Only success paths are exercised; *testing.T cannot be mocked.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "E4", "E4")
	AssertEqual(t, []string{"C4", "C5"}, []string{"C4", "C5"})
	AssertEqual(t, 27, 27, "queen mobility from %s", "E4")
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "parse should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "A4, B4, C4", "B4")
	AssertContains(t, "anything", "")
}

func TestAssertTrue_Success(t *testing.T) {
	AssertTrue(t, len("H8") == 2)
}

func TestAssertSameSquares_Success(t *testing.T) {
	AssertSameSquares(t, []string{"B2", "A1"}, []string{"A1", "B2"})
	AssertSameSquares(t, nil, []string{})
}

func TestSplitMoves(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"G2", []string{"G2"}},
		{"C4, C5, C6", []string{"C4", "C5", "C6"}},
		{"Move not possible", []string{"Move not possible"}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			AssertEqual(t, SplitMoves(tt.in), tt.want)
		})
	}
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"empty", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"format", []interface{}{"square %s", "E4"}, "square E4"},
		{"non-string", []interface{}{42}, "42"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}
