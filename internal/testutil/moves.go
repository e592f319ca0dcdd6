package testutil

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// SplitMoves splits a facade result such as "C4, C5" back into labels.
// Sentinel strings come back as a single element.
func SplitMoves(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ", ")
}

// AssertSameSquares compares two move lists ignoring order.
func AssertSameSquares(t *testing.T, got, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, got, cmpopts.SortSlices(less), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%ssquare set mismatch (-want +got):\n%s", prefix(msgAndArgs...), diff)
	}
}
