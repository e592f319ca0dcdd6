// Package movegen scans outward from an origin square along direction
// vectors and collects the on-board destinations as square labels.
package movegen

import "github.com/VrushabBayas/chessboard/internal/board"

// DefaultMaxSteps is used when Generate is given a step limit below 1.
const DefaultMaxSteps = board.BoardSize

// Generate returns the labels of every on-board square reachable from
// origin by 1..maxSteps multiples of each direction.
//
// The outer loop runs over distance and the inner loop over dirs, so with
// several directions the result is interleaved by distance: every direction
// at distance 1, then every direction at distance 2, and so on. Callers that
// need one direction exhausted before the next must call Generate once per
// direction. Off-board candidates are dropped; other directions keep going.
func Generate(origin board.Square, dirs []board.Direction, maxSteps int) []string {
	if maxSteps < 1 {
		maxSteps = DefaultMaxSteps
	}

	var moves []string
	for i := 1; i <= maxSteps; i++ {
		for _, d := range dirs {
			col := origin.Col() + d.DX*i
			row := origin.Row() + d.DY*i
			if board.IsValid(col, row) {
				moves = append(moves, board.Label(col, row))
			}
		}
	}
	return moves
}
