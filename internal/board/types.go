// Package board provides the coordinate model of an 8x8 chess board:
// squares, their labels and the unit direction vectors used to step
// between them.
package board

import "strconv"

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	ColBase  = 'A'
	RowBase  = '1'
	FirstCol = ColBase
	LastCol  = ColBase + BoardSize - 1
	FirstRow = 1
	LastRow  = BoardSize
)

// Direction is a unit step (DX, DY) on the column and row axes.
type Direction struct {
	DX int
	DY int
}

// Named directions. Up increases the row number, Right the column index.
var (
	Left      = Direction{-1, 0}
	Right     = Direction{1, 0}
	Down      = Direction{0, -1}
	Up        = Direction{0, 1}
	UpLeft    = Direction{-1, 1}
	DownRight = Direction{1, -1}
	DownLeft  = Direction{-1, -1}
	UpRight   = Direction{1, 1}
)

// String returns the name of a named direction, or its vector otherwise.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Up:
		return "Up"
	case UpLeft:
		return "UpLeft"
	case DownRight:
		return "DownRight"
	case DownLeft:
		return "DownLeft"
	case UpRight:
		return "UpRight"
	}
	return "(" + strconv.Itoa(d.DX) + "," + strconv.Itoa(d.DY) + ")"
}

// IsUnit reports whether both components are in {-1,0,1} and the vector
// is not (0,0).
func (d Direction) IsUnit() bool {
	if d.DX == 0 && d.DY == 0 {
		return false
	}
	return abs(d.DX) <= 1 && abs(d.DY) <= 1
}

// IsValid reports whether a zero-based column index and one-based row
// number lie on the board.
func IsValid(col, row int) bool {
	return col >= 0 && col < BoardSize && row >= FirstRow && row <= LastRow
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
