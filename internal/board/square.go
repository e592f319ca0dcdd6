package board

import (
	"fmt"

	chesserrors "github.com/VrushabBayas/chessboard/internal/errors"
)

// Square is an on-board position: a zero-based column index (A=0) and a
// one-based row number. The zero value is not a valid square; obtain
// squares from ParseSquare or NewSquare.
type Square struct {
	col int
	row int
}

// NewSquare returns the square at the given column index and row number.
func NewSquare(col, row int) (Square, error) {
	if !IsValid(col, row) {
		return Square{}, &chesserrors.SquareError{
			Label:  fmt.Sprintf("(%d,%d)", col, row),
			Reason: "coordinates off the board",
		}
	}
	return Square{col: col, row: row}, nil
}

// ParseSquare converts a label such as "E4" into a Square. The label must
// be exactly an uppercase column letter A-H followed by a row digit 1-8.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return Square{}, &chesserrors.SquareError{Label: label, Reason: "label must be two characters"}
	}
	c, r := label[0], label[1]
	if c < FirstCol || c > LastCol {
		return Square{}, &chesserrors.SquareError{Label: label, Reason: "column must be A-H"}
	}
	if r < RowBase || r > RowBase+BoardSize-1 {
		return Square{}, &chesserrors.SquareError{Label: label, Reason: "row must be 1-8"}
	}
	return Square{col: int(c - ColBase), row: int(r-RowBase) + FirstRow}, nil
}

// MustParseSquare is like ParseSquare but panics on a malformed label.
// Intended for tests and fixed tables.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}

// Col returns the zero-based column index.
func (s Square) Col() int { return s.col }

// Row returns the one-based row number.
func (s Square) Row() int { return s.row }

// Label returns the square in column-letter, row-digit form.
func (s Square) Label() string {
	return Label(s.col, s.row)
}

// String implements fmt.Stringer.
func (s Square) String() string {
	return s.Label()
}

// Offset returns the square n steps away along d, and false when that
// position is off the board.
func (s Square) Offset(d Direction, n int) (Square, bool) {
	col, row := s.col+d.DX*n, s.row+d.DY*n
	if !IsValid(col, row) {
		return Square{}, false
	}
	return Square{col: col, row: row}, true
}

// Label formats a column index and row number as a square label. The
// coordinates are expected to satisfy IsValid.
func Label(col, row int) string {
	return string([]byte{byte(ColBase + col), byte(RowBase + row - FirstRow)})
}

// AllSquares returns the 64 squares, A1 first, column-major.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for col := 0; col < BoardSize; col++ {
		for row := FirstRow; row <= LastRow; row++ {
			squares = append(squares, Square{col: col, row: row})
		}
	}
	return squares
}
