// Package chessboard computes where a single chess piece can move on an
// otherwise empty 8x8 board.
//
// The entry point is GetPossibleMoves, which takes a piece name (pawn, king,
// queen or bishop, any case) and a square label such as "E4", and returns
// the destinations joined by ", " or one of the sentinel strings below.
package chessboard

import (
	"errors"
	"strings"

	"github.com/VrushabBayas/chessboard/internal/board"
	chesserrors "github.com/VrushabBayas/chessboard/internal/errors"
	"github.com/VrushabBayas/chessboard/internal/piece"
)

// Sentinel results returned in place of a move list.
const (
	InvalidPiece    = "Invalid piece"
	InvalidSquare   = "Invalid square"
	MoveNotPossible = "Move not possible"
)

// Separator joins destination squares in a result string.
const Separator = ", "

// GetPossibleMoves returns the destinations of pieceName standing on
// squareLabel, in the piece's documented order.
func GetPossibleMoves(pieceName, squareLabel string) string {
	return Describe(Moves(pieceName, squareLabel))
}

// Moves is the typed form of GetPossibleMoves. The error wraps
// ErrInvalidPiece or ErrInvalidSquare from the internal errors package;
// the piece name is checked first. A nil or empty slice with a nil error
// means the piece cannot move.
func Moves(pieceName, squareLabel string) ([]string, error) {
	kind, err := piece.ParseKind(pieceName)
	if err != nil {
		return nil, err
	}
	sq, err := board.ParseSquare(squareLabel)
	if err != nil {
		return nil, err
	}
	return piece.New(kind, sq).Moves(), nil
}

// Describe renders the result of Moves as GetPossibleMoves does.
func Describe(moves []string, err error) string {
	switch {
	case errors.Is(err, chesserrors.ErrInvalidPiece):
		return InvalidPiece
	case err != nil:
		return InvalidSquare
	case len(moves) == 0:
		return MoveNotPossible
	}
	return strings.Join(moves, Separator)
}

// Pieces returns the recognised piece names in lower case, sorted.
func Pieces() []string {
	return piece.Names()
}
