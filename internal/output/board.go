package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/VrushabBayas/chessboard/internal/board"
	"github.com/VrushabBayas/chessboard/internal/piece"
	"github.com/VrushabBayas/chessboard/internal/query"
)

// Diagram symbols.
const (
	EmptyMark  = '.'
	TargetMark = '*'
)

// boardPalette colours the origin and destination squares.
type boardPalette struct {
	origin func(a ...interface{}) string
	target func(a ...interface{}) string
	coords func(a ...interface{}) string
}

func newPalette(enabled bool) boardPalette {
	origin := color.New(color.FgYellow, color.Bold)
	target := color.New(color.FgGreen)
	coords := color.New(color.Faint)
	for _, c := range []*color.Color{origin, target, coords} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return boardPalette{
		origin: origin.SprintFunc(),
		target: target.SprintFunc(),
		coords: coords.SprintFunc(),
	}
}

// RenderBoard draws an 8x8 diagram with row 8 at the top. The origin is
// shown as the piece letter and every destination as TargetMark. Results
// that carry no moves render as their text only.
func RenderBoard(w io.Writer, r query.Result, useColor bool) error {
	if r.Err != nil || len(r.Moves) == 0 {
		_, err := fmt.Fprintf(w, "%s %s: %s\n", r.Query.Piece, r.Query.Square, r.Text)
		return err
	}

	kind, _ := piece.ParseKind(r.Query.Piece)
	origin, _ := board.ParseSquare(r.Query.Square)
	targets := make(map[string]bool, len(r.Moves))
	for _, m := range r.Moves {
		targets[m] = true
	}

	pal := newPalette(useColor)
	var sb strings.Builder
	noun := "moves"
	if len(r.Moves) == 1 {
		noun = "move"
	}
	fmt.Fprintf(&sb, "%s %s (%d %s)\n", kind, origin, len(r.Moves), noun)
	for row := board.LastRow; row >= board.FirstRow; row-- {
		sb.WriteString(pal.coords(row))
		for col := 0; col < board.BoardSize; col++ {
			sb.WriteByte(' ')
			label := board.Label(col, row)
			switch {
			case label == origin.Label():
				sb.WriteString(pal.origin(string(kind.Letter())))
			case targets[label]:
				sb.WriteString(pal.target(string(TargetMark)))
			default:
				sb.WriteByte(EmptyMark)
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(" ")
	for col := 0; col < board.BoardSize; col++ {
		sb.WriteString(" " + pal.coords(string(rune(board.ColBase+col))))
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}
