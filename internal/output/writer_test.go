package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/VrushabBayas/chessboard/internal/config"
	"github.com/VrushabBayas/chessboard/internal/query"
	"github.com/VrushabBayas/chessboard/internal/testutil"
)

func eval(piece, square string) query.Result {
	return query.Evaluate(query.Query{Piece: piece, Square: square})
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, false)
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "G1")))
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "G8")))
	testutil.AssertNoError(t, w.Close())

	testutil.AssertEqual(t, buf.String(), "G2\nMove not possible\n")
}

func TestTextWriter_ShowQuery(t *testing.T) {
	var buf bytes.Buffer
	w := NewTextWriter(&buf, true)
	testutil.AssertNoError(t, w.WriteResult(eval("King", "D5")))

	testutil.AssertEqual(t, buf.String(), "King D5: C4, C5, C6, D4, D6, E4, E5, E6\n")
}

func TestJSONWriter_Batch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "G1")))
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn1", "G8")))

	if buf.Len() != 0 {
		t.Fatal("batch JSON writer wrote before Close")
	}
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, out.Results, []*JSONResult{
		{Piece: "Pawn", Square: "G1", Moves: []string{"G2"}, Result: "G2"},
		{Piece: "Pawn1", Square: "G8", Moves: []string{}, Result: "Invalid piece", Error: `"Pawn1": invalid piece`},
	})

	// A second Close has nothing left to write.
	buf.Reset()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_EmptyBatch(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriter(&buf)
	testutil.AssertNoError(t, w.Close())

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, out.Results, []*JSONResult{})
	testutil.AssertContains(t, buf.String(), `"results": []`)

	buf.Reset()
	testutil.AssertNoError(t, w.Close())
	testutil.AssertEqual(t, buf.Len(), 0)
}

func TestJSONWriter_Single(t *testing.T) {
	var buf bytes.Buffer
	w := NewJSONWriterSingle(&buf)
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "A8")))

	var jr JSONResult
	if err := json.Unmarshal(buf.Bytes(), &jr); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	testutil.AssertEqual(t, jr.Result, "Move not possible")
	testutil.AssertEqual(t, jr.Moves, []string{})
	testutil.AssertContains(t, buf.String(), `"moves": []`)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		format config.OutputFormat
		check  func(ResultWriter) bool
	}{
		{config.TextFormat, func(w ResultWriter) bool { _, ok := w.(*TextWriter); return ok }},
		{config.JSONFormat, func(w ResultWriter) bool { _, ok := w.(*JSONWriter); return ok }},
		{config.BoardFormat, func(w ResultWriter) bool { _, ok := w.(*BoardWriter); return ok }},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithOutputFormat(tt.format).Build()
			testutil.AssertTrue(t, tt.check(NewWriter(&buf, cfg)))
		})
	}
}

func TestRenderBoard_Pawn(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, eval("pawn", "G1"), false))

	want := strings.Join([]string{
		"Pawn G1 (1 move)",
		"8 . . . . . . . .",
		"7 . . . . . . . .",
		"6 . . . . . . . .",
		"5 . . . . . . . .",
		"4 . . . . . . . .",
		"3 . . . . . . . .",
		"2 . . . . . . * .",
		"1 . . . . . . P .",
		"  A B C D E F G H",
		"",
	}, "\n")
	testutil.AssertEqual(t, buf.String(), want)
}

func TestRenderBoard_Queen(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, eval("Queen", "E4"), false))

	lines := strings.Split(buf.String(), "\n")
	testutil.AssertEqual(t, lines[0], "Queen E4 (27 moves)")
	testutil.AssertEqual(t, lines[1], "8 * . . . * . . .")
	testutil.AssertEqual(t, lines[5], "4 * * * * Q * * *")
	testutil.AssertEqual(t, strings.Count(buf.String(), "*"), 27)
}

func TestRenderBoard_NoMoves(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, eval("Pawn", "C8"), false))
	testutil.AssertEqual(t, buf.String(), "Pawn C8: Move not possible\n")

	buf.Reset()
	testutil.AssertNoError(t, RenderBoard(&buf, eval("King", "Z1"), false))
	testutil.AssertEqual(t, buf.String(), "King Z1: Invalid square\n")
}

func TestRenderBoard_Color(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, RenderBoard(&buf, eval("King", "A1"), true))
	testutil.AssertContains(t, buf.String(), "\x1b[")
}

func TestBoardWriter_Separates(t *testing.T) {
	var buf bytes.Buffer
	w := NewBoardWriter(&buf, false)
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "A1")))
	testutil.AssertNoError(t, w.WriteResult(eval("Pawn", "B1")))
	testutil.AssertNoError(t, w.Close())

	testutil.AssertContains(t, buf.String(), "  A B C D E F G H\n\nPawn B1")
}
