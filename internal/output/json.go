package output

import (
	"github.com/VrushabBayas/chessboard/internal/query"
)

// JSONResult represents a query result in JSON format.
type JSONResult struct {
	Piece  string   `json:"piece"`
	Square string   `json:"square"`
	Moves  []string `json:"moves"`
	Result string   `json:"result"`
	Error  string   `json:"error,omitempty"`
	Line   int      `json:"line,omitempty"`
}

// JSONOutput holds multiple results for array output.
type JSONOutput struct {
	Results []*JSONResult `json:"results"`
}

// ResultToJSON converts a query result to its JSON form.
func ResultToJSON(r query.Result) *JSONResult {
	jr := &JSONResult{
		Piece:  r.Query.Piece,
		Square: r.Query.Square,
		Moves:  r.Moves,
		Result: r.Text,
		Line:   r.Query.Line,
	}
	if jr.Moves == nil {
		jr.Moves = []string{}
	}
	if r.Err != nil {
		jr.Error = r.Err.Error()
	}
	return jr
}
