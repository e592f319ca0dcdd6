// Package query reads move queries ("<piece> <square>" lines) and
// evaluates them against the dispatch facade.
package query

import (
	"bufio"
	"io"
	"strings"

	"github.com/VrushabBayas/chessboard"
	"github.com/VrushabBayas/chessboard/internal/errors"
)

// Query asks for the moves of one piece on one square.
type Query struct {
	Piece  string
	Square string
	Line   int // 1-based source line, 0 when not read from a file
}

// Result is the evaluated form of a Query.
type Result struct {
	Query Query
	Moves []string // never nil
	Text  string
	Err   error
}

// Evaluate runs q through the facade. Text always holds what
// chessboard.GetPossibleMoves would return for the same input.
func Evaluate(q Query) Result {
	moves, err := chessboard.Moves(q.Piece, q.Square)
	if moves == nil {
		moves = []string{}
	}
	return Result{
		Query: q,
		Moves: moves,
		Text:  chessboard.Describe(moves, err),
		Err:   err,
	}
}

// ParseLine splits a "<piece> <square>" line. Extra whitespace is ignored;
// anything other than exactly two fields is an ErrInvalidQuery.
func ParseLine(line string) (Query, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Query{}, &errors.QueryError{Err: errors.ErrInvalidQuery, Text: line}
	}
	return Query{Piece: fields[0], Square: fields[1]}, nil
}

// Scanner reads queries one per line. Blank lines and lines starting
// with '#' are skipped.
type Scanner struct {
	sc    *bufio.Scanner
	line  int
	query Query
	err   error
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{sc: bufio.NewScanner(r)}
}

// Scan advances to the next query. It returns false at end of input or
// on a read error; a malformed line stops the scan with a *QueryError
// available from Err.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	for s.sc.Scan() {
		s.line++
		text := strings.TrimSpace(s.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		q, err := ParseLine(text)
		if err != nil {
			s.err = &errors.QueryError{Err: errors.ErrInvalidQuery, Line: s.line, Text: text}
			return false
		}
		q.Line = s.line
		s.query = q
		return true
	}
	if err := s.sc.Err(); err != nil {
		s.err = errors.Wrap(err, "reading queries")
	}
	return false
}

// Query returns the query read by the last successful Scan.
func (s *Scanner) Query() Query {
	return s.query
}

// Err returns the first read or parse error.
func (s *Scanner) Err() error {
	return s.err
}

// Skip clears a parse error so scanning can continue past a malformed line.
func (s *Scanner) Skip() {
	s.err = nil
}

// ReadAll collects every query from r, stopping at the first error.
func ReadAll(r io.Reader) ([]Query, error) {
	var queries []Query
	sc := NewScanner(r)
	for sc.Scan() {
		queries = append(queries, sc.Query())
	}
	return queries, sc.Err()
}
