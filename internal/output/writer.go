// Package output renders query results as text, JSON or board diagrams.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/VrushabBayas/chessboard/internal/config"
	"github.com/VrushabBayas/chessboard/internal/query"
)

// ResultWriter is the interface for writing results to output.
type ResultWriter interface {
	// WriteResult writes a single result to the output.
	WriteResult(r query.Result) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer. For batch writers (like JSON), this also
	// writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) ResultWriter {
	switch cfg.Output.Format {
	case config.JSONFormat:
		return NewJSONWriter(w)
	case config.BoardFormat:
		return NewBoardWriter(w, cfg.Output.Color)
	}
	return NewTextWriter(w, cfg.Output.ShowQuery)
}

// TextWriter writes one facade string per line.
type TextWriter struct {
	w         io.Writer
	showQuery bool
}

// NewTextWriter creates a new text writer. With showQuery set each line is
// prefixed by "<piece> <square>: ".
func NewTextWriter(w io.Writer, showQuery bool) *TextWriter {
	return &TextWriter{w: w, showQuery: showQuery}
}

// WriteResult writes a result line.
func (tw *TextWriter) WriteResult(r query.Result) error {
	var err error
	if tw.showQuery {
		_, err = fmt.Fprintf(tw.w, "%s %s: %s\n", r.Query.Piece, r.Query.Square, r.Text)
	} else {
		_, err = fmt.Fprintln(tw.w, r.Text)
	}
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes results in JSON format.
// It buffers results and writes them as a JSON object on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	results []*JSONResult
	single  bool // If true, write each result immediately instead of batching
	flushed bool // A results object has been written
}

// NewJSONWriter creates a JSON writer that batches results.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		results: make([]*JSONResult, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each result immediately.
func NewJSONWriterSingle(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:      w,
		single: true,
	}
}

// WriteResult buffers a result (or writes it immediately in single mode).
func (jw *JSONWriter) WriteResult(r query.Result) error {
	jr := ResultToJSON(r)
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(jr)
	}

	jw.results = append(jw.results, jr)
	return nil
}

// Flush writes all buffered results as a JSON object. An empty batch still
// produces {"results": []} the first time it is flushed.
func (jw *JSONWriter) Flush() error {
	if jw.single || (len(jw.results) == 0 && jw.flushed) {
		return nil
	}
	jw.flushed = true

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Results: jw.results})

	jw.results = jw.results[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}

// BoardWriter draws each result as a board diagram.
type BoardWriter struct {
	w        io.Writer
	useColor bool
	written  int
}

// NewBoardWriter creates a board writer.
func NewBoardWriter(w io.Writer, useColor bool) *BoardWriter {
	return &BoardWriter{w: w, useColor: useColor}
}

// WriteResult draws one diagram, separated from the previous by a blank line.
func (bw *BoardWriter) WriteResult(r query.Result) error {
	if bw.written > 0 {
		if _, err := fmt.Fprintln(bw.w); err != nil {
			return err
		}
	}
	bw.written++
	return RenderBoard(bw.w, r, bw.useColor)
}

// Flush is a no-op.
func (bw *BoardWriter) Flush() error {
	return nil
}

// Close is a no-op.
func (bw *BoardWriter) Close() error {
	return nil
}
