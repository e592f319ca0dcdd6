// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/VrushabBayas/chessboard/internal/config"
)

var (
	// Single query
	pieceName   = flag.String("piece", "", "Piece to move (pawn, king, queen, bishop)")
	squareLabel = flag.String("square", "", "Square the piece stands on (e.g. E4)")

	// Batch input
	inputFile   = flag.String("i", "", "File of '<piece> <square>' queries, one per line (default: stdin)")
	workers     = flag.Int("workers", 0, "Number of worker goroutines (0 = auto-detect based on CPU cores)")
	stopOnError = flag.Bool("stoponerror", false, "Abort the batch at the first malformed query line")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	boardOutput = flag.Bool("board", false, "Draw each result as a board diagram")
	noColor     = flag.Bool("nocolor", false, "Disable colour in board diagrams")
	showQuery   = flag.Bool("showquery", false, "Prefix each text result with its query")

	// Server
	serveAddr = flag.String("serve", "", "Serve HTTP and websocket on this address (e.g. :8080)")
	origins   = flag.String("origins", "", "Comma-separated origins allowed to call the server (default: any)")

	// Logging
	logFile = flag.String("l", "", "Write diagnostics to log file")
	quiet   = flag.Bool("s", false, "Silent mode (no batch summary)")
	verbose = flag.Bool("v", false, "Log every query as it is answered")

	// Other options
	listPieces = flag.Bool("list", false, "List the supported pieces")
	help       = flag.Bool("h", false, "Show help")
	version    = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyBatchFlags(cfg)
	applyServerFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyOutputFlags selects the renderer. -J wins over -board.
func applyOutputFlags(cfg *config.Config) {
	switch {
	case *jsonOutput:
		cfg.Output.Format = config.JSONFormat
	case *boardOutput:
		cfg.Output.Format = config.BoardFormat
	default:
		cfg.Output.Format = config.TextFormat
	}
	cfg.Output.Color = !*noColor
	cfg.Output.ShowQuery = *showQuery
}

// applyBatchFlags configures the worker pool.
func applyBatchFlags(cfg *config.Config) {
	if *workers > 0 {
		cfg.Batch.Workers = *workers
	}
	cfg.Batch.StopOnError = *stopOnError
}

// applyServerFlags configures the HTTP server.
func applyServerFlags(cfg *config.Config) {
	cfg.Server.Addr = *serveAddr
	if list := splitList(*origins); len(list) > 0 {
		cfg.Server.AllowedOrigins = list
	}
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
