// chessmoves lists where a single chess piece can move on an empty board.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/VrushabBayas/chessboard"
	"github.com/VrushabBayas/chessboard/internal/config"
	chesserrors "github.com/VrushabBayas/chessboard/internal/errors"
	"github.com/VrushabBayas/chessboard/internal/output"
	"github.com/VrushabBayas/chessboard/internal/query"
	"github.com/VrushabBayas/chessboard/internal/server"
	"github.com/VrushabBayas/chessboard/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	code := run(cfg, flag.Args())
	closeFiles(cfg)
	os.Exit(code)
}

// run dispatches to the mode selected by the flags and returns the exit code.
func run(cfg *config.Config, args []string) int {
	switch {
	case *listPieces:
		for _, name := range chessboard.Pieces() {
			fmt.Fprintln(cfg.OutputFile, name)
		}
		return 0
	case cfg.Server.Enabled():
		return serve(cfg)
	case *pieceName != "" || *squareLabel != "":
		return runSingle(cfg, query.Query{Piece: *pieceName, Square: *squareLabel})
	}

	if *inputFile != "" {
		args = append([]string{*inputFile}, args...)
	}
	ctx, stop := signalContext()
	defer stop()
	return runBatch(ctx, cfg, args)
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFiles closes any files opened by the setup functions.
func closeFiles(cfg *config.Config) {
	for _, w := range []io.Writer{cfg.OutputFile, cfg.LogFile} {
		if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
			f.Close()
		}
	}
}

// runSingle answers one query. The facade string is always printed; a
// rejected piece or square also makes the exit status 1.
func runSingle(cfg *config.Config, q query.Query) int {
	res := query.Evaluate(q)

	var w output.ResultWriter
	if cfg.Output.Format == config.JSONFormat {
		w = output.NewJSONWriterSingle(cfg.OutputFile)
	} else {
		w = output.NewWriter(cfg.OutputFile, cfg)
	}
	if err := w.WriteResult(res); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing result: %v\n", err)
		return 1
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing result: %v\n", err)
		return 1
	}

	if res.Err != nil {
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%v\n", res.Err)
		}
		return 1
	}
	return 0
}

// runBatch reads queries from the named files (stdin when none are given),
// evaluates them on the worker pool and writes the results in input order.
// If ctx is cancelled mid-batch only the answered queries are written and
// the exit status is 1.
func runBatch(ctx context.Context, cfg *config.Config, paths []string) int {
	var queries []query.Query
	skipped := 0
	exitCode := 0

	read := func(r io.Reader, name string) bool {
		qs, n, err := readQueries(cfg, r, name)
		queries = append(queries, qs...)
		skipped += n
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error reading %s: %v\n", name, err)
			exitCode = 1
			return false
		}
		return true
	}

	if len(paths) == 0 {
		read(os.Stdin, "stdin")
	}
	for _, path := range paths {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening %s: %v\n", path, err)
			exitCode = 1
			break
		}
		ok := read(file, path)
		file.Close()
		if !ok {
			break
		}
	}

	results, err := worker.EvaluateAll(ctx, queries,
		worker.WithWorkers(cfg.Batch.Workers),
		worker.WithBufferSize(cfg.Batch.BufferSize),
	)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Batch interrupted: %v\n", err)
		exitCode = 1
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	answered, invalid := 0, 0
	for _, res := range results {
		if res.Text == "" {
			continue // never answered
		}
		answered++
		if res.Err != nil {
			invalid++
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "line %d: %s %s -> %s\n",
				res.Query.Line, res.Query.Piece, res.Query.Square, res.Text)
		}
		if err := w.WriteResult(res); err != nil {
			fmt.Fprintf(cfg.LogFile, "Error writing result: %v\n", err)
			return 1
		}
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error writing results: %v\n", err)
		return 1
	}

	if cfg.Verbosity > 0 {
		reportStatistics(cfg.LogFile, answered, invalid, skipped)
	}
	return exitCode
}

// readQueries scans r until end of input. Malformed lines are logged and
// skipped unless StopOnError is set, in which case the first one is returned
// as the error along with the queries read before it.
func readQueries(cfg *config.Config, r io.Reader, name string) ([]query.Query, int, error) {
	if cfg.Batch.StopOnError {
		queries, err := query.ReadAll(r)
		return queries, 0, err
	}

	sc := query.NewScanner(r)
	var queries []query.Query
	skipped := 0

	for {
		for sc.Scan() {
			queries = append(queries, sc.Query())
		}
		err := sc.Err()
		if err == nil {
			return queries, skipped, nil
		}

		var qerr *chesserrors.QueryError
		if !errors.As(err, &qerr) {
			return queries, skipped, err
		}
		if cfg.Verbosity > 0 {
			fmt.Fprintf(cfg.LogFile, "%s: skipping %v\n", name, err)
		}
		skipped++
		sc.Skip()
	}
}

// reportStatistics writes the batch summary to the log.
func reportStatistics(w io.Writer, total, invalid, skipped int) {
	fmt.Fprintf(w, "%d %s answered", total, plural(total, "query", "queries"))
	if invalid > 0 {
		fmt.Fprintf(w, ", %d rejected", invalid)
	}
	if skipped > 0 {
		fmt.Fprintf(w, ", %d malformed %s skipped", skipped, plural(skipped, "line", "lines"))
	}
	fmt.Fprintln(w)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve(cfg *config.Config) int {
	ctx, stop := signalContext()
	defer stop()

	if err := server.New(cfg).ListenAndServe(ctx); err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options] [query-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Lists the squares a single piece can reach on an empty board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nQuery files hold one '<piece> <square>' pair per line;\n")
	fmt.Fprintf(os.Stderr, "blank lines and lines starting with '#' are ignored.\n")
	fmt.Fprintf(os.Stderr, "\nPieces: pawn, king, queen, bishop (any case)\n")
	fmt.Fprintf(os.Stderr, "Squares: A1 through H8 (uppercase)\n")
}
