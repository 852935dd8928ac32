// chess-arbiter replays move scripts through the move arbiter and prints
// the resulting boards.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
	"github.com/lgbarn/chess-arbiter-go/internal/logging"
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
		fmt.Printf("chess-arbiter version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	closeLog := setupLogFile(cfg)
	defer closeLog()
	closeOutput := setupOutputFile(cfg)
	defer closeOutput()

	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync fails on some platforms

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats, detector, err := run(ctx, cfg, logger, flag.Args(), os.Stdin)
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Verbosity > 0 {
		reportStatistics(os.Stderr, stats, detector)
	}
	if stats.failed > 0 {
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() { file.Close() } //nolint:errcheck,gosec // cleanup on exit
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) func() {
	if cfg.OutputFilename == "" {
		return func() {}
	}

	var file *os.File
	var err error

	if *appendOutput {
		file, err = os.OpenFile(cfg.OutputFilename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created output files
	} else {
		file, err = os.Create(cfg.OutputFilename)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.OutputFilename, err)
		os.Exit(1)
	}
	cfg.SetOutput(file)
	return func() { file.Close() } //nolint:errcheck,gosec // cleanup on exit
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, stats runStats, detector *hashing.ThreadSafeDuplicateDetector) {
	fmt.Fprintf(w, "%d script(s): %d move(s) applied, %d rejected", stats.scripts, stats.applied, stats.rejected)
	if detector != nil {
		fmt.Fprintf(w, ", %d duplicate(s) of %d unique position(s)", stats.duplicates, detector.UniqueCount())
	}
	if stats.failed > 0 {
		fmt.Fprintf(w, ", %d failed", stats.failed)
	}
	fmt.Fprintln(w, ".")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-arbiter [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays move scripts and prints the resulting boards.\n")
	fmt.Fprintf(os.Stderr, "With no files a built-in demonstration game is played; \"-\" reads stdin.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  x,y x,y          move from source to destination (x,y -> x,y also accepted)\n")
	fmt.Fprintf(os.Stderr, "  game <name>      start a new game\n")
	fmt.Fprintf(os.Stderr, "  white <name>     name the White player\n")
	fmt.Fprintf(os.Stderr, "  black <name>     name the Black player\n")
	fmt.Fprintf(os.Stderr, "  fen <placement>  start from a FEN piece placement\n")
	fmt.Fprintf(os.Stderr, "  # ...            comment\n")
}
