// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

var (
	// Output options
	outputFile   = flag.String("o", "", "Output file (default: stdout)")
	appendOutput = flag.Bool("a", false, "Append to output file instead of overwrite")
	jsonOutput   = flag.Bool("J", false, "Output in JSON format")
	showThreats  = flag.Bool("threats", false, "Mark cells the side to move attacks")
	noCaptured   = flag.Bool("nocaptured", false, "Don't list captured pieces and scores")
	showHistory  = flag.Bool("history", false, "List every applied move")
	lineLength   = flag.Int("w", 80, "Maximum line length")

	// Game options
	whiteName    = flag.String("white", "White", "Name of the White player")
	blackName    = flag.String("black", "Black", "Name of the Black player")
	noAttacks    = flag.Bool("noattacks", false, "Don't recompute attack maps after each move")
	stopOnReject = flag.Bool("stop", false, "Stop a script at its first rejected move")

	// Duplicate detection
	detectDuplicates   = flag.Bool("dups", false, "Report scripts ending in an already seen position")
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games (implies -dups)")
	exactDuplicates    = flag.Bool("exact", false, "Duplicates must also have the same number of moves")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Runtime options
	workers  = flag.Int("workers", runtime.NumCPU(), "Number of scripts replayed concurrently")
	logFile  = flag.String("l", "", "Write log to file")
	logLevel = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	verbose  = flag.Bool("v", false, "Log every move decision")
	quiet    = flag.Bool("s", false, "Silent mode: no log output")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyOutputFlags(cfg)
	applyGameFlags(cfg)
	applyDuplicateFlags(cfg)
	applyRuntimeFlags(cfg)
}

// applyOutputFlags configures board and result output.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowThreats = *showThreats
	cfg.Output.ShowCaptured = !*noCaptured
	cfg.Output.ShowHistory = *showHistory
	cfg.Output.MaxLineLength = *lineLength
	cfg.OutputFilename = *outputFile
}

// applyGameFlags configures players and replay behaviour.
func applyGameFlags(cfg *config.Config) {
	cfg.Game.WhiteName = *whiteName
	cfg.Game.BlackName = *blackName
	cfg.Game.RecomputeAttacks = !*noAttacks
	cfg.Game.StopOnRejection = *stopOnReject
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Detect = *detectDuplicates || *suppressDuplicates
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
	cfg.Duplicate.MaxCapacity = *duplicateCapacity
}

// applyRuntimeFlags configures workers and logging.
func applyRuntimeFlags(cfg *config.Config) {
	cfg.Workers = *workers
	cfg.LogLevel = *logLevel
	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}
