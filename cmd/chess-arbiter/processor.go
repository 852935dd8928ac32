package main

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
	"github.com/lgbarn/chess-arbiter-go/internal/output"
	"github.com/lgbarn/chess-arbiter-go/internal/parser"
	"github.com/lgbarn/chess-arbiter-go/internal/processing"
	"github.com/lgbarn/chess-arbiter-go/internal/worker"
)

//go:embed demo.txt
var demoScript string

// runStats summarises a run for the final report.
type runStats struct {
	scripts    int
	applied    int
	rejected   int
	duplicates int
	failed     int
}

// loadScripts parses every named file, "-" meaning stdin. With no names the
// built-in demonstration game is used.
func loadScripts(args []string, stdin io.Reader) ([]*parser.Script, error) {
	if len(args) == 0 {
		return parser.NewParser(strings.NewReader(demoScript), "demo").ParseAllScripts()
	}

	var scripts []*parser.Script
	for _, name := range args {
		var (
			parsed []*parser.Script
			err    error
		)
		if name == "-" {
			parsed, err = parser.NewParser(stdin, "stdin").ParseAllScripts()
		} else {
			parsed, err = parser.ParseFile(name)
		}
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, parsed...)
	}
	return scripts, nil
}

// setupDuplicateDetector creates the shared detector when enabled.
func setupDuplicateDetector(cfg *config.Config) *hashing.ThreadSafeDuplicateDetector {
	if !cfg.Duplicate.Detect {
		return nil
	}
	return hashing.NewThreadSafeDuplicateDetector(cfg.Duplicate.ExactMatch, cfg.Duplicate.MaxCapacity)
}

// replayScripts replays scripts on cfg.Workers goroutines and returns the
// results in input order.
func replayScripts(ctx context.Context, cfg *config.Config, logger *zap.Logger,
	detector *hashing.ThreadSafeDuplicateDetector, scripts []*parser.Script) ([]worker.ProcessResult, error) {
	replayer := processing.NewReplayer(&cfg.Game, logger, detector)

	pool := worker.NewPoolWithOptions(worker.ReplayFunc(replayer),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(2*cfg.Workers))
	return pool.Run(ctx, scripts)
}

// writeResults renders every replay through the configured writer.
// Rejections are listed above each text board and logged in JSON mode.
func writeResults(cfg *config.Config, logger *zap.Logger, results []worker.ProcessResult) (runStats, error) {
	var stats runStats
	gw := output.NewGameWriter(cfg.OutputFile, cfg)

	for _, r := range results {
		stats.scripts++
		if r.Error != nil {
			stats.failed++
			logger.Error("replay failed", zap.String("script", r.Script.Name), zap.Error(r.Error))
			continue
		}

		replay := r.Replay
		stats.applied += replay.Applied
		stats.rejected += len(replay.Rejections)
		if replay.Duplicate {
			stats.duplicates++
			if cfg.Duplicate.Suppress {
				continue
			}
		}

		if !cfg.Output.JSONFormat {
			if err := writeReport(cfg.OutputFile, replay); err != nil {
				return stats, err
			}
		} else {
			for _, rej := range replay.Rejections {
				logger.Warn("move rejected",
					zap.String("script", r.Script.Name),
					zap.Int("line", rej.Move.Line),
					zap.Stringer("reason", rej.Kind()))
			}
		}

		if err := gw.WriteGame(replay.Game); err != nil {
			return stats, err
		}
	}

	return stats, gw.Close()
}

// writeReport writes a script's heading and its rejections.
func writeReport(w io.Writer, replay *processing.Replay) error {
	s := replay.Script
	if _, err := fmt.Fprintf(w, "[%s] %d applied, %d rejected\n", s.Name, replay.Applied, len(replay.Rejections)); err != nil {
		return err
	}
	for _, rej := range replay.Rejections {
		if _, err := fmt.Fprintf(w, "  %s:%d: ", s.Source, rej.Move.Line); err != nil {
			return err
		}
		if err := output.RenderMoveResult(w, replay.Game, nil, rej.Err); err != nil {
			return err
		}
	}
	if replay.Stopped {
		if _, err := fmt.Fprintln(w, "  stopped at first rejection"); err != nil {
			return err
		}
	}
	if replay.Duplicate {
		if _, err := fmt.Fprintf(w, "  same final position as %s\n", replay.DuplicateOf); err != nil {
			return err
		}
	}
	return nil
}

// run loads, replays and writes every script.
func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, args []string, stdin io.Reader) (runStats, *hashing.ThreadSafeDuplicateDetector, error) {
	scripts, err := loadScripts(args, stdin)
	if err != nil {
		return runStats{}, nil, err
	}

	detector := setupDuplicateDetector(cfg)
	results, err := replayScripts(ctx, cfg, logger, detector, scripts)
	if err != nil {
		return runStats{}, detector, err
	}

	stats, err := writeResults(cfg, logger, results)
	return stats, detector, err
}
