// Package processing replays move scripts through the arbiter.
package processing

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/hashing"
	"github.com/lgbarn/chess-arbiter-go/internal/parser"
	"github.com/lgbarn/chess-arbiter-go/internal/session"
)

// Rejection records a script move the arbiter refused.
type Rejection struct {
	Move parser.ScriptMove
	Err  error
}

// Kind returns the rejection reason.
func (r Rejection) Kind() errors.Kind {
	kind, _ := errors.KindOf(r.Err)
	return kind
}

// Replay holds the outcome of replaying one script.
type Replay struct {
	Script     *parser.Script
	Game       *chess.Game
	Applied    int
	Rejections []Rejection
	Stopped    bool // replay halted at the first rejection

	Duplicate   bool
	DuplicateOf string // name of the earlier script with the same final position
}

// Replayer turns scripts into games.
type Replayer struct {
	cfg      *config.GameConfig
	arbiter  *engine.Arbiter
	logger   *zap.Logger
	detector *hashing.ThreadSafeDuplicateDetector
}

// NewReplayer creates a replayer. A nil logger discards output; a nil
// detector disables duplicate detection.
func NewReplayer(cfg *config.GameConfig, logger *zap.Logger, detector *hashing.ThreadSafeDuplicateDetector) *Replayer {
	if cfg == nil {
		cfg = config.NewGameConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Replayer{
		cfg:      cfg,
		arbiter:  engine.NewArbiter(logger),
		logger:   logger.Named("replay"),
		detector: detector,
	}
}

// NewGame builds the starting position for a script. Names given in the
// script override the configured ones.
func (r *Replayer) NewGame(s *parser.Script) (*chess.Game, error) {
	white := engine.PlayerSpec{Name: r.cfg.WhiteName, Colour: chess.White}
	black := engine.PlayerSpec{Name: r.cfg.BlackName, Colour: chess.Black}
	if s.White != "" {
		white.Name = s.White
	}
	if s.Black != "" {
		black.Name = s.Black
	}

	if s.FEN != "" {
		return engine.NewGameFromFEN(s.FEN, white, black)
	}
	return engine.NewGame(white, black)
}

// Replay plays every move of s. Rejected moves are recorded and skipped,
// or end the replay when StopOnRejection is set. A corrupt game state
// aborts with an error carrying the script line.
func (r *Replayer) Replay(s *parser.Script) (*Replay, error) {
	g, err := r.NewGame(s)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", s.Name)
	}

	result := &Replay{Script: s}
	sg := session.NewSafeGame(g, r.arbiter, r.cfg.RecomputeAttacks)

	for _, m := range s.Moves {
		_, err := sg.AttemptMove(m.From, m.To)
		if err == nil {
			result.Applied++
			continue
		}
		if errors.IsFatal(err) {
			result.Game = sg.Snapshot()
			return result, errors.Wrapf(err, "%s:%d", s.Source, m.Line)
		}

		result.Rejections = append(result.Rejections, Rejection{Move: m, Err: err})
		if r.cfg.StopOnRejection {
			result.Stopped = true
			break
		}
	}

	result.Game = sg.Snapshot()

	if r.detector != nil {
		result.DuplicateOf, result.Duplicate = r.detector.CheckAndAdd(result.Game, s.Name)
	}

	r.logger.Info("script replayed",
		zap.String("script", s.Name),
		zap.Int("applied", result.Applied),
		zap.Int("rejected", len(result.Rejections)),
		zap.Bool("duplicate", result.Duplicate))

	return result, nil
}
