// Package engine provides move validation, capture resolution and attack maps.
//
// All operations are synchronous and mutate the *chess.Game they are given.
// Callers sharing a game between goroutines must serialise access to it
// (see package session).
package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// Arbiter applies the movement rules to games and logs its decisions.
// An Arbiter holds no game state and may be shared.
type Arbiter struct {
	logger *zap.Logger
}

// NewArbiter creates an arbiter logging to logger. A nil logger discards
// all output.
func NewArbiter(logger *zap.Logger) *Arbiter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Arbiter{logger: logger.Named("arbiter")}
}

// AttemptMove validates and applies a move with a non-logging arbiter.
func AttemptMove(g *chess.Game, from, to chess.Coord) (*chess.MoveRecord, error) {
	return NewArbiter(nil).AttemptMove(g, from, to)
}

// RecomputeAttackMap refreshes one player's threat flags with a non-logging
// arbiter.
func RecomputeAttackMap(g *chess.Game, p chess.PlayerIndex) {
	NewArbiter(nil).RecomputeAttackMap(g, p)
}

// RecomputeAllAttackMaps refreshes the threat flags of both players.
func (a *Arbiter) RecomputeAllAttackMaps(g *chess.Game) {
	for i := range g.Players {
		a.RecomputeAttackMap(g, chess.PlayerIndex(i))
	}
}

// coordField logs a coordinate as "(x,y)".
func coordField(key string, c chess.Coord) zap.Field {
	return zap.Stringer(key, c)
}
