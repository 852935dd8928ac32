package config

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// GameConfig holds settings for the games being replayed.
type GameConfig struct {
	// WhiteName and BlackName label the two players
	WhiteName string
	BlackName string

	// RecomputeAttacks refreshes both attack maps after every applied move
	RecomputeAttacks bool

	// StopOnRejection ends a replay at its first rejected move
	StopOnRejection bool
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		WhiteName:        "White",
		BlackName:        "Black",
		RecomputeAttacks: true,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	if g.WhiteName == "" || g.BlackName == "" {
		return fmt.Errorf("player names must not be empty: %w", errors.ErrInvalidConfig)
	}
	if g.WhiteName == g.BlackName {
		return fmt.Errorf("both players are named %q: %w", g.WhiteName, errors.ErrInvalidConfig)
	}
	return nil
}
