package config

import (
	"fmt"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// DuplicateConfig holds settings for spotting scripts that reach the same
// final position.
type DuplicateConfig struct {
	// Detect enables duplicate detection
	Detect bool

	// Suppress omits duplicate games from the output
	Suppress bool

	// ExactMatch also requires the same number of applied moves
	ExactMatch bool

	// MaxCapacity bounds the positions remembered, 0 for unlimited
	MaxCapacity int
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}

// Validate checks that the duplicate configuration is valid.
func (d *DuplicateConfig) Validate() error {
	if d.MaxCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d is negative: %w", d.MaxCapacity, errors.ErrInvalidConfig)
	}
	return nil
}
