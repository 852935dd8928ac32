// Package config provides configuration for chess-arbiter.
package config

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=rejections and summary, 2=every move

	// LogLevel is a zap level name: debug, info, warn or error.
	LogLevel string

	// Workers is the number of scripts replayed concurrently.
	Workers int

	Output    OutputConfig
	Game      GameConfig
	Duplicate DuplicateConfig

	// File handling
	OutputFilename string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		LogLevel:   "info",
		Workers:    runtime.NumCPU(),
		Output:     *NewOutputConfig(),
		Game:       *NewGameConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the writer boards and results are written to.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Level returns the configured log level. Verbosity 2 forces debug.
func (c *Config) Level() (zapcore.Level, error) {
	if c.Verbosity >= 2 {
		return zapcore.DebugLevel, nil
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("log level %q: %w", c.LogLevel, errors.ErrInvalidConfig)
	}
	return level, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if err := c.Game.Validate(); err != nil {
		return err
	}
	return c.Duplicate.Validate()
}
