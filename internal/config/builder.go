package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithThreats enables the attack map overlay.
func (b *ConfigBuilder) WithThreats(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowThreats = enabled
	return b
}

// WithCaptured controls the captured pieces listing.
func (b *ConfigBuilder) WithCaptured(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowCaptured = enabled
	return b
}

// WithHistory controls the move history listing.
func (b *ConfigBuilder) WithHistory(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowHistory = enabled
	return b
}

// WithLineLength sets the history wrap width.
func (b *ConfigBuilder) WithLineLength(n int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = n
	return b
}

// WithDuplicateDetection flags replays that end in an already seen position.
func (b *ConfigBuilder) WithDuplicateDetection(enabled bool) *ConfigBuilder {
	b.cfg.Duplicate.Detect = enabled
	return b
}

// WithPlayers sets the player names.
func (b *ConfigBuilder) WithPlayers(white, black string) *ConfigBuilder {
	b.cfg.Game.WhiteName = white
	b.cfg.Game.BlackName = black
	return b
}

// WithAttackRecompute controls attack map refresh after each move.
func (b *ConfigBuilder) WithAttackRecompute(enabled bool) *ConfigBuilder {
	b.cfg.Game.RecomputeAttacks = enabled
	return b
}

// WithStopOnRejection ends replays at their first rejected move.
func (b *ConfigBuilder) WithStopOnRejection(enabled bool) *ConfigBuilder {
	b.cfg.Game.StopOnRejection = enabled
	return b
}

// WithWorkers sets the number of concurrent replays.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogLevel sets the log level name.
func (b *ConfigBuilder) WithLogLevel(level string) *ConfigBuilder {
	b.cfg.LogLevel = level
	return b
}
