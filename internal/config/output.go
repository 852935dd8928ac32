package config

// OutputConfig holds settings related to board and result output.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of the text board
	JSONFormat bool

	// ShowThreats overlays the side to move's attack map on the text board
	ShowThreats bool

	// ShowCaptured lists captured pieces and scores under the board
	ShowCaptured bool

	// ShowHistory lists every applied move
	ShowHistory bool

	// MaxLineLength wraps the history listing
	MaxLineLength int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ShowCaptured:  true,
		MaxLineLength: 80,
	}
}
