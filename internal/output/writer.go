package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
)

// GameWriter is the interface for writing games to output.
// Different implementations handle different output formats (text, JSON).
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(g *chess.Game) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewGameWriter returns the writer selected by cfg.
func NewGameWriter(w io.Writer, cfg *config.Config) GameWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, OptionsFromConfig(&cfg.Output))
}

// TextWriter writes games as text boards.
type TextWriter struct {
	w    io.Writer
	opts RenderOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts RenderOptions) *TextWriter {
	return &TextWriter{
		w:    w,
		opts: opts,
	}
}

// WriteGame writes a game board followed by a blank line.
func (tw *TextWriter) WriteGame(g *chess.Game) error {
	if err := RenderBoard(tw.w, g, tw.opts); err != nil {
		return err
	}
	_, err := io.WriteString(tw.w, "\n")
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w     io.Writer
	games []*JSONBoard
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONBoard, 0),
	}
}

// WriteGame converts a game and buffers it for output. The game is
// converted immediately so later moves do not leak into the output.
func (jw *JSONWriter) WriteGame(g *chess.Game) error {
	jw.games = append(jw.games, BoardToJSON(g))
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
