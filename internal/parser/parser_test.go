package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

func at(x, y int) chess.Coord {
	return chess.Coord{X: x, Y: y}
}

// parseTestScripts is a helper that parses input and fails on error.
func parseTestScripts(t *testing.T, input string) []*Script {
	t.Helper()
	scripts, err := NewParser(strings.NewReader(input), "test").ParseAllScripts()
	if err != nil {
		t.Fatalf("ParseAllScripts error: %v", err)
	}
	return scripts
}

func TestParseSimpleScript(t *testing.T) {
	scripts := parseTestScripts(t, `# opening
4,6 4,4
4,1 -> 4,3

6,7 5,5   # knight out
`)

	if len(scripts) != 1 {
		t.Fatalf("got %d scripts, want 1", len(scripts))
	}
	s := scripts[0]
	want := []ScriptMove{
		{Line: 2, From: at(4, 6), To: at(4, 4)},
		{Line: 3, From: at(4, 1), To: at(4, 3)},
		{Line: 5, From: at(6, 7), To: at(5, 5)},
	}
	testutil.AssertEqual(t, s.Moves, want)

	if s.Name != "test:2" || s.StartLine != 2 || s.Source != "test" {
		t.Errorf("Name/StartLine/Source = %q/%d/%q", s.Name, s.StartLine, s.Source)
	}
}

func TestParseDirectives(t *testing.T) {
	scripts := parseTestScripts(t, `game Scholar's attempt
white alice
black bob
fen rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b
4,1 4,3
`)

	s := scripts[0]
	if s.Name != "Scholar's attempt" {
		t.Errorf("Name = %q", s.Name)
	}
	if s.White != "alice" || s.Black != "bob" {
		t.Errorf("players = %q/%q, want alice/bob", s.White, s.Black)
	}
	if s.FEN != "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b" {
		t.Errorf("FEN = %q", s.FEN)
	}
	if len(s.Moves) != 1 || s.Moves[0].Line != 5 {
		t.Errorf("Moves = %+v", s.Moves)
	}
}

func TestParseMultipleScripts(t *testing.T) {
	scripts := parseTestScripts(t, `game first
4,6 4,4
game second
3,6 3,4
3,1 3,3
game
`)

	if len(scripts) != 3 {
		t.Fatalf("got %d scripts, want 3", len(scripts))
	}
	if scripts[0].Name != "first" || len(scripts[0].Moves) != 1 {
		t.Errorf("first = %+v", scripts[0])
	}
	if scripts[1].Name != "second" || len(scripts[1].Moves) != 2 {
		t.Errorf("second = %+v", scripts[1])
	}
	if scripts[2].Name != "test:6" || len(scripts[2].Moves) != 0 {
		t.Errorf("unnamed = %+v", scripts[2])
	}
}

func TestParseOffBoardCoordinates(t *testing.T) {
	scripts := parseTestScripts(t, "-1,0 8,8\n")

	got := scripts[0].Moves[0]
	if got.From != at(-1, 0) || got.To != at(8, 8) {
		t.Errorf("move = %+v, off-board values should pass through", got)
	}
}

func TestParseEmptyInput(t *testing.T) {
	p := NewParser(strings.NewReader("# nothing\n\n   \n"), "empty")
	script, err := p.ParseScript()
	testutil.AssertNoError(t, err)
	if script != nil {
		t.Errorf("ParseScript() = %+v, want nil", script)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
		wantGot  string
	}{
		{"malformed coordinate", "4,6 4,x\n", 1, "4,x"},
		{"single coordinate", "4,6 4,4\n4,6\n", 2, "4,6"},
		{"extra coordinate", "4,6 4,4 4,3\n", 1, "4,3"},
		{"word instead of coordinate", "4,6 e4\n", 1, "e4"},
		{"unknown directive", "castle kingside\n", 1, "castle"},
		{"directive without argument", "white\n", 1, "white"},
		{"fen after moves", "4,6 4,4\nfen 8/8/8/8/8/8/8/8\n", 2, "fen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewParser(strings.NewReader(tt.input), "bad.txt").ParseAllScripts()
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)

			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error %v is not a ParseError", err)
			}
			if pe.File != "bad.txt" || pe.Line != tt.wantLine || pe.Got != tt.wantGot {
				t.Errorf("ParseError = %s:%d %q, want bad.txt:%d %q", pe.File, pe.Line, pe.Got, tt.wantLine, tt.wantGot)
			}
		})
	}
}

func TestLexerTokens(t *testing.T) {
	l := NewLexer(strings.NewReader("\n  6,7 -> 5,5 # c\n"))

	toks, err := l.NextLine()
	testutil.AssertNoError(t, err)

	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3", len(toks))
	}
	wantTypes := []TokenType{TokCoord, TokArrow, TokCoord}
	for i, tok := range toks {
		if tok.Type != wantTypes[i] {
			t.Errorf("token %d type = %v, want %v", i, tok.Type, wantTypes[i])
		}
		if tok.Line != 2 {
			t.Errorf("token %d line = %d, want 2", i, tok.Line)
		}
	}
	if toks[2].Coord != at(5, 5) {
		t.Errorf("coord = %v, want (5,5)", toks[2].Coord)
	}

	toks, err = l.NextLine()
	if toks != nil || err != nil {
		t.Errorf("NextLine() at end = %v, %v", toks, err)
	}
	if l.LineNum() != 2 {
		t.Errorf("LineNum() = %d, want 2", l.LineNum())
	}
}

func TestTokenTypeString(t *testing.T) {
	if TokArrow.String() != "arrow" || TokenType(42).String() != "unknown" {
		t.Errorf("String() = %q/%q", TokArrow.String(), TokenType(42).String())
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.txt")
	if err := os.WriteFile(path, []byte("game g1\n4,6 4,4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	scripts, err := ParseFile(path)
	testutil.AssertNoError(t, err)
	if len(scripts) != 1 || scripts[0].Source != path {
		t.Errorf("ParseFile() = %+v", scripts)
	}

	if _, err := ParseFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("ParseFile() on a missing file should fail")
	}
}
