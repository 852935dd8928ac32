package parser

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

const commentChar = '#'

// Lexer splits move script input into per-line token lists.
type Lexer struct {
	scanner *bufio.Scanner
	lineNum int
	eof     bool
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{scanner: bufio.NewScanner(r)}
}

// LineNum returns the number of the last line read.
func (l *Lexer) LineNum() int {
	return l.lineNum
}

// NextLine returns the tokens of the next line that is neither blank nor a
// comment. It returns nil, nil at end of input.
func (l *Lexer) NextLine() ([]Token, error) {
	for !l.eof {
		if !l.scanner.Scan() {
			l.eof = true
			if err := l.scanner.Err(); err != nil {
				return nil, &errors.ParseError{Err: errors.Wrap(errors.ErrParseFailure, err.Error()), Line: l.lineNum}
			}
			return nil, nil
		}
		l.lineNum++

		text := l.scanner.Text()
		if i := strings.IndexByte(text, commentChar); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		tokens := make([]Token, 0, len(fields))
		for _, field := range fields {
			tok, err := l.classify(field)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		}
		return tokens, nil
	}
	return nil, nil
}

// classify turns one whitespace-separated field into a token.
func (l *Lexer) classify(field string) (Token, error) {
	tok := Token{Type: TokWord, Text: field, Line: l.lineNum}

	switch {
	case field == "->":
		tok.Type = TokArrow
	case strings.Contains(field, ",") && !strings.Contains(field, "/"):
		c, ok := parseCoord(field)
		if !ok {
			return Token{}, &errors.ParseError{
				Err:  errors.Wrap(errors.ErrParseFailure, "malformed coordinate"),
				Line: l.lineNum,
				Got:  field,
			}
		}
		tok.Type = TokCoord
		tok.Coord = c
	}
	return tok, nil
}

// parseCoord parses "x,y". Off-board values are accepted here; bounds are
// the arbiter's concern.
func parseCoord(s string) (chess.Coord, bool) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return chess.Coord{}, false
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return chess.Coord{}, false
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return chess.Coord{}, false
	}
	return chess.Coord{X: x, Y: y}, true
}
