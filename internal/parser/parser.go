// Package parser reads move scripts: line-oriented files of source and
// destination coordinates, optionally grouped into named games.
//
// A script line is either a move ("6,7 5,5" or "6,7 -> 5,5") or a directive:
//
//	game <name>      start a new script
//	white <name>     name the White player
//	black <name>     name the Black player
//	fen <placement> [w|b]
//
// Text after '#' is a comment.
package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// ScriptMove is a single requested move and the line it came from.
type ScriptMove struct {
	Line     int
	From, To chess.Coord
}

// Script is one game's worth of moves plus its optional setup.
type Script struct {
	Name      string
	Source    string
	StartLine int
	White     string // empty means use the configured name
	Black     string
	FEN       string // empty means the standard layout
	Moves     []ScriptMove
}

// Parser parses move scripts from a reader.
type Parser struct {
	lexer   *Lexer
	source  string
	pending []Token
}

// NewParser creates a new parser. source names the input in errors and
// default script names.
func NewParser(r io.Reader, source string) *Parser {
	return &Parser{lexer: NewLexer(r), source: source}
}

// next returns the next token line, honouring a pushed-back line.
func (p *Parser) next() ([]Token, error) {
	if p.pending != nil {
		toks := p.pending
		p.pending = nil
		return toks, nil
	}
	return p.lexer.NextLine()
}

// fail builds a ParseError located at tok.
func (p *Parser) fail(tok Token, msg string) error {
	return &errors.ParseError{
		Err:  errors.Wrap(errors.ErrParseFailure, msg),
		File: p.source,
		Line: tok.Line,
		Got:  tok.Text,
	}
}

// locate stamps the source name onto lexer errors.
func (p *Parser) locate(err error) error {
	var pe *errors.ParseError
	if errors.As(err, &pe) && pe.File == "" {
		pe.File = p.source
	}
	return err
}

// ParseScript parses a single script from the input.
// Returns nil if no more scripts are available.
func (p *Parser) ParseScript() (*Script, error) {
	var script *Script

	for {
		toks, err := p.next()
		if err != nil {
			return nil, p.locate(err)
		}
		if toks == nil {
			return script, nil
		}

		first := toks[0]
		if first.Type == TokWord && first.Text == directiveGame {
			if script != nil {
				p.pending = toks
				return script, nil
			}
			script = p.newScript(first.Line)
			if name := joinWords(toks[1:]); name != "" {
				script.Name = name
			}
			continue
		}

		if script == nil {
			script = p.newScript(first.Line)
		}
		if first.Type == TokWord {
			err = p.parseDirective(script, toks)
		} else {
			err = p.parseMove(script, toks)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) newScript(line int) *Script {
	return &Script{
		Name:      fmt.Sprintf("%s:%d", p.source, line),
		Source:    p.source,
		StartLine: line,
	}
}

// parseDirective handles the white, black and fen directives.
func (p *Parser) parseDirective(script *Script, toks []Token) error {
	keyword := toks[0]
	arg := joinWords(toks[1:])
	if arg == "" {
		return p.fail(keyword, "directive needs an argument")
	}

	switch strings.ToLower(keyword.Text) {
	case directiveWhite:
		script.White = arg
	case directiveBlack:
		script.Black = arg
	case directiveFEN:
		if len(script.Moves) > 0 {
			return p.fail(keyword, "fen must precede the moves")
		}
		script.FEN = arg
	default:
		return p.fail(keyword, "unknown directive")
	}
	return nil
}

// parseMove handles "x,y x,y" and "x,y -> x,y".
func (p *Parser) parseMove(script *Script, toks []Token) error {
	if len(toks) == 3 && toks[1].Type == TokArrow {
		toks = []Token{toks[0], toks[2]}
	}
	if len(toks) != 2 {
		return p.fail(toks[len(toks)-1], "expected a source and a destination")
	}
	for _, tok := range toks {
		if tok.Type != TokCoord {
			return p.fail(tok, "expected a coordinate")
		}
	}

	script.Moves = append(script.Moves, ScriptMove{
		Line: toks[0].Line,
		From: toks[0].Coord,
		To:   toks[1].Coord,
	})
	return nil
}

// joinWords joins token texts with single spaces.
func joinWords(toks []Token) string {
	parts := make([]string, len(toks))
	for i, tok := range toks {
		parts[i] = tok.Text
	}
	return strings.Join(parts, " ")
}

// ParseAllScripts parses all scripts from the input.
func (p *Parser) ParseAllScripts() ([]*Script, error) {
	var scripts []*Script
	for {
		script, err := p.ParseScript()
		if err != nil {
			return scripts, err
		}
		if script == nil {
			return scripts, nil
		}
		scripts = append(scripts, script)
	}
}

// ParseFile parses every script in the named file.
func ParseFile(path string) ([]*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return NewParser(f, path).ParseAllScripts()
}
