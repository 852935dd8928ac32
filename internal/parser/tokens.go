package parser

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// TokenType identifies the kind of a script token.
type TokenType int

const (
	// TokWord is a bare word: a directive keyword or one of its arguments.
	TokWord TokenType = iota
	// TokCoord is an "x,y" coordinate pair.
	TokCoord
	// TokArrow is the optional "->" separator between two coordinates.
	TokArrow
)

var tokenTypeNames = [...]string{
	TokWord:  "word",
	TokCoord: "coordinate",
	TokArrow: "arrow",
}

func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "unknown"
}

// Token is a single lexical unit of a script line.
type Token struct {
	Type  TokenType
	Text  string
	Coord chess.Coord // valid when Type is TokCoord
	Line  int
}

// Script directives.
const (
	directiveGame  = "game"
	directiveWhite = "white"
	directiveBlack = "black"
	directiveFEN   = "fen"
)
