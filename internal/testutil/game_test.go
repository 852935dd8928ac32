package testutil

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

func TestGameFromDiagram(t *testing.T) {
	g := GameFromDiagram(t,
		"....k...",
		"p.......",
		"........",
		"........",
		"........",
		"...P....",
		"........",
		"R...K...",
	)

	tests := []struct {
		name   string
		at     chess.Coord
		piece  chess.PieceType
		colour chess.Colour
		moved  bool
	}{
		{"black king", chess.Coord{X: 4, Y: 0}, chess.King, chess.Black, false},
		{"black pawn on start row", chess.Coord{X: 0, Y: 1}, chess.Pawn, chess.Black, false},
		{"white pawn advanced", chess.Coord{X: 3, Y: 5}, chess.Pawn, chess.White, true},
		{"white rook", chess.Coord{X: 0, Y: 7}, chess.Rook, chess.White, false},
		{"white king", chess.Coord{X: 4, Y: 7}, chess.King, chess.White, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := g.PieceAt(tt.at)
			if p == nil {
				t.Fatalf("PieceAt(%v) = nil", tt.at)
			}
			if p.Type != tt.piece {
				t.Errorf("Type = %v, want %v", p.Type, tt.piece)
			}
			if got := g.ColourOf(p); got != tt.colour {
				t.Errorf("colour = %v, want %v", got, tt.colour)
			}
			if p.HasMoved != tt.moved {
				t.Errorf("HasMoved = %v, want %v", p.HasMoved, tt.moved)
			}
		})
	}

	if len(g.Players[WhiteIndex].Active) != 3 || len(g.Players[BlackIndex].Active) != 2 {
		t.Errorf("active counts = %d/%d, want 3/2",
			len(g.Players[WhiteIndex].Active), len(g.Players[BlackIndex].Active))
	}
	if g.Players[BlackIndex].King == chess.NoPiece {
		t.Error("black king not recorded")
	}

	AssertInvariants(t, g)
}

func TestPieceFromLetter(t *testing.T) {
	pieceType, colour, ok := pieceFromLetter('n')
	if !ok || pieceType != chess.Knight || colour != chess.Black {
		t.Errorf("pieceFromLetter('n') = %v %v %v, want Knight Black true", pieceType, colour, ok)
	}
	if _, _, ok := pieceFromLetter('x'); ok {
		t.Error("pieceFromLetter('x') should fail")
	}
}
