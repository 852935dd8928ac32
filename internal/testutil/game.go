// Package testutil provides shared test utilities for the chess-arbiter-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// Player indices used by games built here.
const (
	WhiteIndex chess.PlayerIndex = 0
	BlackIndex chess.PlayerIndex = 1
)

// EmptyGame returns a game with a White player "white" (index 0), a Black
// player "black" (index 1), no pieces and White to move.
func EmptyGame() *chess.Game {
	g := &chess.Game{Board: *chess.NewBoard()}
	g.Players[WhiteIndex] = chess.Player{Name: "white", Colour: chess.White, King: chess.NoPiece}
	g.Players[BlackIndex] = chess.Player{Name: "black", Colour: chess.Black, King: chess.NoPiece}
	g.Turn = WhiteIndex
	return g
}

// Place puts a new piece on an empty cell and returns its id. Pawns off
// their starting row are marked as moved.
func Place(t *testing.T, g *chess.Game, colour chess.Colour, pieceType chess.PieceType, at chess.Coord) chess.PieceID {
	t.Helper()
	if !at.InBounds() {
		t.Fatalf("Place: %v is off the board", at)
	}
	if !g.Board.IsEmpty(at) {
		t.Fatalf("Place: %v is already occupied", at)
	}

	owner := g.PlayerByColour(colour)
	id := chess.PieceID(len(g.Pieces))
	pawnRow := 6
	if colour == chess.Black {
		pawnRow = 1
	}

	g.Pieces = append(g.Pieces, chess.Piece{
		ID:       id,
		Type:     pieceType,
		Owner:    owner,
		HasMoved: pieceType == chess.Pawn && at.Y != pawnRow,
		At:       at,
		OnBoard:  true,
	})
	player := &g.Players[owner]
	player.Active = append(player.Active, id)
	if pieceType == chess.King && player.King == chess.NoPiece {
		player.King = id
	}
	g.Board.Occupy(at, id)
	return id
}

// GameFromDiagram builds a game from eight rows of eight characters, row 0
// first. '.' is an empty cell; FEN letters place pieces, uppercase White.
func GameFromDiagram(t *testing.T, rows ...string) *chess.Game {
	t.Helper()
	if len(rows) != chess.BoardSize {
		t.Fatalf("GameFromDiagram: got %d rows, want %d", len(rows), chess.BoardSize)
	}

	g := EmptyGame()
	for y, row := range rows {
		if len(row) != chess.BoardSize {
			t.Fatalf("GameFromDiagram: row %d has %d cells", y, len(row))
		}
		for x := 0; x < chess.BoardSize; x++ {
			c := row[x]
			if c == '.' {
				continue
			}
			pieceType, colour, ok := pieceFromLetter(c)
			if !ok {
				t.Fatalf("GameFromDiagram: unknown piece %q at (%d,%d)", c, x, y)
			}
			Place(t, g, colour, pieceType, chess.Coord{X: x, Y: y})
		}
	}
	return g
}

// pieceFromLetter maps a FEN letter to a piece type and colour.
func pieceFromLetter(c byte) (chess.PieceType, chess.Colour, bool) {
	colour := chess.White
	if c >= 'a' && c <= 'z' {
		colour = chess.Black
		c -= 'a' - 'A'
	}
	for p := chess.Pawn; p < chess.NumPieceTypes; p++ {
		if p.Letter() == c {
			return p, colour, true
		}
	}
	return 0, colour, false
}

// AssertInvariants checks the occupancy, back-reference and collection
// invariants of g.
func AssertInvariants(t *testing.T, g *chess.Game) {
	t.Helper()

	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			loc := &g.Board.Cells[y][x]
			c := chess.Coord{X: x, Y: y}
			switch loc.State {
			case chess.Empty:
				if loc.Piece != chess.NoPiece {
					t.Errorf("empty cell %v references piece %d", c, loc.Piece)
				}
			case chess.Occupied:
				p := g.Piece(loc.Piece)
				if p == nil {
					t.Errorf("occupied cell %v has no piece", c)
					continue
				}
				if !p.OnBoard || p.At != c {
					t.Errorf("piece %d on %v believes it is at %v (on board %v)", p.ID, c, p.At, p.OnBoard)
				}
			}
		}
	}

	seen := make(map[chess.PieceID]int)
	for i := range g.Players {
		player := &g.Players[i]
		for _, id := range player.Active {
			seen[id]++
			p := g.Piece(id)
			if p == nil || p.Owner != chess.PlayerIndex(i) {
				t.Errorf("player %d active set holds foreign piece %d", i, id)
				continue
			}
			if !p.OnBoard {
				t.Errorf("active piece %d is off the board", id)
			} else if loc := g.Board.At(p.At); loc.Piece != id {
				t.Errorf("active piece %d at %v but the cell holds %d", id, p.At, loc.Piece)
			}
		}
		for _, id := range player.Captured {
			seen[id]++
			if p := g.Piece(id); p == nil || p.OnBoard {
				t.Errorf("captured piece %d is still on the board", id)
			}
		}
	}
	for i := range g.Pieces {
		if n := seen[chess.PieceID(i)]; n != 1 {
			t.Errorf("piece %d appears in %d collections, want exactly 1", i, n)
		}
	}

	if g.Turn != 0 && g.Turn != 1 {
		t.Errorf("Turn = %d, want 0 or 1", g.Turn)
	}
}
