package chess

import "github.com/google/uuid"

// Piece is one game piece. Pieces are never destroyed; a captured piece
// stays in Game.Pieces with OnBoard false.
type Piece struct {
	ID       PieceID
	Type     PieceType
	Owner    PlayerIndex
	HasMoved bool

	// At is the current cell. Only meaningful while OnBoard is true.
	At      Coord
	OnBoard bool
}

// Player holds one side's identity and piece collections.
type Player struct {
	ID     uuid.UUID
	Name   string
	Colour Colour

	// Active pieces in setup order, minus captures.
	Active []PieceID

	// Captured holds this player's own pieces taken by the opponent,
	// in capture order.
	Captured []PieceID

	King PieceID
}

// PawnDirection returns the row delta of this player's forward pawn step.
func (p *Player) PawnDirection() int {
	return p.Colour.PawnDirection()
}

// PieceChar returns the owner marker used when rendering a board.
func (p *Player) PieceChar() byte {
	return p.Colour.PieceChar()
}

// IndexOfActive returns the position of id in Active, or -1.
func (p *Player) IndexOfActive(id PieceID) int {
	for i, a := range p.Active {
		if a == id {
			return i
		}
	}
	return -1
}

// MoveRecord describes one applied move.
type MoveRecord struct {
	Ply      int
	Piece    PieceID
	Type     PieceType
	Player   PlayerIndex
	From     Coord
	To       Coord
	Captured PieceID
}

// IsCapture reports whether the move took a piece.
func (m MoveRecord) IsCapture() bool {
	return m.Captured != NoPiece
}

// Game is the complete arbiter state: the board, the dense piece table,
// both players and the turn indicator.
type Game struct {
	ID      uuid.UUID
	Board   Board
	Pieces  []Piece
	Players [2]Player

	// Turn is the index of the player to move.
	Turn PlayerIndex

	History []MoveRecord
}

// CurrentPlayer returns the player to move.
func (g *Game) CurrentPlayer() *Player {
	return &g.Players[g.Turn]
}

// SwitchTurn hands the move to the other player.
func (g *Game) SwitchTurn() {
	g.Turn = g.Turn.Other()
}

// Piece returns the piece with the given id, or nil for NoPiece.
func (g *Game) Piece(id PieceID) *Piece {
	if id < 0 || int(id) >= len(g.Pieces) {
		return nil
	}
	return &g.Pieces[id]
}

// PieceAt returns the piece occupying c, or nil.
func (g *Game) PieceAt(c Coord) *Piece {
	loc := g.Board.At(c)
	if loc == nil || loc.State != Occupied {
		return nil
	}
	return g.Piece(loc.Piece)
}

// ColourOf returns the colour of the player owning the piece.
func (g *Game) ColourOf(p *Piece) Colour {
	return g.Players[p.Owner].Colour
}

// PlayerByColour returns the index of the player with the given colour.
func (g *Game) PlayerByColour(colour Colour) PlayerIndex {
	if g.Players[0].Colour == colour {
		return 0
	}
	return 1
}

// Score sums the values of the opponent's pieces this player has captured.
func (g *Game) Score(p PlayerIndex) int {
	total := 0
	for _, id := range g.Players[p.Other()].Captured {
		total += g.Pieces[id].Type.Value()
	}
	return total
}

// PlyCount returns the number of applied moves.
func (g *Game) PlyCount() int {
	return len(g.History)
}

// LastMove returns the most recent move, or nil if none.
func (g *Game) LastMove() *MoveRecord {
	if len(g.History) == 0 {
		return nil
	}
	return &g.History[len(g.History)-1]
}

// Clone creates a deep copy of the game.
func (g *Game) Clone() *Game {
	c := &Game{
		ID:      g.ID,
		Board:   g.Board,
		Pieces:  append([]Piece(nil), g.Pieces...),
		Players: g.Players,
		Turn:    g.Turn,
		History: append([]MoveRecord(nil), g.History...),
	}
	for i := range c.Players {
		c.Players[i].Active = append([]PieceID(nil), g.Players[i].Active...)
		c.Players[i].Captured = append([]PieceID(nil), g.Players[i].Captured...)
	}
	return c
}
