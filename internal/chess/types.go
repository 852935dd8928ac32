// Package chess provides the core board, piece and player types.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// PawnDirection returns the row delta of a forward pawn step:
// -1 for White (towards row 0), +1 for Black.
func (c Colour) PawnDirection() int {
	if c == White {
		return -1
	}
	return 1
}

// PieceChar returns the owner marker used when rendering a board.
func (c Colour) PieceChar() byte {
	if c == White {
		return 'O'
	}
	return 'X'
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	Rook
	Knight
	Bishop
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'P', 'R', 'N', 'B', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// Value returns the conventional material value of a piece type.
// The king is not scored.
func (p PieceType) Value() int {
	switch p {
	case Pawn:
		return 1
	case Knight, Bishop:
		return 3
	case Rook:
		return 5
	case Queen:
		return 9
	}
	return 0
}

// IsSliding reports whether the piece moves any distance along a line.
func (p PieceType) IsSliding() bool {
	return p == Rook || p == Bishop || p == Queen
}

// Constants for board dimensions.
const (
	BoardSize = 8
	MinIndex  = 0
	MaxIndex  = BoardSize - 1
)

// Coord is a cell address. X is the file (column), Y is the row.
// Row 0 is Black's home row and row 7 is White's.
type Coord struct {
	X int
	Y int
}

// InBounds reports whether both axes lie in [0,7].
func (c Coord) InBounds() bool {
	return c.X >= MinIndex && c.X <= MaxIndex && c.Y >= MinIndex && c.Y <= MaxIndex
}

// Add returns c displaced by v.
func (c Coord) Add(v Vector) Coord {
	return Coord{X: c.X + v.DX, Y: c.Y + v.DY}
}

// String returns the coordinate as "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Vector is a displacement in grid units.
type Vector struct {
	DX int
	DY int
}

// VectorBetween returns the displacement from src to dst.
func VectorBetween(src, dst Coord) Vector {
	return Vector{DX: dst.X - src.X, DY: dst.Y - src.Y}
}

// IsZero reports whether v has no length.
func (v Vector) IsZero() bool {
	return v.DX == 0 && v.DY == 0
}

// Scale returns v multiplied by k.
func (v Vector) Scale(k int) Vector {
	return Vector{DX: v.DX * k, DY: v.DY * k}
}

// LocationState is the occupancy of a cell.
type LocationState int

const (
	Empty LocationState = iota
	Occupied
)

// String returns the string representation of a location state.
func (s LocationState) String() string {
	if s == Occupied {
		return "Occupied"
	}
	return "Empty"
}

// PieceID indexes Game.Pieces.
type PieceID int

// NoPiece marks an absent piece reference.
const NoPiece PieceID = -1

// PlayerIndex indexes Game.Players.
type PlayerIndex int

// Other returns the index of the opposing player.
func (p PlayerIndex) Other() PlayerIndex {
	return 1 - p
}
