package chess

// Location is one cell of the board.
type Location struct {
	Coord Coord
	State LocationState

	// Piece is the occupant, NoPiece when State is Empty.
	Piece PieceID

	// Per-colour threat flags, maintained by the attack map.
	WhiteAttackable bool
	BlackAttackable bool
}

// Attackable returns the threat flag for the given colour.
func (l *Location) Attackable(colour Colour) bool {
	if colour == White {
		return l.WhiteAttackable
	}
	return l.BlackAttackable
}

// SetAttackable sets the threat flag for the given colour.
func (l *Location) SetAttackable(colour Colour, v bool) {
	if colour == White {
		l.WhiteAttackable = v
	} else {
		l.BlackAttackable = v
	}
}

// Board is the 8x8 grid of locations, addressed Cells[y][x].
type Board struct {
	Cells [BoardSize][BoardSize]Location
}

// NewBoard creates a board with every cell Empty.
func NewBoard() *Board {
	b := &Board{}
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Cells[y][x] = Location{
				Coord: Coord{X: x, Y: y},
				State: Empty,
				Piece: NoPiece,
			}
		}
	}
	return b
}

// InBounds reports whether c addresses a cell of the board.
func (b *Board) InBounds(c Coord) bool {
	return c.InBounds()
}

// At returns the location at c, or nil if c is off the board.
func (b *Board) At(c Coord) *Location {
	if !c.InBounds() {
		return nil
	}
	return &b.Cells[c.Y][c.X]
}

// IsEmpty reports whether the cell at c is on the board and Empty.
func (b *Board) IsEmpty(c Coord) bool {
	loc := b.At(c)
	return loc != nil && loc.State == Empty
}

// Occupy marks the cell at c as holding id.
func (b *Board) Occupy(c Coord, id PieceID) {
	loc := &b.Cells[c.Y][c.X]
	loc.State = Occupied
	loc.Piece = id
}

// Vacate marks the cell at c as Empty.
func (b *Board) Vacate(c Coord) {
	loc := &b.Cells[c.Y][c.X]
	loc.State = Empty
	loc.Piece = NoPiece
}

// ClearAttacks resets the threat flag of one colour on every cell.
// The other colour's flags are left untouched.
func (b *Board) ClearAttacks(colour Colour) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			b.Cells[y][x].SetAttackable(colour, false)
		}
	}
}
