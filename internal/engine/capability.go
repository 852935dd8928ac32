package engine

import (
	"math"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// directionTolerance bounds |cos θ - 1| for two vectors to count as
// pointing the same way.
const directionTolerance = 1e-9

// Canonical direction and offset sets.
var (
	orthogonals = []chess.Vector{{DX: 1, DY: 0}, {DX: -1, DY: 0}, {DX: 0, DY: 1}, {DX: 0, DY: -1}}
	diagonals   = []chess.Vector{{DX: 1, DY: 1}, {DX: 1, DY: -1}, {DX: -1, DY: 1}, {DX: -1, DY: -1}}
	allLines    = append(append([]chess.Vector{}, orthogonals...), diagonals...)

	knightJumps = []chess.Vector{
		{DX: -2, DY: -1}, {DX: -2, DY: 1}, {DX: -1, DY: -2}, {DX: -1, DY: 2},
		{DX: 1, DY: -2}, {DX: 1, DY: 2}, {DX: 2, DY: -1}, {DX: 2, DY: 1},
	}
	kingSteps = allLines
)

// SameDirection reports whether a and b point the same way, comparing the
// cosine of the angle between them against 1. Zero vectors have no
// direction and never match.
func SameDirection(a, b chess.Vector) bool {
	normA := math.Hypot(float64(a.DX), float64(a.DY))
	normB := math.Hypot(float64(b.DX), float64(b.DY))
	if normA == 0 || normB == 0 {
		return false
	}

	dot := float64(a.DX*b.DX + a.DY*b.DY)
	cosTheta := dot / (normA * normB)

	return math.Abs(cosTheta-1) <= directionTolerance
}

// slidingDirections returns the canonical directions of a sliding piece,
// or nil for short-range pieces.
func slidingDirections(pieceType chess.PieceType) []chess.Vector {
	switch pieceType {
	case chess.Rook:
		return orthogonals
	case chess.Bishop:
		return diagonals
	case chess.Queen:
		return allLines
	}
	return nil
}

// matchesAnyDirection reports whether v points along one of dirs.
func matchesAnyDirection(dirs []chess.Vector, v chess.Vector) bool {
	for _, d := range dirs {
		if SameDirection(d, v) {
			return true
		}
	}
	return false
}

// CanMove reports whether v is a legal non-capturing displacement for a piece
// of the given type. pawnDir is the owner's forward row delta and hasMoved
// the piece's first-move state; both only matter for pawns.
func CanMove(pieceType chess.PieceType, pawnDir int, hasMoved bool, v chess.Vector) bool {
	switch pieceType {
	case chess.Pawn:
		if v.DX != 0 {
			return false
		}
		if v.DY == pawnDir {
			return true
		}
		return !hasMoved && v.DY == 2*pawnDir

	case chess.Knight:
		dx, dy := abs(v.DX), abs(v.DY)
		return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)

	case chess.Rook, chess.Bishop, chess.Queen:
		return matchesAnyDirection(slidingDirections(pieceType), v)

	case chess.King:
		dx, dy := abs(v.DX), abs(v.DY)
		return dx <= 1 && dy <= 1 && !v.IsZero()
	}

	return false
}

// CanAttack reports whether v is a legal capturing displacement. Only pawns
// differ from CanMove: they capture exactly one step diagonally forward.
func CanAttack(pieceType chess.PieceType, pawnDir int, v chess.Vector) bool {
	if pieceType == chess.Pawn {
		return abs(v.DX) == 1 && v.DY == pawnDir
	}
	return CanMove(pieceType, pawnDir, true, v)
}
