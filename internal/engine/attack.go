package engine

import (
	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// RecomputeAttackMap clears player p's threat flags and marks every cell the
// player's active pieces currently threaten. The opponent's flags are left
// as they were.
func (a *Arbiter) RecomputeAttackMap(g *chess.Game, p chess.PlayerIndex) {
	player := &g.Players[p]
	g.Board.ClearAttacks(player.Colour)

	marked := 0
	for _, id := range player.Active {
		piece := &g.Pieces[id]
		for _, v := range attackVectors(piece.Type, piece.At, player.PawnDirection()) {
			marked += markRay(g, p, PointsAlongVector(piece.At, v, Inclusive))
		}
	}

	a.logger.Debug("attack map recomputed",
		zap.String("player", player.Name),
		zap.Stringer("colour", player.Colour),
		zap.Int("marked", marked))
}

// attackVectors returns one vector per ray a piece at src can attack along.
// Short-range candidates are kept only when their target is on the board;
// sliding pieces get the longest in-bounds vector in each direction.
func attackVectors(pieceType chess.PieceType, src chess.Coord, pawnDir int) []chess.Vector {
	var candidates []chess.Vector

	switch pieceType {
	case chess.Pawn:
		candidates = []chess.Vector{{DX: -1, DY: pawnDir}, {DX: 1, DY: pawnDir}}
	case chess.Knight:
		candidates = knightJumps
	case chess.King:
		candidates = kingSteps
	default:
		var vectors []chess.Vector
		for _, d := range slidingDirections(pieceType) {
			if v := maximalVector(src, d); !v.IsZero() {
				vectors = append(vectors, v)
			}
		}
		return vectors
	}

	vectors := make([]chess.Vector, 0, len(candidates))
	for _, v := range candidates {
		if src.Add(v).InBounds() {
			vectors = append(vectors, v)
		}
	}
	return vectors
}

// maximalVector extends the unit direction d from src up to the last
// in-bounds cell.
func maximalVector(src chess.Coord, d chess.Vector) chess.Vector {
	k := 0
	for src.Add(d.Scale(k + 1)).InBounds() {
		k++
	}
	return d.Scale(k)
}

// markRay walks ray nearest first, marking cells for player p. Empty cells
// are marked and the walk continues; an enemy piece is marked and stops the
// walk; a friendly piece stops it unmarked. Returns the number of cells marked.
func markRay(g *chess.Game, p chess.PlayerIndex, ray []chess.Coord) int {
	colour := g.Players[p].Colour
	marked := 0

	for _, c := range ray {
		loc := g.Board.At(c)
		if loc.State == chess.Empty {
			loc.SetAttackable(colour, true)
			marked++
			continue
		}
		if g.Pieces[loc.Piece].Owner != p {
			loc.SetAttackable(colour, true)
			marked++
		}
		break
	}
	return marked
}

// IsAttacked reports whether c is flagged as threatened by colour.
// The flags are as of the last RecomputeAttackMap for that colour.
func IsAttacked(g *chess.Game, c chess.Coord, colour chess.Colour) bool {
	loc := g.Board.At(c)
	return loc != nil && loc.Attackable(colour)
}

// AttackedCells lists the cells flagged for colour, row by row.
func AttackedCells(g *chess.Game, colour chess.Colour) []chess.Coord {
	var cells []chess.Coord
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			if g.Board.Cells[y][x].Attackable(colour) {
				cells = append(cells, chess.Coord{X: x, Y: y})
			}
		}
	}
	return cells
}
