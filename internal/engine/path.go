package engine

import (
	"math"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
)

// TraceMode selects which lattice points PointsAlongVector produces.
type TraceMode int

const (
	// Exclusive yields only the strict interior points between source and
	// source+v. Used for collision checks.
	Exclusive TraceMode = iota

	// Inclusive also yields the terminal point. Used for ray casting.
	Inclusive
)

// PointsAlongVector returns the lattice points on the line from src along v,
// nearest first. v is reduced to its primitive step with the gcd of its
// components; points outside the board are dropped. A zero vector yields no
// points.
func PointsAlongVector(src chess.Coord, v chess.Vector, mode TraceMode) []chess.Coord {
	n := gcd(abs(v.DX), abs(v.DY))
	if n == 0 {
		return nil
	}

	step := chess.Vector{DX: v.DX / n, DY: v.DY / n}

	last := n - 1
	if mode == Inclusive {
		last = n
	}

	lo, hi := 1, last
	for _, axis := range [2][2]int{{src.X, step.DX}, {src.Y, step.DY}} {
		alo, ahi := stepsOnBoard(axis[0], axis[1])
		lo, hi = max(lo, alo), min(hi, ahi)
	}
	if lo > hi {
		return nil
	}

	points := make([]chess.Coord, 0, hi-lo+1)
	for k := lo; k <= hi; k++ {
		points = append(points, src.Add(step.Scale(k)))
	}
	return points
}

// stepsOnBoard returns the range of k for which s+k*d lies on the board.
// The range is empty (lo > hi) when no k does.
func stepsOnBoard(s, d int) (lo, hi int) {
	switch {
	case d > 0:
		return ceilDiv(chess.MinIndex-s, d), floorDiv(chess.MaxIndex-s, d)
	case d < 0:
		return ceilDiv(s-chess.MaxIndex, -d), floorDiv(s-chess.MinIndex, -d)
	case s >= chess.MinIndex && s <= chess.MaxIndex:
		return math.MinInt, math.MaxInt
	}
	return 1, 0
}

// isPathClear reports whether every interior cell between from and to is
// Empty. The first occupied cell is returned when it is not.
func isPathClear(board *chess.Board, from, to chess.Coord) (chess.Coord, bool) {
	for _, p := range PointsAlongVector(from, chess.VectorBetween(from, to), Exclusive) {
		if !board.IsEmpty(p) {
			return p, false
		}
	}
	return chess.Coord{}, true
}
