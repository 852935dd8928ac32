package engine

import (
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 0, 0},
		{0, 5, 5},
		{5, 0, 5},
		{4, 6, 2},
		{7, 7, 7},
		{1, 2, 1},
	}

	for _, tt := range tests {
		if got := gcd(tt.a, tt.b); got != tt.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestPointsAlongVector(t *testing.T) {
	tests := []struct {
		name string
		src  chess.Coord
		v    chess.Vector
		mode TraceMode
		want []chess.Coord
	}{
		{
			name: "zero vector",
			src:  chess.Coord{X: 3, Y: 3},
			v:    chess.Vector{},
			mode: Inclusive,
			want: nil,
		},
		{
			name: "single step has no interior",
			src:  chess.Coord{X: 3, Y: 3},
			v:    chess.Vector{DX: 1, DY: 0},
			mode: Exclusive,
			want: nil,
		},
		{
			name: "vertical exclusive",
			src:  chess.Coord{X: 0, Y: 7},
			v:    chess.Vector{DX: 0, DY: -4},
			mode: Exclusive,
			want: []chess.Coord{{X: 0, Y: 6}, {X: 0, Y: 5}, {X: 0, Y: 4}},
		},
		{
			name: "vertical inclusive",
			src:  chess.Coord{X: 0, Y: 7},
			v:    chess.Vector{DX: 0, DY: -4},
			mode: Inclusive,
			want: []chess.Coord{{X: 0, Y: 6}, {X: 0, Y: 5}, {X: 0, Y: 4}, {X: 0, Y: 3}},
		},
		{
			name: "diagonal exclusive",
			src:  chess.Coord{X: 5, Y: 7},
			v:    chess.Vector{DX: 2, DY: -2},
			mode: Exclusive,
			want: []chess.Coord{{X: 6, Y: 6}},
		},
		{
			name: "non-primitive vector reduces by gcd",
			src:  chess.Coord{X: 0, Y: 0},
			v:    chess.Vector{DX: 2, DY: 4},
			mode: Inclusive,
			want: []chess.Coord{{X: 1, Y: 2}, {X: 2, Y: 4}},
		},
		{
			name: "knight vector is primitive",
			src:  chess.Coord{X: 1, Y: 7},
			v:    chess.Vector{DX: 1, DY: -2},
			mode: Inclusive,
			want: []chess.Coord{{X: 2, Y: 5}},
		},
		{
			name: "off-board points dropped",
			src:  chess.Coord{X: 6, Y: 6},
			v:    chess.Vector{DX: 3, DY: 3},
			mode: Inclusive,
			want: []chess.Coord{{X: 7, Y: 7}},
		},
		{
			name: "huge vector stops at the edge",
			src:  chess.Coord{X: 0, Y: 3},
			v:    chess.Vector{DX: 1 << 40, DY: 0},
			mode: Inclusive,
			want: []chess.Coord{{X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3}, {X: 5, Y: 3}, {X: 6, Y: 3}, {X: 7, Y: 3}},
		},
		{
			name: "huge diagonal from off the board",
			src:  chess.Coord{X: -2, Y: 9},
			v:    chess.Vector{DX: 1 << 40, DY: -(1 << 40)},
			mode: Exclusive,
			want: []chess.Coord{{X: 0, Y: 7}, {X: 1, Y: 6}, {X: 2, Y: 5}, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 5, Y: 2}, {X: 6, Y: 1}, {X: 7, Y: 0}},
		},
		{
			name: "line that misses the board",
			src:  chess.Coord{X: 9, Y: 0},
			v:    chess.Vector{DX: 0, DY: 1 << 40},
			mode: Inclusive,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PointsAlongVector(tt.src, tt.v, tt.mode)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			testutil.AssertEqual(t, got, tt.want)
		})
	}
}

// TestExclusivePathIsStrictInterior checks every sliding move on an empty
// board: the exclusive path never includes either endpoint and every point
// lies strictly between them.
func TestExclusivePathIsStrictInterior(t *testing.T) {
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			src := chess.Coord{X: x, Y: y}
			for _, d := range allLines {
				for k := 1; ; k++ {
					dst := src.Add(d.Scale(k))
					if !dst.InBounds() {
						break
					}
					path := PointsAlongVector(src, chess.VectorBetween(src, dst), Exclusive)
					if len(path) != k-1 {
						t.Fatalf("%v->%v: %d interior points, want %d", src, dst, len(path), k-1)
					}
					for i, p := range path {
						if p == src || p == dst {
							t.Fatalf("%v->%v: path contains endpoint %v", src, dst, p)
						}
						if want := src.Add(d.Scale(i + 1)); p != want {
							t.Fatalf("%v->%v: point %d = %v, want %v", src, dst, i, p, want)
						}
					}
				}
			}
		}
	}
}

func TestIsPathClear(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"........",
		"........",
		"...p....",
		"........",
		"........",
		"........",
		"...R....",
	)

	if blocker, ok := isPathClear(&g.Board, chess.Coord{X: 3, Y: 7}, chess.Coord{X: 3, Y: 0}); ok {
		t.Error("isPathClear() = true through a piece")
	} else if blocker != (chess.Coord{X: 3, Y: 3}) {
		t.Errorf("blocker = %v, want (3,3)", blocker)
	}

	if _, ok := isPathClear(&g.Board, chess.Coord{X: 3, Y: 7}, chess.Coord{X: 3, Y: 3}); !ok {
		t.Error("isPathClear() = false; the destination itself is not part of the path")
	}
}
