package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/testutil"
)

// sortedCoords orders coordinates row by row, matching AttackedCells.
func sortedCoords(cs ...chess.Coord) []chess.Coord {
	out := append([]chess.Coord(nil), cs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}

func TestAttackMapInitialPosition(t *testing.T) {
	g := NewStandardGame("w", "b")
	NewArbiter(nil).RecomputeAllAttackMaps(g)

	var wantWhite, wantBlack []chess.Coord
	for x := 0; x < chess.BoardSize; x++ {
		wantWhite = append(wantWhite, at(x, 5))
		wantBlack = append(wantBlack, at(x, 2))
	}

	testutil.AssertEqual(t, AttackedCells(g, chess.White), wantWhite)
	testutil.AssertEqual(t, AttackedCells(g, chess.Black), wantBlack)
}

func TestAttackMapRookRays(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"...p....",
		"........",
		"........",
		"...R..P.",
		"........",
		"........",
		"........",
	)
	RecomputeAttackMap(g, testutil.WhiteIndex)

	want := sortedCoords(
		// north up to and including the enemy pawn
		at(3, 3), at(3, 2), at(3, 1),
		// south to the edge
		at(3, 5), at(3, 6), at(3, 7),
		// west to the edge
		at(2, 4), at(1, 4), at(0, 4),
		// east up to the friendly pawn
		at(4, 4), at(5, 4),
		// the pawn's diagonals
		at(5, 3), at(7, 3),
	)
	testutil.AssertEqual(t, AttackedCells(g, chess.White), want)

	if IsAttacked(g, at(3, 0), chess.White) {
		t.Error("(3,0) is behind the enemy pawn")
	}
	if IsAttacked(g, at(6, 4), chess.White) {
		t.Error("friendly occupant must not be marked")
	}
	if IsAttacked(g, at(9, 9), chess.White) {
		t.Error("off-board cell reported as attacked")
	}
}

func TestAttackMapQueenOnEmptyBoard(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"........",
		"........",
		"...Q....",
		"........",
		"........",
		"........",
		"........",
	)
	RecomputeAttackMap(g, testutil.WhiteIndex)

	if got := len(AttackedCells(g, chess.White)); got != 27 {
		t.Errorf("queen on (3,3) attacks %d cells, want 27", got)
	}
	if IsAttacked(g, at(3, 3), chess.White) {
		t.Error("a piece does not attack its own cell")
	}
}

func TestAttackMapKnightAndKing(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"........",
		"........",
		"........",
		"........",
		".p......",
		"..P.....",
		"N......K",
	)
	RecomputeAttackMap(g, testutil.WhiteIndex)

	want := sortedCoords(
		// knight in the corner: the enemy on (1,5) is marked, the friendly pawn is not
		at(1, 5),
		// pawn on its start row
		at(3, 5),
		// king in the corner
		at(6, 6), at(6, 7), at(7, 6),
	)
	testutil.AssertEqual(t, AttackedCells(g, chess.White), want)
}

func TestBlackPawnAttacksDownward(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"p......p",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	)
	RecomputeAttackMap(g, testutil.BlackIndex)

	testutil.AssertEqual(t, AttackedCells(g, chess.Black), []chess.Coord{at(1, 2), at(6, 2)})
}

func TestRecomputeLeavesOpponentFlags(t *testing.T) {
	g := NewStandardGame("w", "b")
	a := NewArbiter(nil)
	white, black := g.PlayerByColour(chess.White), g.PlayerByColour(chess.Black)

	a.RecomputeAttackMap(g, black)
	before := AttackedCells(g, chess.Black)

	mustMove(t, g, at(4, 6), at(4, 4))
	a.RecomputeAttackMap(g, white)

	testutil.AssertEqual(t, AttackedCells(g, chess.Black), before)
	if !IsAttacked(g, at(3, 3), chess.White) || !IsAttacked(g, at(5, 3), chess.White) {
		t.Error("advanced pawn's diagonals not marked")
	}
}

func TestRecomputeClearsStaleFlags(t *testing.T) {
	g := testutil.GameFromDiagram(t,
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"R.......",
	)
	RecomputeAttackMap(g, testutil.WhiteIndex)
	if !IsAttacked(g, at(0, 0), chess.White) {
		t.Fatal("rook should attack the far end of its file")
	}

	mustMove(t, g, at(0, 7), at(1, 7))
	RecomputeAttackMap(g, testutil.WhiteIndex)

	if IsAttacked(g, at(0, 0), chess.White) {
		t.Error("stale flag survived recompute")
	}
	if !IsAttacked(g, at(1, 0), chess.White) {
		t.Error("new file not marked")
	}
}

func TestAttackVectors(t *testing.T) {
	tests := []struct {
		name  string
		piece chess.PieceType
		src   chess.Coord
		want  []chess.Vector
	}{
		{
			name:  "rook in the corner",
			piece: chess.Rook,
			src:   at(0, 0),
			want:  []chess.Vector{{DX: 7, DY: 0}, {DX: 0, DY: 7}},
		},
		{
			name:  "bishop on an edge",
			piece: chess.Bishop,
			src:   at(0, 3),
			want:  []chess.Vector{{DX: 3, DY: -3}, {DX: 4, DY: 4}},
		},
		{
			name:  "white pawn on the a-file",
			piece: chess.Pawn,
			src:   at(0, 6),
			want:  []chess.Vector{{DX: 1, DY: -1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := attackVectors(tt.piece, tt.src, -1)
			testutil.AssertEqual(t, sortVectors(got), sortVectors(tt.want))
		})
	}
}

func sortVectors(vs []chess.Vector) []chess.Vector {
	out := append([]chess.Vector(nil), vs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].DX != out[j].DX {
			return out[i].DX < out[j].DX
		}
		return out[i].DY < out[j].DY
	})
	return out
}
