package hashing

import "github.com/lgbarn/chess-arbiter-go/internal/chess"

// zobristSeed fixes the key table so hashes are stable across runs.
const zobristSeed uint64 = 0x2545F4914F6CDD1D

var (
	zobristPieces      [2][chess.NumPieceTypes][chess.BoardSize][chess.BoardSize]uint64
	zobristBlackToMove uint64
)

func init() {
	state := zobristSeed
	for colour := range zobristPieces {
		for pieceType := range zobristPieces[colour] {
			for y := 0; y < chess.BoardSize; y++ {
				for x := 0; x < chess.BoardSize; x++ {
					zobristPieces[colour][pieceType][y][x] = splitmix64(&state)
				}
			}
		}
	}
	zobristBlackToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next key.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the piece placement and side to move.
func GenerateZobristHash(g *chess.Game) uint64 {
	var hash uint64
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			loc := &g.Board.Cells[y][x]
			if loc.State != chess.Occupied {
				continue
			}
			piece := g.Piece(loc.Piece)
			hash ^= zobristPieces[g.ColourOf(piece)][piece.Type][y][x]
		}
	}
	if g.CurrentPlayer().Colour == chess.Black {
		hash ^= zobristBlackToMove
	}
	return hash
}

// WeakHash is a cheap placement checksum used to confirm Zobrist matches.
func WeakHash(g *chess.Game) uint32 {
	var sum uint32
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			loc := &g.Board.Cells[y][x]
			if loc.State != chess.Occupied {
				continue
			}
			piece := g.Piece(loc.Piece)
			code := uint32(piece.Type) + 1
			if g.ColourOf(piece) == chess.Black {
				code += uint32(chess.NumPieceTypes)
			}
			sum += code * uint32(y*chess.BoardSize+x+1)
		}
	}
	return sum
}
