package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// InitialPlacement is the FEN piece placement of the standard starting layout.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) (chess.PieceType, bool) {
	switch c {
	case 'K', 'k':
		return chess.King, true
	case 'Q', 'q':
		return chess.Queen, true
	case 'R', 'r':
		return chess.Rook, true
	case 'N', 'n':
		return chess.Knight, true
	case 'B', 'b':
		return chess.Bishop, true
	case 'P', 'p':
		return chess.Pawn, true
	}
	return 0, false
}

// PieceToFENChar returns the FEN letter for a piece: uppercase for White.
func PieceToFENChar(pieceType chess.PieceType, colour chess.Colour) byte {
	letter := pieceType.Letter()
	if colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// BoardToFEN returns the FEN piece placement of the board. Row 0 is
// written first, as rank 8.
func BoardToFEN(g *chess.Game) string {
	var sb strings.Builder

	for y := 0; y < chess.BoardSize; y++ {
		if y > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := g.PieceAt(chess.Coord{X: x, Y: y})
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(PieceToFENChar(piece.Type, g.ColourOf(piece)))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}

	return sb.String()
}

// PositionFEN returns a full FEN string. Castling and en passant are not
// part of the rules here and are always "-"; the halfmove clock is 0.
func PositionFEN(g *chess.Game) string {
	side := "w"
	if g.CurrentPlayer().Colour == chess.Black {
		side = "b"
	}
	fullmove := g.PlyCount()/2 + 1
	return fmt.Sprintf("%s %s - - 0 %d", BoardToFEN(g), side, fullmove)
}

// NewGameFromFEN creates a game from the piece placement and optional side
// to move of a FEN string. Remaining FEN fields are ignored.
func NewGameFromFEN(fen string, player1, player2 PlayerSpec) (*chess.Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	g, err := NewEmptyGame(player1, player2)
	if err != nil {
		return nil, err
	}

	if err := parsePiecePositions(g, parts[0]); err != nil {
		return nil, err
	}

	if err := checkKings(g); err != nil {
		return nil, err
	}

	if err := parseSideToMove(g, parts); err != nil {
		return nil, err
	}

	return g, nil
}

// checkKings requires exactly one king per player.
func checkKings(g *chess.Game) error {
	for i := range g.Players {
		player := &g.Players[i]
		if player.King == chess.NoPiece {
			return errors.Wrapf(errors.ErrInvalidFEN, "%s has no king", player.Colour)
		}
	}
	return nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(g *chess.Game, positions string) error {
	rows := strings.Split(positions, "/")
	if len(rows) != chess.BoardSize {
		return fmt.Errorf("expected %d rows, got %d: %w", chess.BoardSize, len(rows), errors.ErrInvalidFEN)
	}

	for y, row := range rows {
		x := 0
		for _, c := range row {
			if c >= '1' && c <= '8' {
				x += int(c - '0')
				continue
			}

			pieceType, ok := ConvertFENCharToPiece(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if x >= chess.BoardSize {
				return fmt.Errorf("row %d overflows: %w", y, errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			if _, err := PlacePiece(g, g.PlayerByColour(colour), pieceType, chess.Coord{X: x, Y: y}); err != nil {
				return fmt.Errorf("%w: %w", errors.ErrInvalidFEN, err)
			}
			x++
		}
		if x != chess.BoardSize {
			return fmt.Errorf("row %d has %d cells: %w", y, x, errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(g *chess.Game, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		g.Turn = g.PlayerByColour(chess.White)
	case "b":
		g.Turn = g.PlayerByColour(chess.Black)
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	return nil
}
