package engine

import (
	"github.com/google/uuid"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// PiecesPerPlayer is the number of pieces each side starts with.
const PiecesPerPlayer = 16

// backRank is the home row order, file 0 to 7, for both players.
var backRank = [chess.BoardSize]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// PlayerSpec names a player and the colour they play.
type PlayerSpec struct {
	Name   string
	Colour chess.Colour
}

// homeRows returns the back-rank row and pawn row for a colour.
func homeRows(colour chess.Colour) (back, pawns int) {
	if colour == chess.White {
		return chess.MaxIndex, chess.MaxIndex - 1
	}
	return chess.MinIndex, chess.MinIndex + 1
}

// NewEmptyGame creates a game with both players but no pieces.
// player1 is index 0 and player2 index 1; White moves first.
func NewEmptyGame(player1, player2 PlayerSpec) (*chess.Game, error) {
	if player1.Colour == player2.Colour {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "both players are %s", player1.Colour)
	}

	g := &chess.Game{
		ID:     uuid.New(),
		Board:  *chess.NewBoard(),
		Pieces: make([]chess.Piece, 0, 2*PiecesPerPlayer),
	}
	for i, spec := range []PlayerSpec{player1, player2} {
		g.Players[i] = chess.Player{
			ID:     uuid.New(),
			Name:   spec.Name,
			Colour: spec.Colour,
			Active: make([]chess.PieceID, 0, PiecesPerPlayer),
			King:   chess.NoPiece,
		}
	}
	g.Turn = g.PlayerByColour(chess.White)

	return g, nil
}

// NewGame creates a game in the standard starting layout: back ranks on
// rows 0 (Black) and 7 (White), pawns on rows 1 and 6, rows 2-5 empty.
func NewGame(player1, player2 PlayerSpec) (*chess.Game, error) {
	g, err := NewEmptyGame(player1, player2)
	if err != nil {
		return nil, err
	}

	for i := range g.Players {
		p := chess.PlayerIndex(i)
		back, pawns := homeRows(g.Players[i].Colour)

		for x := 0; x < chess.BoardSize; x++ {
			if _, err := PlacePiece(g, p, chess.Pawn, chess.Coord{X: x, Y: pawns}); err != nil {
				return nil, err
			}
		}
		for x, pieceType := range backRank {
			if _, err := PlacePiece(g, p, pieceType, chess.Coord{X: x, Y: back}); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// NewStandardGame creates a standard game between a White and a Black player.
func NewStandardGame(whiteName, blackName string) *chess.Game {
	g, err := NewGame(
		PlayerSpec{Name: whiteName, Colour: chess.White},
		PlayerSpec{Name: blackName, Colour: chess.Black},
	)
	if err != nil {
		// Distinct colours and an empty board cannot fail.
		panic(err)
	}
	return g
}

// PlacePiece creates a new piece for player p on an empty cell and returns
// its id. A player holds at most one king, which becomes the player's
// king. A pawn placed off its starting row is marked as having moved.
func PlacePiece(g *chess.Game, p chess.PlayerIndex, pieceType chess.PieceType, at chess.Coord) (chess.PieceID, error) {
	if !at.InBounds() {
		return chess.NoPiece, errors.Wrapf(errors.ErrOutOfBounds, "placing %s at %s", pieceType, at)
	}
	if !g.Board.IsEmpty(at) {
		return chess.NoPiece, errors.Wrapf(errors.ErrInvalidConfig, "cell %s already occupied", at)
	}

	player := &g.Players[p]
	if pieceType == chess.King && player.King != chess.NoPiece {
		return chess.NoPiece, errors.Wrapf(errors.ErrInvalidConfig, "%s already has a king", player.Colour)
	}
	id := chess.PieceID(len(g.Pieces))

	hasMoved := false
	if pieceType == chess.Pawn {
		_, pawns := homeRows(player.Colour)
		hasMoved = at.Y != pawns
	}

	g.Pieces = append(g.Pieces, chess.Piece{
		ID:       id,
		Type:     pieceType,
		Owner:    p,
		HasMoved: hasMoved,
		At:       at,
		OnBoard:  true,
	})
	player.Active = append(player.Active, id)
	if pieceType == chess.King {
		player.King = id
	}
	g.Board.Occupy(at, id)

	return id, nil
}
