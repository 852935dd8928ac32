package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/engine"
)

// JSONBoard represents a game position in JSON format.
type JSONBoard struct {
	GameID  string       `json:"gameId"`
	ToMove  string       `json:"toMove"` // "white" or "black"
	Ply     int          `json:"ply"`
	FEN     string       `json:"fen"`
	Rows    [][]JSONCell `json:"rows"`
	Players []JSONPlayer `json:"players"`
	History []JSONMove   `json:"history,omitempty"`
}

// JSONCell represents one board cell.
type JSONCell struct {
	X               int    `json:"x"`
	Y               int    `json:"y"`
	Piece           string `json:"piece,omitempty"`
	Colour          string `json:"colour,omitempty"`
	WhiteAttackable bool   `json:"whiteAttackable"`
	BlackAttackable bool   `json:"blackAttackable"`
}

// JSONPlayer represents a player and their pieces.
type JSONPlayer struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Colour   string      `json:"colour"`
	Active   []JSONPiece `json:"active"`
	Captured []JSONPiece `json:"captured"`
	Score    int         `json:"score"`
}

// JSONPiece represents a piece. Captured pieces have no position.
type JSONPiece struct {
	ID       int    `json:"id"`
	Type     string `json:"type"`
	X        *int   `json:"x,omitempty"`
	Y        *int   `json:"y,omitempty"`
	HasMoved bool   `json:"hasMoved"`
}

// JSONMove represents an applied move.
type JSONMove struct {
	Ply      int    `json:"ply"`
	Colour   string `json:"colour"`
	Piece    string `json:"piece"`
	From     string `json:"from"`
	To       string `json:"to"`
	Captured string `json:"captured,omitempty"`
}

// JSONOutput holds multiple boards for array output.
type JSONOutput struct {
	Games []*JSONBoard `json:"games"`
}

// BoardToJSON converts a game to its JSON representation.
func BoardToJSON(g *chess.Game) *JSONBoard {
	jb := &JSONBoard{
		GameID: g.ID.String(),
		ToMove: colourName(g.CurrentPlayer().Colour),
		Ply:    g.PlyCount(),
		FEN:    engine.PositionFEN(g),
		Rows:   make([][]JSONCell, chess.BoardSize),
	}

	for y := 0; y < chess.BoardSize; y++ {
		row := make([]JSONCell, chess.BoardSize)
		for x := 0; x < chess.BoardSize; x++ {
			loc := &g.Board.Cells[y][x]
			cell := JSONCell{
				X:               x,
				Y:               y,
				WhiteAttackable: loc.WhiteAttackable,
				BlackAttackable: loc.BlackAttackable,
			}
			if piece := g.Piece(loc.Piece); loc.State == chess.Occupied && piece != nil {
				cell.Piece = piece.Type.String()
				cell.Colour = colourName(g.ColourOf(piece))
			}
			row[x] = cell
		}
		jb.Rows[y] = row
	}

	for i := range g.Players {
		jb.Players = append(jb.Players, playerToJSON(g, chess.PlayerIndex(i)))
	}

	for _, m := range g.History {
		jm := JSONMove{
			Ply:    m.Ply,
			Colour: colourName(g.Players[m.Player].Colour),
			Piece:  m.Type.String(),
			From:   m.From.String(),
			To:     m.To.String(),
		}
		if m.IsCapture() {
			jm.Captured = g.Piece(m.Captured).Type.String()
		}
		jb.History = append(jb.History, jm)
	}

	return jb
}

func playerToJSON(g *chess.Game, p chess.PlayerIndex) JSONPlayer {
	player := &g.Players[p]
	jp := JSONPlayer{
		ID:       player.ID.String(),
		Name:     player.Name,
		Colour:   colourName(player.Colour),
		Active:   make([]JSONPiece, 0, len(player.Active)),
		Captured: make([]JSONPiece, 0, len(player.Captured)),
		Score:    g.Score(p),
	}
	for _, id := range player.Active {
		jp.Active = append(jp.Active, pieceToJSON(g.Piece(id)))
	}
	for _, id := range player.Captured {
		jp.Captured = append(jp.Captured, pieceToJSON(g.Piece(id)))
	}
	return jp
}

func pieceToJSON(p *chess.Piece) JSONPiece {
	jp := JSONPiece{
		ID:       int(p.ID),
		Type:     p.Type.String(),
		HasMoved: p.HasMoved,
	}
	if p.OnBoard {
		x, y := p.At.X, p.At.Y
		jp.X, jp.Y = &x, &y
	}
	return jp
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// WriteBoardJSON writes a single game as indented JSON.
func WriteBoardJSON(w io.Writer, g *chess.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BoardToJSON(g))
}
