// Package output renders games as text boards and JSON documents.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/config"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// Cell renderings.
const (
	emptyCell      = " __ "
	threatenedCell = " ** "
)

// RenderOptions controls the text board.
type RenderOptions struct {
	// ShowThreats marks cells the side to move currently threatens. The
	// attack map must have been recomputed for the flags to be current.
	ShowThreats  bool
	ShowCaptured bool
	ShowHistory  bool

	// MaxLineLength wraps the history listing.
	MaxLineLength int
}

// OptionsFromConfig derives render options from the output settings.
func OptionsFromConfig(cfg *config.OutputConfig) RenderOptions {
	return RenderOptions{
		ShowThreats:   cfg.ShowThreats,
		ShowCaptured:  cfg.ShowCaptured,
		ShowHistory:   cfg.ShowHistory,
		MaxLineLength: cfg.MaxLineLength,
	}
}

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// FormatBoard returns the board grid, row 0 first. Empty cells are "__",
// occupied cells the owner's piece character followed by the piece letter.
func FormatBoard(g *chess.Game, showThreats bool) string {
	var sb strings.Builder
	threatColour := g.CurrentPlayer().Colour

	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			loc := &g.Board.Cells[y][x]
			threatened := showThreats && loc.Attackable(threatColour)

			if loc.State == chess.Empty {
				if threatened {
					sb.WriteString(threatenedCell)
				} else {
					sb.WriteString(emptyCell)
				}
				continue
			}

			piece := g.Piece(loc.Piece)
			sb.WriteByte(' ')
			sb.WriteByte(g.Players[piece.Owner].PieceChar())
			sb.WriteByte(piece.Type.Letter())
			if threatened {
				sb.WriteByte('*')
			} else {
				sb.WriteByte(' ')
			}
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

// RenderBoard writes the board followed by the sections opts asks for.
func RenderBoard(w io.Writer, g *chess.Game, opts RenderOptions) error {
	var sb strings.Builder
	sb.WriteString(FormatBoard(g, opts.ShowThreats))
	sb.WriteByte('\n')

	if opts.ShowCaptured {
		for i := range g.Players {
			writeCaptured(&sb, g, chess.PlayerIndex(i))
		}
	}
	if opts.ShowHistory && len(g.History) > 0 {
		writeHistory(&sb, g, opts.MaxLineLength)
	}
	fmt.Fprintf(&sb, "%s to move\n", g.CurrentPlayer().Name)

	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCaptured lists the pieces player p has lost and p's score.
func writeCaptured(sb *strings.Builder, g *chess.Game, p chess.PlayerIndex) {
	player := &g.Players[p]
	letters := make([]string, 0, len(player.Captured))
	for _, id := range player.Captured {
		letters = append(letters, string(g.Piece(id).Type.Letter()))
	}
	fmt.Fprintf(sb, "%s (%c): active %d, lost [%s], score %d\n",
		player.Name, player.PieceChar(), len(player.Active),
		strings.Join(letters, " "), g.Score(p))
}

func writeHistory(sb *strings.Builder, g *chess.Game, maxLineLength int) {
	ow := NewOutputWriter(sb, maxLineLength)
	for _, m := range g.History {
		ow.Write(formatRecord(g, m))
	}
	ow.NewLine()
}

// formatRecord formats a move as "3.QN(6,0)->(5,2)", with "x" and the
// captured piece letter appended for captures.
func formatRecord(g *chess.Game, m chess.MoveRecord) string {
	s := fmt.Sprintf("%d.%c%c%s->%s", m.Ply, g.Players[m.Player].PieceChar(), m.Type.Letter(), m.From, m.To)
	if m.IsCapture() {
		s += "x" + string(g.Piece(m.Captured).Type.Letter())
	}
	return s
}

// rejectionReasons explains each rejection kind.
var rejectionReasons = map[errors.Kind]string{
	errors.OutOfBounds:   "coordinate out of bounds",
	errors.EmptySource:   "nothing to move",
	errors.NotOwner:      "piece belongs to the opponent",
	errors.PathBlocked:   "path is blocked",
	errors.FriendlyFire:  "destination holds a friendly piece",
	errors.IllegalAttack: "piece cannot attack that way",
	errors.IllegalMove:   "piece cannot move that way",
}

// FormatMoveResult describes the outcome of a move attempt in one line.
func FormatMoveResult(g *chess.Game, record *chess.MoveRecord, err error) string {
	if err == nil {
		if record == nil {
			return "no move"
		}
		player := g.Players[record.Player].Name
		s := fmt.Sprintf("%s: %s %s->%s", player, record.Type, record.From, record.To)
		if record.IsCapture() {
			s += fmt.Sprintf(", captures %s", g.Piece(record.Captured).Type)
		}
		return s
	}

	if errors.IsFatal(err) {
		return fmt.Sprintf("internal error: %v", err)
	}

	var me *errors.MoveError
	if !errors.As(err, &me) {
		return fmt.Sprintf("error: %v", err)
	}

	s := fmt.Sprintf("rejected %s->%s", me.From, me.To)
	if me.Player != "" {
		s = me.Player + ": " + s
	}
	s += ": " + rejectionReasons[me.Kind]
	if me.Piece != "" {
		s += fmt.Sprintf(" (%s)", me.Piece)
	}
	if me.Detail != "" {
		s += ", " + me.Detail
	}
	return s
}

// RenderMoveResult writes FormatMoveResult and a newline.
func RenderMoveResult(w io.Writer, g *chess.Game, record *chess.MoveRecord, err error) error {
	_, werr := fmt.Fprintln(w, FormatMoveResult(g, record, err))
	return werr
}
