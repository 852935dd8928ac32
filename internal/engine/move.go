package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	"github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// movePlan is the outcome of a fully validated move, ready to commit.
type movePlan struct {
	mover    chess.PieceID
	from, to chess.Coord

	// victim is the piece to capture, NoPiece for a quiet move.
	victim chess.PieceID

	// victimIndex is the victim's position in its owner's Active list.
	victimIndex int
}

// AttemptMove validates the move from -> to for the player to move and, if
// every check passes, applies it and hands the turn over.
//
// A rejected move returns a *errors.MoveError and leaves g untouched. An
// *errors.InternalError signals corrupt game data; g is untouched then too.
func (a *Arbiter) AttemptMove(g *chess.Game, from, to chess.Coord) (*chess.MoveRecord, error) {
	plan, err := a.validateMove(g, from, to)
	if err != nil {
		if errors.IsFatal(err) {
			a.logger.Error("game state corrupt",
				zap.Stringer("game", g.ID),
				coordField("from", from),
				coordField("to", to),
				zap.Error(err))
		} else {
			a.logger.Debug("move rejected",
				zap.String("player", g.CurrentPlayer().Name),
				coordField("from", from),
				coordField("to", to),
				zap.Error(err))
		}
		return nil, err
	}

	record := a.commitMove(g, plan)
	return &record, nil
}

// validateMove runs every gate in order without touching g.
func (a *Arbiter) validateMove(g *chess.Game, from, to chess.Coord) (movePlan, error) {
	player := g.CurrentPlayer()
	reject := func(kind errors.Kind, piece *chess.Piece, detail string) error {
		me := &errors.MoveError{
			Kind:   kind,
			From:   errors.Point{X: from.X, Y: from.Y},
			To:     errors.Point{X: to.X, Y: to.Y},
			Player: player.Name,
			Detail: detail,
		}
		if piece != nil {
			me.Piece = piece.Type.String()
		}
		return me
	}

	if !from.InBounds() {
		return movePlan{}, reject(errors.OutOfBounds, nil, "source off board")
	}
	if !to.InBounds() {
		return movePlan{}, reject(errors.OutOfBounds, nil, "destination off board")
	}

	src := g.Board.At(from)
	if src.State != chess.Occupied {
		return movePlan{}, reject(errors.EmptySource, nil, "")
	}
	mover := g.Piece(src.Piece)
	if mover == nil || !mover.OnBoard || mover.At != from {
		return movePlan{}, &errors.InternalError{
			Op:     "validate move",
			Detail: fmt.Sprintf("cell %s references piece %d which is not there", from, src.Piece),
		}
	}

	if mover.Owner != g.Turn {
		return movePlan{}, reject(errors.NotOwner, mover, "")
	}

	if mover.Type != chess.Knight {
		if blocker, ok := isPathClear(&g.Board, from, to); !ok {
			return movePlan{}, reject(errors.PathBlocked, mover, fmt.Sprintf("blocked at %s", blocker))
		}
	}

	plan := movePlan{
		mover:  mover.ID,
		from:   from,
		to:     to,
		victim: chess.NoPiece,
	}

	v := chess.VectorBetween(from, to)
	dir := player.PawnDirection()
	dst := g.Board.At(to)

	if dst.State == chess.Occupied {
		victim := g.Piece(dst.Piece)
		if victim == nil || !victim.OnBoard || victim.At != to {
			return movePlan{}, &errors.InternalError{
				Op:     "validate capture",
				Detail: fmt.Sprintf("cell %s references piece %d which is not there", to, dst.Piece),
			}
		}
		if victim.Owner == mover.Owner {
			return movePlan{}, reject(errors.FriendlyFire, mover, "")
		}
		if !CanAttack(mover.Type, dir, v) {
			return movePlan{}, reject(errors.IllegalAttack, mover, "")
		}

		idx := g.Players[victim.Owner].IndexOfActive(victim.ID)
		if idx < 0 {
			return movePlan{}, &errors.InternalError{
				Op:     "validate capture",
				Detail: fmt.Sprintf("piece %d missing from its owner's active set", victim.ID),
			}
		}
		plan.victim = victim.ID
		plan.victimIndex = idx
		return plan, nil
	}

	if !CanMove(mover.Type, dir, mover.HasMoved, v) {
		return movePlan{}, reject(errors.IllegalMove, mover, "")
	}
	return plan, nil
}

// commitMove applies a validated plan as one unit.
func (a *Arbiter) commitMove(g *chess.Game, plan movePlan) chess.MoveRecord {
	mover := &g.Pieces[plan.mover]

	if plan.victim != chess.NoPiece {
		victim := &g.Pieces[plan.victim]
		owner := &g.Players[victim.Owner]

		owner.Active = append(owner.Active[:plan.victimIndex], owner.Active[plan.victimIndex+1:]...)
		owner.Captured = append(owner.Captured, victim.ID)
		victim.OnBoard = false
		victim.At = chess.Coord{}

		a.logger.Debug("piece captured",
			zap.String("by", g.Players[mover.Owner].Name),
			zap.Stringer("piece", victim.Type),
			coordField("at", plan.to))
	}

	mover.HasMoved = true
	mover.At = plan.to
	g.Board.Occupy(plan.to, mover.ID)
	g.Board.Vacate(plan.from)

	record := chess.MoveRecord{
		Ply:      len(g.History) + 1,
		Piece:    mover.ID,
		Type:     mover.Type,
		Player:   mover.Owner,
		From:     plan.from,
		To:       plan.to,
		Captured: plan.victim,
	}
	g.History = append(g.History, record)
	g.SwitchTurn()

	a.logger.Debug("move applied",
		zap.Int("ply", record.Ply),
		zap.String("player", g.Players[record.Player].Name),
		zap.Stringer("piece", record.Type),
		coordField("from", plan.from),
		coordField("to", plan.to))

	return record
}
