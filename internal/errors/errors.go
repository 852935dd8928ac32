// Package errors provides sentinel errors and error types for the move arbiter.
// Ordinary move rejections are recoverable and carry a Kind; internal
// invariant violations are a distinct, fatal class. Both support errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for move rejection.
// Use these with errors.Is() to check for specific rejection reasons.
var (
	// ErrOutOfBounds indicates a coordinate outside the 8x8 board.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrEmptySource indicates the source cell holds no piece.
	ErrEmptySource = errors.New("source cell is empty")

	// ErrNotOwner indicates the piece does not belong to the player to move.
	ErrNotOwner = errors.New("piece not owned by player to move")

	// ErrPathBlocked indicates a piece between source and destination.
	ErrPathBlocked = errors.New("path is blocked")

	// ErrFriendlyFire indicates an attempt to capture one's own piece.
	ErrFriendlyFire = errors.New("destination holds a friendly piece")

	// ErrIllegalAttack indicates the piece cannot capture along that displacement.
	ErrIllegalAttack = errors.New("illegal attack")

	// ErrIllegalMove indicates the piece cannot move along that displacement.
	ErrIllegalMove = errors.New("illegal move")
)

// Sentinel errors outside move rejection.
var (
	// ErrCorruptState indicates an internal invariant violation in the game data.
	ErrCorruptState = errors.New("corrupt game state")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidFEN indicates a malformed FEN piece placement.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrParseFailure indicates malformed move script input.
	ErrParseFailure = errors.New("parse failure")

	// ErrGameNotFound indicates an unknown game identifier.
	ErrGameNotFound = errors.New("game not found")
)

// Kind classifies a move rejection.
type Kind int

const (
	OutOfBounds Kind = iota
	EmptySource
	NotOwner
	PathBlocked
	FriendlyFire
	IllegalAttack
	IllegalMove
)

var kindSentinels = [...]error{
	OutOfBounds:   ErrOutOfBounds,
	EmptySource:   ErrEmptySource,
	NotOwner:      ErrNotOwner,
	PathBlocked:   ErrPathBlocked,
	FriendlyFire:  ErrFriendlyFire,
	IllegalAttack: ErrIllegalAttack,
	IllegalMove:   ErrIllegalMove,
}

var kindNames = [...]string{
	OutOfBounds:   "OutOfBounds",
	EmptySource:   "EmptySource",
	NotOwner:      "NotOwner",
	PathBlocked:   "PathBlocked",
	FriendlyFire:  "FriendlyFire",
	IllegalAttack: "IllegalAttack",
	IllegalMove:   "IllegalMove",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel returns the sentinel error for the kind.
func (k Kind) Sentinel() error {
	if k >= 0 && int(k) < len(kindSentinels) {
		return kindSentinels[k]
	}
	return nil
}

// Point is a board coordinate as carried by error context.
type Point struct {
	X, Y int
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// MoveError describes a rejected move attempt. The game state is unchanged
// whenever a MoveError is returned.
type MoveError struct {
	Kind   Kind   // Why the move was rejected
	From   Point  // Source coordinate as requested
	To     Point  // Destination coordinate as requested
	Piece  string // Type of the moving piece (if known)
	Player string // Name of the player to move (if known)
	Detail string // Extra context, e.g. the blocking cell
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Player != "" {
		parts = append(parts, e.Player)
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}
	parts = append(parts, fmt.Sprintf("%s->%s", e.From, e.To))
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	return fmt.Sprintf("%s: %v", strings.Join(parts, " "), e.Kind.Sentinel())
}

// Unwrap returns the sentinel for the rejection kind, enabling errors.Is().
func (e *MoveError) Unwrap() error {
	return e.Kind.Sentinel()
}

// InternalError signals data-model corruption discovered while validating or
// applying a move. It is never a user mistake and must not be treated as an
// ordinary rejection.
type InternalError struct {
	Op     string // Operation that detected the violation
	Detail string // Description of the broken invariant
}

// Error returns a formatted error message.
func (e *InternalError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %v", e.Op, ErrCorruptState)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Detail, ErrCorruptState)
}

// Unwrap returns ErrCorruptState.
func (e *InternalError) Unwrap() error {
	return ErrCorruptState
}

// IsFatal reports whether err is an internal invariant violation.
func IsFatal(err error) bool {
	return errors.Is(err, ErrCorruptState)
}

// KindOf extracts the rejection kind from err.
func KindOf(err error) (Kind, bool) {
	var me *MoveError
	if errors.As(err, &me) {
		return me.Kind, true
	}
	return 0, false
}

// ParseError represents a move script parsing error with location context.
type ParseError struct {
	Err  error  // The underlying error
	File string // Source file name
	Line int    // Line number (1-based)
	Got  string // The offending text
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	if e.File != "" {
		loc := e.File
		if e.Line > 0 {
			loc += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, loc)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
