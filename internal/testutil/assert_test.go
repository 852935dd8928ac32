package testutil

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chess-arbiter-go/internal/chess"
	arbitererrors "github.com/lgbarn/chess-arbiter-go/internal/errors"
)

// These tests verify the assertion helpers work correctly.
// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, 42, 42)
	AssertEqual(t, []chess.Coord{{X: 1, Y: 2}}, []chess.Coord{{X: 1, Y: 2}})
	AssertEqual(t, nil, nil)
}

func TestAssertEqual_WithMessage(t *testing.T) {
	AssertEqual(t, "hello", "hello", "custom message")
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertNoError_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertNoError(t, nil, "operation should succeed")
}

func TestAssertErrorIs_Success(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", arbitererrors.ErrInvalidConfig)
	AssertErrorIs(t, wrapped, arbitererrors.ErrInvalidConfig)
}

func TestAssertRejected_Success(t *testing.T) {
	err := &arbitererrors.MoveError{Kind: arbitererrors.PathBlocked}
	AssertRejected(t, err, arbitererrors.PathBlocked)
	AssertRejected(t, fmt.Errorf("wrapped: %w", err), arbitererrors.PathBlocked, "through %s", "wrapping")
}

func TestAssertContains_Success(t *testing.T) {
	AssertContains(t, "hello world", "world")
	AssertContains(t, "test", "")
}

func TestAssertGameUnchanged_Success(t *testing.T) {
	g := EmptyGame()
	Place(t, g, chess.White, chess.Rook, chess.Coord{X: 0, Y: 7})
	AssertGameUnchanged(t, g.Clone(), g)
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
