package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that each rejection kind maps to its sentinel
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		kind     Kind
		sentinel error
	}{
		{OutOfBounds, ErrOutOfBounds},
		{EmptySource, ErrEmptySource},
		{NotOwner, ErrNotOwner},
		{PathBlocked, ErrPathBlocked},
		{FriendlyFire, ErrFriendlyFire},
		{IllegalAttack, ErrIllegalAttack},
		{IllegalMove, ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := &MoveError{Kind: tt.kind}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", err, tt.sentinel)
			}
			if IsFatal(err) {
				t.Errorf("IsFatal(%v) = true, want false", err)
			}
		})
	}
}

// TestKindString verifies kind names, including unknown values
func TestKindString(t *testing.T) {
	if got := IllegalAttack.String(); got != "IllegalAttack" {
		t.Errorf("IllegalAttack.String() = %q, want %q", got, "IllegalAttack")
	}
	if got := Kind(99).String(); got != "Kind(99)" {
		t.Errorf("Kind(99).String() = %q, want %q", got, "Kind(99)")
	}
	if Kind(99).Sentinel() != nil {
		t.Error("Kind(99).Sentinel() should be nil")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	err := &MoveError{
		Kind:   PathBlocked,
		From:   Point{0, 7},
		To:     Point{0, 3},
		Piece:  "Rook",
		Player: "bob",
		Detail: "blocked at (0,6)",
	}

	msg := err.Error()
	for _, s := range []string{"bob", "Rook", "(0,7)->(0,3)", "blocked at (0,6)", "path is blocked"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestMoveError_As verifies that errors.As works through wrapping
func TestMoveError_As(t *testing.T) {
	wrapped := fmt.Errorf("replaying script: %w", &MoveError{Kind: NotOwner, From: Point{1, 1}})

	kind, ok := KindOf(wrapped)
	if !ok {
		t.Fatal("KindOf() could not extract MoveError")
	}
	if kind != NotOwner {
		t.Errorf("KindOf() = %v, want NotOwner", kind)
	}
	if _, ok := KindOf(ErrParseFailure); ok {
		t.Error("KindOf(ErrParseFailure) should report false")
	}
}

// TestInternalError verifies the fatal class is distinct from rejections
func TestInternalError(t *testing.T) {
	err := &InternalError{Op: "capture", Detail: "piece 17 missing from active set"}

	if !IsFatal(err) {
		t.Error("IsFatal(InternalError) = false, want true")
	}
	if !errors.Is(err, ErrCorruptState) {
		t.Error("errors.Is(InternalError, ErrCorruptState) = false, want true")
	}
	if _, ok := KindOf(err); ok {
		t.Error("KindOf(InternalError) should report false")
	}
	if !containsIgnoreCase(err.Error(), "piece 17") {
		t.Errorf("InternalError.Error() = %q, should contain detail", err.Error())
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:  ErrParseFailure,
		File: "opening.moves",
		Line: 12,
		Got:  "6,6 6",
	}

	msg := err.Error()
	if !containsIgnoreCase(msg, "opening.moves:12") {
		t.Errorf("ParseError.Error() should contain file location, got %q", msg)
	}
	if !errors.Is(err, ErrParseFailure) {
		t.Error("errors.Is(parseErr, ErrParseFailure) = false, want true")
	}
}

// TestWrap verifies the Wrap and Wrapf helpers
func TestWrap(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "workers = %d", -1)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "workers = -1") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
