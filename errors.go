package runemap

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned when a code point lies outside [0, MaxCodePoint].
	ErrOutOfRange = errors.New("code point out of range")

	// ErrInvariantViolation is returned by CheckInvariants when the internal
	// inversion list is inconsistent. It always indicates a bug in runemap.
	ErrInvariantViolation = errors.New("invariant violation")
)

// CodePointError reports a rejected code point argument.
//
// For range arguments Lo and Hi hold the requested bounds and CodePoint is
// the first offending one. The sentinel ErrOutOfRange is reachable via
// errors.Is.
type CodePointError struct {
	CodePoint rune
	Lo, Hi    rune
	isRange   bool
}

func (e *CodePointError) Error() string {
	if e.isRange {
		return fmt.Sprintf("code point out of range: %04X..%04X", e.Lo, e.Hi)
	}
	return fmt.Sprintf("code point out of range: %d", e.CodePoint)
}

func (e *CodePointError) Unwrap() error { return ErrOutOfRange }

// InvariantError describes which internal invariant failed and where.
type InvariantError struct {
	Reason string
	Index  int
}

func (e *InvariantError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invariant failed: %s", e.Reason)
	}
	return fmt.Sprintf("invariant failed at index %d: %s", e.Index, e.Reason)
}

func (e *InvariantError) Unwrap() error { return ErrInvariantViolation }

func checkCodePoint(c rune) error {
	if c < 0 || c > MaxCodePoint {
		return &CodePointError{CodePoint: c, Lo: c, Hi: c}
	}
	return nil
}

func checkRange(lo, hi rune) error {
	if lo < 0 {
		return &CodePointError{CodePoint: lo, Lo: lo, Hi: hi, isRange: true}
	}
	if hi > MaxCodePoint {
		return &CodePointError{CodePoint: hi, Lo: lo, Hi: hi, isRange: true}
	}
	return nil
}
