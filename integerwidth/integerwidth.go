package integerwidth

import (
	"errors"
	"fmt"
)

// MaxDigits is the exclusive upper bound for digit counts.
const MaxDigits = 100

// Unbounded is the MaxInt setting that disables truncation.
const Unbounded = -1

// ErrDigitsOutOfRange is returned for digit counts outside [0, MaxDigits).
var ErrDigitsOutOfRange = errors.New("integer digits out of range")

// DigitsError reports a rejected digit count.
//
// The sentinel ErrDigitsOutOfRange is reachable via errors.Is.
type DigitsError struct {
	Digits int
}

func (e *DigitsError) Error() string {
	return fmt.Sprintf("integer digits must be between 0 and %d, got %d", MaxDigits, e.Digits)
}

func (e *DigitsError) Unwrap() error { return ErrDigitsOutOfRange }

// IntegerWidth controls how many integer digits a formatted number shows:
// at least minInt (zero filled) and at most maxInt (truncated).
//
// It is a value type; every setter returns a new IntegerWidth.
type IntegerWidth struct {
	minInt int
	maxInt int
}

// Default pads to one digit and never truncates.
func Default() IntegerWidth {
	return IntegerWidth{minInt: 1, maxInt: Unbounded}
}

// ZeroFillTo pads numbers with zeros to at least minInt integer digits.
func ZeroFillTo(minInt int) (IntegerWidth, error) {
	if minInt == 1 {
		return Default(), nil
	}
	if minInt < 0 || minInt >= MaxDigits {
		return IntegerWidth{}, &DigitsError{Digits: minInt}
	}
	return IntegerWidth{minInt: minInt, maxInt: Unbounded}, nil
}

// TruncateAt drops the most significant integer digits beyond maxInt.
// Unbounded removes the limit again.
func (w IntegerWidth) TruncateAt(maxInt int) (IntegerWidth, error) {
	if maxInt == w.maxInt {
		return w, nil
	}
	if maxInt != Unbounded && (maxInt < 0 || maxInt >= MaxDigits) {
		return w, &DigitsError{Digits: maxInt}
	}
	return IntegerWidth{minInt: w.minInt, maxInt: maxInt}, nil
}

// MinInt returns the minimum number of integer digits.
func (w IntegerWidth) MinInt() int {
	return w.minInt
}

// MaxInt returns the maximum number of integer digits. ok is false when
// the width is unbounded.
func (w IntegerWidth) MaxInt() (maxInt int, ok bool) {
	if w.maxInt == Unbounded {
		return 0, false
	}
	return w.maxInt, true
}

func (w IntegerWidth) String() string {
	if w.maxInt == Unbounded {
		return fmt.Sprintf("integer-width/%d+", w.minInt)
	}
	return fmt.Sprintf("integer-width/%d-%d", w.minInt, w.maxInt)
}
