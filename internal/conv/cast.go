package conv

import (
	"fmt"
	"math"
)

// RuneToUint32 converts a rune to uint32 safely.
func RuneToUint32(r rune) (uint32, error) {
	if r < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", r)
	}
	return uint32(r), nil
}

// Uint32ToRune converts uint32 to rune safely.
func Uint32ToRune(v uint32) (rune, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to rune (too large)", v)
	}
	return rune(v), nil
}

// Uint64ToRune converts uint64 to rune safely.
func Uint64ToRune(v uint64) (rune, error) {
	if v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to rune (too large)", v)
	}
	return rune(v), nil
}
