// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking when moving code points between
// rune and the unsigned widths used by roaring bitmaps and strconv.
//
// Use cases:
//   - Converting bitmap members back into runes
//   - Validating parsed command line input
//
// For conversions that are provably safe by domain constraints (e.g., a
// code point already checked against MaxCodePoint), use direct type casts instead.
package conv
