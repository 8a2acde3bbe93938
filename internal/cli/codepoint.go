package cli

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/hupe1980/runemap"
	"github.com/hupe1980/runemap/internal/conv"
)

// parseCodePoint accepts U+0041, 0x41, bare hex digits (41) or a single
// character. Single characters that are also hex digits parse as hex.
func parseCodePoint(s string) (rune, error) {
	digits := s
	switch {
	case strings.HasPrefix(s, "U+"), strings.HasPrefix(s, "u+"),
		strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		digits = s[2:]
	default:
		if r, size := utf8.DecodeRuneInString(s); size == len(s) && r != utf8.RuneError && !isHexDigit(r) {
			return r, nil
		}
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid code point %q", s)
	}
	r, err := conv.Uint64ToRune(v)
	if err != nil || r > runemap.MaxCodePoint {
		return 0, fmt.Errorf("invalid code point %q: above U+10FFFF", s)
	}
	return r, nil
}

func isHexDigit(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F')
}
