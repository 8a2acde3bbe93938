package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := RuneToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max code point", func(t *testing.T) {
		got, err := RuneToUint32(0x10FFFF)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0x10FFFF), got)
	})

	t.Run("invalid negative", func(t *testing.T) {
		_, err := RuneToUint32(-1)
		assert.Error(t, err)
	})
}

func TestUint32ToRune(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint32ToRune(0x41)
		assert.NoError(t, err)
		assert.Equal(t, 'A', got)
	})

	t.Run("valid max int32", func(t *testing.T) {
		got, err := Uint32ToRune(math.MaxInt32)
		assert.NoError(t, err)
		assert.Equal(t, rune(math.MaxInt32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint32ToRune(math.MaxInt32 + 1)
		assert.Error(t, err)
	})
}

func TestUint64ToRune(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint64ToRune(0)
		assert.NoError(t, err)
		assert.Equal(t, rune(0), got)
	})

	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint64ToRune(0x1F600)
		assert.NoError(t, err)
		assert.Equal(t, rune(0x1F600), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToRune(math.MaxUint32)
		assert.Error(t, err)
	})
}
