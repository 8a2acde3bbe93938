package runemap

import (
	"slices"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodePointSet(t *testing.T) {
	t.Run("AddAndContains", func(t *testing.T) {
		s := NewCodePointSet()
		assert.True(t, s.IsEmpty())

		require.NoError(t, s.Add(0x41))
		require.NoError(t, s.AddRange(0x61, 0x63))
		require.NoError(t, s.AddRange(0x70, 0x6F)) // empty

		assert.True(t, s.Contains(0x41))
		assert.True(t, s.Contains(0x62))
		assert.False(t, s.Contains(0x64))
		assert.False(t, s.Contains(-1))
		assert.Equal(t, uint64(4), s.Cardinality())

		s.Remove(0x62)
		s.Remove(-1)
		assert.Equal(t, []rune{0x41, 0x61, 0x63}, slices.Collect(s.All()))
	})

	t.Run("Invalid", func(t *testing.T) {
		s := NewCodePointSet()
		assert.ErrorIs(t, s.Add(-1), ErrOutOfRange)
		assert.ErrorIs(t, s.Add(MaxCodePoint+1), ErrOutOfRange)
		assert.ErrorIs(t, s.AddRange(0, MaxCodePoint+1), ErrOutOfRange)

		_, err := CodePointSetOf(0x41, 0x110000)
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("Ranges", func(t *testing.T) {
		s, err := CodePointSetOf(1, 2, 3, 7, 9, 10, MaxCodePoint)
		require.NoError(t, err)

		assert.Equal(t, []Range{{1, 3}, {7, 7}, {9, 10}, {MaxCodePoint, MaxCodePoint}}, slices.Collect(s.Ranges()))
		assert.Equal(t, "[0001..0003 0007 0009..000A 10FFFF]", s.String())

		var first []Range
		for rg := range s.Ranges() {
			first = append(first, rg)
			break
		}
		assert.Equal(t, []Range{{1, 3}}, first)
	})

	t.Run("CloneAndEqual", func(t *testing.T) {
		s, err := CodePointSetOf(5, 6)
		require.NoError(t, err)
		c := s.Clone()
		assert.True(t, s.Equal(c))
		assert.False(t, s.Equal(nil))

		require.NoError(t, c.Add(7))
		assert.False(t, s.Equal(c))
		assert.False(t, s.Contains(7))

		s.Or(c)
		assert.True(t, s.Equal(c))

		// A nil operand leaves the set unchanged.
		assert.NotPanics(t, func() { s.Or(nil) })
		assert.True(t, s.Equal(c))
	})

	t.Run("Bitmap", func(t *testing.T) {
		s, err := CodePointSetOf(0x41, 0x1F600)
		require.NoError(t, err)

		rb := s.Bitmap()
		assert.Equal(t, []uint32{0x41, 0x1F600}, rb.ToArray())

		rb.Add(0x42)
		assert.False(t, s.Contains(0x42))
	})
}

func TestCodePointSetRangeTable(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		s, err := CodePointSetFromRangeTable(unicode.Greek)
		require.NoError(t, err)

		rt := s.RangeTable()
		for _, c := range []rune{0x370, 0x3A9, 0x1F00, 0x10140, 0x41, 0x1D245} {
			assert.Equal(t, unicode.Is(unicode.Greek, c), unicode.Is(rt, c), "code point %X", c)
			assert.Equal(t, unicode.Is(unicode.Greek, c), s.Contains(c), "code point %X", c)
		}

		back, err := CodePointSetFromRangeTable(rt)
		require.NoError(t, err)
		assert.True(t, s.Equal(back))
	})

	t.Run("CrossesPlaneBoundary", func(t *testing.T) {
		s := NewCodePointSet()
		require.NoError(t, s.AddRange(0xFFF0, 0x1000F))

		rt := s.RangeTable()
		assert.True(t, unicode.Is(rt, 0xFFF0))
		assert.True(t, unicode.Is(rt, 0xFFFF))
		assert.True(t, unicode.Is(rt, 0x10000))
		assert.True(t, unicode.Is(rt, 0x1000F))
		assert.False(t, unicode.Is(rt, 0x10010))
	})

	t.Run("Strided", func(t *testing.T) {
		rt := &unicode.RangeTable{R16: []unicode.Range16{{Lo: 0x100, Hi: 0x106, Stride: 2}}}
		s, err := CodePointSetFromRangeTable(rt)
		require.NoError(t, err)
		assert.Equal(t, []rune{0x100, 0x102, 0x104, 0x106}, slices.Collect(s.All()))
	})

	t.Run("Nil", func(t *testing.T) {
		s, err := CodePointSetFromRangeTable(nil)
		require.NoError(t, err)
		assert.True(t, s.IsEmpty())
	})
}

func TestRangeTableRunes(t *testing.T) {
	rt := &unicode.RangeTable{
		R16: []unicode.Range16{{Lo: 0x41, Hi: 0x43, Stride: 1}},
		R32: []unicode.Range32{{Lo: 0x10000, Hi: 0x10001, Stride: 1}},
	}
	assert.Equal(t, []rune{0x41, 0x42, 0x43, 0x10000, 0x10001}, slices.Collect(RangeTableRunes(rt)))

	var first []rune
	for r := range RangeTableRunes(rt) {
		first = append(first, r)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []rune{0x41, 0x42}, first)
	assert.Empty(t, slices.Collect(RangeTableRunes(nil)))
}
