package runemap

import (
	"slices"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAll(t *testing.T) {
	t.Run("RangeTable", func(t *testing.T) {
		m := NewComparable[string](WithInvariantChecks(true))
		require.NoError(t, m.SetAll(RangeTableRunes(unicode.Greek), "Greek"))

		want, err := CodePointSetFromRangeTable(unicode.Greek)
		require.NoError(t, err)
		assert.True(t, want.Equal(m.ValuesEquivalentTo("Greek")))

		v, ok := mustGet(t, m, 0x3A9)
		assert.True(t, ok)
		assert.Equal(t, "Greek", v)
	})

	t.Run("Slice", func(t *testing.T) {
		m := NewComparable[string](WithInvariantChecks(true))
		require.NoError(t, m.SetAll(slices.Values([]rune{0x43, 0x41, 0x42, 0x50}), "x"))

		assert.Equal(t, []Run[string]{
			{Lo: 0x41, Hi: 0x43, Value: "x", Mapped: true},
			{Lo: 0x50, Hi: 0x50, Value: "x", Mapped: true},
		}, mappedRuns(m))
	})

	t.Run("OutOfRangeLeavesMapUnchanged", func(t *testing.T) {
		metrics := &BasicMetricsCollector{}
		m := NewComparable[string](WithMetricsCollector(metrics))
		err := m.SetAll(slices.Values([]rune{0x41, 0x42, -7}), "x")

		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, 1, m.RunCount())
		assert.Equal(t, int64(1), metrics.GetStats().BulkLoadErrors)
	})
}

func TestSetCodePointSet(t *testing.T) {
	m := NewComparable[string]()
	s, err := CodePointSetOf(0x41, 0x42, 0x44)
	require.NoError(t, err)

	require.NoError(t, m.SetCodePointSet(s, "x"))
	require.NoError(t, m.SetCodePointSet(nil, "y"))

	assert.True(t, s.Equal(m.ValuesEquivalentTo("x")))
	assert.Equal(t, 5, m.RunCount())
}

func TestSetFromProperty(t *testing.T) {
	property := func(c rune) (string, bool) {
		switch {
		case c >= 0x41 && c <= 0x5A:
			return "A-Z", true
		case c >= 0x10000:
			return "supplementary", true
		}
		return "", false
	}

	t.Run("CallsOncePerCodePointInOrder", func(t *testing.T) {
		calls := 0
		ordered := true
		src := PropertyFunc[string](func(c rune) (string, bool) {
			if c != rune(calls) {
				ordered = false
			}
			calls++
			return property(c)
		})

		metrics := &BasicMetricsCollector{}
		m := NewComparable[string](WithInvariantChecks(true), WithMetricsCollector(metrics))
		require.NoError(t, m.SetFromProperty(src))

		assert.Equal(t, 0x110000, calls)
		assert.True(t, ordered)
		assert.Equal(t, []Run[string]{
			{Lo: 0x41, Hi: 0x5A, Value: "A-Z", Mapped: true},
			{Lo: 0x10000, Hi: MaxCodePoint, Value: "supplementary", Mapped: true},
		}, mappedRuns(m))
		assert.Equal(t, 4, m.RunCount())
		assert.Equal(t, int64(0x110000), metrics.GetStats().BulkLoadCodePoints)
	})

	t.Run("OverwritesExistingValues", func(t *testing.T) {
		m := NewComparable[string](WithInvariantChecks(true))
		require.NoError(t, m.SetRange(0x30, 0x39, "digit"))
		require.NoError(t, m.SetFromProperty(PropertyFunc[string](property)))

		assert.True(t, m.ValuesEquivalentTo("digit").IsEmpty())
	})

	t.Run("MatchesPointwiseSet", func(t *testing.T) {
		src := PropertyFunc[int](func(c rune) (int, bool) {
			if c%7 == 0 {
				return 0, false
			}
			return int(c/5) % 3, c < 0x800
		})

		bulk := NewComparable[int]()
		require.NoError(t, bulk.SetFromProperty(src))

		pointwise := NewComparable[int]()
		for c := rune(0); c <= MaxCodePoint; c++ {
			v, ok := src.ValueAt(c)
			if ok {
				require.NoError(t, pointwise.Set(c, v))
			} else {
				require.NoError(t, pointwise.Delete(c))
			}
		}

		require.NoError(t, bulk.CheckInvariants())
		assert.Equal(t, pointwise.transitions[:pointwise.length], bulk.transitions[:bulk.length])
		assert.Equal(t, pointwise.values[:pointwise.length], bulk.values[:bulk.length])
	})
}
