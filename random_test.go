package runemap

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/runemap/testutil"
)

var randomValues = []string{"a", "b", "c", "d", "e"}

// randomWindow picks a range near the low end or near MaxCodePoint so that
// boundary handling at both ends of the code space is exercised.
func randomWindow(rng *testutil.RNG, maxLen int) (rune, rune) {
	if rng.Intn(8) == 0 {
		return rng.RangeIn(MaxCodePoint-64, MaxCodePoint, maxLen)
	}
	return rng.RangeIn(0, 0x2FF, maxLen)
}

func TestRandomOperationsMatchReference(t *testing.T) {
	for _, seed := range []int64{1, 42, 4711} {
		rng := testutil.NewRNG(seed)
		ref := testutil.NewReference[string]()
		m := NewComparable[string](WithInvariantChecks(true))

		for step := range 2000 {
			v := randomValues[rng.Zipf(len(randomValues), 1.2)]
			lo, hi := randomWindow(rng, 40)

			switch op := rng.Intn(10); {
			case op < 4:
				require.NoError(t, m.Set(lo, v), "seed %d step %d", seed, step)
				ref.Set(lo, v)
			case op < 8:
				require.NoError(t, m.SetRange(lo, hi, v), "seed %d step %d", seed, step)
				ref.SetRange(lo, hi, v)
			case op < 9:
				require.NoError(t, m.Delete(lo), "seed %d step %d", seed, step)
				ref.Delete(lo)
			default:
				require.NoError(t, m.DeleteRange(lo, hi), "seed %d step %d", seed, step)
				ref.DeleteRange(lo, hi)
			}
		}

		assert.Equal(t, ref.Runs(), m.RunCount(), "seed %d", seed)
		for _, v := range randomValues {
			assert.Equal(t, ref.CodePoints(v), slices.Collect(m.ValuesEquivalentTo(v).All()), "seed %d value %s", seed, v)
		}
		for c := rune(0); c <= 0x2FF; c++ {
			want, wantOK := ref.Get(c)
			got, gotOK := mustGet(t, m, c)
			require.Equal(t, wantOK, gotOK, "seed %d code point %X", seed, c)
			require.Equal(t, want, got, "seed %d code point %X", seed, c)
		}
	}
}

func TestRandomSetRangeMatchesPointwiseSet(t *testing.T) {
	rng := testutil.NewRNG(7)
	ranged := NewComparable[string]()
	pointwise := NewComparable[string]()

	for range 1000 {
		v := randomValues[rng.Zipf(len(randomValues), 1.5)]
		lo, hi := randomWindow(rng, 64)

		require.NoError(t, ranged.SetRange(lo, hi, v))
		for c := lo; c <= hi; c++ {
			require.NoError(t, pointwise.Set(c, v))
		}
		require.Equal(t, pointwise.transitions[:pointwise.length], ranged.transitions[:ranged.length])
		require.Equal(t, pointwise.values[:pointwise.length], ranged.values[:ranged.length])
	}
	require.NoError(t, ranged.CheckInvariants())
}

func TestRandomSetMissingIsCanonical(t *testing.T) {
	rng := testutil.NewRNG(99)
	m := NewComparable[string]()
	pointwise := NewComparable[string]()

	for range 200 {
		v := randomValues[rng.Zipf(len(randomValues), 1.5)]
		lo, hi := randomWindow(rng, 16)
		require.NoError(t, m.SetRange(lo, hi, v))
		require.NoError(t, pointwise.SetRange(lo, hi, v))
	}

	require.NoError(t, m.SetMissing("a"))
	require.NoError(t, m.CheckInvariants())

	for rg := range pointwise.Missing().Ranges() {
		require.NoError(t, pointwise.SetRange(rg.Lo, rg.Hi, "a"))
	}
	assert.Equal(t, pointwise.transitions[:pointwise.length], m.transitions[:m.length])
}
