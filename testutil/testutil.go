package testutil

import (
	"math"
	"math/rand"
	"slices"
	"sync"
)

// maxCodePoint mirrors runemap.MaxCodePoint without importing it.
const maxCodePoint rune = 0x10FFFF

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// CodePoint returns a uniformly distributed code point in [0, 0x10FFFF].
func (r *RNG) CodePoint() rune {
	return r.CodePointIn(0, maxCodePoint)
}

// CodePointIn returns a uniformly distributed code point in [lo, hi].
func (r *RNG) CodePointIn(lo, hi rune) rune {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo + rune(r.rand.Int63n(int64(hi-lo)+1))
}

// RangeIn returns an inclusive range inside [lo, hi] of at most maxLen code points.
func (r *RNG) RangeIn(lo, hi rune, maxLen int) (rune, rune) {
	r.mu.Lock()
	defer r.mu.Unlock()
	start := lo + rune(r.rand.Int63n(int64(hi-lo)+1))
	end := start + rune(r.rand.Intn(maxLen))
	return start, min(end, hi)
}

// Zipf returns a Zipfian-distributed value in [0, n).
// Uses Zipf's law: P(k) ∝ 1/k^s where s is the skew parameter.
// Skewed value choices produce the long equal runs typical of
// character properties.
func (r *RNG) Zipf(n int, s float64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.zipfLocked(n, s)
}

// zipfLocked is the internal implementation (caller must hold lock).
func (r *RNG) zipfLocked(n int, s float64) int {
	if n <= 1 {
		return 0
	}

	// Compute normalization constant (harmonic number with exponent s)
	var hns float64
	for i := 1; i <= n; i++ {
		hns += 1.0 / math.Pow(float64(i), s)
	}

	// Sample from uniform and use inverse transform
	u := r.rand.Float64() * hns
	var cumulative float64
	for k := 1; k <= n; k++ {
		cumulative += 1.0 / math.Pow(float64(k), s)
		if u <= cumulative {
			return k - 1 // 0-indexed
		}
	}

	return n - 1
}

// Reference is a brute-force code point map used as ground truth.
// It stores one entry per mapped code point.
type Reference[V comparable] struct {
	values map[rune]V
}

// NewReference creates an empty Reference.
func NewReference[V comparable]() *Reference[V] {
	return &Reference[V]{values: make(map[rune]V)}
}

// Set maps c to v.
func (ref *Reference[V]) Set(c rune, v V) {
	ref.values[c] = v
}

// SetRange maps every code point in [lo, hi] to v.
func (ref *Reference[V]) SetRange(lo, hi rune, v V) {
	for c := lo; c <= hi; c++ {
		ref.values[c] = v
	}
}

// Delete unmaps c.
func (ref *Reference[V]) Delete(c rune) {
	delete(ref.values, c)
}

// DeleteRange unmaps every code point in [lo, hi].
func (ref *Reference[V]) DeleteRange(lo, hi rune) {
	for c := lo; c <= hi; c++ {
		delete(ref.values, c)
	}
}

// Get returns the value of c.
func (ref *Reference[V]) Get(c rune) (V, bool) {
	v, ok := ref.values[c]
	return v, ok
}

// CodePoints returns the sorted code points mapped to v.
func (ref *Reference[V]) CodePoints(v V) []rune {
	var result []rune
	for c, w := range ref.values {
		if w == v {
			result = append(result, c)
		}
	}
	slices.Sort(result)
	return result
}

// Runs counts the maximal runs over the whole code space, mapped or not.
func (ref *Reference[V]) Runs() int {
	keys := make([]rune, 0, len(ref.values))
	for c := range ref.values {
		keys = append(keys, c)
	}
	slices.Sort(keys)

	runs := 0
	next := rune(0) // first code point not yet covered
	var prev V
	prevMapped := false
	for _, c := range keys {
		v := ref.values[c]
		if c > next {
			// unmapped gap
			if prevMapped || runs == 0 {
				runs++
			}
			prevMapped = false
		}
		if !prevMapped || c > next || v != prev {
			runs++
		}
		prev, prevMapped, next = v, true, c+1
	}
	if next <= maxCodePoint && (prevMapped || runs == 0) {
		runs++
	}
	return runs
}
