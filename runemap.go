package runemap

import (
	"errors"
	"fmt"
	"iter"
	"strings"
)

const (
	// MaxCodePoint is the largest valid code point.
	MaxCodePoint rune = 0x10FFFF

	// codeSpaceLimit closes the last interval of the inversion list.
	codeSpaceLimit = MaxCodePoint + 1

	defaultCapacity = 10
	growthPercent   = 200 // 100 is no growth
	growthGap       = 10
)

// entry is a stored value plus its presence bit. A zero entry is unset.
type entry[V any] struct {
	value V
	ok    bool
}

// Run is a maximal interval of code points [Lo, Hi] sharing one value.
// Mapped is false for code points without a value.
type Run[V any] struct {
	Lo, Hi rune
	Value  V
	Mapped bool
}

// Map associates every code point in [0, MaxCodePoint] with a value.
//
// Internally it is an inversion list: transitions[i] starts the interval
// that holds values[i] and ends before transitions[i+1]. Adjacent intervals
// never hold equal values, so the storage grows with the number of runs,
// not with the number of code points.
//
// A Map is not safe for concurrent use.
type Map[V any] struct {
	length      int
	transitions []rune
	values      []entry[V]
	equator     Equator[V]
	opts        options
}

// New creates an empty map that compares values with DefaultEquator.
func New[V any](optFns ...Option) *Map[V] {
	return NewWithEquator[V](DefaultEquator[V]{}, optFns...)
}

// NewComparable creates an empty map that compares values with ==.
func NewComparable[V comparable](optFns ...Option) *Map[V] {
	return NewWithEquator[V](ComparableEquator[V]{}, optFns...)
}

// NewWithEquator creates an empty map that uses eq to decide whether two
// neighbouring runs can be merged. A nil eq selects DefaultEquator.
func NewWithEquator[V any](eq Equator[V], optFns ...Option) *Map[V] {
	if eq == nil {
		eq = DefaultEquator[V]{}
	}
	o := applyOptions(optFns)
	m := &Map[V]{
		length:      2,
		transitions: make([]rune, o.initialCapacity),
		values:      make([]entry[V], o.initialCapacity),
		equator:     eq,
		opts:        o,
	}
	m.transitions[1] = codeSpaceLimit
	return m
}

// Get returns the value of c. ok is false when c has no value.
func (m *Map[V]) Get(c rune) (value V, ok bool, err error) {
	if err := checkCodePoint(c); err != nil {
		return value, false, err
	}
	e := m.values[m.findIndex(c)]
	return e.value, e.ok, nil
}

// Set associates c with value, merging with neighbouring runs.
func (m *Map[V]) Set(c rune, value V) error {
	if err := checkCodePoint(c); err != nil {
		return err
	}
	m.put(c, entry[V]{value: value, ok: true})
	return m.verify("set")
}

// Delete removes the value of c.
func (m *Map[V]) Delete(c rune) error {
	if err := checkCodePoint(c); err != nil {
		return err
	}
	m.put(c, entry[V]{})
	return m.verify("delete")
}

// SetRange associates every code point in [lo, hi] with value.
// An empty range (lo > hi) is a no-op.
func (m *Map[V]) SetRange(lo, hi rune, value V) error {
	if err := checkRange(lo, hi); err != nil {
		return err
	}
	m.replaceRange(lo, hi, entry[V]{value: value, ok: true})
	return m.verify("set range")
}

// DeleteRange removes the values of every code point in [lo, hi].
func (m *Map[V]) DeleteRange(lo, hi rune) error {
	if err := checkRange(lo, hi); err != nil {
		return err
	}
	m.replaceRange(lo, hi, entry[V]{})
	return m.verify("delete range")
}

// SetMissing assigns value to every code point that has none.
//
// Afterwards runs that became equal to a neighbour are merged, so the map is
// as compact as if value had been set code point by code point.
func (m *Map[V]) SetMissing(value V) error {
	e := entry[V]{value: value, ok: true}
	changed := false
	for i := 0; i < m.length-1; i++ {
		if !m.values[i].ok {
			m.values[i] = e
			changed = true
		}
	}
	if changed {
		m.compact()
	}
	return m.verify("set missing")
}

// ValuesEquivalentTo returns the code points whose value equals value under
// the map's Equator. The result is independent of the map.
func (m *Map[V]) ValuesEquivalentTo(value V) *CodePointSet {
	return m.collect(entry[V]{value: value, ok: true})
}

// Missing returns the code points that have no value.
func (m *Map[V]) Missing() *CodePointSet {
	return m.collect(entry[V]{})
}

func (m *Map[V]) collect(e entry[V]) *CodePointSet {
	s := NewCodePointSet()
	for i := 0; i < m.length-1; i++ {
		if m.equal(m.values[i], e) {
			s.addRange(m.transitions[i], m.transitions[i+1]-1)
		}
	}
	return s
}

// DistinctValues returns every value present in the map once, in code point
// order of first occurrence.
func (m *Map[V]) DistinctValues() []V {
	var result []V
outer:
	for i := 0; i < m.length-1; i++ {
		e := m.values[i]
		if !e.ok {
			continue
		}
		for _, v := range result {
			if m.equator.Equal(v, e.value) {
				continue outer
			}
		}
		result = append(result, e.value)
	}
	return result
}

// Runs yields every interval of the map in ascending order, including the
// intervals without a value.
func (m *Map[V]) Runs() iter.Seq[Run[V]] {
	return func(yield func(Run[V]) bool) {
		for i := 0; i < m.length-1; i++ {
			r := Run[V]{
				Lo:     m.transitions[i],
				Hi:     m.transitions[i+1] - 1,
				Value:  m.values[i].value,
				Mapped: m.values[i].ok,
			}
			if !yield(r) {
				return
			}
		}
	}
}

// RunCount returns the number of intervals, mapped or not.
func (m *Map[V]) RunCount() int {
	return m.length - 1
}

// Clone returns a deep copy of the inversion list. Values themselves are
// copied by assignment.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{
		length:      m.length,
		transitions: make([]rune, len(m.transitions)),
		values:      make([]entry[V], len(m.values)),
		equator:     m.equator,
		opts:        m.opts,
	}
	copy(c.transitions, m.transitions[:m.length])
	copy(c.values, m.values[:m.length])
	return c
}

// String lists the mapped runs, one per line.
func (m *Map[V]) String() string {
	var sb strings.Builder
	for i := 0; i < m.length-1; i++ {
		if !m.values[i].ok {
			continue
		}
		lo, hi := m.transitions[i], m.transitions[i+1]-1
		sb.WriteString(hex(lo))
		if lo != hi {
			sb.WriteString("..")
			sb.WriteString(hex(hi))
		}
		fmt.Fprintf(&sb, "\t=>%v\n", m.values[i].value)
	}
	return sb.String()
}

func (m *Map[V]) equal(a, b entry[V]) bool {
	if !a.ok || !b.ok {
		return a.ok == b.ok
	}
	return m.equator.Equal(a.value, b.value)
}

// findIndex returns i such that transitions[i] <= c < transitions[i+1].
// c must be a valid code point.
func (m *Map[V]) findIndex(c rune) int {
	lo, hi := 0, m.length-1
	i := int(uint(lo+hi) >> 1)
	// invariant: c >= transitions[lo] && c < transitions[hi]
	for i != lo {
		if c < m.transitions[i] {
			hi = i
		} else {
			lo = i
		}
		i = int(uint(lo+hi) >> 1)
	}
	return lo
}

// put assigns e to the single code point c.
func (m *Map[V]) put(c rune, e entry[V]) {
	baseIndex := m.findIndex(c)
	limitIndex := baseIndex + 1
	if m.equal(m.values[baseIndex], e) {
		return
	}
	baseCP := m.transitions[baseIndex]
	limitCP := m.transitions[limitIndex]
	// The sentinel at length-1 is never a neighbour.
	connectsWithFollowing := limitIndex < m.length-1 && m.equal(e, m.values[limitIndex])

	if baseCP == c {
		connectsWithPrevious := baseIndex != 0 && m.equal(e, m.values[baseIndex-1])

		if limitCP == c+1 {
			// Single code point run.
			switch {
			case connectsWithPrevious && connectsWithFollowing:
				m.removeAt(baseIndex, 2)
			case connectsWithPrevious:
				m.removeAt(baseIndex, 1)
			case connectsWithFollowing:
				m.removeAt(baseIndex, 1)
				m.transitions[baseIndex] = c
			default:
				m.values[baseIndex] = e
			}
			return
		}

		// Start of a longer run.
		if connectsWithPrevious {
			m.transitions[baseIndex]++
			return
		}
		m.transitions[baseIndex] = c + 1
		m.insertGapAt(baseIndex, 1)
		m.transitions[baseIndex] = c
		m.values[baseIndex] = e
		return
	}

	if limitCP == c+1 {
		// End of a longer run.
		if connectsWithFollowing {
			m.transitions[limitIndex]--
			return
		}
		m.insertGapAt(limitIndex, 1)
		m.transitions[limitIndex] = c
		m.values[limitIndex] = e
		return
	}

	// Interior: split into three.
	baseIndex++
	m.insertGapAt(baseIndex, 2)
	m.transitions[baseIndex] = c
	m.values[baseIndex] = e
	m.transitions[baseIndex+1] = c + 1
	m.values[baseIndex+1] = m.values[baseIndex-1]
}

// replaceRange assigns e to [lo, hi] in one splice. The result is identical
// to calling put for every code point in the range.
func (m *Map[V]) replaceRange(lo, hi rune, e entry[V]) {
	if lo > hi {
		return
	}
	if lo == hi {
		m.put(lo, e)
		return
	}
	limit := hi + 1

	// Rewrite one untouched run on each side so merges with neighbours fall
	// out of the same pass.
	first := max(m.findIndex(lo)-1, 0)
	last := min(m.findIndex(hi)+2, m.length-1)

	runs := make([]rune, 0, last-first+2)
	vals := make([]entry[V], 0, last-first+2)
	emit := func(start rune, v entry[V]) {
		if n := len(vals); n > 0 && m.equal(vals[n-1], v) {
			return
		}
		runs = append(runs, start)
		vals = append(vals, v)
	}
	for k := first; k < last; k++ {
		start, end := m.transitions[k], m.transitions[k+1]
		if end <= lo || start >= limit {
			emit(start, m.values[k])
			continue
		}
		if start < lo {
			emit(start, m.values[k])
		}
		if start <= lo {
			emit(lo, e)
		}
		if end > limit {
			emit(limit, m.values[k])
		}
	}

	oldCount, newCount := last-first, len(runs)
	switch {
	case newCount > oldCount:
		m.insertGapAt(last, newCount-oldCount)
	case newCount < oldCount:
		m.removeAt(first+newCount, oldCount-newCount)
	}
	copy(m.transitions[first:], runs)
	copy(m.values[first:], vals)
}

// compact merges adjacent equal runs in place.
func (m *Map[V]) compact() {
	w := 1
	for r := 1; r < m.length-1; r++ {
		if m.equal(m.values[w-1], m.values[r]) {
			continue
		}
		m.transitions[w] = m.transitions[r]
		m.values[w] = m.values[r]
		w++
	}
	removed := m.length - 1 - w
	if removed == 0 {
		return
	}
	m.transitions[w] = codeSpaceLimit
	m.values[w] = entry[V]{}
	clear(m.values[w+1 : m.length])
	m.length = w + 1
	m.opts.metricsCollector.RecordSplice(0, removed)
}

func (m *Map[V]) verify(op string) error {
	if !m.opts.checkInvariants {
		return nil
	}
	if err := m.CheckInvariants(); err != nil {
		logger := m.opts.logger
		var ie *InvariantError
		if errors.As(err, &ie) && ie.Index >= 0 && ie.Index < m.length-1 {
			logger = logger.WithRun(m.transitions[ie.Index], m.transitions[ie.Index+1]-1)
		}
		logger.LogInvariantViolation(op, err)
		return err
	}
	return nil
}

func hex(c rune) string {
	return fmt.Sprintf("%04X", c)
}
