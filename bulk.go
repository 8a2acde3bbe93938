package runemap

import (
	"iter"
	"time"
)

// SetAll associates every code point yielded by codePoints with value.
//
// The sequence is consumed once and validated completely before the map is
// touched; an out-of-range element leaves the map unchanged.
func (m *Map[V]) SetAll(codePoints iter.Seq[rune], value V) error {
	start := time.Now()
	s := NewCodePointSet()
	count := 0
	for c := range codePoints {
		if err := s.Add(c); err != nil {
			m.recordBulkLoad("set all", count, start, err)
			return err
		}
		count++
	}
	m.apply(s, entry[V]{value: value, ok: true})
	err := m.verify("set all")
	m.recordBulkLoad("set all", count, start, err)
	return err
}

// SetCodePointSet associates every code point in s with value.
func (m *Map[V]) SetCodePointSet(s *CodePointSet, value V) error {
	if s == nil {
		return nil
	}
	start := time.Now()
	m.apply(s, entry[V]{value: value, ok: true})
	err := m.verify("set code point set")
	m.recordBulkLoad("set code point set", int(s.Cardinality()), start, err)
	return err
}

func (m *Map[V]) apply(s *CodePointSet, e entry[V]) {
	for rg := range s.Ranges() {
		m.replaceRange(rg.Lo, rg.Hi, e)
	}
}

// SetFromProperty loads src for the whole code space.
//
// src.ValueAt is called exactly once for every code point from 0 to
// MaxCodePoint in ascending order. Code points for which src reports no
// value become unset.
func (m *Map[V]) SetFromProperty(src PropertySource[V]) error {
	start := time.Now()
	runStart := rune(0)
	var cur entry[V]
	for c := rune(0); c <= MaxCodePoint; c++ {
		var e entry[V]
		if v, ok := src.ValueAt(c); ok {
			e = entry[V]{value: v, ok: true}
		}
		if c == 0 {
			cur = e
			continue
		}
		if m.equal(cur, e) {
			continue
		}
		m.replaceRange(runStart, c-1, cur)
		runStart, cur = c, e
	}
	m.replaceRange(runStart, MaxCodePoint, cur)
	err := m.verify("set from property")
	m.recordBulkLoad("set from property", int(codeSpaceLimit), start, err)
	return err
}

func (m *Map[V]) recordBulkLoad(kind string, codePoints int, start time.Time, err error) {
	elapsed := time.Since(start)
	m.opts.metricsCollector.RecordBulkLoad(kind, codePoints, elapsed, err)
	m.opts.logger.LogBulkLoad(kind, codePoints, m.RunCount(), elapsed, err)
}
