package runemap

import (
	"iter"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// PropertySource yields the value of a property for a single code point.
// ok is false when the code point has no value.
type PropertySource[V any] interface {
	ValueAt(c rune) (value V, ok bool)
}

// PropertyFunc adapts a plain function to PropertySource.
type PropertyFunc[V any] func(c rune) (V, bool)

// ValueAt implements PropertySource.
func (f PropertyFunc[V]) ValueAt(c rune) (V, bool) { return f(c) }

// RangeTableRunes returns the code points of rt in ascending order.
func RangeTableRunes(rt *unicode.RangeTable) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if rt == nil {
			return
		}
		// Visit has no early exit; merged tables are ascending.
		stopped := false
		rangetable.Visit(rangetable.Merge(rt), func(r rune) {
			if !stopped && !yield(r) {
				stopped = true
			}
		})
	}
}
