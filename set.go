package runemap

import (
	"iter"
	"strings"
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/text/unicode/rangetable"

	"github.com/hupe1980/runemap/internal/conv"
)

// Range is an inclusive interval of code points.
type Range struct {
	Lo, Hi rune
}

// CodePointSet is a set of code points backed by a 32-bit Roaring Bitmap.
// Sets returned by Map queries are owned by the caller.
type CodePointSet struct {
	rb *roaring.Bitmap
}

// NewCodePointSet creates a new empty set.
func NewCodePointSet() *CodePointSet {
	return &CodePointSet{
		rb: roaring.New(),
	}
}

// CodePointSetOf creates a set holding the given code points.
func CodePointSetOf(runes ...rune) (*CodePointSet, error) {
	s := NewCodePointSet()
	for _, r := range runes {
		if err := s.Add(r); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// CodePointSetFromRangeTable creates a set holding the code points of rt.
func CodePointSetFromRangeTable(rt *unicode.RangeTable) (*CodePointSet, error) {
	s := NewCodePointSet()
	if rt == nil {
		return s, nil
	}
	for _, r16 := range rt.R16 {
		if err := s.addStrided(rune(r16.Lo), rune(r16.Hi), rune(r16.Stride)); err != nil {
			return nil, err
		}
	}
	for _, r32 := range rt.R32 {
		if err := s.addStrided(rune(r32.Lo), rune(r32.Hi), rune(r32.Stride)); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *CodePointSet) addStrided(lo, hi, stride rune) error {
	if stride == 1 {
		return s.AddRange(lo, hi)
	}
	for r := lo; r <= hi; r += stride {
		if err := s.Add(r); err != nil {
			return err
		}
	}
	return nil
}

// Add adds a code point to the set.
func (s *CodePointSet) Add(c rune) error {
	if err := checkCodePoint(c); err != nil {
		return err
	}
	s.rb.Add(uint32(c))
	return nil
}

// AddRange adds every code point in [lo, hi]. An empty range is a no-op.
func (s *CodePointSet) AddRange(lo, hi rune) error {
	if err := checkRange(lo, hi); err != nil {
		return err
	}
	s.addRange(lo, hi)
	return nil
}

// addRange expects a validated range.
func (s *CodePointSet) addRange(lo, hi rune) {
	if lo > hi {
		return
	}
	s.rb.AddRange(uint64(lo), uint64(hi)+1)
}

// Remove removes a code point from the set. Invalid code points are ignored.
func (s *CodePointSet) Remove(c rune) {
	if u, err := conv.RuneToUint32(c); err == nil {
		s.rb.Remove(u)
	}
}

// Contains checks if a code point is in the set.
func (s *CodePointSet) Contains(c rune) bool {
	u, err := conv.RuneToUint32(c)
	if err != nil {
		return false
	}
	return s.rb.Contains(u)
}

// IsEmpty returns true if the set is empty.
func (s *CodePointSet) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of code points in the set.
func (s *CodePointSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *CodePointSet) Clone() *CodePointSet {
	return &CodePointSet{
		rb: s.rb.Clone(),
	}
}

// Equal reports whether both sets hold the same code points.
func (s *CodePointSet) Equal(other *CodePointSet) bool {
	if other == nil {
		return false
	}
	return s.rb.Equals(other.rb)
}

// Or adds every code point of other to s. A nil other is a no-op.
func (s *CodePointSet) Or(other *CodePointSet) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// All returns an iterator over the code points in ascending order.
func (s *CodePointSet) All() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			r, err := conv.Uint32ToRune(it.Next())
			if err != nil {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// Ranges returns an iterator over the maximal ranges of the set in ascending order.
func (s *CodePointSet) Ranges() iter.Seq[Range] {
	return func(yield func(Range) bool) {
		var cur Range
		open := false
		for r := range s.All() {
			if open && r == cur.Hi+1 {
				cur.Hi = r
				continue
			}
			if open && !yield(cur) {
				return
			}
			cur = Range{Lo: r, Hi: r}
			open = true
		}
		if open {
			yield(cur)
		}
	}
}

// Bitmap returns a copy of the underlying bitmap.
func (s *CodePointSet) Bitmap() *roaring.Bitmap {
	return s.rb.Clone()
}

// RangeTable converts the set into a normalized unicode.RangeTable.
func (s *CodePointSet) RangeTable() *unicode.RangeTable {
	rt := &unicode.RangeTable{}
	for rg := range s.Ranges() {
		if rg.Lo <= 0xFFFF {
			rt.R16 = append(rt.R16, unicode.Range16{
				Lo:     uint16(rg.Lo),
				Hi:     uint16(min(rg.Hi, 0xFFFF)),
				Stride: 1,
			})
		}
		if rg.Hi >= 0x10000 {
			rt.R32 = append(rt.R32, unicode.Range32{
				Lo:     uint32(max(rg.Lo, 0x10000)),
				Hi:     uint32(rg.Hi),
				Stride: 1,
			})
		}
	}
	return rangetable.Merge(rt)
}

// String renders the set as hex ranges, e.g. "[0041..005A 0061]".
func (s *CodePointSet) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for rg := range s.Ranges() {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(hex(rg.Lo))
		if rg.Hi != rg.Lo {
			sb.WriteString("..")
			sb.WriteString(hex(rg.Hi))
		}
	}
	sb.WriteByte(']')
	return sb.String()
}
