package ucd

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/hupe1980/runemap"
)

// Property names understood by Load.
const (
	GeneralCategory = "gc"
	Script          = "sc"
	Width           = "width"
)

// ErrUnknownProperty is returned by Load for names it does not know.
var ErrUnknownProperty = errors.New("unknown property")

// Values used for code points no table covers.
const (
	UnassignedCategory = "Cn"
	UnknownScript      = "Unknown"
)

// Properties lists the names accepted by Load.
func Properties() []string {
	return []string{GeneralCategory, Script, Width}
}

// TableSource maps a code point to the name of the first table containing
// it, in ascending name order.
type TableSource struct {
	names  []string
	tables []*unicode.RangeTable
}

var _ runemap.PropertySource[string] = (*TableSource)(nil)

// NewTableSource creates a source over the given named tables. Nil tables are
// skipped.
func NewTableSource(tables map[string]*unicode.RangeTable) *TableSource {
	names := make([]string, 0, len(tables))
	for name, rt := range tables {
		if rt != nil {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	s := &TableSource{names: names, tables: make([]*unicode.RangeTable, len(names))}
	for i, name := range names {
		s.tables[i] = tables[name]
	}
	return s
}

// Names returns the table names in lookup order.
func (s *TableSource) Names() []string {
	return slices.Clone(s.names)
}

// ValueAt implements runemap.PropertySource.
func (s *TableSource) ValueAt(c rune) (string, bool) {
	for i, rt := range s.tables {
		if unicode.Is(rt, c) {
			return s.names[i], true
		}
	}
	return "", false
}

// LoadInto assigns every table's code points to m. Overlaps resolve the same
// way as ValueAt. Code points outside all tables are left untouched.
func (s *TableSource) LoadInto(m *runemap.Map[string]) error {
	for i := len(s.names) - 1; i >= 0; i-- {
		set, err := runemap.CodePointSetFromRangeTable(s.tables[i])
		if err != nil {
			return fmt.Errorf("table %s: %w", s.names[i], err)
		}
		if err := m.SetCodePointSet(set, s.names[i]); err != nil {
			return fmt.Errorf("table %s: %w", s.names[i], err)
		}
	}
	return nil
}

// GeneralCategorySource returns the two-letter general categories.
func GeneralCategorySource() *TableSource {
	tables := make(map[string]*unicode.RangeTable)
	for name, rt := range unicode.Categories {
		// Skip major classes ("L") and the cased letter union ("LC").
		if len(name) == 2 && name != "LC" {
			tables[name] = rt
		}
	}
	return NewTableSource(tables)
}

// ScriptSource returns the Unicode scripts.
func ScriptSource() *TableSource {
	return NewTableSource(unicode.Scripts)
}

// DisplayWidth returns the monospace cell width of each code point as
// computed by uniseg.
func DisplayWidth() runemap.PropertyFunc[int] {
	return func(c rune) (int, bool) {
		return uniseg.StringWidth(string(c)), true
	}
}

// Load builds a map for the named property over the whole code space.
func Load(name string, optFns ...runemap.Option) (*runemap.Map[string], error) {
	m := runemap.NewComparable[string](optFns...)

	switch name {
	case GeneralCategory:
		if err := GeneralCategorySource().LoadInto(m); err != nil {
			return nil, err
		}
		if err := m.SetMissing(UnassignedCategory); err != nil {
			return nil, err
		}
	case Script:
		if err := ScriptSource().LoadInto(m); err != nil {
			return nil, err
		}
		if err := m.SetMissing(UnknownScript); err != nil {
			return nil, err
		}
	case Width:
		width := DisplayWidth()
		err := m.SetFromProperty(runemap.PropertyFunc[string](func(c rune) (string, bool) {
			w, _ := width(c)
			return strconv.Itoa(w), true
		}))
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProperty, name)
	}

	return m, nil
}
