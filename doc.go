// Package runemap provides a compact map from Unicode code points to values.
//
// A Map covers the whole code space [0, 0x10FFFF]. It stores an inversion
// list of run boundaries instead of one entry per code point, so a property
// such as General_Category fits into a few thousand runs.
//
// # Quick Start
//
//	m := runemap.NewComparable[string]()
//	_ = m.SetRange('a', 'z', "lower")
//	_ = m.Set('m', "mid")
//	v, ok, _ := m.Get('q') // "lower", true
//
// Every code point starts without a value. Get reports that as ok == false.
//
// # Run Merging
//
// Neighbouring runs with equal values are always merged. Equality is decided
// by an Equator:
//
//	m := runemap.New[[]string]()                         // reflect.DeepEqual
//	m := runemap.NewComparable[int]()                    // ==
//	m := runemap.NewWithEquator[string](caseInsensitive) // custom
//
// # Bulk Loading
//
//	_ = m.SetAll(runemap.RangeTableRunes(unicode.Greek), "Greek")
//	_ = m.SetFromProperty(runemap.PropertyFunc[string](lookup))
//	_ = m.SetMissing("Unknown")
//
// # Queries
//
// ValuesEquivalentTo and Missing return a CodePointSet backed by a Roaring
// Bitmap that can be converted into a unicode.RangeTable. Runs iterates the
// intervals directly.
//
// # Debugging
//
// CheckInvariants validates the inversion list. WithInvariantChecks(true)
// runs it after every mutation.
package runemap
