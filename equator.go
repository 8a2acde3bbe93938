package runemap

import "reflect"

// Equator decides whether two stored values are the same run value.
//
// It must be an equivalence relation over every value ever stored in a map,
// otherwise adjacent runs cannot be merged reliably. Unset entries never reach
// an Equator; the map handles them itself.
type Equator[V any] interface {
	Equal(a, b V) bool
}

// EquatorFunc adapts a plain function to Equator.
type EquatorFunc[V any] func(a, b V) bool

// Equal implements Equator.
func (f EquatorFunc[V]) Equal(a, b V) bool { return f(a, b) }

// DefaultEquator compares values structurally with reflect.DeepEqual.
type DefaultEquator[V any] struct{}

// Equal implements Equator.
func (DefaultEquator[V]) Equal(a, b V) bool { return reflect.DeepEqual(a, b) }

// ComparableEquator compares values with ==.
type ComparableEquator[V comparable] struct{}

// Equal implements Equator.
func (ComparableEquator[V]) Equal(a, b V) bool { return a == b }
