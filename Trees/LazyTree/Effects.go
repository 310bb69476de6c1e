package LazyTree

import "github.com/g-m-twostay/go-segments/Monoids"

// Assign is the effect "set every element to V". The zero value, with Set false, does
// nothing.
type Assign[T comparable] struct {
	V   T
	Set bool
}

// Set is the Assign to v.
func Set[T comparable](v T) Assign[T] {
	return Assign[T]{v, true}
}

// Assigns is the effect Monoid of Assign: the newer assignment wins.
type Assigns[T comparable] struct{}

func (Assigns[T]) Identity() Assign[T] { return Assign[T]{} }
func (Assigns[T]) Op(x, y Assign[T]) Assign[T] {
	if y.Set {
		return y
	}
	return x
}

// AddSized applies "add e to each element" to a sum. Use with Monoids.Sum[T] as effects.
func AddSized[T Monoids.Number](x Monoids.Sized[T], e T) Monoids.Sized[T] {
	x.Sum += e * T(x.Len)
	return x
}

// AddExtremum applies "add e to each element" to a maximum or minimum.
func AddExtremum[T Monoids.Number](x, e T) T {
	return x + e
}

// AssignSized applies an Assign to a sum.
func AssignSized[T Monoids.Number](x Monoids.Sized[T], e Assign[T]) Monoids.Sized[T] {
	if e.Set {
		x.Sum = e.V * T(x.Len)
	}
	return x
}

// AssignExtremum applies an Assign to a maximum, minimum or any aggregate of equal
// elements that is the element itself.
func AssignExtremum[T comparable](x T, e Assign[T]) T {
	if e.Set {
		return e.V
	}
	return x
}
