package Monoids

import "golang.org/x/exp/constraints"

// Sized is a sum that remembers how many elements it covers. Range effects that act on
// every element (adding c to each) need the count to update a sum.
type Sized[T Number | constraints.Complex] struct {
	Sum T
	Len int
}

// SizedSum adds both fields.
type SizedSum[T Number | constraints.Complex] struct{}

func (SizedSum[T]) Identity() Sized[T] { return Sized[T]{} }
func (SizedSum[T]) Op(x, y Sized[T]) Sized[T] {
	return Sized[T]{x.Sum + y.Sum, x.Len + y.Len}
}
func (SizedSum[T]) Inverse(x, y Sized[T]) Sized[T] {
	return Sized[T]{x.Sum - y.Sum, x.Len - y.Len}
}

// Sizes wraps each element of vs as a single-element Sized.
func Sizes[T Number | constraints.Complex](vs []T) []Sized[T] {
	r := make([]Sized[T], len(vs))
	for i, v := range vs {
		r[i] = Sized[T]{v, 1}
	}
	return r
}
