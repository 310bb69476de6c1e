package Fenwick

import (
	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
)

// Accumulate is an immutable table of prefix folds: O(n) to build, O(1) per range.
type Accumulate[T any, A Monoids.Abel[T]] struct {
	a  A
	vs []T //vs[i] folds the first i elements.
}

func NewAccumulate[T any, A Monoids.Abel[T]](a A, vs []T) *Accumulate[T, A] {
	u := &Accumulate[T, A]{a, make([]T, len(vs)+1)}
	u.vs[0] = a.Identity()
	for i, v := range vs {
		u.vs[i+1] = a.Op(u.vs[i], v)
	}
	return u
}

func (u *Accumulate[T, A]) Len() int { return len(u.vs) - 1 }

// Sum folds [0, i), 0<=i<=Len().
func (u *Accumulate[T, A]) Sum(i int) T {
	Go_Segments.CheckIndex(i, len(u.vs))
	return u.vs[i]
}

// PartialSum folds [from, to), 0<=from<=to<=Len().
func (u *Accumulate[T, A]) PartialSum(from, to int) T {
	return u.a.Inverse(u.Sum(to), u.Sum(from))
}
