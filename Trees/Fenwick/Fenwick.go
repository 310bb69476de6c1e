/*
Package Fenwick implements the binary indexed tree over an Abel: point add and prefix
fold in O(log n), arbitrary ranges as the difference of two prefixes.

vs[j], 1<=j<=n, holds the fold of elements (j-lowbit(j), j]. A prefix of i elements is
collected by walking j=i, i-lowbit(i), ... down to 0; adding to element i touches
j=i+1, j+lowbit(j), ... up to n. The operation is assumed commutative.
*/
package Fenwick

import (
	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Trees"
)

var _ Trees.Ranger[int] = (*Tree[int, Monoids.Sum[int]])(nil)

type Tree[T any, A Monoids.Abel[T]] struct {
	a  A
	vs []T //vs[0] is unused.
}

// New tree of n identity elements.
func New[T any, A Monoids.Abel[T]](a A, n int) *Tree[T, A] {
	u := &Tree[T, A]{a, make([]T, n+1)}
	for j := range u.vs {
		u.vs[j] = a.Identity()
	}
	return u
}

// From builds a tree of len(vs) elements in O(n).
func From[T any, A Monoids.Abel[T]](a A, vs []T) *Tree[T, A] {
	u := &Tree[T, A]{a, make([]T, len(vs)+1)}
	u.vs[0] = a.Identity()
	copy(u.vs[1:], vs)
	for j := 1; j < len(u.vs); j++ {
		if p := j + j&-j; p < len(u.vs) {
			u.vs[p] = a.Op(u.vs[p], u.vs[j])
		}
	}
	return u
}

// Len is the number of elements.
func (u *Tree[T, A]) Len() int { return len(u.vs) - 1 }

// Add combines v into element i, 0<=i<Len().
func (u *Tree[T, A]) Add(i int, v T) {
	Go_Segments.CheckIndex(i, len(u.vs)-1)
	for j := i + 1; j < len(u.vs); j += j & -j {
		u.vs[j] = u.a.Op(u.vs[j], v)
	}
}

// Sum folds the first i elements, [0, i). 0<=i<=Len(); Sum(0) is the identity.
func (u *Tree[T, A]) Sum(i int) T {
	Go_Segments.CheckIndex(i, len(u.vs))
	acc := u.a.Identity()
	for j := i; j > 0; j -= j & -j {
		acc = u.a.Op(acc, u.vs[j])
	}
	return acc
}

// PartialSum folds [from, to), 0<=from<=to<=Len().
func (u *Tree[T, A]) PartialSum(from, to int) T {
	return u.a.Inverse(u.Sum(to), u.Sum(from))
}

// Get element i, 0<=i<Len().
func (u *Tree[T, A]) Get(i int) T {
	Go_Segments.CheckIndex(i, len(u.vs)-1)
	return u.PartialSum(i, i+1)
}

// Set element i, 0<=i<Len(), to v.
func (u *Tree[T, A]) Set(i int, v T) {
	u.Add(i, u.a.Inverse(v, u.Get(i)))
}

// Update is Set.
func (u *Tree[T, A]) Update(i int, v T) { u.Set(i, v) }

// Range folds the part of [from, to) inside [0, Len()).
func (u *Tree[T, A]) Range(from, to int) T {
	from, to = max(from, 0), min(to, len(u.vs)-1)
	if from >= to {
		return u.a.Identity()
	}
	return u.PartialSum(from, to)
}
