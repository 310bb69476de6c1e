/*
Package SegTree implements a segment tree: a complete binary tree in a flat array whose
internal nodes hold the fold of their children. Point update and range fold are O(log n).

The tree has leaves = next power of two of n leaves and 2*leaves-1 slots. Leaf i is at
slot leaves-1+i, node k has children 2k+1 and 2k+2. Leaves past n hold the identity.
*/
package SegTree

import (
	"math/bits"

	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Trees"
)

var _ Trees.Ranger[int] = (*Tree[int, Monoids.Sum[int]])(nil)

type Tree[T any, M Monoids.Monoid[T]] struct {
	m         M
	n, leaves int
	vs        []T
}

// LeavesFor n elements: the next power of two, 1 when n is 0.
func LeavesFor(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// New tree over a copy of vs.
func New[T any, M Monoids.Monoid[T]](m M, vs []T) *Tree[T, M] {
	return From(m, vs, func(v T) T { return v })
}

// From builds the tree from vs, converting each element with conv.
func From[V, T any, M Monoids.Monoid[T]](m M, vs []V, conv func(V) T) *Tree[T, M] {
	u := &Tree[T, M]{m: m, n: len(vs), leaves: LeavesFor(len(vs))}
	u.vs = make([]T, 2*u.leaves-1)
	for i := range u.leaves {
		if i < len(vs) {
			u.vs[u.leaves-1+i] = conv(vs[i])
		} else {
			u.vs[u.leaves-1+i] = m.Identity()
		}
	}
	for k := u.leaves - 2; k > -1; k-- {
		u.vs[k] = m.Op(u.vs[2*k+1], u.vs[2*k+2])
	}
	return u
}

// Len is the number of elements the tree was built with.
func (u *Tree[T, M]) Len() int { return u.n }

// Leaves is the number of leaves, Len rounded up to a power of two.
func (u *Tree[T, M]) Leaves() int { return u.leaves }

// All is the fold of every element.
func (u *Tree[T, M]) All() T { return u.vs[0] }

// Get the raw value of leaf i, 0<=i<Leaves().
func (u *Tree[T, M]) Get(i int) T {
	Go_Segments.CheckIndex(i, u.leaves)
	return u.vs[u.leaves-1+i]
}

// Update leaf i, 0<=i<Leaves(), to v and recompute its ancestors.
func (u *Tree[T, M]) Update(i int, v T) {
	Go_Segments.CheckIndex(i, u.leaves)
	k := u.leaves - 1 + i
	u.vs[k] = v
	for k > 0 {
		k = (k - 1) >> 1
		u.vs[k] = u.m.Op(u.vs[2*k+1], u.vs[2*k+2])
	}
}

// Range folds [from, to). Indices past Leaves() are treated as outside the tree.
func (u *Tree[T, M]) Range(from, to int) T {
	return u.fold(from, to, 0, u.leaves, 0)
}

// fold the part of [from, to) under node k, which spans [l, r).
func (u *Tree[T, M]) fold(from, to, l, r, k int) T {
	if from >= r || to <= l {
		return u.m.Identity()
	}
	if from <= l && r <= to {
		return u.vs[k]
	}
	mid := (l + r) >> 1
	return u.m.Op(u.fold(from, to, l, mid, 2*k+1), u.fold(from, to, mid, r, 2*k+2))
}
