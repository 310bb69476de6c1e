/*
Package LazyTree implements a segment tree with lazy propagation: besides folding ranges
of T under a Monoid, it applies effects E to whole ranges in O(log n).

Effects form their own Monoid, where Op(older, newer) is the effect of applying older then
newer. The apply function h(x, e) applies an effect to an aggregate and must distribute:
h(Op(a, b), e) == Op(h(a, e), h(b, e)). An aggregate that needs to know how many elements
it covers (a sum under range add) carries the count itself, see Monoids.Sized.

Each node keeps a pending effect. A node's value already includes its own pending effect;
the effect is merged into the children's pending effects only when a later call descends
past the node.
*/
package LazyTree

import (
	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Trees"
	"github.com/g-m-twostay/go-segments/Trees/SegTree"
)

var _ Trees.Ranger[int] = (*Tree[int, int, Monoids.Max[int], Monoids.Sum[int]])(nil)

type Tree[T any, E comparable, M Monoids.Monoid[T], F Monoids.Monoid[E]] struct {
	m         M
	f         F
	id        E
	apply     func(T, E) T
	n, leaves int
	vs        []T
	lazy      []E
}

// New tree over a copy of vs, with effects from f applied by apply.
func New[T any, E comparable, M Monoids.Monoid[T], F Monoids.Monoid[E]](m M, f F, vs []T, apply func(T, E) T) *Tree[T, E, M, F] {
	return From(m, f, vs, func(v T) T { return v }, apply)
}

// From builds the tree from vs, converting each element with conv.
func From[V, T any, E comparable, M Monoids.Monoid[T], F Monoids.Monoid[E]](m M, f F, vs []V, conv func(V) T, apply func(T, E) T) *Tree[T, E, M, F] {
	u := &Tree[T, E, M, F]{m: m, f: f, id: f.Identity(), apply: apply, n: len(vs), leaves: SegTree.LeavesFor(len(vs))}
	u.vs, u.lazy = make([]T, 2*u.leaves-1), make([]E, 2*u.leaves-1)
	for k := range u.lazy {
		u.lazy[k] = u.id
	}
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

func (u *Tree[T, E, M, F]) Len() int    { return u.n }
func (u *Tree[T, E, M, F]) Leaves() int { return u.leaves }

// eval applies the pending effect of node k to its value and hands it to the children.
func (u *Tree[T, E, M, F]) eval(k int) {
	e := u.lazy[k]
	if e == u.id {
		return
	}
	if k < u.leaves-1 {
		u.lazy[2*k+1] = u.f.Op(u.lazy[2*k+1], e)
		u.lazy[2*k+2] = u.f.Op(u.lazy[2*k+2], e)
	}
	u.vs[k] = u.apply(u.vs[k], e)
	u.lazy[k] = u.id
}

// UpdateRange applies e to every element in [from, to). The range is cut to [0, Len()),
// padding leaves never receive effects.
func (u *Tree[T, E, M, F]) UpdateRange(from, to int, e E) {
	u.update(from, min(to, u.n), e, 0, u.leaves, 0)
}

func (u *Tree[T, E, M, F]) update(from, to int, e E, l, r, k int) {
	u.eval(k)
	if from >= r || to <= l {
		return
	}
	if from <= l && r <= to {
		u.lazy[k] = u.f.Op(u.lazy[k], e)
		u.eval(k)
		return
	}
	mid := (l + r) >> 1
	u.update(from, to, e, l, mid, 2*k+1)
	u.update(from, to, e, mid, r, 2*k+2)
	u.vs[k] = u.m.Op(u.vs[2*k+1], u.vs[2*k+2])
}

// Range folds [from, to). Indices past Leaves() are treated as outside the tree.
func (u *Tree[T, E, M, F]) Range(from, to int) T {
	return u.fold(from, to, 0, u.leaves, 0)
}

func (u *Tree[T, E, M, F]) fold(from, to, l, r, k int) T {
	u.eval(k)
	if from >= r || to <= l {
		return u.m.Identity()
	}
	if from <= l && r <= to {
		return u.vs[k]
	}
	mid := (l + r) >> 1
	return u.m.Op(u.fold(from, to, l, mid, 2*k+1), u.fold(from, to, mid, r, 2*k+2))
}

// All is the fold of every element.
func (u *Tree[T, E, M, F]) All() T {
	u.eval(0)
	return u.vs[0]
}

// Get element i, 0<=i<Len(), with every effect applied.
func (u *Tree[T, E, M, F]) Get(i int) T {
	Go_Segments.CheckIndex(i, u.n)
	return u.fold(i, i+1, 0, u.leaves, 0)
}

// Update element i, 0<=i<Len(), to v. Pending effects above it are pushed down first,
// so v is stored as is.
func (u *Tree[T, E, M, F]) Update(i int, v T) {
	Go_Segments.CheckIndex(i, u.n)
	u.set(i, v, 0, u.leaves, 0)
}

func (u *Tree[T, E, M, F]) set(i int, v T, l, r, k int) {
	u.eval(k)
	if r-l == 1 {
		u.vs[k] = v
		return
	}
	if mid := (l + r) >> 1; i < mid {
		u.set(i, v, l, mid, 2*k+1)
		u.eval(2*k + 2)
	} else {
		u.set(i, v, mid, r, 2*k+2)
		u.eval(2*k + 1)
	}
	u.vs[k] = u.m.Op(u.vs[2*k+1], u.vs[2*k+2])
}
