/*
Package UnionFind implements a disjoint set forest with path compression and union by size.

S is the index type: picking a narrower S halves or quarters the memory of the two
backing arrays when n is known to be small.
*/
package UnionFind

import (
	"cmp"
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Sets"
	"golang.org/x/exp/constraints"
)

var _ Sets.Partition[uint] = (*UnionFind[uint])(nil)

type UnionFind[S constraints.Unsigned] struct {
	parent []S
	size   []S //only valid at roots.
}

// SizeError is the panic value of New when n elements don't fit the index type, whose
// largest value is Max. Group sizes are S as well, so n must not exceed Max.
type SizeError struct {
	N   int
	Max uint64
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("%d elements exceed the index type, at most %d", e.N, e.Max)
}

// New UnionFind of n singleton groups. Panics with a *SizeError if n<0 or n>^S(0).
func New[S constraints.Unsigned](n int) *UnionFind[S] {
	if top := uint64(^S(0)); n < 0 || uint64(n) > top {
		panic(&SizeError{n, top})
	}
	u := &UnionFind[S]{make([]S, n), make([]S, n)}
	for i := range u.parent {
		u.parent[i], u.size[i] = S(i), 1
	}
	return u
}

func (u *UnionFind[S]) Len() int {
	return len(u.parent)
}

// Find the root of i and point every node on the way directly to it.
func (u *UnionFind[S]) Find(i S) S {
	Go_Segments.CheckIndex(int(i), len(u.parent))
	r := i
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[i] != r {
		i, u.parent[i] = u.parent[i], r
	}
	return r
}

func (u *UnionFind[S]) Unite(a, b S) bool {
	a, b = u.Find(a), u.Find(b)
	if a == b {
		return false
	}
	if u.size[a] < u.size[b] {
		a, b = b, a
	}
	u.parent[b] = a
	u.size[a] += u.size[b]
	return true
}

func (u *UnionFind[S]) Count(i S) S {
	return u.size[u.Find(i)]
}

func (u *UnionFind[S]) Joint(a, b S) bool {
	return u.Find(a) == u.Find(b)
}

// Group of i as an ordered set of S. This scans every element.
func (u *UnionFind[S]) Group(i S) *treeset.Set {
	r := u.Find(i)
	g := treeset.NewWith(func(a, b any) int { return cmp.Compare(a.(S), b.(S)) })
	for j := range u.parent {
		if u.Find(S(j)) == r {
			g.Add(S(j))
		}
	}
	return g
}

// Groups lists every group once, each in ascending order, ordered by their smallest element.
func (u *UnionFind[S]) Groups() [][]S {
	seen := Go_Segments.NewBitArray(len(u.parent))
	at := make([]int, len(u.parent)) //at[r] is the position of root r's group.
	var gs [][]S
	for j := range u.parent {
		r := u.Find(S(j))
		if !seen.Get(int(r)) {
			seen.Up(int(r))
			at[r] = len(gs)
			gs = append(gs, make([]S, 0, u.size[r]))
		}
		gs[at[r]] = append(gs[at[r]], S(j))
	}
	return gs
}
