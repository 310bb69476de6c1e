/*
Package Compress maps the distinct values of a sequence onto the dense ranks 0..Len()-1,
preserving order, so value-indexed structures such as a Fenwick tree stay small.
*/
package Compress

import (
	"cmp"

	"github.com/emirpasic/gods/maps/treemap"
	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/google/btree"
)

type entry[T cmp.Ordered] struct {
	v T
	r int
}

// Table of distinct values and their ranks.
type Table[T cmp.Ordered] struct {
	t  *btree.BTreeG[*entry[T]]
	vs []T //vs[r] is the value of rank r.
}

// New Table of the distinct values in vs.
func New[T cmp.Ordered](vs []T) *Table[T] {
	u := &Table[T]{t: btree.NewG[*entry[T]](8, func(a, b *entry[T]) bool { return cmp.Less(a.v, b.v) })}
	for _, v := range vs {
		u.t.ReplaceOrInsert(&entry[T]{v: v})
	}
	u.vs = make([]T, 0, u.t.Len())
	u.t.Ascend(func(e *entry[T]) bool {
		e.r = len(u.vs)
		u.vs = append(u.vs, e.v)
		return true
	})
	return u
}

// Len is the number of distinct values.
func (u *Table[T]) Len() int { return len(u.vs) }

// Rank of v; false if v isn't in the table.
func (u *Table[T]) Rank(v T) (int, bool) {
	e, ok := u.t.Get(&entry[T]{v: v})
	if !ok {
		return 0, false
	}
	return e.r, true
}

// Value of rank r, 0<=r<Len().
func (u *Table[T]) Value(r int) T {
	Go_Segments.CheckIndex(r, len(u.vs))
	return u.vs[r]
}

// LowerBound is the number of distinct values less than v, which is also the rank of the
// smallest value >= v.
func (u *Table[T]) LowerBound(v T) (r int) {
	r = len(u.vs)
	u.t.AscendGreaterOrEqual(&entry[T]{v: v}, func(e *entry[T]) bool {
		r = e.r
		return false
	})
	return
}

// Count maps each distinct value of vs to its number of occurrences, keys in ascending order.
func Count[T cmp.Ordered](vs []T) *treemap.Map {
	m := treemap.NewWith(func(a, b any) int { return cmp.Compare(a.(T), b.(T)) })
	for _, v := range vs {
		c, _ := m.Get(v)
		n, _ := c.(int)
		m.Put(v, n+1)
	}
	return m
}
