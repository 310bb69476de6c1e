package script

import (
	"strconv"

	"github.com/g-m-twostay/go-segments/ModInt"
	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Trees"
	"github.com/g-m-twostay/go-segments/Trees/LazyTree"
	"github.com/g-m-twostay/go-segments/Trees/SegTree"
)

// table is a Trees.Ranger seen through int64 inputs and printed outputs, so the runner
// doesn't care which element type or aggregate sits behind it.
type table interface {
	query(from, to int) string
	get(i int) string
	update(i int, v int64)
	size() int
}

type ranged[T any] struct {
	r   Trees.Ranger[T]
	in  func(int64) T
	out func(T) string
}

func (u *ranged[T]) query(from, to int) string { return u.out(u.r.Range(from, to)) }
func (u *ranged[T]) get(i int) string          { return u.out(u.r.Get(i)) }
func (u *ranged[T]) update(i int, v int64)     { u.r.Update(i, u.in(v)) }
func (u *ranged[T]) size() int                 { return u.r.Len() }

func same(v int64) int64       { return v }
func formatInt(v int64) string { return strconv.FormatInt(v, 10) }
func sized(v int64) Monoids.Sized[int64] {
	return Monoids.Sized[int64]{Sum: v, Len: 1}
}
func formatSized(v Monoids.Sized[int64]) string { return formatInt(v.Sum) }

func newSeg[T any, M Monoids.Monoid[T]](m M, vs []int64, in func(int64) T, out func(T) string) table {
	return &ranged[T]{SegTree.From(m, vs, in), in, out}
}

// segOps builds a segment tree for each aggregate name. mod is only read by the modular ones.
var segOps = map[string]func(vs []int64, mod uint64) table{
	"sum": func(vs []int64, _ uint64) table { return newSeg(Monoids.Sum[int64]{}, vs, same, formatInt) },
	"max": func(vs []int64, _ uint64) table { return newSeg(Monoids.Max[int64]{}, vs, same, formatInt) },
	"min": func(vs []int64, _ uint64) table { return newSeg(Monoids.Min[int64]{}, vs, same, formatInt) },
	"xor": func(vs []int64, _ uint64) table { return newSeg(Monoids.Xor[int64]{}, vs, same, formatInt) },
	"gcd": func(vs []int64, _ uint64) table { return newSeg(Monoids.Gcd[int64]{}, vs, same, formatInt) },
	"lcm": func(vs []int64, _ uint64) table { return newSeg(Monoids.Lcm[int64]{}, vs, same, formatInt) },
	"modsum": func(vs []int64, mod uint64) table {
		return newSeg(ModInt.Sum{Mod: mod}, vs, func(v int64) ModInt.Int { return ModInt.New(v, mod) }, ModInt.Int.String)
	},
	"modprod": func(vs []int64, mod uint64) table {
		return newSeg(ModInt.Product{Mod: mod}, vs, func(v int64) ModInt.Int { return ModInt.New(v, mod) }, ModInt.Int.String)
	},
}

// lazyTable is a table that also takes range effects.
type lazyTable struct {
	table
	apply func(from, to int, v int64)
}

func newLazy[T any, E comparable, M Monoids.Monoid[T], F Monoids.Monoid[E]](m M, f F, vs []int64, in func(int64) T, out func(T) string,
	effect func(int64) E, apply func(T, E) T) *lazyTable {
	t := LazyTree.From(m, f, vs, in, apply)
	return &lazyTable{&ranged[T]{t, in, out}, func(from, to int, v int64) { t.UpdateRange(from, to, effect(v)) }}
}

var lazyOps = map[string]func(vs []int64) *lazyTable{
	"add-sum": func(vs []int64) *lazyTable {
		return newLazy(Monoids.SizedSum[int64]{}, Monoids.Sum[int64]{}, vs, sized, formatSized, same, LazyTree.AddSized[int64])
	},
	"add-max": func(vs []int64) *lazyTable {
		return newLazy(Monoids.Max[int64]{}, Monoids.Sum[int64]{}, vs, same, formatInt, same, LazyTree.AddExtremum[int64])
	},
	"add-min": func(vs []int64) *lazyTable {
		return newLazy(Monoids.Min[int64]{}, Monoids.Sum[int64]{}, vs, same, formatInt, same, LazyTree.AddExtremum[int64])
	},
	"set-sum": func(vs []int64) *lazyTable {
		return newLazy(Monoids.SizedSum[int64]{}, LazyTree.Assigns[int64]{}, vs, sized, formatSized, LazyTree.Set[int64], LazyTree.AssignSized[int64])
	},
	"set-max": func(vs []int64) *lazyTable {
		return newLazy(Monoids.Max[int64]{}, LazyTree.Assigns[int64]{}, vs, same, formatInt, LazyTree.Set[int64], LazyTree.AssignExtremum[int64])
	},
	"set-min": func(vs []int64) *lazyTable {
		return newLazy(Monoids.Min[int64]{}, LazyTree.Assigns[int64]{}, vs, same, formatInt, LazyTree.Set[int64], LazyTree.AssignExtremum[int64])
	},
}
