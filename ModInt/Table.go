package ModInt

import (
	Go_Segments "github.com/g-m-twostay/go-segments"
)

// Table of factorials and inverse factorials up to some n, for O(1) binomials.
type Table struct {
	fac, finv []Int
}

// NewTable for 0..n modulo mod. n! must be invertible modulo mod, which holds when mod is
// a prime greater than n.
func NewTable(n int, mod uint64) *Table {
	t := &Table{make([]Int, n+1), make([]Int, n+1)}
	t.fac[0] = NewUint(1, mod)
	for i := 1; i <= n; i++ {
		t.fac[i] = t.fac[i-1].Mul(NewUint(uint64(i), mod))
	}
	t.finv[n] = t.fac[n].Inv()
	for i := n; i > 0; i-- {
		t.finv[i-1] = t.finv[i].Mul(NewUint(uint64(i), mod))
	}
	return t
}

func (u *Table) Len() int { return len(u.fac) }

// Fact is n!.
func (u *Table) Fact(n int) Int {
	Go_Segments.CheckIndex(n, len(u.fac))
	return u.fac[n]
}

// Binom is n choose r; 0 when r<0 or r>n.
func (u *Table) Binom(n, r int) Int {
	Go_Segments.CheckIndex(n, len(u.fac))
	if r < 0 || r > n {
		return Int{0, u.fac[0].m}
	}
	return u.fac[n].Mul(u.finv[r]).Mul(u.finv[n-r])
}

// Perm is n!/(n-r)!; 0 when r<0 or r>n.
func (u *Table) Perm(n, r int) Int {
	Go_Segments.CheckIndex(n, len(u.fac))
	if r < 0 || r > n {
		return Int{0, u.fac[0].m}
	}
	return u.fac[n].Mul(u.finv[n-r])
}

// BinomBig is n choose r without a table, in O(r). Useful when n is huge and r small.
// r! must be invertible modulo mod.
func BinomBig(n, r, mod uint64) Int {
	if r > n {
		return NewUint(0, mod)
	}
	num, den := NewUint(1, mod), NewUint(1, mod)
	for i := uint64(0); i < r; i++ {
		num = num.Mul(NewUint(n-i, mod))
		den = den.Mul(NewUint(i+1, mod))
	}
	return num.Div(den)
}
