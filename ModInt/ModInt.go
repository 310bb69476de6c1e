/*
Package ModInt implements integers modulo a runtime modulus. Every Int carries its modulus
so several moduli can coexist; combining two Ints with different moduli panics with a
*Go_Segments.ModulusError.
*/
package ModInt

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"

	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
)

// Int is v mod m with 0<=v<m. The zero value is invalid; use New.
type Int struct {
	v, m uint64
}

// ErrZeroModulus is the panic value of New and NewUint when the modulus is 0.
var ErrZeroModulus = errors.New("zero modulus")

// InverseError is the panic value of Inv when v and the modulus aren't coprime.
type InverseError struct {
	V, Mod uint64
}

func (e *InverseError) Error() string {
	return fmt.Sprintf("%d has no inverse modulo %d", e.V, e.Mod)
}

// New reduces v modulo m. Panics if m is 0.
func New(v int64, m uint64) Int {
	if m == 0 {
		panic(ErrZeroModulus)
	}
	if v < 0 {
		r := uint64(-(v + 1)) % m //-(v+1) can't overflow.
		return Int{m - 1 - r, m}
	}
	return Int{uint64(v) % m, m}
}

// NewUint reduces v modulo m. Panics if m is 0.
func NewUint(v, m uint64) Int {
	if m == 0 {
		panic(ErrZeroModulus)
	}
	return Int{v % m, m}
}

func (u Int) Val() uint64 { return u.v }
func (u Int) Mod() uint64 { return u.m }

func (u Int) String() string {
	return strconv.FormatUint(u.v, 10)
}

func (u Int) check(o Int) {
	if u.m != o.m {
		panic(&Go_Segments.ModulusError{Want: u.m, Got: o.m})
	}
}

func (u Int) Add(o Int) Int {
	u.check(o)
	s, c := bits.Add64(u.v, o.v, 0)
	if c != 0 || s >= u.m {
		s -= u.m
	}
	return Int{s, u.m}
}

func (u Int) Sub(o Int) Int {
	u.check(o)
	if u.v >= o.v {
		return Int{u.v - o.v, u.m}
	}
	return Int{u.v + (u.m - o.v), u.m}
}

func (u Int) Neg() Int {
	if u.v == 0 {
		return u
	}
	return Int{u.m - u.v, u.m}
}

func (u Int) Mul(o Int) Int {
	u.check(o)
	return Int{mulMod(u.v, o.v, u.m), u.m}
}

func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	return bits.Rem64(hi, lo, m)
}

// Pow raises u to n by repeated squaring.
func (u Int) Pow(n uint64) Int {
	return Monoids.Pow[Int](Product{u.m}, u, n)
}

// Inv is the multiplicative inverse by the extended Euclidean algorithm. It panics with
// an *InverseError if u isn't invertible.
func (u Int) Inv() Int {
	r0, r1 := u.m, u.v
	t0, t1 := uint64(0), uint64(1)%u.m //Bézout coefficients of v, kept modulo m.
	for r1 != 0 {
		q := r0 / r1
		r0, r1 = r1, r0-q*r1
		t0, t1 = t1, Int{t0, u.m}.Sub(Int{mulMod(q%u.m, t1, u.m), u.m}).v
	}
	if r0 != 1 {
		panic(&InverseError{u.v, u.m})
	}
	return Int{t0, u.m}
}

func (u Int) Div(o Int) Int {
	u.check(o)
	return u.Mul(o.Inv())
}

// Sum is addition modulo Mod, an Abel.
type Sum struct {
	Mod uint64
}

func (s Sum) Identity() Int      { return Int{0, s.Mod} }
func (Sum) Op(x, y Int) Int      { return x.Add(y) }
func (Sum) Inverse(x, y Int) Int { return x.Sub(y) }

// Product is multiplication modulo Mod.
type Product struct {
	Mod uint64
}

func (p Product) Identity() Int { return Int{1 % p.Mod, p.Mod} }
func (Product) Op(x, y Int) Int { return x.Mul(y) }
