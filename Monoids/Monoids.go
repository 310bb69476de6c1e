/*
Package Monoids defines the algebra that the range structures aggregate over.

A Monoid is a value, usually a zero-size struct, describing an identity element and an
associative operation on T. Abel extends it with an inverse so that prefix aggregates can
be subtracted. The laws are preconditions: Op(Identity(), x) == Op(x, Identity()) == x,
Op is associative, and for Abel, Op(Inverse(x, y), y) == x. None of it is checked at
runtime; a type violating them produces wrong aggregates.
*/
package Monoids

// Monoid over T. Op needs not be commutative; structures always fold left to right.
type Monoid[T any] interface {
	Identity() T
	Op(x, y T) T
}

// Abel is a Monoid with an inverse operation: Op(Inverse(x, y), y) == x.
type Abel[T any] interface {
	Monoid[T]
	Inverse(x, y T) T
}

// Fold vs from left to right, starting from the identity.
func Fold[T any, M Monoid[T]](m M, vs []T) T {
	acc := m.Identity()
	for _, v := range vs {
		acc = m.Op(acc, v)
	}
	return acc
}

// Pow combines x with itself n times by repeated squaring. Pow(m, x, 0) is the identity.
func Pow[T any, M Monoid[T]](m M, x T, n uint64) T {
	res := m.Identity()
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = m.Op(res, x)
		}
		x = m.Op(x, x)
	}
	return res
}
