package Monoids

import (
	"math"

	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// MaxOf returns the largest value of T, +Inf for floats.
func MaxOf[T Number]() T {
	if half := T(1) / 2; half != 0 {
		return T(math.Inf(1))
	}
	m := T(1)
	for n := m * 2; n > m; n = m * 2 { //stops at the highest bit, wrap around makes n<=m.
		m = n
	}
	return m + (m - 1)
}

// MinOf returns the smallest value of T, -Inf for floats.
func MinOf[T Number]() T {
	if half := T(1) / 2; half != 0 {
		return T(math.Inf(-1))
	}
	if z := T(0); z-1 > z {
		return 0
	}
	return -MaxOf[T]() - 1
}

// Sum is addition; an Abel with subtraction as inverse.
type Sum[T Number | constraints.Complex] struct{}

func (Sum[T]) Identity() T      { return 0 }
func (Sum[T]) Op(x, y T) T      { return x + y }
func (Sum[T]) Inverse(x, y T) T { return x - y }

type Product[T Number | constraints.Complex] struct{}

func (Product[T]) Identity() T { return 1 }
func (Product[T]) Op(x, y T) T { return x * y }

// Max takes the maximum. Identity is MinOf[T]().
type Max[T Number] struct{}

func (Max[T]) Identity() T { return MinOf[T]() }
func (Max[T]) Op(x, y T) T { return max(x, y) }

// Min takes the minimum. Identity is MaxOf[T]().
type Min[T Number] struct{}

func (Min[T]) Identity() T { return MaxOf[T]() }
func (Min[T]) Op(x, y T) T { return min(x, y) }

// Xor is an Abel; every element is its own inverse.
type Xor[T constraints.Integer] struct{}

func (Xor[T]) Identity() T      { return 0 }
func (Xor[T]) Op(x, y T) T      { return x ^ y }
func (Xor[T]) Inverse(x, y T) T { return x ^ y }

type And[T constraints.Integer] struct{}

func (And[T]) Identity() T { return ^T(0) }
func (And[T]) Op(x, y T) T { return x & y }

type Or[T constraints.Integer] struct{}

func (Or[T]) Identity() T { return 0 }
func (Or[T]) Op(x, y T) T { return x | y }

// Gcd of the absolute values. gcd(0, x) = |x|, so 0 is the identity.
type Gcd[T constraints.Integer] struct{}

func (Gcd[T]) Identity() T { return 0 }
func (Gcd[T]) Op(x, y T) T { return gcd(x, y) }

// Lcm of the absolute values, 1 is the identity. Overflow is the caller's concern.
type Lcm[T constraints.Integer] struct{}

func (Lcm[T]) Identity() T { return 1 }
func (Lcm[T]) Op(x, y T) T {
	if x == 0 || y == 0 {
		return 0
	}
	x, y = abs(x), abs(y)
	return x / gcd(x, y) * y
}

func abs[T constraints.Integer](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

func gcd[T constraints.Integer](x, y T) T {
	x, y = abs(x), abs(y)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

type BoolAnd struct{}

func (BoolAnd) Identity() bool    { return true }
func (BoolAnd) Op(x, y bool) bool { return x && y }

type BoolOr struct{}

func (BoolOr) Identity() bool    { return false }
func (BoolOr) Op(x, y bool) bool { return x || y }

// BoolXor is an Abel over bool.
type BoolXor struct{}

func (BoolXor) Identity() bool         { return false }
func (BoolXor) Op(x, y bool) bool      { return x != y }
func (BoolXor) Inverse(x, y bool) bool { return x != y }
