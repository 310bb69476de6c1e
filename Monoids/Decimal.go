package Monoids

import "github.com/shopspring/decimal"

// DecimalSum is exact decimal addition.
type DecimalSum struct{}

func (DecimalSum) Identity() decimal.Decimal { return decimal.Zero }
func (DecimalSum) Op(x, y decimal.Decimal) decimal.Decimal {
	return x.Add(y)
}
func (DecimalSum) Inverse(x, y decimal.Decimal) decimal.Decimal {
	return x.Sub(y)
}

// DecimalProduct is exact decimal multiplication.
type DecimalProduct struct{}

func (DecimalProduct) Identity() decimal.Decimal { return decimal.NewFromInt(1) }
func (DecimalProduct) Op(x, y decimal.Decimal) decimal.Decimal {
	return x.Mul(y)
}
