package ModInt

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
)

const p = 1_000_000_007

var rg = *rand.New(rand.NewSource(0))

func bigMod(x *big.Int, m uint64) uint64 {
	return new(big.Int).Mod(x, new(big.Int).SetUint64(m)).Uint64()
}

func TestArith(t *testing.T) {
	for _, m := range []uint64{p, 998244353, 1<<63 + 25, 6} {
		for range 1000 {
			a, b := NewUint(rg.Uint64(), m), NewUint(rg.Uint64(), m)
			ba, bb := new(big.Int).SetUint64(a.Val()), new(big.Int).SetUint64(b.Val())
			require.Equal(t, bigMod(new(big.Int).Add(ba, bb), m), a.Add(b).Val())
			require.Equal(t, bigMod(new(big.Int).Sub(ba, bb), m), a.Sub(b).Val())
			require.Equal(t, bigMod(new(big.Int).Mul(ba, bb), m), a.Mul(b).Val())
			require.Equal(t, a.Val(), a.Add(b).Sub(b).Val())
			require.Equal(t, uint64(0), a.Add(a.Neg()).Val())
		}
	}
}

func TestNew(t *testing.T) {
	require.Equal(t, uint64(p-1), New(-1, p).Val())
	require.Equal(t, uint64(0), New(-p, p).Val())
	require.Equal(t, uint64(3), New(-7, 5).Val())
	require.Equal(t, uint64(2), New(7, 5).Val())
	require.Equal(t, "2", New(7, 5).String())
	require.PanicsWithError(t, "zero modulus", func() { New(1, 0) })
	require.PanicsWithError(t, "zero modulus", func() { NewUint(1, 0) })
}

func TestInvDiv(t *testing.T) {
	for range 1000 {
		a, b := NewUint(rg.Uint64(), p), NewUint(rg.Uint64()%(p-1)+1, p)
		require.Equal(t, a.Val(), a.Div(b).Mul(b).Val())
		require.Equal(t, uint64(1), b.Mul(b.Inv()).Val())
	}
	require.Equal(t, uint64(7), New(3, 10).Inv().Val())
	require.Equal(t, uint64(0), New(5, 1).Inv().Val())
	var ie *InverseError
	require.PanicsWithError(t, (&InverseError{4, 10}).Error(), func() { New(4, 10).Inv() })
	func() {
		defer func() {
			err, _ := recover().(error)
			require.ErrorAs(t, err, &ie)
			require.Equal(t, uint64(0), ie.V)
		}()
		New(0, p).Inv()
	}()
}

func TestPow(t *testing.T) {
	require.Equal(t, uint64(1), New(2, p).Pow(p-1).Val())
	require.Equal(t, uint64(1024), New(2, p).Pow(10).Val())
	require.Equal(t, uint64(1), New(0, p).Pow(0).Val())
	require.Equal(t, uint64(0), New(3, 1).Pow(0).Val())
}

func TestMismatch(t *testing.T) {
	var me *Go_Segments.ModulusError
	defer func() {
		err, _ := recover().(error)
		require.ErrorAs(t, err, &me)
		require.Equal(t, uint64(7), me.Want)
		require.Equal(t, uint64(11), me.Got)
	}()
	New(1, 7).Add(New(1, 11))
	t.Fatal("mixing moduli didn't panic")
}

func TestMonoids(t *testing.T) {
	vs := []Int{New(p-1, p), New(5, p), New(3, p)}
	require.Equal(t, uint64(7), Monoids.Fold(Sum{p}, vs).Val())
	require.Equal(t, uint64(p-15), Monoids.Fold(Product{p}, vs).Val())
	s := Sum{p}
	require.Equal(t, vs[0].Val(), s.Op(s.Inverse(vs[0], vs[1]), vs[1]).Val())
	require.Equal(t, uint64(0), Product{1}.Identity().Val())
	require.Panics(t, func() { Monoids.Fold(Sum{7}, vs) })
}

func TestTable(t *testing.T) {
	tb := NewTable(1000, p)
	require.Equal(t, 1001, tb.Len())
	require.Equal(t, uint64(3628800), tb.Fact(10).Val())
	require.Equal(t, uint64(10), tb.Binom(5, 2).Val())
	require.Equal(t, uint64(1), tb.Binom(7, 0).Val())
	require.Equal(t, uint64(0), tb.Binom(3, 4).Val())
	require.Equal(t, uint64(0), tb.Binom(3, -1).Val())
	require.Equal(t, uint64(60), tb.Perm(5, 3).Val())
	for n := 1; n <= 1000; n += 37 {
		for r := 1; r < n; r += 11 {
			require.Equal(t, tb.Binom(n-1, r-1).Add(tb.Binom(n-1, r)).Val(), tb.Binom(n, r).Val())
			require.Equal(t, bigMod(new(big.Int).Binomial(int64(n), int64(r)), p), tb.Binom(n, r).Val())
		}
	}
	require.Panics(t, func() { tb.Binom(1001, 1) })
}

func TestBinomBig(t *testing.T) {
	require.Equal(t, uint64(10), BinomBig(5, 2, p).Val())
	require.Equal(t, uint64(0), BinomBig(2, 5, p).Val())
	n := uint64(1_000_000_000_000)
	require.Equal(t, bigMod(new(big.Int).Binomial(int64(n), 4), p), BinomBig(n, 4, p).Val())
}
