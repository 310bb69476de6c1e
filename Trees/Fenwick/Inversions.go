package Fenwick

import (
	"cmp"

	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Sets/Compress"
)

// Inversions counts pairs i<j with vs[i]>vs[j] in O(n log n). Equal elements aren't
// inversions.
func Inversions[T cmp.Ordered](vs []T) int {
	tb := Compress.New(vs)
	seen := New[int](Monoids.Sum[int]{}, tb.Len())
	inv := 0
	for i, v := range vs {
		r, _ := tb.Rank(v)
		inv += i - seen.Sum(r+1) //seen.Sum(r+1) earlier elements are <= v.
		seen.Add(r, 1)
	}
	return inv
}
