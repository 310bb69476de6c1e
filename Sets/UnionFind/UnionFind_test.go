package UnionFind

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Sets"
)

var rg = *rand.New(rand.NewSource(0))

func TestUnionFind_Example(t *testing.T) {
	var uf Sets.Partition[uint] = New[uint](10)
	if !uf.Unite(1, 2) || !uf.Unite(2, 5) {
		t.Error("wrong unite 1")
	}
	if uf.Unite(5, 1) {
		t.Error("wrong unite 2")
	}
	if uf.Find(5) != uf.Find(1) {
		t.Errorf("find(5) is %d, find(1) is %d", uf.Find(5), uf.Find(1))
	}
	if c := uf.Count(5); c != 3 {
		t.Errorf("count(5) is %d, want %d", c, 3)
	}
	if c := uf.Count(0); c != 1 {
		t.Errorf("count(0) is %d, want %d", c, 1)
	}
	if uf.Joint(0, 1) || !uf.Joint(2, 1) {
		t.Error("wrong joint")
	}
}

func TestUnionFind_Group(t *testing.T) {
	uf := New[uint8](5)
	uf.Unite(0, 2)
	uf.Unite(2, 3)
	uf.Unite(1, 4)
	for _, c := range []struct {
		i    uint8
		want []uint8
	}{{0, []uint8{0, 2, 3}}, {3, []uint8{0, 2, 3}}, {4, []uint8{1, 4}}} {
		g := uf.Group(c.i)
		vs := make([]uint8, 0, g.Size())
		for _, v := range g.Values() {
			vs = append(vs, v.(uint8))
		}
		if !slices.Equal(vs, c.want) {
			t.Errorf("group(%d) is %v, want %v", c.i, vs, c.want)
		}
	}
	gs := uf.Groups()
	if len(gs) != 2 || !slices.Equal(gs[0], []uint8{0, 2, 3}) || !slices.Equal(gs[1], []uint8{1, 4}) {
		t.Errorf("groups are %v", gs)
	}
}

// Joint is an equivalence relation and Count agrees with it.
func TestUnionFind_Partition(t *testing.T) {
	const n = 60
	uf := New[uint16](n)
	label := make([]int, n) //naive partition by relabelling.
	for i := range label {
		label[i] = i
	}
	for range 40 {
		a, b := uint16(rg.Intn(n)), uint16(rg.Intn(n))
		joined := label[a] != label[b]
		if uf.Unite(a, b) != joined {
			t.Fatalf("unite(%d, %d) isn't %t", a, b, joined)
		}
		if joined {
			from, to := label[b], label[a]
			for j := range label {
				if label[j] == from {
					label[j] = to
				}
			}
		}
	}
	for i := range uint16(n) {
		c := 0
		for j := range uint16(n) {
			if uf.Joint(i, j) != (label[i] == label[j]) {
				t.Fatalf("joint(%d, %d) is %t", i, j, uf.Joint(i, j))
			}
			if uf.Joint(i, j) != uf.Joint(j, i) {
				t.Fatalf("joint(%d, %d) isn't symmetric", i, j)
			}
			if uf.Joint(i, j) {
				c++
			}
		}
		if !uf.Joint(i, i) {
			t.Fatalf("joint(%d, %d) is false", i, i)
		}
		if int(uf.Count(i)) != c {
			t.Fatalf("count(%d) is %d, want %d", i, uf.Count(i), c)
		}
	}
	total := 0
	for _, g := range uf.Groups() {
		total += len(g)
	}
	if total != n {
		t.Errorf("groups cover %d elements, want %d", total, n)
	}
}

func TestUnionFind_FindIdempotent(t *testing.T) {
	const n = 100
	uf := New[uint32](n)
	for range 80 {
		uf.Unite(uint32(rg.Intn(n)), uint32(rg.Intn(n)))
	}
	for i := range uint32(n) {
		r := uf.Find(i)
		before := slices.Clone(uf.parent)
		if r2 := uf.Find(i); r2 != r {
			t.Fatalf("find(%d) is %d then %d", i, r, r2)
		}
		if !slices.Equal(before, uf.parent) {
			t.Fatalf("second find(%d) changed the forest", i)
		}
		if uf.parent[i] != r {
			t.Fatalf("find(%d) didn't compress", i)
		}
	}
}

func TestUnionFind_Bounds(t *testing.T) {
	uf := New[uint](3)
	defer func() {
		var e *Go_Segments.IndexError
		if r := recover(); r == nil {
			t.Errorf("no panic")
		} else if err, ok := r.(error); !ok || !errors.As(err, &e) || e.Index != 3 {
			t.Errorf("panic is %v, want index 3 out of range", r)
		}
	}()
	uf.Unite(0, 3)
}

func TestUnionFind_Size(t *testing.T) {
	for _, c := range []struct {
		n  int
		ok bool
	}{{255, true}, {256, false}, {300, false}, {-1, false}, {0, true}} {
		func() {
			defer func() {
				r := recover()
				var e *SizeError
				if c.ok && r != nil {
					t.Errorf("New[uint8](%d) panicked with %v", c.n, r)
				} else if err, isErr := r.(error); !c.ok && (!isErr || !errors.As(err, &e) || e.N != c.n || e.Max != 255) {
					t.Errorf("New[uint8](%d) panic is %v, want *SizeError", c.n, r)
				}
			}()
			New[uint8](c.n)
		}()
	}
	//the largest group still counts correctly.
	uf := New[uint8](255)
	for i := range uint8(254) {
		uf.Unite(i, i+1)
	}
	if c := uf.Count(0); c != 255 {
		t.Errorf("count is %d, want %d", c, 255)
	}
	if gs := uf.Groups(); len(gs) != 1 || len(gs[0]) != 255 {
		t.Errorf("groups are %d, want 1 of 255", len(gs))
	}
}

func BenchmarkUnionFind(b *testing.B) {
	const n = 1 << 16
	uf := New[uint32](n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		uf.Unite(uint32(rg.Intn(n)), uint32(rg.Intn(n)))
	}
}
