package script

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	Go_Segments "github.com/g-m-twostay/go-segments"
	"github.com/g-m-twostay/go-segments/Monoids"
	"github.com/g-m-twostay/go-segments/Sets/UnionFind"
	"github.com/g-m-twostay/go-segments/Trees/Fenwick"
	"go.uber.org/zap"
)

type (
	fenwick   = Fenwick.Tree[int64, Monoids.Sum[int64]]
	unionFind = UnionFind.UnionFind[uint32]
)

func (u *Runner) exec(cmd string, args []string) ([]string, error) {
	switch cmd {
	case "seg", "lazy":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: missing aggregate", ErrArgs)
		}
		vs, err := ints(args[1:], -1)
		if err != nil {
			return nil, err
		}
		if cmd == "lazy" {
			build, ok := lazyOps[args[0]]
			if !ok {
				return nil, fmt.Errorf("%w: lazy %s", ErrUnknown, args[0])
			}
			u.reset()
			u.lazy = build(vs)
			u.tb = u.lazy
			u.built(cmd + " " + args[0])
			return nil, nil
		}
		build, ok := segOps[args[0]]
		if !ok {
			return nil, fmt.Errorf("%w: seg %s", ErrUnknown, args[0])
		}
		if strings.HasPrefix(args[0], "mod") && u.mod == 0 {
			return nil, ErrModulus
		}
		u.reset()
		u.tb = build(vs, u.mod)
		u.built(cmd + " " + args[0])
		return nil, nil
	case "fenwick":
		vs, err := ints(args, -1)
		if err != nil {
			return nil, err
		}
		u.reset()
		u.fw = Fenwick.From[int64](Monoids.Sum[int64]{}, vs)
		u.tb = &ranged[int64]{u.fw, same, formatInt}
		u.built(cmd)
		return nil, nil
	case "uf":
		vs, err := ints(args, 1)
		if err != nil {
			return nil, err
		}
		if vs[0] < 0 || vs[0] > math.MaxUint32 {
			return nil, fmt.Errorf("bad size %d", vs[0])
		}
		u.reset()
		u.uf = UnionFind.New[uint32](int(vs[0]))
		return nil, nil
	case "inversions":
		vs, err := ints(args, -1)
		if err != nil {
			return nil, err
		}
		return []string{strconv.Itoa(Fenwick.Inversions(vs))}, nil
	case "update", "get", "range", "apply":
		return u.execTable(cmd, args)
	case "add", "sum", "psum":
		return u.execFenwick(cmd, args)
	case "unite", "find", "joint", "count", "group", "groups":
		return u.execUnionFind(cmd, args)
	}
	return nil, ErrUnknown
}

func (u *Runner) built(kind string) {
	u.log.Debug("built", zap.String("kind", kind), zap.Int("len", u.tb.size()))
}

func (u *Runner) reset() {
	u.tb, u.lazy, u.fw, u.uf = nil, nil, nil, nil
}

func (u *Runner) execTable(cmd string, args []string) ([]string, error) {
	if u.tb == nil || cmd == "apply" && u.lazy == nil {
		return nil, ErrNoStructure
	}
	switch cmd {
	case "update":
		vs, err := ints(args, 2)
		if err != nil {
			return nil, err
		}
		u.tb.update(int(vs[0]), vs[1])
		return nil, nil
	case "get":
		vs, err := ints(args, 1)
		if err != nil {
			return nil, err
		}
		return []string{u.tb.get(int(vs[0]))}, nil
	case "range":
		vs, err := ints(args, 2)
		if err != nil {
			return nil, err
		}
		return []string{u.tb.query(int(vs[0]), int(vs[1]))}, nil
	}
	vs, err := ints(args, 3)
	if err != nil {
		return nil, err
	}
	u.lazy.apply(int(vs[0]), int(vs[1]), vs[2])
	return nil, nil
}

func (u *Runner) execFenwick(cmd string, args []string) ([]string, error) {
	if u.fw == nil {
		return nil, ErrNoStructure
	}
	switch cmd {
	case "add":
		vs, err := ints(args, 2)
		if err != nil {
			return nil, err
		}
		u.fw.Add(int(vs[0]), vs[1])
		return nil, nil
	case "sum":
		vs, err := ints(args, 1)
		if err != nil {
			return nil, err
		}
		return []string{formatInt(u.fw.Sum(int(vs[0])))}, nil
	}
	vs, err := ints(args, 2)
	if err != nil {
		return nil, err
	}
	return []string{formatInt(u.fw.PartialSum(int(vs[0]), int(vs[1])))}, nil
}

func (u *Runner) execUnionFind(cmd string, args []string) ([]string, error) {
	if u.uf == nil {
		return nil, ErrNoStructure
	}
	if cmd == "groups" {
		if len(args) != 0 {
			return nil, fmt.Errorf("%w: want 0, got %d", ErrArgs, len(args))
		}
		gs := u.uf.Groups()
		out := make([]string, len(gs))
		for i, g := range gs {
			out[i] = join(g)
		}
		return out, nil
	}
	want := 1
	if cmd == "unite" || cmd == "joint" {
		want = 2
	}
	vs, err := ints(args, want)
	if err != nil {
		return nil, err
	}
	is := make([]uint32, len(vs))
	for j, v := range vs {
		if v < 0 || v >= int64(u.uf.Len()) {
			return nil, &Go_Segments.IndexError{Index: int(v), Len: u.uf.Len()}
		}
		is[j] = uint32(v)
	}
	switch cmd {
	case "unite":
		return []string{strconv.FormatBool(u.uf.Unite(is[0], is[1]))}, nil
	case "joint":
		return []string{strconv.FormatBool(u.uf.Joint(is[0], is[1]))}, nil
	case "find":
		return []string{strconv.FormatUint(uint64(u.uf.Find(is[0])), 10)}, nil
	case "count":
		return []string{strconv.FormatUint(uint64(u.uf.Count(is[0])), 10)}, nil
	}
	g := u.uf.Group(is[0])
	out := make([]uint32, 0, g.Size())
	for _, v := range g.Values() {
		out = append(out, v.(uint32))
	}
	return []string{join(out)}, nil
}

// ints parses args, of which there must be n unless n is negative.
func ints(args []string, n int) ([]int64, error) {
	if n >= 0 && len(args) != n {
		return nil, fmt.Errorf("%w: want %d, got %d", ErrArgs, n, len(args))
	}
	vs := make([]int64, len(args))
	for i, s := range args {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func join(vs []uint32) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	return sb.String()
}
