package cube

import (
	"sort"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind tags what a Cover represents in the two-level minimization
// pipeline: the on-set, off-set, or don't-care set of a function.
type Kind int

const (
	OnSet Kind = iota
	OffSet
	DontCareSet
)

// Cover is an ordered sequence of cubes, read as their logical union (a
// sum of products). Order is preserved and meaningful for diagnostics and
// deterministic output, even though the boolean function it denotes is
// order-independent.
//
// dedup indexes Cubes by hash key, insertion order preserved, so repeated
// Add calls during cover construction stay near O(1) instead of scanning
// the growing slice on every insert. It is built lazily the first time
// Add is called on a Cover value that does not already carry one (e.g.
// one just produced by Absorb or SortLex, or a Cover literal). A Cover
// built through Add (NewCover followed by Add, or Union) carries its
// index, and a by-value copy of such a Cover shares that index with the
// original.
type Cover struct {
	N     int
	Kind  Kind
	Cubes []Cube

	dedup *orderedmap.OrderedMap[uint64, []int]
}

// NewCover returns an empty cover of width n.
func NewCover(n int, kind Kind) Cover {
	return Cover{N: n, Kind: kind}
}

// Add appends c, deduplicating against any cube already present with an
// identical pattern and output.
func (cv *Cover) Add(c Cube) {
	if cv.dedup == nil {
		cv.dedup = orderedmap.New[uint64, []int]()
		for i, existing := range cv.Cubes {
			h := existing.HashKey()
			v, _ := cv.dedup.Get(h)
			cv.dedup.Set(h, append(v, i))
		}
	}
	h := c.HashKey()
	if candidates, ok := cv.dedup.Get(h); ok {
		for _, i := range candidates {
			if cv.Cubes[i].Equal(c) {
				return
			}
		}
	}
	idx := len(cv.Cubes)
	cv.Cubes = append(cv.Cubes, c)
	v, _ := cv.dedup.Get(h)
	cv.dedup.Set(h, append(v, idx))
}

// Union returns the cover containing every cube of a and b, deduplicated.
func Union(a, b Cover) Cover {
	out := NewCover(a.N, a.Kind)
	for _, c := range a.Cubes {
		out.Add(c)
	}
	for _, c := range b.Cubes {
		out.Add(c)
	}
	return out
}

// Absorb removes any cube that is contained by another cube in the cover
// with the same output (single-cube containment, the cheap half of
// minimality): if cube j contains cube i, i != j and both carry the same
// Out, i is redundant and dropped. The surviving
// cubes keep their relative order.
func Absorb(c Cover) Cover {
	keep := make([]bool, len(c.Cubes))
	for i := range c.Cubes {
		keep[i] = true
	}
	for i := range c.Cubes {
		if !keep[i] {
			continue
		}
		for j := range c.Cubes {
			if i == j || !keep[j] {
				continue
			}
			if c.Cubes[i].Out != c.Cubes[j].Out {
				continue
			}
			if Contains(c.Cubes[j], c.Cubes[i]) && !Contains(c.Cubes[i], c.Cubes[j]) {
				keep[i] = false
				break
			}
			// Identical patterns: keep the lower index, drop the higher.
			if Contains(c.Cubes[j], c.Cubes[i]) && Contains(c.Cubes[i], c.Cubes[j]) && j < i {
				keep[i] = false
				break
			}
		}
	}
	out := NewCover(c.N, c.Kind)
	for i, k := range keep {
		if k {
			out.Cubes = append(out.Cubes, c.Cubes[i])
		}
	}
	return out
}

// Subtract returns the pieces of c not matched by any cube of cov,
// computed by repeatedly sharping c against each cube of cov in turn. The
// shared primitive behind IsTautology, Uncovered, and essential-prime
// detection in internal/espresso.
func Subtract(c Cube, cov Cover) []Cube {
	remaining := []Cube{c}
	for _, cube := range cov.Cubes {
		var next []Cube
		for _, r := range remaining {
			next = append(next, Sharp(r, cube)...)
		}
		remaining = next
		if len(remaining) == 0 {
			return nil
		}
	}
	return remaining
}

// IsTautology reports whether c's cubes union to the full universe: every
// possible input tuple is matched by at least one cube.
func IsTautology(c Cover) bool {
	return len(Subtract(NewUniverse(c.N), c)) == 0
}

// Uncovered returns the cubes of the universal cube not matched by any
// cube in c: the exact complement of c's input set, used to detect
// incomplete decision tables (missing-case reporting).
func Uncovered(c Cover) []Cube {
	return Subtract(NewUniverse(c.N), c)
}

// SortLex sorts c's cubes lexicographically, coordinate 0 first, under the
// ordering 0 < 1 < ★. Used to give deterministic, diffable output and
// stable test assertions regardless of the order cubes were produced in.
func SortLex(c Cover) Cover {
	out := Cover{N: c.N, Kind: c.Kind, Cubes: append([]Cube(nil), c.Cubes...)}
	sort.SliceStable(out.Cubes, func(i, j int) bool {
		a, b := out.Cubes[i], out.Cubes[j]
		for k := 0; k < a.N; k++ {
			av, bv := int(a.Get(k)), int(b.Get(k))
			if av != bv {
				return lexRank(a.Get(k)) < lexRank(b.Get(k))
			}
		}
		return false
	})
	return out
}

func lexRank(v Value) int {
	switch v {
	case Zero:
		return 0
	case One:
		return 1
	default:
		return 2
	}
}
