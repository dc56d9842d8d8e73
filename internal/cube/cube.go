// Package cube implements a ternary cube / cover algebra: a cube is a
// vector over {0, 1, ★} plus an output pattern, and a cover is an ordered
// sequence of cubes representing a boolean function.
package cube

import (
	"encoding/binary"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/cespare/xxhash/v2"
)

// Value is one ternary coordinate value.
type Value int

const (
	Zero Value = iota
	One
	Star
)

func (v Value) String() string {
	switch v {
	case Zero:
		return "0"
	case One:
		return "1"
	default:
		return "*"
	}
}

// Output is a cube's asserted output symbol, or "unasserted" (the zero
// value) when the cube carries no output of its own (e.g. an intermediate
// cube produced purely by cover algebra).
type Output struct {
	Asserted bool
	Symbol   string
}

// Unasserted is the zero Output value.
var Unasserted = Output{}

// Out builds an asserted Output.
func Out(symbol string) Output { return Output{Asserted: true, Symbol: symbol} }

// Cube is a ternary-valued input pattern of fixed width N, represented as
// two equal-length bitsets: Care marks coordinates that are not ★, and
// Ones marks which of those are 1. A coordinate is Zero when Care is set
// and Ones is clear, One when both are set, and Star when Care is clear
// (Ones is then always clear too, maintained as an invariant so two cubes
// denoting the same pattern always hash and compare equal).
type Cube struct {
	N       int
	Care    *bitset.BitSet
	Ones    *bitset.BitSet
	Out     Output
	RuleIdx int // source rule index, or -1 when not attributable to one rule
}

// NewUniverse returns the all-★ cube of width n, the universal cube that
// contains every input pattern.
func NewUniverse(n int) Cube {
	return Cube{N: n, Care: bitset.New(uint(n)), Ones: bitset.New(uint(n)), RuleIdx: -1}
}

// Get returns the ternary value at coordinate i.
func (c Cube) Get(i int) Value {
	if !c.Care.Test(uint(i)) {
		return Star
	}
	if c.Ones.Test(uint(i)) {
		return One
	}
	return Zero
}

// With returns a copy of c with coordinate i set to v, leaving c untouched;
// cubes are treated as immutable value types throughout this package.
func (c Cube) With(i int, v Value) Cube {
	care := c.Care.Clone()
	ones := c.Ones.Clone()
	switch v {
	case Star:
		care.Clear(uint(i))
		ones.Clear(uint(i))
	case Zero:
		care.Set(uint(i))
		ones.Clear(uint(i))
	case One:
		care.Set(uint(i))
		ones.Set(uint(i))
	}
	return Cube{N: c.N, Care: care, Ones: ones, Out: c.Out, RuleIdx: c.RuleIdx}
}

// WithOutput returns a copy of c carrying output out.
func (c Cube) WithOutput(out Output) Cube {
	return Cube{N: c.N, Care: c.Care, Ones: c.Ones, Out: out, RuleIdx: c.RuleIdx}
}

// WithRule returns a copy of c annotated with the source rule index.
func (c Cube) WithRule(idx int) Cube {
	return Cube{N: c.N, Care: c.Care, Ones: c.Ones, Out: c.Out, RuleIdx: idx}
}

// Clone deep-copies c's bitsets so mutation-based builders never alias a
// cube already stored in a Cover.
func (c Cube) Clone() Cube {
	return Cube{N: c.N, Care: c.Care.Clone(), Ones: c.Ones.Clone(), Out: c.Out, RuleIdx: c.RuleIdx}
}

// IsUniversal reports whether every coordinate of c is ★.
func (c Cube) IsUniversal() bool {
	return c.Care.None()
}

// Equal reports whether a and b denote the same input pattern and output.
func (a Cube) Equal(b Cube) bool {
	return a.N == b.N && a.Care.Equal(b.Care) && a.Ones.Equal(b.Ones) && a.Out == b.Out
}

// SamePattern reports whether a and b denote the same input pattern,
// ignoring output.
func (a Cube) SamePattern(b Cube) bool {
	return a.N == b.N && a.Care.Equal(b.Care) && a.Ones.Equal(b.Ones)
}

// HashKey is a structural hash of c's pattern and output, used by Cover's
// duplicate-cube index and by internal/espresso's cover comparison instead
// of O(cubes) linear scans.
func (c Cube) HashKey() uint64 {
	words := len(c.Care.Bytes()) + len(c.Ones.Bytes())
	buf := make([]byte, 8*words+16)
	off := 0
	binary.LittleEndian.PutUint64(buf[off:], uint64(c.N))
	off += 8
	for _, w := range c.Care.Bytes() {
		binary.LittleEndian.PutUint64(buf[off:], w)
		off += 8
	}
	for _, w := range c.Ones.Bytes() {
		binary.LittleEndian.PutUint64(buf[off:], w)
		off += 8
	}
	if c.Out.Asserted {
		buf[off] = 1
	}
	off++
	h := xxhash.New()
	_, _ = h.Write(buf[:off])
	_, _ = h.Write([]byte(c.Out.Symbol))
	return h.Sum64()
}

// String renders the ternary vector left to right, coordinate 0 first.
func (c Cube) String() string {
	var b strings.Builder
	for i := 0; i < c.N; i++ {
		b.WriteString(c.Get(i).String())
	}
	if c.Out.Asserted {
		b.WriteString(" -> ")
		b.WriteString(c.Out.Symbol)
	}
	return b.String()
}
