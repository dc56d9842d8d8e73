package cube

import (
	"testing"

	"pgregory.net/rapid"
)

// genCube draws a random width-n cube by assigning each coordinate an
// independent ternary value.
func genCube(t *rapid.T, n int) Cube {
	c := NewUniverse(n)
	for i := 0; i < n; i++ {
		v := rapid.SampledFrom([]Value{Zero, One, Star}).Draw(t, "coord")
		c = c.With(i, v)
	}
	return c
}

// Intersect's result, when it exists, is contained in both operands: no
// sequence of coordinate assignments can widen a cube's match set by
// intersecting it with another.
func TestIntersect_ResultContainedInBothOperands(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		a := genCube(t, n)
		b := genCube(t, n)
		ix, ok := Intersect(a, b)
		if !ok {
			return
		}
		if !Contains(a, ix) {
			t.Fatalf("intersection %s not contained in a %s", ix, a)
		}
		if !Contains(b, ix) {
			t.Fatalf("intersection %s not contained in b %s", ix, b)
		}
	})
}

// Intersect is commutative: swapping the operands changes neither
// emptiness nor the resulting pattern.
func TestIntersect_Commutes(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		a := genCube(t, n)
		b := genCube(t, n)
		ab, okAB := Intersect(a, b)
		ba, okBA := Intersect(b, a)
		if okAB != okBA {
			t.Fatalf("intersect ok mismatch: a,b=%v b,a=%v", okAB, okBA)
		}
		if okAB && !ab.SamePattern(ba) {
			t.Fatalf("intersect not commutative: %s vs %s", ab, ba)
		}
	})
}

// Contains is reflexive: every cube contains itself.
func TestContains_Reflexive(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 6).Draw(t, "n")
		a := genCube(t, n)
		if !Contains(a, a) {
			t.Fatalf("cube %s does not contain itself", a)
		}
	})
}
