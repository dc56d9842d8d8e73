package cube

// Intersect computes the set intersection of a and b's input patterns. It
// returns ok=false when the two cubes conflict on some coordinate (one
// says 0, the other says 1), meaning their intersection is empty. The
// result's output is a's; callers that need to reconcile differing
// outputs must do so themselves.
func Intersect(a, b Cube) (Cube, bool) {
	conflict := a.Care.Intersection(b.Care)
	diff := a.Ones.SymmetricDifference(b.Ones)
	conflict.InPlaceIntersection(diff)
	if !conflict.None() {
		return Cube{}, false
	}
	care := a.Care.Union(b.Care)
	aOnes := a.Ones.Intersection(a.Care)
	bOnes := b.Ones.Intersection(b.Care)
	ones := aOnes.Union(bOnes)
	return Cube{N: a.N, Care: care, Ones: ones, Out: a.Out, RuleIdx: -1}, true
}

// Distance returns the number of coordinates at which a and b disagree
// (one is 0 where the other is 1): the classic cube distance used to
// decide whether two cubes are combinable by single-variable reduction.
func Distance(a, b Cube) int {
	both := a.Care.Intersection(b.Care)
	diff := a.Ones.SymmetricDifference(b.Ones)
	both.InPlaceIntersection(diff)
	return int(both.Count())
}

// Contains reports whether every input pattern matched by b is also
// matched by a, i.e. a's input set is a superset of b's.
func Contains(a, b Cube) bool {
	notBCare := b.Care.Complement()
	diff := a.Ones.SymmetricDifference(b.Ones)
	fail := notBCare.Union(diff)
	fail.InPlaceIntersection(a.Care)
	return fail.None()
}

// Overlaps reports whether a and b's input patterns share at least one
// tuple.
func Overlaps(a, b Cube) bool {
	_, ok := Intersect(a, b)
	return ok
}

// Cofactor returns the Shannon cofactor of c with respect to coordinate i
// taking value: coordinate i's constraint is removed, so the result is ★
// there. ok is false when c already disagrees with value at i (the
// cofactor is empty).
func Cofactor(c Cube, i int, value bool) (Cube, bool) {
	if c.Care.Test(uint(i)) && c.Ones.Test(uint(i)) != value {
		return Cube{}, false
	}
	care := c.Care.Clone()
	ones := c.Ones.Clone()
	care.Clear(uint(i))
	ones.Clear(uint(i))
	return Cube{N: c.N, Care: care, Ones: ones, Out: c.Out, RuleIdx: c.RuleIdx}, true
}

// Sharp computes the sharp (cube-difference) operation a # b: the set of
// cubes covering exactly the tuples in a that are not in b. When a and b
// overlap it returns one cube per coordinate where b restricts a and a is
// ★, forcing that coordinate to b's opposite value and every earlier such
// coordinate to b's value, so the pieces are pairwise disjoint; the union
// of the result plus (a ∩ b) reconstitutes a. Returns a itself when a and
// b do not overlap, and nil when a ⊆ b (the difference is empty).
func Sharp(a, b Cube) []Cube {
	if Contains(b, a) {
		return nil
	}
	if !Overlaps(a, b) {
		return []Cube{a}
	}
	var out []Cube
	rest := a
	for i := 0; i < a.N; i++ {
		bv := b.Get(i)
		if bv == Star || rest.Get(i) != Star {
			continue
		}
		opposite := Zero
		if bv == Zero {
			opposite = One
		}
		if piece, ok := restrict(rest, i, opposite); ok {
			out = append(out, piece)
		}
		rest = rest.With(i, bv)
	}
	return out
}

// restrict returns a copy of c with coordinate i forced to v, failing if c
// already disagrees with v there.
func restrict(c Cube, i int, v Value) (Cube, bool) {
	if c.Get(i) != Star && c.Get(i) != v {
		return Cube{}, false
	}
	return c.With(i, v), true
}

// Combine merges two cubes that differ in exactly one coordinate (the
// classic two-literal consensus merge): the result is identical to a and
// b except the differing coordinate becomes ★. ok is false when a and b
// are not distance-1 or disagree in output.
func Combine(a, b Cube) (Cube, bool) {
	if a.Out != b.Out {
		return Cube{}, false
	}
	diffIdx := -1
	for i := 0; i < a.N; i++ {
		av, bv := a.Get(i), b.Get(i)
		if av == bv {
			continue
		}
		if av == Star || bv == Star {
			return Cube{}, false
		}
		if diffIdx != -1 {
			return Cube{}, false
		}
		diffIdx = i
	}
	if diffIdx == -1 {
		return a, true
	}
	return a.With(diffIdx, Star), true
}
