package cube

// maxComplementDepth bounds the recursive Shannon expansion Complement
// performs. Two-level minimizers historically stack-overflow on wide
// inputs when complementing naively; capping depth and falling back to an
// approximate (over-covering) result keeps this package from ever blowing
// the stack, at the cost of precision on pathologically wide tables.
const maxComplementDepth = 64

// Complement returns a cover of c's off-set: every input tuple not
// matched by any cube in c. It repeatedly picks the lowest-indexed
// coordinate still constrained by some remaining cube and recurses on both of its
// cofactors (Shannon expansion), skipping any coordinate that is ★ in
// every remaining cube since splitting on it cannot shrink the problem.
// Each recursive branch cofactors the split coordinate out of its
// sub-cubes entirely (rather than merely fixing it) so the coordinate is
// never re-selected deeper in the same branch; the branch's value is
// reapplied to the results on the way back up.
//
// approx is true when the recursion depth cap was hit before reaching a
// base case; the returned cover is then a safe over-approximation (it may
// include tuples that are not actually in the off-set) rather than an
// exact complement, and callers must treat minimization results derived
// from it as approximate.
func Complement(c Cover) (result Cover, approx bool) {
	universe := NewUniverse(c.N)
	return complementRec(universe, c.Cubes, 0)
}

func complementRec(domain Cube, cubes []Cube, depth int) (Cover, bool) {
	out := NewCover(domain.N, OffSet)

	if len(cubes) == 0 {
		out.Add(domain)
		return out, false
	}

	for _, cube := range cubes {
		if Contains(cube, domain) {
			return out, false
		}
	}

	if depth >= maxComplementDepth {
		out.Add(domain)
		return out, true
	}

	splitVar := pickSplitVar(domain, cubes)
	if splitVar == -1 {
		return out, false
	}

	approx := false
	for _, v := range [2]Value{Zero, One} {
		subDomain, ok := Cofactor(domain, splitVar, v == One)
		if !ok {
			continue
		}
		var subCubes []Cube
		for _, cube := range cubes {
			if restricted, ok := Cofactor(cube, splitVar, v == One); ok {
				subCubes = append(subCubes, restricted)
			}
		}
		sub, subApprox := complementRec(subDomain, subCubes, depth+1)
		approx = approx || subApprox
		for _, sc := range sub.Cubes {
			out.Add(sc.With(splitVar, v))
		}
	}
	return out, approx
}

// pickSplitVar returns the lowest-indexed coordinate that is not ★ in
// every cube of cubes, or -1 if all cubes are ★ at every coordinate
// (nothing left to split on, meaning cubes already union to domain or an
// empty complement).
func pickSplitVar(domain Cube, cubes []Cube) int {
	for i := 0; i < domain.N; i++ {
		for _, c := range cubes {
			if c.Get(i) != Star {
				return i
			}
		}
	}
	return -1
}
