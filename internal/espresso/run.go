package espresso

import "github.com/outboundlabs/imacs/internal/cube"

// MaxIterations is the hard bound on EXPAND/ESSENTIAL/IRREDUNDANT/REDUCE
// passes. Espresso is a heuristic; it is not guaranteed to converge, and
// a minimizer that loops forever on a pathological cover is worse than
// one that returns an approximate answer.
const MaxIterations = 16

// Run drives the EXPAND → ESSENTIAL-PRIMES → IRREDUNDANT → REDUCE loop to
// a fixed point (a pass whose irredundant cover repeats the previous
// pass's) or until MaxIterations passes have run. It returns the
// minimized on-set cover and whether the result is only approximate
// because the loop hit the iteration cap before converging, or the
// initial complement hit its own recursion cap.
//
// The value returned on every path is the post-IRREDUNDANT cover, never
// the post-REDUCE one: IRREDUNDANT only drops cubes whose minterms remain
// covered by the rest, so its output always unions back to the original
// function. REDUCE's shrunk cubes exist purely to reseed the next EXPAND
// with a different starting point and can, by design, temporarily
// uncover a minterm two cubes used to share — carrying that cover
// forward unchecked would let the loop converge on (and return) an
// incomplete result, so the reduced seed is validated against the fixed
// off-set before it is trusted as next iteration's starting cover.
func Run(onSet, dontCare cube.Cover) (cube.Cover, bool) {
	off, approx := cube.Complement(cube.Union(onSet, dontCare))
	current := cube.Absorb(onSet)

	var lastIrr []cube.Cube
	for iter := 0; iter < MaxIterations; iter++ {
		onDC := cube.Union(current, dontCare)
		primes := make([]cube.Cube, len(current.Cubes))
		for i, c := range current.Cubes {
			primes[i] = Expand(c, onDC, off)
		}

		essential, rest := EssentialPrimes(primes, current)
		candidates := cube.SortLex(cube.Cover{
			N: current.N, Kind: current.Kind, Cubes: append(essential, rest...),
		}).Cubes
		irr := Irredundant(candidates)

		if lastIrr != nil && sameCubeSlice(irr, lastIrr) {
			return finalize(irr, current.N, current.Kind), approx
		}
		lastIrr = irr

		current = seedNext(irr, dontCare, off, current.N, current.Kind)
	}
	return finalize(lastIrr, current.N, current.Kind), true
}

// seedNext runs REDUCE over irr to produce a perturbed starting cover for
// the next EXPAND pass, falling back to irr itself (skipping REDUCE for
// this round) when the reduced cubes would no longer cover the original
// function — REDUCE trading away a shared minterm between two cubes that
// both get shrunk to their unique halves.
func seedNext(irr []cube.Cube, dc cube.Cover, off cube.Cover, n int, kind cube.Kind) cube.Cover {
	reduced := make([]cube.Cube, len(irr))
	for i, c := range irr {
		others := cube.NewCover(c.N, c.Kind)
		for j, o := range irr {
			if i != j {
				others.Add(o)
			}
		}
		reduced[i] = Reduce(c, others, dc)
	}

	next := cube.NewCover(n, kind)
	for _, c := range reduced {
		next.Add(c)
	}
	next = cube.Absorb(next)

	if cube.IsTautology(cube.Union(next, off)) {
		return next
	}
	return finalize(irr, n, kind)
}

func finalize(cubes []cube.Cube, n int, kind cube.Kind) cube.Cover {
	out := cube.NewCover(n, kind)
	for _, c := range cubes {
		out.Add(c)
	}
	return cube.SortLex(out)
}

func sameCubeSlice(a, b []cube.Cube) bool {
	return sameCubes(cube.Cover{Cubes: a}, cube.Cover{Cubes: b})
}

func sameCubes(a, b cube.Cover) bool {
	if len(a.Cubes) != len(b.Cubes) {
		return false
	}
	bSeen := make(map[uint64]int, len(b.Cubes))
	for _, c := range b.Cubes {
		bSeen[c.HashKey()]++
	}
	for _, c := range a.Cubes {
		if bSeen[c.HashKey()] == 0 {
			return false
		}
		bSeen[c.HashKey()]--
	}
	return true
}
