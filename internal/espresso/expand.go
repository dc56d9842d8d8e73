// Package espresso implements the EXPAND, ESSENTIAL-PRIMES, IRREDUNDANT,
// and REDUCE primitives of a two-level logic minimizer, and the driver
// loop that iterates them to a fixed point.
package espresso

import "github.com/outboundlabs/imacs/internal/cube"

// Expand grows c in each ★ direction while remaining disjoint from every
// cube in off, returning the largest such cube: a prime implicant of the
// on-set c belongs to. Coordinates already ★ in every cube of onDC are
// skipped — raising them is a no-op that only wastes recursion, and
// treating them as live is the exact pattern that caused stack overflows
// in two-level minimizers before this guard existed.
func Expand(c cube.Cube, onDC cube.Cover, off cube.Cover) cube.Cube {
	live := liveCoordinates(c.N, onDC)
	result := c
	for _, i := range live {
		if result.Get(i) == cube.Star {
			continue
		}
		candidate := result.With(i, cube.Star)
		if disjointFromAll(candidate, off) {
			result = candidate
		}
	}
	return result
}

// liveCoordinates returns, in ascending order, the coordinates that are
// not ★ in at least one cube of cov.
func liveCoordinates(n int, cov cube.Cover) []int {
	var live []int
	for i := 0; i < n; i++ {
		for _, c := range cov.Cubes {
			if c.Get(i) != cube.Star {
				live = append(live, i)
				break
			}
		}
	}
	return live
}

func disjointFromAll(c cube.Cube, cov cube.Cover) bool {
	for _, o := range cov.Cubes {
		if cube.Overlaps(c, o) {
			return false
		}
	}
	return true
}
