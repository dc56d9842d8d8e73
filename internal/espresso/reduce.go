package espresso

import "github.com/outboundlabs/imacs/internal/cube"

// Reduce shrinks c to the smallest cube that still covers the portion of
// c's minterms not covered by rest or dc: the part of c that is load
// bearing. If c is entirely covered by rest ∪ dc already (nothing unique
// left to preserve), c is returned unchanged — REDUCE never widens a cube
// and is only meaningful on cubes that still carry unique coverage.
func Reduce(c cube.Cube, rest cube.Cover, dc cube.Cover) cube.Cube {
	combined := cube.Union(rest, dc)
	unique := cube.Subtract(c, combined)
	if len(unique) == 0 {
		return c
	}
	result := unique[0]
	for _, p := range unique[1:] {
		result = boundingCube(result, p)
	}
	return result.WithOutput(c.Out).WithRule(c.RuleIdx)
}

// boundingCube returns the smallest cube containing both a and b: a
// coordinate keeps its shared value only when a and b agree on a
// non-★ value there, and becomes ★ otherwise.
func boundingCube(a, b cube.Cube) cube.Cube {
	result := cube.NewUniverse(a.N)
	for i := 0; i < a.N; i++ {
		av, bv := a.Get(i), b.Get(i)
		if av == bv && av != cube.Star {
			result = result.With(i, av)
		}
	}
	return result
}
