package espresso

import "github.com/outboundlabs/imacs/internal/cube"

// Irredundant drops any cube of cubes entirely covered by the union of
// the others, processing from the end of the slice backward so that when
// two cubes tie (identical or mutually covering), the earlier one in
// cubes survives. Callers that want a specific tie-break order (e.g.
// lexicographically smaller first) should sort cubes accordingly before
// calling — this keeps Irredundant itself order-preserving rather than
// silently reordering the cover.
func Irredundant(cubes []cube.Cube) []cube.Cube {
	active := make([]bool, len(cubes))
	for i := range active {
		active[i] = true
	}
	for i := len(cubes) - 1; i >= 0; i-- {
		others := cube.NewCover(cubes[i].N, cube.OnSet)
		for j, o := range cubes {
			if j == i || !active[j] {
				continue
			}
			others.Add(o)
		}
		if len(others.Cubes) == 0 {
			continue // never drop the last surviving cube
		}
		if len(cube.Subtract(cubes[i], others)) == 0 {
			active[i] = false
		}
	}
	var out []cube.Cube
	for i, c := range cubes {
		if active[i] {
			out = append(out, c)
		}
	}
	return out
}
