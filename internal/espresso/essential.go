package espresso

import "github.com/outboundlabs/imacs/internal/cube"

// EssentialPrimes partitions primes into the ones that are essential with
// respect to onSet (each covers at least one on-set minterm no other
// prime in the list covers) and the rest. Essential primes must appear in
// any minimal cover; the rest are candidates IRREDUNDANT decides on.
func EssentialPrimes(primes []cube.Cube, onSet cube.Cover) (essential, rest []cube.Cube) {
	for i, p := range primes {
		others := cube.NewCover(p.N, cube.OnSet)
		for j, q := range primes {
			if i != j {
				others.Add(q)
			}
		}
		unique := cube.Subtract(p, others)
		if coversAnOnMinterm(unique, onSet) {
			essential = append(essential, p)
		} else {
			rest = append(rest, p)
		}
	}
	return essential, rest
}

func coversAnOnMinterm(pieces []cube.Cube, onSet cube.Cover) bool {
	for _, piece := range pieces {
		for _, on := range onSet.Cubes {
			if cube.Overlaps(piece, on) {
				return true
			}
		}
	}
	return false
}
