package espresso

import (
	"testing"

	"github.com/outboundlabs/imacs/internal/cube"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func c2(bits string) cube.Cube {
	cb := cube.NewUniverse(len(bits))
	for i, ch := range bits {
		switch ch {
		case '0':
			cb = cb.With(i, cube.Zero)
		case '1':
			cb = cb.With(i, cube.One)
		}
	}
	return cb
}

// S6 from the minimization benchmark: AB' + A'B + AB should minimize to
// A + B, a two-cube cover.
func TestRun_ThreeTermFunctionMinimizesToTwoCubes(t *testing.T) {
	on := cube.NewCover(2, cube.OnSet)
	on.Add(c2("10")) // AB'
	on.Add(c2("01")) // A'B
	on.Add(c2("11")) // AB

	minimized, approx := Run(on, cube.NewCover(2, cube.DontCareSet))
	assert.False(t, approx)
	require.Len(t, minimized.Cubes, 2)

	for _, c := range minimized.Cubes {
		assert.Equal(t, 1, countNonStar(c))
	}
}

// S1: a&&b, a&&!b, !a&&b (all -> 1) minimizes to a || b, two cubes.
func TestRun_CompleteTwoVarTableMinimizesToTwoCubes(t *testing.T) {
	on := cube.NewCover(2, cube.OnSet)
	on.Add(c2("11"))
	on.Add(c2("10"))
	on.Add(c2("01"))

	minimized, _ := Run(on, cube.NewCover(2, cube.DontCareSet))
	assert.Len(t, minimized.Cubes, 2)
}

func TestExpand_GrowsWhileDisjointFromOffSet(t *testing.T) {
	onDC := cube.NewCover(2, cube.OnSet)
	onDC.Add(c2("10"))
	off := cube.NewCover(2, cube.OffSet)
	off.Add(c2("01"))
	off.Add(c2("00"))

	grown := Expand(c2("10"), onDC, off)
	assert.Equal(t, cube.One, grown.Get(0))
	assert.Equal(t, cube.Star, grown.Get(1))
}

func TestIrredundant_DropsRedundantDuplicate(t *testing.T) {
	cubes := []cube.Cube{c2("1*"), c2("10")}
	out := Irredundant(cubes)
	require.Len(t, out, 1)
	assert.Equal(t, "1*", out[0].String())
}

func TestIrredundant_KeepsIncomparableCubes(t *testing.T) {
	cubes := []cube.Cube{c2("10"), c2("01")}
	out := Irredundant(cubes)
	assert.Len(t, out, 2)
}

func TestEssentialPrimes_SoleCoverIsEssential(t *testing.T) {
	on := cube.NewCover(2, cube.OnSet)
	on.Add(c2("10"))
	on.Add(c2("11"))
	primes := []cube.Cube{c2("1*")}
	essential, rest := EssentialPrimes(primes, on)
	assert.Len(t, essential, 1)
	assert.Empty(t, rest)
}

func countNonStar(c cube.Cube) int {
	n := 0
	for i := 0; i < c.N; i++ {
		if c.Get(i) != cube.Star {
			n++
		}
	}
	return n
}
