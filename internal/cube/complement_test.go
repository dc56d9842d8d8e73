package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplement_SimpleGap(t *testing.T) {
	cv := NewCover(2, OnSet)
	cv.Add(c3("1*"))
	comp, approx := Complement(cv)
	require.False(t, approx)
	for _, c := range comp.Cubes {
		assert.False(t, Overlaps(c, c3("1*")))
	}
	assert.True(t, IsTautology(Union(cv, comp)), "on-set plus complement must cover the universe")
}

func TestComplement_FullCoverageIsEmpty(t *testing.T) {
	cv := NewCover(1, OnSet)
	cv.Add(c3("0"))
	cv.Add(c3("1"))
	comp, approx := Complement(cv)
	assert.False(t, approx)
	assert.Empty(t, comp.Cubes)
}

func TestComplement_EmptyCoverIsUniverse(t *testing.T) {
	cv := NewCover(2, OnSet)
	comp, approx := Complement(cv)
	require.False(t, approx)
	require.Len(t, comp.Cubes, 1)
	assert.Equal(t, "**", comp.Cubes[0].String())
}

func TestComplement_NeverOverlapsSource(t *testing.T) {
	cv := NewCover(3, OnSet)
	cv.Add(c3("10*"))
	cv.Add(c3("*11"))
	comp, _ := Complement(cv)
	for _, cube := range cv.Cubes {
		for _, cc := range comp.Cubes {
			assert.False(t, Overlaps(cube, cc))
		}
	}
}
