package analysis

import (
	"testing"

	"github.com/outboundlabs/imacs/internal/specmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AB' + A'B + AB minimizes to A + B: three rules collapse into two.
func TestMinimize_MergesOverlappingCubes(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s6",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r2", Condition: and(not(ident("a")), ident("b")), Output: "X"},
			{ID: "r3", Condition: and(ident("a"), ident("b")), Output: "X"},
		},
	}

	reduced, transforms, err := Minimize(spec)
	require.NoError(t, err)
	assert.Len(t, reduced, 2)
	for _, r := range reduced {
		assert.Equal(t, "X", r.Output)
	}
	assert.NotEmpty(t, transforms)
}

// A rule set that is already minimal produces no Reduced transformations.
func TestMinimize_NoOpOnAlreadyMinimalTable(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-minimal",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: ident("a"), Output: "X"},
			{ID: "r2", Condition: and(not(ident("a")), ident("b")), Output: "Y"},
		},
	}

	reduced, transforms, err := Minimize(spec)
	require.NoError(t, err)
	assert.Len(t, reduced, 2)
	for _, tr := range transforms {
		assert.NotEqual(t, Reduced, tr.Kind)
	}
}

// Rules targeting different outputs are minimized independently: output
// groups never merge into each other's cubes.
func TestMinimize_GroupsByOutputSymbol(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-grouped",
		Variables: boolVars("a", "b", "c"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), ident("b")), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r3", Condition: ident("c"), Output: "Y"},
		},
	}

	reduced, _, err := Minimize(spec)
	require.NoError(t, err)

	var xCount, yCount int
	for _, r := range reduced {
		switch r.Output {
		case "X":
			xCount++
		case "Y":
			yCount++
		}
	}
	assert.Equal(t, 1, xCount)
	assert.Equal(t, 1, yCount)
}

// Analyze's CanMinimize/MinimizedRuleCount surface the same reduction
// Minimize itself would perform, without returning the new rule list.
func TestAnalyze_ReportsMinimizationPotential(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s6-report",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r2", Condition: and(not(ident("a")), ident("b")), Output: "X"},
			{ID: "r3", Condition: and(ident("a"), ident("b")), Output: "X"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.True(t, report.CanMinimize)
	require.NotNil(t, report.MinimizedRuleCount)
	assert.Equal(t, 2, *report.MinimizedRuleCount)
}

// The default output is never folded into minimization: only the three
// explicit rules are subject to reduction.
func TestMinimize_ExcludesDefaultOutput(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-default-excluded",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Default:   specmodel.WithDefault("Z"),
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r2", Condition: and(not(ident("a")), ident("b")), Output: "X"},
			{ID: "r3", Condition: and(ident("a"), ident("b")), Output: "X"},
		},
	}

	reduced, _, err := Minimize(spec)
	require.NoError(t, err)
	for _, r := range reduced {
		assert.NotEqual(t, "Z", r.Output)
	}
	assert.Len(t, reduced, 2)
}
