package analysis

import (
	"math/big"
	"testing"

	"github.com/outboundlabs/imacs/internal/dtype"
	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/outboundlabs/imacs/internal/specmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolVars(names ...string) *dtype.Registry {
	vars := make([]dtype.Variable, len(names))
	for i, n := range names {
		vars[i] = dtype.Variable{Name: n, Kind: dtype.Bool}
	}
	reg, err := dtype.NewRegistry(vars)
	if err != nil {
		panic(err)
	}
	return reg
}

func ident(name string) expr.Node { return &expr.Ident{Name: name} }

func not(n expr.Node) expr.Node { return &expr.Not{X: n} }

func and(terms ...expr.Node) expr.Node { return &expr.And{Terms: terms} }

// S1: a&&b, a&&!b, !a&&b (all -> "X") leaves !a&&!b missing.
func TestAnalyze_IncompleteTwoVarTable(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s1",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), ident("b")), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r3", Condition: and(not(ident("a")), ident("b")), Output: "X"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)

	assert.False(t, report.IsComplete)
	require.Len(t, report.MissingCases, 1)
	assert.Equal(t, 0, report.TotalCombinations.Cmp(big.NewInt(4)))
	assert.Equal(t, 0, report.CoveredCombinations.Cmp(big.NewInt(3)))
	assert.InDelta(t, 0.75, report.CoverageRatio, 0.0001)
	assert.Empty(t, report.Overlaps)
}

// Adding the fourth combination makes the table complete.
func TestAnalyze_CompleteTwoVarTable(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s1-complete",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), ident("b")), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r3", Condition: and(not(ident("a")), ident("b")), Output: "X"},
			{ID: "r4", Condition: and(not(ident("a")), not(ident("b"))), Output: "Y"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.True(t, report.IsComplete)
	assert.Empty(t, report.MissingCases)
	assert.Equal(t, 0, report.CoveredCombinations.Cmp(report.TotalCombinations))
}

// A default output closes the same gap without a fourth rule.
func TestAnalyze_DefaultOutputFillsGap(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s1-default",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Default:   specmodel.WithDefault("Y"),
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), ident("b")), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), not(ident("b"))), Output: "X"},
			{ID: "r3", Condition: and(not(ident("a")), ident("b")), Output: "X"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.True(t, report.IsComplete)
	assert.Empty(t, report.MissingCases)
	// the default cube is universal and must never show up as an overlap
	// against the three real rules, even though it geometrically
	// intersects every one of them.
	assert.Empty(t, report.Overlaps)
}

// Exhaustive mode reports a real conflict: rule 2's condition is a subset
// of rule 1's, and they disagree on output.
func TestAnalyze_ExhaustiveModeReportsOverlap(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-overlap",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: ident("a"), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), ident("b")), Output: "Y"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	require.Len(t, report.Overlaps, 1)
	assert.ElementsMatch(t, []string{"r1", "r2"}, []string{report.Overlaps[0].RuleA, report.Overlaps[0].RuleB})
}

// First-match mode resolves the identical geometry by priority: rule 2 is
// shadowed wherever rule 1 already matches, so no overlap is reported.
func TestAnalyze_FirstMatchModeSuppressesOverlap(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-shadow",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.FirstMatch,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: ident("a"), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), ident("b")), Output: "Y"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.Empty(t, report.Overlaps)
}

// Same-output overlaps are redundancy, not conflict.
func TestAnalyze_MatchingOutputOverlapIsRedundancyNotConflict(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-redundant",
		Variables: boolVars("a", "b"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: ident("a"), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), ident("b")), Output: "X"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.Empty(t, report.Overlaps)
	require.Len(t, report.Redundancies, 1)
	assert.Equal(t, "X", report.Redundancies[0].Output)
}

// A contradictory rule is reported as a dead rule, not a fatal error, and
// the rest of the table is still analyzed.
func TestAnalyze_ContradictoryRuleReportedAsDeadRule(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-dead",
		Variables: boolVars("a"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), not(ident("a"))), Output: "X"},
			{ID: "r2", Condition: ident("a"), Output: "Y"},
		},
	}

	report, err := Analyze(spec)
	require.NoError(t, err)
	assert.Contains(t, report.DeadRules, "r1")
}

// An invalid spec (structural violation of the collaborator contract)
// halts analysis instead of producing a degraded report.
func TestAnalyze_InvalidSpecHalts(t *testing.T) {
	spec := &specmodel.Spec{Name: "empty", Variables: boolVars("a")}
	_, err := Analyze(spec)
	assert.Error(t, err)
}

// Determinism: analyzing the same spec twice yields byte-identical
// coverage figures and missing/overlap lists in the same order.
func TestAnalyze_Deterministic(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-det",
		Variables: boolVars("a", "b", "c"),
		Mode:      specmodel.Exhaustive,
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: and(ident("a"), ident("b")), Output: "X"},
			{ID: "r2", Condition: ident("c"), Output: "Y"},
		},
	}

	r1, err1 := Analyze(spec)
	require.NoError(t, err1)
	r2, err2 := Analyze(spec)
	require.NoError(t, err2)

	assert.Equal(t, r1.IsComplete, r2.IsComplete)
	assert.Equal(t, 0, r1.CoveredCombinations.Cmp(r2.CoveredCombinations))
	require.Len(t, r2.MissingCases, len(r1.MissingCases))
	for i := range r1.MissingCases {
		assert.Equal(t, r1.MissingCases[i].Description, r2.MissingCases[i].Description)
	}
}

func TestExtractPredicates_InternsAcrossRules(t *testing.T) {
	spec := &specmodel.Spec{
		Name:      "s-extract",
		Variables: boolVars("a", "b"),
		Rules: []specmodel.Rule{
			{ID: "r1", Condition: ident("a"), Output: "X"},
			{ID: "r2", Condition: and(ident("a"), ident("b")), Output: "Y"},
		},
	}
	set, err := ExtractPredicates(spec)
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
}
