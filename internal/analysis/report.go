// Package analysis ties the expression, predicate, cube, and espresso
// layers together into the decision-table completeness and overlap
// analyzer, and the optional minimizer built on top of it.
package analysis

import (
	"math/big"

	cerrors "github.com/outboundlabs/imacs/internal/errors"

	"github.com/outboundlabs/imacs/internal/cube"
)

// MissingCase is one input region no rule (including the default, if any)
// covers.
type MissingCase struct {
	Cube         cube.Cube
	Description  string
	MintermCount *big.Int
}

// RuleOverlap is a non-empty intersection between two rules whose outputs
// differ — a genuine conflict, as opposed to a Redundancy.
type RuleOverlap struct {
	RuleA, RuleB string
	Intersection cube.Cube
	Description  string
	OutputA      string
	OutputB      string
}

// Redundancy is a non-empty intersection between two rules that assert the
// same output: not a conflict, just overlapping coverage worth surfacing
// so a caller can simplify the table.
type Redundancy struct {
	RuleA, RuleB string
	Intersection cube.Cube
	Description  string
	Output       string
}

// IncompletenessReport is the result of Analyze: whether a decision table
// covers its full input space, what it misses, where rules conflict, and
// whether the table could be expressed with fewer rules.
type IncompletenessReport struct {
	IsComplete           bool
	TotalCombinations    *big.Int
	CoveredCombinations  *big.Int
	CoverageRatio        float64
	MissingCases         []MissingCase
	Overlaps             []RuleOverlap
	Redundancies         []Redundancy
	DeadRules            []string
	UnmodeledPredicates  []string
	CanMinimize          bool
	MinimizedRuleCount   *int
	Issues               []*cerrors.Issue
}
