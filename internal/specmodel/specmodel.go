// Package specmodel holds the plain data contract a collaborator hands to
// the analyzer: a set of typed variables, an ordered list of rules, and an
// optional default output. Nothing in this package parses text or touches
// the filesystem; internal/specload is the concrete YAML-backed producer
// of these values.
package specmodel

import (
	"fmt"

	"github.com/outboundlabs/imacs/internal/dtype"
	"github.com/outboundlabs/imacs/internal/expr"
)

// SemanticsMode selects how a decision table's rules combine when more
// than one matches the same input.
type SemanticsMode int

const (
	// Exhaustive means every rule is expected to partition the input
	// space disjointly; two rules matching the same input is reported
	// as an overlap, not resolved by priority. It is the zero value and
	// therefore the default.
	Exhaustive SemanticsMode = iota
	// FirstMatch means the first rule (in declaration order) whose
	// condition holds wins; later matching rules are shadowed rather
	// than conflicting.
	FirstMatch
)

// Rule is one row of a decision table.
type Rule struct {
	ID        string
	Condition expr.Node
	Output    string
	Priority  int
}

// DefaultOutput is the catch-all output asserted when no rule matches, or
// the zero value when the table has none.
type DefaultOutput struct {
	Present bool
	Output  string
}

// WithDefault builds a present DefaultOutput.
func WithDefault(output string) DefaultOutput {
	return DefaultOutput{Present: true, Output: output}
}

// Spec is the full decision table: the variables its conditions may
// reference, the rules themselves, the combination semantics, and an
// optional default.
type Spec struct {
	Name      string
	Variables *dtype.Registry
	Rules     []Rule
	Mode      SemanticsMode
	Default   DefaultOutput
}

// Validate checks structural well-formedness independent of any
// particular condition's satisfiability: unique rule IDs, known variable
// references are left to extraction (an unknown variable simply becomes
// its own fresh predicate, which is not an error at this layer).
func (s *Spec) Validate() error {
	if s.Variables == nil {
		return fmt.Errorf("specmodel: spec %q has no variable registry", s.Name)
	}
	if len(s.Rules) == 0 {
		return fmt.Errorf("specmodel: spec %q has no rules", s.Name)
	}
	seen := make(map[string]bool, len(s.Rules))
	for _, r := range s.Rules {
		if r.ID == "" {
			return fmt.Errorf("specmodel: spec %q has a rule with an empty ID", s.Name)
		}
		if seen[r.ID] {
			return fmt.Errorf("specmodel: spec %q has duplicate rule ID %q", s.Name, r.ID)
		}
		seen[r.ID] = true
		if r.Condition == nil {
			return fmt.Errorf("specmodel: rule %q has a nil condition", r.ID)
		}
		if r.Output == "" {
			return fmt.Errorf("specmodel: rule %q has an empty output", r.ID)
		}
	}
	return nil
}
