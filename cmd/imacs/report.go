package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/outboundlabs/imacs/internal/analysis"
	"github.com/outboundlabs/imacs/internal/predicate"
	"github.com/outboundlabs/imacs/internal/specmodel"
)

var (
	bold = color.New(color.Bold).SprintFunc()
	dim  = color.New(color.Faint).SprintFunc()
)

// renderReport formats an IncompletenessReport the way reportParseError in
// the Kanso CLI formats a syntax error: a colored headline per finding,
// plain detail lines underneath.
func renderReport(r *analysis.IncompletenessReport) string {
	var b strings.Builder

	if r.IsComplete {
		b.WriteString(color.GreenString("✓ table is complete") + "\n")
	} else {
		b.WriteString(color.RedString("✗ table is incomplete") + "\n")
	}
	fmt.Fprintf(&b, "  %s %s / %s (%.1f%%)\n",
		dim("coverage:"), r.CoveredCombinations, r.TotalCombinations, r.CoverageRatio*100)

	for _, m := range r.MissingCases {
		fmt.Fprintf(&b, "  %s %s %s\n", color.YellowString("missing:"), m.Description, dim(fmt.Sprintf("(%s cases)", m.MintermCount)))
	}

	for _, o := range r.Overlaps {
		fmt.Fprintf(&b, "  %s %s and %s both match %s (%s vs %s)\n",
			color.RedString("overlap:"), o.RuleA, o.RuleB, o.Description, o.OutputA, o.OutputB)
	}

	for _, rd := range r.Redundancies {
		fmt.Fprintf(&b, "  %s %s and %s agree on %s (%s)\n",
			color.CyanString("redundant:"), rd.RuleA, rd.RuleB, rd.Description, rd.Output)
	}

	for _, id := range r.DeadRules {
		fmt.Fprintf(&b, "  %s rule %s can never fire\n", color.RedString("dead rule:"), id)
	}

	for _, u := range r.UnmodeledPredicates {
		fmt.Fprintf(&b, "  %s %s\n", dim("unmodeled:"), u)
	}

	if r.CanMinimize && r.MinimizedRuleCount != nil {
		fmt.Fprintf(&b, "  %s could reduce to %d rules (run `imacs minimize` for the rewrite)\n", bold("minimizable:"), *r.MinimizedRuleCount)
	}

	return b.String()
}

// renderMinimization formats Minimize's reduced rule list and the
// transformation log that explains how each merge happened.
func renderMinimization(reduced []specmodel.Rule, transforms []analysis.Transformation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d rules\n", bold("reduced to"), len(reduced))
	for _, r := range reduced {
		fmt.Fprintf(&b, "  %s -> %s\n", r.ID, r.Output)
	}
	for _, t := range transforms {
		fmt.Fprintf(&b, "  %s %s\n", dim(fmt.Sprintf("[%s/%s]", transformKindName(t.Kind), t.Output)), t.Description)
	}
	return b.String()
}

func transformKindName(k analysis.TransformKind) string {
	switch k {
	case analysis.Expanded:
		return "expanded"
	default:
		return "reduced"
	}
}

// renderPredicates lists every atomic predicate a table's conditions
// extract to, in interning order.
func renderPredicates(set *predicate.Set) string {
	var b strings.Builder
	for i, p := range set.All() {
		fmt.Fprintf(&b, "  %s %s\n", dim(fmt.Sprintf("#%d", i)), p.String())
	}
	return b.String()
}
