package adapter

import (
	"sort"
	"strings"

	"github.com/outboundlabs/imacs/internal/cube"
	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/outboundlabs/imacs/internal/predicate"
)

// Lift renders c's input pattern back to a readable condition over set's
// predicates: one conjunct per coordinate that is not ★, sorted
// alphabetically by the predicate's variable name and then by the
// conjunct's rendered form, so the same pattern always lifts to the same
// string regardless of predicate insertion order. A cube with no
// constrained coordinates lifts to "true".
func Lift(c cube.Cube, set *predicate.Set) string {
	type conjunct struct{ variable, text string }
	var conjuncts []conjunct
	for i := 0; i < c.N; i++ {
		v := c.Get(i)
		if v == cube.Star {
			continue
		}
		p, ok := set.Lookup(i)
		if !ok {
			continue
		}
		if v == cube.One {
			conjuncts = append(conjuncts, conjunct{p.Var, p.String()})
		} else {
			conjuncts = append(conjuncts, conjunct{p.Var, negatedString(p)})
		}
	}
	if len(conjuncts) == 0 {
		return "true"
	}
	sort.Slice(conjuncts, func(i, j int) bool {
		if conjuncts[i].variable != conjuncts[j].variable {
			return conjuncts[i].variable < conjuncts[j].variable
		}
		return conjuncts[i].text < conjuncts[j].text
	})
	parts := make([]string, len(conjuncts))
	for i, cj := range conjuncts {
		parts[i] = cj.text
	}
	return strings.Join(parts, " && ")
}

// negatedString renders the logical negation of an atomic predicate. Eq
// negates to `!=`; every other kind falls back to a leading `!`, since the
// dialect has no dedicated "not greater than" syntax distinct from the
// unencoded complement problem IsComplementPair documents.
func negatedString(p predicate.Atomic) string {
	if p.Kind == predicate.KindEq {
		return p.Var + " != " + p.Lit.String()
	}
	return "!(" + p.String() + ")"
}

// LiftNode rebuilds a condition tree denoting the same input set as c,
// for callers (Minimize) that need a real expr.Node rather than a display
// string — e.g. to hand a minimized rule's condition back to a
// collaborator. Coordinates are visited in interning order, which is
// deterministic for a given predicate set, then run through
// expr.Normalize so the result matches the shape normalization always
// produces (single-child And collapsed, constant-folded if c is
// universal).
func LiftNode(c cube.Cube, set *predicate.Set) expr.Node {
	var terms []expr.Node
	for i := 0; i < c.N; i++ {
		v := c.Get(i)
		if v == cube.Star {
			continue
		}
		p, ok := set.Lookup(i)
		if !ok {
			continue
		}
		leaf := atomicNode(p)
		if v == cube.Zero {
			leaf = &expr.Not{X: leaf}
		}
		terms = append(terms, leaf)
	}
	if len(terms) == 0 {
		return &expr.Lit{Kind: expr.LitBool, B: true}
	}
	return expr.Normalize(&expr.And{Terms: terms})
}

func atomicNode(p predicate.Atomic) expr.Node {
	switch p.Kind {
	case predicate.KindBool:
		return &expr.Ident{Name: p.Var}
	case predicate.KindEq:
		return &expr.Cmp{Var: expr.Ident{Name: p.Var}, Op: expr.Eq, Lit: p.Lit}
	case predicate.KindCmp:
		return &expr.Cmp{Var: expr.Ident{Name: p.Var}, Op: p.Op, Lit: p.Lit}
	case predicate.KindStrOp:
		return &expr.StrOp{Var: expr.Ident{Name: p.Var}, Kind: p.SKind, Arg: p.SArg}
	default:
		return &expr.Opaque{Source: p.SArg}
	}
}

// LiftCover renders every cube in cov, joined as alternatives.
func LiftCover(cov cube.Cover, set *predicate.Set) []string {
	out := make([]string, len(cov.Cubes))
	for i, c := range cov.Cubes {
		out[i] = Lift(c, set)
	}
	return out
}
