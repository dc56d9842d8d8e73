package predicate

import (
	"fmt"
	"strings"
)

// Formula is a purely boolean formula over predicate indices, the output
// of extraction. It is deliberately a small closed AST rather than
// expr.Node: by the time extraction is done, every leaf is a PLit
// referencing an interned predicate by index, never the dialect's own
// node types.
type Formula interface {
	isFormula()
	String() string
}

// Const is a constant true/false formula, the result of folding a literal
// condition during extraction.
type Const struct{ Value bool }

// PLit references predicate index Index, negated when Neg is true.
type PLit struct {
	Index int
	Neg   bool
}

// FAnd is an n-ary conjunction.
type FAnd struct{ Terms []Formula }

// FOr is an n-ary disjunction.
type FOr struct{ Terms []Formula }

func (Const) isFormula() {}
func (PLit) isFormula()  {}
func (FAnd) isFormula()  {}
func (FOr) isFormula()   {}

func (c Const) String() string {
	if c.Value {
		return "true"
	}
	return "false"
}

func (l PLit) String() string {
	if l.Neg {
		return fmt.Sprintf("!p%d", l.Index)
	}
	return fmt.Sprintf("p%d", l.Index)
}

func (a FAnd) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " && ") + ")"
}

func (o FOr) String() string {
	parts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

// Eval evaluates f under assignment, where assignment[i] is the truth
// value of predicate i. Used by tests to check formula semantics under a
// given assignment.
func Eval(f Formula, assignment []bool) bool {
	switch v := f.(type) {
	case Const:
		return v.Value
	case PLit:
		val := assignment[v.Index]
		if v.Neg {
			return !val
		}
		return val
	case FAnd:
		for _, t := range v.Terms {
			if !Eval(t, assignment) {
				return false
			}
		}
		return true
	case FOr:
		for _, t := range v.Terms {
			if Eval(t, assignment) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
