// Package adapter converts between the boolean expression dialect used by
// rule conditions and the ternary cube representation the minimizer
// operates on.
package adapter

import (
	"errors"
	"fmt"

	"github.com/outboundlabs/imacs/internal/cube"
	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/outboundlabs/imacs/internal/predicate"
)

// MaxCubes bounds the number of product terms Lower will expand a single
// condition into. Distributing nested disjunctions inside conjunctions
// (e.g. `a && (b || c || d)`) is exponential in the worst case; this
// ceiling turns a pathological condition into an error instead of an
// unbounded allocation.
const MaxCubes = 1 << 16

// ErrCubeOverflow is returned by Lower when expanding a condition into
// sum-of-products form would exceed MaxCubes terms.
var ErrCubeOverflow = errors.New("adapter: condition expands past the cube ceiling")

// Lower extracts cond's atomic predicates into set and converts the
// resulting boolean formula into a cube.Cover of width set.Len(): one
// cube per product term in the condition's disjunctive normal form. The
// returned cubes carry no output; callers (typically internal/analysis)
// attach the rule's output themselves. unmodeled lists the atomic
// predicates standing in for dialect nodes extraction could not model,
// passed straight through from predicate.Extract for diagnostics.
func Lower(cond expr.Node, set *predicate.Set) (cube.Cover, []predicate.Atomic, error) {
	normalized := expr.Normalize(cond)
	formula, unmodeled := predicate.Extract(normalized, set)

	terms, err := toTerms(formula)
	if err != nil {
		return cube.Cover{}, unmodeled, err
	}

	cov := cube.NewCover(set.Len(), cube.OnSet)
	for _, t := range terms {
		c := cube.NewUniverse(set.Len())
		for idx, v := range t {
			val := cube.Zero
			if v {
				val = cube.One
			}
			c = c.With(idx, val)
		}
		cov.Add(c)
	}
	return cov, unmodeled, nil
}

// term is one conjunctive product: predicate index -> required truth
// value. A term that would require both true and false for the same
// predicate is unsatisfiable and never materializes.
type term map[int]bool

func toTerms(f predicate.Formula) ([]term, error) {
	switch v := f.(type) {
	case predicate.Const:
		if v.Value {
			return []term{{}}, nil
		}
		return nil, nil

	case predicate.PLit:
		return []term{{v.Index: !v.Neg}}, nil

	case predicate.FAnd:
		acc := []term{{}}
		for _, child := range v.Terms {
			childTerms, err := toTerms(child)
			if err != nil {
				return nil, err
			}
			var next []term
			for _, a := range acc {
				for _, b := range childTerms {
					merged, ok := mergeTerms(a, b)
					if !ok {
						continue
					}
					next = append(next, merged)
					if len(next) > MaxCubes {
						return nil, fmt.Errorf("%w: %d terms and counting", ErrCubeOverflow, len(next))
					}
				}
			}
			acc = next
			if len(acc) == 0 {
				return nil, nil
			}
		}
		return acc, nil

	case predicate.FOr:
		var all []term
		for _, child := range v.Terms {
			childTerms, err := toTerms(child)
			if err != nil {
				return nil, err
			}
			all = append(all, childTerms...)
			if len(all) > MaxCubes {
				return nil, fmt.Errorf("%w: %d terms and counting", ErrCubeOverflow, len(all))
			}
		}
		return all, nil

	default:
		return nil, fmt.Errorf("adapter: unrecognized formula node %T", f)
	}
}

func mergeTerms(a, b term) (term, bool) {
	out := make(term, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		if existing, ok := out[k]; ok && existing != v {
			return nil, false
		}
		out[k] = v
	}
	return out, true
}
