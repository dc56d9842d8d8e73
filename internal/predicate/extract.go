package predicate

import "github.com/outboundlabs/imacs/internal/expr"

// Extract walks a normalized expression tree and returns a boolean formula
// over predicate indices into set, plus the list of atomic predicates that
// stand in for dialect nodes the extractor could not model. Extraction
// never fails: unmodeled nodes become opaque predicates instead of
// aborting.
func Extract(e expr.Node, set *Set) (Formula, []Atomic) {
	var unmodeled []Atomic
	f := extract(e, set, &unmodeled)
	return f, unmodeled
}

func extract(e expr.Node, set *Set, unmodeled *[]Atomic) Formula {
	switch n := e.(type) {
	case *expr.Lit:
		if n.Kind == expr.LitBool {
			return Const{Value: n.B}
		}
		return opaqueLeaf(e, set, unmodeled)

	case *expr.Ident:
		idx := set.Intern(NewBool(n.Name))
		return PLit{Index: idx}

	case *expr.Field:
		idx := set.Intern(NewBool(n.String()))
		return PLit{Index: idx}

	case *expr.Not:
		return negate(extract(n.X, set, unmodeled))

	case *expr.Cmp:
		switch n.Op {
		case expr.Eq:
			idx := set.Intern(NewEq(n.Var.Name, n.Lit))
			return PLit{Index: idx}
		case expr.Neq:
			// `!=` is stored as logical negation of Eq, not a fresh
			// predicate.
			idx := set.Intern(NewEq(n.Var.Name, n.Lit))
			return PLit{Index: idx, Neg: true}
		default:
			idx := set.Intern(NewCmp(n.Var.Name, n.Op, n.Lit))
			return PLit{Index: idx}
		}

	case *expr.In:
		// Membership becomes the disjunction of equality predicates,
		// sharing the underlying Eq predicates across rules.
		terms := make([]Formula, len(n.Lits))
		for i, lit := range n.Lits {
			idx := set.Intern(NewEq(n.Var.Name, lit))
			terms[i] = PLit{Index: idx}
		}
		if len(terms) == 1 {
			return terms[0]
		}
		return FOr{Terms: terms}

	case *expr.StrOp:
		idx := set.Intern(NewStrOp(n.Var.Name, n.Kind, n.Arg))
		return PLit{Index: idx}

	case *expr.And:
		terms := make([]Formula, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = extract(t, set, unmodeled)
		}
		return FAnd{Terms: terms}

	case *expr.Or:
		terms := make([]Formula, len(n.Terms))
		for i, t := range n.Terms {
			terms[i] = extract(t, set, unmodeled)
		}
		return FOr{Terms: terms}

	default:
		return opaqueLeaf(e, set, unmodeled)
	}
}

func opaqueLeaf(e expr.Node, set *Set, unmodeled *[]Atomic) Formula {
	a := NewOpaque(e.String())
	idx := set.Intern(a)
	*unmodeled = append(*unmodeled, a)
	return PLit{Index: idx}
}

// negate applies logical negation to an already-extracted formula,
// pushing it to the leaves exactly as expr.Normalize would have done had
// the Not survived normalization down to this node.
func negate(f Formula) Formula {
	switch v := f.(type) {
	case Const:
		return Const{Value: !v.Value}
	case PLit:
		return PLit{Index: v.Index, Neg: !v.Neg}
	case FAnd:
		terms := make([]Formula, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = negate(t)
		}
		return FOr{Terms: terms}
	case FOr:
		terms := make([]Formula, len(v.Terms))
		for i, t := range v.Terms {
			terms[i] = negate(t)
		}
		return FAnd{Terms: terms}
	default:
		return f
	}
}
