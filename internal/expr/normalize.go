package expr

import "sort"

// Normalize pushes negations inward (De Morgan + double-negation
// elimination), flattens associative and/or, constant-folds boolean
// literals, and sorts commutative children by a stable key so structurally
// identical subtrees produce identical strings — required for predicate
// interning downstream.
func Normalize(n Node) Node {
	switch v := n.(type) {
	case *Not:
		return normalizeNot(Normalize(v.X))
	case *And:
		return normalizeAndOr(v.Terms, true)
	case *Or:
		return normalizeAndOr(v.Terms, false)
	default:
		return n
	}
}

// normalizeNot applies De Morgan and involution to an already-normalized
// operand.
func normalizeNot(inner Node) Node {
	switch t := inner.(type) {
	case *Lit:
		if t.Kind == LitBool {
			return &Lit{Kind: LitBool, B: !t.B}
		}
		return &Not{X: inner}
	case *Not:
		return t.X
	case *And:
		negs := make([]Node, len(t.Terms))
		for i, term := range t.Terms {
			negs[i] = normalizeNot(term)
		}
		return normalizeAndOr(negs, false)
	case *Or:
		negs := make([]Node, len(t.Terms))
		for i, term := range t.Terms {
			negs[i] = normalizeNot(term)
		}
		return normalizeAndOr(negs, true)
	default:
		return &Not{X: inner}
	}
}

// normalizeAndOr normalizes children, flattens same-kind children into the
// parent, constant-folds boolean literals, and sorts the survivors.
func normalizeAndOr(terms []Node, isAnd bool) Node {
	flat := make([]Node, 0, len(terms))
	for _, t := range terms {
		nt := Normalize(t)
		if isAnd {
			if and, ok := nt.(*And); ok {
				flat = append(flat, and.Terms...)
				continue
			}
		} else {
			if or, ok := nt.(*Or); ok {
				flat = append(flat, or.Terms...)
				continue
			}
		}
		flat = append(flat, nt)
	}

	kept := make([]Node, 0, len(flat))
	for _, t := range flat {
		if lit, ok := t.(*Lit); ok && lit.Kind == LitBool {
			if isAnd {
				if !lit.B {
					return &Lit{Kind: LitBool, B: false}
				}
				continue
			}
			if lit.B {
				return &Lit{Kind: LitBool, B: true}
			}
			continue
		}
		kept = append(kept, t)
	}

	switch len(kept) {
	case 0:
		return &Lit{Kind: LitBool, B: isAnd}
	case 1:
		return kept[0]
	}

	sortTerms(kept)
	if isAnd {
		return &And{Terms: kept}
	}
	return &Or{Terms: kept}
}

// sortTerms orders commutative children by NodeType then rendered string,
// giving structurally identical subtrees identical child order.
func sortTerms(terms []Node) {
	sort.SliceStable(terms, func(i, j int) bool {
		ti, tj := terms[i].NodeType(), terms[j].NodeType()
		if ti != tj {
			return ti < tj
		}
		return terms[i].String() < terms[j].String()
	})
}
