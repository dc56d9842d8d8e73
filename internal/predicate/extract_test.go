package predicate

import (
	"testing"

	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intLit(i int64) expr.Lit { return expr.Lit{Kind: expr.LitInt, I: i} }

func TestExtract_SamePredicateInterns(t *testing.T) {
	set := NewSet()
	a := &expr.Cmp{Var: expr.Ident{Name: "amount"}, Op: expr.Gt, Lit: intLit(1000)}
	f1, _ := Extract(a, set)
	f2, _ := Extract(a, set)
	assert.Equal(t, 1, set.Len())
	assert.Equal(t, f1.String(), f2.String())
}

func TestExtract_NeqBecomesNegatedEq(t *testing.T) {
	set := NewSet()
	neq := &expr.Cmp{Var: expr.Ident{Name: "status"}, Op: expr.Neq, Lit: expr.Lit{Kind: expr.LitString, S: "A"}}
	f, _ := Extract(neq, set)
	lit, ok := f.(PLit)
	require.True(t, ok)
	assert.True(t, lit.Neg)

	eq := &expr.Cmp{Var: expr.Ident{Name: "status"}, Op: expr.Eq, Lit: expr.Lit{Kind: expr.LitString, S: "A"}}
	f2, _ := Extract(eq, set)
	lit2, ok := f2.(PLit)
	require.True(t, ok)
	assert.Equal(t, lit.Index, lit2.Index)
	assert.False(t, lit2.Neg)
	assert.Equal(t, 1, set.Len(), "!= and == share one interned predicate")
}

func TestExtract_LtAndGteAreDistinctPredicates(t *testing.T) {
	set := NewSet()
	lt := &expr.Cmp{Var: expr.Ident{Name: "x"}, Op: expr.Lt, Lit: intLit(5)}
	gte := &expr.Cmp{Var: expr.Ident{Name: "x"}, Op: expr.Gte, Lit: intLit(5)}
	Extract(lt, set)
	Extract(gte, set)
	assert.Equal(t, 2, set.Len(), "core does not auto-encode complements")
}

func TestExtract_MembershipBecomesDisjunctionOfEq(t *testing.T) {
	set := NewSet()
	m := &expr.In{Var: expr.Ident{Name: "role"}, Lits: []expr.Lit{
		{Kind: expr.LitString, S: "admin"},
		{Kind: expr.LitString, S: "member"},
		{Kind: expr.LitString, S: "guest"},
	}}
	f, _ := Extract(m, set)
	or, ok := f.(FOr)
	require.True(t, ok)
	assert.Len(t, or.Terms, 3)
	assert.Equal(t, 3, set.Len())
}

func TestExtract_MembershipSharesEqualityAcrossRules(t *testing.T) {
	set := NewSet()
	r1 := &expr.Cmp{Var: expr.Ident{Name: "role"}, Op: expr.Eq, Lit: expr.Lit{Kind: expr.LitString, S: "admin"}}
	r2 := &expr.In{Var: expr.Ident{Name: "role"}, Lits: []expr.Lit{
		{Kind: expr.LitString, S: "admin"},
		{Kind: expr.LitString, S: "guest"},
	}}
	Extract(r1, set)
	Extract(r2, set)
	assert.Equal(t, 2, set.Len(), "role==admin shared between the two rules")
}

func TestExtract_OpaqueNodeNeverDropped(t *testing.T) {
	set := NewSet()
	op := &expr.Opaque{Source: "legacyRule(x)"}
	f, unmodeled := Extract(op, set)
	require.Len(t, unmodeled, 1)
	assert.Equal(t, KindOpaque, unmodeled[0].Kind)
	_, ok := f.(PLit)
	assert.True(t, ok)
}

func TestExtract_BooleanVariable(t *testing.T) {
	set := NewSet()
	f, _ := Extract(&expr.Ident{Name: "verified"}, set)
	lit, ok := f.(PLit)
	require.True(t, ok)
	assert.False(t, lit.Neg)
	p, _ := set.Lookup(lit.Index)
	assert.Equal(t, KindBool, p.Kind)
}

func TestExtract_NegationOfConjunctionPushedToLeaves(t *testing.T) {
	set := NewSet()
	a := &expr.Cmp{Var: expr.Ident{Name: "a"}, Op: expr.Gt, Lit: intLit(1)}
	b := &expr.Cmp{Var: expr.Ident{Name: "b"}, Op: expr.Gt, Lit: intLit(2)}
	not := &expr.Not{X: &expr.And{Terms: []expr.Node{a, b}}}
	f, _ := Extract(expr.Normalize(not), set)
	or, ok := f.(FOr)
	require.True(t, ok)
	assert.Len(t, or.Terms, 2)
}

func TestEval_MatchesFormulaSemantics(t *testing.T) {
	f := FAnd{Terms: []Formula{PLit{Index: 0}, PLit{Index: 1, Neg: true}}}
	assert.True(t, Eval(f, []bool{true, false}))
	assert.False(t, Eval(f, []bool{true, true}))
	assert.False(t, Eval(f, []bool{false, false}))
}
