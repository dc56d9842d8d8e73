// Package predicate lowers normalized boolean expressions into a canonical
// set of atomic predicates.
package predicate

import (
	"fmt"

	"github.com/outboundlabs/imacs/internal/expr"
)

// Kind tags the concrete shape of an Atomic predicate.
type Kind int

const (
	KindBool Kind = iota
	KindEq
	KindCmp
	KindStrOp
	// KindOpaque represents a dialect node the extractor cannot model.
	// It is still interned like any other predicate so the boolean
	// skeleton stays well-formed; it just carries no decidable semantics.
	KindOpaque
)

// Atomic is one indivisible boolean question about the input tuple.
// Canonicalization guarantees structural equality implies identity: two
// Atomics built from the same inputs always render the same Key.
type Atomic struct {
	Kind  Kind
	Var   string
	Op    expr.Op        // KindCmp only
	Lit   expr.Lit       // KindEq, KindCmp
	SKind expr.StrOpKind // KindStrOp
	SArg  string         // KindStrOp
}

// NewBool builds the atomic predicate for a boolean-typed variable used
// directly as a condition (e.g. `verified`).
func NewBool(v string) Atomic { return Atomic{Kind: KindBool, Var: v} }

// NewEq builds the atomic predicate `var == lit`.
func NewEq(v string, lit expr.Lit) Atomic { return Atomic{Kind: KindEq, Var: v, Lit: lit} }

// NewCmp builds the atomic predicate `var Op lit` for Op in {<,<=,>,>=}.
// `==`/`!=` must go through NewEq / Not(NewEq) instead, so equality and
// inequality on the same literal always share one interned predicate.
func NewCmp(v string, op expr.Op, lit expr.Lit) Atomic {
	return Atomic{Kind: KindCmp, Var: v, Op: op, Lit: lit}
}

// NewStrOp builds the atomic predicate `var.kind(arg)`.
func NewStrOp(v string, kind expr.StrOpKind, arg string) Atomic {
	return Atomic{Kind: KindStrOp, Var: v, SKind: kind, SArg: arg}
}

// NewOpaque builds the atomic predicate standing in for a dialect node the
// extractor could not model. source is typically the node's own String().
func NewOpaque(source string) Atomic {
	return Atomic{Kind: KindOpaque, SArg: source}
}

// Key renders the canonical, order-stable string identity of the
// predicate. Two Atomics intern to the same index iff their Keys match.
func (a Atomic) Key() string {
	switch a.Kind {
	case KindBool:
		return fmt.Sprintf("bool(%s)", a.Var)
	case KindEq:
		return fmt.Sprintf("eq(%s,%s)", a.Var, a.Lit.String())
	case KindCmp:
		return fmt.Sprintf("cmp(%s,%s,%s)", a.Var, a.Op, a.Lit.String())
	case KindStrOp:
		return fmt.Sprintf("strop(%s,%s,%q)", a.Var, a.SKind, a.SArg)
	case KindOpaque:
		return fmt.Sprintf("opaque(%q)", a.SArg)
	default:
		return "illegal"
	}
}

// String renders the predicate in the dialect's surface syntax, used when
// lifting cubes back to readable conditions.
func (a Atomic) String() string {
	switch a.Kind {
	case KindBool:
		return a.Var
	case KindEq:
		return fmt.Sprintf("%s == %s", a.Var, a.Lit.String())
	case KindCmp:
		return fmt.Sprintf("%s %s %s", a.Var, a.Op, a.Lit.String())
	case KindStrOp:
		return fmt.Sprintf("%s.%s(%q)", a.Var, a.SKind, a.SArg)
	case KindOpaque:
		return fmt.Sprintf("<opaque: %s>", a.SArg)
	default:
		return "<bad-predicate>"
	}
}
