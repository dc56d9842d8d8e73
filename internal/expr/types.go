package expr

// Op is a comparison operator.
type Op string

const (
	Eq  Op = "=="
	Neq Op = "!="
	Lt  Op = "<"
	Lte Op = "<="
	Gt  Op = ">"
	Gte Op = ">="
)

// IsComplementPair reports whether a and b are the two operators the core
// deliberately does NOT treat as automatic complements: knowing that
// `x < 5` and `x >= 5` partition the domain requires order semantics this
// package does not assume, so each is interned as its own predicate. Kept
// as a named predicate rather than an inline comment so callers can point
// at one place when documenting the resulting incompleteness blind spot.
func IsComplementPair(a, b Op) bool {
	pairs := map[Op]Op{Lt: Gte, Gte: Lt, Lte: Gt, Gt: Lte}
	return pairs[a] == b
}

// StrOpKind names a string operation.
type StrOpKind string

const (
	StartsWith StrOpKind = "startsWith"
	EndsWith   StrOpKind = "endsWith"
	Contains   StrOpKind = "contains"
)

// LitKind tags the underlying Go type carried by a Lit.
type LitKind int

const (
	LitBool LitKind = iota
	LitInt
	LitFloat
	LitString
)

// Ident references a variable by name.
type Ident struct {
	Name string
}

// Lit is a literal value: bool, int, float, or string.
type Lit struct {
	Kind LitKind
	B    bool
	I    int64
	F    float64
	S    string
}

// Not negates its operand. After Normalize, Not appears only on atomic
// leaves.
type Not struct {
	X Node
}

// Cmp is a binary comparison between a variable and a literal:
// `var Op literal`, e.g. `amount > 1000`.
type Cmp struct {
	Var Ident
	Op  Op
	Lit Lit
}

// And is an n-ary, flattened conjunction.
type And struct {
	Terms []Node
}

// Or is an n-ary, flattened disjunction.
type Or struct {
	Terms []Node
}

// In is a membership test: `var in [l1, l2, ...]`.
type In struct {
	Var  Ident
	Lits []Lit
}

// Field is a field access on a variable, e.g. `order.status`.
type Field struct {
	Var   Ident
	Field string
}

// StrOp is a string operation: `var.startsWith(arg)`, etc.
type StrOp struct {
	Var  Ident
	Kind StrOpKind
	Arg  string
}

// Opaque preserves a node the dialect cannot model (e.g. a user-defined
// function call with unknown semantics) verbatim: extraction must not
// silently drop it. Source carries whatever representation the
// collaborator supplied (e.g. a textual dump) purely for diagnostics; it
// has no semantics to the core beyond "opaque boolean predicate".
type Opaque struct {
	Source string
}
