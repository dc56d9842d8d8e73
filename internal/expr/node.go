// Package expr is the in-memory boolean expression dialect the analyzer
// reasons over. Trees are received already built by a collaborator (this
// package has no text parser) and normalized before predicate extraction.
package expr

// NodeType tags the concrete type of a Node for fast dispatch and for the
// stable sort key normalization relies on (see Normalize).
type NodeType int

const (
	ILLEGAL NodeType = iota
	IDENT
	LIT
	NOT
	CMP
	AND
	OR
	IN
	FIELD
	STROP
	OPAQUE
)

func (t NodeType) String() string {
	switch t {
	case IDENT:
		return "Ident"
	case LIT:
		return "Lit"
	case NOT:
		return "Not"
	case CMP:
		return "Cmp"
	case AND:
		return "And"
	case OR:
		return "Or"
	case IN:
		return "In"
	case FIELD:
		return "Field"
	case STROP:
		return "StrOp"
	case OPAQUE:
		return "Opaque"
	default:
		return "Illegal"
	}
}

// Node is any node in the boolean expression dialect.
type Node interface {
	NodeType() NodeType
	String() string
}

func (*Ident) NodeType() NodeType  { return IDENT }
func (*Lit) NodeType() NodeType    { return LIT }
func (*Not) NodeType() NodeType    { return NOT }
func (*Cmp) NodeType() NodeType    { return CMP }
func (*And) NodeType() NodeType    { return AND }
func (*Or) NodeType() NodeType     { return OR }
func (*In) NodeType() NodeType     { return IN }
func (*Field) NodeType() NodeType  { return FIELD }
func (*StrOp) NodeType() NodeType  { return STROP }
func (*Opaque) NodeType() NodeType { return OPAQUE }
