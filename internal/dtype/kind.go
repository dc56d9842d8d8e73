package dtype

// Kind represents the built-in variable types the decision-table dialect
// understands.
type Kind string

const (
	Bool   Kind = "Bool"
	Int    Kind = "Int"
	Float  Kind = "Float"
	String Kind = "String"
	Enum   Kind = "Enum"
)

// Kinds contains all valid variable kinds.
var Kinds = map[Kind]bool{
	Bool:   true,
	Int:    true,
	Float:  true,
	String: true,
	Enum:   true,
}

// IsKind checks whether a string names a valid variable kind.
func IsKind(name string) bool {
	return Kinds[Kind(name)]
}

// HasFiniteDomain reports whether values of this kind range over a finite,
// caller-supplied set. Only Bool and Enum do; Int/Float/String are treated
// as having an implicit infinite domain per spec §3.
func (k Kind) HasFiniteDomain() bool {
	return k == Bool || k == Enum
}
