package dtype

import "fmt"

// Variable is a named typed slot in a decision table's input tuple.
// EnumDomain is only meaningful (and must be non-empty) when Kind is Enum.
type Variable struct {
	Name       string
	Kind       Kind
	EnumDomain []string
}

// Validate checks the internal consistency of a Variable declaration.
func (v Variable) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("dtype: variable has empty name")
	}
	if !IsKind(string(v.Kind)) {
		return fmt.Errorf("dtype: variable %q has unknown kind %q", v.Name, v.Kind)
	}
	if v.Kind == Enum && len(v.EnumDomain) == 0 {
		return fmt.Errorf("dtype: enum variable %q declares no domain values", v.Name)
	}
	if v.Kind != Enum && len(v.EnumDomain) > 0 {
		return fmt.Errorf("dtype: non-enum variable %q declares an enum domain", v.Name)
	}
	return nil
}

// HasEnumValue reports whether value is one of v's declared enum members.
func (v Variable) HasEnumValue(value string) bool {
	for _, d := range v.EnumDomain {
		if d == value {
			return true
		}
	}
	return false
}

// Registry looks up variables by name, the same symbol-table lookup idiom
// used elsewhere in this codebase but scoped to a single flat table of
// typed slots — decision tables have no nested scopes.
type Registry struct {
	byName map[string]Variable
	order  []string
}

// NewRegistry builds a Registry from an ordered list of variables.
func NewRegistry(vars []Variable) (*Registry, error) {
	r := &Registry{byName: make(map[string]Variable, len(vars))}
	for _, v := range vars {
		if err := v.Validate(); err != nil {
			return nil, err
		}
		if _, exists := r.byName[v.Name]; exists {
			return nil, fmt.Errorf("dtype: duplicate variable %q", v.Name)
		}
		r.byName[v.Name] = v
		r.order = append(r.order, v.Name)
	}
	return r, nil
}

// Lookup returns the variable named name and whether it exists.
func (r *Registry) Lookup(name string) (Variable, bool) {
	v, ok := r.byName[name]
	return v, ok
}

// Names returns variable names in declaration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered variables.
func (r *Registry) Len() int {
	return len(r.order)
}
