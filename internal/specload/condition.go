package specload

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/outboundlabs/imacs/internal/expr"
)

// condSpec is the YAML shape of one condition node. Expression text is
// deliberately not part of this dialect — parsing a boolean-expression
// grammar is an external collaborator's job — so a condition is always a
// structural tree of these tagged variants. A bare scalar is shorthand for
// an Ident (a bare boolean variable reference).
type condSpec struct {
	Ident  string      `yaml:"ident"`
	Not    *condSpec   `yaml:"not"`
	And    []condSpec  `yaml:"and"`
	Or     []condSpec  `yaml:"or"`
	Cmp    *cmpSpec    `yaml:"cmp"`
	In     *inSpec     `yaml:"in"`
	StrOp  *strOpSpec  `yaml:"strop"`
	Opaque string      `yaml:"opaque"`
}

type cmpSpec struct {
	Var   string `yaml:"var"`
	Op    string `yaml:"op"`
	Value any    `yaml:"value"`
}

type inSpec struct {
	Var    string `yaml:"var"`
	Values []any  `yaml:"values"`
}

type strOpSpec struct {
	Var  string `yaml:"var"`
	Kind string `yaml:"kind"`
	Arg  string `yaml:"arg"`
}

// UnmarshalYAML accepts either a bare scalar (shorthand for an Ident) or a
// mapping with exactly one of the tagged variant keys.
func (c *condSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		c.Ident = node.Value
		return nil
	}
	type alias condSpec
	var a alias
	if err := node.Decode(&a); err != nil {
		return err
	}
	*c = condSpec(a)
	return nil
}

func (c *condSpec) toNode() (expr.Node, error) {
	set := 0
	var result expr.Node
	var err error

	if c.Ident != "" {
		set++
		result = &expr.Ident{Name: c.Ident}
	}
	if c.Not != nil {
		set++
		var x expr.Node
		x, err = c.Not.toNode()
		if err != nil {
			return nil, err
		}
		result = &expr.Not{X: x}
	}
	if len(c.And) > 0 {
		set++
		result, err = termsOf(c.And, func(terms []expr.Node) expr.Node { return &expr.And{Terms: terms} })
		if err != nil {
			return nil, err
		}
	}
	if len(c.Or) > 0 {
		set++
		result, err = termsOf(c.Or, func(terms []expr.Node) expr.Node { return &expr.Or{Terms: terms} })
		if err != nil {
			return nil, err
		}
	}
	if c.Cmp != nil {
		set++
		result, err = c.Cmp.toNode()
		if err != nil {
			return nil, err
		}
	}
	if c.In != nil {
		set++
		result, err = c.In.toNode()
		if err != nil {
			return nil, err
		}
	}
	if c.StrOp != nil {
		set++
		result = &expr.StrOp{Var: expr.Ident{Name: c.StrOp.Var}, Kind: expr.StrOpKind(c.StrOp.Kind), Arg: c.StrOp.Arg}
	}
	if c.Opaque != "" {
		set++
		result = &expr.Opaque{Source: c.Opaque}
	}

	if set == 0 {
		return nil, fmt.Errorf("condition node has no recognized variant (ident/not/and/or/cmp/in/strop/opaque)")
	}
	if set > 1 {
		return nil, fmt.Errorf("condition node sets more than one variant")
	}
	return result, nil
}

func termsOf(specs []condSpec, build func([]expr.Node) expr.Node) (expr.Node, error) {
	terms := make([]expr.Node, len(specs))
	for i := range specs {
		n, err := specs[i].toNode()
		if err != nil {
			return nil, err
		}
		terms[i] = n
	}
	return build(terms), nil
}

func (c *cmpSpec) toNode() (expr.Node, error) {
	op := expr.Op(c.Op)
	switch op {
	case expr.Eq, expr.Neq, expr.Lt, expr.Lte, expr.Gt, expr.Gte:
	default:
		return nil, fmt.Errorf("unknown comparison operator %q", c.Op)
	}
	lit, err := toLit(c.Value)
	if err != nil {
		return nil, err
	}
	return &expr.Cmp{Var: expr.Ident{Name: c.Var}, Op: op, Lit: lit}, nil
}

func (in *inSpec) toNode() (expr.Node, error) {
	if len(in.Values) == 0 {
		return nil, fmt.Errorf("in condition on %q has no values", in.Var)
	}
	lits := make([]expr.Lit, len(in.Values))
	for i, v := range in.Values {
		lit, err := toLit(v)
		if err != nil {
			return nil, err
		}
		lits[i] = lit
	}
	return &expr.In{Var: expr.Ident{Name: in.Var}, Lits: lits}, nil
}

// toLit converts a YAML-decoded scalar (bool, int, float64, or string, per
// yaml.v3's default scalar resolution) into an expr.Lit.
func toLit(v any) (expr.Lit, error) {
	switch x := v.(type) {
	case bool:
		return expr.Lit{Kind: expr.LitBool, B: x}, nil
	case int:
		return expr.Lit{Kind: expr.LitInt, I: int64(x)}, nil
	case int64:
		return expr.Lit{Kind: expr.LitInt, I: x}, nil
	case float64:
		return expr.Lit{Kind: expr.LitFloat, F: x}, nil
	case string:
		return expr.Lit{Kind: expr.LitString, S: x}, nil
	default:
		return expr.Lit{}, fmt.Errorf("unsupported literal value %v (%T)", v, v)
	}
}
