// Package specload decodes a decision table from YAML into a
// specmodel.Spec. It is the one place in the tree that touches the
// filesystem or a text format; internal/analysis and everything below it
// accept only the in-memory shapes this package produces and never import
// it back.
package specload

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/outboundlabs/imacs/internal/dtype"
	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/outboundlabs/imacs/internal/specmodel"
)

// document is the top-level YAML shape.
type document struct {
	Name      string          `yaml:"name"`
	Mode      string          `yaml:"mode"`
	Variables []variableSpec  `yaml:"variables"`
	Default   *defaultSpec    `yaml:"default"`
	Rules     []ruleSpec      `yaml:"rules"`
}

type variableSpec struct {
	Name   string   `yaml:"name"`
	Kind   string   `yaml:"kind"`
	Domain []string `yaml:"domain"`
}

type defaultSpec struct {
	Output string `yaml:"output"`
}

type ruleSpec struct {
	ID       string   `yaml:"id"`
	Output   string   `yaml:"output"`
	Priority int      `yaml:"priority"`
	When     condSpec `yaml:"when"`
}

// LoadFile reads and decodes the decision table at path.
func LoadFile(path string) (*specmodel.Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("specload: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a decision table from r.
func Load(r io.Reader) (*specmodel.Spec, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("specload: parsing document: %w", err)
	}
	return doc.toSpec()
}

func (d *document) toSpec() (*specmodel.Spec, error) {
	vars := make([]dtype.Variable, len(d.Variables))
	for i, v := range d.Variables {
		vars[i] = dtype.Variable{Name: v.Name, Kind: dtype.Kind(v.Kind), EnumDomain: v.Domain}
	}
	registry, err := dtype.NewRegistry(vars)
	if err != nil {
		return nil, fmt.Errorf("specload: %w", err)
	}

	mode, err := parseMode(d.Mode)
	if err != nil {
		return nil, fmt.Errorf("specload: %w", err)
	}

	rules := make([]specmodel.Rule, len(d.Rules))
	for i, r := range d.Rules {
		cond, err := r.When.toNode()
		if err != nil {
			return nil, fmt.Errorf("specload: rule %q: %w", r.ID, err)
		}
		rules[i] = specmodel.Rule{ID: r.ID, Condition: cond, Output: r.Output, Priority: r.Priority}
	}

	spec := &specmodel.Spec{
		Name:      d.Name,
		Variables: registry,
		Rules:     rules,
		Mode:      mode,
	}
	if d.Default != nil {
		spec.Default = specmodel.WithDefault(d.Default.Output)
	}
	return spec, nil
}

func parseMode(s string) (specmodel.SemanticsMode, error) {
	switch s {
	case "", "exhaustive":
		return specmodel.Exhaustive, nil
	case "first-match":
		return specmodel.FirstMatch, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want \"first-match\" or \"exhaustive\")", s)
	}
}
