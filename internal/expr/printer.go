package expr

import (
	"fmt"
	"strconv"
	"strings"
)

func (i *Ident) String() string { return i.Name }

func (l *Lit) String() string {
	switch l.Kind {
	case LitBool:
		return strconv.FormatBool(l.B)
	case LitInt:
		return strconv.FormatInt(l.I, 10)
	case LitFloat:
		return strconv.FormatFloat(l.F, 'g', -1, 64)
	case LitString:
		return strconv.Quote(l.S)
	default:
		return "<bad-lit>"
	}
}

func (n *Not) String() string {
	return fmt.Sprintf("!(%s)", n.X.String())
}

func (c *Cmp) String() string {
	return fmt.Sprintf("%s %s %s", c.Var.String(), c.Op, c.Lit.String())
}

func (a *And) String() string {
	parts := make([]string, len(a.Terms))
	for i, t := range a.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " && ") + ")"
}

func (o *Or) String() string {
	parts := make([]string, len(o.Terms))
	for i, t := range o.Terms {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " || ") + ")"
}

func (m *In) String() string {
	parts := make([]string, len(m.Lits))
	for i, l := range m.Lits {
		parts[i] = l.String()
	}
	return fmt.Sprintf("%s in [%s]", m.Var.String(), strings.Join(parts, ", "))
}

func (f *Field) String() string {
	return fmt.Sprintf("%s.%s", f.Var.String(), f.Field)
}

func (s *StrOp) String() string {
	return fmt.Sprintf("%s.%s(%s)", s.Var.String(), s.Kind, strconv.Quote(s.Arg))
}

func (o *Opaque) String() string {
	return fmt.Sprintf("<opaque: %s>", o.Source)
}
