package errors

import "fmt"

// Issue is one occurrence of a Kind, optionally attributed to a rule.
type Issue struct {
	Kind    Kind
	RuleID  string // empty when not attributable to a single rule
	Message string
}

func (i *Issue) Error() string {
	if i.RuleID == "" {
		return fmt.Sprintf("%s: %s", i.Kind, i.Message)
	}
	return fmt.Sprintf("%s(%s): %s", i.Kind, i.RuleID, i.Message)
}

// New builds an Issue with a formatted message.
func New(kind Kind, ruleID, format string, args ...any) *Issue {
	return &Issue{Kind: kind, RuleID: ruleID, Message: fmt.Sprintf(format, args...)}
}
