package errors

import (
	"github.com/hashicorp/go-multierror"
)

// Aggregator collects Issues raised over the course of one analysis. Fatal
// issues (InvalidSpec) still get recorded here so callers that want the
// full picture can see them, but FatalErr reports the first one for
// callers that need to halt.
type Aggregator struct {
	merr   *multierror.Error
	issues []*Issue
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{merr: &multierror.Error{}}
}

// Add records an issue.
func (a *Aggregator) Add(issue *Issue) {
	a.issues = append(a.issues, issue)
	a.merr = multierror.Append(a.merr, issue)
}

// Issues returns every recorded issue in the order they were added.
func (a *Aggregator) Issues() []*Issue {
	out := make([]*Issue, len(a.issues))
	copy(out, a.issues)
	return out
}

// OfKind returns only the issues matching kind.
func (a *Aggregator) OfKind(kind Kind) []*Issue {
	var out []*Issue
	for _, i := range a.issues {
		if i.Kind == kind {
			out = append(out, i)
		}
	}
	return out
}

// FatalErr returns the first fatal issue recorded, or nil.
func (a *Aggregator) FatalErr() error {
	for _, i := range a.issues {
		if i.Kind.Fatal() {
			return i
		}
	}
	return nil
}

// ErrorOrNil returns a combined error for every recorded issue, or nil if
// none were recorded — the same "accumulate then decide" idiom
// go-multierror is built for, used here so a caller that wants every
// problem surfaced at once (rather than just the first fatal one) can
// still get it.
func (a *Aggregator) ErrorOrNil() error {
	return a.merr.ErrorOrNil()
}
