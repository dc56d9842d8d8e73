package analysis

import (
	"context"
	"math/big"

	"golang.org/x/sync/errgroup"

	"github.com/outboundlabs/imacs/internal/adapter"
	"github.com/outboundlabs/imacs/internal/cube"
	cerrors "github.com/outboundlabs/imacs/internal/errors"
	"github.com/outboundlabs/imacs/internal/expr"
	"github.com/outboundlabs/imacs/internal/predicate"
	"github.com/outboundlabs/imacs/internal/specmodel"
)

// parallelOverlapThreshold is the pair count at or above which findOverlaps
// fans the pairwise intersection work out across goroutines instead of
// walking it inline. Below it the goroutine/errgroup overhead costs more
// than the work it would save.
const parallelOverlapThreshold = 64

// ExtractPredicates walks every rule's normalized condition and returns
// the resulting predicate set, for introspection and test tooling
// independent of a full Analyze run.
func ExtractPredicates(spec *specmodel.Spec) (*predicate.Set, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	set := predicate.NewSet()
	for _, r := range spec.Rules {
		predicate.Extract(expr.Normalize(r.Condition), set)
	}
	return set, nil
}

// ruleCover is one rule's lowered, output- and rule-tagged cubes.
type ruleCover struct {
	rule  specmodel.Rule
	cubes []cube.Cube
}

// RulesToCover lowers every rule into set and returns the raw union of
// their cubes (the on-set before any first-match shadowing is applied),
// the lower-level hook exposed for chain/suite analyzers that only need a
// cover and not a full report.
func RulesToCover(rules []specmodel.Rule, set *predicate.Set) (cube.Cover, *cerrors.Aggregator) {
	agg := cerrors.NewAggregator()
	covers := lowerRules(rules, set, agg)
	out := cube.NewCover(set.Len(), cube.OnSet)
	for _, rc := range covers {
		for _, c := range rc.cubes {
			out.Add(c)
		}
	}
	return out, agg
}

// lowerRules implements the first two steps of the completeness
// algorithm: populate the predicate set from every rule's condition
// before lowering any of them to cubes. This matters because
// adapter.Lower sizes each rule's cubes to set.Len() at the moment it is
// called — if rule i were lowered before rule j interns a predicate rule
// i never mentions, rule i's cubes would come out narrower than rule j's
// and every downstream intersection/union would silently misalign
// coordinates. Running extraction alone over every condition first fixes
// the predicate count before any cube is built, so every rule's Lower
// call sees the same, final set.Len().
func lowerRules(rules []specmodel.Rule, set *predicate.Set, agg *cerrors.Aggregator) []ruleCover {
	for _, r := range rules {
		predicate.Extract(expr.Normalize(r.Condition), set)
	}

	seenUnmodeled := make(map[string]bool)
	var out []ruleCover
	for i, r := range rules {
		cov, unmodeled, err := adapter.Lower(r.Condition, set)
		for _, u := range unmodeled {
			if seenUnmodeled[u.String()] {
				continue
			}
			seenUnmodeled[u.String()] = true
			agg.Add(cerrors.New(cerrors.ExpressionUnsupported, r.ID,
				"unmodeled expression %q treated as an opaque predicate", u.String()))
		}
		if err != nil {
			agg.Add(cerrors.New(cerrors.CubeOverflow, r.ID, "%v", err))
			continue
		}
		if len(cov.Cubes) == 0 {
			agg.Add(cerrors.New(cerrors.ContradictoryRule, r.ID, "condition normalizes to false"))
			continue
		}
		tagged := make([]cube.Cube, len(cov.Cubes))
		for j, c := range cov.Cubes {
			tagged[j] = c.WithOutput(cube.Out(r.Output)).WithRule(i)
		}
		out = append(out, ruleCover{rule: r, cubes: tagged})
	}
	return out
}

// shadow applies first-match semantics: rule k's effective coverage is its
// stated cubes minus the union of every earlier rule's stated cubes, so a
// later rule can never be credited with territory an earlier rule already
// claims. Rules are processed in declaration order, which is also the
// order lowerRules preserves.
func shadow(covers []ruleCover, n int) [][]cube.Cube {
	claimed := cube.NewCover(n, cube.OnSet)
	effective := make([][]cube.Cube, len(covers))
	for i, rc := range covers {
		var eff []cube.Cube
		for _, c := range rc.cubes {
			eff = append(eff, cube.Subtract(c, claimed)...)
		}
		effective[i] = eff
		for _, c := range rc.cubes {
			claimed.Add(c)
		}
	}
	return effective
}

// Analyze runs the full completeness and overlap analysis over spec and
// returns the resulting report. It only returns an error when spec
// violates the collaborator contract (InvalidSpec); every other problem
// degrades the report's precision instead of aborting it.
func Analyze(spec *specmodel.Spec) (*IncompletenessReport, error) {
	if err := spec.Validate(); err != nil {
		return nil, cerrors.New(cerrors.InvalidSpec, "", "%v", err)
	}

	set := predicate.NewSet()
	agg := cerrors.NewAggregator()
	covers := lowerRules(spec.Rules, set, agg)
	n := set.Len()

	var effective [][]cube.Cube
	if spec.Mode == specmodel.FirstMatch {
		effective = shadow(covers, n)
	} else {
		effective = make([][]cube.Cube, len(covers))
		for i, rc := range covers {
			effective[i] = rc.cubes
		}
	}

	f := cube.NewCover(n, cube.OnSet)
	for _, eff := range effective {
		for _, c := range eff {
			f.Add(c)
		}
	}
	if spec.Default.Present {
		f.Add(cube.NewUniverse(n).WithOutput(cube.Out(spec.Default.Output)).WithRule(-1))
	}

	report := &IncompletenessReport{}
	report.TotalCombinations = new(big.Int).Lsh(big.NewInt(1), uint(n))

	missing := cube.Uncovered(f)
	missingTotal := new(big.Int)
	for _, m := range missing {
		count := mintermCount(m)
		missingTotal.Add(missingTotal, count)
		report.MissingCases = append(report.MissingCases, MissingCase{
			Cube:         m,
			Description:  adapter.Lift(m, set),
			MintermCount: count,
		})
	}
	report.IsComplete = len(missing) == 0
	report.CoveredCombinations = new(big.Int).Sub(report.TotalCombinations, missingTotal)
	report.CoverageRatio = ratio(report.CoveredCombinations, report.TotalCombinations)

	report.Overlaps, report.Redundancies = findOverlaps(covers, effective, set)

	for _, iss := range agg.OfKind(cerrors.ContradictoryRule) {
		report.DeadRules = append(report.DeadRules, iss.RuleID)
	}
	report.UnmodeledPredicates = unmodeledDescriptions(agg)

	canMin, minCount, minAgg := runMinimization(f, n)
	report.CanMinimize = canMin
	report.MinimizedRuleCount = minCount
	for _, iss := range minAgg.Issues() {
		agg.Add(iss)
	}

	report.Issues = agg.Issues()
	return report, nil
}

// findOverlaps computes, for every unordered pair of successfully-lowered
// rules, the non-empty intersections of their effective cubes: a
// different-output intersection is a RuleOverlap, a same-output one is a
// Redundancy. Under first-match semantics effective cubes never intersect
// by construction (each rule's effective cubes already exclude every
// earlier rule's territory), so this naturally reports nothing there —
// matching the exhaustive-vs-first-match contract without a separate code
// path.
func findOverlaps(covers []ruleCover, effective [][]cube.Cube, set *predicate.Set) ([]RuleOverlap, []Redundancy) {
	var pairs []rulePair
	for i := 0; i < len(covers); i++ {
		for j := i + 1; j < len(covers); j++ {
			pairs = append(pairs, rulePair{i, j})
		}
	}

	if len(pairs) < parallelOverlapThreshold {
		var overlaps []RuleOverlap
		var redundancies []Redundancy
		for _, p := range pairs {
			ov, rd := pairOverlaps(covers, effective, set, p)
			overlaps = append(overlaps, ov...)
			redundancies = append(redundancies, rd...)
		}
		return overlaps, redundancies
	}
	return findOverlapsParallel(pairs, covers, effective, set)
}

// rulePair is one unordered pair of rule indices to check for overlap.
type rulePair struct{ i, j int }

// findOverlapsParallel checks every pair concurrently via an errgroup,
// writing each pair's result into its own slot so no lock is needed and
// the final concatenation stays in pair order regardless of which
// goroutine finishes first — the report stays deterministic across runs.
// pairOverlaps never returns an error, so the only way g.Wait() reports
// one is upstream cancellation, which this analysis never triggers.
func findOverlapsParallel(pairs []rulePair, covers []ruleCover, effective [][]cube.Cube, set *predicate.Set) ([]RuleOverlap, []Redundancy) {
	results := make([]struct {
		overlaps     []RuleOverlap
		redundancies []Redundancy
	}, len(pairs))

	g, ctx := errgroup.WithContext(context.Background())
	for idx, p := range pairs {
		idx, p := idx, p
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[idx].overlaps, results[idx].redundancies = pairOverlaps(covers, effective, set, p)
			return nil
		})
	}
	_ = g.Wait()

	var overlaps []RuleOverlap
	var redundancies []Redundancy
	for _, r := range results {
		overlaps = append(overlaps, r.overlaps...)
		redundancies = append(redundancies, r.redundancies...)
	}
	return overlaps, redundancies
}

// pairOverlaps intersects every effective cube of rule p.i against every
// effective cube of rule p.j, classifying each non-empty intersection as
// a Redundancy (same output) or a RuleOverlap (different outputs).
func pairOverlaps(covers []ruleCover, effective [][]cube.Cube, set *predicate.Set, p rulePair) ([]RuleOverlap, []Redundancy) {
	var overlaps []RuleOverlap
	var redundancies []Redundancy
	for _, a := range effective[p.i] {
		for _, b := range effective[p.j] {
			ix, ok := cube.Intersect(a, b)
			if !ok {
				continue
			}
			desc := adapter.Lift(ix, set)
			if a.Out == b.Out {
				redundancies = append(redundancies, Redundancy{
					RuleA: covers[p.i].rule.ID, RuleB: covers[p.j].rule.ID,
					Intersection: ix, Description: desc, Output: a.Out.Symbol,
				})
				continue
			}
			overlaps = append(overlaps, RuleOverlap{
				RuleA: covers[p.i].rule.ID, RuleB: covers[p.j].rule.ID,
				Intersection: ix, Description: desc,
				OutputA: a.Out.Symbol, OutputB: b.Out.Symbol,
			})
		}
	}
	return overlaps, redundancies
}

func mintermCount(c cube.Cube) *big.Int {
	stars := 0
	for i := 0; i < c.N; i++ {
		if c.Get(i) == cube.Star {
			stars++
		}
	}
	return new(big.Int).Lsh(big.NewInt(1), uint(stars))
}

func ratio(covered, total *big.Int) float64 {
	if total.Sign() == 0 {
		return 0
	}
	f := new(big.Float).Quo(new(big.Float).SetInt(covered), new(big.Float).SetInt(total))
	v, _ := f.Float64()
	return v
}

func unmodeledDescriptions(agg *cerrors.Aggregator) []string {
	var out []string
	seen := make(map[string]bool)
	for _, iss := range agg.OfKind(cerrors.ExpressionUnsupported) {
		if seen[iss.Message] {
			continue
		}
		seen[iss.Message] = true
		out = append(out, iss.Message)
	}
	return out
}
