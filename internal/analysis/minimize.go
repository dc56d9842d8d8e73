package analysis

import (
	"fmt"
	"sort"

	"github.com/outboundlabs/imacs/internal/adapter"
	"github.com/outboundlabs/imacs/internal/cube"
	cerrors "github.com/outboundlabs/imacs/internal/errors"
	"github.com/outboundlabs/imacs/internal/espresso"
	"github.com/outboundlabs/imacs/internal/predicate"
	"github.com/outboundlabs/imacs/internal/specmodel"
)

// TransformKind tags what kind of change a Transformation records.
type TransformKind int

const (
	// Reduced: a group of cubes sharing one output were merged and/or
	// absorbed into fewer cubes.
	Reduced TransformKind = iota
	// Expanded: a surviving cube generalizes an original one by
	// dropping at least one literal.
	Expanded
)

// Transformation is one audit-trail entry produced by Minimize.
type Transformation struct {
	Kind        TransformKind
	Output      string
	Description string
}

// runMinimization groups f's rule-attributed cubes by output symbol and
// runs the Espresso engine once per group, treating every other group's
// territory (and any true missing case) as that group's off-set — which
// falls out for free, since Run derives its off-set as the complement of
// the group's own on-set plus don't-cares. The default catch-all cube (if
// present, tagged RuleIdx -1) is excluded from every group: it already
// covers the whole universe and minimizing it is a no-op, and letting
// real rule cubes expand into it would silently reassign default-handled
// inputs to a rule's output.
func runMinimization(f cube.Cover, n int) (canMinimize bool, minimizedCount *int, agg *cerrors.Aggregator) {
	agg = cerrors.NewAggregator()
	groups := groupBySymbol(f)

	originalCount := 0
	total := 0
	approxAny := false
	for symbol, cubes := range groups {
		originalCount += len(cubes)
		onSet := cube.NewCover(n, cube.OnSet)
		for _, c := range cubes {
			onSet.Add(c)
		}
		result, approx := espresso.Run(onSet, cube.NewCover(n, cube.DontCareSet))
		total += len(result.Cubes)
		if approx {
			approxAny = true
			agg.Add(cerrors.New(cerrors.MinimizationCeiling, "",
				"minimization for output %q hit the iteration cap before converging", symbol))
		}
	}

	if approxAny {
		return true, nil, agg
	}
	if total < originalCount {
		count := total
		return true, &count, agg
	}
	return false, nil, agg
}

func groupBySymbol(f cube.Cover) map[string][]cube.Cube {
	groups := make(map[string][]cube.Cube)
	for _, c := range f.Cubes {
		if c.RuleIdx == -1 {
			continue
		}
		groups[c.Out.Symbol] = append(groups[c.Out.Symbol], c)
	}
	return groups
}

// Minimize lowers every rule to obtain the rule-level on-set (without
// first-match shadowing), minimizes it per output symbol, and returns a
// new rule list (one rule per surviving cube; output symbols in
// alphabetical order, each symbol's cubes in the order espresso.Run
// returns them) plus an audit trail describing how the table shrank. The
// default output, if any, is never part of minimization and is not
// included in the returned rules.
func Minimize(spec *specmodel.Spec) ([]specmodel.Rule, []Transformation, error) {
	if err := spec.Validate(); err != nil {
		return nil, nil, cerrors.New(cerrors.InvalidSpec, "", "%v", err)
	}

	set := predicate.NewSet()
	agg := cerrors.NewAggregator()
	covers := lowerRules(spec.Rules, set, agg)
	n := set.Len()

	f := cube.NewCover(n, cube.OnSet)
	for _, rc := range covers {
		for _, c := range rc.cubes {
			f.Add(c)
		}
	}

	groups := groupBySymbol(f)
	symbols := make([]string, 0, len(groups))
	for s := range groups {
		symbols = append(symbols, s)
	}
	sort.Strings(symbols)

	var reduced []specmodel.Rule
	var transforms []Transformation
	ruleSeq := 0
	for _, symbol := range symbols {
		original := groups[symbol]
		onSet := cube.NewCover(n, cube.OnSet)
		for _, c := range original {
			onSet.Add(c)
		}
		minimized, approx := espresso.Run(onSet, cube.NewCover(n, cube.DontCareSet))
		if approx {
			transforms = append(transforms, Transformation{
				Kind: Reduced, Output: symbol,
				Description: fmt.Sprintf("minimization for output %q is approximate (iteration cap reached)", symbol),
			})
		}
		if len(minimized.Cubes) < len(original) {
			transforms = append(transforms, Transformation{
				Kind: Reduced, Output: symbol,
				Description: fmt.Sprintf("output %q: %d rule cubes merged/absorbed into %d", symbol, len(original), len(minimized.Cubes)),
			})
		}
		for _, mc := range minimized.Cubes {
			if desc, ok := expansionDescription(mc, original, set); ok {
				transforms = append(transforms, Transformation{Kind: Expanded, Output: symbol, Description: desc})
			}
			ruleSeq++
			reduced = append(reduced, specmodel.Rule{
				ID:        fmt.Sprintf("minimized-%d", ruleSeq),
				Condition: adapter.LiftNode(mc, set),
				Output:    symbol,
			})
		}
	}

	return reduced, transforms, nil
}

// expansionDescription reports, for a minimized cube mc, the literals it
// dropped relative to the narrowest original cube it contains — i.e. the
// coordinates EXPAND generalized away. Returns ok=false if mc matches an
// original cube exactly (nothing was expanded).
func expansionDescription(mc cube.Cube, originals []cube.Cube, set *predicate.Set) (string, bool) {
	var narrowest *cube.Cube
	for i := range originals {
		o := originals[i]
		if !cube.Contains(mc, o) {
			continue
		}
		if narrowest == nil || countNonStar(o) > countNonStar(*narrowest) {
			narrowest = &o
		}
	}
	if narrowest == nil {
		return "", false
	}
	var dropped []string
	for i := 0; i < mc.N; i++ {
		if narrowest.Get(i) != cube.Star && mc.Get(i) == cube.Star {
			if p, ok := set.Lookup(i); ok {
				dropped = append(dropped, p.String())
			}
		}
	}
	if len(dropped) == 0 {
		return "", false
	}
	return fmt.Sprintf("generalized %q by dropping: %v", adapter.Lift(*narrowest, set), dropped), true
}

func countNonStar(c cube.Cube) int {
	n := 0
	for i := 0; i < c.N; i++ {
		if c.Get(i) != cube.Star {
			n++
		}
	}
	return n
}
