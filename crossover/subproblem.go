package crossover

import (
	"context"
	"math/rand"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/internal/uerrors"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
)

type finisher int

const (
	finisherRandom finisher = iota
	finisherGreedy
	finisherRWLS
)

// subproblemOp implements subproblem_random/_greedy/_rwls and their
// extended_ variants. Every variant shares the same seeding step
// (subsets that uniquely cover some point among the two parents'
// selections are kept as-is) and differs only in how the remainder is
// filled and, for the RWLS finisher, further shrunk.
//
// "Extended" broadens the fill phase to the whole instance instead of
// restricting it to the union of the two parents' selected subsets,
// matching the "extended subproblem including shared points" wording:
// the mandatory seed is still derived from the parents, but the search
// for how to complete coverage is not.
type subproblemOp struct {
	instance   *problem.Instance
	finisher   finisher
	engine     *rwls.Engine
	rwlsBudget rwls.Budget
	extended   bool
}

func (o *subproblemOp) Name() string {
	switch {
	case o.finisher == finisherRandom && !o.extended:
		return "subproblem_random"
	case o.finisher == finisherRandom && o.extended:
		return "extended_subproblem_random"
	case o.finisher == finisherGreedy && !o.extended:
		return "subproblem_greedy"
	case o.finisher == finisherGreedy && o.extended:
		return "extended_subproblem_greedy"
	case o.finisher == finisherRWLS && !o.extended:
		return "subproblem_rwls"
	default:
		return "extended_subproblem_rwls"
	}
}

func (o *subproblemOp) Apply(ctx context.Context, a, b *problem.Solution, rng *rand.Rand) (*problem.Solution, error) {
	union := a.SelectedSubsets.Clone()
	union.Union(b.SelectedSubsets)

	seed := problem.NewSolution(o.instance)
	seed.SelectedSubsets.CopyFrom(mandatorySubsets(o.instance, union))
	seed.ComputeCover()

	var fillAuthorized *bitset.Bitset
	if !o.extended {
		fillAuthorized = union
	}

	var child *problem.Solution
	var err error
	switch o.finisher {
	case finisherRandom:
		if rng == nil {
			return nil, uerrors.New(uerrors.InvalidInput, "crossover: random finisher requires a non-nil rng")
		}
		child, err = greedy.ContinueRandomSolve(rng, o.instance, fillAuthorized, seed)
	case finisherGreedy:
		child, err = greedy.ContinueSolve(o.instance, fillAuthorized, seed)
	case finisherRWLS:
		child, err = greedy.ContinueSolve(o.instance, fillAuthorized, seed)
		if err == nil {
			var report *rwls.Report
			report, err = o.engine.Improve(ctx, child, nil, o.rwlsBudget, rng)
			if err == nil {
				child = report.SolutionFinal
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return child, nil
}

// mandatorySubsets returns the subsets in authorized that are the sole
// coverer, among authorized, of at least one point: removing any one of
// them would make that point uncoverable without adding it back.
func mandatorySubsets(inst *problem.Instance, authorized *bitset.Bitset) *bitset.Bitset {
	mandatory := bitset.New(inst.SubsetsNumber)
	for p := 0; p < inst.PointsNumber; p++ {
		count := 0
		only := -1
		authorized.IterateOnBits(func(i int) bool {
			if !inst.SubsetsPoints[i].Test(p) {
				return true
			}
			count++
			only = i
			return count < 2
		})
		if count == 1 {
			mandatory.Set(only)
		}
	}
	return mandatory
}
