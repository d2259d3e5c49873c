package crossover

import (
	"context"
	"math/rand"

	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/problem"
)

type identityOp struct{}

func (o *identityOp) Name() string { return "identity" }

func (o *identityOp) Apply(_ context.Context, a, _ *problem.Solution, _ *rand.Rand) (*problem.Solution, error) {
	return a.Clone(), nil
}

type mergeOp struct{}

func (o *mergeOp) Name() string { return "merge" }

func (o *mergeOp) Apply(_ context.Context, a, b *problem.Solution, _ *rand.Rand) (*problem.Solution, error) {
	child := a.Clone()
	child.SelectedSubsets.Union(b.SelectedSubsets)
	child.ComputeCover()
	return child, nil
}

type greedyMergeOp struct {
	instance *problem.Instance
}

func (o *greedyMergeOp) Name() string { return "greedy_merge" }

func (o *greedyMergeOp) Apply(_ context.Context, a, b *problem.Solution, _ *rand.Rand) (*problem.Solution, error) {
	authorized := a.SelectedSubsets.Clone()
	authorized.Union(b.SelectedSubsets)
	return greedy.RestrictedSolve(o.instance, authorized)
}
