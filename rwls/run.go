package rwls

import (
	"context"
	"math/rand"
	"time"

	"github.com/ToluPeazy/uscp/internal/uerrors"
	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/problem"
	"go.uber.org/zap"
)

// debugAssertEvery bounds how often WithDebugAssertions recomputes every
// subset's score from scratch; every step would dominate runtime.
const debugAssertEvery = 64

// Improve runs the shrink/swap main loop starting from sol, which must
// already cover every point, until budget is exhausted or ctx is
// cancelled. seedWeights may be nil (weights initialize to 1) or a
// vector of length inst.PointsNumber to seed from a crossover.
func (e *Engine) Improve(ctx context.Context, sol *problem.Solution, seedWeights []int64, budget Budget, rng *rand.Rand) (*Report, error) {
	if budget.MaxSteps <= 0 && budget.MaxDuration <= 0 {
		return nil, errInvalidBudget()
	}
	if !sol.CoverAllPoints {
		return nil, uerrors.New(uerrors.InvalidInput, "rwls: initial solution does not cover every point")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	weights := make([]int64, e.problem.PointsNumber)
	if seedWeights == nil {
		for p := range weights {
			weights[p] = 1
		}
	} else {
		if len(seedWeights) != len(weights) {
			return nil, errWeightsLength(len(seedWeights), len(weights))
		}
		copy(weights, seedWeights)
	}

	working := sol.Clone()
	r := newRun(e, working, weights)

	initial := sol.Clone()
	start := time.Now()

	best := working.Clone()
	foundAt := Position{Step: 0, Time: 0}

	step := 0
	for {
		elapsed := time.Since(start)
		if budget.Exceeded(step, elapsed) || ctx.Err() != nil {
			break
		}

		if r.uncoveredPoints.None() {
			if working.SelectedSubsets.Count() < best.SelectedSubsets.Count() || best.SelectedSubsets.None() {
				best = working.Clone()
				foundAt = Position{Step: step, Time: elapsed}
			}
			i := r.selectSubsetToRemoveNoTimestamp()
			if i == -1 {
				break
			}
			r.remove(i)
			r.subsets[i].timestamp = step
			step++
		} else {
			ir := r.selectSwapRemove()
			if ir == -1 {
				break
			}
			r.remove(ir)
			r.subsets[ir].timestamp = step

			p := r.selectUncoveredPoint(rng)
			if p == -1 {
				break
			}
			ia := r.selectSwapAdd(p)
			if ia == -1 {
				xlog.Get().Warn("rwls: no add candidate for uncovered point, accepting stall",
					zap.Int("point", p), zap.Int("step", step))
				step++
				continue
			}
			r.add(ia)
			r.subsets[ia].timestamp = step
			r.tabu.push(ia)

			r.applyWeightUpdate()
			step++
		}

		if e.debugAssertions && step%debugAssertEvery == 0 {
			if err := r.assertScores(); err != nil {
				return nil, err
			}
		}
	}

	working.ComputeCover()
	if working.SelectedSubsets.Count() < best.SelectedSubsets.Count() && working.CoverAllPoints {
		best = working.Clone()
		foundAt = Position{Step: step, Time: time.Since(start)}
	}
	best.ComputeCover()

	if e.metrics != nil {
		for k := 0; k < step; k++ {
			e.metrics.IncStep()
		}
		e.metrics.ObserveBestSize(best.SelectedSubsets.Count())
	}

	return &Report{
		SolutionInitial: initial,
		SolutionFinal:   best,
		Steps:           step,
		Time:            time.Since(start),
		FoundAt:         foundAt,
	}, nil
}
