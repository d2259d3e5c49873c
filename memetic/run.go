package memetic

import (
	"context"
	"math/rand"
	"time"

	"github.com/ToluPeazy/uscp/crossover"
	"github.com/ToluPeazy/uscp/internal/metrics"
	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
	"github.com/ToluPeazy/uscp/wcrossover"
	"go.uber.org/zap"
)

// Option configures a Run call.
type Option func(*runState)

type runState struct {
	metrics *metrics.Recorder
}

// WithMetrics attaches a Recorder observing generation counts and
// best-size updates. A nil Recorder (the default) disables metrics.
func WithMetrics(m *metrics.Recorder) Option {
	return func(rs *runState) { rs.metrics = m }
}

func validate(inst *problem.Instance, population []Individual, cfg Config) error {
	if len(population) < 2 {
		return errPopulationTooSmall(len(population))
	}
	if cfg.PopulationSize != 0 && cfg.PopulationSize != len(population) {
		return errPopulationSizeMismatch(cfg.PopulationSize, len(population))
	}
	if cfg.RWLSCumulativeSteps <= 0 && cfg.RWLSCumulativeTime <= 0 {
		return errInvalidBudget()
	}
	for idx, ind := range population {
		if !ind.Solution.CoverAllPoints {
			return errNonCoveringIndividual(idx)
		}
		if len(ind.Weights) != inst.PointsNumber {
			return errWeightsLength(idx, len(ind.Weights), inst.PointsNumber)
		}
	}
	return nil
}

// remainingBudget computes the per-call rwls.Budget from what remains of
// the cumulative budget, or ok=false once the cumulative budget is
// exhausted.
func remainingBudget(cfg Config, consumedSteps int, consumedTime time.Duration) (rwls.Budget, bool) {
	var b rwls.Budget
	if cfg.RWLSCumulativeSteps > 0 {
		remain := cfg.RWLSCumulativeSteps - consumedSteps
		if remain <= 0 {
			return rwls.Budget{}, false
		}
		b.MaxSteps = remain
	}
	if cfg.RWLSCumulativeTime > 0 {
		remain := cfg.RWLSCumulativeTime - consumedTime
		if remain <= 0 {
			return rwls.Budget{}, false
		}
		b.MaxDuration = remain
	}
	return b, true
}

// Run drives the memetic search described by cfg over population,
// mutating population in place (worst-replace insertion) and returning
// a Report of the best solution ever seen.
//
// Each generation runs the crossover operator once to produce a child
// solution, then runs the weight-crossover operator's two entry points
// to produce two weight vectors; the child is cloned and improved once
// per weight vector, giving the "child and alternate child" pairing the
// weight-crossover table describes, and each improved offspring is
// inserted into the population independently.
func Run(ctx context.Context, inst *problem.Instance, population []Individual, engine *rwls.Engine, crossoverOp crossover.Operator, weightOp wcrossover.Operator, cfg Config, rng *rand.Rand, opts ...Option) (*Report, error) {
	if err := validate(inst, population, cfg); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	rs := &runState{}
	for _, opt := range opts {
		opt(rs)
	}

	start := time.Now()
	best := population[bestIndex(population)].Solution.Clone()
	foundAt := Position{}

	var consumedSteps int
	var consumedTime time.Duration
	generation := 0

	for {
		if cfg.MemeticTime > 0 && time.Since(start) >= cfg.MemeticTime {
			break
		}
		if ctx.Err() != nil {
			break
		}
		if _, ok := remainingBudget(cfg, consumedSteps, consumedTime); !ok {
			break
		}

		ia, ib := selectParents(rng, len(population))
		parentA, parentB := population[ia], population[ib]

		child, err := crossoverOp.Apply(ctx, parentA.Solution, parentB.Solution, rng)
		if err != nil {
			return nil, err
		}

		weightVectors := [][]int64{
			weightOp.Apply1(parentA.Weights, parentB.Weights, rng),
			weightOp.Apply2(parentA.Weights, parentB.Weights, rng),
		}

		for _, w := range weightVectors {
			if cfg.MemeticTime > 0 && time.Since(start) >= cfg.MemeticTime {
				break
			}
			callBudget, ok := remainingBudget(cfg, consumedSteps, consumedTime)
			if !ok {
				break
			}

			report, err := engine.Improve(ctx, child.Clone(), w, callBudget, rng)
			if err != nil {
				return nil, err
			}
			consumedSteps += report.Steps
			consumedTime += report.Time

			offspring := Individual{Solution: report.SolutionFinal, Weights: w}
			population[worstIndex(population)] = offspring

			if offspring.Solution.SelectedSubsets.Count() < best.SelectedSubsets.Count() {
				best = offspring.Solution.Clone()
				foundAt = Position{
					Generation:             generation,
					RWLSCumulativePosition: rwls.Position{Step: consumedSteps, Time: consumedTime},
					Time:                   time.Since(start),
				}
				if rs.metrics != nil {
					rs.metrics.ObserveBestSize(best.SelectedSubsets.Count())
				}
			}
		}

		if rs.metrics != nil {
			rs.metrics.IncStep()
		}
		generation++
	}

	xlog.Get().Info("memetic: run finished",
		zap.Int("generations", generation),
		zap.Int("consumed_steps", consumedSteps),
		zap.Duration("consumed_time", consumedTime),
		zap.Int("best_size", best.SelectedSubsets.Count()))

	return &Report{
		SolutionFinal:           best,
		FoundAt:                 foundAt,
		SolveConfig:             cfg,
		CrossoverOperator:       crossoverOp.Name(),
		WeightCrossoverOperator: weightOp.Name(),
		Generations:             generation,
	}, nil
}
