package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/ToluPeazy/uscp/crossover"
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/ToluPeazy/uscp/internal/metrics"
	"github.com/ToluPeazy/uscp/internal/uerrors"
	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/memetic"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/reduction"
	"github.com/ToluPeazy/uscp/report"
	"github.com/ToluPeazy/uscp/rwls"
	"github.com/ToluPeazy/uscp/wcrossover"
	"go.uber.org/zap"
)

// defaultPopulationSize seeds the memetic driver's population. spec.md's
// CLI surface has no flag for this; original_source/code/solver/src/main.cpp
// does not expose one either, so it is a fixed internal constant.
const defaultPopulationSize = 10

// Run validates cfg's crossover/wcrossover operator names, then loads,
// reduces, and solves every resolved instance target with the requested
// algorithms, writing one JSON report per run under cfg.OutputPrefix.
func Run(ctx context.Context, cfg *config.Config) error {
	if cfg.Memetic {
		if err := validateOperatorNames(cfg); err != nil {
			return err
		}
	}

	targets, err := resolveTargets(cfg)
	if err != nil {
		return err
	}

	rec := metrics.NewRecorder()

	for _, target := range targets {
		if err := solveTarget(ctx, cfg, target, rec); err != nil {
			return err
		}
	}
	return nil
}

func validateOperatorNames(cfg *config.Config) error {
	if !contains(crossover.Names(), cfg.MemeticCrossover) {
		return uerrors.Wrapf(uerrors.InvalidInput, "unknown --memetic_crossover %q", cfg.MemeticCrossover)
	}
	if !contains(wcrossover.Names(), cfg.MemeticWeightCrossover) {
		return uerrors.Wrapf(uerrors.InvalidInput, "unknown --memetic_wcrossover %q", cfg.MemeticWeightCrossover)
	}
	return nil
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func solveTarget(ctx context.Context, cfg *config.Config, target instanceTarget, rec *metrics.Recorder) error {
	inst, err := target.load()
	if err != nil {
		return err
	}
	if target.Name != "" {
		inst.Name = target.Name
	}

	reducer := reduction.NewDominatedReducer()
	reduced, expander, err := reducer.Reduce(inst)
	if err != nil {
		return err
	}
	xlog.Get().Info("instance reduced",
		zap.String("instance", inst.Name),
		zap.Int("points", inst.PointsNumber), zap.Int("reduced_points", reduced.PointsNumber),
		zap.Int("subsets", inst.SubsetsNumber), zap.Int("reduced_subsets", reduced.SubsetsNumber))

	var engine *rwls.Engine
	if cfg.RWLS || cfg.Memetic {
		engine, err = rwls.New(ctx, reduced, rwls.WithMetrics(rec))
		if err != nil {
			return err
		}
	}

	if cfg.Greedy && !cfg.RWLS && !cfg.Memetic {
		if err := runGreedyOnly(reduced, expander, cfg, target); err != nil {
			return err
		}
	}

	if cfg.RWLS {
		for rep := 0; rep < cfg.Repetitions; rep++ {
			if err := runRWLSRepetition(ctx, reduced, expander, engine, cfg, target, rep, rec); err != nil {
				return err
			}
		}
	}

	if cfg.Memetic {
		for rep := 0; rep < cfg.Repetitions; rep++ {
			if err := runMemeticRepetition(ctx, reduced, expander, engine, cfg, target, rep, rec); err != nil {
				return err
			}
		}
	}

	return nil
}

func runGreedyOnly(reduced *problem.Instance, expander reduction.Expander, cfg *config.Config, target instanceTarget) error {
	rep, err := greedy.SolveReport(reduced)
	if err != nil {
		return err
	}
	rep.SolutionFinal = expander.Expand(rep.SolutionFinal)
	return writeReport(cfg, target, "greedy", 0, report.FromGreedyReport(rep))
}

func runRWLSRepetition(ctx context.Context, reduced *problem.Instance, expander reduction.Expander, engine *rwls.Engine, cfg *config.Config, target instanceTarget, rep int, rec *metrics.Recorder) error {
	rng := rand.New(rand.NewSource(int64(rep + 1)))

	seedReport, err := greedy.RandomSolveReport(rng, reduced)
	if err != nil {
		return err
	}

	budget := rwls.Budget{MaxSteps: cfg.RWLSSteps, MaxDuration: cfg.RWLSTime}
	weights := allOnesWeights(reduced.PointsNumber)

	improveReport, err := engine.Improve(ctx, seedReport.SolutionFinal, weights, budget, rng)
	if err != nil {
		return err
	}
	if rec != nil {
		rec.ObserveBestSize(improveReport.SolutionFinal.SelectedSubsets.Count())
	}

	improveReport.SolutionInitial = expander.Expand(improveReport.SolutionInitial)
	improveReport.SolutionFinal = expander.Expand(improveReport.SolutionFinal)
	return writeReport(cfg, target, "rwls", rep, report.FromRWLSReport(improveReport))
}

func runMemeticRepetition(ctx context.Context, reduced *problem.Instance, expander reduction.Expander, engine *rwls.Engine, cfg *config.Config, target instanceTarget, rep int, rec *metrics.Recorder) error {
	rng := rand.New(rand.NewSource(int64(rep + 1)))

	population, err := seedPopulation(rng, reduced, defaultPopulationSize)
	if err != nil {
		return err
	}

	crossoverOp, err := crossover.NewRegistry(reduced, crossover.WithEngine(engine)).Get(cfg.MemeticCrossover)
	if err != nil {
		return err
	}
	weightOp, err := wcrossover.NewRegistry().Get(cfg.MemeticWeightCrossover)
	if err != nil {
		return err
	}

	memeticCfg := memetic.Config{
		PopulationSize:      len(population),
		MemeticTime:         cfg.MemeticTime,
		RWLSCumulativeSteps: cfg.MemeticCumulativeRWLSSteps,
		RWLSCumulativeTime:  cfg.MemeticCumulativeRWLSTime,
	}

	memeticReport, err := memetic.Run(ctx, reduced, population, engine, crossoverOp, weightOp, memeticCfg, rng, memetic.WithMetrics(rec))
	if err != nil {
		return err
	}

	memeticReport.SolutionFinal = expander.Expand(memeticReport.SolutionFinal)
	return writeReport(cfg, target, "memetic", rep, report.FromMemeticReport(memeticReport))
}

func seedPopulation(rng *rand.Rand, inst *problem.Instance, size int) ([]memetic.Individual, error) {
	population := make([]memetic.Individual, size)
	for i := range population {
		sol, err := greedy.RandomSolve(rng, inst)
		if err != nil {
			return nil, err
		}
		population[i] = memetic.Individual{Solution: sol, Weights: allOnesWeights(inst.PointsNumber)}
	}
	return population, nil
}

func allOnesWeights(n int) []int64 {
	w := make([]int64, n)
	for i := range w {
		w[i] = 1
	}
	return w
}

func writeReport(cfg *config.Config, target instanceTarget, phase string, rep int, payload interface{}) error {
	name := target.Name
	if name == "" {
		name = filepath.Base(target.Path)
	}
	path := fmt.Sprintf("%s%s_%s_%d.json", cfg.OutputPrefix, name, phase, rep)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := report.Encode(f, payload); err != nil {
		return uerrors.Wrap(uerrors.InvalidInput, err)
	}
	xlog.Get().Info("report written", zap.String("path", path))
	return nil
}
