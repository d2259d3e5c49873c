package greedy

import (
	"math/rand"
	"time"

	"github.com/ToluPeazy/uscp/bitset"
	"github.com/ToluPeazy/uscp/internal/xlog"
	"github.com/ToluPeazy/uscp/problem"
	"go.uber.org/zap"
)

// construct runs the shared greedy inner loop: repeatedly add the best
// unselected, authorized candidate under tie until the solution covers
// every point. authorized may be nil, meaning every subset is eligible.
// seed may be nil (start from the empty solution) or an already-partial
// solution to continue from, as crossover operators do when they seed a
// child with subsets carried over from its parents.
func construct(inst *problem.Instance, authorized *bitset.Bitset, tie tieBreak, rng *rand.Rand, seed *problem.Solution) (*problem.Solution, error) {
	var sol *problem.Solution
	if seed != nil {
		sol = seed.Clone()
		sol.ComputeCover()
	} else {
		sol = problem.NewSolution(inst)
	}

	for !sol.CoverAllPoints {
		bestIdx := -1
		bestCount := sol.CoveredPoints.Count()
		var bestCovered *bitset.Bitset
		equalCount := 0

		for i := 0; i < inst.SubsetsNumber; i++ {
			if authorized != nil && !authorized.Test(i) {
				continue
			}
			if sol.SelectedSubsets.Test(i) {
				continue
			}

			candidate := sol.CoveredPoints.Clone()
			candidate.Union(inst.SubsetsPoints[i])
			newCount := candidate.Count()

			switch tie {
			case tieStrict:
				if newCount > bestCount {
					bestIdx, bestCount, bestCovered = i, newCount, candidate
				}
			case tieNonStrict:
				if newCount >= bestCount {
					bestIdx, bestCount, bestCovered = i, newCount, candidate
				}
			case tieRandom:
				if newCount > bestCount {
					bestIdx, bestCount, bestCovered = i, newCount, candidate
					equalCount = 1
				} else if newCount == bestCount {
					equalCount++
					if rng.Float64() < 1.0/float64(equalCount) {
						bestIdx, bestCovered = i, candidate
					}
				}
			}
		}

		if bestIdx == -1 {
			return nil, errNoSolution(inst.Name)
		}

		sol.SelectedSubsets.Set(bestIdx)
		sol.CoveredPoints = bestCovered
		sol.CoverAllPoints = sol.CoveredPoints.All()
	}

	sol.ComputeCover()
	return sol, nil
}

func solveReport(inst *problem.Instance, authorized *bitset.Bitset, tie tieBreak, rng *rand.Rand, seed *problem.Solution) (*Report, error) {
	start := time.Now()
	sol, err := construct(inst, authorized, tie, rng, seed)
	elapsed := time.Since(start)
	if err != nil {
		xlog.Get().Warn("greedy construction failed", zap.String("instance", inst.Name), zap.Error(err))
		return nil, err
	}
	xlog.Get().Debug("greedy solution built",
		zap.String("instance", inst.Name),
		zap.Int("subsets", sol.SelectedSubsets.Count()),
		zap.Duration("elapsed", elapsed))
	return &Report{SolutionFinal: sol, Time: elapsed}, nil
}

// Solve builds a covering solution with the deterministic strict
// tie-break: accept only strict improvements, first index wins ties.
func Solve(inst *problem.Instance) (*problem.Solution, error) {
	r, err := SolveReport(inst)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// SolveReport is Solve, returning the full Report.
func SolveReport(inst *problem.Instance) (*Report, error) {
	return solveReport(inst, nil, tieStrict, nil, nil)
}

// RSolve builds a covering solution with the deterministic non-strict
// tie-break: accept >= improvements, last index wins ties.
func RSolve(inst *problem.Instance) (*problem.Solution, error) {
	r, err := RSolveReport(inst)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// RSolveReport is RSolve, returning the full Report.
func RSolveReport(inst *problem.Instance) (*Report, error) {
	return solveReport(inst, nil, tieNonStrict, nil, nil)
}

// RandomSolve builds a covering solution using reservoir-random
// tie-breaking: uniform choice among candidates tied for the best gain.
func RandomSolve(rng *rand.Rand, inst *problem.Instance) (*problem.Solution, error) {
	r, err := RandomSolveReport(rng, inst)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// RandomSolveReport is RandomSolve, returning the full Report.
func RandomSolveReport(rng *rand.Rand, inst *problem.Instance) (*Report, error) {
	return solveReport(inst, nil, tieRandom, rng, nil)
}

// RestrictedSolve is Solve, restricted to the subsets marked in authorized.
func RestrictedSolve(inst *problem.Instance, authorized *bitset.Bitset) (*problem.Solution, error) {
	r, err := RestrictedSolveReport(inst, authorized)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// RestrictedSolveReport is RestrictedSolve, returning the full Report.
func RestrictedSolveReport(inst *problem.Instance, authorized *bitset.Bitset) (*Report, error) {
	return solveReport(inst, authorized, tieStrict, nil, nil)
}

// RestrictedRSolve is RSolve, restricted to the subsets marked in authorized.
func RestrictedRSolve(inst *problem.Instance, authorized *bitset.Bitset) (*problem.Solution, error) {
	r, err := RestrictedRSolveReport(inst, authorized)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// RestrictedRSolveReport is RestrictedRSolve, returning the full Report.
func RestrictedRSolveReport(inst *problem.Instance, authorized *bitset.Bitset) (*Report, error) {
	return solveReport(inst, authorized, tieNonStrict, nil, nil)
}

// RestrictedRandomSolve is RandomSolve, restricted to the subsets marked
// in authorized.
func RestrictedRandomSolve(rng *rand.Rand, inst *problem.Instance, authorized *bitset.Bitset) (*problem.Solution, error) {
	r, err := RestrictedRandomSolveReport(rng, inst, authorized)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// RestrictedRandomSolveReport is RestrictedRandomSolve, returning the
// full Report.
func RestrictedRandomSolveReport(rng *rand.Rand, inst *problem.Instance, authorized *bitset.Bitset) (*Report, error) {
	return solveReport(inst, authorized, tieRandom, rng, nil)
}

// ContinueSolve is RestrictedSolve, but starts from seed instead of the
// empty solution. Crossover operators use it to fill in a child solution
// around subsets already carried over from its parents.
func ContinueSolve(inst *problem.Instance, authorized *bitset.Bitset, seed *problem.Solution) (*problem.Solution, error) {
	r, err := solveReport(inst, authorized, tieStrict, nil, seed)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}

// ContinueRandomSolve is RestrictedRandomSolve, but starts from seed
// instead of the empty solution.
func ContinueRandomSolve(rng *rand.Rand, inst *problem.Instance, authorized *bitset.Bitset, seed *problem.Solution) (*problem.Solution, error) {
	r, err := solveReport(inst, authorized, tieRandom, rng, seed)
	if err != nil {
		return nil, err
	}
	return r.SolutionFinal, nil
}
