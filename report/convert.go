package report

import (
	"github.com/ToluPeazy/uscp/greedy"
	"github.com/ToluPeazy/uscp/memetic"
	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
)

// FromSolution builds a JSON-serializable snapshot of s.
func FromSolution(s *problem.Solution) Solution {
	return Solution{
		Instance:        s.Instance().Name,
		SelectedSubsets: s.MarshalIndices(),
		CoverAllPoints:  s.CoverAllPoints,
	}
}

// Load rebuilds a problem.Solution over inst from s. Load returns an
// invalid-input error if any selected index is out of range for inst.
func (s Solution) Load(inst *problem.Instance) (*problem.Solution, error) {
	sol := problem.NewSolution(inst)
	if err := sol.LoadIndices(s.SelectedSubsets); err != nil {
		return nil, errIndexOutOfRange(err)
	}
	return sol, nil
}

// FromGreedyReport builds a JSON-serializable snapshot of r.
func FromGreedyReport(r *greedy.Report) GreedyReport {
	return GreedyReport{
		SolutionFinal: FromSolution(r.SolutionFinal),
		Time:          r.Time,
	}
}

func fromRWLSPosition(p rwls.Position) RWLSPosition {
	return RWLSPosition{Step: p.Step, Time: p.Time}
}

func (p RWLSPosition) toRWLSPosition() rwls.Position {
	return rwls.Position{Step: p.Step, Time: p.Time}
}

// FromRWLSReport builds a JSON-serializable snapshot of r.
func FromRWLSReport(r *rwls.Report) RWLSReport {
	return RWLSReport{
		SolutionInitial: FromSolution(r.SolutionInitial),
		SolutionFinal:   FromSolution(r.SolutionFinal),
		Steps:           r.Steps,
		Time:            r.Time,
		FoundAt:         fromRWLSPosition(r.FoundAt),
	}
}

// FromMemeticConfig builds a JSON-serializable snapshot of c.
func FromMemeticConfig(c memetic.Config) MemeticConfig {
	return MemeticConfig{
		PopulationSize:      c.PopulationSize,
		MemeticTime:         c.MemeticTime,
		RWLSCumulativeSteps: c.RWLSCumulativeSteps,
		RWLSCumulativeTime:  c.RWLSCumulativeTime,
	}
}

// ToMemeticConfig reconstructs a memetic.Config from c.
func (c MemeticConfig) ToMemeticConfig() memetic.Config {
	return memetic.Config{
		PopulationSize:      c.PopulationSize,
		MemeticTime:         c.MemeticTime,
		RWLSCumulativeSteps: c.RWLSCumulativeSteps,
		RWLSCumulativeTime:  c.RWLSCumulativeTime,
	}
}

// FromMemeticReport builds a JSON-serializable snapshot of r.
func FromMemeticReport(r *memetic.Report) MemeticReport {
	return MemeticReport{
		SolutionFinal: FromSolution(r.SolutionFinal),
		FoundAt: MemeticPosition{
			Generation:             r.FoundAt.Generation,
			RWLSCumulativePosition: fromRWLSPosition(r.FoundAt.RWLSCumulativePosition),
			Time:                   r.FoundAt.Time,
		},
		SolveConfig:             FromMemeticConfig(r.SolveConfig),
		CrossoverOperator:       r.CrossoverOperator,
		WeightCrossoverOperator: r.WeightCrossoverOperator,
		Generations:             r.Generations,
	}
}
