package memetic

import (
	"time"

	"github.com/ToluPeazy/uscp/problem"
	"github.com/ToluPeazy/uscp/rwls"
)

// Individual is one member of the memetic population: a candidate
// solution paired with the RWLS weight vector it carries between
// generations.
type Individual struct {
	Solution *problem.Solution
	Weights  []int64
}

// Config bounds one Run call. At least one of RWLSCumulativeSteps and
// RWLSCumulativeTime must be positive; MemeticTime is an independent
// wall-clock ceiling on the whole run.
type Config struct {
	// PopulationSize records the population length for the report; Run
	// validates it matches the population slice it is given.
	PopulationSize int

	// MemeticTime bounds the whole run's wall-clock duration. Zero means
	// unbounded by time (the cumulative RWLS budget must then be what
	// stops the run).
	MemeticTime time.Duration

	// RWLSCumulativeSteps caps the total number of RWLS steps spent
	// across every child improvement in this run. Zero means unbounded
	// by steps.
	RWLSCumulativeSteps int

	// RWLSCumulativeTime caps the total wall-clock time spent inside
	// rwls.Engine.Improve calls across this run. Zero means unbounded by
	// RWLS time.
	RWLSCumulativeTime time.Duration
}

// Position records where in the run the best-ever solution was found:
// the generation, the cumulative RWLS consumption at that moment, and
// the memetic wall-clock time elapsed.
type Position struct {
	Generation             int
	RWLSCumulativePosition rwls.Position
	Time                   time.Duration
}

// Report carries the outcome of one Run call.
type Report struct {
	SolutionFinal           *problem.Solution
	FoundAt                 Position
	SolveConfig             Config
	CrossoverOperator       string
	WeightCrossoverOperator string
	Generations             int
}
