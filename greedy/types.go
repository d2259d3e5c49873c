package greedy

import (
	"time"

	"github.com/ToluPeazy/uscp/problem"
)

// Report wraps a greedy-constructed Solution with its build time.
type Report struct {
	// SolutionFinal is the covering solution built by the constructor.
	SolutionFinal *problem.Solution
	// Time is the wall-clock duration the construction took.
	Time time.Duration
}

// tieBreak selects among the three greedy acceptance rules described in
// spec.md §4.3.
type tieBreak int

const (
	tieStrict tieBreak = iota
	tieNonStrict
	tieRandom
)
