package greedy

import "github.com/ToluPeazy/uscp/problem"

// Expand maps a Report built over a reduced Instance back onto the
// parent Instance, using expand (typically a reduction.Expander's Expand method)
// to translate the final solution. Expand keeps the original Time.
func Expand(r *Report, expand func(*problem.Solution) *problem.Solution) *Report {
	return &Report{
		SolutionFinal: expand(r.SolutionFinal),
		Time:          r.Time,
	}
}
