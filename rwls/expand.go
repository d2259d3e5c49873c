package rwls

import "github.com/ToluPeazy/uscp/problem"

// Expand maps a Report built over a reduced Instance back onto the
// parent Instance, translating both SolutionInitial and SolutionFinal
// with expand (typically a reduction.Expander's Expand method). Steps,
// Time and
// FoundAt carry over unchanged.
func Expand(r *Report, expand func(*problem.Solution) *problem.Solution) *Report {
	return &Report{
		SolutionInitial: expand(r.SolutionInitial),
		SolutionFinal:   expand(r.SolutionFinal),
		Steps:           r.Steps,
		Time:            r.Time,
		FoundAt:         r.FoundAt,
	}
}
