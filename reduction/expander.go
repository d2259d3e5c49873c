package reduction

import "github.com/ToluPeazy/uscp/problem"

// expander maps a Solution over reduced back onto reduced.Reduction.Parent
// by relabeling every selected reduced subset index to its parent index.
type expander struct {
	reduced *problem.Instance
}

// Expand implements Expander. Expand panics if sigma was not built over
// the exact reduced Instance this expander was returned for, mirroring
// problem.Solution.Assign's own cross-instance panic rather than
// returning an error for what is a caller programming mistake.
func (e *expander) Expand(sigma *problem.Solution) *problem.Solution {
	if sigma.Instance() != e.reduced {
		panic("reduction: solution was not built over the reduced instance this Expander was returned for")
	}

	parent := e.reduced.Reduction.Parent
	out := problem.NewSolution(parent)
	sigma.SelectedSubsets.IterateOnBits(func(i int) bool {
		out.SelectedSubsets.Set(e.reduced.Reduction.SubsetsMapping[i])
		return true
	})
	out.ComputeCover()
	return out
}
