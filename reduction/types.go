package reduction

import "github.com/ToluPeazy/uscp/problem"

// Reducer produces a reduced Instance plus an Expander that maps a
// covering Solution on that reduced Instance back to a covering
// Solution on the original. The core never inspects how a Reducer
// arrives at its reduced Instance.
type Reducer interface {
	Reduce(inst *problem.Instance) (*problem.Instance, Expander, error)
}

// Expander maps a Solution over a reduced Instance back to a Solution
// over the Instance it was reduced from. |Expand(sigma')| == |sigma'|:
// expansion only relabels selected subset indices, it never adds or
// removes a selection.
type Expander interface {
	Expand(reduced *problem.Solution) *problem.Solution
}
