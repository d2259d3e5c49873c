package greedy

import "github.com/ToluPeazy/uscp/internal/uerrors"

// errNoSolution classifies a greedy run that found no covering subset
// on some step, per spec.md §4.3's failure case.
func errNoSolution(instanceName string) error {
	return uerrors.Wrapf(uerrors.NoSolution,
		"greedy: no subset increases coverage for instance %q (unsolvable under the given restriction)",
		instanceName)
}
