package rwls

import "github.com/ToluPeazy/uscp/internal/uerrors"

func errScoreMismatch(subset int, want, got int64) error {
	return uerrors.Wrapf(uerrors.InternalInvariant,
		"rwls: score invariant violated for subset %d: recomputed %d, tracked %d", subset, want, got)
}

func errInvalidBudget() error {
	return uerrors.New(uerrors.InvalidInput, "rwls: budget must bound steps, duration, or both")
}

func errWeightsLength(got, want int) error {
	return uerrors.Wrapf(uerrors.InvalidInput,
		"rwls: seed weights length %d does not match points number %d", got, want)
}
