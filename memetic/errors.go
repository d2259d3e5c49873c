package memetic

import "github.com/ToluPeazy/uscp/internal/uerrors"

func errPopulationTooSmall(n int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "memetic: population size %d is smaller than 2", n)
}

func errPopulationSizeMismatch(configured, actual int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "memetic: config population size %d does not match population length %d", configured, actual)
}

func errInvalidBudget() error {
	return uerrors.New(uerrors.InvalidInput, "memetic: at least one of RWLSCumulativeSteps or RWLSCumulativeTime must be positive")
}

func errNonCoveringIndividual(index int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "memetic: population individual %d does not cover every point", index)
}

func errWeightsLength(index, got, want int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "memetic: population individual %d has weight vector length %d, want %d", index, got, want)
}
