package crossover

import "github.com/ToluPeazy/uscp/internal/uerrors"

func errUnknownOperator(name string) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "crossover: unknown operator %q", name)
}

func errEngineRequired(name string) error {
	return uerrors.Wrapf(uerrors.InvalidInput,
		"crossover: operator %q requires an rwls.Engine, none wired via WithEngine", name)
}
