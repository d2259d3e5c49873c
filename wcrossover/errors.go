package wcrossover

import "github.com/ToluPeazy/uscp/internal/uerrors"

func errUnknownOperator(name string) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "wcrossover: unknown operator %q", name)
}
