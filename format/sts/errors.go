package sts

import (
	"github.com/ToluPeazy/uscp/internal/uerrors"
)

func errUnexpectedEOF(what string) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "sts: unexpected end of input reading %s", what)
}

func errInvalidCount(what string, got int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "sts: %s must be positive, got %d", what, got)
}

func errSubsetIndexOutOfRange(index, subsetsNumber int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "sts: subset index %d out of range [1, %d]", index, subsetsNumber)
}
