package orlibrary

import (
	"github.com/ToluPeazy/uscp/internal/uerrors"
)

func errUnexpectedEOF(what string) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "orlibrary: unexpected end of input reading %s", what)
}

func errInvalidCount(what string, got int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "orlibrary: %s must be positive, got %d", what, got)
}

func errInvalidCoveringCount(point, got, subsetsNumber int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "orlibrary: point %d covering count %d out of range [0, %d]", point, got, subsetsNumber)
}

func errSubsetIndexOutOfRange(index, subsetsNumber int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "orlibrary: subset index %d out of range [1, %d]", index, subsetsNumber)
}

func errFileExists(path string) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "orlibrary: file %q already exists", path)
}
