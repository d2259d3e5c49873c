package report

import (
	"github.com/ToluPeazy/uscp/internal/uerrors"
)

func errIndexOutOfRange(err error) error {
	return uerrors.Wrap(uerrors.InvalidInput, err)
}
