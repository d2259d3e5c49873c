package main

import (
	"testing"

	"github.com/ToluPeazy/uscp/internal/uerrors"
	"github.com/stretchr/testify/require"
)

func TestExitCodeMapsErrorKinds(t *testing.T) {
	require.Equal(t, exitOK, exitCode(nil))
	require.Equal(t, exitInvalidInput, exitCode(uerrors.New(uerrors.InvalidInput, "bad")))
	require.Equal(t, exitNoSolution, exitCode(uerrors.New(uerrors.NoSolution, "no")))
	require.Equal(t, exitInternalInvariant, exitCode(uerrors.New(uerrors.InternalInvariant, "bug")))
}
