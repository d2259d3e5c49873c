package main

import "github.com/ToluPeazy/uscp/internal/uerrors"

// Exit codes distinguish why a run failed, per spec.md §7's error kinds.
const (
	exitOK = iota
	exitInvalidInput
	exitNoSolution
	exitInternalInvariant
)

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	switch uerrors.KindOf(err) {
	case uerrors.InvalidInput:
		return exitInvalidInput
	case uerrors.NoSolution:
		return exitNoSolution
	default:
		return exitInternalInvariant
	}
}
