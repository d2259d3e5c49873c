package config

import (
	"github.com/ToluPeazy/uscp/internal/uerrors"
)

func errNoInstanceSelected() error {
	return uerrors.New(uerrors.InvalidInput, "config: one of --instances or --instance_path/--instance_type/--instance_name must be set")
}

func errNoModeSelected() error {
	return uerrors.New(uerrors.InvalidInput, "config: at least one of --greedy, --rwls, --memetic must be set")
}

func errNonPositiveRepetitions(got int) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "config: --repetitions must be positive, got %d", got)
}

func errUnknownInstanceType(got InstanceType) error {
	return uerrors.Wrapf(uerrors.InvalidInput, "config: unknown --instance_type %q", got)
}

func errGVCPUnsupported() error {
	return uerrors.New(uerrors.InvalidInput, "config: gvcp instances are not supported by this build")
}
