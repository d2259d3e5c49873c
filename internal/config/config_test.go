package config_test

import (
	"testing"

	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func newFlagSet(args ...string) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		panic(err)
	}
	return fs
}

func TestLoadAppliesFlagValues(t *testing.T) {
	fs := newFlagSet(
		"--instance_path=/tmp/i.txt",
		"--instance_type=orlibrary",
		"--instance_name=i",
		"--greedy",
		"--rwls",
		"--rwls_steps=1000",
		"--memetic_crossover=subproblem_greedy",
	)

	cfg, err := config.Load(fs)
	require.NoError(t, err)
	require.Equal(t, "/tmp/i.txt", cfg.InstancePath)
	require.Equal(t, config.OrLibrary, cfg.InstanceType)
	require.True(t, cfg.Greedy)
	require.True(t, cfg.RWLS)
	require.Equal(t, 1000, cfg.RWLSSteps)
	require.Equal(t, "subproblem_greedy", cfg.MemeticCrossover)
	require.Equal(t, 1, cfg.Repetitions)
}

func TestLoadRejectsMissingInstanceSelector(t *testing.T) {
	fs := newFlagSet("--greedy")
	_, err := config.Load(fs)
	require.Error(t, err)
}

func TestLoadRejectsMissingMode(t *testing.T) {
	fs := newFlagSet("--instance_path=/tmp/i.txt", "--instance_type=orlibrary")
	_, err := config.Load(fs)
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveRepetitions(t *testing.T) {
	fs := newFlagSet("--instance_path=/tmp/i.txt", "--instance_type=orlibrary", "--greedy", "--repetitions=0")
	_, err := config.Load(fs)
	require.Error(t, err)
}

func TestLoadRejectsGVCPInstanceType(t *testing.T) {
	fs := newFlagSet("--instance_path=/tmp/i.txt", "--instance_type=gvcp", "--greedy")
	_, err := config.Load(fs)
	require.Error(t, err)
}

func TestLoadRejectsUnknownInstanceType(t *testing.T) {
	fs := newFlagSet("--instance_path=/tmp/i.txt", "--instance_type=bogus", "--greedy")
	_, err := config.Load(fs)
	require.Error(t, err)
}

func TestLoadAcceptsInstancesListWithoutPath(t *testing.T) {
	fs := newFlagSet("--instances=a,b,c", "--memetic")
	cfg, err := config.Load(fs)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, cfg.Instances)
}
