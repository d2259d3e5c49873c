package main

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/ToluPeazy/uscp/report"
	"github.com/stretchr/testify/require"
)

func writeOrlibraryFixture(t *testing.T) string {
	t.Helper()
	src := `4 3
1 1 1
2 1 2
1 2
2 1 3
1 3
`
	path := filepath.Join(t.TempDir(), "fixture.txt")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunGreedyOnlyWritesReport(t *testing.T) {
	instancePath := writeOrlibraryFixture(t)
	outDir := t.TempDir() + string(os.PathSeparator)

	cfg := &config.Config{
		InstancePath: instancePath,
		InstanceType: config.OrLibrary,
		InstanceName: "fixture",
		OutputPrefix: outDir,
		Repetitions:  1,
		Greedy:       true,
	}

	require.NoError(t, Run(context.Background(), cfg))

	data, err := os.ReadFile(outDir + "fixture_greedy_0.json")
	require.NoError(t, err)

	var rep report.GreedyReport
	require.NoError(t, json.Unmarshal(data, &rep))
	require.Equal(t, "fixture", rep.SolutionFinal.Instance)
	require.True(t, rep.SolutionFinal.CoverAllPoints)
}

func TestRunRWLSWritesReport(t *testing.T) {
	instancePath := writeOrlibraryFixture(t)
	outDir := t.TempDir() + string(os.PathSeparator)

	cfg := &config.Config{
		InstancePath: instancePath,
		InstanceType: config.OrLibrary,
		InstanceName: "fixture",
		OutputPrefix: outDir,
		Repetitions:  1,
		RWLS:         true,
		RWLSSteps:    500,
	}

	require.NoError(t, Run(context.Background(), cfg))

	data, err := os.ReadFile(outDir + "fixture_rwls_0.json")
	require.NoError(t, err)

	var rep report.RWLSReport
	require.NoError(t, json.Unmarshal(data, &rep))
	require.True(t, rep.SolutionFinal.CoverAllPoints)
}

func TestRunMemeticWritesReport(t *testing.T) {
	instancePath := writeOrlibraryFixture(t)
	outDir := t.TempDir() + string(os.PathSeparator)

	cfg := &config.Config{
		InstancePath:               instancePath,
		InstanceType:               config.OrLibrary,
		InstanceName:               "fixture",
		OutputPrefix:               outDir,
		Repetitions:                1,
		Memetic:                    true,
		MemeticCrossover:           "identity",
		MemeticWeightCrossover:     "keep",
		MemeticCumulativeRWLSSteps: 2000,
	}

	require.NoError(t, Run(context.Background(), cfg))

	data, err := os.ReadFile(outDir + "fixture_memetic_0.json")
	require.NoError(t, err)

	var rep report.MemeticReport
	require.NoError(t, json.Unmarshal(data, &rep))
	require.True(t, rep.SolutionFinal.CoverAllPoints)
	require.Equal(t, "identity", rep.CrossoverOperator)
}

func TestRunRejectsUnknownCrossoverName(t *testing.T) {
	instancePath := writeOrlibraryFixture(t)
	cfg := &config.Config{
		InstancePath:           instancePath,
		InstanceType:           config.OrLibrary,
		InstanceName:           "fixture",
		OutputPrefix:           t.TempDir() + string(os.PathSeparator),
		Repetitions:            1,
		Memetic:                true,
		MemeticCrossover:       "does_not_exist",
		MemeticWeightCrossover: "keep",
	}

	err := Run(context.Background(), cfg)
	require.Error(t, err)
}
