package main

import (
	"testing"

	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/stretchr/testify/require"
)

func TestResolveTargetsIncludesInstancePath(t *testing.T) {
	cfg := &config.Config{InstancePath: "/tmp/a.txt", InstanceType: config.OrLibrary, InstanceName: "a"}
	targets, err := resolveTargets(cfg)
	require.NoError(t, err)
	require.Len(t, targets, 1)
	require.Equal(t, "/tmp/a.txt", targets[0].Path)
}

func TestResolveTargetsRequiresTypeForInstancesList(t *testing.T) {
	cfg := &config.Config{Instances: []string{"/tmp/a.txt"}}
	_, err := resolveTargets(cfg)
	require.Error(t, err)
}

func TestResolveTargetsCombinesPathAndList(t *testing.T) {
	cfg := &config.Config{
		InstancePath: "/tmp/a.txt",
		InstanceType: config.OrLibrary,
		InstanceName: "a",
		Instances:    []string{"/tmp/b.txt", "/tmp/c.txt"},
	}
	targets, err := resolveTargets(cfg)
	require.NoError(t, err)
	require.Len(t, targets, 3)
}

func TestLoadRejectsGVCP(t *testing.T) {
	target := instanceTarget{Path: "/tmp/x.txt", Type: config.GVCP}
	_, err := target.load()
	require.Error(t, err)
}
