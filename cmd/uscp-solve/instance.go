package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ToluPeazy/uscp/format/orlibrary"
	"github.com/ToluPeazy/uscp/format/sts"
	"github.com/ToluPeazy/uscp/internal/config"
	"github.com/ToluPeazy/uscp/internal/uerrors"
	"github.com/ToluPeazy/uscp/problem"
)

// instanceTarget is one instance file this run resolves and solves.
type instanceTarget struct {
	Path string
	Type config.InstanceType
	Name string
}

func resolveTargets(cfg *config.Config) ([]instanceTarget, error) {
	var targets []instanceTarget

	if cfg.InstancePath != "" {
		targets = append(targets, instanceTarget{
			Path: cfg.InstancePath,
			Type: cfg.InstanceType,
			Name: cfg.InstanceName,
		})
	}

	for _, path := range cfg.Instances {
		if cfg.InstanceType == "" {
			return nil, uerrors.New(uerrors.InvalidInput, "config: --instance_type is required when --instances is set")
		}
		targets = append(targets, instanceTarget{
			Path: path,
			Type: cfg.InstanceType,
			Name: path,
		})
	}

	return targets, nil
}

func (t instanceTarget) load() (*problem.Instance, error) {
	switch t.Type {
	case config.OrLibrary:
		return orlibrary.ReadFile(t.Path)
	case config.OrLibraryRail:
		f, err := os.Open(t.Path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		name := t.Name
		if name == "" {
			base := filepath.Base(t.Path)
			name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		return orlibrary.ReadRail(f, name)
	case config.STS:
		return sts.ReadFile(t.Path)
	case config.GVCP:
		return nil, uerrors.New(uerrors.InvalidInput, "gvcp instances are not supported by this build")
	default:
		return nil, uerrors.Wrapf(uerrors.InvalidInput, "unknown instance type %q", t.Type)
	}
}
