package config

func validate(cfg *Config) error {
	if len(cfg.Instances) == 0 && cfg.InstancePath == "" {
		return errNoInstanceSelected()
	}
	if !cfg.Greedy && !cfg.RWLS && !cfg.Memetic {
		return errNoModeSelected()
	}
	if cfg.Repetitions <= 0 {
		return errNonPositiveRepetitions(cfg.Repetitions)
	}

	if cfg.InstancePath != "" {
		switch cfg.InstanceType {
		case OrLibrary, OrLibraryRail, STS:
		case GVCP:
			return errGVCPUnsupported()
		default:
			return errUnknownInstanceType(cfg.InstanceType)
		}
	}

	return nil
}
