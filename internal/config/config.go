package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names, exported so cmd/uscp-solve and tests share one vocabulary.
const (
	InstancesKey    = "instances"
	InstanceTypeKey = "instance_type"
	InstancePathKey = "instance_path"
	InstanceNameKey = "instance_name"

	OutputPrefixKey = "output_prefix"
	RepetitionsKey  = "repetitions"

	GreedyKey = "greedy"

	RWLSKey      = "rwls"
	RWLSStepsKey = "rwls_steps"
	RWLSTimeKey  = "rwls_time"

	MemeticKey                    = "memetic"
	MemeticCumulativeRWLSStepsKey = "memetic_cumulative_rwls_steps"
	MemeticCumulativeRWLSTimeKey  = "memetic_cumulative_rwls_time"
	MemeticTimeKey                = "memetic_time"
	MemeticCrossoverKey           = "memetic_crossover"
	MemeticWeightCrossoverKey     = "memetic_wcrossover"

	ConfigFileKey = "config"
)

// InstanceType is the set of instance families cmd/uscp-solve accepts on
// --instance_type. Only OrLibrary, OrLibraryRail and STS have a defined
// grammar; GVCP is accepted and rejected downstream (see DESIGN.md).
type InstanceType string

const (
	OrLibrary     InstanceType = "orlibrary"
	OrLibraryRail InstanceType = "orlibrary_rail"
	STS           InstanceType = "sts"
	GVCP          InstanceType = "gvcp"
)

// Config is the fully-resolved set of flags cmd/uscp-solve runs with,
// after flag/env-var/config-file precedence has been applied by Load.
type Config struct {
	Instances    []string
	InstanceType InstanceType
	InstancePath string
	InstanceName string

	OutputPrefix string
	Repetitions  int

	Greedy bool

	RWLS      bool
	RWLSSteps int
	RWLSTime  time.Duration

	Memetic                    bool
	MemeticCumulativeRWLSSteps int
	MemeticCumulativeRWLSTime  time.Duration
	MemeticTime                time.Duration
	MemeticCrossover           string
	MemeticWeightCrossover     string
}

// RegisterFlags declares every cmd/uscp-solve flag on fs with the
// defaults spec.md §6 implies (nothing runs unless a mode is picked;
// repetitions defaults to a single run).
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice(InstancesKey, nil, "instance files to solve, each read with --instance_type and named by its path")
	fs.String(InstanceTypeKey, "", "instance format: orlibrary, orlibrary_rail, sts, or gvcp")
	fs.String(InstancePathKey, "", "path to a single instance file, used with --instance_type/--instance_name")
	fs.String(InstanceNameKey, "", "name to record for the instance loaded from --instance_path")

	fs.String(OutputPrefixKey, "", "path prefix for written report files")
	fs.Int(RepetitionsKey, 1, "number of independent solving repetitions per instance")

	fs.Bool(GreedyKey, false, "run the deterministic greedy constructor")

	fs.Bool(RWLSKey, false, "run RWLS improvement on the greedy seed")
	fs.Int(RWLSStepsKey, 0, "RWLS step budget (0 = unbounded)")
	fs.Duration(RWLSTimeKey, 0, "RWLS wall-clock budget (0 = unbounded)")

	fs.Bool(MemeticKey, false, "run the memetic driver")
	fs.Int(MemeticCumulativeRWLSStepsKey, 0, "cumulative RWLS step budget across the whole memetic run (0 = unbounded)")
	fs.Duration(MemeticCumulativeRWLSTimeKey, 0, "cumulative RWLS wall-clock budget across the whole memetic run (0 = unbounded)")
	fs.Duration(MemeticTimeKey, 0, "memetic wall-clock budget (0 = unbounded)")
	fs.String(MemeticCrossoverKey, "identity", "crossover.Registry operator name")
	fs.String(MemeticWeightCrossoverKey, "keep", "wcrossover.Registry operator name")

	fs.String(ConfigFileKey, "", "optional config file overriding flag defaults")
}

// Load binds fs to a fresh viper environment (flags, then USCP_-prefixed
// environment variables, then an optional --config file), and decodes the
// result into a Config.
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	v.SetEnvPrefix("uscp")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(ConfigFileKey); path != "" {
		v.SetConfigFile(os.ExpandEnv(path))
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Instances:    v.GetStringSlice(InstancesKey),
		InstanceType: InstanceType(v.GetString(InstanceTypeKey)),
		InstancePath: v.GetString(InstancePathKey),
		InstanceName: v.GetString(InstanceNameKey),

		OutputPrefix: v.GetString(OutputPrefixKey),
		Repetitions:  v.GetInt(RepetitionsKey),

		Greedy: v.GetBool(GreedyKey),

		RWLS:      v.GetBool(RWLSKey),
		RWLSSteps: v.GetInt(RWLSStepsKey),
		RWLSTime:  v.GetDuration(RWLSTimeKey),

		Memetic:                    v.GetBool(MemeticKey),
		MemeticCumulativeRWLSSteps: v.GetInt(MemeticCumulativeRWLSStepsKey),
		MemeticCumulativeRWLSTime:  v.GetDuration(MemeticCumulativeRWLSTimeKey),
		MemeticTime:                v.GetDuration(MemeticTimeKey),
		MemeticCrossover:           v.GetString(MemeticCrossoverKey),
		MemeticWeightCrossover:     v.GetString(MemeticWeightCrossoverKey),
	}

	return cfg, validate(cfg)
}
