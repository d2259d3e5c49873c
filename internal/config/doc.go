// Package config loads cmd/uscp-solve's CLI configuration through
// github.com/spf13/viper layered over the command's own
// github.com/spf13/pflag flag set, so every flag is also settable via
// environment variable or an optional --config file, following the
// bind-flags-then-optionally-read-a-config-file shape used across the
// pack's own CLI configuration loaders.
package config
