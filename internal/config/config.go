package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func init() {
	viper.SetEnvPrefix("KCONF")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// Config holds kconf's runtime settings, resolved from command line flags
// and their environment variable equivalents.
type Config struct {
	// Plan is the path to the YAML plan file consumed by `kconf batch`.
	Plan string
	// OutputDir is the directory against which relative target output
	// paths are resolved.
	OutputDir string
	// NoColor disables colorized report output.
	NoColor bool

	Verbose bool
}

// NewConfig resolves kconf's settings from the given command's flags,
// giving priority to equivalent environment variables where set.
func NewConfig(cmd *cobra.Command, flags *pflag.FlagSet) *Config {
	bindFlags(cmd)

	verbose, _ := flags.GetBool("verbose")

	conf := &Config{Verbose: verbose}

	// Resolve only the flags the invoking command defines; not every
	// subcommand carries the full set.
	if flags.Lookup("plan") != nil {
		conf.Plan = envOrFlagString(flags, "plan")
	}
	if flags.Lookup("output-dir") != nil {
		conf.OutputDir = envOrFlagString(flags, "output-dir")
	}
	if flags.Lookup("no-color") != nil {
		conf.NoColor = envOrFlagBool(flags, "no-color")
	}

	return conf
}

// envOrFlagString returns a string config value set from env var or flag, priority on env var.
func envOrFlagString(flags *pflag.FlagSet, key string) string {
	value, _ := flags.GetString(key)
	if v := viper.GetString(key); v != "" {
		value = v
	}
	return value
}

// envOrFlagBool returns a bool config value set from env var or flag, priority on env var.
func envOrFlagBool(flags *pflag.FlagSet, key string) bool {
	value, _ := flags.GetBool(key)
	if viper.IsSet(key) {
		value = viper.GetBool(key)
	}
	return value
}

// bindFlags ensures that for each flag defined, the equivalent env var is also checked for a value.
func bindFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Environment variables can't have dashes in them, so bind them to their equivalent keys with underscores
		if strings.Contains(f.Name, "-") {
			viper.BindEnv(f.Name, flagToEnvVar(f.Name))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && viper.IsSet(f.Name) {
			val := viper.Get(f.Name)
			slog.Debug("Override detected in environment", "override", f.Name, "value", fmt.Sprintf("%v", val), "env_var", flagToEnvVar(f.Name))
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		}
	})
}

// flagToEnvVar converts command flag name to equivalent environment variable name
func flagToEnvVar(flag string) string {
	envVarSuffix := strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
	return fmt.Sprintf("%s_%s", viper.GetEnvPrefix(), envVarSuffix)
}
