package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	version string = "dev"
	commit  string = "dev"
)

var rootLongDesc string = `kconf is a utility for reconciling kernel-style configuration files.

It merges an "overrides" config fragment into a base configuration, where lines take the
form 'CONFIG_<NAME>=<value>' or '# CONFIG_<NAME> is not set'. Override lines win over
base lines carrying the same configuration key, and override keys never seen in the base
are appended to the end of the output.

Batches of merges across several targets (e.g. per-arch kernel flavours) are described
by a YAML plan file, by default 'kconf.yaml' in the current working directory.

Some flags have an environment variable equivalent, such as 'KCONF_PLAN'.
`

// rootCmd constructs kconf's root command, wiring in each of the subcommands.
func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "kconf",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		Short:         "A utility for merging kernel-style configuration files.",
		Long:          rootLongDesc,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "enable verbose logging")

	cmd.AddCommand(mergeCmd())
	cmd.AddCommand(diffCmd())
	cmd.AddCommand(batchCmd())

	return cmd
}

// Execute runs the root command and exits the program if it fails.
func Execute() {
	err := rootCmd().Execute()
	if err != nil {
		slog.Error("Failed to merge configuration", "error", err.Error())
		os.Exit(1)
	}
}

func parseLoggingFlags(flags *pflag.FlagSet) {
	verbose, _ := flags.GetBool("verbose")

	logLevel := new(slog.LevelVar)

	// Set the default log level to "DEBUG" if verbose is specified.
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Setup the TextHandler and ensure our configured logger is the default.
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(h)
	slog.SetDefault(logger)
	logLevel.Set(level)
}
