package cmd

import (
	"fmt"
	"os"

	"github.com/kconf-dev/kconf/internal/merge"
	"github.com/spf13/cobra"
)

const mergeUsage = "kconf merge <overrides> <baseconfig> [arch-label]"

// usageError constructs an error carrying a one-line usage reminder.
func usageError(format string, args ...any) error {
	return fmt.Errorf("%s (usage: %s)", fmt.Sprintf(format, args...), mergeUsage)
}

// mergeCmd constructs the `merge` subcommand
func mergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge <overrides> <baseconfig> [arch-label]",
		Short: "Merge a config overrides file into a base config file.",
		Long: `Merge a config overrides file into a base config file.

Both input files are kernel-style config files. Keyed lines in the overrides file
replace base lines with the same configuration key; override keys never seen in the
base config are appended to the end. All other base lines pass through untouched, in
their original order. The merged configuration is written to stdout.

When an arch label is supplied, the output is tagged with a leading '# <arch-label>'
comment line.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 || len(args) > 3 {
				return usageError("merge requires an overrides file and a base config file")
			}
			return nil
		},
		PreRun: func(cmd *cobra.Command, args []string) {
			parseLoggingFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := merge.CheckInputs(args[0], args[1]); err != nil {
				return usageError("%s", err.Error())
			}

			arch := ""
			if len(args) == 3 {
				arch = args[2]
			}

			return merge.Files(args[0], args[1], arch, os.Stdout)
		},
	}
}
