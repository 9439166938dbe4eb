package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kconf-dev/kconf/internal/config"
	"github.com/kconf-dev/kconf/internal/merge"
	"github.com/spf13/cobra"
)

// diffCmd constructs the `diff` subcommand
func diffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <overrides> <baseconfig>",
		Short: "Show the changes an overrides file would make to a base config.",
		Long: `Show the changes an overrides file would make to a base config.

Reports each configuration key the overrides file would replace in the base config,
and each key that would be appended as new, without emitting a merged configuration.
Override lines identical to their base counterpart are not reported.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ExactArgs(2),
		PreRun: func(cmd *cobra.Command, args []string) {
			parseLoggingFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.NewConfig(cmd, cmd.Flags())
			if conf.NoColor {
				color.NoColor = true
			}

			changes, err := merge.ReportFiles(args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to compare configs: %w", err)
			}

			merge.Render(os.Stdout, changes)
			return nil
		},
	}

	cmd.Flags().Bool("no-color", false, "disable colorized output")

	return cmd
}
