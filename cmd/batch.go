package cmd

import (
	"fmt"

	"github.com/kconf-dev/kconf/internal/config"
	"github.com/kconf-dev/kconf/internal/plan"
	"github.com/spf13/cobra"
)

// batchCmd constructs the `batch` subcommand
func batchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Merge every target described by a plan file.",
		Long: `Merge every target described by a plan file.

The plan file is a YAML document listing named merge targets. Each target names a base
config, an ordered list of override files (later files win on key collisions), an
optional arch label and an output path. Targets are merged concurrently and each merged
configuration is written to the target's output path.

Relative output paths are resolved against the directory given by '--output-dir'.
Each flag has an environment variable equivalent, such as 'KCONF_PLAN'.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PreRun: func(cmd *cobra.Command, args []string) {
			parseLoggingFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := config.NewConfig(cmd, cmd.Flags())

			batchPlan, err := plan.Load(conf.Plan)
			if err != nil {
				return fmt.Errorf("failed to load plan: %w", err)
			}

			return batchPlan.Execute(conf.OutputDir)
		},
	}

	flags := cmd.Flags()
	flags.StringP("plan", "p", "kconf.yaml", "path to the plan file describing merge targets")
	flags.StringP("output-dir", "d", ".", "directory against which relative target output paths are resolved")

	return cmd
}
