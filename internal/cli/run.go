package cli

import (
	"github.com/spf13/cobra"
)

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenarios.yaml>",
		Short: "Build and print every case in a scenario file",
		Long: `Build and print every case listed in a YAML scenario file.

Example file:
  cases:
    - name: partial
      kind: matrix
      rows: 3
      cols: 4
      data: [[1, 1, 2], [2, 2, 2]]
    - kind: vector
      size: 3
      values: [1, 2, 3, 4]
      policy: truncate

Cases that cannot be constructed are reported on stderr and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := rootOpts.logger()
			log.Debug("loading scenarios", "path", args[0])

			sf, err := LoadScenarioFile(args[0])
			if err != nil {
				return failWith(ExitUsage, "invalid scenario file", err)
			}
			r := &Runner{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr(), Log: log}
			_, err = r.RunCases(sf.Cases)
			return err
		},
	}
}
