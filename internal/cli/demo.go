package cli

import (
	_ "embed"

	"github.com/spf13/cobra"
)

//go:embed demo.yaml
var demoScenarios []byte

// NewDemoCommand creates the demo command.
func NewDemoCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay the built-in vector and matrix constructions",
		Long: `Replay the built-in constructions: a zero vector of 3, a vector {1,2,3,4},
two 3×4 matrices built from fewer rows than they hold, and a 3×4 matrix
given four rows, which is reported as "cannot initialize matrix".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := ParseScenarios(demoScenarios)
			if err != nil {
				return failWith(ExitInternal, "built-in demo is malformed", err)
			}
			r := &Runner{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr(), Log: rootOpts.logger()}
			_, err = r.RunCases(sf.Cases)
			return err
		},
	}
}
