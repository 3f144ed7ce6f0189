package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool

	// Logger is set up in PersistentPreRunE from Verbose; commands log
	// progress at debug level only.
	Logger *slog.Logger
}

// NewRootCommand creates the root command for the fixeddemo CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "fixeddemo",
		Short: "Fixed-size vector and matrix demonstrations",
		Long: `Build fixed-size vectors and matrices from literal data and print them.

Construction failures (too many values, rows or columns) are reported on
stderr as "cannot initialize <kind>" and processing continues.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewDemoCommand(opts))
	cmd.AddCommand(NewVectorCommand(opts))
	cmd.AddCommand(NewMatrixCommand(opts))
	cmd.AddCommand(NewRunCommand(opts))

	return cmd
}

// newLogger builds a text slog handler; debug level when verbose, warn otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// logger returns opts.Logger, falling back to slog.Default for commands
// executed without the root's PersistentPreRunE.
func (o *RootOptions) logger() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
