package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fixedgrid/core"
)

// VectorOptions holds flags for the vector command.
type VectorOptions struct {
	*RootOptions
	Size     int
	Values   string
	Truncate bool
}

// NewVectorCommand creates the vector command.
func NewVectorCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VectorOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "vector",
		Short: "Build one fixed-size vector and print it",
		Long: `Build one fixed-size vector and print it.

Example:
  fixeddemo vector --size 3 --values 1,2
  fixeddemo vector --size 2 --values 1,2,3 --truncate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseRow(opts.Values)
			if err != nil {
				return failWith(ExitUsage, "invalid --values", err)
			}
			c := Case{Kind: KindVector, Size: opts.Size, Values: values, Policy: policyFlag(opts.Truncate)}
			r := &Runner{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr(), Log: opts.logger()}
			_, err = r.RunCases([]Case{c})
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Size, "size", 0, "vector capacity N (required)")
	cmd.Flags().StringVar(&opts.Values, "values", "", "comma-separated initial values")
	cmd.Flags().BoolVar(&opts.Truncate, "truncate", false, "drop values beyond the capacity instead of failing")
	_ = cmd.MarkFlagRequired("size")

	return cmd
}

// MatrixOptions holds flags for the matrix command.
type MatrixOptions struct {
	*RootOptions
	Rows     int
	Cols     int
	Data     []string
	Truncate bool
}

// NewMatrixCommand creates the matrix command.
func NewMatrixCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &MatrixOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Build one fixed-size matrix and print it",
		Long: `Build one fixed-size matrix and print it, one line per row.

Each --row flag supplies the next row as comma-separated values.

Example:
  fixeddemo matrix --rows 3 --cols 4 --row 1,1,2 --row 2,2,2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := parseRows(opts.Data)
			if err != nil {
				return failWith(ExitUsage, "invalid --row", err)
			}
			c := Case{Kind: KindMatrix, Rows: opts.Rows, Cols: opts.Cols, Data: data, Policy: policyFlag(opts.Truncate)}
			r := &Runner{Out: cmd.OutOrStdout(), ErrOut: cmd.ErrOrStderr(), Log: opts.logger()}
			_, err = r.RunCases([]Case{c})
			return err
		},
	}

	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "number of rows R (required)")
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "number of columns C (required)")
	cmd.Flags().StringArrayVar(&opts.Data, "row", nil, "comma-separated row values (repeatable)")
	cmd.Flags().BoolVar(&opts.Truncate, "truncate", false, "drop rows/columns beyond the shape instead of failing")
	_ = cmd.MarkFlagRequired("rows")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}

func policyFlag(truncate bool) string {
	if truncate {
		return core.PolicyTruncate.String()
	}
	return core.PolicyStrict.String()
}

// parseRows parses each --row flag. An empty string is an empty row, which
// leaves the destination row at zero.
func parseRows(raw []string) ([][]float64, error) {
	rows := make([][]float64, 0, len(raw))
	for i, s := range raw {
		row, err := parseRow(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// parseRow turns "1,2,3" into floats; "" yields nil.
func parseRow(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		row = append(row, x)
	}
	return row, nil
}
