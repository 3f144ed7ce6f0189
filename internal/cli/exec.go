package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/fixedgrid/matrix"
	"github.com/katalvlaran/fixedgrid/render"
	"github.com/katalvlaran/fixedgrid/vector"
)

// Runner builds cases and prints them. Dumps go to Out; construction
// diagnostics go to ErrOut.
type Runner struct {
	Out    io.Writer
	ErrOut io.Writer
	Log    *slog.Logger
}

// RunCases processes cases in order and reports how many failed to construct.
// A construction failure is reported and skipped; only write errors on Out
// abort the run.
func (r *Runner) RunCases(cases []Case) (failed int, err error) {
	for i, c := range cases {
		ok, err := r.runCase(c)
		if err != nil {
			return failed, fmt.Errorf("case %d (%q): %w", i, c.Name, err)
		}
		if !ok {
			failed++
		}
	}
	r.Log.Debug("cases processed", "total", len(cases), "failed", failed)
	return failed, nil
}

// runCase returns ok=false when the container could not be built.
func (r *Runner) runCase(c Case) (bool, error) {
	var (
		dump func(io.Writer) error
		err  error
	)
	switch c.Kind {
	case KindVector:
		var v *vector.Vector[float64]
		v, err = vector.New(c.Size, c.Values, c.options()...)
		if err == nil {
			dump = func(w io.Writer) error { return render.Vector[float64](w, v) }
		}
	case KindMatrix:
		var m *matrix.Matrix[float64]
		m, err = matrix.New(c.Rows, c.Cols, c.Data, c.options()...)
		if err == nil {
			dump = func(w io.Writer) error { return render.Matrix[float64](w, m) }
		}
	default:
		return false, fmt.Errorf("unknown kind %q", c.Kind)
	}

	if err != nil {
		r.Log.Debug("construction failed", "case", c.Name, "kind", c.Kind, "error", err)
		fmt.Fprintf(r.ErrOut, "cannot initialize %s\n", c.Kind)
		return false, nil
	}
	r.Log.Debug("constructed", "case", c.Name, "kind", c.Kind)

	if c.Name != "" {
		if _, err := fmt.Fprintln(r.Out, c.Name); err != nil {
			return true, err
		}
	}
	if err := dump(r.Out); err != nil {
		return true, err
	}
	if c.Name != "" {
		if _, err := fmt.Fprintln(r.Out); err != nil {
			return true, err
		}
	}
	return true, nil
}
