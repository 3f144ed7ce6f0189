package cli

import "errors"

// ExitCode is the process status fixeddemo reports. A container that cannot
// be built is a diagnostic, not a failure, and never changes it.
type ExitCode int

const (
	ExitOK       ExitCode = 0
	ExitInternal ExitCode = 1 // broken built-in data or an unclassified error
	ExitUsage    ExitCode = 2 // flag values or scenario file the CLI cannot interpret
)

// codedError tags err with the status main exits with.
type codedError struct {
	code ExitCode
	what string
	err  error
}

func (e *codedError) Error() string { return e.what + ": " + e.err.Error() }

func (e *codedError) Unwrap() error { return e.err }

// failWith wraps err, which must be non-nil, with a context phrase and an exit code.
func failWith(code ExitCode, what string, err error) error {
	return &codedError{code: code, what: what, err: err}
}

// ExitStatus maps an Execute error to a process exit status. Errors without a
// code, cobra's own flag errors included, map to ExitInternal.
func ExitStatus(err error) int {
	if err == nil {
		return int(ExitOK)
	}
	var ce *codedError
	if errors.As(err, &ce) {
		return int(ce.code)
	}
	return int(ExitInternal)
}
