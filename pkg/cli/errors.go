package cli

import "errors"

// Process exit codes. Scripts driving topofix branch on these, so the
// mapping is part of the CLI contract.
const (
	// ExitSuccess means the command completed without error.
	ExitSuccess = 0
	// ExitFailure means a generic runtime failure.
	ExitFailure = 1
	// ExitUsage means the command line was invalid.
	ExitUsage = 2
	// ExitInput means a required input file could not be read.
	ExitInput = 3
	// ExitWrite means an output file could not be written.
	ExitWrite = 4
)

// ExitCodeError wraps an error with the process exit code it should
// produce. Command RunE bodies return these; Execute unwraps the code
// at the top of the process.
type ExitCodeError struct {
	Code int
	Err  error
}

func (e *ExitCodeError) Error() string {
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// NewUsageError wraps an error as an invalid-usage failure (exit 2).
func NewUsageError(err error) *ExitCodeError {
	return &ExitCodeError{Code: ExitUsage, Err: err}
}

// NewInputError wraps an error as an unreadable-input failure (exit 3).
func NewInputError(err error) *ExitCodeError {
	return &ExitCodeError{Code: ExitInput, Err: err}
}

// NewWriteError wraps an error as an output-write failure (exit 4).
func NewWriteError(err error) *ExitCodeError {
	return &ExitCodeError{Code: ExitWrite, Err: err}
}

// ExitCode resolves the process exit code for a command error.
// nil maps to ExitSuccess; an ExitCodeError anywhere in the chain
// supplies its code; anything else is a generic failure.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *ExitCodeError
	if errors.As(err, &coded) {
		return coded.Code
	}

	return ExitFailure
}
