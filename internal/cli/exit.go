package cli

import (
	"errors"
)

// Exit codes
const (
	ExitSuccess     = 0
	ExitUserError   = 1 // bad input, usage or configuration
	ExitSystemError = 2 // I/O and environment failures
)

// SystemError marks a failure that is not caused by what the user passed.
type SystemError struct {
	Err error
}

// NewSystemError wraps err as a SystemError. A nil err stays nil.
func NewSystemError(err error) error {
	if err == nil {
		return nil
	}
	return &SystemError{Err: err}
}

func (e *SystemError) Error() string {
	return e.Err.Error()
}

func (e *SystemError) Unwrap() error {
	return e.Err
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var sysErr *SystemError
	if errors.As(err, &sysErr) {
		return ExitSystemError
	}
	return ExitUserError
}
