package main

import "fmt"

// Exit codes for the carbonviz CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Invalid arguments, flags or unreadable input files.
	ExitDataError   = 2 // Input was read but could not be processed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
	err  error
}

func (e *exitCodeError) Error() string { return e.msg }

// Unwrap returns the underlying error, if any.
func (e *exitCodeError) Unwrap() error { return e.err }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError with a formatted message.
func exitError(code int, format string, args ...any) *exitCodeError {
	return &exitCodeError{code: code, msg: fmt.Sprintf(format, args...)}
}

// dataError wraps err as an ExitDataError, keeping it reachable by errors.Is.
func dataError(err error, format string, args ...any) *exitCodeError {
	return &exitCodeError{
		code: ExitDataError,
		msg:  fmt.Sprintf(format, args...) + ": " + err.Error(),
		err:  err,
	}
}
