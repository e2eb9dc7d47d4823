// File: pkg/shell/errors.go
package shell

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an ExecutionError.
type ErrorKind int

const (
	// NoArgumentsPassed means the invocation was empty or its executable
	// token was empty. Nothing was spawned.
	NoArgumentsPassed ErrorKind = iota + 1
	// ShellCommandFailed means the child ran to completion and exited
	// with a non-zero status.
	ShellCommandFailed
	// LaunchFailed means the child process could not be created at all.
	LaunchFailed
)

func (k ErrorKind) String() string {
	switch k {
	case NoArgumentsPassed:
		return "no arguments passed"
	case ShellCommandFailed:
		return "shell command failed"
	case LaunchFailed:
		return "launch failed"
	default:
		return "unknown execution error"
	}
}

// Sentinels for use with errors.Is. Any ExecutionError matches the
// sentinel of its kind.
var (
	ErrNoArgumentsPassed  = &ExecutionError{Kind: NoArgumentsPassed}
	ErrShellCommandFailed = &ExecutionError{Kind: ShellCommandFailed}
	ErrLaunchFailed       = &ExecutionError{Kind: LaunchFailed}
)

// ExecutionError is returned by every failing run.
type ExecutionError struct {
	Kind ErrorKind

	// Command is the argument list joined by single spaces, or the raw
	// command line for the single-string form.
	Command string

	// ExitCode is set for ShellCommandFailed.
	ExitCode int

	// Err is the underlying OS error for LaunchFailed.
	Err error
}

func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Command)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Is matches any ExecutionError of the same kind.
func (e *ExecutionError) Is(target error) bool {
	t, ok := target.(*ExecutionError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first ExecutionError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var execErr *ExecutionError
	if errors.As(err, &execErr) {
		return execErr.Kind, true
	}
	return 0, false
}
