// File: pkg/shell/executor.go
package shell

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
)

// Interpreter is the shell used for single-string command lines.
const Interpreter = "/bin/sh"

var log = newDefaultLogger()

func newDefaultLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	return l
}

// DefaultLogger returns the logger used by executors that were not given
// one. It logs at Warn level unless the caller changes it.
func DefaultLogger() *logrus.Logger {
	return log
}

// Executor runs external commands and routes their output to a sink.
//
// Fields may be changed freely between runs. An Executor is not safe for
// concurrent use.
type Executor struct {
	// WorkingDirectory is where the next child process runs. Empty means
	// the caller's current directory.
	WorkingDirectory string

	// Sink receives the captured output. Nil means a ConsoleSink.
	Sink OutputSink

	// Logger receives debug diagnostics. Nil means DefaultLogger().
	Logger logrus.FieldLogger
}

// Option configures an Executor built by New.
type Option func(*Executor)

// WithWorkingDirectory sets the directory child processes run in.
func WithWorkingDirectory(dir string) Option {
	return func(e *Executor) { e.WorkingDirectory = dir }
}

// WithSink sets the output sink.
func WithSink(sink OutputSink) Option {
	return func(e *Executor) { e.Sink = sink }
}

// WithLogger sets the diagnostics logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Executor) { e.Logger = logger }
}

// New returns an Executor that runs commands in the current working
// directory and prints their output to the console.
func New(opts ...Option) *Executor {
	// On failure the directory stays empty, which exec treats as the
	// current directory anyway.
	wd, _ := os.Getwd()

	e := &Executor{
		WorkingDirectory: wd,
		Sink:             NewConsoleSink(),
		Logger:           log,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunCommand runs commandLine through Interpreter with -c. Shell syntax in
// commandLine is interpreted by the shell, not by this package.
func (e *Executor) RunCommand(commandLine string) error {
	if commandLine == "" {
		return &ExecutionError{Kind: NoArgumentsPassed, Command: commandLine}
	}
	return e.Run([]string{Interpreter, "-c", commandLine})
}

// Run spawns args[0] with args[1:] as its arguments and waits for it to
// exit. Captured stderr is forwarded to the sink before stdout. A non-zero
// exit status is reported as ShellCommandFailed after the output has been
// forwarded.
func (e *Executor) Run(args []string) error {
	command := strings.Join(args, " ")
	if len(args) == 0 || args[0] == "" {
		return &ExecutionError{Kind: NoArgumentsPassed, Command: command}
	}

	logger := e.logger().WithFields(logrus.Fields{
		"command": command,
		"dir":     e.WorkingDirectory,
	})
	logger.Debug("Running command")

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = e.WorkingDirectory
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		logger.WithError(err).Debug("Failed to launch command")
		return &ExecutionError{Kind: LaunchFailed, Command: command, Err: err}
	}
	waitErr := cmd.Wait()

	sink := e.sink()
	e.forward(logger, sink, stderr.Bytes(), Error)
	e.forward(logger, sink, stdout.Bytes(), Standard)

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			logger.WithField("exit_code", exitErr.ExitCode()).Debug("Command exited with non-zero status")
			return &ExecutionError{Kind: ShellCommandFailed, Command: command, ExitCode: exitErr.ExitCode()}
		}
		logger.WithError(waitErr).Debug("Command failed while waiting")
		return &ExecutionError{Kind: ShellCommandFailed, Command: command, ExitCode: -1, Err: waitErr}
	}

	logger.Debug("Command completed")
	return nil
}

// forward passes data to sink unless it is empty or not valid UTF-8.
func (e *Executor) forward(logger logrus.FieldLogger, sink OutputSink, data []byte, channel Channel) {
	if len(data) == 0 {
		return
	}
	if !utf8.Valid(data) {
		logger.WithFields(logrus.Fields{
			"channel": channel.String(),
			"bytes":   len(data),
		}).Debug("Dropping output that is not valid UTF-8")
		return
	}
	sink.Accept(string(data), channel)
}

func (e *Executor) sink() OutputSink {
	if e.Sink == nil {
		return NewConsoleSink()
	}
	return e.Sink
}

func (e *Executor) logger() logrus.FieldLogger {
	if e.Logger == nil {
		return log
	}
	return e.Logger
}
