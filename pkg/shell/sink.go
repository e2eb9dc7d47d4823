// File: pkg/shell/sink.go
package shell

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Channel identifies which of the two process output streams a chunk of
// text came from.
type Channel int

const (
	// Standard is the child's standard output.
	Standard Channel = iota
	// Error is the child's standard error.
	Error
)

func (c Channel) String() string {
	switch c {
	case Standard:
		return "stdout"
	case Error:
		return "stderr"
	default:
		return "unknown"
	}
}

// OutputSink receives captured process output tagged with its channel.
// Implementations must keep the two channels apart.
type OutputSink interface {
	Accept(message string, channel Channel)
}

// SinkFunc adapts an ordinary function to the OutputSink interface.
type SinkFunc func(message string, channel Channel)

// Accept calls f(message, channel).
func (f SinkFunc) Accept(message string, channel Channel) {
	f(message, channel)
}

// ConsoleSink writes output straight through to a pair of writers,
// normally the calling process's own stdout and stderr.
type ConsoleSink struct {
	Stdout io.Writer
	Stderr io.Writer

	// Colorize renders error-channel text in red.
	Colorize bool
}

// NewConsoleSink returns a ConsoleSink bound to os.Stdout and os.Stderr.
// Error text is colored only when stderr is a terminal.
func NewConsoleSink() *ConsoleSink {
	fd := os.Stderr.Fd()
	return &ConsoleSink{
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Colorize: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

// Accept writes message to the writer for channel. Write errors are
// ignored, the same as a failed print would be.
func (s *ConsoleSink) Accept(message string, channel Channel) {
	if channel == Error {
		w := s.Stderr
		if w == nil {
			w = os.Stderr
		}
		if s.Colorize {
			c := color.New(color.FgRed)
			// The writer may not be a terminal even when Colorize is set.
			c.EnableColor()
			c.Fprint(w, message)
			return
		}
		io.WriteString(w, message)
		return
	}

	w := s.Stdout
	if w == nil {
		w = os.Stdout
	}
	io.WriteString(w, message)
}

// BufferSink accumulates output in memory, one buffer per channel, in the
// order it was received. The zero value is ready to use.
type BufferSink struct {
	mu     sync.Mutex
	stdout strings.Builder
	stderr strings.Builder
	called bool
}

// NewBufferSink returns an empty BufferSink.
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Accept appends message to the buffer for channel.
func (s *BufferSink) Accept(message string, channel Channel) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.called = true
	if channel == Error {
		s.stderr.WriteString(message)
		return
	}
	s.stdout.WriteString(message)
}

// Stdout returns everything received on the Standard channel.
func (s *BufferSink) Stdout() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stdout.String()
}

// Stderr returns everything received on the Error channel.
func (s *BufferSink) Stderr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stderr.String()
}

// Called reports whether Accept has been invoked at least once.
func (s *BufferSink) Called() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.called
}

// Reset discards all buffered output.
func (s *BufferSink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stdout.Reset()
	s.stderr.Reset()
	s.called = false
}

// LogSink forwards output to a logrus logger: standard output at Info,
// error output at Warn.
type LogSink struct {
	Logger logrus.FieldLogger
}

// NewLogSink returns a LogSink writing to logger.
func NewLogSink(logger logrus.FieldLogger) *LogSink {
	return &LogSink{Logger: logger}
}

// Accept logs message with a "channel" field. A nil Logger means
// DefaultLogger().
func (s *LogSink) Accept(message string, channel Channel) {
	logger := s.Logger
	if logger == nil {
		logger = DefaultLogger()
	}
	entry := logger.WithField("channel", channel.String())
	text := strings.TrimRight(message, "\n")
	if channel == Error {
		entry.Warn(text)
		return
	}
	entry.Info(text)
}
