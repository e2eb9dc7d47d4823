// Package shell launches external processes and reports their outcome.
//
// An Executor spawns a program either from an argument vector (no shell is
// involved) or from a single command line handed to /bin/sh -c. It waits
// for the child to exit, forwards the captured stderr and then stdout to an
// OutputSink, and turns a non-zero exit status into an *ExecutionError:
//
//	sink := shell.NewBufferSink()
//	ex := shell.New(shell.WithSink(sink), shell.WithWorkingDirectory("/tmp"))
//	if err := ex.Run([]string{"ls", "-l"}); err != nil {
//		if errors.Is(err, shell.ErrShellCommandFailed) {
//			// ls ran and exited non-zero; its output is already in sink
//		}
//	}
//
// Output is delivered only after the process has exited. There is no
// timeout, no stdin and no environment customization.
package shell
