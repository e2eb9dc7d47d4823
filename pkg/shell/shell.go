// File: pkg/shell/shell.go
package shell

// Command runs commandLine through Interpreter on a default Executor.
func Command(commandLine string) error {
	return New().RunCommand(commandLine)
}

// CommandWithSink is Command with the output routed to sink.
func CommandWithSink(commandLine string, sink OutputSink) error {
	return New(WithSink(sink)).RunCommand(commandLine)
}

// Exec runs args on a default Executor without a shell.
func Exec(args ...string) error {
	return New().Run(args)
}
