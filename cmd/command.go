// File: cmd/command.go
package cmd

import (
	"github.com/edespino/cbshell/pkg/shell"
)

// Commander runs a forwarded argument vector
type Commander interface {
	Run(args []string) error
}

// RealCommander runs the arguments on a default shell.Executor, built per
// call so the working directory is read at run time
type RealCommander struct{}

func (c RealCommander) Run(args []string) error {
	return shell.New().Run(args)
}

// Default commander instance
var cmdExecutor Commander = RealCommander{}

// SetCommander allows changing the commander for tests
func SetCommander(c Commander) {
	cmdExecutor = c
}
