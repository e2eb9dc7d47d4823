// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// File: root.go
// Package: cmd
//
// Description:
// This file contains the entry point for the `cbshell` CLI. The root command
// takes its own argument vector and hands it, untouched, to a shell.Executor:
// the first argument is the program to run and the rest are its arguments.
//
// Features:
// - No flags and no help text: every argument, including ones that look
//   like flags, is forwarded verbatim.
// - The child's stderr and stdout are printed after it exits.
// - Exits with status 1 if the command cannot be run or exits non-zero.
//
// Usage:
// - Run a program directly:
//   `./cbshell ls -l /tmp`
// - Set CBSHELL_DEBUG=1 to log each invocation to stderr.
//
// Authors:
// - Cloudberry Open Source Contributors

package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/edespino/cbshell/pkg/shell"
)

// debugEnv enables debug logging of invocations when set to a non-empty value.
const debugEnv = "CBSHELL_DEBUG"

// rootCmd forwards all of its arguments to the commander. Flag parsing is
// disabled so that arguments such as `-l` reach the child process.
var rootCmd = &cobra.Command{
	Use:                "cbshell program [args...]",
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if args == nil {
			args = []string{}
		}
		return cmdExecutor.Run(args)
	},
}

// Execute runs the root command with the process arguments and exits with
// status 1 on any failure. This function is called by main.main().
func Execute() {
	if err := ExecuteArgs(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// ExecuteArgs runs the root command with args in place of the process
// arguments and returns the commander's error.
func ExecuteArgs(args []string) error {
	configureLogging()
	if args == nil {
		args = []string{}
	}

	var err error
	if isCompletionRequest(args) {
		// cobra would answer these itself through its hidden completion
		// commands instead of running them.
		err = cmdExecutor.Run(args)
	} else {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	}
	if err != nil {
		shell.DefaultLogger().WithError(err).Debug("Command failed")
	}
	return err
}

// isCompletionRequest reports whether args name one of cobra's hidden
// shell-completion commands.
func isCompletionRequest(args []string) bool {
	if len(args) == 0 {
		return false
	}
	return args[0] == cobra.ShellCompRequestCmd || args[0] == cobra.ShellCompNoDescRequestCmd
}

// configureLogging raises the shell package's logger to debug level when
// CBSHELL_DEBUG is set.
func configureLogging() {
	if os.Getenv(debugEnv) != "" {
		shell.DefaultLogger().SetLevel(logrus.DebugLevel)
	}
}
