// File: pkg/shell/shell_test.go
package shell

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandWithSink(t *testing.T) {
	sink := NewBufferSink()

	require.NoError(t, CommandWithSink("echo hello && echo there >&2", sink))
	assert.Equal(t, "hello\n", sink.Stdout())
	assert.Equal(t, "there\n", sink.Stderr())
}

func TestCommandWithSinkFailure(t *testing.T) {
	sink := NewBufferSink()

	err := CommandWithSink("echo partial; exit 7", sink)
	assert.ErrorIs(t, err, ErrShellCommandFailed)
	assert.Equal(t, "partial\n", sink.Stdout())

	var execErr *ExecutionError
	require.ErrorAs(t, err, &execErr)
	assert.Equal(t, 7, execErr.ExitCode)
}

func TestCommand(t *testing.T) {
	assert.NoError(t, Command("true"))
	assert.ErrorIs(t, Command("false"), ErrShellCommandFailed)
	assert.ErrorIs(t, Command(""), ErrNoArgumentsPassed)
}

func TestExec(t *testing.T) {
	assert.NoError(t, Exec("true"))
	assert.ErrorIs(t, Exec(), ErrNoArgumentsPassed)
	assert.ErrorIs(t, Exec("false"), ErrShellCommandFailed)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")

	require.NoError(t, WriteFile(path, "first ✓\n"))
	require.NoError(t, WriteFile(path, "second"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	err = WriteFile(filepath.Join(dir, "missing", "note.txt"), "x")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
