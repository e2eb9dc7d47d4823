// File: pkg/shell/file.go
package shell

import "os"

// WriteFile writes text to path, creating or truncating it. The write is
// not atomic and filesystem errors are returned as-is.
func WriteFile(path, text string) error {
	return os.WriteFile(path, []byte(text), 0644)
}
