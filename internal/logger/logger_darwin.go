//go:build darwin

package logger

import (
	"os"
	"path/filepath"
)

// getLogDir returns ~/Library/Application Support/Build Status/, which stays
// writable when the binary runs from a signed .app bundle.
func getLogDir() string {
	home, err := os.UserHomeDir()
	if err == nil {
		return filepath.Join(home, "Library", "Application Support", "Build Status")
	}

	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}
