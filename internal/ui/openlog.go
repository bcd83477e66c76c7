package ui

import (
	"fmt"

	"github.com/user/build-status/internal/logger"
)

// openLogFile opens the current log file with the desktop's default viewer.
func openLogFile() error {
	path := logger.GetLogPath()
	if path == "" {
		return fmt.Errorf("logging is not enabled")
	}
	if err := logViewerCommand(path).Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	return nil
}
