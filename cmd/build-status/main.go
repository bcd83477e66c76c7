// Build Status - one-button pipeline status window
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/user/build-status/internal/core"
	"github.com/user/build-status/internal/ui"
)

func main() {
	ui.Run(func(err error) {
		if err != nil {
			fmt.Fprintln(os.Stderr, exitMessage(err))
		}
		os.Exit(exitCode(err))
	})
}

// exitCode is 0 for any normal close and 1 when the window could not run.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

func exitMessage(err error) string {
	if errors.Is(err, core.ErrPlatformUnavailable) {
		return fmt.Sprintf("Build Status cannot open a window: %v", err)
	}
	return fmt.Sprintf("Build Status failed: %v", err)
}
