//go:build darwin

package ui

import "os/exec"

func logViewerCommand(path string) *exec.Cmd {
	return exec.Command("open", path)
}
