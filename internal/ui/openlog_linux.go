//go:build linux

package ui

import "os/exec"

func logViewerCommand(path string) *exec.Cmd {
	return exec.Command("xdg-open", path)
}
