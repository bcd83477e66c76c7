//go:build ignore

// gen-icon writes the application .ico from the badge the tray uses.
// Usage: go run build/gen-icon/main.go [output.ico]
package main

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/user/build-status/internal/core"
	"github.com/user/build-status/internal/ui"
)

func main() {
	output := "build/windows/icon.ico"
	if len(os.Args) > 1 {
		output = os.Args[1]
	}

	var images []*image.NRGBA
	for _, size := range []int{16, 32, 48, 256} {
		images = append(images, ui.RenderBadge(core.StateCompleted, size))
	}
	ico := ui.EncodeICO(images)

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "mkdir: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(output, ico, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %s (%d bytes)\n", output, len(ico))
}
