//go:build !windows

package ui

import (
	"bytes"
	"image"
	"image/png"
)

// encodeIcon encodes img as PNG, which the tray accepts on Linux and macOS.
func encodeIcon(img *image.NRGBA) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
