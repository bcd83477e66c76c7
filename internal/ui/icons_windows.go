//go:build windows

package ui

import "image"

// encodeIcon wraps img in a single-image ICO, which the Windows tray requires.
func encodeIcon(img *image.NRGBA) ([]byte, error) {
	return EncodeICO([]*image.NRGBA{img}), nil
}
