package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/user/build-status/internal/core"
)

var (
	badgeBlue  = color.NRGBA{R: 40, G: 90, B: 220, A: 255}
	badgeGreen = color.NRGBA{R: 30, G: 160, B: 70, A: 255}
	badgeGray  = color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	badgeMark  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// GetIcon returns the tray icon bytes for the given state.
func GetIcon(state core.State) []byte {
	data, err := encodeIcon(RenderBadge(state, 32))
	if err != nil {
		return nil
	}
	return data
}

// RenderBadge draws a round badge for state: a play triangle while idle, a
// check mark once completed, an empty gray disc when closed.
func RenderBadge(state core.State, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fill := badgeGray
	switch state {
	case core.StateIdle:
		fill = badgeBlue
	case core.StateCompleted:
		fill = badgeGreen
	}

	c := s / 2
	r := s/2 - 1
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			if a := coverage(r - d); a > 0 {
				blend(img, x, y, fill, a)
			}
		}
	}

	switch state {
	case core.StateIdle:
		// Play triangle pointing right.
		ax, ay := s*0.38, s*0.28
		bx, by := s*0.38, s*0.72
		tx, ty := s*0.74, s*0.50
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				px, py := float64(x)+0.5, float64(y)+0.5
				if inTriangle(px, py, ax, ay, bx, by, tx, ty) {
					blend(img, x, y, badgeMark, 1)
				}
			}
		}
	case core.StateCompleted:
		w := s * 0.09
		strokes := [][4]float64{
			{s * 0.27, s * 0.52, s * 0.43, s * 0.68},
			{s * 0.43, s * 0.68, s * 0.74, s * 0.34},
		}
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				px, py := float64(x)+0.5, float64(y)+0.5
				best := math.Inf(1)
				for _, st := range strokes {
					best = math.Min(best, segmentDist(px, py, st[0], st[1], st[2], st[3]))
				}
				if a := coverage(w - best); a > 0 {
					blend(img, x, y, badgeMark, a)
				}
			}
		}
	}

	return img
}

// coverage maps a signed distance to the shape edge to a 0..1 alpha.
func coverage(d float64) float64 {
	switch {
	case d >= 0.5:
		return 1
	case d <= -0.5:
		return 0
	default:
		return d + 0.5
	}
}

func blend(img *image.NRGBA, x, y int, c color.NRGBA, a float64) {
	dst := img.NRGBAAt(x, y)
	na := a * float64(c.A) / 255
	ea := float64(dst.A) / 255
	oa := na + ea*(1-na)
	if oa <= 0 {
		return
	}
	mix := func(src, old uint8) uint8 {
		return uint8((float64(src)*na + float64(old)*ea*(1-na)) / oa)
	}
	img.SetNRGBA(x, y, color.NRGBA{
		R: mix(c.R, dst.R),
		G: mix(c.G, dst.G),
		B: mix(c.B, dst.B),
		A: uint8(oa*255 + 0.5),
	})
}

func inTriangle(px, py, ax, ay, bx, by, cx, cy float64) bool {
	side := func(x1, y1, x2, y2 float64) float64 {
		return (px-x2)*(y1-y2) - (x1-x2)*(py-y2)
	}
	d1 := side(ax, ay, bx, by)
	d2 := side(bx, by, cx, cy)
	d3 := side(cx, cy, ax, ay)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func segmentDist(px, py, ax, ay, bx, by float64) float64 {
	dx, dy := bx-ax, by-ay
	t := ((px-ax)*dx + (py-ay)*dy) / (dx*dx + dy*dy)
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(px-(ax+t*dx), py-(ay+t*dy))
}
