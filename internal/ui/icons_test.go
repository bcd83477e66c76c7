package ui

import (
	"encoding/binary"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/build-status/internal/core"
)

func TestRenderBadgeColors(t *testing.T) {
	for state, want := range map[core.State]uint8{
		core.StateIdle:      badgeBlue.B,
		core.StateCompleted: badgeGreen.G,
		core.StateClosed:    badgeGray.R,
	} {
		img := RenderBadge(state, 32)
		assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

		// Near the rim, away from the mark.
		px := img.NRGBAAt(16, 3)
		assert.Equal(t, uint8(255), px.A, state)
		switch state {
		case core.StateIdle:
			assert.Equal(t, want, px.B)
		case core.StateCompleted:
			assert.Equal(t, want, px.G)
		default:
			assert.Equal(t, want, px.R)
		}

		assert.Zero(t, img.NRGBAAt(0, 0).A, "corners are transparent")
	}
}

func TestRenderBadgeMarks(t *testing.T) {
	idle := RenderBadge(core.StateIdle, 64)
	assert.Equal(t, badgeMark, idle.NRGBAAt(32, 32), "triangle covers the center")

	closed := RenderBadge(core.StateClosed, 64)
	assert.Equal(t, badgeGray, closed.NRGBAAt(32, 32))
}

func TestEncodeICO(t *testing.T) {
	imgs := []*image.NRGBA{
		RenderBadge(core.StateCompleted, 16),
		RenderBadge(core.StateCompleted, 256),
	}
	data := EncodeICO(imgs)

	require.Greater(t, len(data), 6+2*16)
	assert.Equal(t, uint16(1), binary.LittleEndian.Uint16(data[2:]))
	assert.Equal(t, uint16(2), binary.LittleEndian.Uint16(data[4:]))
	assert.Equal(t, byte(16), data[6])
	assert.Equal(t, byte(0), data[6+16], "256 is stored as 0")

	first := binary.LittleEndian.Uint32(data[6+12:])
	second := binary.LittleEndian.Uint32(data[6+16+12:])
	assert.Equal(t, uint32(6+2*16), first)
	size := binary.LittleEndian.Uint32(data[6+8:])
	assert.Equal(t, first+size, second)
	assert.Equal(t, len(data), int(second)+int(binary.LittleEndian.Uint32(data[6+16+8:])))
}

func TestGetIconNotEmpty(t *testing.T) {
	assert.NotEmpty(t, GetIcon(core.StateIdle))
}
