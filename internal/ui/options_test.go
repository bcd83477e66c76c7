package ui

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/build-status/internal/config"
	"github.com/user/build-status/internal/core"
)

func TestOptionsFromDefaultConfigMatchDefaults(t *testing.T) {
	opts, err := optionsFromConfig(config.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, core.DefaultOptions(), opts)
}

func TestOptionsFromConfigOverrides(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Complete.Background = "#112233"

	opts, err := optionsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}, opts.Complete.Background)
}

func TestOptionsFromConfigRejectsBadColor(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Initial.Foreground = "white"

	_, err := optionsFromConfig(cfg)
	assert.Error(t, err)
}
