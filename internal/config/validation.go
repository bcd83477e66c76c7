package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("title is required")
	}
	if err := c.Initial.Validate(); err != nil {
		return fmt.Errorf("initial: %w", err)
	}
	if err := c.Complete.Validate(); err != nil {
		return fmt.Errorf("complete: %w", err)
	}
	if c.TextSize <= 0 {
		return fmt.Errorf("text_size must be positive")
	}
	if c.CompletionDelay <= 0 {
		return fmt.Errorf("completion_delay must be positive")
	}
	if c.ForceCloseDelay <= 0 {
		return fmt.Errorf("force_close_delay must be positive")
	}
	return nil
}

// Validate validates a button look.
func (b *Button) Validate() error {
	if b.Label == "" {
		return fmt.Errorf("label is required")
	}
	if _, err := b.Background.NRGBA(); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if _, err := b.Foreground.NRGBA(); err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	return nil
}

// NRGBA parses the color as an opaque color.NRGBA.
func (c Color) NRGBA() (color.NRGBA, error) {
	s := string(c)
	if len(s) != 7 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q must look like #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
