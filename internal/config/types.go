// Package config handles build status window configuration loading and validation.
package config

import "time"

// Color is a hex RGB color, "#rrggbb".
type Color string

// Config represents the optional config.yaml next to the executable.
type Config struct {
	Title           string        `yaml:"title"`
	Initial         Button        `yaml:"initial"`
	Complete        Button        `yaml:"complete"`
	TextSize        float32       `yaml:"text_size"`
	CompletionDelay time.Duration `yaml:"completion_delay"`
	ForceCloseDelay time.Duration `yaml:"force_close_delay"`
	Tray            bool          `yaml:"tray"`
	Log             Log           `yaml:"log"`
}

// Button describes one look of the status button.
type Button struct {
	Label      string `yaml:"label"`
	Background Color  `yaml:"background"`
	Foreground Color  `yaml:"foreground"`
}

// Log configuration.
type Log struct {
	CaptureStderr bool `yaml:"capture_stderr"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Title: "Build Status",
		Initial: Button{
			Label:      "Run pipeline",
			Background: "#0000ff",
			Foreground: "#ffffff",
		},
		Complete: Button{
			Label:      "✔ Pipeline complete!",
			Background: "#008000",
			Foreground: "#ffffff",
		},
		TextSize:        14,
		CompletionDelay: 5 * time.Second,
		ForceCloseDelay: 10 * time.Second,
	}
}
