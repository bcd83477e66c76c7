package ui

import (
	"fmt"

	"github.com/user/build-status/internal/config"
	"github.com/user/build-status/internal/core"
)

// optionsFromConfig converts the loaded configuration to window options.
func optionsFromConfig(cfg *config.Config) (core.Options, error) {
	initial, err := buttonFromConfig(cfg.Initial)
	if err != nil {
		return core.Options{}, fmt.Errorf("initial button: %w", err)
	}
	complete, err := buttonFromConfig(cfg.Complete)
	if err != nil {
		return core.Options{}, fmt.Errorf("complete button: %w", err)
	}
	return core.Options{
		Initial:         initial,
		Complete:        complete,
		CompletionDelay: cfg.CompletionDelay,
		ForceCloseDelay: cfg.ForceCloseDelay,
	}, nil
}

func buttonFromConfig(b config.Button) (core.ButtonState, error) {
	bg, err := b.Background.NRGBA()
	if err != nil {
		return core.ButtonState{}, err
	}
	fg, err := b.Foreground.NRGBA()
	if err != nil {
		return core.ButtonState{}, err
	}
	return core.ButtonState{Label: b.Label, Background: bg, Foreground: fg}, nil
}
