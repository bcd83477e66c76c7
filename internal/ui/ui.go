// Package ui wires the status window state machine to a Gio window and an
// optional tray indicator.
package ui

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"gioui.org/app"

	"github.com/user/build-status/internal/config"
	"github.com/user/build-status/internal/core"
	"github.com/user/build-status/internal/logger"
)

// Run shows the status window. It must be called from the main goroutine and
// does not return: when the window is gone, exit is called with the result.
func Run(exit func(error)) {
	go func() {
		exit(run())
	}()
	app.Main()
}

func run() error {
	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Build Status: logging disabled: %v\n", err)
	}
	defer logger.Close()
	logger.Info("Build Status starting")

	cfgManager := config.NewManager(config.GetConfigPath())
	if err := cfgManager.Load(); err != nil {
		logger.Error("Ignoring %s, using defaults: %v", cfgManager.Path(), err)
	}
	cfg := cfgManager.Get()

	if cfg.Log.CaptureStderr {
		if err := logger.CaptureStderr(); err != nil {
			logger.Warning("Failed to capture stderr: %v", err)
		}
	}

	opts, err := optionsFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("invalid window options: %w", err)
	}

	loop := core.NewLoop()
	surface := newGioSurface(cfg.Title, cfg.TextSize, opts.Initial)
	win := core.NewStatusWindow(opts, loop, surface)
	surface.onClick = func() {
		loop.Post(win.OnButtonActivated)
	}

	closeWith := func(reason core.CloseReason) func() {
		return func() {
			loop.Post(func() { win.Close(reason) })
		}
	}

	if cfg.Tray {
		t := startTray(cfg.Title, closeWith(core.CloseByUser))
		defer t.Stop()
		win.SetStatusListener(t.Update)
	}

	logger.SafeGo("event-loop", func() {
		loop.Run(context.Background())
	})
	defer loop.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger.SafeGo("signal-watch", func() {
		select {
		case <-ctx.Done():
			logger.Info("Shutdown signal received")
			closeWith(core.CloseByShutdown)()
		case <-win.Done():
		}
	})

	loop.Post(win.Initialize)

	if err := surface.run(); err != nil {
		logger.Error("Window failed: %v", err)
		return err
	}

	// The window manager close button destroys the window without going
	// through the state machine.
	closeWith(core.CloseByUser)()
	<-win.Done()

	logger.Info("Build Status exiting")
	return nil
}
