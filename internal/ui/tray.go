package ui

import (
	"sync"

	"fyne.io/systray"

	"github.com/user/build-status/internal/core"
	"github.com/user/build-status/internal/logger"
)

// tray mirrors the window state in the system tray and offers Open log and
// Close items.
type tray struct {
	title   string
	onClose func()
	end     func()

	mu      sync.Mutex
	ready   bool
	pending *core.StatusPayload
	mStatus *systray.MenuItem
	mClose  *systray.MenuItem
}

func startTray(title string, onClose func()) *tray {
	t := &tray{title: title, onClose: onClose}
	start, end := systray.RunWithExternalLoop(t.onReady, func() {
		logger.Debug("Tray removed")
	})
	t.end = end
	start()
	return t
}

func (t *tray) onReady() {
	systray.SetTitle(t.title)
	systray.SetIcon(GetIcon(core.StateIdle))

	mStatus := systray.AddMenuItem(t.title, "")
	mStatus.Disable()
	systray.AddSeparator()
	mLog := systray.AddMenuItem("Open log", "Open the log file")
	mClose := systray.AddMenuItem("Close", "Close the status window")

	t.mu.Lock()
	t.ready = true
	t.mStatus = mStatus
	t.mClose = mClose
	pending := t.pending
	t.mu.Unlock()

	if pending != nil {
		t.Update(pending)
	}

	go func() {
		defer logger.Recover("tray-menu-loop")
		for {
			select {
			case <-mLog.ClickedCh:
				if err := openLogFile(); err != nil {
					logger.Warning("Open log: %v", err)
				}
			case <-mClose.ClickedCh:
				t.onClose()
			}
		}
	}()
}

// Update refreshes icon and tooltip. Before the tray is ready the latest
// status is kept and applied from onReady.
func (t *tray) Update(status *core.StatusPayload) {
	defer logger.Recover("tray-update")

	t.mu.Lock()
	if !t.ready {
		t.pending = status
		t.mu.Unlock()
		return
	}
	mStatus, mClose := t.mStatus, t.mClose
	t.mu.Unlock()

	systray.SetIcon(GetIcon(status.State))
	systray.SetTooltip(t.title + " — " + status.Button.Label)
	mStatus.SetTitle(status.Button.Label)
	if status.State == core.StateClosed {
		mClose.Disable()
	}
}

// Stop removes the tray icon.
func (t *tray) Stop() {
	if t.end != nil {
		t.end()
	}
}
