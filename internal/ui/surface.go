package ui

import (
	"fmt"
	"sync"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/event"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/user/build-status/internal/core"
	"github.com/user/build-status/internal/logger"
)

// gioWindow is the part of *app.Window the surface drives.
type gioWindow interface {
	Event() event.Event
	Invalidate()
	Perform(actions system.Action)
}

// gioSurface renders the status window with Gio. Render and Close may be
// called from any goroutine; run owns the Gio window.
type gioSurface struct {
	win      gioWindow
	theme    *material.Theme
	click    widget.Clickable
	textSize unit.Sp

	// onClick is called on the frame goroutine for every button press.
	onClick func()

	mu      sync.Mutex
	button  core.ButtonState
	closing bool
}

func newGioSurface(title string, textSize float32, initial core.ButtonState) *gioSurface {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	w := new(app.Window)
	w.Option(
		app.Title(title),
		app.Size(unit.Dp(360), unit.Dp(130)),
	)

	return &gioSurface{
		win:      w,
		theme:    th,
		textSize: unit.Sp(textSize),
		button:   initial,
	}
}

// Render implements core.Surface.
func (s *gioSurface) Render(b core.ButtonState) {
	s.mu.Lock()
	s.button = b
	s.mu.Unlock()
	s.win.Invalidate()
}

// Close implements core.Surface. The close is performed directly rather
// than on the next frame: a minimized window receives no frames.
func (s *gioSurface) Close() {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		return
	}
	s.closing = true
	s.mu.Unlock()
	s.win.Perform(system.ActionClose)
}

// run processes window events until the window is destroyed. A destroy
// with an error before the first frame means there is no usable display.
func (s *gioSurface) run() error {
	var ops op.Ops
	framed := false

	for {
		switch e := s.win.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil && !framed {
				return fmt.Errorf("%w: %v", core.ErrPlatformUnavailable, e.Err)
			}
			return e.Err

		case app.FrameEvent:
			if !framed {
				framed = true
				logger.Debug("First frame %dx%d", e.Size.X, e.Size.Y)
				// A close requested before the window existed had nothing to act on.
				s.mu.Lock()
				closing := s.closing
				s.mu.Unlock()
				if closing {
					s.win.Perform(system.ActionClose)
				}
			}
			gtx := app.NewContext(&ops, e)

			for s.click.Clicked(gtx) {
				if s.onClick != nil {
					s.onClick()
				}
			}

			s.mu.Lock()
			b := s.button
			s.mu.Unlock()

			s.layout(gtx, b)
			e.Frame(gtx.Ops)
		}
	}
}

func (s *gioSurface) layout(gtx layout.Context, b core.ButtonState) layout.Dimensions {
	btn := material.Button(s.theme, &s.click, b.Label)
	btn.Background = b.Background
	btn.Color = b.Foreground
	btn.TextSize = s.textSize

	inset := layout.Inset{
		Top:    unit.Dp(20),
		Bottom: unit.Dp(20),
		Left:   unit.Dp(50),
		Right:  unit.Dp(50),
	}
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return inset.Layout(gtx, btn.Layout)
	})
}
