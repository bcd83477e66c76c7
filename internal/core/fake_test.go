package core

import (
	"sort"
	"time"
)

// fakeClock is a virtual-time Scheduler. Callbacks run synchronously from
// Advance, in due order, like a single event loop would.
type fakeClock struct {
	now    time.Duration
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	due     time.Duration
	seq     int
	fn      func()
	stopped bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.seq++
	t := &fakeTimer{clock: c, due: c.now + d, seq: c.seq, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// AdvanceTo fires every live timer due at or before at.
func (c *fakeClock) AdvanceTo(at time.Duration) {
	for {
		next := c.nextDue(at)
		if next == nil {
			break
		}
		c.now = next.due
		next.stopped = true
		next.fn()
	}
	c.now = at
}

func (c *fakeClock) nextDue(at time.Duration) *fakeTimer {
	var live []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && t.due <= at {
			live = append(live, t)
		}
	}
	if len(live) == 0 {
		return nil
	}
	sort.Slice(live, func(i, j int) bool {
		if live[i].due != live[j].due {
			return live[i].due < live[j].due
		}
		return live[i].seq < live[j].seq
	})
	return live[0]
}

func (c *fakeClock) pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// fakeSurface records what the window asked the toolkit to do.
type fakeSurface struct {
	renders  []ButtonState
	closes   int
	closedAt time.Duration
	clock    *fakeClock
}

func (s *fakeSurface) Render(b ButtonState) {
	s.renders = append(s.renders, b)
}

func (s *fakeSurface) Close() {
	s.closes++
	s.closedAt = s.clock.now
}

func (s *fakeSurface) shown() ButtonState {
	return s.renders[len(s.renders)-1]
}

func newTestWindow() (*StatusWindow, *fakeClock, *fakeSurface) {
	clock := &fakeClock{}
	surface := &fakeSurface{clock: clock}
	w := NewStatusWindow(DefaultOptions(), clock, surface)
	return w, clock, surface
}

const sec = time.Second
