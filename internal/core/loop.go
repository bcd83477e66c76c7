package core

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/user/build-status/internal/logger"
)

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the timer. It reports whether the callback was still pending.
	Stop() bool
}

// Scheduler arms timers whose callbacks run on the event loop goroutine.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Loop is a single goroutine dispatcher. Callbacks posted to it run one at a
// time, in arrival order, each to completion before the next.
type Loop struct {
	events   chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates an event loop. Call Run to start dispatching.
func NewLoop() *Loop {
	return &Loop{
		events: make(chan func(), 64),
		done:   make(chan struct{}),
	}
}

// Post enqueues fn. It returns false if the loop has been stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.events <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Run dispatches events until Stop is called or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.done:
			return nil
		case fn := <-l.events:
			l.dispatch(fn)
		}
	}
}

func (l *Loop) dispatch(fn func()) {
	defer logger.Recover("event-loop")
	fn()
}

// Stop ends Run. Pending events are discarded. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

// Done is closed once Stop has been called.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// AfterFunc arms a timer that posts fn to the loop after d.
func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	t := &loopTimer{}
	t.timer = time.AfterFunc(d, func() {
		l.Post(func() {
			// The expiry may already be queued when Stop runs on the loop.
			if t.stopped.CompareAndSwap(false, true) {
				fn()
			}
		})
	})
	return t
}

type loopTimer struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *loopTimer) Stop() bool {
	t.timer.Stop()
	return t.stopped.CompareAndSwap(false, true)
}
