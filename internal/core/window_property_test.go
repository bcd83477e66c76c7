package core

import (
	"sort"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func TestWindowProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		w, clock, surface := newTestWindow()
		opts := DefaultOptions()
		w.Initialize()

		var lastClick time.Duration = -1
		clicks := rapid.SliceOfN(rapid.IntRange(0, 12000), 0, 8).Draw(t, "clickMillis")
		for _, ms := range sortedInts(clicks) {
			at := time.Duration(ms) * time.Millisecond
			clock.AdvanceTo(at)
			if w.State() != StateClosed {
				lastClick = at
			}
			w.OnButtonActivated()
		}
		clock.AdvanceTo(time.Minute)

		if w.State() != StateClosed {
			t.Fatalf("window still open: %s", w.State())
		}
		if surface.closes != 1 {
			t.Fatalf("surface closed %d times", surface.closes)
		}
		if clock.pending() != 0 {
			t.Fatalf("%d timers left pending", clock.pending())
		}

		want := opts.ForceCloseDelay
		label := opts.Initial.Label
		if lastClick >= 0 {
			label = opts.Complete.Label
			if c := lastClick + opts.CompletionDelay; c < want {
				want = c
			}
		}
		if surface.closedAt != want {
			t.Fatalf("closed at %s, want %s", surface.closedAt, want)
		}
		if w.Button().Label != label {
			t.Fatalf("label %q, want %q", w.Button().Label, label)
		}
	})
}

func sortedInts(in []int) []int {
	out := append([]int(nil), in...)
	sort.Ints(out)
	return out
}
