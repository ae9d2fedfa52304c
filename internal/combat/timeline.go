package combat

import (
	"sort"
	"time"
)

// Timeline runs scripted actions at offsets from a frame-advanced clock.
// Actions scheduled from inside a running action are timed relative to that
// action's scheduled time, so chained steps keep exact spacing even when a
// frame overshoots.
type Timeline struct {
	now     time.Duration
	base    time.Duration
	running bool
	seq     uint64
	steps   []timelineStep
}

type timelineStep struct {
	at  time.Duration
	seq uint64
	fn  func()
}

// After schedules fn to run d from now, or d after the currently running action.
func (t *Timeline) After(d time.Duration, fn func()) {
	if fn == nil {
		return
	}
	base := t.now
	if t.running {
		base = t.base
	}
	s := timelineStep{at: base + max(d, 0), seq: t.seq, fn: fn}
	t.seq++

	// Ties keep insertion order.
	i := sort.Search(len(t.steps), func(i int) bool { return t.steps[i].at > s.at })
	t.steps = append(t.steps, timelineStep{})
	copy(t.steps[i+1:], t.steps[i:])
	t.steps[i] = s
}

// Advance moves the clock forward by dt and runs every action that became due,
// in time order.
func (t *Timeline) Advance(dt time.Duration) {
	target := t.now + dt
	for len(t.steps) > 0 && t.steps[0].at <= target {
		s := t.steps[0]
		t.steps = t.steps[1:]

		t.base, t.running = s.at, true
		s.fn()
		t.running = false
	}
	t.now = target
	if len(t.steps) == 0 {
		t.steps = nil
	}
}

// Cancel drops every pending action.
func (t *Timeline) Cancel() {
	t.steps = nil
}

// Pending returns the number of scheduled actions.
func (t *Timeline) Pending() int {
	return len(t.steps)
}

// Now returns the elapsed clock time.
func (t *Timeline) Now() time.Duration {
	return t.now
}
