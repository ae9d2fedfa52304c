package combat

import (
	"math/rand"
	"slices"
	"testing"
	"time"
)

func TestTimelineRunsInTimeOrder(t *testing.T) {
	var tl Timeline
	var got []string
	add := func(name string) func() { return func() { got = append(got, name) } }

	tl.After(30*time.Millisecond, add("a"))
	tl.After(10*time.Millisecond, add("b"))
	tl.After(10*time.Millisecond, add("c"))
	tl.After(10*time.Millisecond, func() {
		tl.After(5*time.Millisecond, add("d"))
	})

	tl.Advance(12 * time.Millisecond)
	if want := []string{"b", "c"}; !slices.Equal(got, want) {
		t.Fatalf("after 12ms ran %v, want %v", got, want)
	}
	if tl.Pending() != 2 {
		t.Fatalf("pending = %d, want 2", tl.Pending())
	}

	tl.Advance(10 * time.Millisecond)
	tl.Advance(100 * time.Millisecond)
	if want := []string{"b", "c", "d", "a"}; !slices.Equal(got, want) {
		t.Fatalf("ran %v, want %v", got, want)
	}
	if tl.Now() != 122*time.Millisecond {
		t.Errorf("now = %v", tl.Now())
	}
}

func TestTimelineChainsKeepExactSpacing(t *testing.T) {
	var tl Timeline
	var at []time.Duration

	tl.After(100*time.Millisecond, func() {
		at = append(at, 100*time.Millisecond)
		tl.After(50*time.Millisecond, func() {
			at = append(at, 150*time.Millisecond)
		})
	})

	// One oversized frame runs the whole chain.
	tl.Advance(time.Second)
	if len(at) != 2 {
		t.Fatalf("ran %d steps in one frame, want 2", len(at))
	}
}

func TestTimelineChainIsRelativeToScheduledTime(t *testing.T) {
	var tl Timeline
	fired := false
	tl.After(100*time.Millisecond, func() {
		tl.After(50*time.Millisecond, func() { fired = true })
	})

	// The first step runs 40ms late; the second stays at 150ms.
	tl.Advance(140 * time.Millisecond)
	if fired {
		t.Fatal("chained step ran early")
	}
	tl.Advance(10 * time.Millisecond)
	if !fired {
		t.Fatal("chained step did not run at 150ms")
	}
}

func TestTimelineCancel(t *testing.T) {
	var tl Timeline
	ran := false
	tl.After(time.Millisecond, func() { ran = true })
	tl.Cancel()
	tl.Advance(time.Second)
	if ran || tl.Pending() != 0 {
		t.Errorf("cancelled step ran = %v, pending = %d", ran, tl.Pending())
	}
}

func TestTimerFlipsAtDuration(t *testing.T) {
	sound := &recordingSound{}
	var shake Shake
	e := newEffects()

	e.LaserCharge.Start()
	e.advance(LaserChargeDuration-time.Millisecond, &shake, sound)
	if !e.LaserCharge.Active || e.LaserFire.Active {
		t.Fatal("charge ended early")
	}

	e.advance(time.Millisecond, &shake, sound)
	if e.LaserCharge.Active || !e.LaserFire.Active {
		t.Fatal("charge did not hand over to fire")
	}
	if sound.count("startLaserBeam") != 1 || shake.Amount != 15 {
		t.Errorf("beam sounds %v, shake %v", sound.events, shake.Amount)
	}

	e.advance(LaserFireDuration-2*time.Millisecond, &shake, sound)
	if !e.LaserFire.Active {
		t.Fatal("fire ended early")
	}
	e.advance(time.Millisecond, &shake, sound)
	if e.LaserFire.Active || sound.count("stopLaserBeam") != 1 {
		t.Errorf("fire still active = %v, sounds %v", e.LaserFire.Active, sound.events)
	}
}

func TestTimerOnlyCountsWhileActive(t *testing.T) {
	tm := Timer{Duration: time.Second}
	tm.Advance(500 * time.Millisecond)
	if tm.Elapsed != 0 {
		t.Errorf("inactive timer accumulated %v", tm.Elapsed)
	}
	tm.Start()
	if tm.Advance(999*time.Millisecond) || !tm.Active {
		t.Fatal("timer ended early")
	}
	if !tm.Advance(time.Millisecond) || tm.Active {
		t.Fatal("timer did not end at its duration")
	}
}

func TestShipBlinkAlternates(t *testing.T) {
	e := newEffects()
	e.Blink.Start()

	var seen []bool
	for i := 0; i < 4; i++ {
		seen = append(seen, e.ShipVisible())
		e.Blink.Advance(ShipBlinkPeriod)
	}
	if want := []bool{false, true, false, true}; !slices.Equal(seen, want) {
		t.Errorf("visibility %v, want %v", seen, want)
	}

	e.Blink.Advance(ShipBlinkDuration)
	if !e.ShipVisible() {
		t.Error("ship should be visible once blinking ends")
	}
}

func TestShakeDecaysAndSnapsToZero(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var s Shake
	s.Set(40)

	for frame := 0; s.Amount > 0; frame++ {
		prev := s.Amount
		s.Update(1, rng)
		if s.X < -prev/2 || s.X > prev/2 || s.Y < -prev/2 || s.Y > prev/2 {
			t.Fatalf("offset (%v, %v) outside ±%v", s.X, s.Y, prev/2)
		}
		switch decayed := prev * 0.9; {
		case decayed < 0.5:
			if s.Amount != 0 {
				t.Fatalf("amount %v should have snapped to 0", s.Amount)
			}
		case s.Amount != decayed:
			t.Fatalf("frame %d: amount %v, want %v", frame, s.Amount, decayed)
		}
		if frame > 100 {
			t.Fatal("shake never settled")
		}
	}
	s.Update(1, rng)
	if s.X != 0 || s.Y != 0 {
		t.Error("settled shake should not offset the screen")
	}
}
