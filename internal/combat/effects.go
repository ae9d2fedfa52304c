package combat

import (
	"math"
	"math/rand"
	"time"

	"github.com/tomz197/quizboss/internal/object"
)

// Timed effect durations.
const (
	LaserChargeDuration = 800 * time.Millisecond
	LaserFireDuration   = 2000 * time.Millisecond
	ShieldDuration      = 2000 * time.Millisecond
	PlasmaBurstDuration = 1500 * time.Millisecond
	ShipBlinkDuration   = 1000 * time.Millisecond
	BossChargeDuration  = 1500 * time.Millisecond
	ShipBlinkPeriod     = 100 * time.Millisecond
)

// Timer is a one-shot effect: active from Start until Elapsed reaches Duration.
type Timer struct {
	Active   bool
	Elapsed  time.Duration
	Duration time.Duration
}

// Start (re)activates the timer from zero.
func (t *Timer) Start() {
	t.Active = true
	t.Elapsed = 0
}

// Stop deactivates the timer.
func (t *Timer) Stop() {
	t.Active = false
	t.Elapsed = 0
}

// Advance accumulates dt while active. It returns true on the call that
// completes the timer.
func (t *Timer) Advance(dt time.Duration) bool {
	if !t.Active {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Active = false
		return true
	}
	return false
}

// Remaining returns the unexpired fraction in 0..1.
func (t *Timer) Remaining() float64 {
	if !t.Active || t.Duration <= 0 {
		return 0
	}
	return 1 - math.Min(1, float64(t.Elapsed)/float64(t.Duration))
}

// BossPhase is the boss weapon state.
type BossPhase int

const (
	BossIdle BossPhase = iota
	BossCharging
	BossFiring
)

func (p BossPhase) String() string {
	switch p {
	case BossCharging:
		return "charging"
	case BossFiring:
		return "firing"
	default:
		return "idle"
	}
}

// Effects holds every timed visual effect of the fight.
type Effects struct {
	LaserCharge Timer
	LaserFire   Timer
	Shield      Timer
	PlasmaBurst Timer
	Blink       Timer

	BossPhase  BossPhase
	BossCharge time.Duration
	BossGlow   float64
}

func newEffects() Effects {
	return Effects{
		LaserCharge: Timer{Duration: LaserChargeDuration},
		LaserFire:   Timer{Duration: LaserFireDuration},
		Shield:      Timer{Duration: ShieldDuration},
		PlasmaBurst: Timer{Duration: PlasmaBurstDuration},
		Blink:       Timer{Duration: ShipBlinkDuration},
	}
}

// StartBossCharge enters the boss charging phase with a cold core.
func (e *Effects) StartBossCharge() {
	e.BossPhase = BossCharging
	e.BossCharge = 0
	e.BossGlow = 0
}

// ShipVisible reports whether the blinking ship is drawn this frame.
func (e *Effects) ShipVisible() bool {
	if !e.Blink.Active {
		return true
	}
	return object.BlinkVisible(e.Blink.Elapsed, ShipBlinkPeriod)
}

// advance moves every timer by wall-clock dt. The laser chain drives the screen
// shake and the looping beam sound.
func (e *Effects) advance(dt time.Duration, shake *Shake, sound Sound) {
	if e.LaserCharge.Advance(dt) {
		e.LaserFire.Start()
		shake.Set(8)
		sound.StartLaserBeam()
	}
	if e.LaserFire.Active {
		shake.Set(15)
		if e.LaserFire.Advance(dt) {
			sound.StopLaserBeam()
		}
	}

	e.Shield.Advance(dt)
	e.PlasmaBurst.Advance(dt)

	if e.BossPhase == BossCharging {
		e.BossCharge += dt
		e.BossGlow = math.Min(1, float64(e.BossCharge)/float64(BossChargeDuration))
	}

	if e.Blink.Advance(dt) {
		e.Blink.Elapsed = 0
	}
}

// Shake is the decaying screen-shake magnitude.
type Shake struct {
	Amount float64
	X, Y   float64 // Offset for the current frame
}

const (
	shakeDecay = 0.9 // Per reference frame
	shakeFloor = 0.5
)

// Set replaces the shake magnitude.
func (s *Shake) Set(amount float64) {
	s.Amount = amount
}

// Update picks this frame's offset within ±Amount/2 and decays the magnitude,
// snapping it to zero once it drops below the floor.
func (s *Shake) Update(step float64, rng *rand.Rand) {
	if s.Amount <= 0 {
		s.X, s.Y = 0, 0
		return
	}
	s.X = (rng.Float64() - 0.5) * s.Amount
	s.Y = (rng.Float64() - 0.5) * s.Amount
	s.Amount *= math.Pow(shakeDecay, step)
	if s.Amount < shakeFloor {
		s.Amount = 0
		s.X, s.Y = 0, 0
	}
}
