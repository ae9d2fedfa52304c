package combat

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/object"
)

// Hero attack script.
const (
	HeroDamage       = 10
	ComboEvery       = 4
	HeroImpactDelay  = 2 * time.Second
	HeroOutcomeDelay = 2 * time.Second

	comboRocketDelay = 300 * time.Millisecond
	comboPlasmaDelay = 600 * time.Millisecond
	rocketFirstDelay = 800 * time.Millisecond
	rocketStagger    = 200 * time.Millisecond
	plasmaStagger    = 200 * time.Millisecond

	singleRockets = 6
	comboRockets  = 12
	plasmaWaves   = 3
	chargeSparks  = 20
)

// hardpoints are rocket aim points on the boss hull, before gameScale.
var hardpoints = []draw.Point{
	{X: -200, Y: 20}, {X: 200, Y: 20}, // wings
	{X: -80, Y: 80}, {X: 80, Y: 80},   // engines
	{X: 0, Y: 0},                      // core
	{X: -290, Y: 0}, {X: 250, Y: 0},   // launchers
}

// TriggerHeroAttack starts the player's attack for a correct answer. Every
// fourth answer of a streak fires a combo of all weapons.
func (f *Fight) TriggerHeroAttack() error {
	if f.phase != AwaitingAnswer {
		f.log.Warn("hero attack rejected", "phase", f.phase)
		return ErrBusy
	}
	f.phase = HeroSequence

	streak := f.state.Streak
	f.combo = streak > 0 && streak%ComboEvery == 0

	kind := AttackLaser
	switch {
	case f.combo:
		kind = AttackCombo
		f.fireLaser()
		f.timeline.After(comboRocketDelay, f.fireRockets)
		f.timeline.After(comboPlasmaDelay, f.plasmaBurst)
		f.shake.Set(20)
	case f.rng.Float64() > 0.5:
		f.fireLaser()
	default:
		kind = AttackRockets
		f.fireRockets()
	}
	f.ShowAttackName(kind)
	f.log.Debug("hero attack", "kind", kind, "streak", streak)

	f.timeline.After(HeroImpactDelay, f.heroImpact)
	return nil
}

// heroImpact applies the scripted damage regardless of what visually hit.
func (f *Fight) heroImpact() {
	f.state.BossHP = max(f.state.BossHP-HeroDamage, 0)
	f.boss.Health = float64(f.state.BossHP)
	f.shake.Set(10)

	if f.state.BossHP == 0 {
		f.timeline.After(HeroOutcomeDelay, func() { f.endGame(true) })
		return
	}
	f.timeline.After(HeroOutcomeDelay, f.nextQuestion)
}

// fireLaser starts the laser charge and pulls energy into the ship's nose.
func (f *Fight) fireLaser() {
	f.effects.LaserFire.Stop()
	f.effects.LaserCharge.Start()
	f.sound.HeroCharge()
	for range chargeSparks {
		f.energy.Spawn(object.NewConvergingEnergy(f.rng, f.ship.X, f.ship.Y-30))
	}
}

// fireRockets picks a hardpoint per rocket and launches them in a staggered
// salvo from alternating sides of the ship.
func (f *Fight) fireRockets() {
	count := singleRockets
	if f.combo {
		count = comboRockets
	}
	scale := f.layout.Scale

	for i := range count {
		pt := hardpoints[f.rng.Intn(len(hardpoints))]
		target := &draw.Point{
			X: f.boss.X + pt.X*scale + (f.rng.Float64()-0.5)*40,
			Y: f.boss.Y + pt.Y*scale + (f.rng.Float64()-0.5)*40,
		}
		left := i%2 == 0

		f.timeline.After(rocketFirstDelay+time.Duration(i)*rocketStagger, func() {
			offset, angle := 90.0, 0.5
			if left {
				offset, angle = -90, -0.5
			}
			f.sound.Rocket()
			f.rockets.Spawn(&object.Rocket{
				X:        f.ship.X + offset,
				Y:        f.ship.Y + 10,
				Angle:    angle,
				Speed:    4,
				Accel:    0.6,
				MaxSpeed: 18,
				Target:   target,
			})
		})
	}
}

// plasmaBurst sends three rings out from the ship. A burst already in progress
// swallows the call.
func (f *Fight) plasmaBurst() {
	if f.effects.PlasmaBurst.Active {
		return
	}
	f.effects.PlasmaBurst.Start()
	f.shake.Set(12)
	for i := range plasmaWaves {
		f.timeline.After(time.Duration(i)*plasmaStagger, func() {
			f.waves.Spawn(&object.PlasmaWave{
				X:        f.ship.X,
				Y:        f.ship.Y,
				Radius:   50,
				Speed:    8,
				Alpha:    0.8,
				Anchored: true,
			})
		})
	}
}

var rocketExhaust = draw.Hex("#ffaa00")

func (f *Fight) emitRocketExhaust() {
	for _, r := range f.rockets.Items() {
		f.burst(r.X, r.Y+35, 2, spark{rocketExhaust, 1})
	}
}

// beamPalette colors the laser and its impact effects.
type beamPalette struct {
	edge, mid, core colorful.Color
	flare, glow     colorful.Color
	spark, smoke    colorful.Color
}

var (
	normalBeam = beamPalette{
		edge:  draw.Hex("#ff00ff"),
		mid:   draw.Hex("#00ffff"),
		core:  draw.Hex("#ffffff"),
		flare: draw.Hex("#ffffff"),
		glow:  draw.Hex("#ff00ff"),
		spark: draw.Hex("#ff00ff"),
		smoke: draw.Hex("#ffffff"),
	}
	comboBeam = beamPalette{
		edge:  draw.Hex("#8b0000"),
		mid:   draw.Hex("#ff0000"),
		core:  draw.Hex("#8b0000"),
		flare: draw.Hex("#8b0000"),
		glow:  draw.Hex("#ff0000"),
		spark: draw.Hex("#8b0000"),
		smoke: draw.Hex("#4a0000"),
	}
)

func laserPalette(combo bool) beamPalette {
	if combo {
		return comboBeam
	}
	return normalBeam
}

// Laser geometry, before gameScale.
const (
	laserWingOffset = 54 * object.ShipDrawScale
	laserWingY      = 25 * object.ShipDrawScale
	laserTargetY    = 40
	laserHitRange   = 325
	laserBands      = 8
)

// laserWings returns both beam x positions, the emitter y and the impact y.
func (f *Fight) laserWings() (left, right, wingY, targetY float64) {
	s := f.layout.Scale
	return f.ship.X - laserWingOffset*s, f.ship.X + laserWingOffset*s,
		f.ship.Y + laserWingY*s, f.boss.Y + laserTargetY*s
}

func (f *Fight) drawLaser(ctx object.DrawContext) {
	if !f.effects.LaserFire.Active {
		return
	}
	pal := laserPalette(f.combo)
	left, right, wingY, targetY := f.laserWings()
	height := wingY - targetY
	if height <= 0 {
		return
	}

	flicker := math.Abs(math.Sin(f.effects.LaserFire.Elapsed.Seconds() * 50))
	band := height / laserBands
	for _, x := range []float64{left, right} {
		for i := range laserBands {
			t := (float64(i) + 0.5) / laserBands
			col := draw.Mix(pal.edge, pal.mid, 1-math.Abs(2*t-1))
			ctx.Canvas.FillRect(x-8, targetY+float64(i)*band, 16, band+1, col)
		}
		ctx.Canvas.FillRect(x-3, targetY, 6, height, pal.core)
		ctx.Canvas.StrokeCircle(x, targetY, 30, pal.glow)
		ctx.Canvas.FillCircle(x, targetY, 20+flicker*10, pal.flare)
	}
}
