package combat

import (
	"math"
	"time"

	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/object"
)

// Boss attack script.
const (
	BossFireDelay    = 1500 * time.Millisecond
	BossImpactDelay  = 1000 * time.Millisecond
	BossDefeatDelay  = 2000 * time.Millisecond
	BossRecoverDelay = 3000 * time.Millisecond

	chargeBursts     = 60
	chargeBurstEvery = 20 * time.Millisecond
	beamParticles    = 150
	ringWaves        = 20
	impactBursts     = 100
)

var (
	bossRed     = draw.Hex("#ff0000")
	beamColors  = [3]string{"#ff0000", "#8b0000", "#ff4400"}
	impactBlack = draw.Hex("#000000")
)

// TriggerBossAttack starts the boss's charge, barrage and impact for a wrong
// answer. The sequence costs the player exactly one life.
func (f *Fight) TriggerBossAttack() error {
	if f.phase != AwaitingAnswer {
		f.log.Warn("boss attack rejected", "phase", f.phase)
		return ErrBusy
	}
	f.phase = BossSequence

	f.effects.StartBossCharge()
	f.sound.BossCharge()

	// Energy flows from both side armor plates into the core.
	scale := object.BossBaseScale * f.layout.Scale
	leftX, rightX := f.boss.X-220*scale, f.boss.X+220*scale
	armorY := f.boss.Y + 20*scale
	coreX, coreY := f.boss.X, f.boss.Y+45*scale

	for i := range chargeBursts {
		f.timeline.After(time.Duration(i)*chargeBurstEvery, func() {
			for _, x := range []float64{leftX, rightX} {
				f.energy.Spawn(&object.EnergyParticle{
					X:      x + (f.rng.Float64()-0.5)*40,
					Y:      armorY + (f.rng.Float64()-0.5)*40,
					TX:     coreX,
					TY:     coreY,
					Speed:  f.rng.Float64()*5 + 8,
					Radius: f.rng.Float64()*3 + 2,
					Color:  bossRed,
				})
			}
		})
	}

	f.timeline.After(BossFireDelay, func() { f.bossFire(coreX, coreY) })
	return nil
}

// bossFire releases the triple beam and the ring of plasma.
func (f *Fight) bossFire(coreX, coreY float64) {
	f.effects.BossPhase = BossFiring
	f.shake.Set(40)
	f.sound.BossFire()
	f.sound.Explosion()

	f.energy.Clear()

	// Three beams fanning out around the ship. Spawn order is shuffled along the
	// beam so particle-cap eviction thins every beam evenly.
	scale := f.layout.Scale
	for _, i := range f.rng.Perm(beamParticles) {
		t := float64(i) / beamParticles
		for b, hex := range beamColors {
			endX := f.ship.X + float64(b-1)*110*scale
			f.particles.Spawn(object.NewParticle(
				coreX+(endX-coreX)*t+(f.rng.Float64()-0.5)*10*scale,
				coreY+(f.ship.Y-coreY)*t+(f.rng.Float64()-0.5)*10*scale,
				(f.rng.Float64()-0.5)*10,
				(f.rng.Float64()-0.5)*10,
				1.5, 0.03,
				f.rng.Float64()*6+3,
				draw.Hex(hex),
			))
		}
	}

	for i := range ringWaves {
		angle := float64(i) / ringWaves * 2 * math.Pi
		f.waves.Spawn(&object.PlasmaWave{
			X:      coreX,
			Y:      coreY,
			VX:     math.Cos(angle) * 10 * scale,
			VY:     math.Sin(angle) * 10 * scale,
			Radius: 10 * scale,
			Speed:  8 * scale,
			Alpha:  1,
			Color:  bossRed,
		})
	}

	f.timeline.After(BossImpactDelay, f.bossImpact)
}

// bossImpact costs one life and decides between defeat and the next question.
func (f *Fight) bossImpact() {
	f.shake.Set(50)
	f.state.Lives--
	f.effects.Blink.Start()
	f.effects.BossPhase = BossIdle
	f.effects.BossGlow = 0

	f.burst(f.ship.X, f.ship.Y, impactBursts, spark{bossRed, 8}, spark{impactBlack, 6})
	f.log.Debug("ship hit", "lives", f.state.Lives)

	if f.state.Lives <= 0 {
		f.timeline.After(BossDefeatDelay, func() { f.endGame(false) })
		return
	}
	f.timeline.After(BossRecoverDelay, f.nextQuestion)
}
