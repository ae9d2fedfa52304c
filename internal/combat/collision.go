package combat

import (
	"math"

	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/object"
	"github.com/tomz197/quizboss/internal/physics"
)

// Impact tuning.
const (
	rocketHitRadius   = 30.0
	bossHitHalfWidth  = 390.0 // Before gameScale
	bossHitHalfHeight = 160.0
)

var (
	explosionOrange = draw.Hex("#ff4400")
	explosionYellow = draw.Hex("#ffff00")
	smokeGray       = draw.Hex("#444444")
)

// resolveCollisions runs after every position update. Hits are visual only;
// scripted damage lives in the attack sequences.
func (f *Fight) resolveCollisions() {
	f.rockets.RemoveIf(f.rocketHit)
	if f.effects.LaserFire.Active {
		f.laserImpact()
	}
}

// rocketHit reports whether r reached its target, or the boss hull when it has
// none, and plays the impact.
func (f *Fight) rocketHit(r *object.Rocket) bool {
	var hit bool
	if r.Target != nil {
		hit = physics.CirclesOverlap(r.X, r.Y, rocketHitRadius, r.Target.X, r.Target.Y, 0)
	} else {
		s := f.layout.Scale
		hit = physics.PointInBox(r.X, r.Y, f.boss.X, f.boss.Y, bossHitHalfWidth*s, bossHitHalfHeight*s)
	}
	if !hit {
		return false
	}

	relX, relY := f.boss.ToLocal(r.X, r.Y)
	f.boss.Scorch.Spawn(&object.ScorchMark{
		RelX:       relX,
		RelY:       relY,
		BaseRadius: f.rng.Float64()*15 + 20,
		HasSmoke:   f.rng.Float64() < 0.2,
	})

	f.shake.Set(20)
	f.sound.Explosion()
	f.burst(r.X, r.Y, 30, spark{explosionOrange, 4}, spark{explosionYellow, 3})
	return true
}

// laserImpact sprays sparks and scorches the hull while a beam is on the boss.
func (f *Fight) laserImpact() {
	left, right, _, targetY := f.laserWings()
	reach := laserHitRange * f.layout.Scale
	if math.Abs(f.boss.X-left) >= reach && math.Abs(f.boss.X-right) >= reach {
		return
	}
	pal := laserPalette(f.combo)
	wing := func() float64 {
		if f.rng.Float64() > 0.5 {
			return left
		}
		return right
	}

	for range 8 {
		x := wing() + (f.rng.Float64()-0.5)*20
		y := targetY + (f.rng.Float64()-0.5)*20
		f.particles.Spawn(object.NewSpark(f.rng, x, y, pal.spark, 4))
	}
	if f.rng.Float64() < 0.5 {
		f.particles.Spawn(object.NewSpark(f.rng, wing(), targetY, pal.smoke, 2))
	}
	if f.rng.Float64() < 0.2 {
		relX, _ := f.boss.ToLocal(wing(), 0)
		f.boss.Scorch.Spawn(&object.ScorchMark{
			RelX:       relX + (f.rng.Float64()-0.5)*20,
			RelY:       (laserTargetY + (f.rng.Float64()-0.5)*30) / object.BossBaseScale,
			BaseRadius: f.rng.Float64()*8 + 4,
			HasSmoke:   f.rng.Float64() < 0.1,
		})
	}
}

// emitBossSmoke lets smoking scorch marks trail smoke and embers.
func (f *Fight) emitBossSmoke() {
	for _, m := range f.boss.Scorch.Items() {
		if !m.HasSmoke {
			continue
		}
		x, y := f.boss.ToScreen(m.RelX, m.RelY)
		r := m.BaseRadius * f.layout.Scale
		if f.rng.Float64() < 0.4 {
			f.particles.Spawn(object.NewSpark(f.rng,
				x+(f.rng.Float64()-0.5)*r, y+(f.rng.Float64()-0.5)*r, smokeGray, 0.8))
		}
		if f.rng.Float64() < 0.15 {
			f.particles.Spawn(object.NewSpark(f.rng,
				x+(f.rng.Float64()-0.5)*r, y+(f.rng.Float64()-0.5)*r, explosionOrange, 1.5))
		}
	}
}
