package object

import (
	"math"
	"math/rand"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/physics"
)

// Pool limits for the bounded effect pools.
const (
	MaxParticles       = 300
	MaxEnergyParticles = 100
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. Life doubles as its alpha.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Decay  float64 // Life lost per reference frame
	Radius float64
	Color  colorful.Color
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, life, decay, radius float64, color colorful.Color) *Particle {
	p := particlePool.Get().(*Particle)
	*p = Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Life:   life,
		Decay:  decay,
		Radius: radius,
		Color:  color,
	}
	return p
}

// NewSpark creates a burst particle with a random velocity within ±speed*2 on each
// axis, full life, decay 0.02 and radius 1..4.
func NewSpark(rng *rand.Rand, x, y float64, color colorful.Color, speed float64) *Particle {
	return NewParticle(
		x, y,
		(rng.Float64()-0.5)*speed*4,
		(rng.Float64()-0.5)*speed*4,
		1, 0.02,
		rng.Float64()*3+1,
		color,
	)
}

// Release returns the particle to the pool for reuse.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Update moves the particle and burns its life.
func (p *Particle) Update(ctx UpdateContext) bool {
	p.X += p.VX * ctx.Step
	p.Y += p.VY * ctx.Step
	p.Life -= p.Decay * ctx.Step
	return p.Life <= 0
}

// Draw renders the particle as a disc faded by its remaining life.
func (p *Particle) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(p.X, p.Y, p.Radius, draw.Fade(p.Color, p.Life))
}

// EnergyArrivalRadius is the distance at which a homing energy particle is absorbed.
const EnergyArrivalRadius = 5.0

// EnergyParticle homes in on a fixed point and disappears on arrival.
type EnergyParticle struct {
	X, Y   float64
	TX, TY float64 // Target
	Speed  float64
	Radius float64
	Color  colorful.Color
}

// NewConvergingEnergy spawns an energy particle on a ring 150..400 units around the
// target, drifting inward at 3..7 units per frame in a violet hue.
func NewConvergingEnergy(rng *rand.Rand, tx, ty float64) *EnergyParticle {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64()*250 + 150
	return &EnergyParticle{
		X:      tx + math.Cos(angle)*dist,
		Y:      ty + math.Sin(angle)*dist,
		TX:     tx,
		TY:     ty,
		Speed:  rng.Float64()*4 + 3,
		Radius: rng.Float64()*3 + 1,
		Color:  colorful.Hsl(rng.Float64()*60+280, 1, 0.6),
	}
}

// Update moves toward the target without overshooting it.
func (e *EnergyParticle) Update(ctx UpdateContext) bool {
	dist := physics.Distance(e.X, e.Y, e.TX, e.TY)
	if dist <= EnergyArrivalRadius {
		return true
	}
	move := math.Min(e.Speed*ctx.Step, dist)
	e.X += (e.TX - e.X) / dist * move
	e.Y += (e.TY - e.Y) / dist * move
	return false
}

// Draw renders the energy particle at full brightness.
func (e *EnergyParticle) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(e.X, e.Y, e.Radius, e.Color)
}

// EngineTrail is exhaust left behind the ship's engines.
type EngineTrail struct {
	X, Y   float64
	Radius float64
	Life   float64
	Speed  float64
	Color  colorful.Color
}

// trailDecay is the life an engine trail loses per reference frame.
const trailDecay = 0.03

// Update drifts the trail downward and fades it.
func (t *EngineTrail) Update(ctx UpdateContext) bool {
	t.Y += t.Speed * ctx.Step
	t.Life -= trailDecay * ctx.Step
	return t.Life <= 0
}

// Draw renders the trail faded by its remaining life.
func (t *EngineTrail) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(t.X, t.Y, t.Radius, draw.Fade(t.Color, t.Life))
}
