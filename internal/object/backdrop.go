package object

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
)

// Star is a parallax background star. Higher layers are closer and faster.
type Star struct {
	X, Y   float64
	Radius float64
	Speed  float64
	Layer  int
	Alpha  float64
}

// Update scrolls the star against the ship's motion and wraps it at the edges.
func (s *Star) Update(ctx UpdateContext) bool {
	layer := float64(s.Layer)
	push := 0.5
	if ctx.ShipVY > 0 {
		push = -0.5
	}
	s.Y += (s.Speed + push*layer*0.5) * ctx.Step
	s.X -= ctx.ShipVX * layer * 0.05 * ctx.Step

	w, h := float64(ctx.Screen.Width), float64(ctx.Screen.Height)
	if s.Y > h {
		s.Y = 0
		s.X = ctx.Rand.Float64() * w
	}
	if s.Y < 0 {
		s.Y = h
		s.X = ctx.Rand.Float64() * w
	}
	if s.X > w {
		s.X = 0
	}
	if s.X < 0 {
		s.X = w
	}
	return false
}

// Draw renders the star as a dim white dot.
func (s *Star) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(s.X, s.Y, s.Radius, draw.Fade(draw.White, s.Alpha))
}

// Nebula is a large faint color cloud.
type Nebula struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Color  colorful.Color
}

var nebulaColors = []colorful.Color{draw.Hex("#6400ff"), draw.Hex("#0064ff")}

// nebulaAlpha keeps nebulae a faint tint behind everything else.
const nebulaAlpha = 0.08

// Update drifts the nebula downward, recycling it above the screen.
func (n *Nebula) Update(ctx UpdateContext) bool {
	n.X += n.VX * ctx.Step
	n.Y += n.VY * ctx.Step
	if n.Y > float64(ctx.Screen.Height)+n.Radius {
		n.Y = -n.Radius
		n.X = ctx.Rand.Float64() * float64(ctx.Screen.Width)
	}
	return false
}

// Draw renders the nebula as a faint disc.
func (n *Nebula) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(n.X, n.Y, n.Radius, draw.Fade(n.Color, nebulaAlpha))
}

// starLayer describes one parallax band.
type starLayer struct {
	count                int
	radiusMin, radiusAdd float64
	speedMin, speedAdd   float64
	alphaMin, alphaAdd   float64
}

var starLayers = []starLayer{
	{count: 200, radiusMin: 0, radiusAdd: 1.0, speedMin: 0.1, speedAdd: 0.2, alphaMin: 0.3, alphaAdd: 0.5},
	{count: 100, radiusMin: 0.5, radiusAdd: 1.5, speedMin: 0.4, speedAdd: 0.5, alphaMin: 0.4, alphaAdd: 0.6},
	{count: 50, radiusMin: 1.0, radiusAdd: 2.0, speedMin: 1.0, speedAdd: 1.5, alphaMin: 0.6, alphaAdd: 0.4},
}

// Background population.
const (
	backdropAsteroids = 8
	backdropNebulae   = 3
)

// Backdrop holds the scenery layers drawn behind the fight.
type Backdrop struct {
	Nebulae   *Pool[*Nebula]
	Stars     *Pool[*Star]
	Asteroids *Pool[*Asteroid]
}

// NewBackdrop seeds three star layers, a handful of asteroids and nebulae.
func NewBackdrop(rng *rand.Rand, screen Screen) *Backdrop {
	b := &Backdrop{
		Nebulae:   NewPool[*Nebula](0),
		Stars:     NewPool[*Star](0),
		Asteroids: NewPool[*Asteroid](0),
	}
	w, h := float64(screen.Width), float64(screen.Height)

	for i, layer := range starLayers {
		for j := 0; j < layer.count; j++ {
			b.Stars.Spawn(&Star{
				X:      rng.Float64() * w,
				Y:      rng.Float64() * h,
				Radius: rng.Float64()*layer.radiusAdd + layer.radiusMin,
				Speed:  rng.Float64()*layer.speedAdd + layer.speedMin,
				Layer:  i + 1,
				Alpha:  rng.Float64()*layer.alphaAdd + layer.alphaMin,
			})
		}
	}
	for i := 0; i < backdropAsteroids; i++ {
		b.Asteroids.Spawn(NewAsteroid(rng, screen, true))
	}
	for i := 0; i < backdropNebulae; i++ {
		b.Nebulae.Spawn(&Nebula{
			X:      rng.Float64() * w,
			Y:      rng.Float64() * h,
			Radius: rng.Float64()*300 + 200,
			Color:  nebulaColors[rng.Intn(len(nebulaColors))],
			VX:     (rng.Float64() - 0.5) * 0.2,
			VY:     0.1,
		})
	}
	return b
}

// Update advances every scenery layer.
func (b *Backdrop) Update(ctx UpdateContext) {
	b.Nebulae.Update(ctx)
	b.Stars.Update(ctx)
	b.Asteroids.Update(ctx)
}

// Draw renders nebulae, then stars, then asteroids.
func (b *Backdrop) Draw(ctx DrawContext) {
	b.Nebulae.Draw(ctx)
	b.Stars.Draw(ctx)
	b.Asteroids.Draw(ctx)
}
