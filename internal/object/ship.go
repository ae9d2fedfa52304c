package object

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/physics"
)

// ShipDrawScale is the ship sprite's base scale before gameScale.
const ShipDrawScale = 1.5

// Ship is the player-controlled fighter at the bottom of the screen.
type Ship struct {
	physics.Body

	Friction     float64 // Velocity kept per frame
	Acceleration float64 // Velocity gained per frame of held input
	MaxSpeed     float64
	Tilt         float64 // Banking angle, derived from VX

	// Render state set by the fight before each draw.
	Hidden    bool
	Glow      float64 // 0..1 charge glow
	GlowColor colorful.Color
}

// NewShip creates a ship at the given position.
func NewShip(x, y float64) *Ship {
	return &Ship{
		Body:         physics.Body{X: x, Y: y},
		Friction:     0.92,
		Acceleration: 0.8,
		MaxSpeed:     6,
	}
}

// Move integrates one frame. dirX and dirY are input directions in -1..1.
func (s *Ship) Move(dirX, dirY, step float64, bounds physics.Bounds) {
	physics.Integrate(&s.Body, dirX*s.Acceleration, dirY*s.Acceleration, s.Friction, s.MaxSpeed, step, bounds)
	s.Tilt = physics.Tilt(s.Tilt, s.VX)
}

// engineMount is an exhaust port in unrotated ship space.
type engineMount struct {
	x, y, r float64
	color   colorful.Color
}

var engineMounts = []engineMount{
	{x: -8, y: 46, r: 2, color: draw.Hex("#00ccff")},
	{x: 8, y: 46, r: 2, color: draw.Hex("#00ccff")},
	{x: -22, y: 40, r: 1.5, color: draw.Hex("#00aacc")},
	{x: 22, y: 40, r: 1.5, color: draw.Hex("#00aacc")},
}

// EmitTrails spawns one exhaust puff per engine, rotated with the ship's tilt.
func (s *Ship) EmitTrails(rng *rand.Rand, pool *Pool[*EngineTrail]) {
	cos, sin := math.Cos(s.Tilt), math.Sin(s.Tilt)
	for _, m := range engineMounts {
		lx, ly := m.x*ShipDrawScale, m.y*ShipDrawScale
		pool.Spawn(&EngineTrail{
			X:      s.X + lx*cos - ly*sin + (rng.Float64()-0.5)*4,
			Y:      s.Y + lx*sin + ly*cos + (rng.Float64()-0.5)*4,
			Radius: rng.Float64()*m.r + 1,
			Life:   1,
			Speed:  2,
			Color:  m.color,
		})
	}
}

var (
	shipHull    = draw.Hex("#c9d6e3")
	shipWing    = draw.Hex("#4d6a8a")
	shipCockpit = draw.Hex("#00ccff")
	shipEngine  = draw.Hex("#1a2a3a")
)

// Draw renders the ship rotated by its tilt, with an optional charge glow.
func (s *Ship) Draw(ctx DrawContext) {
	if s.Hidden {
		return
	}
	scale := ShipDrawScale * ctx.Scale

	if s.Glow > 0 {
		ctx.Canvas.StrokeCircle(s.X, s.Y, 60*scale, draw.Fade(s.GlowColor, s.Glow))
		ctx.Canvas.StrokeCircle(s.X, s.Y, 66*scale, draw.Fade(s.GlowColor, s.Glow*0.5))
	}

	s.polygon(ctx, scale, shipWing, -12, -5, -58, 22, -54, 34, -12, 26)
	s.polygon(ctx, scale, shipWing, 12, -5, 58, 22, 54, 34, 12, 26)
	s.polygon(ctx, scale, shipEngine, -26, 28, -18, 28, -18, 42, -26, 42)
	s.polygon(ctx, scale, shipEngine, 18, 28, 26, 28, 26, 42, 18, 42)
	s.polygon(ctx, scale, shipHull, 0, -52, 12, -22, 14, 40, -14, 40, -12, -22)
	s.polygon(ctx, scale, shipCockpit, 0, -34, 6, -18, 0, -8, -6, -18)
}

func (s *Ship) polygon(ctx DrawContext, scale float64, col colorful.Color, coords ...float64) {
	pts := ctx.Canvas.BorrowPoints(len(coords) / 2)
	cos, sin := math.Cos(s.Tilt), math.Sin(s.Tilt)
	for i := range pts {
		lx, ly := coords[i*2]*scale, coords[i*2+1]*scale
		pts[i] = draw.Point{X: s.X + lx*cos - ly*sin, Y: s.Y + lx*sin + ly*cos}
	}
	ctx.Canvas.DrawPolygon(pts, true, col)
}
