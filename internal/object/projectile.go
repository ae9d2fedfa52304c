package object

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/physics"
)

// Rocket tuning.
const (
	RocketTurnRate = 0.1   // Fraction of the heading error corrected per frame
	RocketMargin   = 100.0 // Distance outside the screen at which rockets are culled
)

// Rocket is a homing missile. Angle 0 points up; positive angles turn clockwise.
type Rocket struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Accel    float64
	MaxSpeed float64
	Target   *draw.Point // nil for dumb-fire
	age      float64
}

// Bearing returns the heading that points the rocket at its target.
func (r *Rocket) Bearing() float64 {
	if r.Target == nil {
		return r.Angle
	}
	return math.Atan2(r.Target.Y-r.Y, r.Target.X-r.X) + math.Pi/2
}

// Update steers toward the target, accelerates up to MaxSpeed and moves.
// Returns true once the rocket leaves the extended screen on the left, right or top.
func (r *Rocket) Update(ctx UpdateContext) bool {
	if r.Target != nil {
		r.Angle = physics.Steer(r.Angle, r.Bearing(), math.Min(1, RocketTurnRate*ctx.Step))
		r.Speed = math.Min(r.Speed+r.Accel*ctx.Step, r.MaxSpeed)
	}

	r.X += math.Sin(r.Angle) * r.Speed * ctx.Step
	r.Y -= math.Cos(r.Angle) * r.Speed * ctx.Step
	r.age += ctx.Step

	w := float64(ctx.Screen.Width)
	return r.Y < -RocketMargin || r.X < -RocketMargin || r.X > w+RocketMargin
}

var (
	rocketBody   = draw.Hex("#ff0000")
	rocketNose   = draw.Hex("#ffff00")
	rocketBand   = draw.Hex("#cc0000")
	rocketNozzle = draw.Hex("#ff8800")
	rocketFlame  = draw.Hex("#ffff00")
	rocketCore   = draw.Hex("#ff6600")
)

// Draw renders the rocket body, nose cone and flickering exhaust.
func (r *Rocket) Draw(ctx DrawContext) {
	flame := 18 + math.Sin(r.age*0.167)*6

	r.polygon(ctx, rocketBody, -6, -35, 6, -35, 6, 25, -6, 25)
	r.polygon(ctx, rocketNose, -6, -35, 0, -50, 6, -35)
	r.polygon(ctx, rocketBand, -6, -15, 6, -15, 6, -12, -6, -12)
	r.polygon(ctx, rocketBand, -6, 5, 6, 5, 6, 8, -6, 8)
	r.polygon(ctx, rocketNozzle, -5, 25, 5, 25, 5, 33, -5, 33)
	r.polygon(ctx, rocketFlame, -5, 33, -12, 33+flame, 12, 33+flame, 5, 33)
	r.polygon(ctx, rocketCore, -3, 33, -8, 33+flame*0.7, 8, 33+flame*0.7, 3, 33)
}

// polygon draws local-space vertex pairs rotated by the rocket heading.
func (r *Rocket) polygon(ctx DrawContext, col colorful.Color, coords ...float64) {
	pts := ctx.Canvas.BorrowPoints(len(coords) / 2)
	cos, sin := math.Cos(r.Angle), math.Sin(r.Angle)
	for i := range pts {
		lx, ly := coords[i*2], coords[i*2+1]
		pts[i] = draw.Point{X: r.X + lx*cos - ly*sin, Y: r.Y + lx*sin + ly*cos}
	}
	ctx.Canvas.DrawPolygon(pts, true, col)
}

// plasmaFade is the alpha a plasma wave loses per reference frame.
const plasmaFade = 0.02

// Hero plasma palette.
var (
	plasmaNormal = draw.Hex("#ffaa00")
	plasmaCombo  = draw.Hex("#8b0000")
)

// PlasmaWave is an expanding ring. Anchored waves are centered on the ship and
// take the hero palette; free waves travel with their own velocity and color.
type PlasmaWave struct {
	X, Y     float64
	VX, VY   float64
	Radius   float64
	Speed    float64 // Radius growth per frame
	Alpha    float64
	Color    colorful.Color
	Anchored bool
}

// Update grows and fades the wave.
func (w *PlasmaWave) Update(ctx UpdateContext) bool {
	w.Radius += w.Speed * ctx.Step
	w.Alpha -= plasmaFade * ctx.Step
	if !w.Anchored {
		w.X += w.VX * ctx.Step
		w.Y += w.VY * ctx.Step
	}
	return w.Alpha <= 0
}

// Draw renders the ring outline.
func (w *PlasmaWave) Draw(ctx DrawContext) {
	x, y, col := w.X, w.Y, w.Color
	if w.Anchored {
		x, y = ctx.Ship.X, ctx.Ship.Y
		col = plasmaNormal
		if ctx.Combo {
			col = plasmaCombo
		}
	}
	ctx.Canvas.StrokeCircle(x, y, w.Radius, draw.Fade(col, w.Alpha))
}
