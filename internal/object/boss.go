package object

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
)

// Boss sprite constants.
const (
	BossBaseScale  = 1.3 // Sprite scale before gameScale
	MaxScorchMarks = 120
)

// ScorchMark is a damage decal. RelX/RelY are in the boss's local space
// (screen offset divided by BossBaseScale).
type ScorchMark struct {
	RelX, RelY float64
	BaseRadius float64 // Before gameScale
	HasSmoke   bool
}

// Update is a no-op; decals persist until evicted.
func (m *ScorchMark) Update(UpdateContext) bool {
	return false
}

var (
	scorchCore = draw.Hex("#0a0000")
	scorchRim  = draw.Hex("#ff3c00")
	scorchHeat = draw.Hex("#641400")
)

// Draw renders the decal relative to ctx.Boss.
func (m *ScorchMark) Draw(ctx DrawContext) {
	x, y := ctx.Boss.X+m.RelX*BossBaseScale, ctx.Boss.Y+m.RelY*BossBaseScale
	r := m.BaseRadius * ctx.Scale
	ctx.Canvas.FillCircle(x, y, r, scorchCore)
	ctx.Canvas.StrokeCircle(x, y, r, draw.Fade(scorchRim, 0.6))
	ctx.Canvas.FillCircle(x, y, r*0.6, draw.Fade(scorchHeat, 0.8))
}

// Boss is the mothership at the top of the screen.
type Boss struct {
	X, Y      float64
	Health    float64
	MaxHealth float64
	Scorch    *Pool[*ScorchMark]

	// Core glow (0..1) set by the fight before each draw.
	Glow float64
}

// NewBoss creates a boss with full health and an empty decal pool.
func NewBoss(x, y, maxHealth float64) *Boss {
	return &Boss{
		X:         x,
		Y:         y,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Scorch:    NewPool[*ScorchMark](MaxScorchMarks),
	}
}

// ToLocal converts a screen point to boss-local decal coordinates.
func (b *Boss) ToLocal(x, y float64) (float64, float64) {
	return (x - b.X) / BossBaseScale, (y - b.Y) / BossBaseScale
}

// ToScreen converts boss-local decal coordinates back to screen space.
func (b *Boss) ToScreen(relX, relY float64) (float64, float64) {
	return b.X + relX*BossBaseScale, b.Y + relY*BossBaseScale
}

var (
	bossHull     = draw.Hex("#1a1a1a")
	bossEdge     = draw.Hex("#5a5a5a")
	bossArmor    = draw.Hex("#2b2b2b")
	bossLauncher = draw.Hex("#3a0d0d")
	bossCoreIdle = draw.Hex("#400000")
	bossCoreHot  = draw.Hex("#ff2020")
	bossDamage   = draw.Hex("#ff0000")
)

// hullOutline approximates the curved hull in sprite space.
var hullOutline = []float64{
	-200, -50, -240, -32, -268, -5, -280, 20, -260, 80, -150, 100,
	150, 100, 260, 80, 280, 20, 268, -5, 240, -32, 200, -50, 0, -80,
}

// Draw renders hull, armor, launchers and the charge core.
func (b *Boss) Draw(ctx DrawContext) {
	scale := BossBaseScale * ctx.Scale

	damage := 0.0
	if b.MaxHealth > 0 {
		damage = (b.MaxHealth - b.Health) / b.MaxHealth
	}
	edge := draw.Mix(bossEdge, bossDamage, damage*0.6)

	b.polygon(ctx, scale, bossHull, true, hullOutline...)
	b.polygon(ctx, scale, edge, false, hullOutline...)
	b.polygon(ctx, scale, bossArmor, true, -250, 0, -190, 0, -190, 45, -250, 45)
	b.polygon(ctx, scale, bossArmor, true, 190, 0, 250, 0, 250, 45, 190, 45)
	b.polygon(ctx, scale, bossLauncher, true, -300, -10, -280, -10, -280, 20, -300, 20)
	b.polygon(ctx, scale, bossLauncher, true, 240, -10, 260, -10, 260, 20, 240, 20)
	for x := -120.0; x <= 120; x += 60 {
		b.polygon(ctx, scale, bossArmor, true, x-14, 70, x+14, 70, x+10, 96, x-10, 96)
	}

	core := draw.Mix(bossCoreIdle, bossCoreHot, b.Glow)
	ctx.Canvas.FillCircle(b.X, b.Y+45*scale, 24*scale, core)
	if b.Glow > 0 {
		ctx.Canvas.StrokeCircle(b.X, b.Y+45*scale, (30+b.Glow*20)*scale, draw.Fade(bossCoreHot, b.Glow))
	}
}

func (b *Boss) polygon(ctx DrawContext, scale float64, col colorful.Color, filled bool, coords ...float64) {
	pts := ctx.Canvas.BorrowPoints(len(coords) / 2)
	for i := range pts {
		pts[i] = draw.Point{X: b.X + coords[i*2]*scale, Y: b.Y + coords[i*2+1]*scale}
	}
	ctx.Canvas.DrawPolygon(pts, filled, col)
}
