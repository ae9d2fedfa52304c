package combat

import (
	"math"

	"github.com/tomz197/quizboss/internal/physics"
)

// Logical play field and scaling.
const (
	LogicalWidth  = 1200.0
	LogicalHeight = 800.0

	referenceWidth = 1200.0
	minGameScale   = 0.4
	screenMargin   = 50.0
)

// GameScale returns the layout scale for a surface width: width/1200 capped at
// 1 and floored at 0.4.
func GameScale(width float64) float64 {
	return math.Max(minGameScale, math.Min(width/referenceWidth, 1))
}

// Layout describes the surface the fight is laid out on.
type Layout struct {
	Width, Height float64
	Scale         float64
}

// NewLayout computes the layout for a surface size.
func NewLayout(width, height float64) Layout {
	return Layout{Width: width, Height: height, Scale: GameScale(width)}
}

// ShipHome is the ship's resting position near the bottom.
func (l Layout) ShipHome() (x, y float64) {
	return l.Width / 2, l.Height - 180*l.Scale
}

// BossHome is the boss's fixed position near the top.
func (l Layout) BossHome() (x, y float64) {
	return l.Width / 2, 150 * l.Scale
}

// ShipBounds keeps the ship 50 scaled units from every edge.
func (l Layout) ShipBounds() physics.Bounds {
	return physics.InsetBounds(l.Width, l.Height, screenMargin*l.Scale)
}
