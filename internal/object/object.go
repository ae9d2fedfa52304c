// Package object defines the drawable, updatable entities of the fight and the
// pools that hold them.
package object

import (
	"math/rand"
	"time"

	"github.com/tomz197/quizboss/internal/draw"
)

// RefFrame is the frame length all per-update rates are expressed in.
const RefFrame = time.Second / 60

// Step converts a frame delta into reference frames. A 60 FPS frame is exactly 1.
func Step(dt time.Duration) float64 {
	return float64(dt) / float64(RefFrame)
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta  time.Duration
	Step   float64 // Delta in reference frames
	Screen Screen
	Scale  float64 // gameScale of the current layout
	ShipVX float64 // Ship velocity, for parallax
	ShipVY float64
	Rand   *rand.Rand
}

// DrawContext provides drawing resources for entities.
type DrawContext struct {
	Canvas *draw.Canvas
	Screen Screen
	Scale  float64
	Ship   draw.Point // Anchor for ship-centered effects
	Boss   draw.Point // Anchor for boss-relative decals
	Combo  bool       // Harsh weapon palette
}

// Screen represents the logical play field dimensions.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a Screen with its center filled in.
func NewScreen(width, height int) Screen {
	return Screen{Width: width, Height: height, CenterX: width / 2, CenterY: height / 2}
}

// Entity is a drawable and updatable pool member.
type Entity interface {
	// Update advances the entity. Returns true if it should be removed.
	Update(ctx UpdateContext) (remove bool)

	// Draw renders the entity onto ctx.Canvas.
	Draw(ctx DrawContext)
}

// Releasable is implemented by pooled objects that can be returned to a pool.
type Releasable interface {
	// Release returns the object to its pool for reuse.
	Release()
}

// ReleaseObject releases an object back to its pool if it implements Releasable.
func ReleaseObject(obj any) {
	if r, ok := obj.(Releasable); ok {
		r.Release()
	}
}

// BlinkVisible reports whether a blinking sprite is drawn at elapsed time into
// the blink. The sprite is hidden during even periods.
func BlinkVisible(elapsed, period time.Duration) bool {
	if period <= 0 {
		return true
	}
	return (elapsed/period)%2 != 0
}
