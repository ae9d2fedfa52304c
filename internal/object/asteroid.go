package object

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tomz197/quizboss/internal/draw"
)

// Asteroid is a background rock drifting down the play field.
type Asteroid struct {
	X, Y          float64 // Position (center)
	VX, VY        float64 // Velocity per frame
	Angle         float64 // Current rotation angle
	RotationSpeed float64 // Radians per frame
	Size          float64 // Nominal radius
	Vertices      []float64
	Color         colorful.Color
}

var (
	asteroidFill   = draw.Hex("#222222")
	asteroidCrater = draw.Hex("#000000")
	asteroidEdges  = []colorful.Color{draw.Hex("#555555"), draw.Hex("#666666")}
)

// NewAsteroid creates an asteroid at a random x. Fresh asteroids start above the
// screen; scattered ones start anywhere on it.
func NewAsteroid(rng *rand.Rand, screen Screen, scattered bool) *Asteroid {
	a := &Asteroid{}
	a.reset(rng, screen, scattered)
	return a
}

func (a *Asteroid) reset(rng *rand.Rand, screen Screen, scattered bool) {
	size := rng.Float64()*40 + 20

	// Irregular polygon, 7-11 vertices with ±30% jaggedness.
	numVerts := 7 + rng.Intn(5)
	vertices := make([]float64, numVerts)
	for i := range vertices {
		vertices[i] = size * (0.7 + rng.Float64()*0.6)
	}

	y := -100.0
	if scattered {
		y = rng.Float64() * float64(screen.Height)
	}

	*a = Asteroid{
		X:             rng.Float64() * float64(screen.Width),
		Y:             y,
		VX:            (rng.Float64() - 0.5) * 0.5,
		VY:            rng.Float64()*1.5 + 0.5,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.02,
		Size:          size,
		Vertices:      vertices,
		Color:         asteroidEdges[rng.Intn(len(asteroidEdges))],
	}
}

// Update drifts and rotates the asteroid, respawning it above the screen once it
// falls off the bottom and wrapping it horizontally.
func (a *Asteroid) Update(ctx UpdateContext) bool {
	a.X += a.VX * ctx.Step
	a.Y += a.VY * ctx.Step
	a.Angle += a.RotationSpeed * ctx.Step

	w := float64(ctx.Screen.Width)
	if a.Y > float64(ctx.Screen.Height)+100 {
		a.reset(ctx.Rand, ctx.Screen, false)
	}
	if a.X > w+100 {
		a.X = -100
	}
	if a.X < -100 {
		a.X = w + 100
	}
	return false
}

// Draw renders the asteroid as a filled irregular polygon with a crater.
func (a *Asteroid) Draw(ctx DrawContext) {
	numVerts := len(a.Vertices)
	points := ctx.Canvas.BorrowPoints(numVerts)

	for i, dist := range a.Vertices {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(numVerts)
		points[i] = draw.Point{
			X: a.X + math.Cos(vertAngle)*dist,
			Y: a.Y + math.Sin(vertAngle)*dist,
		}
	}
	ctx.Canvas.DrawPolygon(points, true, asteroidFill)
	ctx.Canvas.DrawPolygon(points, false, a.Color)

	cos, sin := math.Cos(a.Angle), math.Sin(a.Angle)
	cx, cy := a.Size*0.3, a.Size*0.2
	ctx.Canvas.FillCircle(a.X+cx*cos-cy*sin, a.Y+cx*sin+cy*cos, a.Size*0.1, asteroidCrater)
}
