// Package physics provides the ship integrator, steering and distance utilities.
package physics

import "math"

// Body is a point mass with position and velocity in logical units.
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Bounds is the axis-aligned box a body is kept inside.
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// InsetBounds returns the screen box shrunk by margin on every side.
func InsetBounds(width, height, margin float64) Bounds {
	return Bounds{MinX: margin, MinY: margin, MaxX: width - margin, MaxY: height - margin}
}

// Integrate advances b by one step. Rates are per reference frame; step scales them
// to the actual frame length (step == 1 at 60 FPS).
//
// Input acceleration is applied first, then friction, then the speed cap. Position
// is clamped to bounds and the velocity component along a clamped axis is zeroed.
// Returns which axes were clamped.
func Integrate(b *Body, ax, ay, friction, maxSpeed, step float64, bounds Bounds) (clampedX, clampedY bool) {
	b.VX += ax * step
	b.VY += ay * step

	f := math.Pow(friction, step)
	b.VX *= f
	b.VY *= f

	if maxSpeed > 0 {
		speed := math.Hypot(b.VX, b.VY)
		if speed > maxSpeed {
			scale := maxSpeed / speed
			b.VX *= scale
			b.VY *= scale
		}
	}

	b.X += b.VX * step
	b.Y += b.VY * step

	if b.X < bounds.MinX {
		b.X, b.VX, clampedX = bounds.MinX, 0, true
	} else if b.X > bounds.MaxX {
		b.X, b.VX, clampedX = bounds.MaxX, 0, true
	}
	if b.Y < bounds.MinY {
		b.Y, b.VY, clampedY = bounds.MinY, 0, true
	} else if b.Y > bounds.MaxY {
		b.Y, b.VY, clampedY = bounds.MaxY, 0, true
	}
	return clampedX, clampedY
}

// Tilt gain and smoothing factor for the banking visual.
const (
	TiltGain      = 0.05
	TiltSmoothing = 0.9
)

// Tilt smooths the banking angle toward vx*TiltGain. The result is a convex
// combination of prev and the target, so it never overshoots.
func Tilt(prev, vx float64) float64 {
	return prev*TiltSmoothing + (vx*TiltGain)*(1-TiltSmoothing)
}

// NormalizeAngle wraps a into (-π, π].
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// Steer turns angle toward target by rate (0..1) of the wrapped error.
func Steer(angle, target, rate float64) float64 {
	return angle + NormalizeAngle(target-angle)*rate
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// PointInCircle checks if a point is within radius of a target position.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return DistanceSquared(px, py, cx, cy) <= radius*radius
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// PointInBox checks if a point lies strictly within half-extents hw, hh of a center.
func PointInBox(px, py, cx, cy, hw, hh float64) bool {
	return math.Abs(px-cx) < hw && math.Abs(py-cy) < hh
}
