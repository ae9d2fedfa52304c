// Package draw renders the logical play field onto a terminal with half-block pixels.
package draw

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Black is the background every faded color blends toward.
var Black = colorful.Color{}

// White is the fallback for colors that fail to parse.
var White = colorful.Color{R: 1, G: 1, B: 1}

// Hex parses a "#rrggbb" or "#rgb" color. Unparseable input yields White so a
// bad palette entry is visible rather than fatal.
func Hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return White
	}
	return c
}

// Fade returns c composited over black with the given alpha (0..1).
func Fade(c colorful.Color, alpha float64) colorful.Color {
	if alpha >= 1 {
		return c
	}
	if alpha <= 0 {
		return Black
	}
	return Black.BlendRgb(c, alpha).Clamped()
}

// Mix blends a toward b by t (0..1) in RGB space.
func Mix(a, b colorful.Color, t float64) colorful.Color {
	return a.BlendRgb(b, math.Max(0, math.Min(1, t))).Clamped()
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
