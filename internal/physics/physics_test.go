package physics

import (
	"math"
	"testing"
)

func TestIntegrateClampsAndZeroesVelocity(t *testing.T) {
	bounds := InsetBounds(1200, 800, 50)
	b := &Body{X: 1140, Y: 400, VX: 30, VY: 0}

	clampedX, clampedY := Integrate(b, 0, 0, 0.92, 0, 1, bounds)
	if !clampedX || clampedY {
		t.Fatalf("clamped = (%v, %v), want (true, false)", clampedX, clampedY)
	}
	if b.X != bounds.MaxX {
		t.Fatalf("x = %f, want %f", b.X, bounds.MaxX)
	}
	if b.VX != 0 {
		t.Fatalf("vx after clamp = %f, want exactly 0", b.VX)
	}
}

func TestIntegrateWithoutInputStaysInBounds(t *testing.T) {
	bounds := InsetBounds(1200, 800, 50)
	b := &Body{X: 600, Y: 400, VX: -80, VY: 55}

	prevSpeed := math.Hypot(b.VX, b.VY)
	for i := 0; i < 500; i++ {
		cx, cy := Integrate(b, 0, 0, 0.92, 0, 1, bounds)
		if b.X < bounds.MinX || b.X > bounds.MaxX || b.Y < bounds.MinY || b.Y > bounds.MaxY {
			t.Fatalf("frame %d: body left bounds at (%f, %f)", i, b.X, b.Y)
		}
		if cx && b.VX != 0 {
			t.Fatalf("frame %d: vx = %f after x clamp", i, b.VX)
		}
		if cy && b.VY != 0 {
			t.Fatalf("frame %d: vy = %f after y clamp", i, b.VY)
		}
		speed := math.Hypot(b.VX, b.VY)
		if speed > prevSpeed {
			t.Fatalf("frame %d: speed grew from %f to %f without input", i, prevSpeed, speed)
		}
		prevSpeed = speed
	}
}

func TestIntegrateCapsSpeed(t *testing.T) {
	b := &Body{X: 600, Y: 400}
	for i := 0; i < 100; i++ {
		Integrate(b, 5, 0, 1, 6, 1, InsetBounds(1e6, 1e6, 0))
	}
	if got := math.Hypot(b.VX, b.VY); got > 6+1e-9 {
		t.Fatalf("speed = %f, want <= 6", got)
	}
}

func TestTiltNeverOvershoots(t *testing.T) {
	tilt := 0.0
	target := 6 * TiltGain
	for i := 0; i < 200; i++ {
		tilt = Tilt(tilt, 6)
		if tilt > target+1e-12 {
			t.Fatalf("step %d: tilt %f overshot target %f", i, tilt, target)
		}
	}
	if math.Abs(tilt-target) > 1e-6 {
		t.Fatalf("tilt = %f, want ~%f", tilt, target)
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi / 2, -math.Pi / 2},
		{-3 * math.Pi / 2, math.Pi / 2},
	}
	for _, tt := range tests {
		got := NormalizeAngle(tt.in)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("NormalizeAngle(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}

func TestSteerTakesShortWay(t *testing.T) {
	// From just below π to just above -π the short turn is positive.
	got := Steer(math.Pi-0.1, -math.Pi+0.1, 0.5)
	if got <= math.Pi-0.1 {
		t.Fatalf("Steer turned the long way: %f", got)
	}
}

func TestPointInBox(t *testing.T) {
	if !PointInBox(10, 10, 0, 0, 11, 11) {
		t.Fatal("expected point inside box")
	}
	if PointInBox(11, 0, 0, 0, 11, 11) {
		t.Fatal("edge point should be outside")
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, r1     float64
		x2, y2, r2     float64
		want           bool
	}{
		{"same center", 5, 5, 1, 5, 5, 1, true},
		{"overlapping", 0, 0, 10, 15, 0, 10, true},
		{"touching", 0, 0, 10, 20, 0, 10, false},
		{"apart", 0, 0, 10, 30, 40, 10, false},
		{"point inside", 0, 0, 30, 29, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CirclesOverlap(tt.x1, tt.y1, tt.r1, tt.x2, tt.y2, tt.r2); got != tt.want {
				t.Errorf("CirclesOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}
