package object

import (
	"math"
	"testing"

	"github.com/tomz197/quizboss/internal/draw"
	"github.com/tomz197/quizboss/internal/physics"
)

func TestRocketHomesAndAccelerates(t *testing.T) {
	ctx := UpdateContext{Step: 1, Screen: NewScreen(1200, 800)}
	r := &Rocket{
		X: 510, Y: 700,
		Angle:    -0.5,
		Speed:    4,
		Accel:    0.6,
		MaxSpeed: 18,
		Target:   &draw.Point{X: 800, Y: 180},
	}

	startErr := math.Abs(physics.NormalizeAngle(r.Bearing() - r.Angle))
	prevSpeed := r.Speed
	for n := 0; n < 25; n++ {
		bearing := r.Bearing()
		before := math.Abs(physics.NormalizeAngle(bearing - r.Angle))
		r.Update(ctx)

		// Steering corrects a fixed fraction of the error toward the pre-move bearing.
		after := math.Abs(physics.NormalizeAngle(bearing - r.Angle))
		if after > before*(1-RocketTurnRate)+1e-9 {
			t.Fatalf("frame %d: heading error %v -> %v", n, before, after)
		}
		if r.Speed < prevSpeed || r.Speed > r.MaxSpeed {
			t.Fatalf("frame %d: speed %v (prev %v, max %v)", n, r.Speed, prevSpeed, r.MaxSpeed)
		}
		prevSpeed = r.Speed
	}
	if r.Speed != r.MaxSpeed {
		t.Errorf("speed = %v after 25 frames, want capped at %v", r.Speed, r.MaxSpeed)
	}
	if err := math.Abs(physics.NormalizeAngle(r.Bearing() - r.Angle)); err > startErr/2 {
		t.Errorf("heading error %v did not converge from %v", err, startErr)
	}
}

func TestRocketCulledOffScreen(t *testing.T) {
	ctx := UpdateContext{Step: 1, Screen: NewScreen(1200, 800)}
	cases := []struct {
		name string
		r    Rocket
	}{
		{"top", Rocket{X: 600, Y: -95, Angle: 0, Speed: 10}},
		{"left", Rocket{X: -95, Y: 400, Angle: -math.Pi / 2, Speed: 10}},
		{"right", Rocket{X: 1295, Y: 400, Angle: math.Pi / 2, Speed: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.r
			if !r.Update(ctx) {
				t.Errorf("rocket at (%v, %v) should be culled", r.X, r.Y)
			}
		})
	}

	below := Rocket{X: 600, Y: 850, Angle: math.Pi, Speed: 10}
	if below.Update(ctx) {
		t.Error("rockets are not culled below the screen")
	}
}

func TestPlasmaWaveFadesOut(t *testing.T) {
	w := &PlasmaWave{X: 100, Y: 100, VX: 2, Radius: 50, Speed: 8, Alpha: 0.8}
	ctx := UpdateContext{Step: 1}

	frames := 0
	for !w.Update(ctx) {
		frames++
		if frames > 100 {
			t.Fatal("wave never faded")
		}
	}
	// 0.8 / 0.02 = 40 frames, allowing for float rounding either side.
	if frames < 38 || frames > 40 {
		t.Errorf("wave lived %d frames, want about 40", frames)
	}
	if w.X <= 100 {
		t.Error("free wave should travel with its velocity")
	}

	anchored := &PlasmaWave{X: 100, Y: 100, VX: 2, Speed: 8, Alpha: 0.8, Anchored: true}
	anchored.Update(ctx)
	if anchored.X != 100 {
		t.Error("anchored wave should not move")
	}
}
