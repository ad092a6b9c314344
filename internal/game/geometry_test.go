package game

import (
	"math"
	"testing"
)

func TestRectContains_EdgesInclusive(t *testing.T) {
	r := RectAround(Point{X: 100, Y: 100}, 20)

	inside := []Point{
		{100, 100},
		{90, 100}, {110, 100}, {100, 90}, {100, 110}, // edge midpoints
		{90, 90}, {110, 110}, // corners
	}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("(%g,%g) should be contained (edges are inclusive)", p.X, p.Y)
		}
	}

	outside := []Point{
		{89.999, 100}, {110.001, 100}, {100, 89.999}, {100, 110.001},
	}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("(%g,%g) should be outside", p.X, p.Y)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := RectAround(Point{X: 30, Y: 40}, 20)
	c := r.Center()
	if c.X != 30 || c.Y != 40 {
		t.Fatalf("centre should round-trip, got (%g,%g)", c.X, c.Y)
	}
}

func TestStepToward_ExactBearing(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 30, Y: 40} // 3-4-5 triangle, dist 50

	got := p.StepToward(q, 5)
	if math.Abs(got.X-3) > 1e-12 || math.Abs(got.Y-4) > 1e-12 {
		t.Fatalf("expected (3,4), got (%g,%g)", got.X, got.Y)
	}

	// The step length is the full stride regardless of remaining distance.
	if d := p.DistTo(got); math.Abs(d-5) > 1e-12 {
		t.Fatalf("step length should be 5, got %g", d)
	}
}

func TestStepToward_OvershootsNearTarget(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 2, Y: 0}
	got := p.StepToward(q, 5)
	if math.Abs(got.X-5) > 1e-12 {
		t.Fatalf("expected overshoot to x=5, got %g", got.X)
	}
}

func TestBearingTo_Quadrants(t *testing.T) {
	p := Point{}
	cases := []struct {
		q    Point
		want float64
	}{
		{Point{1, 0}, 0},
		{Point{0, 1}, math.Pi / 2},
		{Point{-1, 0}, math.Pi},
		{Point{1, 1}, math.Pi / 4},
	}
	for _, c := range cases {
		if got := p.BearingTo(c.q); math.Abs(got-c.want) > 1e-12 {
			t.Errorf("bearing to (%g,%g): expected %g, got %g", c.q.X, c.q.Y, c.want, got)
		}
	}
}
