package geometry

import (
	"math"
	"testing"
)

func TestCubicBezierEndpointsAreExact(t *testing.T) {
	p0 := Point{X: -3.5, Y: 12}
	p1 := Point{X: 40, Y: -7}
	p2 := Point{X: 99, Y: 260}
	p3 := Point{X: 17.25, Y: 0.5}

	if got := CubicBezierPoint(p0, p1, p2, p3, 0); got != p0 {
		t.Errorf("At t=0 expected %v, got %v", p0, got)
	}
	if got := CubicBezierPoint(p0, p1, p2, p3, 1); got != p3 {
		t.Errorf("At t=1 expected %v, got %v", p3, got)
	}
}

func TestCubicBezierMidpoint(t *testing.T) {
	// Symmetric control polygon: midpoint is the polygon average weighted
	// by the Bernstein coefficients 1/8, 3/8, 3/8, 1/8.
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 0, Y: 8}
	p2 := Point{X: 8, Y: 8}
	p3 := Point{X: 8, Y: 0}

	got := CubicBezierPoint(p0, p1, p2, p3, 0.5)
	if math.Abs(got.X-4) > 1e-9 || math.Abs(got.Y-6) > 1e-9 {
		t.Errorf("Expected (4,6), got (%v,%v)", got.X, got.Y)
	}
}

func TestConnectorCurveControlPointDirection(t *testing.T) {
	// End to the right of start: controls push rightward from the start
	// and leftward from the end.
	c := ConnectorCurve(Point{X: 0, Y: 100}, Point{X: 200, Y: 0}, 40)
	if c.P1.X != 40 || c.P1.Y != 100 {
		t.Errorf("Forward control: expected (40,100), got (%v,%v)", c.P1.X, c.P1.Y)
	}
	if c.P2.X != 160 || c.P2.Y != 0 {
		t.Errorf("Backward control: expected (160,0), got (%v,%v)", c.P2.X, c.P2.Y)
	}

	// End to the left: the sign flips.
	c = ConnectorCurve(Point{X: 200, Y: 100}, Point{X: 0, Y: 0}, 40)
	if c.P1.X != 160 {
		t.Errorf("Forward control with leftward curve: expected x=160, got %v", c.P1.X)
	}
	if c.P2.X != 40 {
		t.Errorf("Backward control with leftward curve: expected x=40, got %v", c.P2.X)
	}
}

func TestCurveSampleIncludesEndpoints(t *testing.T) {
	c := ConnectorCurve(Point{X: 0, Y: 0}, Point{X: 100, Y: 100}, 40)
	samples := c.Sample(11)
	if len(samples) != 11 {
		t.Fatalf("Expected 11 samples, got %d", len(samples))
	}
	if samples[0] != c.P0 {
		t.Errorf("First sample should be the start anchor, got %v", samples[0])
	}
	if samples[10] != c.P3 {
		t.Errorf("Last sample should be the end anchor, got %v", samples[10])
	}
}

func TestCurveHit(t *testing.T) {
	c := ConnectorCurve(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, 40)

	if !c.Hit(Point{X: 0, Y: 0}, 4, 11) {
		t.Error("Expected a hit at the start anchor")
	}
	if !c.Hit(Point{X: 50, Y: 2}, 4, 11) {
		t.Error("Expected a hit near the curve middle")
	}
	if c.Hit(Point{X: 50, Y: 50}, 4, 11) {
		t.Error("Expected a miss far from the curve")
	}
}
