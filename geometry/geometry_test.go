package geometry

import (
	"math"
	"testing"
)

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 50}

	inside := []Point{{X: 10, Y: 20}, {X: 50, Y: 40}, {X: 109.9, Y: 69.9}}
	for _, p := range inside {
		if !r.Contains(p) {
			t.Errorf("Expected %v to be inside %v", p, r)
		}
	}

	outside := []Point{{X: 110, Y: 40}, {X: 50, Y: 70}, {X: 9.9, Y: 40}, {X: 50, Y: 19.9}}
	for _, p := range outside {
		if r.Contains(p) {
			t.Errorf("Expected %v to be outside %v", p, r)
		}
	}
}

func TestRectAroundCentersTheRect(t *testing.T) {
	r := RectAround(Point{X: 100, Y: 100}, Size{W: 120, H: 70})
	if r.X != 40 || r.Y != 65 || r.W != 120 || r.H != 70 {
		t.Errorf("Unexpected rect: %+v", r)
	}
}

func TestPortPoints(t *testing.T) {
	center := Point{X: 100, Y: 100}
	size := Size{W: 120, H: 70}

	out := PortPoint(center, size, PortOutgoing, 15)
	if out.X != 55 || out.Y != 135 {
		t.Errorf("Outgoing port: expected (55,135), got (%v,%v)", out.X, out.Y)
	}

	in := PortPoint(center, size, PortIncoming, 15)
	if in.X != 55 || in.Y != 65 {
		t.Errorf("Incoming port: expected (55,65), got (%v,%v)", in.X, in.Y)
	}
}

func TestDistance(t *testing.T) {
	d := Point{X: 0, Y: 0}.Distance(Point{X: 3, Y: 4})
	if math.Abs(d-5) > 1e-9 {
		t.Errorf("Expected distance 5, got %v", d)
	}
}

func TestPortKindString(t *testing.T) {
	if PortOutgoing.String() != "outgoing" || PortIncoming.String() != "incoming" {
		t.Errorf("Unexpected port kind names: %s, %s", PortOutgoing, PortIncoming)
	}
}
