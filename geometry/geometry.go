// Package geometry contains the pure geometric primitives used throughout
// nodepad: points, rectangles, shape ports and cubic Bezier curves. Every
// function here is stateless and deterministic so hit-testing is reproducible.
package geometry

import "math"

// Point represents a 2D coordinate in logical canvas units.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Size represents the width and height of a shape. All shapes share one
// global size supplied by configuration.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// RectAround returns the rectangle of the given size centered on c.
func RectAround(c Point, s Size) Rect {
	return Rect{
		X: c.X - s.W/2,
		Y: c.Y - s.H/2,
		W: s.W,
		H: s.H,
	}
}

// Contains reports whether p lies inside the rectangle. The test is
// half-open: the left and top edges are inside, the right and bottom
// edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W &&
		p.Y >= r.Y && p.Y < r.Y+r.H
}

// PortKind identifies one of the two connection ports every shape exposes.
type PortKind int

const (
	PortOutgoing PortKind = iota // bottom edge, connector sources
	PortIncoming                 // top edge, connector targets
)

// String returns the port kind name for display.
func (k PortKind) String() string {
	switch k {
	case PortOutgoing:
		return "outgoing"
	case PortIncoming:
		return "incoming"
	default:
		return "unknown"
	}
}

// PortPoint returns the position of a shape's port. Ports sit a fixed
// horizontal offset in from the shape's left edge, on the bottom edge for
// outgoing ports and the top edge for incoming ports. They are derived on
// demand and never stored.
func PortPoint(center Point, size Size, kind PortKind, offset float64) Point {
	x := center.X - size.W/2 + offset
	y := center.Y + size.H/2
	if kind == PortIncoming {
		y = center.Y - size.H/2
	}
	return Point{X: x, Y: y}
}
