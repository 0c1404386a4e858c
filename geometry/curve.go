package geometry

// CubicBezierPoint evaluates a cubic Bezier curve with the standard
// Bernstein basis at parameter t in [0,1]. At t=0 the result is exactly p0
// and at t=1 exactly p3.
func CubicBezierPoint(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return Point{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
	}
}

// Curve is a cubic Bezier connector curve: two anchors (P0, P3) and two
// control points (P1, P2).
type Curve struct {
	P0, P1, P2, P3 Point
}

// ConnectorCurve derives the connector curve between two port points. The
// control points are offset horizontally from each anchor, with the sign
// chosen so both push the curve in the direction from start toward end.
// This yields the S-shaped curve that reads naturally in either direction.
func ConnectorCurve(start, end Point, curveOffset float64) Curve {
	dir := 1.0
	if end.X <= start.X {
		dir = -1.0
	}
	return Curve{
		P0: start,
		P1: Point{X: start.X + curveOffset*dir, Y: start.Y},
		P2: Point{X: end.X - curveOffset*dir, Y: end.Y},
		P3: end,
	}
}

// At evaluates the curve at parameter t in [0,1].
func (c Curve) At(t float64) Point {
	return CubicBezierPoint(c.P0, c.P1, c.P2, c.P3, t)
}

// Sample returns n points evenly spaced in parameter space, including both
// endpoints. n must be at least 2.
func (c Curve) Sample(n int) []Point {
	if n < 2 {
		n = 2
	}
	points := make([]Point, n)
	for i := range points {
		t := float64(i) / float64(n-1)
		points[i] = c.At(t)
	}
	return points
}

// Hit reports whether p lies within radius of any of n evenly spaced
// sample points on the curve. This is an approximation of distance to the
// curve, not an exact closest-point computation.
func (c Curve) Hit(p Point, radius float64, n int) bool {
	for _, s := range c.Sample(n) {
		if s.Distance(p) <= radius {
			return true
		}
	}
	return false
}
