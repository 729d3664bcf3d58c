package sdf

import "math"

// Point represents a 2D position or displacement in world coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// IsZero reports whether both components are zero.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Normalize returns a unit vector in the same direction.
// A zero-length vector has no direction; the zero vector is returned and
// callers that divide by the length must check for it first.
func (p Point) Normalize() Point {
	length := p.Length()
	if length == 0 {
		return Point{}
	}
	return p.Div(length)
}

// Approx returns true if two points are equal within epsilon per component.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) < epsilon && math.Abs(p.Y-q.Y) < epsilon
}

// DistanceToLine returns the signed distance from p to the infinite line
// through p1 and p2.
//
// The magnitude is the perpendicular distance. The sign is positive when
// (p-p1) x (p2-p1) <= 0 and negative otherwise, so points to the left of
// the direction p1->p2 (counter-clockwise side) are positive.
// If p1 == p2 the line is undefined and 0 is returned.
func (p Point) DistanceToLine(p1, p2 Point) float64 {
	dir := p2.Sub(p1)
	rel := p.Sub(p1)

	length := dir.Length()
	if length == 0 {
		return 0
	}

	// Foot of the perpendicular: p1 + dir * (rel·dir / |dir|²)
	proj := rel.Dot(dir) / length
	foot := p1.Add(dir.Mul(proj / length))
	dist := p.Distance(foot)

	if rel.Cross(dir) > 0 {
		return -dist
	}
	return dist
}
