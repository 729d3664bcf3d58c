package sdf

import "math"

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rotate returns the point rotated by deg degrees counter-clockwise around
// the origin.
func (p Point) Rotate(deg float64) Point {
	sin, cos := math.Sincos(Radians(deg))
	return Point{
		X: p.X*cos - p.Y*sin,
		Y: p.X*sin + p.Y*cos,
	}
}

// RotateAbout returns the point rotated by deg degrees counter-clockwise
// around anchor.
func (p Point) RotateAbout(anchor Point, deg float64) Point {
	return p.Sub(anchor).Rotate(deg).Add(anchor)
}
