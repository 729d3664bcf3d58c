package sdf

// farDistance is the distance reported by an empty Scene and the starting
// value of the minimum search.
const farDistance = 1e5

// Field is a scalar field over the plane whose zero level set is a shape
// boundary. Distance returns a negative value inside the shape, a positive
// value outside, and zero on the boundary.
//
// Implementations must be safe to evaluate from multiple goroutines once
// built: Distance must not modify the receiver.
type Field interface {
	Distance(p Point) float64
}

// FieldFunc adapts an ordinary function to the Field interface.
type FieldFunc func(p Point) float64

// Distance calls f(p).
func (f FieldFunc) Distance(p Point) float64 {
	return f(p)
}

// Scene is an ordered set of top-level fields. The distance at a point is
// the minimum over all of them, an implicit union.
type Scene []Field

// Distance returns the smallest distance of any field in the scene.
// An empty scene returns 1e5.
func (s Scene) Distance(p Point) float64 {
	d := float64(farDistance)
	for _, f := range s {
		d = min(d, f.Distance(p))
	}
	return d
}

// Add appends fields to the scene.
func (s *Scene) Add(fields ...Field) {
	*s = append(*s, fields...)
}
