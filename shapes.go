package sdf

// Every primitive has an anchor: Center for Circle, P1 for Segment and Line.
// Angle rotates the shape counter-clockwise about its anchor. Evaluation
// applies the inverse rotation to the query point and measures against the
// unrotated geometry.
//
// Threshold moves the zero level set outward when positive and inward when
// negative.

// defaultCurveThreshold is the threshold given to segments and lines by
// their constructors, making them one unit thick.
const defaultCurveThreshold = 1

// Circle is an ellipse with radii A (x axis) and B (y axis) about Center.
// When A == B the field is a true distance field; otherwise it is a smooth
// approximation that is exact only on the boundary.
//
// The distance is measured in units of the radius, not world units: a point
// one radius outside the boundary of a circle has distance 1.
type Circle struct {
	Center    Point
	A, B      float64
	Angle     float64 // degrees
	Threshold float64
}

// NewCircle returns a circle of radius r about center.
func NewCircle(center Point, r float64) *Circle {
	return &Circle{Center: center, A: r, B: r}
}

// NewEllipse returns an axis-aligned ellipse with radii a and b about center.
func NewEllipse(center Point, a, b float64) *Circle {
	return &Circle{Center: center, A: a, B: b}
}

// Distance implements Field.
func (c *Circle) Distance(p Point) float64 {
	q := p.Sub(c.Center).Rotate(-c.Angle)
	scaled := Point{X: q.X / c.A, Y: q.Y / c.B}
	return scaled.Length() - 1 - c.Threshold
}

// SetAngle sets the rotation in degrees.
func (c *Circle) SetAngle(deg float64) { c.Angle = deg }

// SetThreshold sets the level set offset.
func (c *Circle) SetThreshold(t float64) { c.Threshold = t }

// Segment is the finite line segment from P1 to P2. The bare curve has no
// interior, so with Threshold 0 the distance is never negative; a positive
// Threshold turns it into a capsule of that radius.
type Segment struct {
	P1, P2    Point
	Angle     float64 // degrees
	Threshold float64
}

// NewSegment returns the segment p1-p2 with threshold 1.
func NewSegment(p1, p2 Point) *Segment {
	return &Segment{P1: p1, P2: p2, Threshold: defaultCurveThreshold}
}

// Distance implements Field.
func (s *Segment) Distance(p Point) float64 {
	q := p.RotateAbout(s.P1, -s.Angle)

	dir := s.P2.Sub(s.P1)
	length := dir.Length()
	if length == 0 {
		return -s.Threshold
	}
	dir = dir.Div(length)

	t := min(max(q.Sub(s.P1).Dot(dir), 0), length)
	closest := s.P1.Add(dir.Mul(t))
	return q.Distance(closest) - s.Threshold
}

// SetAngle sets the rotation in degrees.
func (s *Segment) SetAngle(deg float64) { s.Angle = deg }

// SetThreshold sets the level set offset.
func (s *Segment) SetThreshold(t float64) { s.Threshold = t }

// Line is the infinite line through P1 and P2. The field is a half plane:
// negative to the right of the direction P1->P2, positive to the left.
type Line struct {
	P1, P2    Point
	Angle     float64 // degrees
	Threshold float64
}

// NewLine returns the line through p1 and p2 with threshold 1.
func NewLine(p1, p2 Point) *Line {
	return &Line{P1: p1, P2: p2, Threshold: defaultCurveThreshold}
}

// Distance implements Field.
func (l *Line) Distance(p Point) float64 {
	q := p.RotateAbout(l.P1, -l.Angle)
	return q.DistanceToLine(l.P1, l.P2) - l.Threshold
}

// SetAngle sets the rotation in degrees.
func (l *Line) SetAngle(deg float64) { l.Angle = deg }

// SetThreshold sets the level set offset.
func (l *Line) SetThreshold(t float64) { l.Threshold = t }
