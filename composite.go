package sdf

import "fmt"

// Op selects how a Composite combines the distances of its children.
type Op int

const (
	// OpUnion is inside where either child is inside: min(a, b).
	OpUnion Op = iota
	// OpIntersection is inside where both children are inside: max(a, b).
	OpIntersection
	// OpDifference removes the first child from the second: max(-a, b).
	OpDifference
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

// Apply combines two child distances.
func (op Op) Apply(da, db float64) float64 {
	switch op {
	case OpIntersection:
		return max(da, db)
	case OpDifference:
		return max(-da, db)
	default:
		return min(da, db)
	}
}

// Composite is a boolean combination of two fields.
//
// Children are shared by reference, so the same field may appear below
// several composites. The tree must not contain cycles; since a Composite
// can only be built from fields that already exist, this holds unless a
// caller reassigns A or B after construction.
type Composite struct {
	Op   Op
	A, B Field
}

// Distance implements Field.
func (c *Composite) Distance(p Point) float64 {
	return c.Op.Apply(c.A.Distance(p), c.B.Distance(p))
}

// Union returns the field that is inside a or b.
func Union(a, b Field) *Composite {
	return &Composite{Op: OpUnion, A: a, B: b}
}

// Intersection returns the field that is inside both a and b.
func Intersection(a, b Field) *Composite {
	return &Composite{Op: OpIntersection, A: a, B: b}
}

// Difference returns b with a removed. Note the argument order: the first
// field is the one subtracted.
func Difference(a, b Field) *Composite {
	return &Composite{Op: OpDifference, A: a, B: b}
}

// UnionAll folds fields left to right with Union.
// It panics if fields is empty.
func UnionAll(fields ...Field) Field {
	return fold(OpUnion, fields)
}

// IntersectAll folds fields left to right with Intersection.
// It panics if fields is empty.
func IntersectAll(fields ...Field) Field {
	return fold(OpIntersection, fields)
}

func fold(op Op, fields []Field) Field {
	if len(fields) == 0 {
		panic("sdf: " + op.String() + " of no fields")
	}
	acc := fields[0]
	for _, f := range fields[1:] {
		acc = &Composite{Op: op, A: acc, B: f}
	}
	return acc
}
