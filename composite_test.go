package sdf

import (
	"math"
	"testing"
)

func testFields() (Field, Field) {
	a := NewCircle(Pt(-5, 0), 8)
	b := NewSegment(Pt(-10, -10), Pt(20, 15))
	return a, b
}

func TestComposite_Operators(t *testing.T) {
	a, b := testFields()

	tests := []struct {
		name string
		f    Field
		want func(da, db float64) float64
	}{
		{"union", Union(a, b), func(da, db float64) float64 { return min(da, db) }},
		{"intersection", Intersection(a, b), func(da, db float64) float64 { return max(da, db) }},
		{"difference", Difference(a, b), func(da, db float64) float64 { return max(-da, db) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, p := range samplePoints() {
				want := tt.want(a.Distance(p), b.Distance(p))
				if got := tt.f.Distance(p); got != want {
					t.Fatalf("Distance(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestComposite_UnionWithSelf(t *testing.T) {
	a, _ := testFields()
	u := Union(a, a)
	for _, p := range samplePoints() {
		if got, want := u.Distance(p), a.Distance(p); got != want {
			t.Fatalf("Union(a, a) at %v = %v, want %v", p, got, want)
		}
	}
}

func TestComposite_DifferenceOrder(t *testing.T) {
	small := NewCircle(Pt(0, 0), 5)
	big := NewCircle(Pt(0, 0), 10)

	ring := Difference(small, big)
	if ring.Distance(Pt(0, 0)) <= 0 {
		t.Error("center should be removed from the ring")
	}
	if ring.Distance(Pt(7, 0)) >= 0 {
		t.Error("(7, 0) should be inside the ring")
	}

	// The reverse removes the big disc from the small one: empty.
	empty := Difference(big, small)
	for _, p := range samplePoints() {
		if empty.Distance(p) < 0 {
			t.Fatalf("Difference(big, small) has interior at %v", p)
		}
	}
}

func TestComposite_SharedChild(t *testing.T) {
	shared := NewCircle(Pt(0, 0), 10)
	left := Union(shared, NewCircle(Pt(-30, 0), 5))
	right := Union(shared, NewCircle(Pt(30, 0), 5))
	both := Intersection(left, right)

	if got, want := both.Distance(Pt(1, 1)), shared.Distance(Pt(1, 1)); got != want {
		t.Errorf("shared child distance = %v, want %v", got, want)
	}

	// Editing the shared field before rendering affects every parent.
	shared.SetThreshold(5)
	if left.Distance(Pt(12, 0)) >= 0 || right.Distance(Pt(12, 0)) >= 0 {
		t.Error("threshold change not visible through both parents")
	}
}

func TestUnionAll(t *testing.T) {
	fs := []Field{
		NewCircle(Pt(-20, 0), 3),
		NewCircle(Pt(0, 0), 3),
		NewCircle(Pt(20, 0), 3),
	}
	u := UnionAll(fs...)
	in := IntersectAll(fs...)
	for _, p := range samplePoints() {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, f := range fs {
			lo = min(lo, f.Distance(p))
			hi = max(hi, f.Distance(p))
		}
		if got := u.Distance(p); got != lo {
			t.Fatalf("UnionAll at %v = %v, want %v", p, got, lo)
		}
		if got := in.Distance(p); got != hi {
			t.Fatalf("IntersectAll at %v = %v, want %v", p, got, hi)
		}
	}
	if UnionAll(fs[0]) != fs[0] {
		t.Error("UnionAll of one field should return it unchanged")
	}
}

func TestUnionAllEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("UnionAll() did not panic")
		}
	}()
	UnionAll()
}

func TestOp_String(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpUnion, "union"},
		{OpIntersection, "intersection"},
		{OpDifference, "difference"},
		{Op(9), "Op(9)"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", int(tt.op), got, tt.want)
		}
	}
}

func TestScene_Distance(t *testing.T) {
	a, b := testFields()
	s := Scene{a}
	s.Add(b)
	for _, p := range samplePoints() {
		if got, want := s.Distance(p), min(a.Distance(p), b.Distance(p)); got != want {
			t.Fatalf("Scene.Distance(%v) = %v, want %v", p, got, want)
		}
	}
	if got := (Scene{}).Distance(Pt(0, 0)); got != farDistance {
		t.Errorf("empty scene distance = %v, want %v", got, float64(farDistance))
	}
}

func TestFieldFunc(t *testing.T) {
	f := FieldFunc(func(p Point) float64 { return p.X })
	if got := f.Distance(Pt(3, 9)); got != 3 {
		t.Errorf("FieldFunc.Distance = %v, want 3", got)
	}
}
