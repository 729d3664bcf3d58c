package sdf

import "math"

// DistanceMap holds the raw distances of a field sampled on a bounds grid.
type DistanceMap struct {
	Bounds Bounds
	values []float64 // row-major from (XMin, YMin), inclusive bounds
}

// Sample evaluates f at every integer coordinate of b, inclusive.
func Sample(b Bounds, f Field) *DistanceMap {
	cols := max(b.XMax-b.XMin+1, 0)
	rows := max(b.YMax-b.YMin+1, 0)
	m := &DistanceMap{Bounds: b, values: make([]float64, cols*rows)}
	for j := range rows {
		for i := range cols {
			m.values[j*cols+i] = f.Distance(Pt(float64(b.XMin+i), float64(b.YMin+j)))
		}
	}
	return m
}

// At returns the sampled distance at (x, y), or NaN outside the bounds.
func (m *DistanceMap) At(x, y int) float64 {
	b := m.Bounds
	if x < b.XMin || x > b.XMax || y < b.YMin || y > b.YMax {
		return math.NaN()
	}
	cols := b.XMax - b.XMin + 1
	return m.values[(y-b.YMin)*cols+(x-b.XMin)]
}

// Len returns the number of samples.
func (m *DistanceMap) Len() int {
	return len(m.values)
}

// Stats summarises a DistanceMap.
type Stats struct {
	Min, Max float64
	Inside   int // samples with a negative distance
}

// Stats returns the minimum, maximum and interior sample count.
// An empty map reports zero values.
func (m *DistanceMap) Stats() Stats {
	if len(m.values) == 0 {
		return Stats{}
	}
	s := Stats{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, v := range m.values {
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
		if v < 0 {
			s.Inside++
		}
	}
	return s
}
