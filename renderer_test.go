package sdf

import (
	"bytes"
	"context"
	"errors"
	"image/color"
	"testing"
)

var smallBounds = Bounds{XMin: -20, XMax: 20, YMin: -15, YMax: 15}

func TestRenderer_ThermalMatchesPalette(t *testing.T) {
	disc := NewCircle(Pt(3, -2), 9)
	g := NewGrid(smallBounds)

	r := NewRenderer(WithWorkers(1))
	defer r.Close()
	if err := r.Render(context.Background(), g, disc); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	for y := smallBounds.YMin + 1; y <= smallBounds.YMax; y++ {
		for x := smallBounds.XMin; x < smallBounds.XMax; x++ {
			want := DefaultPalette.Thermal(disc.Distance(Pt(float64(x), float64(y))))
			if got := g.Pixel(x, y); got != want {
				t.Fatalf("Pixel(%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRenderer_ParallelMatchesSequential(t *testing.T) {
	scene := Difference(NewCircle(Pt(0, 0), 5), NewEllipse(Pt(2, 1), 15, 8))

	render := func(workers int) []byte {
		g := NewGrid(smallBounds)
		r := NewRenderer(WithWorkers(workers))
		defer r.Close()
		if err := r.Render(context.Background(), g, scene); err != nil {
			t.Fatalf("Render(workers=%d) = %v", workers, err)
		}
		return g.Image().Pix
	}

	seq := render(1)
	for _, n := range []int{2, 4, 7} {
		if !bytes.Equal(seq, render(n)) {
			t.Errorf("render with %d workers differs from sequential", n)
		}
	}
}

func TestRenderer_Silhouette(t *testing.T) {
	g := NewGrid(smallBounds)
	r := NewRenderer(WithMode(Silhouette), WithWorkers(2))
	defer r.Close()

	if r.Mode() != Silhouette {
		t.Fatalf("Mode() = %v, want silhouette", r.Mode())
	}
	if err := r.Render(context.Background(), g, NewCircle(Pt(0, 0), 5)); err != nil {
		t.Fatalf("Render() = %v", err)
	}

	if got := g.Pixel(0, 0); got != White {
		t.Errorf("interior = %v, want %v", got, White)
	}
	if got := g.Pixel(15, 10); got != (color.RGBA{A: 255}) {
		t.Errorf("exterior = %v, want untouched background", got)
	}
	// The level set itself is not interior.
	if got := g.Pixel(5, 0); got != (color.RGBA{A: 255}) {
		t.Errorf("boundary = %v, want untouched background", got)
	}
}

func TestRenderer_SamplesInclusiveBounds(t *testing.T) {
	c := &countingCanvas{bounds: smallBounds, writes: map[[2]int]int{}}
	r := NewRenderer(WithWorkers(1))
	defer r.Close()

	if err := r.Render(context.Background(), c, NewLine(Pt(0, 0), Pt(1, 0))); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	want := (smallBounds.XMax - smallBounds.XMin + 1) * (smallBounds.YMax - smallBounds.YMin + 1)
	if len(c.writes) != want {
		t.Errorf("sampled %d coordinates, want %d", len(c.writes), want)
	}
	for _, p := range [][2]int{{20, 15}, {-20, -15}, {20, -15}} {
		if c.writes[p] != 1 {
			t.Errorf("corner %v written %d times, want 1", p, c.writes[p])
		}
	}
}

func TestRenderer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		c := &countingCanvas{bounds: smallBounds, writes: map[[2]int]int{}}
		r := NewRenderer(WithWorkers(workers))
		err := r.Render(ctx, Synchronized(c), NewCircle(Pt(0, 0), 5))
		r.Close()

		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: Render() = %v, want context.Canceled", workers, err)
		}
		if len(c.writes) != 0 {
			t.Errorf("workers=%d: cancelled render wrote %d pixels", workers, len(c.writes))
		}
	}
}

func TestRenderer_EmptyBounds(t *testing.T) {
	c := &countingCanvas{bounds: Bounds{XMin: 5, XMax: 4, YMin: 0, YMax: 0}, writes: map[[2]int]int{}}
	if err := Render(context.Background(), c, NewCircle(Pt(0, 0), 1), Thermal); err != nil {
		t.Fatalf("Render() = %v", err)
	}
	if len(c.writes) != 0 {
		t.Errorf("empty bounds wrote %d pixels", len(c.writes))
	}
}

func TestRenderer_AfterClose(t *testing.T) {
	r := NewRenderer(WithWorkers(3))
	r.Close()

	g := NewGrid(smallBounds)
	if err := r.Render(context.Background(), g, NewCircle(Pt(0, 0), 5)); err != nil {
		t.Fatalf("Render() after Close = %v", err)
	}
	if got, want := g.Pixel(0, 0), DefaultPalette.Thermal(-1); got != want {
		t.Errorf("Pixel(0, 0) = %v, want %v", got, want)
	}
}

func BenchmarkRender(b *testing.B) {
	scene := Union(NewCircle(Pt(-66, 0), 80), NewCircle(Pt(66, 0), 80))
	g := NewGrid(Bounds{XMin: -400, XMax: 400, YMin: -300, YMax: 300})
	r := NewRenderer()
	defer r.Close()

	b.ResetTimer()
	for b.Loop() {
		_ = r.Render(context.Background(), g, scene)
	}
}
