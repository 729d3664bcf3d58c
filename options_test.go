package sdf

import (
	"runtime"
	"testing"
)

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer()
	defer r.Close()

	if r.Mode() != Thermal {
		t.Errorf("Mode() = %v, want thermal", r.Mode())
	}
	if got, want := r.Workers(), runtime.GOMAXPROCS(0); got != want {
		t.Errorf("Workers() = %d, want %d", got, want)
	}
	if r.opts.palette != DefaultPalette {
		t.Error("default palette not applied")
	}
}

func TestNewRenderer_Options(t *testing.T) {
	p := DefaultPalette
	p.Background = 10

	r := NewRenderer(WithMode(Silhouette), WithWorkers(3), WithPalette(p))
	defer r.Close()

	if r.Mode() != Silhouette {
		t.Errorf("Mode() = %v, want silhouette", r.Mode())
	}
	if r.Workers() != 3 {
		t.Errorf("Workers() = %d, want 3", r.Workers())
	}
	if r.opts.palette.Background != 10 {
		t.Errorf("palette background = %d, want 10", r.opts.palette.Background)
	}
}

func TestNewRenderer_SingleWorkerHasNoPool(t *testing.T) {
	r := NewRenderer(WithWorkers(1))
	defer r.Close()
	if r.pool != nil {
		t.Error("single worker renderer should not start a pool")
	}
	if r.Workers() != 1 {
		t.Errorf("Workers() = %d, want 1", r.Workers())
	}
}
