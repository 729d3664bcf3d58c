package sdf

import (
	"context"
	"time"

	"github.com/gogpu/sdf/internal/parallel"
)

// Renderer samples a field at every integer coordinate of a canvas and
// writes the mapped colors.
//
// A Renderer may be reused for any number of renders and from several
// goroutines. Call Close to release its workers.
type Renderer struct {
	opts rendererOptions
	pool *parallel.WorkerPool // nil when rendering on the calling goroutine
}

// NewRenderer creates a renderer. Without options it renders in Thermal
// mode on GOMAXPROCS workers.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	r := &Renderer{opts: o}
	if o.workers != 1 {
		r.pool = parallel.NewWorkerPool(o.workers)
		r.opts.workers = r.pool.Workers()
	}
	return r
}

// Mode returns the rendering mode.
func (r *Renderer) Mode() Mode {
	return r.opts.mode
}

// Workers returns the number of goroutines used per render.
func (r *Renderer) Workers() int {
	return r.opts.workers
}

// Render evaluates f at every (x, y) of the canvas bounds, inclusive on
// both ends, and writes each pixel that the mode produces.
//
// The field must not be modified while Render runs. Cancellation is
// checked between rows; a cancelled render leaves the canvas partially
// written and returns ctx.Err().
func (r *Renderer) Render(ctx context.Context, c Canvas, f Field) error {
	b := c.Bounds()
	rows := b.YMax - b.YMin + 1
	if rows <= 0 || b.XMax < b.XMin {
		return nil
	}

	start := time.Now()
	row := func(i int) {
		if ctx.Err() != nil {
			return
		}
		r.renderRow(c, f, b, b.YMin+i)
	}

	if r.pool == nil {
		for i := range rows {
			row(i)
		}
	} else {
		r.pool.ForEach(rows, row)
	}

	if err := ctx.Err(); err != nil {
		Logger().Warn("sdf: render cancelled", "err", err)
		return err
	}
	Logger().Debug("sdf: render done",
		"mode", r.opts.mode,
		"width", b.Width(),
		"height", b.Height(),
		"workers", r.opts.workers,
		"elapsed", time.Since(start))
	return nil
}

func (r *Renderer) renderRow(c Canvas, f Field, b Bounds, y int) {
	for x := b.XMin; x <= b.XMax; x++ {
		v := f.Distance(Pt(float64(x), float64(y)))
		if col, ok := r.opts.mode.Color(r.opts.palette, v); ok {
			c.SetPixel(x, y, col)
		}
	}
}

// Close stops the worker goroutines. Renders after Close still work but
// run on the calling goroutine.
func (r *Renderer) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}

// Render draws f onto c in the given mode with a temporary renderer.
func Render(ctx context.Context, c Canvas, f Field, mode Mode) error {
	r := NewRenderer(WithMode(mode))
	defer r.Close()
	return r.Render(ctx, c, f)
}
