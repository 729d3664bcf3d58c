package sdf

// Option configures a Renderer during creation.
//
// Example:
//
//	// Silhouette rendering on a single goroutine
//	r := sdf.NewRenderer(sdf.WithMode(sdf.Silhouette), sdf.WithWorkers(1))
//	defer r.Close()
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	mode    Mode
	workers int
	palette Palette
}

// defaultOptions returns thermal rendering on GOMAXPROCS workers.
func defaultOptions() rendererOptions {
	return rendererOptions{
		mode:    Thermal,
		workers: 0,
		palette: DefaultPalette,
	}
}

// WithMode selects how distances become pixels.
func WithMode(m Mode) Option {
	return func(o *rendererOptions) {
		o.mode = m
	}
}

// WithWorkers sets the number of goroutines that evaluate rows.
// 1 renders on the calling goroutine; 0 or negative uses GOMAXPROCS.
//
// With more than one worker the canvas receives concurrent SetPixel calls
// for distinct pixels. Grid handles this; other canvases may need
// Synchronized.
func WithWorkers(n int) Option {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithPalette replaces the thermal palette.
func WithPalette(p Palette) Option {
	return func(o *rendererOptions) {
		o.palette = p
	}
}
