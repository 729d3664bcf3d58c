// Command sdfrender renders a catalogue scene to PNG or to a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"os/signal"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/sdf"
	"github.com/gogpu/sdf/internal/config"
	"github.com/gogpu/sdf/internal/display"
	"github.com/gogpu/sdf/scenes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	var opts options
	flag.StringVar(&opts.scene, "scene", cfg.Scene, "scene name (see -list)")
	flag.StringVar(&opts.mode, "mode", cfg.Mode.String(), "thermal or silhouette")
	flag.StringVar(&opts.output, "output", cfg.Output, "output PNG file")
	flag.IntVar(&opts.workers, "workers", cfg.Workers, "render goroutines (0 = GOMAXPROCS)")
	flag.BoolVar(&opts.axis, "axis", true, "draw the coordinate axes")
	flag.BoolVar(&opts.labels, "labels", false, "label the axis ticks")
	flag.IntVar(&opts.scale, "scale", 1, "integer output magnification")
	flag.BoolVar(&opts.window, "window", false, "show the result in a window instead of writing a file")
	list := flag.Bool("list", false, "list scenes and exit")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	sdf.SetLogger(logger)

	if *list {
		for _, name := range scenes.Names() {
			e, _ := scenes.Lookup(name)
			fmt.Printf("%-10s %s\n", e.Name, e.Description)
		}
		return
	}

	if err := run(opts); err != nil {
		slog.Error("sdfrender", "error", err)
		os.Exit(1)
	}
}

// options are the command-line settings of one invocation.
type options struct {
	scene   string
	mode    string
	output  string
	workers int
	axis    bool
	labels  bool
	scale   int
	window  bool
}

func run(opts options) error {
	entry, err := scenes.Lookup(opts.scene)
	if err != nil {
		return err
	}
	mode, err := sdf.ParseMode(opts.mode)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	grid := sdf.NewGrid(entry.Bounds)

	r := sdf.NewRenderer(sdf.WithMode(mode), sdf.WithWorkers(opts.workers))
	defer r.Close()
	if err := r.Render(ctx, grid, entry.Build()); err != nil {
		return fmt.Errorf("render %s: %w", entry.Name, err)
	}

	if opts.axis {
		sdf.DrawAxis(grid, sdf.DefaultAxisStyle)
	}
	if opts.labels {
		sdf.DrawLabels(grid, sdf.DefaultAxisStyle)
	}

	img := magnify(grid.Image(), opts.scale)

	if opts.window {
		b := img.Bounds()
		w := display.Create("SDF 2D demo", b.Dx(), b.Dy())
		w.Present(img)
		return w.WaitForClose()
	}

	f, err := os.Create(opts.output) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	slog.Info("saved", "scene", entry.Name, "mode", mode, "path", opts.output,
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return nil
}

// magnify enlarges img by an integer factor with nearest-neighbour
// sampling so that pixel boundaries stay sharp.
func magnify(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*scale, b.Dy()*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}
