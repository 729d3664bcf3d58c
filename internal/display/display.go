// Package display shows rendered frames in a desktop window.
package display

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Window is a desktop window holding one frame. Create it, hand it a frame
// with Present, then block in WaitForClose until the user presses a key or
// closes the window.
type Window struct {
	width, height int

	mu    sync.Mutex
	frame []byte // RGBA, width*height*4
}

// Create configures the window. Nothing is shown until WaitForClose.
func Create(title string, width, height int) *Window {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	return &Window{
		width:  width,
		height: height,
		frame:  make([]byte, width*height*4),
	}
}

// Present replaces the displayed frame. Images of a different size are
// copied into the top-left corner and clipped.
func (w *Window) Present(img *image.RGBA) {
	w.mu.Lock()
	defer w.mu.Unlock()

	b := img.Bounds()
	rows := min(b.Dy(), w.height)
	cols := min(b.Dx(), w.width)
	for y := range rows {
		src := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		copy(w.frame[y*w.width*4:y*w.width*4+cols*4], src[:cols*4])
	}
}

// WaitForClose opens the window and blocks until it is closed.
// It must be called from the main goroutine.
func (w *Window) WaitForClose() error {
	return ebiten.RunGame(&game{w: w})
}

// game adapts a Window to ebiten.Game.
type game struct {
	w *Window
}

// Update implements ebiten.Game. Any key press ends the loop.
func (g *game) Update() error {
	if len(inpututil.AppendJustPressedKeys(nil)) > 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *game) Draw(screen *ebiten.Image) {
	g.w.mu.Lock()
	screen.WritePixels(g.w.frame)
	g.w.mu.Unlock()
}

// Layout implements ebiten.Game. The frame is drawn at its native size and
// scaled by ebiten to the window.
func (g *game) Layout(_, _ int) (int, int) {
	return g.w.width, g.w.height
}
