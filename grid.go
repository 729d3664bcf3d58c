package sdf

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
)

// Grid is an in-memory Canvas backed by an RGBA pixel buffer.
//
// Concurrent SetPixel calls are safe as long as they address different
// pixels, which is what the Renderer guarantees.
type Grid struct {
	bounds Bounds
	img    *image.RGBA
}

// NewGrid creates a grid covering bounds, filled with opaque black.
func NewGrid(b Bounds) *Grid {
	g := &Grid{
		bounds: b,
		img:    image.NewRGBA(image.Rect(0, 0, max(b.Width(), 0), max(b.Height(), 0))),
	}
	g.Clear(color.RGBA{A: 255})
	return g
}

// Bounds returns the world bounds of the grid.
func (g *Grid) Bounds() Bounds {
	return g.bounds
}

// SetPixel sets the pixel at world coordinate (x, y).
// Coordinates outside the buffer are silently ignored.
func (g *Grid) SetPixel(x, y int, c color.RGBA) {
	bx, by, ok := g.bounds.ToBuffer(x, y)
	if !ok {
		return
	}
	i := g.img.PixOffset(bx, by)
	g.img.Pix[i+0] = c.R
	g.img.Pix[i+1] = c.G
	g.img.Pix[i+2] = c.B
	g.img.Pix[i+3] = c.A
}

// Pixel returns the pixel at world coordinate (x, y), or the zero color
// outside the buffer.
func (g *Grid) Pixel(x, y int) color.RGBA {
	bx, by, ok := g.bounds.ToBuffer(x, y)
	if !ok {
		return color.RGBA{}
	}
	return g.img.RGBAAt(bx, by)
}

// Clear fills the whole buffer with c.
func (g *Grid) Clear(c color.RGBA) {
	pix := g.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Image returns the underlying buffer. It is shared, not copied.
func (g *Grid) Image() *image.RGBA {
	return g.img
}

// EncodePNG writes the buffer to w as PNG.
func (g *Grid) EncodePNG(w io.Writer) error {
	return png.Encode(w, g.img)
}

// SavePNG saves the buffer to a PNG file.
func (g *Grid) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := g.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
