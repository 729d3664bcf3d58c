package sdf

import (
	"image"
	"image/color"
	"strconv"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// AxisStyle configures the coordinate axis overlay.
type AxisStyle struct {
	Color color.RGBA

	MinorEvery int // world units between minor ticks
	MinorHalf  int // minor tick half-width in pixels
	MajorEvery int // world units between major ticks
	MajorHalf  int // major tick half-width in pixels

	// LabelEvery is the spacing of numeric labels drawn by DrawLabels.
	// Zero disables labels.
	LabelEvery int
}

// DefaultAxisStyle has minor ticks every 10 units and major ticks every 50.
var DefaultAxisStyle = AxisStyle{
	Color:      AxisColor,
	MinorEvery: 10,
	MinorHalf:  2,
	MajorEvery: 50,
	MajorHalf:  4,
	LabelEvery: 100,
}

// DrawAxis draws the x and y axes through the origin with tick marks.
// The axis line is one pixel wide.
func DrawAxis(c Canvas, s AxisStyle) {
	b := c.Bounds()
	for y := b.YMin; y <= b.YMax; y++ {
		c.SetPixel(0, y, s.Color)
		if half := tickHalf(y, s); half > 0 {
			for i := -half; i <= half; i++ {
				c.SetPixel(i, y, s.Color)
			}
		}
	}
	for x := b.XMin; x <= b.XMax; x++ {
		c.SetPixel(x, 0, s.Color)
		if half := tickHalf(x, s); half > 0 {
			for i := -half; i <= half; i++ {
				c.SetPixel(x, i, s.Color)
			}
		}
	}
}

// tickHalf returns the half-width of the tick at coordinate v, or 0.
func tickHalf(v int, s AxisStyle) int {
	switch {
	case s.MajorEvery > 0 && v%s.MajorEvery == 0:
		return s.MajorHalf
	case s.MinorEvery > 0 && v%s.MinorEvery == 0:
		return s.MinorHalf
	default:
		return 0
	}
}

// labelGap is the distance in pixels between an axis and its labels.
const labelGap = 6

// DrawLabels writes the coordinate of every LabelEvery-th tick next to the
// axes using a 7x13 bitmap font.
func DrawLabels(g *Grid, s AxisStyle) {
	if s.LabelEvery <= 0 {
		return
	}
	d := &font.Drawer{
		Dst:  g.Image(),
		Src:  image.NewUniform(s.Color),
		Face: basicfont.Face7x13,
	}
	ascent := d.Face.Metrics().Ascent.Ceil()
	b := g.Bounds()

	for x := firstMultiple(b.XMin, s.LabelEvery); x <= b.XMax; x += s.LabelEvery {
		if x == 0 {
			continue
		}
		label := strconv.Itoa(x)
		width := d.MeasureString(label).Ceil()
		drawLabel(d, b, x-width/2, -(s.MajorHalf + labelGap), ascent, label)
	}
	for y := firstMultiple(b.YMin, s.LabelEvery); y <= b.YMax; y += s.LabelEvery {
		if y == 0 {
			continue
		}
		drawLabel(d, b, s.MajorHalf+labelGap, y+ascent/2, ascent, strconv.Itoa(y))
	}
}

// drawLabel draws text whose top-left corner is at world (x, y).
func drawLabel(d *font.Drawer, b Bounds, x, y, ascent int, text string) {
	// Labels may straddle the buffer edge, so map without the range check.
	bx, by := x-b.XMin, -y-b.YMin
	d.Dot = fixed.P(bx, by+ascent)
	d.DrawString(text)
}

// firstMultiple returns the smallest multiple of step that is >= v.
func firstMultiple(v, step int) int {
	m := v / step * step
	if m < v {
		m += step
	}
	return m
}
