package sdf

import (
	"image/color"
	"sync"
)

// Bounds is an inclusive rectangle of integer world coordinates.
// The pixel buffer covering it is XMax-XMin wide and YMax-YMin high, so the
// last row and column of samples fall outside the buffer and are dropped.
type Bounds struct {
	XMin, XMax, YMin, YMax int
}

// Width returns the buffer width, XMax-XMin.
func (b Bounds) Width() int {
	return b.XMax - b.XMin
}

// Height returns the buffer height, YMax-YMin.
func (b Bounds) Height() int {
	return b.YMax - b.YMin
}

// Empty reports whether the buffer has no pixels.
func (b Bounds) Empty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// ToBuffer maps a world coordinate to buffer coordinates. The y axis is
// flipped so that world "up" is toward buffer row 0. ok is false when the
// result lies outside the buffer.
func (b Bounds) ToBuffer(x, y int) (bx, by int, ok bool) {
	bx = x - b.XMin
	by = -y - b.YMin
	ok = bx >= 0 && bx < b.Width() && by >= 0 && by < b.Height()
	return bx, by, ok
}

// Canvas receives colored pixels addressed by world coordinates.
// Writes outside the canvas must be ignored without error.
type Canvas interface {
	Bounds() Bounds
	SetPixel(x, y int, c color.RGBA)
}

// Synchronized wraps c so that SetPixel calls are serialized. Use it for
// canvases that are not safe for concurrent writes when rendering with more
// than one worker.
func Synchronized(c Canvas) Canvas {
	return &lockedCanvas{c: c}
}

type lockedCanvas struct {
	mu sync.Mutex
	c  Canvas
}

func (l *lockedCanvas) Bounds() Bounds {
	return l.c.Bounds()
}

func (l *lockedCanvas) SetPixel(x, y int, c color.RGBA) {
	l.mu.Lock()
	l.c.SetPixel(x, y, c)
	l.mu.Unlock()
}
