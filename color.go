package sdf

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Palette holds the fixed colors of the thermal mapping.
type Palette struct {
	Inside     color.RGBA // negative distances
	Outside    color.RGBA // positive distances
	Neutral    color.RGBA // exactly on the level set
	Background uint8      // gray level that far-away pixels fade toward
}

// DefaultPalette is red inside, blue outside, fading to light gray.
var DefaultPalette = Palette{
	Inside:     color.RGBA{R: 255, G: 70, B: 70, A: 255},
	Outside:    color.RGBA{R: 67, G: 100, B: 238, A: 255},
	Neutral:    color.RGBA{R: 220, G: 220, B: 220, A: 255},
	Background: 230,
}

// Fixed colors used by the silhouette mode and the axis overlay.
var (
	Black     = color.RGBA{R: 22, G: 22, B: 22, A: 255}
	White     = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	AxisColor = color.RGBA{R: 54, G: 54, B: 54, A: 255}
)

// maxBrightness is the brightness reached far from any boundary.
const maxBrightness = 0.8

// Normalize maps a signed distance into [-1, 1] with tanh(2v).
func Normalize(v float64) float64 {
	return min(max(math.Tanh(2*v), -1), 1)
}

// Hue returns the palette color for a normalized distance: Outside when
// norm > 0, Inside when norm < 0, Neutral otherwise. The choice is discrete.
func (p Palette) Hue(norm float64) color.RGBA {
	norm = min(max(norm, -1), 1)
	switch {
	case norm > 0:
		return p.Outside
	case norm < 0:
		return p.Inside
	default:
		return p.Neutral
	}
}

// Blend moves c toward the background gray by brightness in [0, 1].
// Channels are truncated, not rounded.
func (p Palette) Blend(c color.RGBA, brightness float64) color.RGBA {
	b := min(max(brightness, 0), 1)
	bg := float64(p.Background)
	mix := func(ch uint8) uint8 {
		return uint8(float64(ch)*(1-b) + bg*b)
	}
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: 255}
}

// Thermal maps a signed distance to a color. Pixels near the boundary keep
// the saturated hue; far pixels fade toward the background.
func (p Palette) Thermal(v float64) color.RGBA {
	norm := Normalize(v)
	return p.Blend(p.Hue(norm), (1-math.Abs(norm))*maxBrightness)
}

// Mode selects how distances are turned into pixels.
type Mode int

const (
	// Thermal colors every pixel by sign and proximity to the boundary.
	Thermal Mode = iota
	// Silhouette paints the interior white and leaves the rest untouched.
	Silhouette
)

// String returns the mode name accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case Thermal:
		return "thermal"
	case Silhouette:
		return "silhouette"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses a mode name, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thermal":
		return Thermal, nil
	case "silhouette":
		return Silhouette, nil
	default:
		return 0, fmt.Errorf("sdf: unknown mode %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// Color maps v under mode m. The boolean is false when the pixel should
// not be written at all.
func (m Mode) Color(p Palette, v float64) (color.RGBA, bool) {
	if m == Silhouette {
		if v < 0 {
			return White, true
		}
		return color.RGBA{}, false
	}
	return p.Thermal(v), true
}
