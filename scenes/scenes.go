// Package scenes is a catalogue of named demo scenes.
package scenes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/sdf"
)

// ErrUnknownScene is returned by Lookup for names not in the catalogue.
var ErrUnknownScene = errors.New("scenes: unknown scene")

// DefaultBounds is the 800x600 world window centred on the origin.
var DefaultBounds = sdf.Bounds{XMin: -400, XMax: 400, YMin: -300, YMax: 300}

// Entry describes one catalogue scene.
type Entry struct {
	Name        string // lowercase a-z only
	Description string
	Bounds      sdf.Bounds

	// Build returns a freshly constructed scene. Each call allocates new
	// fields, so callers may edit the result without affecting others.
	Build func() sdf.Scene
}

var all = map[string]Entry{
	"heart": {
		Name:        "heart",
		Description: "two unioned circles over a triangle of three half planes",
		Bounds:      DefaultBounds,
		Build:       heart,
	},
	"ellipse": {
		Name:        "ellipse",
		Description: "an ellipse rotated by 30 degrees",
		Bounds:      DefaultBounds,
		Build:       ellipse,
	},
	"ring": {
		Name:        "ring",
		Description: "a disc with a smaller disc removed",
		Bounds:      DefaultBounds,
		Build:       ring,
	},
	"capsule": {
		Name:        "capsule",
		Description: "a thick rotated segment",
		Bounds:      DefaultBounds,
		Build:       capsule,
	},
	"wedge": {
		Name:        "wedge",
		Description: "a disc with a wedge cut out, built in an arena",
		Bounds:      DefaultBounds,
		Build:       wedge,
	},
}

// Names returns the catalogue names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(all))
}

// Lookup returns the entry for name.
func Lookup(name string) (Entry, error) {
	e, ok := all[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return e, nil
}

func heart() sdf.Scene {
	left := sdf.NewCircle(sdf.Pt(-66, 0), 80)
	right := sdf.NewCircle(sdf.Pt(66, 0), 80)
	top := sdf.Union(right, left)

	// The base line points right, so its interior is below y = -58. The
	// two sides are copies of it turned about the base corners.
	base := sdf.NewLine(sdf.Pt(-120, -58), sdf.Pt(120, -58))
	leftSide := sdf.NewLine(sdf.Pt(-120, -58), sdf.Pt(120, -58))
	leftSide.SetAngle(135)
	rightSide := sdf.NewLine(sdf.Pt(120, -58), sdf.Pt(-120, -58))
	rightSide.SetAngle(45)

	tri := sdf.Intersection(base, sdf.Intersection(leftSide, rightSide))
	return sdf.Scene{sdf.Union(tri, top)}
}

func ellipse() sdf.Scene {
	e := sdf.NewEllipse(sdf.Pt(0, 0), 200, 100)
	e.SetAngle(30)
	return sdf.Scene{e}
}

func ring() sdf.Scene {
	hole := sdf.NewCircle(sdf.Pt(0, 0), 100)
	disc := sdf.NewCircle(sdf.Pt(0, 0), 200)
	return sdf.Scene{sdf.Difference(hole, disc)}
}

func capsule() sdf.Scene {
	s := sdf.NewSegment(sdf.Pt(-150, 0), sdf.Pt(150, 0))
	s.SetThreshold(40)
	s.SetAngle(20)
	return sdf.Scene{s}
}

func wedge() sdf.Scene {
	var a sdf.Arena
	disc := a.Add(sdf.NewCircle(sdf.Pt(0, 0), 180))
	eye := a.Add(sdf.NewCircle(sdf.Pt(20, 100), 20))

	// Two half planes through the origin whose common interior opens to
	// the right at 60 degrees.
	upper := sdf.NewLine(sdf.Pt(0, 0), sdf.Pt(1, 0))
	upper.SetThreshold(0)
	upper.SetAngle(30)
	lower := sdf.NewLine(sdf.Pt(0, 0), sdf.Pt(-1, 0))
	lower.SetThreshold(0)
	lower.SetAngle(-30)

	mouth := must(a.Intersection(a.Add(upper), a.Add(lower)))
	body := must(a.Difference(mouth, disc))
	root := must(a.Difference(eye, body))

	f, err := a.Field(root)
	if err != nil {
		panic(err)
	}
	return sdf.Scene{f}
}

// must unwraps arena results for hand-built catalogue scenes, whose IDs
// are known to be valid.
func must(id sdf.NodeID, err error) sdf.NodeID {
	if err != nil {
		panic(err)
	}
	return id
}
