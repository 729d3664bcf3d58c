// Package sdf renders 2D scenes described by signed distance fields.
//
// # Overview
//
// A scene is built from primitive fields (Circle, Segment, Line) combined
// with boolean operators (Union, Intersection, Difference). A Renderer
// samples the scene at every integer coordinate of a Canvas and turns each
// distance into a color.
//
// # Quick Start
//
//	import "github.com/gogpu/sdf"
//
//	left := sdf.NewCircle(sdf.Pt(-66, 0), 80)
//	right := sdf.NewCircle(sdf.Pt(66, 0), 80)
//
//	grid := sdf.NewGrid(sdf.Bounds{XMin: -400, XMax: 400, YMin: -300, YMax: 300})
//	err := sdf.Render(ctx, grid, sdf.Union(left, right), sdf.Thermal)
//	sdf.DrawAxis(grid, sdf.DefaultAxisStyle)
//	err = grid.SavePNG("out.png")
//
// # Coordinate System
//
// Fields live in Cartesian world coordinates:
//   - X increases right
//   - Y increases up
//   - Angles in degrees, counter-clockwise
//
// A Grid maps world (x, y) to buffer (x-XMin, -y-YMin).
//
// # Sharing Sub-fields
//
// Fields are plain values held by reference, so one field may be used by
// several composites. Arena offers the same through stable NodeIDs, which
// also rules out cycles.
//
// # Rendering Modes
//
// Thermal colors every pixel: red inside, blue outside, saturated near the
// boundary and fading to gray further away. Silhouette paints only the
// interior.
package sdf

// Version is the current version of the library.
const Version = "0.1.0"
