// Package canvas provides overlay types for the sheet view and draws them
// onto RGBA images.
package canvas

import (
	"image/color"

	"omr-workbench/pkg/geometry"
)

// Overlay collects drawable shapes in sheet coordinates.
// Shapes carry their own colors so one overlay can hold a whole editor view.
type Overlay struct {
	Rectangles []OverlayRect
	Polylines  []OverlayPolyline
	Circles    []OverlayCircle
}

// FillPattern indicates how to fill a rectangle.
type FillPattern int

const (
	FillNone  FillPattern = iota // Just outline
	FillSolid                    // Solid fill
)

// OverlayRect represents a rectangle to draw on the overlay.
type OverlayRect struct {
	X, Y, Width, Height int
	Color               color.RGBA
	Fill                FillPattern
}

// OverlayPolyline is an open path through Points.
type OverlayPolyline struct {
	Points    []geometry.Point2D
	Color     color.RGBA
	Thickness int // 0 = 1 pixel
}

// OverlayCircle is a circle centered on (X, Y).
type OverlayCircle struct {
	X, Y   float64
	Radius float64
	Color  color.RGBA
	Filled bool
}

// AddRect appends a rectangle.
func (o *Overlay) AddRect(r geometry.RectInt, col color.RGBA, fill FillPattern) {
	o.Rectangles = append(o.Rectangles, OverlayRect{
		X: r.X, Y: r.Y, Width: r.Width, Height: r.Height,
		Color: col, Fill: fill,
	})
}

// AddPolyline appends a polyline.
func (o *Overlay) AddPolyline(points []geometry.Point2D, col color.RGBA, thickness int) {
	o.Polylines = append(o.Polylines, OverlayPolyline{Points: points, Color: col, Thickness: thickness})
}

// AddCircle appends a circle.
func (o *Overlay) AddCircle(center geometry.Point2D, radius float64, col color.RGBA, filled bool) {
	o.Circles = append(o.Circles, OverlayCircle{X: center.X, Y: center.Y, Radius: radius, Color: col, Filled: filled})
}

// Clear removes all shapes.
func (o *Overlay) Clear() {
	o.Rectangles = nil
	o.Polylines = nil
	o.Circles = nil
}
