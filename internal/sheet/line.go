// Package sheet provides the staff geometry of one music sheet: staffs,
// their line curves and the sheet scale.
package sheet

import (
	"log"

	"omr-workbench/pkg/geometry"
)

// StaffLine is one line curve of a staff, defined by control points with
// strictly increasing abscissae and an interpolating spline through them.
type StaffLine struct {
	points []geometry.Point2D
	spline *geometry.NaturalSpline
}

// NewStaffLine creates a line through a copy of points.
func NewStaffLine(points []geometry.Point2D) *StaffLine {
	l := &StaffLine{}
	l.SetPoints(points)
	return l
}

// Points returns a copy of the control points.
func (l *StaffLine) Points() []geometry.Point2D {
	return geometry.ClonePoints(l.points)
}

// PointCount returns the number of control points.
func (l *StaffLine) PointCount() int {
	return len(l.points)
}

// SetPoints replaces the control points with a copy of points and rebuilds the spline.
func (l *StaffLine) SetPoints(points []geometry.Point2D) {
	l.points = geometry.ClonePoints(points)
	spline, err := geometry.NewNaturalSpline(l.points)
	if err != nil {
		// Callers guarantee increasing abscissae; keep going on a polyline.
		log.Printf("staff line spline: %v", err)
		spline = nil
	}
	l.spline = spline
}

// Spline returns the current spline, or nil if the points could not be fitted.
func (l *StaffLine) Spline() *geometry.NaturalSpline {
	return l.spline
}

// YAt returns the line ordinate at abscissa x.
func (l *StaffLine) YAt(x float64) float64 {
	if l.spline == nil {
		return geometry.InterpolateLinear(l.points, x)
	}
	return l.spline.YAt(x)
}

// Intersects reports whether the line passes through box.
func (l *StaffLine) Intersects(box geometry.RectInt) bool {
	if l.spline == nil {
		return false
	}
	return l.spline.Intersects(box)
}

// Left returns the first control point.
func (l *StaffLine) Left() geometry.Point2D {
	return l.points[0]
}

// Right returns the last control point.
func (l *StaffLine) Right() geometry.Point2D {
	return l.points[len(l.points)-1]
}

// Bounds returns the bounding box of the control points.
func (l *StaffLine) Bounds() geometry.Rect {
	return geometry.BoundingBox(l.points)
}

// Sample returns the curve evaluated every step pixels from first to last point.
func (l *StaffLine) Sample(step float64) []geometry.Point2D {
	if len(l.points) == 0 || step <= 0 {
		return nil
	}
	left, right := l.Left().X, l.Right().X
	var out []geometry.Point2D
	for x := left; x < right; x += step {
		out = append(out, geometry.Point2D{X: x, Y: l.YAt(x)})
	}
	return append(out, geometry.Point2D{X: right, Y: l.YAt(right)})
}
