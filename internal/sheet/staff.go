package sheet

import (
	"errors"
	"fmt"

	"omr-workbench/pkg/geometry"
)

// ErrNoLines is returned when a staff is built without any line.
var ErrNoLines = errors.New("staff has no lines")

// Staff is an ordered group of line curves, top to bottom, belonging to one system.
//
// Left and Right are the staff abscissa bounds. The area polygon and bounds
// are derived from the lines and cached until InvalidateCache is called.
type Staff struct {
	ID    int
	lines []*StaffLine

	left, right int

	area   []geometry.Point2D
	bounds *geometry.RectInt
}

// NewStaff creates a staff from its lines, top to bottom.
// The abscissa bounds start at the rounded ends of the mid line.
func NewStaff(id int, lines []*StaffLine) (*Staff, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("staff %d: %w", id, ErrNoLines)
	}
	s := &Staff{ID: id, lines: lines}
	mid := s.MidLine()
	s.left = geometry.Round(mid.Left().X)
	s.right = geometry.Round(mid.Right().X)
	return s, nil
}

// Lines returns the staff lines, top to bottom.
func (s *Staff) Lines() []*StaffLine {
	return s.lines
}

// LineCount returns the number of lines.
func (s *Staff) LineCount() int {
	return len(s.lines)
}

// MidLineIndex returns the index of the reference line for rigid edits.
func (s *Staff) MidLineIndex() int {
	return len(s.lines) / 2
}

// MidLine returns the reference line for rigid edits.
func (s *Staff) MidLine() *StaffLine {
	return s.lines[s.MidLineIndex()]
}

// FirstLine returns the top line.
func (s *Staff) FirstLine() *StaffLine {
	return s.lines[0]
}

// LastLine returns the bottom line.
func (s *Staff) LastLine() *StaffLine {
	return s.lines[len(s.lines)-1]
}

// Left returns the left abscissa bound.
func (s *Staff) Left() int { return s.left }

// Right returns the right abscissa bound.
func (s *Staff) Right() int { return s.right }

// SetAbscissae sets the abscissa bounds.
func (s *Staff) SetAbscissae(left, right int) {
	s.left = left
	s.right = right
}

// InvalidateCache drops the derived area and bounds after a geometry change.
func (s *Staff) InvalidateCache() {
	s.area = nil
	s.bounds = nil
}

// Area returns the polygon enclosed by the first and last lines.
func (s *Staff) Area() []geometry.Point2D {
	if s.area == nil {
		s.area = geometry.StripPolygon(s.FirstLine().Sample(1), s.LastLine().Sample(1))
	}
	return s.area
}

// Bounds returns the pixel box covering all control points of all lines.
func (s *Staff) Bounds() geometry.RectInt {
	if s.bounds == nil {
		var pts []geometry.Point2D
		for _, l := range s.lines {
			pts = append(pts, l.points...)
		}
		b := geometry.BoundingBox(pts).Enclosing()
		s.bounds = &b
	}
	return *s.bounds
}

// Contains reports whether p lies between the first and last lines.
func (s *Staff) Contains(p geometry.Point2D) bool {
	return geometry.PointInPolygon(p, s.Area())
}

// Snapshot returns an independent copy of every line's control points.
func (s *Staff) Snapshot() [][]geometry.Point2D {
	out := make([][]geometry.Point2D, len(s.lines))
	for i, l := range s.lines {
		out[i] = l.Points()
	}
	return out
}
