// Package lag holds the sheet's horizontal sections: vertical stacks of
// horizontal foreground runs, and the shared index that tracks which of them
// are still available to symbol extraction.
package lag

import (
	"fmt"

	"omr-workbench/pkg/geometry"
)

// SectionID is the stable identity of a section within one sheet.
type SectionID int

// Run is a horizontal run of foreground pixels on row Y, from Start to Stop inclusive.
type Run struct {
	Y     int `json:"y"`
	Start int `json:"start"`
	Stop  int `json:"stop"`
}

// Length returns the number of pixels in the run.
func (r Run) Length() int {
	return r.Stop - r.Start + 1
}

// OverlapsX reports whether two runs share at least one abscissa.
func (r Run) OverlapsX(other Run) bool {
	return r.Start <= other.Stop && other.Start <= r.Stop
}

// Section is a group of runs on consecutive rows, top to bottom.
// Sections are created by the LAG builder and never modified afterwards.
type Section struct {
	ID   SectionID `json:"id"`
	Runs []Run     `json:"runs"`

	bounds geometry.RectInt
}

// NewSection creates a section from runs on consecutive rows.
func NewSection(id SectionID, runs []Run) *Section {
	s := &Section{ID: id, Runs: runs}
	s.bounds = computeBounds(runs)
	return s
}

func computeBounds(runs []Run) geometry.RectInt {
	if len(runs) == 0 {
		return geometry.RectInt{}
	}
	minX, maxX := runs[0].Start, runs[0].Stop
	for _, r := range runs[1:] {
		minX = min(minX, r.Start)
		maxX = max(maxX, r.Stop)
	}
	return geometry.RectInt{
		X:      minX,
		Y:      runs[0].Y,
		Width:  maxX - minX + 1,
		Height: len(runs),
	}
}

// Bounds returns the section bounding box.
func (s *Section) Bounds() geometry.RectInt {
	return s.bounds
}

// Thickness returns the number of runs, i.e. the section height in pixels.
func (s *Section) Thickness() int {
	return len(s.Runs)
}

// FirstRun returns the topmost run.
func (s *Section) FirstRun() Run {
	return s.Runs[0]
}

// LastRun returns the bottommost run.
func (s *Section) LastRun() Run {
	return s.Runs[len(s.Runs)-1]
}

// Weight returns the number of foreground pixels.
func (s *Section) Weight() int {
	w := 0
	for _, r := range s.Runs {
		w += r.Length()
	}
	return w
}

func (s *Section) String() string {
	b := s.bounds
	return fmt.Sprintf("S%d[%d,%d %dx%d]", s.ID, b.X, b.Y, b.Width, b.Height)
}
