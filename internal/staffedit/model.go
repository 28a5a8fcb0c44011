package staffedit

import (
	"omr-workbench/internal/lag"
	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/geometry"
)

// LineModel is an independent copy of one staff line's control points.
type LineModel struct {
	points []geometry.Point2D
}

// NewLineModel snapshots the current points of line.
func NewLineModel(line *sheet.StaffLine) *LineModel {
	return &LineModel{points: line.Points()}
}

// Points returns a copy of the model points.
func (m *LineModel) Points() []geometry.Point2D {
	return geometry.ClonePoints(m.points)
}

// Len returns the number of points.
func (m *LineModel) Len() int {
	return len(m.points)
}

// point returns a pointer to point i, for handles.
func (m *LineModel) point(i int) *geometry.Point2D {
	return &m.points[i]
}

// StaffModel is a snapshot of the editable geometry of a staff, plus the
// sections removed from the index when this model was last committed.
type StaffModel interface {
	// LineModels returns the line snapshots held by the model.
	LineModels() []*LineModel

	// Removed returns the sections removed by the last commit of this model.
	Removed() *lag.SectionSet
}

type modelBase struct {
	removed lag.SectionSet
}

func (b *modelBase) Removed() *lag.SectionSet {
	return &b.removed
}

// GlobalModel holds the mid line only; the other lines follow it rigidly.
type GlobalModel struct {
	modelBase
	Mid *LineModel
}

func newGlobalModel(staff *sheet.Staff) *GlobalModel {
	return &GlobalModel{Mid: NewLineModel(staff.MidLine())}
}

// LineModels returns the mid line model.
func (m *GlobalModel) LineModels() []*LineModel {
	return []*LineModel{m.Mid}
}

// LineArrayModel holds one independent model per staff line.
type LineArrayModel struct {
	modelBase
	Lines []*LineModel
}

func newLineArrayModel(staff *sheet.Staff) *LineArrayModel {
	m := &LineArrayModel{Lines: make([]*LineModel, staff.LineCount())}
	for i, l := range staff.Lines() {
		m.Lines[i] = NewLineModel(l)
	}
	return m
}

// LineModels returns the per-line models, top to bottom.
func (m *LineArrayModel) LineModels() []*LineModel {
	return m.Lines
}
