package staffedit

import (
	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/geometry"
)

// LinesEditor moves every line point on its own, vertically.
type LinesEditor struct {
	*editorCore
}

// NewLinesEditor creates a per-line editor for staff. Every control point
// of every line gets a vertical handle, top line first.
func NewLinesEditor(sh *sheet.Sheet, staff *sheet.Staff, params Params, tasks TaskManager) *LinesEditor {
	e := &LinesEditor{editorCore: newEditorCore(sh, staff, params, tasks)}
	e.self = e
	e.strategy = e

	e.original = newLineArrayModel(staff)
	working := newLineArrayModel(staff)
	e.model = working

	for _, lm := range working.Lines {
		for j := 0; j < lm.Len(); j++ {
			e.handles = append(e.handles, NewVerticalHandle(lm.point(j)))
		}
	}
	return e
}

// Mode returns ModeLines.
func (e *LinesEditor) Mode() Mode { return ModeLines }

func (e *LinesEditor) applyModel(m StaffModel) {
	lm := m.(*LineArrayModel)
	for i, l := range e.staff.Lines() {
		l.SetPoints(lm.Lines[i].points)
	}
	if m == e.original {
		e.restoreAbscissae()
	}
	e.staff.InvalidateCache()
}

func (e *LinesEditor) preview() [][]geometry.Point2D {
	lm := e.model.(*LineArrayModel)
	out := make([][]geometry.Point2D, len(lm.Lines))
	for i, l := range lm.Lines {
		out[i] = l.Points()
	}
	return out
}
