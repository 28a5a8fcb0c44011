package staffedit

import (
	"log"

	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/geometry"
)

// GlobalEditor moves a staff rigidly: only the mid line is edited, every
// other line keeps its original vertical offsets to the mid line.
type GlobalEditor struct {
	*editorCore

	midIndex int

	// dys[i][j] is the original offset of point j of line i from the mid
	// line at the same abscissa. Built once from the original geometry.
	dys [][]float64

	// snapshot is the original geometry of every line, restored verbatim
	// when the original model is applied.
	snapshot [][]geometry.Point2D
}

// NewGlobalEditor creates a rigid editor for staff.
// The two end points of the mid line get free handles, inner points get
// vertical handles.
func NewGlobalEditor(sh *sheet.Sheet, staff *sheet.Staff, params Params, tasks TaskManager) *GlobalEditor {
	e := &GlobalEditor{
		editorCore: newEditorCore(sh, staff, params, tasks),
		midIndex:   staff.MidLineIndex(),
		snapshot:   staff.Snapshot(),
	}
	e.self = e
	e.strategy = e

	mid := staff.MidLine()
	e.dys = make([][]float64, staff.LineCount())
	for i, pts := range e.snapshot {
		if i == e.midIndex {
			continue
		}
		dy := make([]float64, len(pts))
		for j, p := range pts {
			dy[j] = p.Y - mid.YAt(p.X)
		}
		e.dys[i] = dy
	}

	e.original = newGlobalModel(staff)
	working := newGlobalModel(staff)
	e.model = working

	last := working.Mid.Len() - 1
	for j := 0; j <= last; j++ {
		if j == 0 || j == last {
			e.handles = append(e.handles, NewFreeHandle(working.Mid.point(j)))
		} else {
			e.handles = append(e.handles, NewVerticalHandle(working.Mid.point(j)))
		}
	}
	return e
}

// Mode returns ModeGlobal.
func (e *GlobalEditor) Mode() Mode { return ModeGlobal }

// Offsets returns the frozen offsets of line i to the mid line (nil for the mid line).
func (e *GlobalEditor) Offsets(i int) []float64 {
	return e.dys[i]
}

func (e *GlobalEditor) applyModel(m StaffModel) {
	gm := m.(*GlobalModel)
	lines := e.staff.Lines()

	if m == e.original {
		for i, l := range lines {
			l.SetPoints(e.snapshot[i])
		}
		e.restoreAbscissae()
		e.staff.InvalidateCache()
		return
	}

	derived, dropped := e.derive(gm.Mid.points)
	if dropped > 0 {
		log.Printf("staff %d: %d inner points outside x %.1f..%.1f dropped",
			e.staff.ID, dropped, gm.Mid.points[0].X, gm.Mid.points[len(gm.Mid.points)-1].X)
	}
	for i, l := range lines {
		l.SetPoints(derived[i])
	}
	mid := lines[e.midIndex]
	e.staff.SetAbscissae(geometry.Round(mid.Left().X), geometry.Round(mid.Right().X))
	e.staff.InvalidateCache()
}

func (e *GlobalEditor) preview() [][]geometry.Point2D {
	derived, _ := e.derive(e.model.(*GlobalModel).Mid.points)
	return derived
}

// derive computes every line from a mid line point list. Line ends are
// aligned on the mid line ends, inner points keep their abscissa. Inner
// points no longer strictly between the ends are dropped so abscissae keep
// increasing; their count is returned.
func (e *GlobalEditor) derive(midPts []geometry.Point2D) ([][]geometry.Point2D, int) {
	midLine := sheet.NewStaffLine(midPts)
	left := midPts[0].X
	right := midPts[len(midPts)-1].X

	dropped := 0
	out := make([][]geometry.Point2D, len(e.snapshot))
	for i, orig := range e.snapshot {
		if i == e.midIndex {
			out[i] = geometry.ClonePoints(midPts)
			continue
		}
		pts := make([]geometry.Point2D, 0, len(orig))
		last := len(orig) - 1
		for j, p := range orig {
			x := p.X
			switch {
			case j == 0:
				x = left
			case j == last:
				x = right
			case x <= left || x >= right:
				dropped++
				continue
			}
			pts = append(pts, geometry.Point2D{X: x, Y: midLine.YAt(x) + e.dys[i][j]})
		}
		out[i] = pts
	}
	return out, dropped
}
