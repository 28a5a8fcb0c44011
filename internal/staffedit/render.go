package staffedit

import (
	"omr-workbench/pkg/colorutil"
	"omr-workbench/pkg/geometry"
	"omr-workbench/ui/canvas"
)

// Render draws the working geometry, the removed sections and the handles.
// Removed sections are only shown while the commit is live.
func (c *editorCore) Render(overlay *canvas.Overlay) {
	if c.state == StateCommitted {
		for _, s := range c.model.Removed().Sorted() {
			overlay.AddRect(s.Bounds(), colorutil.RemovedSectionColor, canvas.FillSolid)
		}
	}

	for _, pts := range c.strategy.preview() {
		overlay.AddPolyline(sampleCurve(pts, c.params.RenderStep), colorutil.StaffLineColor, 1)
	}

	for i, h := range c.handles {
		col := colorutil.HandleColor
		if i == c.selected {
			col = colorutil.SelectedHandleColor
		}
		overlay.AddCircle(h.Position(), c.params.HandleRadius, col, i == c.selected)
	}
}

// sampleCurve returns the spline through pts evaluated every step pixels,
// or pts itself when no spline fits.
func sampleCurve(pts []geometry.Point2D, step float64) []geometry.Point2D {
	spline, err := geometry.NewNaturalSpline(pts)
	if err != nil || step <= 0 {
		return geometry.ClonePoints(pts)
	}
	var out []geometry.Point2D
	for x := spline.XMin(); x < spline.XMax(); x += step {
		out = append(out, geometry.Point2D{X: x, Y: spline.YAt(x)})
	}
	return append(out, geometry.Point2D{X: spline.XMax(), Y: spline.YAt(spline.XMax())})
}
