package staffedit

import "omr-workbench/pkg/geometry"

// HandleAt returns the index of the handle nearest to (x, y) within the
// pick tolerance, or -1.
func (c *editorCore) HandleAt(x, y float64) int {
	p := geometry.Point2D{X: x, Y: y}
	best := -1
	bestDist := c.params.HandleTolerance
	for i, h := range c.handles {
		if d := h.Position().Distance(p); d <= bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Select makes handle i the drag target; -1 clears the selection.
func (c *editorCore) Select(i int) bool {
	if i < -1 || i >= len(c.handles) {
		return false
	}
	c.selected = i
	return true
}

// Selected returns the selected handle index, or -1.
func (c *editorCore) Selected() int { return c.selected }

// Drag moves the selected handle. It reports whether the working model changed.
func (c *editorCore) Drag(dx, dy float64) bool {
	if c.closed || c.selected < 0 {
		return false
	}
	if !c.handles[c.selected].Move(dx, dy) {
		return false
	}
	c.hasMoved = true
	c.dirty = true
	return true
}
