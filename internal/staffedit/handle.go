package staffedit

import "omr-workbench/pkg/geometry"

// HandleKind tells which axes a handle may move along.
type HandleKind int

const (
	// HandleVertical moves along y only.
	HandleVertical HandleKind = iota
	// HandleFree moves along both axes.
	HandleFree
)

func (k HandleKind) String() string {
	switch k {
	case HandleVertical:
		return "vertical"
	case HandleFree:
		return "free"
	default:
		return "unknown"
	}
}

// Handle is a draggable proxy for one control point of the working model.
type Handle interface {
	// Move translates the point and reports whether it changed.
	Move(dx, dy float64) bool

	// Position returns the current point location.
	Position() geometry.Point2D

	// Kind returns the handle's movement capability.
	Kind() HandleKind
}

// pointHandle references a point living in a LineModel.
type pointHandle struct {
	pt   *geometry.Point2D
	kind HandleKind
}

// NewVerticalHandle returns a handle that only moves pt vertically.
func NewVerticalHandle(pt *geometry.Point2D) Handle {
	return &pointHandle{pt: pt, kind: HandleVertical}
}

// NewFreeHandle returns a handle that moves pt along both axes.
func NewFreeHandle(pt *geometry.Point2D) Handle {
	return &pointHandle{pt: pt, kind: HandleFree}
}

func (h *pointHandle) Move(dx, dy float64) bool {
	if h.kind == HandleVertical {
		if dy == 0 {
			return false
		}
		h.pt.Y += dy
		return true
	}
	h.pt.X += dx
	h.pt.Y += dy
	return true
}

func (h *pointHandle) Position() geometry.Point2D {
	return *h.pt
}

func (h *pointHandle) Kind() HandleKind {
	return h.kind
}
