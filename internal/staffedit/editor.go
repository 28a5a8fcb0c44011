// Package staffedit implements interactive correction of staff line geometry.
//
// An editor snapshots the staff at creation (original model) and again into
// a working model whose points are moved through handles. Committing pushes
// the working geometry onto the live staff and removes from the sheet's
// section index the sections the new lines absorb; undoing restores the
// original geometry and puts those sections back.
package staffedit

import (
	"log"

	"omr-workbench/internal/history"
	"omr-workbench/internal/lag"
	"omr-workbench/internal/sheet"
	"omr-workbench/pkg/geometry"
	"omr-workbench/ui/canvas"
)

// Mode selects the edit topology.
type Mode int

const (
	// ModeGlobal moves the whole staff rigidly through its mid line.
	ModeGlobal Mode = iota
	// ModeLines moves every line point independently.
	ModeLines
)

func (m Mode) String() string {
	switch m {
	case ModeGlobal:
		return "global"
	case ModeLines:
		return "lines"
	default:
		return "unknown"
	}
}

// State is the commit state of an editor.
type State int

const (
	// StateEditing: handles may have moved, the live staff is untouched.
	StateEditing State = iota
	// StateCommitted: the live staff matches the working model.
	StateCommitted
	// StateUndone: the live staff matches the original model.
	StateUndone
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateCommitted:
		return "committed"
	case StateUndone:
		return "undone"
	default:
		return "unknown"
	}
}

// ObjectEditor is the contract shared with the undo/redo task manager and the view.
type ObjectEditor interface {
	Doit()
	Undo()
	EndProcess()
	Render(overlay *canvas.Overlay)
}

// TaskManager receives finished edits as single undoable tasks.
type TaskManager interface {
	Push(task history.Task)
}

// StaffEditor edits the geometry of one staff.
type StaffEditor interface {
	ObjectEditor

	Mode() Mode
	Staff() *sheet.Staff
	State() State
	Handles() []Handle
	Model() StaffModel
	OriginalModel() StaffModel
	RemovedSections() []*lag.Section
	Candidates() []*lag.Section

	HandleAt(x, y float64) int
	Select(i int) bool
	Selected() int
	Drag(dx, dy float64) bool
	HasMoved() bool

	Cancel()
	Closed() bool
}

// New creates an editor for staff in the given mode.
func New(mode Mode, sh *sheet.Sheet, staff *sheet.Staff, params Params, tasks TaskManager) StaffEditor {
	if mode == ModeLines {
		return NewLinesEditor(sh, staff, params, tasks)
	}
	return NewGlobalEditor(sh, staff, params, tasks)
}

// strategy is the mode-specific part of an editor.
type strategy interface {
	// applyModel pushes the geometry of m onto the live staff.
	applyModel(m StaffModel)

	// preview returns the line point lists the working model would produce.
	preview() [][]geometry.Point2D
}

// editorCore holds the state and commit logic shared by both modes.
type editorCore struct {
	self     StaffEditor
	strategy strategy

	staff  *sheet.Staff
	index  *lag.Index
	params Params
	tasks  TaskManager
	reclas reclassifier

	original StaffModel
	model    StaffModel
	handles  []Handle

	candidates []*lag.Section

	origLeft, origRight int

	state    State
	selected int
	hasMoved bool
	dirty    bool
	closed   bool
}

func newEditorCore(sh *sheet.Sheet, staff *sheet.Staff, params Params, tasks TaskManager) *editorCore {
	return &editorCore{
		staff:  staff,
		index:  sh.Index,
		params: params,
		tasks:  tasks,
		reclas: reclassifier{
			minRatio:     params.MinWidthHeightRatio,
			maxThickness: sh.Scale.MaxLineThickness,
		},
		candidates: collectCandidates(sh.Index, staff, sh.Scale.MaxLineThickness),
		origLeft:   staff.Left(),
		origRight:  staff.Right(),
		selected:   -1,
	}
}

// Doit commits the working model onto the live staff.
func (c *editorCore) Doit() {
	removed := c.model.Removed()

	// Start from a clean pool: put back what the previous commit took.
	c.index.Insert(removed.Sorted()...)
	removed.Clear()

	c.strategy.applyModel(c.model)

	pool := newCandidatePool(c.candidates, c.index.Contains)
	for _, line := range c.staff.Lines() {
		removed.Add(c.reclas.sectionsToRemove(line, pool)...)
	}
	c.index.Remove(removed.Sorted()...)

	c.state = StateCommitted
	c.dirty = false
	log.Printf("staff %d: %s edit committed, %d of %d candidate sections removed",
		c.staff.ID, c.self.Mode(), removed.Len(), len(c.candidates))
}

// Undo restores the original geometry and the sections the commit removed.
func (c *editorCore) Undo() {
	c.strategy.applyModel(c.original)
	c.index.Insert(c.model.Removed().Sorted()...)

	c.state = StateUndone
	log.Printf("staff %d: %s edit undone, %d sections restored",
		c.staff.ID, c.self.Mode(), c.model.Removed().Len())
}

// EndProcess finishes the interactive edit. A moved staff is committed if
// needed and handed to the task manager; an unmoved one is discarded.
func (c *editorCore) EndProcess() {
	if c.closed {
		return
	}
	if c.hasMoved {
		if c.dirty || c.state != StateCommitted {
			c.Doit()
		}
		if c.tasks != nil {
			c.tasks.Push(c.self)
		}
	} else {
		if c.state == StateCommitted {
			c.Undo()
		}
		c.model.Removed().Clear()
		log.Printf("staff %d: edit discarded, nothing moved", c.staff.ID)
	}
	c.closed = true
}

// Cancel abandons the edit, reverting any commit, without recording history.
func (c *editorCore) Cancel() {
	if c.closed {
		return
	}
	if c.state == StateCommitted {
		c.Undo()
	}
	c.model.Removed().Clear()
	c.closed = true
	log.Printf("staff %d: edit cancelled", c.staff.ID)
}

// Closed reports whether the interactive edit is over.
func (c *editorCore) Closed() bool { return c.closed }

// Staff returns the edited staff.
func (c *editorCore) Staff() *sheet.Staff { return c.staff }

// State returns the commit state.
func (c *editorCore) State() State { return c.state }

// Handles returns the handles bound to the working model.
func (c *editorCore) Handles() []Handle { return c.handles }

// Model returns the working model.
func (c *editorCore) Model() StaffModel { return c.model }

// OriginalModel returns the snapshot taken at creation.
func (c *editorCore) OriginalModel() StaffModel { return c.original }

// Candidates returns the sections the reclassifier may absorb, fixed at creation.
func (c *editorCore) Candidates() []*lag.Section { return c.candidates }

// RemovedSections returns the sections removed by the last commit, by ID.
// A discarded or cancelled edit reports none; after Undo the set is kept
// for the next Doit.
func (c *editorCore) RemovedSections() []*lag.Section {
	return c.model.Removed().Sorted()
}

// HasMoved reports whether any handle drag changed the working model.
func (c *editorCore) HasMoved() bool { return c.hasMoved }

// restoreAbscissae puts back the staff bounds seen at editor creation.
func (c *editorCore) restoreAbscissae() {
	c.staff.SetAbscissae(c.origLeft, c.origRight)
}
