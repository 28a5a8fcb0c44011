// Package app provides the editing session: the loaded sheet, the active
// staff editor, the undo/redo history and the events tying them to views.
package app

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"omr-workbench/internal/history"
	"omr-workbench/internal/sheet"
	"omr-workbench/internal/staffedit"
	"omr-workbench/ui/canvas"
)

var (
	// ErrNoSheet is returned when an edit is requested before a sheet is loaded.
	ErrNoSheet = errors.New("no sheet loaded")
	// ErrEditInProgress is returned when a second editor is opened, or
	// history is replayed, while an edit is open.
	ErrEditInProgress = errors.New("a staff edit is already in progress")
	// ErrNoEditor is returned by edit operations when no editor is open.
	ErrNoEditor = errors.New("no staff edit in progress")
	// ErrUnknownStaff is returned when the requested staff is not on the sheet.
	ErrUnknownStaff = errors.New("unknown staff")
)

// State holds the session state: current sheet, active editor and history.
type State struct {
	mu sync.RWMutex

	SheetPath string
	Modified  bool

	sheet   *sheet.Sheet
	params  staffedit.Params
	history *history.Manager
	editor  staffedit.StaffEditor

	// Event listeners
	listeners map[EventType][]EventListener
}

// EventType identifies different session events.
type EventType int

const (
	EventSheetLoaded EventType = iota
	EventEditStarted
	EventGeometryChanged
	EventSectionsChanged
	EventEditFinished
	EventHistoryChanged
	EventModified
)

func (e EventType) String() string {
	switch e {
	case EventSheetLoaded:
		return "sheet-loaded"
	case EventEditStarted:
		return "edit-started"
	case EventGeometryChanged:
		return "geometry-changed"
	case EventSectionsChanged:
		return "sections-changed"
	case EventEditFinished:
		return "edit-finished"
	case EventHistoryChanged:
		return "history-changed"
	case EventModified:
		return "modified"
	default:
		return fmt.Sprintf("event(%d)", int(e))
	}
}

// EventListener is called when an event occurs.
type EventListener func(data interface{})

// NewState creates a new session using the given editor parameters.
func NewState(params staffedit.Params) *State {
	return &State{
		params:    params,
		history:   history.NewManager(history.DefaultLimit),
		listeners: make(map[EventType][]EventListener),
	}
}

// On registers an event listener for the specified event type.
func (s *State) On(event EventType, listener EventListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners[event] = append(s.listeners[event], listener)
}

// Emit triggers all listeners for the specified event type.
func (s *State) Emit(event EventType, data interface{}) {
	s.mu.RLock()
	listeners := s.listeners[event]
	s.mu.RUnlock()

	for _, listener := range listeners {
		listener(data)
	}
}

// SetModified marks the sheet geometry as modified and emits an event.
func (s *State) SetModified(modified bool) {
	s.mu.Lock()
	s.Modified = modified
	s.mu.Unlock()
	s.Emit(EventModified, modified)
}

// SetSheet makes sh the current sheet. An open editor is cancelled and the
// history is cleared.
func (s *State) SetSheet(path string, sh *sheet.Sheet) {
	s.mu.Lock()
	if s.editor != nil {
		s.editor.Cancel()
		s.editor = nil
	}
	s.history.Clear()
	s.sheet = sh
	s.SheetPath = path
	s.Modified = false
	s.mu.Unlock()

	log.Printf("session: sheet %q loaded, %d staffs, %d sections", sh.Name, len(sh.Staffs), sh.Index.Len())
	s.Emit(EventSheetLoaded, path)
}

// Sheet returns the current sheet, or nil.
func (s *State) Sheet() *sheet.Sheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheet
}

// Params returns the editor parameters used for new edits.
func (s *State) Params() staffedit.Params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Editor returns the open editor, or nil.
func (s *State) Editor() staffedit.StaffEditor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor
}

// CanUndo reports whether a finished edit can be undone.
func (s *State) CanUndo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor == nil && s.history.CanUndo()
}

// CanRedo reports whether an undone edit can be replayed.
func (s *State) CanRedo() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editor == nil && s.history.CanRedo()
}

// BeginStaffEdit opens an editor on staff staffID. Only one editor may be
// open at a time.
func (s *State) BeginStaffEdit(staffID int, mode staffedit.Mode) (staffedit.StaffEditor, error) {
	s.mu.Lock()
	if s.sheet == nil {
		s.mu.Unlock()
		return nil, ErrNoSheet
	}
	if s.editor != nil {
		s.mu.Unlock()
		return nil, ErrEditInProgress
	}
	staff, err := s.sheet.Staff(staffID)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: %v", ErrUnknownStaff, err)
	}
	ed := staffedit.New(mode, s.sheet, staff, s.params, s.history)
	s.editor = ed
	s.mu.Unlock()

	log.Printf("session: %s edit of staff %d started, %d handles, %d candidate sections",
		mode, staffID, len(ed.Handles()), len(ed.Candidates()))
	s.Emit(EventEditStarted, ed)
	return ed, nil
}

// PickHandle selects the handle nearest to (x, y) and returns its index,
// or -1 when none is within reach.
func (s *State) PickHandle(x, y float64) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editor == nil {
		return -1, ErrNoEditor
	}
	i := s.editor.HandleAt(x, y)
	s.editor.Select(i)
	return i, nil
}

// DragHandle moves handle i of the open editor by (dx, dy) and reports
// whether the working geometry changed.
func (s *State) DragHandle(i int, dx, dy float64) (bool, error) {
	s.mu.Lock()
	ed := s.editor
	if ed == nil {
		s.mu.Unlock()
		return false, ErrNoEditor
	}
	if !ed.Select(i) {
		s.mu.Unlock()
		return false, fmt.Errorf("handle %d out of range [0, %d)", i, len(ed.Handles()))
	}
	moved := ed.Drag(dx, dy)
	s.mu.Unlock()

	if moved {
		s.Emit(EventGeometryChanged, ed.Staff())
	}
	return moved, nil
}

// CommitEdit pushes the working geometry onto the staff without closing the editor.
func (s *State) CommitEdit() error {
	s.mu.Lock()
	ed := s.editor
	if ed == nil {
		s.mu.Unlock()
		return ErrNoEditor
	}
	ed.Doit()
	s.mu.Unlock()

	s.Emit(EventGeometryChanged, ed.Staff())
	s.Emit(EventSectionsChanged, ed.RemovedSections())
	return nil
}

// FinishEdit ends the open edit. A moved staff becomes one history entry,
// an unmoved one is left as it was.
func (s *State) FinishEdit() error {
	s.mu.Lock()
	ed := s.editor
	if ed == nil {
		s.mu.Unlock()
		return ErrNoEditor
	}
	ed.EndProcess()
	s.editor = nil
	moved := ed.HasMoved()
	s.mu.Unlock()

	s.Emit(EventGeometryChanged, ed.Staff())
	s.Emit(EventSectionsChanged, ed.RemovedSections())
	s.Emit(EventEditFinished, ed)
	if moved {
		s.Emit(EventHistoryChanged, nil)
		s.SetModified(true)
	}
	return nil
}

// CancelEdit abandons the open edit and restores the staff. Nothing is
// recorded in history.
func (s *State) CancelEdit() error {
	s.mu.Lock()
	ed := s.editor
	if ed == nil {
		s.mu.Unlock()
		return ErrNoEditor
	}
	ed.Cancel()
	s.editor = nil
	s.mu.Unlock()

	s.Emit(EventGeometryChanged, ed.Staff())
	s.Emit(EventSectionsChanged, nil)
	s.Emit(EventEditFinished, ed)
	return nil
}

// Undo reverts the last finished edit. It reports false when there is
// nothing to undo.
func (s *State) Undo() (bool, error) {
	return s.replay(s.history.Undo)
}

// Redo replays the last undone edit. It reports false when there is
// nothing to redo.
func (s *State) Redo() (bool, error) {
	return s.replay(s.history.Redo)
}

func (s *State) replay(step func() bool) (bool, error) {
	s.mu.Lock()
	if s.editor != nil {
		s.mu.Unlock()
		return false, ErrEditInProgress
	}
	done := step()
	s.mu.Unlock()

	if done {
		s.Emit(EventGeometryChanged, nil)
		s.Emit(EventSectionsChanged, nil)
		s.Emit(EventHistoryChanged, nil)
		s.SetModified(true)
	}
	return done, nil
}

// Render draws the open editor into overlay. It does nothing when no edit is open.
func (s *State) Render(overlay *canvas.Overlay) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.editor != nil {
		s.editor.Render(overlay)
	}
}
