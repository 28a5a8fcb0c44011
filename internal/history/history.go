// Package history keeps the undo/redo stacks of committed edits.
package history

import "log"

// Task is an edit that has already been performed once and can be reverted
// and replayed.
type Task interface {
	Doit()
	Undo()
}

// DefaultLimit is the number of tasks kept when no limit is given.
const DefaultLimit = 100

// Manager holds done tasks (undo stack) and undone tasks (redo stack).
type Manager struct {
	limit int
	undo  []Task
	redo  []Task
}

// NewManager creates a manager keeping at most limit tasks; limit <= 0 means DefaultLimit.
func NewManager(limit int) *Manager {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Manager{limit: limit}
}

// Push records a task that was just performed. Any redo history is dropped.
func (m *Manager) Push(t Task) {
	m.undo = append(m.undo, t)
	if len(m.undo) > m.limit {
		m.undo = m.undo[len(m.undo)-m.limit:]
	}
	m.redo = nil
}

// CanUndo reports whether a task is available to undo.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether a task is available to redo.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// Undo reverts the most recent task.
func (m *Manager) Undo() bool {
	if len(m.undo) == 0 {
		return false
	}
	i := len(m.undo) - 1
	t := m.undo[i]
	m.undo = m.undo[:i]
	t.Undo()
	m.redo = append(m.redo, t)
	log.Printf("history: undo (%d left, %d redoable)", len(m.undo), len(m.redo))
	return true
}

// Redo replays the most recently undone task.
func (m *Manager) Redo() bool {
	if len(m.redo) == 0 {
		return false
	}
	i := len(m.redo) - 1
	t := m.redo[i]
	m.redo = m.redo[:i]
	t.Doit()
	m.undo = append(m.undo, t)
	log.Printf("history: redo (%d done, %d redoable)", len(m.undo), len(m.redo))
	return true
}

// Clear drops all history.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}
