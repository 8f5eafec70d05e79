package history

import (
	"github.com/editkit/editkit/buffer"
	"github.com/editkit/editkit/cursor"
)

// DefaultMaxDepth is the undo depth used when no limit is configured.
const DefaultMaxDepth = 100

// Snapshot is a full copy of buffer-relevant state: all lines, the cursor
// (primary plus secondaries), and the selection if one is active. Whole-state
// snapshots trade memory for correctness simplicity; for line-oriented
// documents of moderate size that is the right trade.
type Snapshot struct {
	Lines        []string
	Cursor       *cursor.Cursor
	Selection    cursor.Selection
	HasSelection bool
}

// NewSnapshot captures the given state into an independent snapshot.
func NewSnapshot(buf *buffer.Buffer, cur *cursor.Cursor, sel cursor.Selection, hasSel bool) Snapshot {
	return Snapshot{
		Lines:        buf.Lines(),
		Cursor:       cur.Clone(),
		Selection:    sel,
		HasSelection: hasSel,
	}
}

// Equal returns true if both snapshots capture identical state.
func (s Snapshot) Equal(other Snapshot) bool {
	if len(s.Lines) != len(other.Lines) {
		return false
	}
	for i, line := range s.Lines {
		if line != other.Lines[i] {
			return false
		}
	}
	if !s.Cursor.Equal(other.Cursor) {
		return false
	}
	if s.HasSelection != other.HasSelection {
		return false
	}
	return !s.HasSelection || s.Selection.Equal(other.Selection)
}

// History manages the undo and redo stacks for a buffer aggregate.
// Linear history only: pushing a new snapshot clears the redo stack.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// New creates a history manager. A non-positive maxDepth selects
// DefaultMaxDepth.
func New(maxDepth int) *History {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &History{maxDepth: maxDepth}
}

// Push records a snapshot on the undo stack and clears the redo stack.
// When the stack exceeds the depth limit, the oldest entries are dropped.
func (h *History) Push(snap Snapshot) {
	h.undoStack = append(h.undoStack, snap)
	h.redoStack = nil

	if len(h.undoStack) > h.maxDepth {
		excess := len(h.undoStack) - h.maxDepth
		h.undoStack = h.undoStack[excess:]
	}
}

// Undo pops the most recent undo snapshot, pushing current onto the redo
// stack. Returns false (and a zero snapshot) when there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	snap := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return snap, true
}

// Redo pops the most recent redo snapshot, pushing current onto the undo
// stack. Returns false when there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	snap := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return snap, true
}

// CanUndo returns true if an undo snapshot is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if a redo snapshot is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoDepth returns the number of undo snapshots available.
func (h *History) UndoDepth() int {
	return len(h.undoStack)
}

// RedoDepth returns the number of redo snapshots available.
func (h *History) RedoDepth() int {
	return len(h.redoStack)
}

// MaxDepth returns the configured depth limit.
func (h *History) MaxDepth() int {
	return h.maxDepth
}

// Clear drops all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}
