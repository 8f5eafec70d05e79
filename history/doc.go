// Package history provides snapshot-based undo/redo for the editing core.
//
// Each Snapshot is a full copy of buffer-relevant state: lines, cursor
// (primary and secondaries), and the active selection. The History type
// keeps two stacks with standard linear-history semantics: any new snapshot
// pushed after an undo clears the redo stack; there is no branching.
//
// Empty-stack undo and redo are no-op conditions reported through a boolean,
// never an error.
//
//	h := history.New(100)
//	h.Push(history.NewSnapshot(buf, cur, sel, hasSel))
//	if snap, ok := h.Undo(currentSnapshot); ok {
//	    restore(snap)
//	}
package history
