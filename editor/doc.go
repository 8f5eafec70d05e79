// Package editor ties the editing core together. Editor owns the text
// buffer, the cursor, the optional selection, the pointer gesture machine,
// and the undo history, and exposes the operation surface a host widget
// drives: movement, selection, editing primitives, undo/redo, multi-cursor
// bookkeeping, and pointer handling.
//
// # Coordinates
//
// All operations are character-indexed; columns count Unicode scalar
// values. Out-of-range coordinates clamp rather than fail, and operations
// that can be no-ops (movement at a buffer edge, deleting without a
// selection, undo on an empty stack) report via bool returns.
//
// # History
//
// Every mutating operation pushes exactly one snapshot before touching the
// buffer, so one Undo reverses one call. Pure no-ops push nothing.
//
// # Redraw
//
// A callback registered with WithRedraw fires synchronously after each
// state-changing operation, at most once per call, once the editor is
// consistent. The callback may read the editor but must not mutate it.
//
// # Concurrency
//
// Editor takes no locks. The embedding layer serializes all calls, the same
// contract every type in this module follows.
package editor
