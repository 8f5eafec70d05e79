// Package cursor provides the selection and multi-cursor model for the
// editing core.
//
// Selection Model:
//
// Selections are directional spans between a Start (anchor) and an End (the
// cursor side). Start need not precede End; Normalized returns the pair in
// document order. A selection is "active" only when Start and End differ —
// a zero-width selection is treated as no selection at all, and the editor
// discards it rather than letting it linger.
//
// Multi-Cursor Support:
//
// Cursor holds the single authoritative primary point plus an ordered list
// of secondary points. Secondary cursors are bookkeeping only: they are
// clamped alongside the primary after every mutation but do not own
// independent selection spans. Synchronized multi-point editing is left as
// a future extension.
//
// Thread Safety:
//
// Selection is an immutable value type. Cursor is mutable and, like the
// rest of the core, relies on the embedding layer to serialize access.
package cursor
