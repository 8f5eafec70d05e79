// Package buffer provides the line-oriented text store at the heart of the
// editing core, together with the Position value type used throughout.
//
// The buffer package provides:
//
//   - An ordered sequence of lines, always at least one (possibly empty)
//   - Character-indexed mutation primitives (insert, delete, split, join)
//   - Clamp-safe accessors that return defaults instead of failing
//   - Position, a (row, column) value type ordered lexicographically
//
// Coordinate Model:
//
// Every column in this package counts Unicode scalar values (runes). Byte
// offsets never appear in the public surface, so a multi-byte character can
// never be split by an edit.
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("Hello\nWorld")
//
//	// Insert text; newlines split lines
//	buf.InsertTextAt(0, 5, ", there")
//
//	// Delete a normalized range
//	buf.DeleteRange(buffer.NewPosition(0, 0), buffer.NewPosition(0, 5))
//
// Failure Policy:
//
// Out-of-range coordinates are clamped by mutators and defaulted by
// accessors. The only condition treated as a programming defect is the line
// count reaching zero, which the store itself prevents.
//
// Thread Safety:
//
// Buffer is not thread-safe. The editing core is single-threaded by
// contract; the embedding layer must serialize all calls.
package buffer
