// Package metrics defines the text-metrics capability the editing core
// consumes from the rendering layer: mapping between a horizontal offset
// and a character column within one line of text.
//
// The core never measures glyphs itself. When translating pointer events
// into buffer positions it asks a Metrics implementation for the column
// under the pointer, and the rendering layer answers with whatever shaping
// engine it uses. Monospace is a reference implementation suitable for
// terminal cells and fixed-advance fonts, and is what the bundled demo and
// the tests use.
//
// All columns are Unicode scalar counts. Grapheme clusters (emoji with
// modifiers, combining sequences) are never split: an offset inside a
// cluster snaps to a cluster boundary.
package metrics
