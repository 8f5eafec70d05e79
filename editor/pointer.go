package editor

import (
	"time"

	"github.com/editkit/editkit/buffer"
	"github.com/editkit/editkit/cursor"
	"github.com/editkit/editkit/mouse"
)

// PositionAt maps the screen coordinate (x, y) to a buffer position using
// the metrics capability and the configured line height. Coordinates outside
// the text clamp to the nearest valid position.
func (e *Editor) PositionAt(x, y float64) buffer.Position {
	row := 0
	if y > 0 {
		row = int(y / e.opts.LineHeight)
	}
	if last := e.buf.LastRow(); row > last {
		row = last
	}
	return buffer.Position{Row: row, Col: e.metrics.ColumnAt(e.buf.Line(row), x)}
}

// HandleClick processes a pointer press at screen coordinate (x, y).
//
// A plain click clears the selection, places the cursor, and starts a
// selection gesture anchored there. A shift-click extends the selection
// (anchoring at the cursor when none is active) and enters the extending
// state. Double and triple activations select the word or line under the
// pointer.
func (e *Editor) HandleClick(x, y float64, shift bool) {
	e.handleClick(x, y, shift, time.Time{})
}

// HandleClickAt is HandleClick with an explicit timestamp for double and
// triple click detection. Hosts whose events carry timestamps should prefer
// it; a zero timestamp falls back to the wall clock.
func (e *Editor) HandleClickAt(x, y float64, shift bool, at time.Time) {
	e.handleClick(x, y, shift, at)
}

func (e *Editor) handleClick(x, y float64, shift bool, at time.Time) {
	pos := e.PositionAt(x, y)

	if shift {
		e.clicks.Reset()
		if e.hasSel {
			e.setSelection(e.sel.Extend(pos))
		} else {
			e.setSelection(cursor.NewSelectionRange(e.cur.Primary(), pos))
		}
		e.cur.SetPrimary(pos)
		e.gesture.BeginExtending()
		e.notify()
		return
	}

	switch e.clicks.RecordClick(x, y, at) {
	case mouse.ClickDouble:
		// Word and line activations end the gesture; a later drag starts
		// a fresh character selection rather than extending this one.
		e.gesture.Release()
		if !e.SelectWord(pos.Row, pos.Col) {
			e.placeCursor(pos)
		}
	case mouse.ClickTriple:
		e.gesture.Release()
		e.SelectLine(pos.Row)
	default:
		e.clearSelection()
		e.cur.SetPrimary(pos)
		e.gesture.BeginSelecting(pos)
		e.notify()
	}
}

// HandleDrag processes pointer motion while a button is held.
//
// While selecting, the selection spans anchor to pointer; dragging back onto
// the anchor clears it. While extending, only the selection end follows. A
// drag arriving while idle recovers by starting a selection gesture, which
// absorbs a missed press event.
func (e *Editor) HandleDrag(x, y float64) {
	pos := e.PositionAt(x, y)

	switch e.gesture.State() {
	case mouse.StateSelecting:
		e.setSelection(cursor.NewSelectionRange(e.gesture.Anchor(), pos))
	case mouse.StateExtending:
		if e.hasSel {
			e.setSelection(e.sel.Extend(pos))
		} else {
			e.setSelection(cursor.NewSelectionRange(e.cur.Primary(), pos))
		}
	default:
		e.gesture.BeginSelecting(pos)
	}

	e.cur.SetPrimary(pos)
	e.notify()
}

// HandleRelease ends the pointer gesture. The selection and cursor are left
// exactly as the last drag put them.
func (e *Editor) HandleRelease() {
	if e.gesture.IsIdle() {
		return
	}
	e.gesture.Release()
	e.notify()
}

// placeCursor clears the selection and sets the cursor. The gesture state is
// left untouched.
func (e *Editor) placeCursor(pos buffer.Position) {
	e.clearSelection()
	e.cur.SetPrimary(pos)
	e.notify()
}
