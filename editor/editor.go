package editor

import (
	"github.com/editkit/editkit/buffer"
	"github.com/editkit/editkit/config"
	"github.com/editkit/editkit/cursor"
	"github.com/editkit/editkit/history"
	"github.com/editkit/editkit/metrics"
	"github.com/editkit/editkit/mouse"
)

// Editor is the buffer aggregate: it owns the text store, the cursor, the
// optional selection, the pointer state machine, and the undo history, and
// coordinates every operation across them.
//
// Editor is not safe for concurrent use. The embedding layer serializes all
// calls, which matches how interactive hosts drive an editing core from a
// single event loop.
type Editor struct {
	buf    *buffer.Buffer
	cur    *cursor.Cursor
	sel    cursor.Selection
	hasSel bool

	gesture mouse.Gesture
	clicks  *mouse.ClickTracker
	hist    *history.History

	opts    config.Options
	metrics metrics.Metrics

	redraw func()
}

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithOptions replaces the stock option set.
func WithOptions(opts config.Options) Option {
	return func(e *Editor) {
		e.opts = opts.Sanitize()
	}
}

// WithMetrics supplies the text-metrics implementation used to translate
// pointer coordinates into buffer positions.
func WithMetrics(m metrics.Metrics) Option {
	return func(e *Editor) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithRedraw registers a callback invoked after every state-changing
// operation. It fires synchronously, at most once per call, and only after
// the editor's state is consistent, so the callback may freely read the
// editor. It must not mutate the editor re-entrantly.
func WithRedraw(fn func()) Option {
	return func(e *Editor) {
		e.redraw = fn
	}
}

// New creates an editor with the given initial text.
func New(text string, options ...Option) *Editor {
	e := &Editor{
		buf:  buffer.NewBufferFromString(text),
		cur:  cursor.New(0, 0),
		opts: config.Default(),
	}
	for _, opt := range options {
		opt(e)
	}
	if e.metrics == nil {
		e.metrics = metrics.NewMonospace(e.opts.CellWidth, e.opts.TabWidth)
	}
	e.clicks = mouse.NewClickTracker(e.opts.DoubleClickTime, e.opts.DoubleClickDistance)
	e.hist = history.New(e.opts.MaxUndoDepth)
	return e
}

// Text returns the full buffer content.
func (e *Editor) Text() string {
	return e.buf.Text()
}

// SetText replaces the buffer content, clears the selection and history, and
// moves the cursor to the origin.
func (e *Editor) SetText(text string) {
	e.buf.SetText(text)
	e.cur = cursor.New(0, 0)
	e.clearSelection()
	e.hist.Clear()
	e.notify()
}

// Lines returns a copy of the buffer's lines.
func (e *Editor) Lines() []string {
	return e.buf.Lines()
}

// Line returns the text of the given row, or "" when out of range.
func (e *Editor) Line(row int) string {
	return e.buf.Line(row)
}

// LineCount returns the number of lines. Always at least 1.
func (e *Editor) LineCount() int {
	return e.buf.LineCount()
}

// CursorPosition returns the primary cursor position.
func (e *Editor) CursorPosition() buffer.Position {
	return e.cur.Primary()
}

// MouseState returns the current pointer gesture state.
func (e *Editor) MouseState() mouse.State {
	return e.gesture.State()
}

// Options returns the editor's active option set.
func (e *Editor) Options() config.Options {
	return e.opts
}

// Selection returns the active selection, or false when none is active.
func (e *Editor) Selection() (cursor.Selection, bool) {
	if !e.hasSel {
		return cursor.Selection{}, false
	}
	return e.sel, true
}

// SelectedText returns the text covered by the active selection. The result
// is identical whichever direction the selection was made in.
func (e *Editor) SelectedText() (string, bool) {
	if !e.hasSel {
		return "", false
	}
	start, end := e.sel.Normalized()
	return e.buf.TextRange(start, end), true
}

// ClearSelection deactivates the selection. The cursor stays put.
func (e *Editor) ClearSelection() {
	if !e.hasSel {
		return
	}
	e.clearSelection()
	e.notify()
}

// AddCursor appends a secondary cursor at (row, col), clamped to the buffer.
// Secondary cursors are bookkeeping only; editing operations act through the
// primary cursor.
func (e *Editor) AddCursor(row, col int) {
	p := e.buf.Clamp(buffer.NewPosition(row, col))
	e.cur.Add(p.Row, p.Col)
	e.notify()
}

// RemoveCursor removes the secondary cursor at the given index.
// Out of range is a no-op.
func (e *Editor) RemoveCursor(index int) {
	before := e.cur.Count()
	e.cur.Remove(index)
	if e.cur.Count() != before {
		e.notify()
	}
}

// ClearCursors removes all secondary cursors.
func (e *Editor) ClearCursors() {
	if e.cur.Count() == 1 {
		return
	}
	e.cur.ClearSecondary()
	e.notify()
}

// Cursors returns the secondary cursor positions.
func (e *Editor) Cursors() []buffer.Position {
	return e.cur.Secondary()
}

// Undo restores the most recent snapshot. Returns false when the undo stack
// is empty.
func (e *Editor) Undo() bool {
	snap, ok := e.hist.Undo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(snap)
	e.notify()
	return true
}

// Redo reverses the most recent undo. Returns false when the redo stack is
// empty.
func (e *Editor) Redo() bool {
	snap, ok := e.hist.Redo(e.snapshot())
	if !ok {
		return false
	}
	e.restore(snap)
	e.notify()
	return true
}

// CanUndo returns true if an undo snapshot is available.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo returns true if a redo snapshot is available.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// checkpoint pushes the current state onto the undo stack. Every mutating
// operation calls this exactly once, before touching the buffer.
func (e *Editor) checkpoint() {
	e.hist.Push(e.snapshot())
}

func (e *Editor) snapshot() history.Snapshot {
	return history.NewSnapshot(e.buf, e.cur, e.sel, e.hasSel)
}

func (e *Editor) restore(snap history.Snapshot) {
	e.buf.SetLines(snap.Lines)
	e.cur = snap.Cursor.Clone()
	e.sel = snap.Selection
	e.hasSel = snap.HasSelection
	e.clampAll()
}

// clampAll re-clamps the cursor and selection to the current buffer shape.
func (e *Editor) clampAll() {
	lines := e.buf.Lines()
	e.cur.ClampTo(lines)
	if e.hasSel {
		e.sel = e.sel.ClampTo(lines)
		if !e.sel.IsActive() {
			e.clearSelection()
		}
	}
}

func (e *Editor) clearSelection() {
	e.sel = cursor.Selection{}
	e.hasSel = false
}

func (e *Editor) setSelection(s cursor.Selection) {
	if !s.IsActive() {
		e.clearSelection()
		return
	}
	e.sel = s
	e.hasSel = true
}

// notify fires the redraw callback once, after state is consistent.
func (e *Editor) notify() {
	if e.redraw != nil {
		e.redraw()
	}
}
