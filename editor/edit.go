package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/editkit/editkit/buffer"
)

// Editing operations mutate the buffer. Each pushes exactly one undo
// snapshot before mutating; pure no-ops push nothing.

// InsertText inserts s at the cursor, first deleting an active selection so
// typing replaces selected text. Newlines in s split lines.
func (e *Editor) InsertText(s string) {
	if s == "" && !e.hasSel {
		return
	}
	e.checkpoint()
	if e.hasSel {
		e.removeSelection()
	}
	p := e.cur.Primary()
	end := e.buf.InsertTextAt(p.Row, p.Col, s)
	e.cur.SetPrimary(end)
	e.clampAll()
	e.notify()
}

// Paste inserts s at the cursor. It behaves exactly like InsertText; hosts
// route clipboard content through it.
func (e *Editor) Paste(s string) {
	e.InsertText(s)
}

// InsertNewline splits the current line at the cursor, moving the cursor to
// the start of the new line. An active selection is deleted first.
func (e *Editor) InsertNewline() {
	e.checkpoint()
	if e.hasSel {
		e.removeSelection()
	}
	p := e.cur.Primary()
	e.cur.SetPrimary(e.buf.SplitLine(p.Row, p.Col))
	e.clampAll()
	e.notify()
}

// Backspace deletes the character before the cursor, joining with the
// previous line at column 0. With an active selection it deletes the
// selection instead. Returns false at the start of the buffer.
func (e *Editor) Backspace() bool {
	if e.hasSel {
		return e.DeleteSelection()
	}
	p := e.cur.Primary()
	if p.Row == 0 && p.Col == 0 {
		return false
	}

	e.checkpoint()
	if p.Col > 0 {
		at := e.buf.DeleteRange(
			buffer.Position{Row: p.Row, Col: p.Col - 1}, p)
		e.cur.SetPrimary(at)
	} else {
		e.cur.SetPrimary(buffer.Position{
			Row: p.Row - 1,
			Col: e.buf.LineCharCount(p.Row - 1),
		})
		e.buf.JoinLines(p.Row - 1)
	}
	e.clampAll()
	e.notify()
	return true
}

// Delete removes the character under the cursor, joining with the next line
// at the end of a line. With an active selection it deletes the selection
// instead. Returns false at the end of the buffer.
func (e *Editor) Delete() bool {
	if e.hasSel {
		return e.DeleteSelection()
	}
	p := e.cur.Primary()
	atLineEnd := p.Col >= e.buf.LineCharCount(p.Row)
	if atLineEnd && p.Row == e.buf.LastRow() {
		return false
	}

	e.checkpoint()
	if atLineEnd {
		e.buf.JoinLines(p.Row)
	} else {
		e.buf.DeleteRange(p, buffer.Position{Row: p.Row, Col: p.Col + 1})
	}
	e.clampAll()
	e.notify()
	return true
}

// DeleteSelection removes the selected text and collapses the cursor to the
// selection's start. Returns false when no selection is active.
func (e *Editor) DeleteSelection() bool {
	if !e.hasSel {
		return false
	}
	e.checkpoint()
	e.removeSelection()
	e.clampAll()
	e.notify()
	return true
}

// DeleteLine removes the cursor's line. Deleting the only line empties it
// instead, preserving the one-line invariant. Returns false when the buffer
// is already a single empty line.
func (e *Editor) DeleteLine() bool {
	p := e.cur.Primary()
	if e.buf.LineCount() == 1 {
		if e.buf.Line(0) == "" {
			return false
		}
		e.checkpoint()
		e.buf.SetLines(nil)
	} else {
		e.checkpoint()
		lines := e.buf.Lines()
		e.buf.SetLines(append(lines[:p.Row], lines[p.Row+1:]...))
	}
	e.clearSelection()
	e.clampAll()
	e.notify()
	return true
}

// DuplicateLine inserts a copy of the cursor's line below it and moves the
// cursor onto the copy, keeping its column.
func (e *Editor) DuplicateLine() {
	e.checkpoint()
	p := e.cur.Primary()
	line := e.buf.Line(p.Row)
	e.buf.InsertTextAt(p.Row, e.buf.LineCharCount(p.Row), "\n"+line)
	e.cur.SetPrimary(buffer.Position{Row: p.Row + 1, Col: p.Col})
	e.clearSelection()
	e.clampAll()
	e.notify()
}

// Indent prepends the configured indent string to every line spanned by the
// selection, or to the cursor's line. Cursor and selection columns shift
// with the inserted text.
func (e *Editor) Indent() {
	e.checkpoint()
	first, last := e.spannedRows()
	width := utf8.RuneCountInString(e.opts.IndentString)

	for row := first; row <= last; row++ {
		e.buf.InsertTextAt(row, 0, e.opts.IndentString)
	}

	p := e.cur.Primary()
	e.cur.SetPrimary(buffer.Position{Row: p.Row, Col: p.Col + width})
	if e.hasSel {
		e.sel = e.sel.Set(
			e.sel.Start.Row, e.sel.Start.Col+width,
			e.sel.End.Row, e.sel.End.Col+width)
	}
	e.clampAll()
	e.notify()
}

// Unindent strips one level of indentation from every line spanned by the
// selection, or from the cursor's line: the configured indent string, a
// single tab, or up to that many leading spaces. Returns false when no
// spanned line carries indentation.
func (e *Editor) Unindent() bool {
	first, last := e.spannedRows()
	removed := make(map[int]int)
	for row := first; row <= last; row++ {
		if n := e.outdentWidth(e.buf.Line(row)); n > 0 {
			removed[row] = n
		}
	}
	if len(removed) == 0 {
		return false
	}

	e.checkpoint()
	for row, n := range removed {
		e.buf.DeleteRange(
			buffer.Position{Row: row, Col: 0},
			buffer.Position{Row: row, Col: n})
	}

	p := e.cur.Primary()
	e.cur.SetPrimary(buffer.NewPosition(p.Row, p.Col-removed[p.Row]))
	if e.hasSel {
		e.sel = e.sel.Set(
			e.sel.Start.Row, e.sel.Start.Col-removed[e.sel.Start.Row],
			e.sel.End.Row, e.sel.End.Col-removed[e.sel.End.Row])
	}
	e.clampAll()
	e.notify()
	return true
}

// removeSelection excises the selected range and collapses the cursor to
// its start. Callers handle checkpointing and notification.
func (e *Editor) removeSelection() {
	start, end := e.sel.Normalized()
	at := e.buf.DeleteRange(start, end)
	e.clearSelection()
	e.cur.SetPrimary(at)
}

// spannedRows returns the inclusive row range covered by the selection, or
// the cursor's row when no selection is active.
func (e *Editor) spannedRows() (int, int) {
	if !e.hasSel {
		row := e.cur.Primary().Row
		return row, row
	}
	start, end := e.sel.Normalized()
	return start.Row, end.Row
}

// outdentWidth returns the number of leading characters one Unindent level
// removes from line, or 0 when the line starts unindented.
func (e *Editor) outdentWidth(line string) int {
	if strings.HasPrefix(line, e.opts.IndentString) {
		return utf8.RuneCountInString(e.opts.IndentString)
	}
	if strings.HasPrefix(line, "\t") {
		return 1
	}
	n := 0
	limit := utf8.RuneCountInString(e.opts.IndentString)
	for _, r := range line {
		if r != ' ' || n >= limit {
			break
		}
		n++
	}
	return n
}
