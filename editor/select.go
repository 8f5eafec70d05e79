package editor

import (
	"unicode"

	"github.com/editkit/editkit/buffer"
	"github.com/editkit/editkit/cursor"
)

// Selection operations grow or shrink the selection while moving the cursor.
// A fresh selection anchors at the cursor's pre-move position; extending an
// existing one keeps its anchor. Shrinking back onto the anchor deactivates
// the selection rather than leaving a zero-width span.

// SelectLeft extends the selection one character left.
func (e *Editor) SelectLeft() bool {
	return e.extendTo(e.leftOf(e.cur.Primary()))
}

// SelectRight extends the selection one character right.
func (e *Editor) SelectRight() bool {
	return e.extendTo(e.rightOf(e.cur.Primary()))
}

// SelectUp extends the selection one row up.
func (e *Editor) SelectUp() bool {
	return e.extendTo(e.vertical(e.cur.Primary(), -1))
}

// SelectDown extends the selection one row down.
func (e *Editor) SelectDown() bool {
	return e.extendTo(e.vertical(e.cur.Primary(), 1))
}

// SelectWord selects the word around (row, col). Words are runs of letters,
// digits, and underscores; the scan walks backward while the preceding
// character is a word character and forward while the current one is, so a
// position just past a word still selects it. When no adjacent word
// character exists the selection is left untouched and false is returned.
func (e *Editor) SelectWord(row, col int) bool {
	p := e.buf.Clamp(buffer.NewPosition(row, col))
	runes := []rune(e.buf.Line(p.Row))

	start := p.Col
	for start > 0 && isWordRune(runes[start-1]) {
		start--
	}
	end := p.Col
	for end < len(runes) && isWordRune(runes[end]) {
		end++
	}
	if start == end {
		return false
	}

	e.setSelection(cursor.Selection{
		Start: buffer.Position{Row: p.Row, Col: start},
		End:   buffer.Position{Row: p.Row, Col: end},
	})
	e.cur.SetPrimary(buffer.Position{Row: p.Row, Col: end})
	e.notify()
	return true
}

// SelectLine selects the full line at row and places the cursor at its end.
// An empty line yields no selection, just cursor placement.
func (e *Editor) SelectLine(row int) bool {
	p := e.buf.Clamp(buffer.NewPosition(row, 0))
	end := buffer.Position{Row: p.Row, Col: e.buf.LineCharCount(p.Row)}

	e.setSelection(cursor.Selection{Start: p, End: end})
	e.cur.SetPrimary(end)
	e.notify()
	return e.hasSel
}

// SelectAll selects the entire buffer and places the cursor at its end.
func (e *Editor) SelectAll() bool {
	last := e.buf.LastRow()
	end := buffer.Position{Row: last, Col: e.buf.LineCharCount(last)}

	e.setSelection(cursor.Selection{Start: buffer.Position{}, End: end})
	e.cur.SetPrimary(end)
	e.notify()
	return e.hasSel
}

// extendTo moves the cursor to target while growing the selection. A fresh
// selection anchors at the pre-move cursor. Returns false when the move is
// blocked at a buffer edge.
func (e *Editor) extendTo(target buffer.Position) bool {
	prev := e.cur.Primary()
	if target.Equal(prev) {
		return false
	}

	if e.hasSel {
		e.setSelection(e.sel.Extend(target))
	} else {
		e.setSelection(cursor.NewSelectionRange(prev, target))
	}
	e.cur.SetPrimary(target)
	e.notify()
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
