package editor

import "github.com/editkit/editkit/buffer"

// Movement operations clear the selection and move the primary cursor. Each
// returns true when the cursor actually moved; a move blocked at a buffer
// edge returns false (though it still clears an active selection).

// MoveLeft moves the cursor one character left, wrapping to the end of the
// previous line at column 0.
func (e *Editor) MoveLeft() bool {
	return e.moveTo(e.leftOf(e.cur.Primary()))
}

// MoveRight moves the cursor one character right, wrapping to the start of
// the next line at the end of a line.
func (e *Editor) MoveRight() bool {
	return e.moveTo(e.rightOf(e.cur.Primary()))
}

// MoveUp moves the cursor one row up, clamping the column to the target
// line's length.
func (e *Editor) MoveUp() bool {
	return e.moveTo(e.vertical(e.cur.Primary(), -1))
}

// MoveDown moves the cursor one row down, clamping the column.
func (e *Editor) MoveDown() bool {
	return e.moveTo(e.vertical(e.cur.Primary(), 1))
}

// MoveLineStart moves the cursor to column 0 of the current line.
func (e *Editor) MoveLineStart() bool {
	p := e.cur.Primary()
	return e.moveTo(buffer.Position{Row: p.Row, Col: 0})
}

// MoveLineEnd moves the cursor past the last character of the current line.
func (e *Editor) MoveLineEnd() bool {
	p := e.cur.Primary()
	return e.moveTo(buffer.Position{Row: p.Row, Col: e.buf.LineCharCount(p.Row)})
}

// MovePageUp moves the cursor up by the configured page size, clamping at
// the first line.
func (e *Editor) MovePageUp() bool {
	return e.moveTo(e.vertical(e.cur.Primary(), -e.opts.PageSize))
}

// MovePageDown moves the cursor down by the configured page size, clamping
// at the last line.
func (e *Editor) MovePageDown() bool {
	return e.moveTo(e.vertical(e.cur.Primary(), e.opts.PageSize))
}

// MoveTo places the cursor at (row, col), clamped to the buffer.
func (e *Editor) MoveTo(row, col int) bool {
	return e.moveTo(e.buf.Clamp(buffer.NewPosition(row, col)))
}

// moveTo clears the selection and sets the primary cursor to target.
// Notifies when either changed.
func (e *Editor) moveTo(target buffer.Position) bool {
	hadSel := e.hasSel
	e.clearSelection()

	moved := !target.Equal(e.cur.Primary())
	if moved {
		e.cur.SetPrimary(target)
	}
	if moved || hadSel {
		e.notify()
	}
	return moved
}

// leftOf returns the position one character before p, wrapping to the end of
// the previous line. At (0,0) it returns p unchanged.
func (e *Editor) leftOf(p buffer.Position) buffer.Position {
	if p.Col > 0 {
		return buffer.Position{Row: p.Row, Col: p.Col - 1}
	}
	if p.Row > 0 {
		return buffer.Position{Row: p.Row - 1, Col: e.buf.LineCharCount(p.Row - 1)}
	}
	return p
}

// rightOf returns the position one character after p, wrapping to the start
// of the next line. At the end of the buffer it returns p unchanged.
func (e *Editor) rightOf(p buffer.Position) buffer.Position {
	if p.Col < e.buf.LineCharCount(p.Row) {
		return buffer.Position{Row: p.Row, Col: p.Col + 1}
	}
	if p.Row < e.buf.LastRow() {
		return buffer.Position{Row: p.Row + 1, Col: 0}
	}
	return p
}

// vertical returns p moved by delta rows with the column clamped to the
// target line. Rows clamp at the buffer edges.
func (e *Editor) vertical(p buffer.Position, delta int) buffer.Position {
	row := p.Row + delta
	if row < 0 {
		row = 0
	}
	if last := e.buf.LastRow(); row > last {
		row = last
	}
	col := p.Col
	if count := e.buf.LineCharCount(row); col > count {
		col = count
	}
	return buffer.Position{Row: row, Col: col}
}
