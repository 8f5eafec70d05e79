package buffer

import (
	"strings"
	"unicode/utf8"
)

// Buffer owns an ordered sequence of lines. Every exposed operation is
// character-indexed; no operation slices on a byte boundary that could split
// a multi-byte scalar value.
//
// Invariant: the buffer is never empty. It always holds at least one
// (possibly empty) line, so row arithmetic can assume a valid last row.
//
// Out-of-range coordinates never panic: accessors return safe defaults and
// mutators clamp. Interactive callers routinely race input against layout,
// so a stray coordinate must degrade, not crash.
type Buffer struct {
	lines []string
}

// NewBuffer creates a buffer containing a single empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: []string{""}}
}

// NewBufferFromString creates a buffer by splitting s on newlines.
// CRLF endings are normalized to LF before splitting.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.SetText(s)
	return b
}

// NewBufferFromLines creates a buffer from a copy of the given lines.
// An empty slice yields a buffer with one empty line.
func NewBufferFromLines(lines []string) *Buffer {
	b := NewBuffer()
	b.SetLines(lines)
	return b
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LastRow returns the index of the last line.
func (b *Buffer) LastRow() int {
	return len(b.lines) - 1
}

// Line returns the text of the given row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return b.lines[row]
}

// Lines returns a copy of all lines.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineCharCount returns the number of characters in the given row,
// or 0 when row is out of range.
func (b *Buffer) LineCharCount(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return utf8.RuneCountInString(b.lines[row])
}

// CharAt returns the character at (row, col). The second return value is
// false when the coordinates do not address a character.
func (b *Buffer) CharAt(row, col int) (rune, bool) {
	if row < 0 || row >= len(b.lines) || col < 0 {
		return 0, false
	}
	runes := []rune(b.lines[row])
	if col >= len(runes) {
		return 0, false
	}
	return runes[col], true
}

// Text returns the full buffer content with lines joined by newlines.
func (b *Buffer) Text() string {
	return strings.Join(b.lines, "\n")
}

// SetText replaces the buffer content by splitting s on newlines.
func (b *Buffer) SetText(s string) {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	b.lines = strings.Split(s, "\n")
	if len(b.lines) == 0 {
		b.lines = []string{""}
	}
}

// SetLines replaces the buffer content with a copy of the given lines.
// An empty slice becomes a single empty line.
func (b *Buffer) SetLines(lines []string) {
	if len(lines) == 0 {
		b.lines = []string{""}
		return
	}
	b.lines = make([]string, len(lines))
	copy(b.lines, lines)
}

// Clamp returns the position clamped to valid buffer coordinates.
func (b *Buffer) Clamp(p Position) Position {
	return p.ClampTo(b.lines)
}

// InsertCharAt inserts a single character at (row, col).
// Coordinates are clamped; a newline character splits the line.
func (b *Buffer) InsertCharAt(row, col int, ch rune) Position {
	return b.InsertTextAt(row, col, string(ch))
}

// InsertTextAt inserts text at (row, col) and returns the position just past
// the inserted text. Each newline in text ends the current line and starts a
// new one, re-flowing the remainder of the original line onto the final
// inserted line.
func (b *Buffer) InsertTextAt(row, col int, text string) Position {
	at := b.Clamp(NewPosition(row, col))

	if !strings.Contains(text, "\n") {
		line := []rune(b.lines[at.Row])
		b.lines[at.Row] = string(line[:at.Col]) + text + string(line[at.Col:])
		return Position{Row: at.Row, Col: at.Col + utf8.RuneCountInString(text)}
	}

	parts := strings.Split(text, "\n")
	line := []rune(b.lines[at.Row])
	before := string(line[:at.Col])
	after := string(line[at.Col:])

	b.lines[at.Row] = before + parts[0]
	rest := make([]string, 0, len(parts)-1)
	for i := 1; i < len(parts); i++ {
		if i == len(parts)-1 {
			rest = append(rest, parts[i]+after)
		} else {
			rest = append(rest, parts[i])
		}
	}
	b.lines = append(b.lines[:at.Row+1], append(rest, b.lines[at.Row+1:]...)...)

	endRow := at.Row + len(parts) - 1
	endCol := utf8.RuneCountInString(parts[len(parts)-1])
	return Position{Row: endRow, Col: endCol}
}

// DeleteRange removes the text between start and end. The caller is expected
// to pass the normalized (document-ordered) pair; the pair is reordered and
// clamped defensively. Returns the position where the deletion collapsed to,
// which is the clamped start.
func (b *Buffer) DeleteRange(start, end Position) Position {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if end.Before(start) {
		start, end = end, start
	}

	if start.Row == end.Row {
		line := []rune(b.lines[start.Row])
		b.lines[start.Row] = string(line[:start.Col]) + string(line[end.Col:])
		return start
	}

	first := []rune(b.lines[start.Row])
	last := []rune(b.lines[end.Row])
	b.lines[start.Row] = string(first[:start.Col]) + string(last[end.Col:])
	b.lines = append(b.lines[:start.Row+1], b.lines[end.Row+1:]...)
	return start
}

// TextRange returns the text between start and end with rows joined by
// newlines. The pair is reordered and clamped the same way DeleteRange is.
func (b *Buffer) TextRange(start, end Position) string {
	start = b.Clamp(start)
	end = b.Clamp(end)
	if end.Before(start) {
		start, end = end, start
	}

	if start.Row == end.Row {
		line := []rune(b.lines[start.Row])
		return string(line[start.Col:end.Col])
	}

	var sb strings.Builder
	first := []rune(b.lines[start.Row])
	sb.WriteString(string(first[start.Col:]))
	sb.WriteByte('\n')
	for row := start.Row + 1; row < end.Row; row++ {
		sb.WriteString(b.lines[row])
		sb.WriteByte('\n')
	}
	last := []rune(b.lines[end.Row])
	sb.WriteString(string(last[:end.Col]))
	return sb.String()
}

// SplitLine splits the line at (row, col) into two lines and returns the
// position at the start of the new line.
func (b *Buffer) SplitLine(row, col int) Position {
	at := b.Clamp(NewPosition(row, col))
	line := []rune(b.lines[at.Row])
	after := string(line[at.Col:])
	b.lines[at.Row] = string(line[:at.Col])
	b.lines = append(b.lines[:at.Row+1], append([]string{after}, b.lines[at.Row+1:]...)...)
	return Position{Row: at.Row + 1, Col: 0}
}

// JoinLines appends line row+1 onto line row and removes it. Returns false
// when there is no following line to join.
func (b *Buffer) JoinLines(row int) bool {
	if row < 0 || row+1 >= len(b.lines) {
		return false
	}
	b.lines[row] += b.lines[row+1]
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
	return true
}

// Equal returns true if both buffers hold identical lines.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || len(b.lines) != len(other.lines) {
		return false
	}
	for i, line := range b.lines {
		if line != other.lines[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	return NewBufferFromLines(b.lines)
}
