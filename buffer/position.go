package buffer

import (
	"fmt"
	"unicode/utf8"
)

// Position represents a row and column location in the buffer.
// Both Row and Col are 0-indexed.
// Col counts Unicode scalar values (runes), never bytes.
type Position struct {
	Row int // 0-indexed line number
	Col int // 0-indexed character column within the line
}

// NewPosition creates a position, clamping negative coordinates to zero.
func NewPosition(row, col int) Position {
	if row < 0 {
		row = 0
	}
	if col < 0 {
		col = 0
	}
	return Position{Row: row, Col: col}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions are ordered lexicographically on (Row, Col).
func (p Position) Compare(other Position) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// Equal returns true if both positions are identical.
func (p Position) Equal(other Position) bool {
	return p.Row == other.Row && p.Col == other.Col
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Row == 0 && p.Col == 0
}

// ClampTo rewrites the position to valid coordinates for the given lines:
// Row becomes min(Row, lastRow) and Col becomes min(Col, charCount(Row)).
// A zero-line slice forces the result to (0:0). Never fails.
func (p Position) ClampTo(lines []string) Position {
	if len(lines) == 0 {
		return Position{}
	}
	row := p.Row
	if row < 0 {
		row = 0
	}
	if last := len(lines) - 1; row > last {
		row = last
	}
	col := p.Col
	if col < 0 {
		col = 0
	}
	if count := utf8.RuneCountInString(lines[row]); col > count {
		col = count
	}
	return Position{Row: row, Col: col}
}

// MinPosition returns the earlier of two positions in document order.
func MinPosition(a, b Position) Position {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPosition returns the later of two positions in document order.
func MaxPosition(a, b Position) Position {
	if a.After(b) {
		return a
	}
	return b
}
