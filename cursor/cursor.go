package cursor

import (
	"github.com/editkit/editkit/buffer"
)

// Cursor tracks the primary insertion point plus any secondary points added
// by multi-cursor commands. The primary cursor always exists; secondary
// cursors are optional and addressable by index.
//
// Secondary cursors are point-tracking only: they do not carry independent
// selection spans. Only the primary selection is directional. Synchronized
// multi-point editing is an extension point, not implemented here.
type Cursor struct {
	primary   Position
	secondary []Position
}

// New creates a cursor with the primary point at (row, col).
func New(row, col int) *Cursor {
	return &Cursor{primary: buffer.NewPosition(row, col)}
}

// Primary returns the primary cursor position.
func (c *Cursor) Primary() Position {
	return c.primary
}

// SetPrimary moves the primary cursor, clamping negative coordinates.
func (c *Cursor) SetPrimary(p Position) {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Col < 0 {
		p.Col = 0
	}
	c.primary = p
}

// Add appends a secondary cursor at (row, col).
func (c *Cursor) Add(row, col int) {
	c.secondary = append(c.secondary, buffer.NewPosition(row, col))
}

// Remove deletes the secondary cursor at the given index.
// An out-of-range index is a no-op, not a failure.
func (c *Cursor) Remove(index int) {
	if index < 0 || index >= len(c.secondary) {
		return
	}
	c.secondary = append(c.secondary[:index], c.secondary[index+1:]...)
}

// ClearSecondary removes all secondary cursors.
func (c *Cursor) ClearSecondary() {
	c.secondary = nil
}

// Secondary returns a copy of the secondary cursor positions.
func (c *Cursor) Secondary() []Position {
	if len(c.secondary) == 0 {
		return nil
	}
	out := make([]Position, len(c.secondary))
	copy(out, c.secondary)
	return out
}

// Count returns the total number of cursors, primary included.
func (c *Cursor) Count() int {
	return 1 + len(c.secondary)
}

// ClampTo clamps the primary and every secondary cursor to the given lines.
func (c *Cursor) ClampTo(lines []string) {
	c.primary = c.primary.ClampTo(lines)
	for i, p := range c.secondary {
		c.secondary[i] = p.ClampTo(lines)
	}
}

// Clone returns a deep copy of the cursor.
func (c *Cursor) Clone() *Cursor {
	clone := &Cursor{primary: c.primary}
	if len(c.secondary) > 0 {
		clone.secondary = make([]Position, len(c.secondary))
		copy(clone.secondary, c.secondary)
	}
	return clone
}

// Equal returns true if both cursors track the same positions.
func (c *Cursor) Equal(other *Cursor) bool {
	if other == nil || !c.primary.Equal(other.primary) {
		return false
	}
	if len(c.secondary) != len(other.secondary) {
		return false
	}
	for i, p := range c.secondary {
		if !p.Equal(other.secondary[i]) {
			return false
		}
	}
	return true
}
