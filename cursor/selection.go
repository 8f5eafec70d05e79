package cursor

import (
	"fmt"

	"github.com/editkit/editkit/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Selection represents a directional span of selected text.
// Start is where the selection was anchored; End is where it currently
// extends to (the cursor side). Start need not precede End in document
// order; use Normalized for the ordered pair.
// Selection is an immutable value type.
type Selection struct {
	Start Position // Where the selection was anchored
	End   Position // Where the selection currently extends to
}

// NewSelection creates a degenerate selection anchored at (row, col).
func NewSelection(row, col int) Selection {
	p := buffer.NewPosition(row, col)
	return Selection{Start: p, End: p}
}

// NewSelectionRange creates a selection spanning start to end.
func NewSelectionRange(start, end Position) Selection {
	return Selection{Start: start, End: end}
}

// Set returns a selection with all four coordinates replaced.
func (s Selection) Set(startRow, startCol, endRow, endCol int) Selection {
	return Selection{
		Start: buffer.NewPosition(startRow, startCol),
		End:   buffer.NewPosition(endRow, endCol),
	}
}

// IsActive returns true if the selection covers at least one character.
func (s Selection) IsActive() bool {
	return !s.Start.Equal(s.End)
}

// Normalized returns the start/end pair reordered into document order.
func (s Selection) Normalized() (Position, Position) {
	if s.Start.Compare(s.End) <= 0 {
		return s.Start, s.End
	}
	return s.End, s.Start
}

// IsForward returns true if the selection extends forward (End >= Start).
func (s Selection) IsForward() bool {
	return !s.End.Before(s.Start)
}

// Extend returns a selection with the same anchor and End moved to pos.
func (s Selection) Extend(pos Position) Selection {
	return Selection{Start: s.Start, End: pos}
}

// Collapse returns a degenerate selection at the End position.
func (s Selection) Collapse() Selection {
	return Selection{Start: s.End, End: s.End}
}

// ClampTo returns the selection with both ends clamped to valid coordinates
// for the given lines. With zero lines all coordinates force to (0:0).
func (s Selection) ClampTo(lines []string) Selection {
	return Selection{
		Start: s.Start.ClampTo(lines),
		End:   s.End.ClampTo(lines),
	}
}

// Contains returns true if pos lies inside the normalized span [start, end).
// An inactive selection contains nothing.
func (s Selection) Contains(pos Position) bool {
	start, end := s.Normalized()
	return pos.Compare(start) >= 0 && pos.Compare(end) < 0
}

// Equal returns true if both selections have the same anchor and end.
func (s Selection) Equal(other Selection) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if !s.IsActive() {
		return fmt.Sprintf("Selection(inactive at %s)", s.Start)
	}
	dir := "→"
	if !s.IsForward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%s%s%s)", s.Start, dir, s.End)
}
