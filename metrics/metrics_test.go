package metrics

import (
	"testing"
)

func TestMonospaceOffsetAtASCII(t *testing.T) {
	m := NewMonospace(8, 4)

	tests := []struct {
		col  int
		want float64
	}{
		{0, 0},
		{1, 8},
		{5, 40},
		{99, 40}, // past end resolves to full advance
	}

	for _, tt := range tests {
		if got := m.OffsetAt("hello", tt.col); got != tt.want {
			t.Errorf("OffsetAt(hello, %d) = %v, want %v", tt.col, got, tt.want)
		}
	}
}

func TestMonospaceColumnAtASCII(t *testing.T) {
	m := NewMonospace(8, 4)

	tests := []struct {
		x    float64
		want int
	}{
		{-5, 0},
		{0, 0},
		{3, 0},  // left half of first cell
		{4, 0},  // exact midpoint resolves left
		{5, 1},  // right half of first cell
		{12, 1}, // midpoint of second cell
		{999, 5},
	}

	for _, tt := range tests {
		if got := m.ColumnAt("hello", tt.x); got != tt.want {
			t.Errorf("ColumnAt(hello, %v) = %d, want %d", tt.x, got, tt.want)
		}
	}
}

func TestMonospaceRoundTrip(t *testing.T) {
	m := NewMonospace(7, 4)
	const line = "some text here"

	for col := 0; col <= len(line); col++ {
		x := m.OffsetAt(line, col)
		if got := m.ColumnAt(line, x); got != col {
			t.Errorf("round trip col %d via offset %v = %d", col, x, got)
		}
	}
}

func TestMonospaceWideRunes(t *testing.T) {
	m := NewMonospace(8, 4)

	// The emoji occupies two cells, so the column after it starts at 3 cells.
	if got := m.OffsetAt("a🌍b", 2); got != 24 {
		t.Errorf("OffsetAt(a🌍b, 2) = %v, want 24", got)
	}
	// A click in the right half of the wide cell advances past it.
	if got := m.ColumnAt("a🌍b", 21); got != 2 {
		t.Errorf("ColumnAt(a🌍b, 21) = %d, want 2", got)
	}
	// A click in the left half lands before it.
	if got := m.ColumnAt("a🌍b", 14); got != 1 {
		t.Errorf("ColumnAt(a🌍b, 14) = %d, want 1", got)
	}
}

func TestMonospaceClusterNeverSplit(t *testing.T) {
	m := NewMonospace(8, 4)

	// Flag emoji: two scalars, one grapheme cluster.
	const flag = "\U0001F1EF\U0001F1F5"
	line := "x" + flag + "y"

	// A column inside the cluster resolves to the cluster's start offset.
	inside := m.OffsetAt(line, 2)
	start := m.OffsetAt(line, 1)
	if inside != start {
		t.Errorf("mid-cluster offset = %v, want cluster start %v", inside, start)
	}

	// ColumnAt never lands inside the cluster: crossing its midpoint jumps
	// from column 1 to column 3.
	for x := 0.0; x < 100; x++ {
		if got := m.ColumnAt(line, x); got == 2 {
			t.Fatalf("ColumnAt(%v) resolved inside a grapheme cluster", x)
		}
	}
}

func TestMonospaceTabStops(t *testing.T) {
	m := NewMonospace(10, 4)

	// Tab from column 1 advances to the next stop at cell 4.
	if got := m.OffsetAt("a\tb", 2); got != 40 {
		t.Errorf("OffsetAt(a\\tb, 2) = %v, want 40", got)
	}
	// Tab at a stop advances a full tab width.
	if got := m.OffsetAt("\tx", 1); got != 40 {
		t.Errorf("OffsetAt(\\tx, 1) = %v, want 40", got)
	}
}

func TestMonospaceEmptyLine(t *testing.T) {
	m := NewMonospace(8, 4)

	if got := m.ColumnAt("", 50); got != 0 {
		t.Errorf("ColumnAt on empty line = %d, want 0", got)
	}
	if got := m.OffsetAt("", 5); got != 0 {
		t.Errorf("OffsetAt on empty line = %v, want 0", got)
	}
}

func TestNewMonospaceDefaults(t *testing.T) {
	m := NewMonospace(0, 0)

	if got := m.OffsetAt("ab", 1); got != 1 {
		t.Errorf("default cell width should be 1, OffsetAt = %v", got)
	}
	if got := m.OffsetAt("\ta", 1); got != 4 {
		t.Errorf("default tab width should be 4, OffsetAt = %v", got)
	}
}
