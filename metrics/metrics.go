package metrics

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Metrics maps between a horizontal offset and a character column within a
// line. The core defines this contract; the rendering layer supplies the
// implementation backed by its text-shaping engine.
//
// Columns count Unicode scalar values. Implementations must never resolve an
// offset to the interior of a multi-scalar grapheme cluster; a position
// inside a cluster snaps to its nearest boundary.
type Metrics interface {
	// ColumnAt returns the character column nearest to the horizontal
	// offset x within the given line.
	ColumnAt(line string, x float64) int

	// OffsetAt returns the horizontal offset of the given character column
	// within the line.
	OffsetAt(line string, col int) float64
}

// Monospace implements Metrics for fixed-advance rendering. Single-width
// cells advance by CellWidth; East-Asian wide runes and emoji advance by
// two cells; tabs advance to the next tab stop.
type Monospace struct {
	cellWidth float64
	tabWidth  int
}

// NewMonospace creates monospace metrics. Non-positive arguments fall back
// to a cell width of 1 and a tab width of 4.
func NewMonospace(cellWidth float64, tabWidth int) *Monospace {
	if cellWidth <= 0 {
		cellWidth = 1
	}
	if tabWidth <= 0 {
		tabWidth = 4
	}
	return &Monospace{cellWidth: cellWidth, tabWidth: tabWidth}
}

// ColumnAt returns the character column nearest to x. Clicking past the end
// of the line yields the column after the last character; clicking in the
// right half of a cluster advances past it.
func (m *Monospace) ColumnAt(line string, x float64) int {
	if x <= 0 {
		return 0
	}

	col := 0
	cells := 0
	state := -1
	for len(line) > 0 {
		var cluster string
		cluster, line, _, state = uniseg.StepString(line, state)

		w := m.clusterCells(cluster, cells)
		left := float64(cells) * m.cellWidth
		width := float64(w) * m.cellWidth
		// The exact midpoint resolves to the nearer-left column.
		if x <= left+width/2 {
			return col
		}

		col += utf8.RuneCountInString(cluster)
		cells += w
	}
	return col
}

// OffsetAt returns the horizontal offset of the given column. Columns past
// the end of the line resolve to the line's full advance; a column inside a
// grapheme cluster resolves to the cluster's start.
func (m *Monospace) OffsetAt(line string, col int) float64 {
	if col <= 0 {
		return 0
	}

	at := 0
	cells := 0
	state := -1
	for len(line) > 0 {
		var cluster string
		cluster, line, _, state = uniseg.StepString(line, state)

		n := utf8.RuneCountInString(cluster)
		if at+n > col {
			// col lands inside this cluster; snap to its start.
			break
		}
		cells += m.clusterCells(cluster, cells)
		at += n
		if at == col {
			break
		}
	}
	return float64(cells) * m.cellWidth
}

// clusterCells returns the display width of a cluster in cells, given the
// current cell position for tab-stop expansion.
func (m *Monospace) clusterCells(cluster string, cells int) int {
	if cluster == "\t" {
		return m.tabWidth - cells%m.tabWidth
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		// Zero-width clusters still need a landing spot for the pointer.
		w = 1
	}
	return w
}
