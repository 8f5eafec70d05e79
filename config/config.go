package config

import (
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Options holds the tunable behavior of the editing core. The zero value is
// not usable; start from Default and override fields, or load a saved JSON
// document with LoadJSON.
type Options struct {
	// TabWidth is the number of cells a tab advances to, for metrics.
	TabWidth int

	// IndentString is inserted by Indent and stripped by Unindent.
	IndentString string

	// MaxUndoDepth caps the undo stack; the oldest snapshots drop first.
	MaxUndoDepth int

	// PageSize is the number of rows MovePageUp and MovePageDown travel.
	PageSize int

	// DoubleClickTime is the maximum interval between clicks of a
	// double or triple activation.
	DoubleClickTime time.Duration

	// DoubleClickDistance is the maximum Manhattan distance in screen
	// units between clicks of the same activation.
	DoubleClickDistance float64

	// CellWidth and LineHeight describe the monospace cell geometry used
	// to translate pointer coordinates into buffer positions.
	CellWidth  float64
	LineHeight float64
}

// Default returns the stock option set.
func Default() Options {
	return Options{
		TabWidth:            4,
		IndentString:        "    ",
		MaxUndoDepth:        100,
		PageSize:            10,
		DoubleClickTime:     400 * time.Millisecond,
		DoubleClickDistance: 4,
		CellWidth:           8,
		LineHeight:          16,
	}
}

// Sanitize replaces out-of-range fields with their defaults and returns the
// result. Loading never fails; a hostile or truncated config degrades to
// stock behavior.
func (o Options) Sanitize() Options {
	def := Default()
	if o.TabWidth <= 0 {
		o.TabWidth = def.TabWidth
	}
	if o.IndentString == "" {
		o.IndentString = def.IndentString
	}
	if o.MaxUndoDepth <= 0 {
		o.MaxUndoDepth = def.MaxUndoDepth
	}
	if o.PageSize <= 0 {
		o.PageSize = def.PageSize
	}
	if o.DoubleClickTime <= 0 {
		o.DoubleClickTime = def.DoubleClickTime
	}
	if o.DoubleClickDistance <= 0 {
		o.DoubleClickDistance = def.DoubleClickDistance
	}
	if o.CellWidth <= 0 {
		o.CellWidth = def.CellWidth
	}
	if o.LineHeight <= 0 {
		o.LineHeight = def.LineHeight
	}
	return o
}

// LoadJSON reads options from a JSON document. Missing keys keep their
// defaults and invalid values are sanitized; malformed JSON yields the
// defaults outright.
func LoadJSON(data []byte) Options {
	o := Default()
	if !gjson.ValidBytes(data) {
		return o
	}
	doc := gjson.ParseBytes(data)

	if v := doc.Get("tab_width"); v.Exists() {
		o.TabWidth = int(v.Int())
	}
	if v := doc.Get("indent_string"); v.Exists() {
		o.IndentString = v.String()
	}
	if v := doc.Get("max_undo_depth"); v.Exists() {
		o.MaxUndoDepth = int(v.Int())
	}
	if v := doc.Get("page_size"); v.Exists() {
		o.PageSize = int(v.Int())
	}
	if v := doc.Get("double_click_ms"); v.Exists() {
		o.DoubleClickTime = time.Duration(v.Int()) * time.Millisecond
	}
	if v := doc.Get("double_click_distance"); v.Exists() {
		o.DoubleClickDistance = v.Float()
	}
	if v := doc.Get("cell_width"); v.Exists() {
		o.CellWidth = v.Float()
	}
	if v := doc.Get("line_height"); v.Exists() {
		o.LineHeight = v.Float()
	}
	return o.Sanitize()
}

// SaveJSON serializes the options to the same JSON shape LoadJSON reads.
func (o Options) SaveJSON() ([]byte, error) {
	doc := "{}"
	var err error

	set := func(path string, value any) {
		if err != nil {
			return
		}
		doc, err = sjson.Set(doc, path, value)
	}

	set("tab_width", o.TabWidth)
	set("indent_string", o.IndentString)
	set("max_undo_depth", o.MaxUndoDepth)
	set("page_size", o.PageSize)
	set("double_click_ms", o.DoubleClickTime.Milliseconds())
	set("double_click_distance", o.DoubleClickDistance)
	set("cell_width", o.CellWidth)
	set("line_height", o.LineHeight)
	if err != nil {
		return nil, err
	}
	return []byte(doc), nil
}
