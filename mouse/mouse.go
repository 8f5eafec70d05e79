package mouse

import (
	"github.com/editkit/editkit/buffer"
)

// State represents the pointer gesture state.
type State uint8

const (
	// StateIdle indicates no gesture is in progress.
	StateIdle State = iota
	// StateSelecting indicates a selection is being built from an anchor.
	StateSelecting
	// StateExtending indicates an existing selection is being extended.
	StateExtending
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateSelecting:
		return "selecting"
	case StateExtending:
		return "extending"
	default:
		return "idle"
	}
}

// Gesture tracks the pointer interaction state machine:
//
//	Idle → Selecting{anchor}   on plain click
//	Idle/Selecting → Extending on shift-click with an existing selection
//	any → Idle                 on release
//
// Gesture only records state; the editor applies the selection and cursor
// effects of each transition.
type Gesture struct {
	state  State
	anchor buffer.Position
}

// State returns the current gesture state.
func (g *Gesture) State() State {
	return g.state
}

// Anchor returns the anchor position of the current selection gesture.
// Meaningful only while the state is StateSelecting.
func (g *Gesture) Anchor() buffer.Position {
	return g.anchor
}

// BeginSelecting enters StateSelecting with the given anchor.
func (g *Gesture) BeginSelecting(anchor buffer.Position) {
	g.state = StateSelecting
	g.anchor = anchor
}

// BeginExtending enters StateExtending. The anchor is left untouched; the
// existing selection provides its own.
func (g *Gesture) BeginExtending() {
	g.state = StateExtending
}

// Release returns the machine to StateIdle unconditionally.
func (g *Gesture) Release() {
	g.state = StateIdle
	g.anchor = buffer.Position{}
}

// IsIdle returns true when no gesture is in progress.
func (g *Gesture) IsIdle() bool {
	return g.state == StateIdle
}
