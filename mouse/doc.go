// Package mouse provides pointer interaction state for the editing core.
//
// # Gesture State Machine
//
// Gesture tracks the three pointer states:
//
//   - Idle: no gesture in progress
//   - Selecting: a drag is building a fresh selection from an anchor
//   - Extending: a shift-click or drag is moving an existing selection's end
//
// The machine owns only the state; the editor applies the selection and
// cursor effects of each transition and is the sole caller. Release always
// returns to Idle, and a drag arriving while Idle re-enters Selecting as a
// defensive recovery from a missed press event.
//
// # Click Detection
//
// ClickTracker turns a stream of timestamped clicks into single, double, or
// triple activations using a time threshold and a Manhattan-distance
// threshold. Counts wrap after a triple, so a fourth rapid click starts a
// new single.
//
// # Thread Safety
//
// Neither type locks; the embedding layer serializes all calls, as it does
// for the rest of the core.
package mouse
