package mouse

import "time"

// ClickType represents the activation kind of a click.
type ClickType uint8

const (
	// ClickSingle positions the cursor.
	ClickSingle ClickType = 1
	// ClickDouble selects the word under the pointer.
	ClickDouble ClickType = 2
	// ClickTriple selects the whole line.
	ClickTriple ClickType = 3
)

// String returns a string representation of the click type.
func (c ClickType) String() string {
	switch c {
	case ClickSingle:
		return "single"
	case ClickDouble:
		return "double"
	case ClickTriple:
		return "triple"
	default:
		return "unknown"
	}
}

// ClickTracker detects double and triple activations from a stream of
// clicks using a time threshold and a Manhattan-distance threshold in
// screen coordinates. The count wraps back to single after a triple.
type ClickTracker struct {
	maxInterval time.Duration
	maxDistance float64

	lastX, lastY float64
	lastTime     time.Time
	lastCount    int
}

// NewClickTracker creates a click tracker with the given thresholds.
func NewClickTracker(maxInterval time.Duration, maxDistance float64) *ClickTracker {
	return &ClickTracker{
		maxInterval: maxInterval,
		maxDistance: maxDistance,
	}
}

// RecordClick records a click at screen position (x, y) and returns the
// resulting click type. A zero timestamp falls back to time.Now().
func (t *ClickTracker) RecordClick(x, y float64, timestamp time.Time) ClickType {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if t.isPartOfSequence(x, y, timestamp) {
		t.lastCount++
		if t.lastCount > 3 {
			t.lastCount = 1
		}
	} else {
		t.lastCount = 1
	}

	t.lastX, t.lastY = x, y
	t.lastTime = timestamp

	return ClickType(t.lastCount)
}

// isPartOfSequence reports whether a click continues the current sequence.
func (t *ClickTracker) isPartOfSequence(x, y float64, timestamp time.Time) bool {
	if t.lastCount == 0 || t.lastTime.IsZero() {
		return false
	}

	// Negative elapsed time means clock skew; treat as a new sequence.
	elapsed := timestamp.Sub(t.lastTime)
	if elapsed < 0 || elapsed > t.maxInterval {
		return false
	}

	dx := x - t.lastX
	if dx < 0 {
		dx = -dx
	}
	dy := y - t.lastY
	if dy < 0 {
		dy = -dy
	}
	return dx+dy <= t.maxDistance
}

// Reset clears the click tracking state.
func (t *ClickTracker) Reset() {
	t.lastCount = 0
	t.lastTime = time.Time{}
	t.lastX, t.lastY = 0, 0
}
