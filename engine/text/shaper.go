package text

// Shaper creates runs from strings. Shaping itself is not part of inline
// layout; the line breaker needs a shaper only to synthesize runs of its own,
// e.g. for an ellipsis replacing overflowing text.
type Shaper interface {
	Shape(s string, metrics FontMetrics, level uint8) *Run
}
