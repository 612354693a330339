// Package core provides fundamental types and utilities for the game platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Span is an interval on the one-dimensional ground strip.
type Span struct {
	Start float64
	Width float64
}

// End returns the right edge of the span.
func (s Span) End() float64 {
	return s.Start + s.Width
}

// Mid returns the center of the span.
func (s Span) Mid() float64 {
	return s.Start + s.Width/2
}

// ContainsOpen reports whether x lies strictly inside the span.
// Edges do not count: a stick tip exactly on a platform edge misses.
func (s Span) ContainsOpen(x float64) bool {
	return s.Start < x && x < s.End()
}

// ContainsClosed reports whether x lies inside the span or on one of its edges.
func (s Span) ContainsClosed(x float64) bool {
	return s.Start <= x && x <= s.End()
}

// Centered returns a span of the given width centered on the midpoint of s.
func (s Span) Centered(width float64) Span {
	return Span{Start: s.Mid() - width/2, Width: width}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
