package raster

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPathWalkerStraightLine(t *testing.T) {
	p := NewPath().MoveTo(Vec2{X: 0, Y: 0}).LineTo(Vec2{X: 10, Y: 0})
	w := NewPathWalker(p, 0.25)

	assert.InDelta(t, 10, w.Length(), 1e-9)

	pos, tangent, ok := w.At(0)
	assert.True(t, ok)
	assert.Equal(t, Vec2{X: 0, Y: 0}, pos)
	assert.InDelta(t, 1, tangent.X, 1e-9)
	assert.InDelta(t, 0, tangent.Y, 1e-9)

	pos, _, ok = w.At(5)
	assert.True(t, ok)
	assert.InDelta(t, 5, pos.X, 1e-9)
	assert.InDelta(t, 0, pos.Y, 1e-9)

	// Clamped past the end.
	pos, _, ok = w.At(100)
	assert.True(t, ok)
	assert.InDelta(t, 10, pos.X, 1e-9)

	// Clamped before the start.
	pos, _, ok = w.At(-5)
	assert.True(t, ok)
	assert.InDelta(t, 0, pos.X, 1e-9)
}

func TestPathWalkerMultiSegment(t *testing.T) {
	p := NewPath().
		MoveTo(Vec2{X: 0, Y: 0}).
		LineTo(Vec2{X: 10, Y: 0}).
		LineTo(Vec2{X: 10, Y: 10})
	w := NewPathWalker(p, 0.25)

	assert.InDelta(t, 20, w.Length(), 1e-9)

	pos, tangent, ok := w.At(15)
	assert.True(t, ok)
	assert.InDelta(t, 10, pos.X, 1e-9)
	assert.InDelta(t, 5, pos.Y, 1e-9)
	assert.InDelta(t, 0, tangent.X, 1e-9)
	assert.InDelta(t, 1, tangent.Y, 1e-9)
}

func TestPathWalkerSinglePoint(t *testing.T) {
	p := NewPath().MoveTo(Vec2{X: 3, Y: 4})
	w := NewPathWalker(p, 0.25)
	assert.Equal(t, 0.0, w.Length())

	pos, _, ok := w.At(0)
	assert.True(t, ok)
	assert.Equal(t, Vec2{X: 3, Y: 4}, pos)
}

func TestPathWalkerEmptyPath(t *testing.T) {
	w := NewPathWalker(NewPath(), 0.25)
	_, _, ok := w.At(0)
	assert.False(t, ok)
}

func TestPathWalkerStopsAtSecondSubpath(t *testing.T) {
	p := NewPath().
		MoveTo(Vec2{X: 0, Y: 0}).LineTo(Vec2{X: 10, Y: 0}).
		MoveTo(Vec2{X: 100, Y: 100}).LineTo(Vec2{X: 110, Y: 100})
	w := NewPathWalker(p, 0.25)
	assert.InDelta(t, 10, w.Length(), 1e-9)
}

func TestPathWalkerClosedSubpath(t *testing.T) {
	p := NewPath().
		MoveTo(Vec2{X: 0, Y: 0}).
		LineTo(Vec2{X: 10, Y: 0}).
		LineTo(Vec2{X: 10, Y: 10}).
		Close()
	w := NewPathWalker(p, 0.25)
	// Closing adds a segment back to the start: 10 + 10 + sqrt(200).
	want := 10 + 10 + math.Hypot(10, 10)
	assert.InDelta(t, want, w.Length(), 1e-6)
}

func TestPathWalkerFlattensCurve(t *testing.T) {
	// A quadratic bulging toward +Y from (0,0) to (10,0) should have an arc
	// length longer than the straight-line distance.
	p := NewPath().MoveTo(Vec2{X: 0, Y: 0}).QuadTo(Vec2{X: 5, Y: 10}, Vec2{X: 10, Y: 0})
	w := NewPathWalker(p, 0.1)
	assert.Greater(t, w.Length(), 10.0)
}
