package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBufferCompositeSpanFullCoverage(t *testing.T) {
	buf := NewBuffer[RGBA8](4, 2)
	red := Opaque(1, 0, 0)
	buf.CompositeSpan(0, 1, []float32{1, 1}, func(x, y int) Color { return red })

	assert.Equal(t, RGBA8{}, buf.At(0, 0))
	assert.Equal(t, RGBA8{R: 255, A: 255}, buf.At(1, 0))
	assert.Equal(t, RGBA8{R: 255, A: 255}, buf.At(2, 0))
	assert.Equal(t, RGBA8{}, buf.At(3, 0))
}

func TestBufferCompositeSpanPartialCoverage(t *testing.T) {
	buf := NewBuffer[RGBA8](2, 1)
	white := Opaque(1, 1, 1)
	buf.CompositeSpan(0, 0, []float32{0.5}, func(x, y int) Color { return white })

	got := buf.At(0, 0)
	assert.InDelta(t, 127, int(got.A), 1)
	assert.InDelta(t, 127, int(got.R), 1)
}

func TestBufferCompositeSpanClipsOutOfBounds(t *testing.T) {
	buf := NewBuffer[RGBA8](2, 2)
	// A span starting before the buffer and extending past it should only
	// touch in-bounds pixels, not panic.
	buf.CompositeSpan(0, -1, []float32{1, 1, 1, 1}, func(x, y int) Color { return Opaque(1, 1, 1) })
	assert.Equal(t, RGBA8{R: 255, G: 255, B: 255, A: 255}, buf.At(0, 0))
	assert.Equal(t, RGBA8{R: 255, G: 255, B: 255, A: 255}, buf.At(1, 0))
}

func TestBufferCompositeSpanOutOfRowIsNoop(t *testing.T) {
	buf := NewBuffer[RGBA8](2, 2)
	buf.CompositeSpan(5, 0, []float32{1}, func(x, y int) Color { return Opaque(1, 0, 0) })
	assert.Equal(t, RGBA8{}, buf.At(0, 0))
}

func TestBufferFillAndAt(t *testing.T) {
	buf := NewBuffer[Gray8](3, 3)
	buf.Fill(Gray8{Y: 200})
	assert.Equal(t, Gray8{Y: 200}, buf.At(1, 1))
	// Out of bounds returns the zero value.
	assert.Equal(t, Gray8{}, buf.At(-1, 0))
	assert.Equal(t, Gray8{}, buf.At(3, 3))
}

func TestRGBA8OverAccumulates(t *testing.T) {
	var p RGBA8
	p = p.Over(FromStraight(1, 0, 0, 0.5)).(RGBA8)
	p = p.Over(FromStraight(0, 1, 0, 0.5)).(RGBA8)
	// Second layer should be visible but not fully replace the first.
	assert.Greater(t, p.G, uint8(0))
	assert.Greater(t, p.A, uint8(127))
}

func TestGray8ModulateIntersectsMasks(t *testing.T) {
	full := Gray8{Y: 255}
	half := full.Modulate(0.5).(Gray8)
	assert.InDelta(t, 127, int(half.Y), 1)
	quarter := half.Modulate(0.5).(Gray8)
	assert.InDelta(t, 63, int(quarter.Y), 2)
}
