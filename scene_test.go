package raster

import (
	"testing"

	"github.com/inkraster/raster/texture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawOrdersOfSimpleFill(t *testing.T) {
	scene := NewDrawing()
	p := Rectangle(0, 0, 10, 10)
	scene.Fill(p, NonZero)

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	assert.Equal(t, OpFill, orders[0].Op)
	assert.Equal(t, NonZero, orders[0].Rule)
	assert.Nil(t, orders[0].Texture)
	assert.Empty(t, orders[0].Clips)
}

func TestDrawOrdersOfAppliesAmbientTransform(t *testing.T) {
	scene := NewDrawing()
	p := LinePath(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	scene.WithTransform(Translate(5, 5), func(d *Drawing) {
		d.Fill(p, NonZero)
	})

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	assert.Equal(t, Vec2{X: 5, Y: 5}, orders[0].Path.Coords[0])
	assert.Equal(t, Vec2{X: 6, Y: 5}, orders[0].Path.Coords[1])
}

func TestDrawOrdersOfComposesNestedTransforms(t *testing.T) {
	scene := NewDrawing()
	p := LinePath(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	scene.WithTransform(Translate(10, 0), func(d *Drawing) {
		d.WithTransform(Translate(0, 10), func(d2 *Drawing) {
			d2.Fill(p, NonZero)
		})
	})

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	assert.Equal(t, Vec2{X: 10, Y: 10}, orders[0].Path.Coords[0])
}

func TestDrawOrdersOfTextureScoping(t *testing.T) {
	scene := NewDrawing()
	red := texture.Solid(texture.Opaque(1, 0, 0))
	blue := texture.Solid(texture.Opaque(0, 0, 1))
	p := Rectangle(0, 0, 1, 1)

	scene.SetTexture(red)
	scene.Fill(p, NonZero)
	scene.WithTransform(Identity, func(d *Drawing) {
		d.SetTexture(blue)
		d.Fill(p, NonZero)
	})
	// Back in the parent scope, the texture set inside the child scope
	// must not have leaked out.
	scene.Fill(p, NonZero)

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 3)
	assert.Same(t, red, orders[0].Texture)
	assert.Same(t, blue, orders[1].Texture)
	assert.Same(t, red, orders[2].Texture)
}

func TestDrawOrdersOfClipStackAccumulates(t *testing.T) {
	scene := NewDrawing()
	outer := Rectangle(0, 0, 100, 100)
	inner := Rectangle(10, 10, 20, 20)
	p := Rectangle(0, 0, 1, 1)

	scene.WithClipping(outer, NonZero, func(d *Drawing) {
		d.WithClipping(inner, EvenOdd, func(d2 *Drawing) {
			d2.Fill(p, NonZero)
		})
	})

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Clips, 2)
	assert.Equal(t, NonZero, orders[0].Clips[0].Rule)
	assert.Equal(t, EvenOdd, orders[0].Clips[1].Rule)
}

func TestDrawOrdersOfClipDoesNotLeakToSiblings(t *testing.T) {
	scene := NewDrawing()
	clip := Rectangle(0, 0, 10, 10)
	p := Rectangle(0, 0, 1, 1)

	scene.WithClipping(clip, NonZero, func(d *Drawing) {
		d.Fill(p, NonZero)
	})
	scene.Fill(p, NonZero)

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 2)
	assert.Len(t, orders[0].Clips, 1)
	assert.Empty(t, orders[1].Clips)
}

func TestDrawOrdersOfStrokeScalesWidthByTransform(t *testing.T) {
	scene := NewDrawing()
	p := LinePath(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	style := StrokeStyle{Width: 2, Dash: []float64{1, 1}, DashPhase: 1}

	scene.WithTransform(Scale(3, 3), func(d *Drawing) {
		d.Stroke(p, style)
	})

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	assert.Equal(t, OpStroke, orders[0].Op)
	assert.InDelta(t, 6, orders[0].Stroke.Width, 1e-9)
	assert.InDelta(t, 3, orders[0].Stroke.Dash[0], 1e-9)
	assert.InDelta(t, 3, orders[0].Stroke.Dash[1], 1e-9)
	assert.InDelta(t, 3, orders[0].Stroke.DashPhase, 1e-9)
}

func TestDashedStrokeOverridesDashFields(t *testing.T) {
	scene := NewDrawing()
	p := LinePath(Vec2{X: 0, Y: 0}, Vec2{X: 1, Y: 0})
	base := StrokeStyle{Width: 1}
	scene.DashedStroke(p, base, []float64{4, 2}, 1)

	orders := DrawOrdersOf(scene)
	require.Len(t, orders, 1)
	assert.Equal(t, []float64{4, 2}, orders[0].Stroke.Dash)
	assert.Equal(t, 1.0, orders[0].Stroke.DashPhase)
}

func TestDrawingRecordingIsReplayable(t *testing.T) {
	scene := NewDrawing()
	scene.Fill(Rectangle(0, 0, 1, 1), NonZero)

	first := DrawOrdersOf(scene)
	second := DrawOrdersOf(scene)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}
