package texture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorOver(t *testing.T) {
	// Opaque red over opaque blue: red wins completely.
	red := Opaque(1, 0, 0)
	blue := Opaque(0, 0, 1)
	got := red.Over(blue)
	assert.InDelta(t, 1.0, got.R, 1e-9)
	assert.InDelta(t, 0.0, got.B, 1e-9)
	assert.InDelta(t, 1.0, got.A, 1e-9)

	// Half-alpha red over opaque blue blends.
	halfRed := FromStraight(1, 0, 0, 0.5)
	got = halfRed.Over(blue)
	assert.InDelta(t, 0.5, got.R, 1e-9)
	assert.InDelta(t, 0.5, got.B, 1e-9)
	assert.InDelta(t, 1.0, got.A, 1e-9)
}

func TestColorLerp(t *testing.T) {
	a := Opaque(0, 0, 0)
	b := Opaque(1, 1, 1)
	mid := a.Lerp(b, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.5, mid.G, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)
	assert.InDelta(t, 1.0, mid.A, 1e-9)

	assert.Equal(t, a, a.Lerp(b, 0))
	assert.Equal(t, b, a.Lerp(b, 1))
}

func TestSamplerPad(t *testing.T) {
	assert.Equal(t, 0.0, SamplerPad.Apply(-0.5))
	assert.Equal(t, 1.0, SamplerPad.Apply(1.5))
	assert.InDelta(t, 0.3, SamplerPad.Apply(0.3), 1e-9)
}

func TestSamplerRepeat(t *testing.T) {
	assert.InDelta(t, 0.25, SamplerRepeat.Apply(0.25), 1e-9)
	assert.InDelta(t, 0.25, SamplerRepeat.Apply(1.25), 1e-9)
	assert.InDelta(t, 0.75, SamplerRepeat.Apply(-0.25), 1e-9)
}

func TestSamplerReflect(t *testing.T) {
	assert.InDelta(t, 0.0, SamplerReflect.Apply(0), 1e-9)
	assert.InDelta(t, 1.0, SamplerReflect.Apply(1), 1e-9)
	assert.InDelta(t, 0.5, SamplerReflect.Apply(1.5), 1e-9)
	assert.InDelta(t, 0.5, SamplerReflect.Apply(2.5), 1e-9)
	assert.InDelta(t, 0.5, SamplerReflect.Apply(-1.5), 1e-9)
}

func TestGradientAt(t *testing.T) {
	g := NewGradient([]Stop{
		{Offset: 0, Color: Opaque(0, 0, 0)},
		{Offset: 1, Color: Opaque(1, 1, 1)},
	})
	assert.Equal(t, Opaque(0, 0, 0), g.At(0))
	assert.Equal(t, Opaque(1, 1, 1), g.At(1))
	mid := g.At(0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)

	// Out-of-range values clamp to the end stops.
	assert.Equal(t, Opaque(0, 0, 0), g.At(-1))
	assert.Equal(t, Opaque(1, 1, 1), g.At(2))
}

func TestGradientAtUnsortedInput(t *testing.T) {
	// NewGradient must sort stops regardless of input order.
	g := NewGradient([]Stop{
		{Offset: 1, Color: Opaque(1, 1, 1)},
		{Offset: 0, Color: Opaque(0, 0, 0)},
		{Offset: 0.5, Color: Opaque(1, 0, 0)},
	})
	assert.Equal(t, Opaque(1, 0, 0), g.At(0.5))
}

func TestGradientSingleStop(t *testing.T) {
	g := NewGradient([]Stop{{Offset: 0.5, Color: Opaque(0.2, 0.4, 0.6)}})
	assert.Equal(t, Opaque(0.2, 0.4, 0.6), g.At(0))
	assert.Equal(t, Opaque(0.2, 0.4, 0.6), g.At(1))
}

func TestSolidEval(t *testing.T) {
	tex := Solid(Opaque(0.1, 0.2, 0.3))
	got := tex.Eval(Point{X: 100, Y: -50})
	assert.Equal(t, Opaque(0.1, 0.2, 0.3), got)
}

func TestLinearGradientEval(t *testing.T) {
	tex := LinearGradient(
		Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
		[]Stop{
			{Offset: 0, Color: Opaque(0, 0, 0)},
			{Offset: 1, Color: Opaque(1, 1, 1)},
		},
		SamplerPad,
	)
	assert.Equal(t, Opaque(0, 0, 0), tex.Eval(Point{X: 0, Y: 5}))
	assert.Equal(t, Opaque(1, 1, 1), tex.Eval(Point{X: 10, Y: -20}))
	mid := tex.Eval(Point{X: 5, Y: 0})
	assert.InDelta(t, 0.5, mid.R, 1e-9)

	// Points beyond the axis pad to the end stops.
	assert.Equal(t, Opaque(0, 0, 0), tex.Eval(Point{X: -5, Y: 0}))
	assert.Equal(t, Opaque(1, 1, 1), tex.Eval(Point{X: 15, Y: 0}))
}

func TestRadialGradientEval(t *testing.T) {
	tex := RadialGradient(
		Point{X: 0, Y: 0}, 10,
		[]Stop{
			{Offset: 0, Color: Opaque(1, 0, 0)},
			{Offset: 1, Color: Opaque(0, 0, 1)},
		},
		SamplerPad,
	)
	assert.Equal(t, Opaque(1, 0, 0), tex.Eval(Point{X: 0, Y: 0}))
	assert.Equal(t, Opaque(0, 0, 1), tex.Eval(Point{X: 10, Y: 0}))
	assert.Equal(t, Opaque(0, 0, 1), tex.Eval(Point{X: 0, Y: 10}))
}

func TestWithTransformEval(t *testing.T) {
	base := Solid(Opaque(0.5, 0.5, 0.5))
	// Translation shouldn't change a solid texture's output anywhere.
	tex := WithTransform(base, Matrix{1, 0, 0, 1, 100, 100})
	assert.Equal(t, Opaque(0.5, 0.5, 0.5), tex.Eval(Point{X: 0, Y: 0}))

	// A linear gradient shifted by WithTransform should read as if the
	// query point were shifted by the inverse transform.
	grad := LinearGradient(
		Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
		[]Stop{
			{Offset: 0, Color: Opaque(0, 0, 0)},
			{Offset: 1, Color: Opaque(1, 1, 1)},
		},
		SamplerPad,
	)
	shifted := WithTransform(grad, Matrix{1, 0, 0, 1, 10, 0})
	// Querying at x=10 in the transformed texture's output space should
	// equal querying the base gradient at x=0 (10 - 10 translation).
	assert.Equal(t, grad.Eval(Point{X: 0, Y: 0}), shifted.Eval(Point{X: 10, Y: 0}))
}

func TestWithTransformSingular(t *testing.T) {
	base := Solid(Opaque(1, 1, 1))
	tex := WithTransform(base, Matrix{0, 0, 0, 0, 0, 0})
	assert.Equal(t, Transparent, tex.Eval(Point{X: 0, Y: 0}))
}

func TestModulateEval(t *testing.T) {
	base := Solid(Opaque(1, 0, 0))
	mask := Solid(FromStraight(1, 1, 1, 0.25))
	tex := Modulate(base, mask)
	got := tex.Eval(Point{X: 0, Y: 0})
	assert.InDelta(t, 0.25, got.R, 1e-9)
	assert.InDelta(t, 0.25, got.A, 1e-9)
}

func TestWithSamplerOverridesSpread(t *testing.T) {
	grad := LinearGradient(
		Point{X: 0, Y: 0}, Point{X: 10, Y: 0},
		[]Stop{
			{Offset: 0, Color: Opaque(0, 0, 0)},
			{Offset: 1, Color: Opaque(1, 1, 1)},
		},
		SamplerPad,
	)
	repeated := WithSampler(grad, SamplerRepeat)
	// At x=15 (t=1.5), SamplerPad would clamp to white; SamplerRepeat wraps
	// back to t=0.5, gray.
	got := repeated.Eval(Point{X: 15, Y: 0})
	assert.InDelta(t, 0.5, got.R, 1e-9)
}

func TestRawTextureAt(t *testing.T) {
	raw := &Raw{
		X0: 2, Y0: 3, W: 2, H: 1,
		Pix: []Color{Opaque(1, 0, 0), Opaque(0, 1, 0)},
	}
	tex := RawTexture(raw)
	assert.Equal(t, Opaque(1, 0, 0), tex.Eval(Point{X: 2, Y: 3}))
	assert.Equal(t, Opaque(0, 1, 0), tex.Eval(Point{X: 3, Y: 3}))
	assert.Equal(t, Transparent, tex.Eval(Point{X: 0, Y: 0}))
}
