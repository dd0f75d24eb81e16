package testcases

import (
	"github.com/inkraster/raster"
	"github.com/inkraster/raster/texture"
)

var textureCases = []TestCase{
	// Linear gradient across a filled rectangle.
	{
		Name:   "linear_gradient_horizontal",
		Path:   rectangle(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.LinearGradient(
				texture.Point{X: 8, Y: 32}, texture.Point{X: 56, Y: 32},
				gradientStops("warm_cool"), gradientSampler("warm_cool"),
			),
		},
	},
	{
		Name:   "linear_gradient_diagonal",
		Path:   rectangle(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.LinearGradient(
				texture.Point{X: 8, Y: 8}, texture.Point{X: 56, Y: 56},
				gradientStops("sunset"), gradientSampler("sunset"),
			),
		},
	},

	// Radial gradient, concentric circles.
	{
		Name:   "radial_gradient_centered",
		Path:   circle(32, 32, 26),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.RadialGradient(
				texture.Point{X: 32, Y: 32}, 26,
				gradientStops("warm_cool"), gradientSampler("warm_cool"),
			),
		},
	},

	// SVG-style two-circle focal radial gradient, focus offset from center.
	{
		Name:   "radial_gradient_focus",
		Path:   circle(32, 32, 26),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.RadialGradientFocus(
				texture.Point{X: 22, Y: 22}, 4,
				texture.Point{X: 32, Y: 32}, 26,
				gradientStops("sunset"), gradientSampler("sunset"),
			),
		},
	},

	// Repeating gradient (stripes), exercises SamplerRepeat spread.
	{
		Name:   "linear_gradient_repeat",
		Path:   rectangle(4, 4, 60, 60),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.LinearGradient(
				texture.Point{X: 4, Y: 32}, texture.Point{X: 12, Y: 32},
				gradientStops("stripes"), gradientSampler("stripes"),
			),
		},
	},

	// Reflected gradient, exercises SamplerReflect spread.
	{
		Name:   "linear_gradient_reflect",
		Path:   rectangle(4, 4, 60, 60),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.LinearGradient(
				texture.Point{X: 4, Y: 32}, texture.Point{X: 20, Y: 32},
				gradientStops("mirrored"), gradientSampler("mirrored"),
			),
		},
	},

	// Gradient with a transparent stop, verifies straight-to-premultiplied
	// conversion composites correctly against the background.
	{
		Name:   "linear_gradient_alpha_fade",
		Path:   rectangle(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.LinearGradient(
				texture.Point{X: 8, Y: 32}, texture.Point{X: 56, Y: 32},
				gradientStops("transparent_fade"), gradientSampler("transparent_fade"),
			),
		},
	},

	// Solid texture through the WithTexture wrapper, as a baseline.
	{
		Name:   "solid_texture",
		Path:   rectangle(16, 16, 48, 48),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op:  Fill{Rule: NonZero},
			Tex: texture.Solid(texture.Opaque(0.2, 0.6, 0.9)),
		},
	},

	// A gradient rotated and translated by a WithTransform wrapper around the
	// texture itself, independent of the path's own CTM.
	{
		Name:   "linear_gradient_texture_transform",
		Path:   rectangle(8, 8, 56, 56),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op: Fill{Rule: NonZero},
			Tex: texture.WithTransform(
				texture.LinearGradient(
					texture.Point{X: 0, Y: 0}, texture.Point{X: 32, Y: 0},
					gradientStops("warm_cool"), gradientSampler("warm_cool"),
				),
				texture.Matrix(raster.RotateDeg(20).Translate(32, 32)),
			),
		},
	},

	// A bilinearly sampled checkerboard image, exercises SampledImage.
	{
		Name:   "sampled_image_checkerboard",
		Path:   rectangle(4, 4, 60, 60),
		Width:  64,
		Height: 64,
		Op: WithTexture{
			Op:  Fill{Rule: NonZero},
			Tex: texture.SampledImage(checkerboardImage(8, 8), texture.SamplerRepeat),
		},
	},
}

// checkerboardImage builds a tiny synthetic black/white checkerboard used
// to exercise the bilinear image sampler without depending on an external
// asset file.
func checkerboardImage(w, h int) *texture.Image {
	img := &texture.Image{W: w, H: h, Pix: make([]texture.Color, w*h)}
	black := texture.Opaque(0, 0, 0)
	white := texture.Opaque(1, 1, 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.Pix[y*w+x] = white
			} else {
				img.Pix[y*w+x] = black
			}
		}
	}
	return img
}
