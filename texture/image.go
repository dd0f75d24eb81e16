package texture

import (
	"image"
	"image/color"
	"math"
)

// Image is a resampleable source for SampledImage textures, holding
// premultiplied pixel data decoded from a standard library image.Image so
// any decoder (png, jpeg, ...) can feed it.
type Image struct {
	W, H int
	Pix  []Color // premultiplied, row-major, length W*H
}

// NewImageFromStdlib converts img (any image.Image, e.g. from image/png)
// into premultiplied floating-point samples.
func NewImageFromStdlib(img image.Image) *Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	out := &Image{W: w, H: h, Pix: make([]Color, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			const maxVal = 65535.0
			out.Pix[y*w+x] = Color{
				R: float64(r) / maxVal,
				G: float64(g) / maxVal,
				B: float64(bl) / maxVal,
				A: float64(a) / maxVal,
			}
		}
	}
	return out
}

// at returns the premultiplied color at integer pixel (x, y), clamped to
// the image bounds (callers apply the Sampler's spread before clamping).
func (img *Image) at(x, y int) Color {
	if x < 0 {
		x = 0
	}
	if x >= img.W {
		x = img.W - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= img.H {
		y = img.H - 1
	}
	return img.Pix[y*img.W+x]
}

// SampleBilinear samples the image at point p (in pixel-center
// coordinates, i.e. pixel (0,0)'s center is at (0.5, 0.5)), applying
// sampler's spread behavior to wrap/reflect/clamp coordinates that fall
// outside [0,W)x[0,H) before interpolating between the four nearest texels.
func (img *Image) SampleBilinear(p Point, sampler Sampler) Color {
	if img.W == 0 || img.H == 0 {
		return Transparent
	}

	u := sampler.Apply(p.X / float64(img.W))
	v := sampler.Apply(p.Y / float64(img.H))

	fx := u*float64(img.W) - 0.5
	fy := v*float64(img.H) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	tx := fx - float64(x0)
	ty := fy - float64(y0)

	c00 := img.at(x0, y0)
	c10 := img.at(x0+1, y0)
	c01 := img.at(x0, y0+1)
	c11 := img.at(x0+1, y0+1)

	top := c00.Lerp(c10, tx)
	bot := c01.Lerp(c11, tx)
	return top.Lerp(bot, ty)
}

// ToStdColor converts a premultiplied Color to a standard library
// color.RGBA64, useful when writing final pixel buffers out with
// image/png or other encoders.
func ToStdColor(c Color) color.RGBA64 {
	clamp := func(v float64) uint16 {
		if v < 0 {
			v = 0
		}
		if v > 1 {
			v = 1
		}
		return uint16(v * 65535)
	}
	return color.RGBA64{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}
