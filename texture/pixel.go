package texture

// Pixel is the small capability interface the compositor blends against,
// letting the same source-over blending loop drive either a full-color
// canvas (RGBA8) or a single-channel clip mask (Gray8) without the
// compositor knowing which it is writing to.
type Pixel interface {
	// Zero returns the pixel's zero (fully transparent) value.
	Zero() Pixel
	// Full returns the pixel's fully-opaque-white value.
	Full() Pixel
	// Over composites src (premultiplied) over the pixel using the
	// Porter-Duff source-over operator and returns the result.
	Over(src Color) Pixel
	// Modulate scales the pixel's coverage/alpha by factor.
	Modulate(factor float64) Pixel
	// Color returns the pixel's value as a premultiplied Color.
	Color() Color
}

// RGBA8 is an 8-bit-per-channel premultiplied color pixel.
type RGBA8 struct {
	R, G, B, A uint8
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func (p RGBA8) Zero() Pixel { return RGBA8{} }
func (p RGBA8) Full() Pixel { return RGBA8{255, 255, 255, 255} }

func (p RGBA8) Over(src Color) Pixel {
	inv := 1 - src.A
	return RGBA8{
		R: clamp8(src.R*255 + float64(p.R)*inv),
		G: clamp8(src.G*255 + float64(p.G)*inv),
		B: clamp8(src.B*255 + float64(p.B)*inv),
		A: clamp8(src.A*255 + float64(p.A)*inv),
	}
}

func (p RGBA8) Modulate(factor float64) Pixel {
	return RGBA8{
		R: clamp8(float64(p.R) * factor),
		G: clamp8(float64(p.G) * factor),
		B: clamp8(float64(p.B) * factor),
		A: clamp8(float64(p.A) * factor),
	}
}

func (p RGBA8) Color() Color {
	const s = 1 / 255.0
	return Color{R: float64(p.R) * s, G: float64(p.G) * s, B: float64(p.B) * s, A: float64(p.A) * s}
}

// Gray8 is an 8-bit single-channel pixel used for clip and soft masks,
// where the stored value is itself the (premultiplied) coverage.
type Gray8 struct {
	Y uint8
}

func (p Gray8) Zero() Pixel { return Gray8{} }
func (p Gray8) Full() Pixel { return Gray8{255} }

func (p Gray8) Over(src Color) Pixel {
	inv := 1 - src.A
	return Gray8{Y: clamp8(src.A*255 + float64(p.Y)*inv)}
}

func (p Gray8) Modulate(factor float64) Pixel {
	return Gray8{Y: clamp8(float64(p.Y) * factor)}
}

func (p Gray8) Color() Color {
	v := float64(p.Y) / 255
	return Color{R: v, G: v, B: v, A: v}
}
