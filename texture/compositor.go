package texture

// Buffer is a rectangular pixel canvas generic over any Pixel
// implementation, so the same compositing code drives both full-color
// output canvases and single-channel clip masks.
type Buffer[P Pixel] struct {
	W, H int
	Pix  []P
}

// NewBuffer returns a W x H buffer with every pixel set to its zero value.
func NewBuffer[P Pixel](w, h int) *Buffer[P] {
	return &Buffer[P]{W: w, H: h, Pix: make([]P, w*h)}
}

// Fill sets every pixel in the buffer to value.
func (b *Buffer[P]) Fill(value P) {
	for i := range b.Pix {
		b.Pix[i] = value
	}
}

// At returns the pixel at (x, y), or the zero value if out of bounds.
func (b *Buffer[P]) At(x, y int) P {
	if x < 0 || x >= b.W || y < 0 || y >= b.H {
		var zero P
		return zero
	}
	return b.Pix[y*b.W+x]
}

// CompositeSpan composites shade(x, y) over the pixel at (x, y) for each x
// in [xMin, xMin+len(coverage)) on row y, scaled by the per-pixel
// analytic coverage produced by the rasterizer. Coordinates outside the
// buffer are silently skipped, matching the rasterizer's own clip
// discipline (it never emits past the clip rectangle it was given, but a
// caller compositing onto a smaller buffer than the clip is still safe).
func (b *Buffer[P]) CompositeSpan(y, xMin int, coverage []float32, shade func(x, y int) Color) {
	if y < 0 || y >= b.H {
		return
	}
	for i, cov := range coverage {
		if cov <= 0 {
			continue
		}
		x := xMin + i
		if x < 0 || x >= b.W {
			continue
		}
		src := shade(x, y)
		if cov < 1 {
			src = src.Scale(float64(cov))
		}
		idx := y*b.W + x
		result := b.Pix[idx].Over(src)
		b.Pix[idx] = result.(P)
	}
}
