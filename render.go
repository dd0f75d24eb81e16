package raster

import (
	"github.com/inkraster/raster/texture"
)

// Image is an RGBA8, premultiplied-alpha raster produced by Render.
type Image struct {
	W, H int
	Pix  []texture.RGBA8
}

// At returns the pixel at (x, y), or the zero pixel if out of bounds.
func (img *Image) At(x, y int) texture.RGBA8 {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return texture.RGBA8{}
	}
	return img.Pix[y*img.W+x]
}

// renderer holds the buffers Render reuses across a scene's DrawOrders,
// so painting many orders costs no per-order allocation beyond what the
// orders' own geometry requires. Each Render call creates a new renderer.
type renderer struct {
	raster *Rasterizer
	target *texture.Buffer[texture.RGBA8]

	// clip mask pool: free-list of mask buffers keyed by size
	// (w*65536+h). Building a clip mask takes two buffers (the
	// accumulator and one layer), whatever the clip depth, and both are
	// returned to the pool after the order is painted, so every DrawOrder
	// that needs clipping reuses them instead of allocating new ones.
	maskPool map[int][]*texture.Buffer[texture.Gray8]
}

func newRenderer(w, h int) *renderer {
	return &renderer{
		raster:   NewRasterizer(Rect{LLx: 0, LLy: 0, URx: float64(w), URy: float64(h)}),
		target:   texture.NewBuffer[texture.RGBA8](w, h),
		maskPool: make(map[int][]*texture.Buffer[texture.Gray8]),
	}
}

func (rnd *renderer) acquireMask(w, h int) *texture.Buffer[texture.Gray8] {
	key := w*65536 + h
	if pool := rnd.maskPool[key]; len(pool) > 0 {
		m := pool[len(pool)-1]
		rnd.maskPool[key] = pool[:len(pool)-1]
		m.Fill(texture.Gray8{})
		return m
	}
	return texture.NewBuffer[texture.Gray8](w, h)
}

func (rnd *renderer) releaseMask(w, h int, m *texture.Buffer[texture.Gray8]) {
	key := w*65536 + h
	rnd.maskPool[key] = append(rnd.maskPool[key], m)
}

// Render rasterizes scene into a w x h image filled initially with
// background, applying each DrawOrder's texture, fill rule or stroke
// style, and clip stack in turn.
func Render(w, h int, background texture.Color, scene *Drawing) *Image {
	rnd := newRenderer(w, h)
	rnd.target.Fill(texture.RGBA8{}.Over(background).(texture.RGBA8))

	orders := DrawOrdersOf(scene)
	for _, order := range orders {
		rnd.paint(order, w, h)
	}

	return &Image{W: w, H: h, Pix: rnd.target.Pix}
}

// paint rasterizes one DrawOrder onto rnd.target, building (and
// compositing through) a clip mask first if the order carries any clip
// layers.
func (rnd *renderer) paint(order DrawOrder, w, h int) {
	tex := order.Texture
	if tex == nil {
		tex = texture.Solid(texture.Opaque(0, 0, 0))
	}

	shade := func(x, y int) texture.Color {
		return tex.Eval(texture.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5})
	}

	var mask *texture.Buffer[texture.Gray8]
	if len(order.Clips) > 0 {
		mask = rnd.buildClipMask(order.Clips, w, h)
		defer rnd.releaseMask(w, h, mask)
		baseShade := shade
		shade = func(x, y int) texture.Color {
			c := mask.At(x, y).Color()
			if c.A <= 0 {
				return texture.Transparent
			}
			return baseShade(x, y).Scale(c.A)
		}
	}

	emit := func(y, xMin int, coverage []float32) {
		rnd.target.CompositeSpan(y, xMin, coverage, shade)
	}

	rnd.raster.CTM = Identity
	switch order.Op {
	case OpFill:
		if order.Rule == EvenOdd {
			rnd.raster.FillEvenOdd(order.Path, emit)
		} else {
			rnd.raster.FillNonZero(order.Path, emit)
		}
	case OpStroke:
		rnd.raster.Width = order.Stroke.Width
		rnd.raster.Cap = order.Stroke.Cap
		rnd.raster.Join = order.Stroke.Join
		rnd.raster.MiterLimit = order.Stroke.MiterLimit
		rnd.raster.Dash = order.Stroke.Dash
		rnd.raster.DashPhase = order.Stroke.DashPhase
		rnd.raster.Stroke(order.Path, emit)
	}
}

// buildClipMask intersects every layer of clips into a single coverage
// mask the size of the target image, reusing pooled mask buffers for
// both the accumulator and each layer's own rasterization.
func (rnd *renderer) buildClipMask(clips []ClipLayer, w, h int) *texture.Buffer[texture.Gray8] {
	accum := rnd.acquireMask(w, h)
	accum.Fill(texture.Gray8{Y: 255})

	layer := rnd.acquireMask(w, h)
	defer rnd.releaseMask(w, h, layer)

	for _, cl := range clips {
		layer.Fill(texture.Gray8{})
		emit := func(y, xMin int, coverage []float32) {
			layer.CompositeSpan(y, xMin, coverage, func(x, y int) texture.Color {
				return texture.Opaque(1, 1, 1)
			})
		}
		rnd.raster.CTM = Identity
		if cl.Rule == EvenOdd {
			rnd.raster.FillEvenOdd(cl.Path, emit)
		} else {
			rnd.raster.FillNonZero(cl.Path, emit)
		}
		for i := range accum.Pix {
			a := float64(accum.Pix[i].Y) / 255
			b := float64(layer.Pix[i].Y) / 255
			accum.Pix[i] = texture.Gray8{Y: uint8(a*b*255 + 0.5)}
		}
	}

	return accum
}
