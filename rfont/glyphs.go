// Package rfont supplies the "glyphs" external collaborator the rasterizer
// relies on for text-on-path and text fill: something that turns a font
// plus a rune into a sequence of cubic Bézier outline segments, in
// em-normalized font space (1 unit == 1 em, y-up, origin at the
// baseline).
package rfont

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/math/fixed"
)

// Point is a location in font space, independent of the rasterizer's own
// Vec2 so this package has no dependency on the root module.
type Point struct{ X, Y float64 }

// CubicBezier is one outline segment of a glyph contour.
type CubicBezier struct {
	P0, P1, P2, P3 Point
}

// Glyphs is the external collaborator the spec names as "glyphs(font,
// sizePt, origin, text) -> [[CubicBezier]]": something that can turn a
// rune into its outline (a list of closed contours, each a list of cubic
// segments) plus its advance width, both in em units.
type Glyphs interface {
	// Outline returns the glyph's contours for r, or ok=false if the font
	// has no glyph for r (the caller substitutes .notdef or skips it).
	Outline(r rune) (contours [][]CubicBezier, ok bool)
	// Advance returns the horizontal advance for r, in em units.
	Advance(r rune) float64
	// UnitsPerEm returns the font's design grid resolution.
	UnitsPerEm() float64
}

// TrueTypeGlyphs implements Glyphs on top of a parsed TrueType/OpenType
// font, decoding each glyph's quadratic contours into the cubic form the
// rest of the pipeline expects.
type TrueTypeGlyphs struct {
	font *truetype.Font
	upm  float64
}

// NewTrueTypeGlyphs parses font file data (TTF/OTF with quadratic
// outlines) and returns a Glyphs backed by it.
func NewTrueTypeGlyphs(data []byte) (*TrueTypeGlyphs, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("rfont: parsing font: %w", err)
	}
	upm := float64(f.FUnitsPerEm())
	if upm <= 0 {
		upm = 1000
	}
	return &TrueTypeGlyphs{font: f, upm: upm}, nil
}

// UnitsPerEm returns the font's design units per em.
func (g *TrueTypeGlyphs) UnitsPerEm() float64 { return g.upm }

// scale requests glyph outlines back in raw font units (shifted into 26.6
// fixed point), so the decoder can normalize to em units itself instead
// of baking a particular point size into the parse.
func (g *TrueTypeGlyphs) scale() fixed.Int26_6 {
	return fixed.Int26_6(g.upm) << 6
}

// Advance returns the horizontal advance for r, in em units.
func (g *TrueTypeGlyphs) Advance(r rune) float64 {
	idx := g.font.Index(r)
	var buf truetype.GlyphBuf
	if err := buf.Load(g.font, g.scale(), idx, truetype.LoadFlags(0)); err != nil {
		return 0
	}
	return float64(buf.AdvanceWidth) / 64 / g.upm
}

// Outline returns r's contours, each a sequence of cubic segments in
// em-normalized space (y-up, origin at the baseline).
func (g *TrueTypeGlyphs) Outline(r rune) ([][]CubicBezier, bool) {
	idx := g.font.Index(r)
	if idx == 0 && r != 0 {
		return nil, false
	}

	var buf truetype.GlyphBuf
	if err := buf.Load(g.font, g.scale(), idx, truetype.LoadFlags(0)); err != nil {
		return nil, false
	}

	var contours [][]CubicBezier
	start := 0
	for _, end := range buf.End {
		contours = append(contours, decodeContour(buf.Point[start:end], g.upm))
		start = end
	}
	return contours, true
}

// decodeContour converts one closed contour of on/off-curve TrueType
// points into cubic Bézier segments, inserting the implied on-curve
// midpoints between consecutive off-curve control points as required by
// the TrueType quadratic contour encoding, then degree-elevating each
// quadratic span to a cubic. pts coordinates are 26.6 fixed point raw
// font units (see scale); upm normalizes them to em units.
func decodeContour(pts []truetype.Point, upm float64) []CubicBezier {
	n := len(pts)
	if n == 0 {
		return nil
	}

	toPt := func(p truetype.Point) Point {
		return Point{X: float64(p.X) / 64 / upm, Y: float64(p.Y) / 64 / upm}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&1 != 0 }
	mid := func(a, b Point) Point { return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2} }

	// Expand into a normalized list that always starts on-curve and
	// alternates on/off, inserting implied midpoints where two
	// off-curve points are adjacent.
	type node struct {
		p  Point
		on bool
	}
	nodes := make([]node, 0, n+1)
	for i := 0; i < n; i++ {
		cur := pts[i]
		curPt := toPt(cur)
		curOn := onCurve(cur)
		if len(nodes) > 0 && !nodes[len(nodes)-1].on && !curOn {
			nodes = append(nodes, node{p: mid(nodes[len(nodes)-1].p, curPt), on: true})
		}
		nodes = append(nodes, node{p: curPt, on: curOn})
	}
	// Close the loop, inserting a midpoint if both the last and first
	// points are off-curve.
	if !nodes[len(nodes)-1].on && !nodes[0].on {
		nodes = append(nodes, node{p: mid(nodes[len(nodes)-1].p, nodes[0].p), on: true})
	}
	// Rotate so the sequence starts on-curve.
	start := 0
	for start < len(nodes) && !nodes[start].on {
		start++
	}
	if start == len(nodes) {
		return nil // contour has no on-curve point at all (degenerate)
	}
	nodes = append(nodes[start:], nodes[:start]...)
	nodes = append(nodes, nodes[0])

	var out []CubicBezier
	cur := nodes[0].p
	i := 1
	for i < len(nodes) {
		if nodes[i].on {
			out = append(out, quadToCubic(cur, mid(cur, nodes[i].p), nodes[i].p))
			cur = nodes[i].p
			i++
			continue
		}
		ctrl := nodes[i].p
		end := nodes[i+1].p // guaranteed on-curve by construction above
		out = append(out, quadToCubic(cur, ctrl, end))
		cur = end
		i += 2
	}
	return out
}

// quadToCubic exactly degree-elevates a quadratic Bézier (p0, ctrl, p1)
// into the equivalent cubic.
func quadToCubic(p0, ctrl, p1 Point) CubicBezier {
	c1 := Point{X: p0.X + 2.0/3.0*(ctrl.X-p0.X), Y: p0.Y + 2.0/3.0*(ctrl.Y-p0.Y)}
	c2 := Point{X: p1.X + 2.0/3.0*(ctrl.X-p1.X), Y: p1.Y + 2.0/3.0*(ctrl.Y-p1.Y)}
	return CubicBezier{P0: p0, P1: c1, P2: c2, P3: p1}
}
