package raster

import (
	"math"

	"github.com/inkraster/raster/rfont"
	"github.com/inkraster/raster/texture"
)

// FillRule selects how a filled path's interior is determined.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

// StrokeStyle collects the parameters that turn a path into a stroked
// outline: width, end caps, corner joins, miter limit, and an optional
// dash pattern.
type StrokeStyle struct {
	Width      float64
	Cap        LineCapStyle
	Join       LineJoinStyle
	MiterLimit float64
	Dash       []float64
	DashPhase  float64
}

// DefaultStrokeStyle returns the PDF/PostScript-style defaults: a 1-unit
// solid butt-capped, miter-joined stroke with miter limit 10.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{Width: 1, Cap: LineCapButt, Join: LineJoinMiter, MiterLimit: defaultMiterLimit}
}

// ClipLayer is one entry of a DrawOrder's clip stack: a path and the fill
// rule used to interpret it, already transformed into the same
// coordinate space as the DrawOrder's own geometry.
type ClipLayer struct {
	Path *Path
	Rule FillRule
}

// DrawOp is the rendering operation a DrawOrder performs.
type DrawOp int

const (
	OpFill DrawOp = iota
	OpStroke
)

// DrawOrder is one flattened, fully resolved unit of work produced by
// walking a Drawing: geometry with the scene's ambient transform already
// baked in, the texture to shade it with, the fill rule or stroke style
// to apply, and the stack of clip paths (also pre-transformed) that
// restrict where it paints.
type DrawOrder struct {
	Path    *Path
	Op      DrawOp
	Rule    FillRule
	Stroke  StrokeStyle
	Texture *texture.Texture
	Clips   []ClipLayer
}

// Drawing is a recorded scene: a tree of draw commands under ambient
// texture, transform, clip, and path-orientation scopes. Build one with
// NewDrawing, populate it with Fill/Stroke/TextFill and the With*
// scoping methods, then pass it to Render or DrawOrdersOf.
//
// A Drawing records once and is replayed (flattened into DrawOrders) as
// many times as needed; recording and rasterizing are separate steps, so
// the same Drawing can be inspected via DrawOrdersOf without painting
// anything.
type Drawing struct {
	cmds []sceneCmd
}

// NewDrawing returns an empty scene recorder.
func NewDrawing() *Drawing {
	return &Drawing{}
}

type sceneCmd interface{ isSceneCmd() }

type setTextureCmd struct{ tex *texture.Texture }
type transformCmd struct {
	m     Matrix
	child *Drawing
}
type clipCmd struct {
	path  *Path
	rule  FillRule
	child *Drawing
}
type pathOrientationCmd struct {
	path  *Path
	child *Drawing
}
type fillCmd struct {
	path *Path
	rule FillRule
}
type strokeCmd struct {
	path  *Path
	style StrokeStyle
}
type textFillCmd struct {
	glyphs rfont.Glyphs
	text   string
	sizeEm float64
	origin Vec2
	rule   FillRule
}

func (setTextureCmd) isSceneCmd()      {}
func (transformCmd) isSceneCmd()       {}
func (clipCmd) isSceneCmd()            {}
func (pathOrientationCmd) isSceneCmd() {}
func (fillCmd) isSceneCmd()            {}
func (strokeCmd) isSceneCmd()          {}
func (textFillCmd) isSceneCmd()        {}

// SetTexture changes the ambient texture used by subsequent Fill/Stroke/
// TextFill calls in this scope. It has no effect on sibling scopes
// recorded before it or on parent scopes.
func (d *Drawing) SetTexture(tex *texture.Texture) {
	d.cmds = append(d.cmds, setTextureCmd{tex: tex})
}

// WithTransform records child's commands under an additional transform m,
// composed after (applied on top of) whatever transform is already
// ambient at this point in the tree.
func (d *Drawing) WithTransform(m Matrix, build func(*Drawing)) {
	child := NewDrawing()
	build(child)
	d.cmds = append(d.cmds, transformCmd{m: m, child: child})
}

// WithClipping records child's commands restricted to the interior of
// clip (under rule), intersected with any clip already ambient at this
// point in the tree.
func (d *Drawing) WithClipping(clip *Path, rule FillRule, build func(*Drawing)) {
	child := NewDrawing()
	build(child)
	d.cmds = append(d.cmds, clipCmd{path: clip, rule: rule, child: child})
}

// WithPathOrientation records child's commands with p established as the
// ambient path that TextFill lays glyphs along, instead of a straight
// baseline.
func (d *Drawing) WithPathOrientation(p *Path, build func(*Drawing)) {
	child := NewDrawing()
	build(child)
	d.cmds = append(d.cmds, pathOrientationCmd{path: p, child: child})
}

// Fill records a fill of p using rule, with the ambient texture, transform,
// and clip.
func (d *Drawing) Fill(p *Path, rule FillRule) {
	d.cmds = append(d.cmds, fillCmd{path: p, rule: rule})
}

// Stroke records a stroke of p using style, with the ambient texture,
// transform, and clip.
func (d *Drawing) Stroke(p *Path, style StrokeStyle) {
	d.cmds = append(d.cmds, strokeCmd{path: p, style: style})
}

// DashedStroke records a stroke of p using style with its Dash and
// DashPhase overridden by dash/phase; it is a convenience for the common
// case of reusing one StrokeStyle for both solid and dashed strokes.
func (d *Drawing) DashedStroke(p *Path, style StrokeStyle, dash []float64, phase float64) {
	style.Dash = dash
	style.DashPhase = phase
	d.cmds = append(d.cmds, strokeCmd{path: p, style: style})
}

// TextFill records a text fill: text is laid out left to right starting
// at origin (or, inside a WithPathOrientation scope, along that path
// starting at the arc-length position origin.X with baseline offset
// origin.Y), using glyphs for outlines and metrics, at size sizeEm (in
// user-space units per em).
func (d *Drawing) TextFill(glyphs rfont.Glyphs, text string, sizeEm float64, origin Vec2, rule FillRule) {
	d.cmds = append(d.cmds, textFillCmd{glyphs: glyphs, text: text, sizeEm: sizeEm, origin: origin, rule: rule})
}

// driverState is the ambient context threaded through the scene tree
// while flattening it into DrawOrders.
type driverState struct {
	transform       Matrix
	texture         *texture.Texture
	clips           []ClipLayer
	pathOrientation *Path
}

// DrawOrdersOf flattens scene into the sequence of DrawOrders Render
// would rasterize, without rasterizing them. It is meant for
// snapshot-testing the recorder/driver in isolation from the rasterizer.
func DrawOrdersOf(scene *Drawing) []DrawOrder {
	st := driverState{transform: Identity}
	var out []DrawOrder
	walkDrawing(scene, st, &out)
	return out
}

func walkDrawing(d *Drawing, st driverState, out *[]DrawOrder) {
	for _, cmd := range d.cmds {
		switch c := cmd.(type) {
		case setTextureCmd:
			st.texture = c.tex

		case transformCmd:
			childSt := st
			childSt.transform = st.transform.Mul(c.m)
			walkDrawing(c.child, childSt, out)

		case clipCmd:
			childSt := st
			childSt.clips = append(append([]ClipLayer(nil), st.clips...), ClipLayer{
				Path: c.path.Transform(st.transform),
				Rule: c.rule,
			})
			walkDrawing(c.child, childSt, out)

		case pathOrientationCmd:
			childSt := st
			childSt.pathOrientation = c.path.Transform(st.transform)
			walkDrawing(c.child, childSt, out)

		case fillCmd:
			*out = append(*out, DrawOrder{
				Path:    c.path.Transform(st.transform),
				Op:      OpFill,
				Rule:    c.rule,
				Texture: textureInUserSpace(st.texture, st.transform),
				Clips:   st.clips,
			})

		case strokeCmd:
			style := c.style
			// Dash lengths and width are defined in user space; baking
			// the transform into the path would distort them, so the
			// stroke style's linear-measure fields are scaled by the
			// transform's average axis scale instead.
			scale := averageScale(st.transform)
			style.Width *= scale
			if len(style.Dash) > 0 {
				scaled := make([]float64, len(style.Dash))
				for i, v := range style.Dash {
					scaled[i] = v * scale
				}
				style.Dash = scaled
			}
			style.DashPhase *= scale
			*out = append(*out, DrawOrder{
				Path:    c.path.Transform(st.transform),
				Op:      OpStroke,
				Stroke:  style,
				Texture: textureInUserSpace(st.texture, st.transform),
				Clips:   st.clips,
			})

		case textFillCmd:
			*out = append(*out, textFillDrawOrders(c, st)...)
		}
	}
}

// averageScale approximates the uniform scale factor of an affine
// transform's linear part as the geometric mean of its singular values,
// used to carry stroke width/dash measurements (which are defined in
// user space) through to device space without needing a fully general
// non-uniform stroke model.
func averageScale(m Matrix) float64 {
	det := m.Det()
	if det < 0 {
		det = -det
	}
	if det <= 0 {
		return 1
	}
	return math.Sqrt(det)
}

// textureInUserSpace wraps tex so it is evaluated in the user-space
// coordinates it was recorded under, instead of the device space its
// geometry has since been transformed into: the query point is mapped
// back through the inverse of transform before tex sees it. A singular
// transform falls back to the identity inverse, matching the
// rasterizer's own degenerate-transform policy.
func textureInUserSpace(tex *texture.Texture, transform Matrix) *texture.Texture {
	if tex == nil || transform == Identity {
		return tex
	}
	if _, ok := transform.Invert(); !ok {
		return tex
	}
	// WithTransform evaluates its child at the inverse of the matrix it is
	// given, so passing transform itself maps device points back to user space.
	return texture.WithTransform(tex, texture.Matrix(transform))
}

// textFillDrawOrders lays out text's glyph clusters (either along a
// straight baseline from origin, or along st.pathOrientation if set) and
// returns one Fill DrawOrder per cluster.
func textFillDrawOrders(c textFillCmd, st driverState) []DrawOrder {
	clusters := rfont.Clusters(c.text, c.glyphs)

	var orders []DrawOrder
	if st.pathOrientation == nil {
		pen := c.origin
		for _, cl := range clusters {
			if p := clusterPath(cl, c.glyphs, c.sizeEm, pen, Vec2{X: 1, Y: 0}); p != nil {
				orders = append(orders, DrawOrder{
					Path: p.Transform(st.transform), Op: OpFill, Rule: c.rule,
					Texture: textureInUserSpace(st.texture, st.transform), Clips: st.clips,
				})
			}
			pen = pen.Add(Vec2{X: cl.Width * c.sizeEm, Y: 0})
		}
		return orders
	}

	walker := NewPathWalker(st.pathOrientation, 0.25)
	dist := c.origin.X
	for _, cl := range clusters {
		pos, tangent, ok := walker.At(dist)
		if !ok {
			break
		}
		normal := tangent.Normal()
		baseline := pos.Add(normal.Mul(c.origin.Y))
		if p := clusterPath(cl, c.glyphs, c.sizeEm, baseline, tangent); p != nil {
			orders = append(orders, DrawOrder{
				Path: p, Op: OpFill, Rule: c.rule,
				Texture: textureInUserSpace(st.texture, st.transform), Clips: st.clips,
			})
		}
		dist += cl.Width * c.sizeEm
	}
	return orders
}

// clusterPath builds the combined outline path for a grapheme cluster,
// placed with its baseline origin at pen and oriented so the baseline
// direction (1,0) in font space maps to dir in user space.
func clusterPath(cl rfont.Cluster, glyphs rfont.Glyphs, sizeEm float64, pen, dir Vec2) *Path {
	n := dir.Normal()
	place := func(fp rfont.Point) Vec2 {
		local := Vec2{X: fp.X * sizeEm, Y: fp.Y * sizeEm}
		return pen.Add(dir.Mul(local.X)).Add(n.Mul(-local.Y))
	}

	out := NewPath()
	wrote := false
	advance := 0.0
	for _, r := range cl.Runes {
		contours, ok := glyphs.Outline(r)
		if ok {
			for _, contour := range contours {
				if len(contour) == 0 {
					continue
				}
				wrote = true
				out.MoveTo(place(offsetPoint(contour[0].P0, advance)))
				for _, seg := range contour {
					out.CubeTo(
						place(offsetPoint(seg.P1, advance)),
						place(offsetPoint(seg.P2, advance)),
						place(offsetPoint(seg.P3, advance)),
					)
				}
				out.Close()
			}
		}
		advance += glyphs.Advance(r)
	}
	if !wrote {
		return nil
	}
	return out
}

func offsetPoint(p rfont.Point, dx float64) rfont.Point {
	return rfont.Point{X: p.X + dx, Y: p.Y}
}
