package texture

import "math"

// Point is a location in whatever coordinate space a Texture was built to
// evaluate in (typically user space, after the scene driver's ambient
// transform has already been applied to the geometry being shaded).
type Point struct{ X, Y float64 }

// Matrix is a 2x3 affine transform, structurally identical to the root
// package's Matrix but kept local so this package has no dependency on
// the rasterizer.
type Matrix [6]float64

// Identity is the identity transform.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Apply transforms a point by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Invert returns the inverse of m, or ok=false if m is (near-)singular.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	invDet := 1 / det
	a, b, c, d, e, f := m[0], m[1], m[2], m[3], m[4], m[5]
	return Matrix{
		d * invDet, -b * invDet,
		-c * invDet, a * invDet,
		(c*f - d*e) * invDet, (b*e - a*f) * invDet,
	}, true
}

// kind tags the variant held by a Texture.
type kind int

const (
	kindSolid kind = iota
	kindLinear
	kindRadial
	kindRadialFocus
	kindSampledImage
	kindWithSampler
	kindWithTransform
	kindModulate
	kindRaw
)

// Texture is a tagged union over the shader variants a draw order can use
// to color its coverage: a solid color, a linear or (two-circle) radial
// gradient, a resampled image, or a combinator (WithSampler, WithTransform,
// Modulate) wrapping another Texture.
type Texture struct {
	kind kind

	solid Color

	p0, p1    Point // Linear: gradient axis endpoints
	center    Point // Radial/RadialFocus: end circle center
	radius    float64
	focus     Point // RadialFocus: start circle center
	focusR    float64
	gradient  *Gradient
	sampler   Sampler

	image *Image

	child     *Texture // WithSampler / WithTransform operand
	transform Matrix   // WithTransform

	mask *Texture // Modulate: alpha source

	raw *Raw
}

// Solid returns a texture that evaluates to a single constant color
// everywhere.
func Solid(c Color) *Texture {
	return &Texture{kind: kindSolid, solid: c}
}

// LinearGradient returns a texture that varies along the axis from p0 to
// p1, parameterized by the projection of the evaluated point onto that
// axis: t = ((p-p0)·(p1-p0)) / |p1-p0|^2.
func LinearGradient(p0, p1 Point, stops []Stop, sampler Sampler) *Texture {
	return &Texture{
		kind: kindLinear, p0: p0, p1: p1,
		gradient: NewGradient(stops), sampler: sampler,
	}
}

// RadialGradient returns a texture that varies radially from center,
// parameterized by t = |p-center| / radius.
func RadialGradient(center Point, radius float64, stops []Stop, sampler Sampler) *Texture {
	return &Texture{
		kind: kindRadial, center: center, radius: radius,
		gradient: NewGradient(stops), sampler: sampler,
	}
}

// RadialGradientFocus returns a texture using the SVG two-circle radial
// gradient parameterization: the ramp runs from the circle (focus,
// focusRadius) to the circle (center, radius), and a point's parameter t
// is the solution of |p - lerp(focus,center,t)| = lerp(focusRadius,radius,t)
// with the larger admissible root chosen, matching the standard spec
// behavior when circles overlap.
func RadialGradientFocus(focus Point, focusRadius float64, center Point, radius float64, stops []Stop, sampler Sampler) *Texture {
	return &Texture{
		kind: kindRadialFocus,
		focus: focus, focusR: focusRadius,
		center: center, radius: radius,
		gradient: NewGradient(stops), sampler: sampler,
	}
}

// SampledImage returns a texture that samples img with bilinear
// interpolation. Coordinates are in the image's own pixel space (0,0) to
// (width,height); out-of-range lookups are handled by sampler.
func SampledImage(img *Image, sampler Sampler) *Texture {
	return &Texture{kind: kindSampledImage, image: img, sampler: sampler}
}

// WithSampler overrides the spread behavior of a gradient or image
// texture; it is a no-op wrapper if applied to a composite texture not
// parameterized by a single t.
func WithSampler(child *Texture, sampler Sampler) *Texture {
	return &Texture{kind: kindWithSampler, child: child, sampler: sampler}
}

// WithTransform evaluates child in the coordinate space produced by
// applying the inverse of m to the query point first, i.e. m maps
// texture-local space into the space Eval is called with.
func WithTransform(child *Texture, m Matrix) *Texture {
	return &Texture{kind: kindWithTransform, child: child, transform: m}
}

// Modulate evaluates base, then multiplies its alpha (and premultiplied
// components) by the alpha that mask evaluates to at the same point. This
// is how an auxiliary rasterized mask (soft clip, inner glow, ...) is
// composed with a texture.
func Modulate(base, mask *Texture) *Texture {
	return &Texture{kind: kindModulate, child: base, mask: mask}
}

// RawTexture wraps a precomputed coverage/color mask (e.g. the output of
// rasterizing a clip path) as a Texture so it can participate in Modulate
// chains like any other shader.
func RawTexture(r *Raw) *Texture {
	return &Texture{kind: kindRaw, raw: r}
}

// Raw is a rasterized mask: a rectangular buffer of premultiplied colors
// indexed by integer device pixel, as produced by compositing a clip
// path's coverage against a solid color (typically opaque white).
type Raw struct {
	X0, Y0 int // origin of Pix[0] in device space
	W, H   int
	Pix    []Color
}

// At returns the color at device point p, or Transparent outside bounds.
func (r *Raw) At(p Point) Color {
	x := int(math.Floor(p.X)) - r.X0
	y := int(math.Floor(p.Y)) - r.Y0
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return Transparent
	}
	return r.Pix[y*r.W+x]
}

// Eval returns the texture's color at point p.
func (t *Texture) Eval(p Point) Color {
	switch t.kind {
	case kindSolid:
		return t.solid

	case kindLinear:
		axis := Point{X: t.p1.X - t.p0.X, Y: t.p1.Y - t.p0.Y}
		denom := axis.X*axis.X + axis.Y*axis.Y
		var u float64
		if denom > 0 {
			rel := Point{X: p.X - t.p0.X, Y: p.Y - t.p0.Y}
			u = (rel.X*axis.X + rel.Y*axis.Y) / denom
		}
		return t.gradient.At(t.sampler.Apply(u))

	case kindRadial:
		dx, dy := p.X-t.center.X, p.Y-t.center.Y
		var u float64
		if t.radius > 0 {
			u = math.Hypot(dx, dy) / t.radius
		}
		return t.gradient.At(t.sampler.Apply(u))

	case kindRadialFocus:
		u := radialFocusParam(p, t.focus, t.focusR, t.center, t.radius)
		return t.gradient.At(t.sampler.Apply(u))

	case kindSampledImage:
		return t.image.SampleBilinear(p, t.sampler)

	case kindWithSampler:
		clone := *t.child
		clone.sampler = t.sampler
		return clone.Eval(p)

	case kindWithTransform:
		inv, ok := t.transform.Invert()
		if !ok {
			return Transparent
		}
		return t.child.Eval(inv.Apply(p))

	case kindModulate:
		base := t.child.Eval(p)
		alpha := t.mask.Eval(p).A
		return base.Scale(alpha)

	case kindRaw:
		return t.raw.At(p)
	}
	return Transparent
}

// radialFocusParam solves the SVG two-circle radial gradient equation for
// the parameter t at which the interpolated circle passes through p,
// picking the larger root so the gradient behaves like concentric circles
// growing outward from the focus.
func radialFocusParam(p, focus Point, focusR float64, center Point, radius float64) float64 {
	dcx, dcy := center.X-focus.X, center.Y-focus.Y
	dr := radius - focusR

	pdx, pdy := p.X-focus.X, p.Y-focus.Y

	a := dcx*dcx + dcy*dcy - dr*dr
	b := pdx*dcx + pdy*dcy + focusR*dr
	c := pdx*pdx + pdy*pdy - focusR*focusR

	if math.Abs(a) < 1e-12 {
		if math.Abs(b) < 1e-12 {
			return 0
		}
		return c / (2 * b)
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0
	}
	sq := math.Sqrt(disc)
	t1 := (b + sq) / a
	t2 := (b - sq) / a

	t := math.Max(t1, t2)
	if focusR+t*dr < 0 {
		t = math.Min(t1, t2)
	}
	return t
}
