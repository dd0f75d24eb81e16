// Package texture implements the shader/texture evaluation tree and the
// compositor used to turn a Texture plus a coverage mask into pixels. It
// is independent of the scanline rasterizer: given any point in the
// texture's own coordinate space, it produces a premultiplied color.
package texture

// Color is a premultiplied-alpha linear RGBA color with components in
// [0, 1]. R, G, and B are already multiplied by A, matching the
// representation used throughout the compositor so that source-over
// blending is a single multiply-add per channel.
type Color struct {
	R, G, B, A float64
}

// Transparent is the zero color: fully transparent black.
var Transparent = Color{}

// Opaque returns a fully opaque color with unpremultiplied components
// (r, g, b).
func Opaque(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromStraight builds a premultiplied Color from straight-alpha components.
func FromStraight(r, g, b, a float64) Color {
	return Color{R: r * a, G: g * a, B: b * a, A: a}
}

// Lerp linearly interpolates between c and other at parameter t (0 gives
// c, 1 gives other). Both colors must already be premultiplied; since
// premultiplied-alpha interpolation is itself linear per channel, no
// unpremultiply/repremultiply round trip is needed.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Scale multiplies all channels (including alpha) by s, as used when
// modulating a texture's output by a mask's coverage.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Over composites c over dst using the Porter-Duff source-over operator
// for premultiplied colors: result = c + dst*(1-c.A).
func (c Color) Over(dst Color) Color {
	inv := 1 - c.A
	return Color{
		R: c.R + dst.R*inv,
		G: c.G + dst.G*inv,
		B: c.B + dst.B*inv,
		A: c.A + dst.A*inv,
	}
}
