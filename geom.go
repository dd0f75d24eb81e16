// Package raster implements a 2D vector rasterizer: it turns a scene of
// filled and stroked geometric primitives into pixel coverage and,
// through the companion raster/texture package, into a composited raster
// image.
//
// The pipeline mirrors a classic PDF/PostScript imaging model: a scene
// recorder builds a tree of draw commands under ambient texture, clip,
// transform, and path-orientation scopes; a driver walks the tree and
// flattens it into a flat sequence of draw orders; each draw order is
// rasterized with analytic (exact-area) coverage and composited
// source-over onto the destination image.
package raster

import "math"

// Vec2 is a point or vector in 2D space. For geometry, the origin is the
// top-left corner of the canvas and Y grows downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v-w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Dot returns the dot product of v and w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the Z component of the 3D cross product of v and w.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normal returns the unit normal 90 degrees counter-clockwise from v,
// assuming v is already a unit vector.
func (v Vec2) Normal() Vec2 { return Vec2{-v.Y, v.X} }

// Matrix is a 2x3 affine transformation, stored as
//
//	| m[0] m[2] m[4] |
//	| m[1] m[3] m[5] |
//	|   0    0    1  |
//
// so that Apply computes x' = m[0]*x + m[2]*y + m[4], y' = m[1]*x + m[3]*y + m[5].
type Matrix [6]float64

// Identity is the identity transformation.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Translate returns a matrix that translates by (dx, dy).
func Translate(dx, dy float64) Matrix { return Matrix{1, 0, 0, 1, dx, dy} }

// Scale returns a matrix that scales independently along X and Y.
func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

// Rotate returns a matrix that rotates clockwise (consequence of Y-down
// coordinates) by angle radians.
func Rotate(angle float64) Matrix {
	c, s := math.Cos(angle), math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// RotateDeg returns a matrix that rotates clockwise by deg degrees.
func RotateDeg(deg float64) Matrix { return Rotate(deg * math.Pi / 180) }

// Translate returns m followed by a translation by (dx, dy), for building
// up a CTM fluently: m.Rotate(a).Translate(dx, dy) rotates a point first,
// then moves it.
func (m Matrix) Translate(dx, dy float64) Matrix { return Translate(dx, dy).Mul(m) }

// Scale returns m followed by an (sx, sy) scale.
func (m Matrix) Scale(sx, sy float64) Matrix { return Scale(sx, sy).Mul(m) }

// Rotate returns m followed by a rotation by angle radians.
func (m Matrix) Rotate(angle float64) Matrix { return Rotate(angle).Mul(m) }

// RotateDeg returns m followed by a rotation by deg degrees.
func (m Matrix) RotateDeg(deg float64) Matrix { return Rotate(deg * math.Pi / 180).Mul(m) }

// Apply transforms a point by the matrix.
func (m Matrix) Apply(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y + m[4],
		Y: m[1]*v.X + m[3]*v.Y + m[5],
	}
}

// ApplyLinear applies only the linear (2x2) part of the matrix, ignoring
// translation. Used for transforming vectors and for CTM-aware tolerance
// checks in curve flattening.
func (m Matrix) ApplyLinear(v Vec2) Vec2 {
	return Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Mul returns the composition that applies n first, then m:
// m.Mul(n).Apply(v) == m.Apply(n.Apply(v)).
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Det returns the determinant of the linear part of the matrix.
func (m Matrix) Det() float64 { return m[0]*m[3] - m[1]*m[2] }

// Invert returns the inverse of m. ok is false if m is singular (its
// determinant's magnitude is below 1e-12), in which case the zero Matrix is
// returned; callers must fall back to the identity inverse per the
// rasterizer's degenerate-transform policy.
func (m Matrix) Invert() (inv Matrix, ok bool) {
	det := m.Det()
	if math.Abs(det) < 1e-12 {
		return Matrix{}, false
	}
	invDet := 1 / det
	a, b, c, d, e, f := m[0], m[1], m[2], m[3], m[4], m[5]
	inv = Matrix{
		d * invDet,
		-b * invDet,
		-c * invDet,
		a * invDet,
		(c*f - d*e) * invDet,
		(b*e - a*f) * invDet,
	}
	return inv, true
}

// Rect is an axis-aligned rectangle in device coordinates, used as the
// rasterizer's clip bound. Coordinates are conventionally integers.
type Rect struct {
	LLx, LLy, URx, URy float64
}

// Dx returns the rectangle's width.
func (r Rect) Dx() float64 { return r.URx - r.LLx }

// Dy returns the rectangle's height.
func (r Rect) Dy() float64 { return r.URy - r.LLy }

// LineCapStyle selects the shape used to close off the ends of an open
// stroked subpath.
type LineCapStyle int

const (
	// LineCapButt ends the stroke flush with the final point.
	LineCapButt LineCapStyle = iota
	// LineCapRound ends the stroke with a semicircle centered on the final point.
	LineCapRound
	// LineCapSquare ends the stroke with a square projecting half the line width past the final point.
	LineCapSquare
)

// LineJoinStyle selects the shape used to join two stroked segments at a vertex.
type LineJoinStyle int

const (
	// LineJoinMiter extends the outer edges to their intersection, falling back to bevel past the miter limit.
	LineJoinMiter LineJoinStyle = iota
	// LineJoinRound inserts a circular arc at the vertex.
	LineJoinRound
	// LineJoinBevel connects the outer edges directly.
	LineJoinBevel
)
