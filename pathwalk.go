package raster

import "math"

// PathWalker parameterizes a path by arc length, for placing and
// orienting glyphs (or anything else) along it. It flattens the path
// once at construction time, independent of the scanline rasterizer's own
// CTM-aware flattening, since path-walking only needs a visually smooth
// polyline rather than device-exact curve error bounds.
type PathWalker struct {
	verts  []Vec2
	cumLen []float64 // cumLen[i] is the arc length from verts[0] to verts[i]
}

// NewPathWalker flattens p and returns a walker over it. flatness bounds
// the chord deviation used when subdividing curves, in the same units as
// the path's own coordinates.
func NewPathWalker(p *Path, flatness float64) *PathWalker {
	if flatness <= 0 {
		flatness = 0.25
	}
	w := &PathWalker{}
	var current Vec2
	haveCurrent := false

	emit := func(pt Vec2) {
		if haveCurrent && pt == current {
			return
		}
		w.verts = append(w.verts, pt)
		current = pt
		haveCurrent = true
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case CmdMoveTo:
			pt := p.Coords[coordIdx]
			coordIdx++
			if len(w.verts) > 0 {
				// A path walker only follows a single subpath; stop at
				// the first additional MoveTo.
				goto done
			}
			emit(pt)
		case CmdLineTo:
			pt := p.Coords[coordIdx]
			coordIdx++
			emit(pt)
		case CmdQuadTo:
			c, pt := p.Coords[coordIdx], p.Coords[coordIdx+1]
			coordIdx += 2
			flattenQuadraticFixed(current, c, pt, flatness, emit)
		case CmdCubeTo:
			c0, c1, pt := p.Coords[coordIdx], p.Coords[coordIdx+1], p.Coords[coordIdx+2]
			coordIdx += 3
			flattenCubicFixed(current, c0, c1, pt, flatness, emit)
		case CmdClose:
			if len(w.verts) > 0 {
				emit(w.verts[0])
			}
			goto done
		}
	}
done:

	w.cumLen = make([]float64, len(w.verts))
	for i := 1; i < len(w.verts); i++ {
		w.cumLen[i] = w.cumLen[i-1] + w.verts[i].Sub(w.verts[i-1]).Length()
	}

	return w
}

// Length returns the total arc length of the flattened path.
func (w *PathWalker) Length() float64 {
	if len(w.cumLen) == 0 {
		return 0
	}
	return w.cumLen[len(w.cumLen)-1]
}

// At returns the position and unit tangent at arc length dist along the
// path, clamped to [0, Length()]. ok is false for an empty path; a
// single-point path reports that point with tangent (1, 0).
func (w *PathWalker) At(dist float64) (pos, tangent Vec2, ok bool) {
	n := len(w.verts)
	if n < 2 {
		if n == 1 {
			return w.verts[0], Vec2{X: 1, Y: 0}, true
		}
		return Vec2{}, Vec2{}, false
	}

	total := w.Length()
	if dist < 0 {
		dist = 0
	}
	if dist > total {
		dist = total
	}

	// Binary search for the segment containing dist.
	lo, hi := 0, n-1
	for lo < hi-1 {
		mid := (lo + hi) / 2
		if w.cumLen[mid] <= dist {
			lo = mid
		} else {
			hi = mid
		}
	}

	segStart, segEnd := w.verts[lo], w.verts[hi]
	segLen := w.cumLen[hi] - w.cumLen[lo]
	d := segEnd.Sub(segStart)
	if segLen < 1e-12 {
		tangent = Vec2{X: 1, Y: 0}
		pos = segStart
		return pos, tangent, true
	}
	t := (dist - w.cumLen[lo]) / segLen
	pos = segStart.Add(d.Mul(t))
	tangent = d.Mul(1 / segLen)
	return pos, tangent, true
}

// flattenQuadraticFixed subdivides a quadratic Bézier using a fixed
// heuristic based on the control polygon's length, independent of any
// device transform.
func flattenQuadraticFixed(p0, p1, p2 Vec2, flatness float64, emit func(Vec2)) {
	chord := p0.Sub(p1).Length() + p1.Sub(p2).Length()
	n := max(1, int(math.Ceil(math.Sqrt(chord/flatness))))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		pt := p0.Mul(omt * omt).Add(p1.Mul(2 * omt * t)).Add(p2.Mul(t * t))
		emit(pt)
	}
}

// flattenCubicFixed subdivides a cubic Bézier using a fixed heuristic
// based on the control polygon's length, independent of any device
// transform.
func flattenCubicFixed(p0, p1, p2, p3 Vec2, flatness float64, emit func(Vec2)) {
	chord := p0.Sub(p1).Length() + p1.Sub(p2).Length() + p2.Sub(p3).Length()
	n := max(1, int(math.Ceil(math.Sqrt(chord/flatness))))
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		emit(pt)
	}
}
