package raster

import "math"

// kappa is the control-point offset that approximates a quarter circle
// with a cubic Bézier to within about 0.027% of the radius.
const kappa = 0.5522847498307936

// LinePath returns a path consisting of a single open segment from p0 to p1.
func LinePath(p0, p1 Vec2) *Path {
	return NewPath().MoveTo(p0).LineTo(p1)
}

// Polyline returns an open path visiting the given points in order.
func Polyline(points []Vec2) *Path {
	p := NewPath()
	if len(points) == 0 {
		return p
	}
	p.MoveTo(points[0])
	for _, pt := range points[1:] {
		p.LineTo(pt)
	}
	return p
}

// Polygon returns a closed path visiting the given points in order.
func Polygon(points []Vec2) *Path {
	p := Polyline(points)
	if len(points) > 0 {
		p.Close()
	}
	return p
}

// Rectangle returns a closed rectangular path with corners (x0,y0)-(x1,y1).
func Rectangle(x0, y0, x1, y1 float64) *Path {
	return Polygon([]Vec2{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
}

// RoundedRectangle returns a closed path for a rectangle with corners
// (x0,y0)-(x1,y1) rounded with the given corner radius. The radius is
// clamped so adjacent corners never overlap.
func RoundedRectangle(x0, y0, x1, y1, radius float64) *Path {
	w, h := x1-x0, y1-y0
	r := radius
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	if r <= 0 {
		return Rectangle(x0, y0, x1, y1)
	}

	k := r * kappa
	p := NewPath()
	p.MoveTo(Vec2{X: x0 + r, Y: y0})
	p.LineTo(Vec2{X: x1 - r, Y: y0})
	p.CubeTo(Vec2{X: x1 - r + k, Y: y0}, Vec2{X: x1, Y: y0 + r - k}, Vec2{X: x1, Y: y0 + r})
	p.LineTo(Vec2{X: x1, Y: y1 - r})
	p.CubeTo(Vec2{X: x1, Y: y1 - r + k}, Vec2{X: x1 - r + k, Y: y1}, Vec2{X: x1 - r, Y: y1})
	p.LineTo(Vec2{X: x0 + r, Y: y1})
	p.CubeTo(Vec2{X: x0 + r - k, Y: y1}, Vec2{X: x0, Y: y1 - r + k}, Vec2{X: x0, Y: y1 - r})
	p.LineTo(Vec2{X: x0, Y: y0 + r})
	p.CubeTo(Vec2{X: x0, Y: y0 + r - k}, Vec2{X: x0 + r - k, Y: y0}, Vec2{X: x0 + r, Y: y0})
	p.Close()
	return p
}

// Ellipse returns a closed path approximating an axis-aligned ellipse
// centered at c with radii (rx, ry), built from four cubic Bézier
// quarter-arcs using the standard kappa constant.
func Ellipse(c Vec2, rx, ry float64) *Path {
	p := NewPath()
	p.MoveTo(Vec2{X: c.X + rx, Y: c.Y})
	p.CubeTo(Vec2{X: c.X + rx, Y: c.Y + ry*kappa}, Vec2{X: c.X + rx*kappa, Y: c.Y + ry}, Vec2{X: c.X, Y: c.Y + ry})
	p.CubeTo(Vec2{X: c.X - rx*kappa, Y: c.Y + ry}, Vec2{X: c.X - rx, Y: c.Y + ry*kappa}, Vec2{X: c.X - rx, Y: c.Y})
	p.CubeTo(Vec2{X: c.X - rx, Y: c.Y - ry*kappa}, Vec2{X: c.X - rx*kappa, Y: c.Y - ry}, Vec2{X: c.X, Y: c.Y - ry})
	p.CubeTo(Vec2{X: c.X + rx*kappa, Y: c.Y - ry}, Vec2{X: c.X + rx, Y: c.Y - ry*kappa}, Vec2{X: c.X + rx, Y: c.Y})
	p.Close()
	return p
}

// Circle returns a closed path approximating a circle centered at c with
// the given radius.
func Circle(c Vec2, radius float64) *Path {
	return Ellipse(c, radius, radius)
}

// RegularPolygon returns a closed path for a regular polygon with n sides
// (n >= 3), centered at c, with vertices on a circle of the given radius.
// The first vertex is placed at angle 0 (to the right of center).
func RegularPolygon(c Vec2, radius float64, n int) *Path {
	if n < 3 {
		n = 3
	}
	points := make([]Vec2, n)
	for i := range n {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points[i] = Vec2{X: c.X + radius*math.Cos(angle), Y: c.Y + radius*math.Sin(angle)}
	}
	return Polygon(points)
}
