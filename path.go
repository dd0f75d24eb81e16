package raster

// PathCmd tags a single command in a Path's command stream.
type PathCmd int

const (
	CmdMoveTo PathCmd = iota
	CmdLineTo
	CmdQuadTo
	CmdCubeTo
	CmdClose
)

// Path is a sequence of subpaths built from line and curve commands, using
// the flat command/coordinate arrays that let the rasterizer walk a path
// without interface dispatch or per-segment allocation. CmdMoveTo consumes
// one Coords entry, CmdLineTo one, CmdQuadTo two (control, end), CmdCubeTo
// three (control, control, end), and CmdClose none.
//
// The zero value is an empty path.
type Path struct {
	Cmds   []PathCmd
	Coords []Vec2
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at p.
func (d *Path) MoveTo(p Vec2) *Path {
	d.Cmds = append(d.Cmds, CmdMoveTo)
	d.Coords = append(d.Coords, p)
	return d
}

// LineTo appends a straight line from the current point to p.
func (d *Path) LineTo(p Vec2) *Path {
	d.Cmds = append(d.Cmds, CmdLineTo)
	d.Coords = append(d.Coords, p)
	return d
}

// QuadTo appends a quadratic Bézier curve through control point c to p.
func (d *Path) QuadTo(c, p Vec2) *Path {
	d.Cmds = append(d.Cmds, CmdQuadTo)
	d.Coords = append(d.Coords, c, p)
	return d
}

// CubeTo appends a cubic Bézier curve through control points c0, c1 to p.
func (d *Path) CubeTo(c0, c1, p Vec2) *Path {
	d.Cmds = append(d.Cmds, CmdCubeTo)
	d.Coords = append(d.Coords, c0, c1, p)
	return d
}

// Close closes the current subpath with a straight line back to its start.
func (d *Path) Close() *Path {
	d.Cmds = append(d.Cmds, CmdClose)
	return d
}

// Empty reports whether the path has no commands.
func (d *Path) Empty() bool { return len(d.Cmds) == 0 }

// Transform returns a new path with every coordinate mapped through m.
func (d *Path) Transform(m Matrix) *Path {
	out := &Path{
		Cmds:   append([]PathCmd(nil), d.Cmds...),
		Coords: make([]Vec2, len(d.Coords)),
	}
	for i, p := range d.Coords {
		out.Coords[i] = m.Apply(p)
	}
	return out
}

// Bounds returns the bounding box of the path's control points. This is a
// loose (control-polygon) bound, not the tight curve bound, which is
// sufficient for clip-mask sizing.
func (d *Path) Bounds() (r Rect, ok bool) {
	if len(d.Coords) == 0 {
		return Rect{}, false
	}
	first := d.Coords[0]
	r = Rect{LLx: first.X, LLy: first.Y, URx: first.X, URy: first.Y}
	for _, p := range d.Coords[1:] {
		r.LLx = min(r.LLx, p.X)
		r.LLy = min(r.LLy, p.Y)
		r.URx = max(r.URx, p.X)
		r.URy = max(r.URy, p.Y)
	}
	return r, true
}
