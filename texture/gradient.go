package texture

import "sort"

// Stop is a single color stop in a gradient ramp, at a position in [0, 1].
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is a sorted table of color stops. It holds no spread behavior:
// the enclosing Texture's Sampler maps parameter values outside [0, 1]
// before At is called, and At clamps to the end stops. Stops must be sorted
// by ascending Offset; NewGradient enforces this.
type Gradient struct {
	stops []Stop
}

// NewGradient returns a Gradient with the given stops sorted by offset. At
// least two stops are required for a meaningful ramp; fewer than two
// collapses to the first stop's color (or transparent, if empty).
func NewGradient(stops []Stop) *Gradient {
	g := &Gradient{stops: append([]Stop(nil), stops...)}
	sort.Slice(g.stops, func(i, j int) bool { return g.stops[i].Offset < g.stops[j].Offset })
	return g
}

// At returns the interpolated color at parameter t, which must already be
// in [0, 1] (callers apply the Sampler spread before calling At). Lookup
// is a binary search over stop offsets followed by a single Lerp.
func (g *Gradient) At(t float64) Color {
	stops := g.stops
	switch len(stops) {
	case 0:
		return Transparent
	case 1:
		return stops[0].Color
	}

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Offset {
		return last.Color
	}

	// Find the first stop with Offset > t; the segment we want ends there.
	idx := sort.Search(len(stops), func(i int) bool { return stops[i].Offset > t })
	lo, hi := stops[idx-1], stops[idx]
	span := hi.Offset - lo.Offset
	if span <= 0 {
		return hi.Color
	}
	return lo.Color.Lerp(hi.Color, (t-lo.Offset)/span)
}
