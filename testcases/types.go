// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases collects golden-image regression fixtures for the
// raster package: each TestCase names a scene, the canvas it renders
// onto, and (via Scene) the Drawing that produces it.
package testcases

import (
	"github.com/inkraster/raster"
	"github.com/inkraster/raster/texture"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, digits and _ only
	Path   *raster.Path  // the geometry to render
	Width  int           // canvas width in pixels
	Height int           // canvas height in pixels
	Op     Operation     // fill, stroke, or a texture applied to one
	CTM    raster.Matrix // transformation matrix (zero-value means no transform)
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
	addTo(d *raster.Drawing, p *raster.Path)
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) toRaster() raster.FillRule {
	if r == EvenOdd {
		return raster.EvenOdd
	}
	return raster.NonZero
}

// Fill specifies a fill operation using the solid color black, unless
// wrapped by WithTexture.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}
func (f Fill) addTo(d *raster.Drawing, p *raster.Path) {
	d.Fill(p, f.Rule.toRaster())
}

// Stroke specifies a stroke operation using the solid color black, unless
// wrapped by WithTexture.
type Stroke struct {
	Width      float64              // line width (>0)
	Cap        raster.LineCapStyle  // LineCapButt, LineCapRound, LineCapSquare
	Join       raster.LineJoinStyle // LineJoinMiter, LineJoinRound, LineJoinBevel
	MiterLimit float64              // miter limit
	Dash       []float64            // dash pattern (nil for solid)
	DashPhase  float64              // dash phase offset
}

func (Stroke) isOperation() {}
func (s Stroke) addTo(d *raster.Drawing, p *raster.Path) {
	d.Stroke(p, raster.StrokeStyle{
		Width: s.Width, Cap: s.Cap, Join: s.Join,
		MiterLimit: s.MiterLimit, Dash: s.Dash, DashPhase: s.DashPhase,
	})
}

// WithTexture wraps another Operation, shading it with tex instead of
// solid black.
type WithTexture struct {
	Op  Operation
	Tex *texture.Texture
}

func (WithTexture) isOperation() {}
func (w WithTexture) addTo(d *raster.Drawing, p *raster.Path) {
	d.SetTexture(w.Tex)
	w.Op.addTo(d, p)
}

// Scene builds the Drawing this test case describes: tc.Op applied to
// tc.Path under tc.CTM (identity if unset).
func (tc TestCase) Scene() *raster.Drawing {
	d := raster.NewDrawing()
	ctm := tc.CTM
	if ctm == (raster.Matrix{}) {
		ctm = raster.Identity
	}
	d.WithTransform(ctm, func(child *raster.Drawing) {
		tc.Op.addTo(child, tc.Path)
	})
	return d
}

// pt is a helper to create a raster.Vec2 from x, y coordinates.
func pt(x, y float64) raster.Vec2 {
	return raster.Vec2{X: x, Y: y}
}
