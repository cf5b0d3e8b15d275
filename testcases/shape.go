// seehuhn.de/go/msquares - marching squares triangulation
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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// shapeCases rasterise vector shapes and triangulate the coverage.
var shapeCases = []TestCase{
	{
		Name:      "triangle",
		Path:      triangle(10, 50, 32, 10, 54, 50),
		Width:     64,
		Height:    64,
		CellSize:  2,
		Threshold: 0.5,
	},
	{
		Name:      "star",
		Path:      fivePointStar(32, 32, 25),
		Width:     64,
		Height:    64,
		CellSize:  2,
		Threshold: 0.5,
	},
	{
		Name:      "rectangle",
		Path:      rectangle(10, 10, 54, 54),
		Width:     64,
		Height:    64,
		CellSize:  4,
		Threshold: 0.5,
	},
	{
		Name:      "circle",
		Path:      circle(32, 32, 24),
		Width:     64,
		Height:    64,
		CellSize:  1,
		Threshold: 0.5,
	},
	{
		Name:      "ring",
		Path:      ring(32, 32, 28, 16),
		Width:     64,
		Height:    64,
		CellSize:  2,
		Threshold: 0.5,
	},
	{
		Name:      "wide_ellipse",
		Path:      circle(0, 0, 1),
		CTM:       matrix.Scale(40, 12).Translate(48, 16),
		Width:     96,
		Height:    32,
		CellSize:  2,
		Threshold: 0.5,
	},
}

// triangle builds a triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	pts := make([]vec.Vec2, 5)
	for i := range 5 {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		pts[i] = pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	p := (&path.Data{}).MoveTo(pts[0])
	for _, i := range []int{2, 4, 1, 3} {
		p = p.LineTo(pts[i])
	}
	return p.Close()
}

// rectangle builds a rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// circle builds a circle from four cubic Bézier curves.
func circle(cx, cy, r float64) *path.Data {
	return addCircle(&path.Data{}, cx, cy, r, false)
}

// ring builds an "O" shape: the outer circle is counter-clockwise,
// the inner circle is clockwise.
func ring(cx, cy, outerR, innerR float64) *path.Data {
	p := addCircle(&path.Data{}, cx, cy, outerR, false)
	return addCircle(p, cx, cy, innerR, true)
}

// addCircle appends a circle to a path using cubic Bézier curves.
func addCircle(p *path.Data, cx, cy, r float64, clockwise bool) *path.Data {
	// Magic number for circular arc approximation with cubic Bézier
	const k = 0.5522847498
	kr := k * r

	// Start at top
	p = p.MoveTo(pt(cx, cy-r))
	if clockwise {
		p = p.
			CubeTo(pt(cx-kr, cy-r), pt(cx-r, cy-kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy+kr), pt(cx-kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx+kr, cy+r), pt(cx+r, cy+kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy-kr), pt(cx+kr, cy-r), pt(cx, cy-r))
	} else {
		p = p.
			CubeTo(pt(cx+kr, cy-r), pt(cx+r, cy-kr), pt(cx+r, cy)).
			CubeTo(pt(cx+r, cy+kr), pt(cx+kr, cy+r), pt(cx, cy+r)).
			CubeTo(pt(cx-kr, cy+r), pt(cx-r, cy+kr), pt(cx-r, cy)).
			CubeTo(pt(cx-r, cy-kr), pt(cx-kr, cy-r), pt(cx, cy-r))
	}
	return p.Close()
}
