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

// Package testcases defines named rasters for testing and benchmarking the
// triangulation.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/msquares/field"
)

// TestCase defines a single triangulation test.
type TestCase struct {
	Name      string        // lowercase a-z, 0-9 and _ only
	Width     int           // raster width in pixels
	Height    int           // raster height in pixels
	CellSize  int           // cell size in pixels
	Threshold float32       // samples above this value are inside
	Data      []float32     // literal samples, row-major, top row first
	Path      *path.Data    // shape to rasterise if Data is nil
	CTM       matrix.Matrix // transformation for Path (zero-value means no transform)
}

// Field returns the samples of the test case.
func (tc TestCase) Field() *field.Field {
	if tc.Data != nil {
		return &field.Field{Data: tc.Data, Width: tc.Width, Height: tc.Height}
	}
	return field.FromPath(tc.Path.Iter(), tc.Width, tc.Height, tc.CTM)
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
