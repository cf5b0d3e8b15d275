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

// Package meshpdf draws triangle meshes into PDF files for inspection.
package meshpdf

import (
	"errors"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/msquares"
)

// Options control the appearance of the preview.
// A nil *Options selects the defaults.
type Options struct {
	// Size is the width of the page in PDF points.
	Size float64

	// Fill and Stroke are the gray levels for the triangle interiors
	// and the triangle edges, from 0 (black) to 1 (white).
	Fill   float64
	Stroke float64

	// LineWidth is the width of the triangle edges in PDF points.
	// Zero disables drawing the edges.
	LineWidth float64
}

var defaultOptions = Options{
	Size:      512,
	Fill:      0.8,
	Stroke:    0.2,
	LineWidth: 0.5,
}

// ErrEmpty is returned for meshes without triangles.
var ErrEmpty = errors.New("meshpdf: mesh has no triangles")

// Write creates a single-page PDF file showing the triangles of m.
//
// The mesh is scaled so that its bounding box fills the page width. The
// mesh y axis points down the page, so that a mesh made from a raster
// appears the same way up as the raster.
func Write(fname string, m *msquares.Mesh, opt *Options) error {
	if opt == nil {
		opt = &defaultOptions
	}
	if m.NumTriangles() == 0 {
		return ErrEmpty
	}

	bbox := m.Bounds()
	w := bbox.URx - bbox.LLx
	h := bbox.URy - bbox.LLy
	scale := opt.Size / max(w, h)

	paper := &pdf.Rectangle{
		URx: w * scale,
		URy: h * scale,
	}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF origin is bottom-left; flip the y axis and move the mesh to
	// the origin.
	page.Transform(matrix.Matrix{scale, 0, 0, -scale, -bbox.LLx * scale, bbox.URy * scale})

	page.SetFillColor(color.DeviceGray(opt.Fill))
	addTriangles(page, m)
	page.Fill()

	if opt.LineWidth > 0 {
		page.SetStrokeColor(color.DeviceGray(opt.Stroke))
		page.SetLineWidth(opt.LineWidth / scale)
		page.SetLineJoin(graphics.LineJoinRound)
		page.SetLineCap(graphics.LineCapRound)
		addTriangles(page, m)
		page.Stroke()
	}

	return page.Close()
}

// pathBuilder is the subset of the page API needed to outline triangles.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	ClosePath()
}

func addTriangles(page pathBuilder, m *msquares.Mesh) {
	for i := range m.NumTriangles() {
		t := m.Triangle(i)
		a, b, c := m.Point(t[0]), m.Point(t[1]), m.Point(t[2])
		page.MoveTo(a.X, a.Y)
		page.LineTo(b.X, b.Y)
		page.LineTo(c.X, c.Y)
		page.ClosePath()
	}
}
