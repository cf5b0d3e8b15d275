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

// Package field builds grayscale rasters for marching squares.
//
// A [Field] stores one float32 sample per pixel in row-major order, top
// row first, which is the layout expected by [seehuhn.de/go/msquares.FromGrayscale].
// Fields can be created from images and from vector paths.
package field

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Field is a grayscale raster.
type Field struct {
	Data   []float32
	Width  int
	Height int
}

// New allocates a zero field of the given size.
func New(width, height int) *Field {
	return &Field{
		Data:   make([]float32, width*height),
		Width:  width,
		Height: height,
	}
}

// At returns the sample at column x and row y.
func (f *Field) At(x, y int) float32 {
	return f.Data[y*f.Width+x]
}

// Set changes the sample at column x and row y.
func (f *Field) Set(x, y int, v float32) {
	f.Data[y*f.Width+x] = v
}

// AlignedSize rounds width and height up to the next multiple of cellSize.
func AlignedSize(width, height, cellSize int) (int, int) {
	up := func(n int) int { return (n + cellSize - 1) / cellSize * cellSize }
	return up(width), up(height)
}

// FromImage converts an image to a field of luminance values in [0, 1].
func FromImage(img image.Image) *Field {
	b := img.Bounds()
	f := New(b.Dx(), b.Dy())
	for y := range f.Height {
		for x := range f.Width {
			c := color.Gray16Model.Convert(img.At(x+b.Min.X, y+b.Min.Y)).(color.Gray16)
			f.Data[y*f.Width+x] = float32(c.Y) / 0xffff
		}
	}
	return f
}

// Resample scales an image to width × height pixels using bilinear
// interpolation and converts the result to a field.
func Resample(img image.Image, width, height int) *Field {
	dst := image.NewGray16(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return FromImage(dst)
}

// FromPath computes the pixel coverage of a filled path, using the nonzero
// winding rule. The matrix M maps path coordinates to pixel coordinates,
// with y growing downwards. The zero matrix is treated as the identity.
func FromPath(p path.Path, width, height int, M matrix.Matrix) *Field {
	if M == (matrix.Matrix{}) {
		M = matrix.Identity
	}
	apply := func(v vec.Vec2) (float32, float32) {
		return float32(M[0]*v.X + M[2]*v.Y + M[4]), float32(M[1]*v.X + M[3]*v.Y + M[5])
	}

	r := vector.NewRasterizer(width, height)
	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				r.ClosePath()
			}
			r.MoveTo(apply(pts[0]))
			open = true
		case path.CmdLineTo:
			r.LineTo(apply(pts[0]))
		case path.CmdQuadTo:
			bx, by := apply(pts[0])
			cx, cy := apply(pts[1])
			r.QuadTo(bx, by, cx, cy)
		case path.CmdCubeTo:
			bx, by := apply(pts[0])
			cx, cy := apply(pts[1])
			dx, dy := apply(pts[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		case path.CmdClose:
			r.ClosePath()
			open = false
		}
	}
	if open {
		r.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, width, height))
	r.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	f := New(width, height)
	for y := range height {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+width]
		for x, a := range row {
			f.Data[y*width+x] = float32(a) / 0xff
		}
	}
	return f
}
