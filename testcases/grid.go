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

// gridCases are small literal rasters which exercise individual corner
// codes and the sharing of vertices between cells.
var gridCases = []TestCase{
	{
		Name:      "full",
		Width:     1,
		Height:    1,
		CellSize:  1,
		Threshold: 0.5,
		Data:      []float32{1},
	},
	{
		Name:      "empty",
		Width:     4,
		Height:    4,
		CellSize:  2,
		Threshold: 0.5,
		Data:      make([]float32, 16),
	},
	{
		Name:      "single_corner",
		Width:     2,
		Height:    2,
		CellSize:  2,
		Threshold: 0.5,
		Data:      []float32{0, 0, 0, 1},
	},
	{
		Name:      "corner_cut",
		Width:     2,
		Height:    2,
		CellSize:  2,
		Threshold: 0.5,
		Data:      []float32{1, 1, 1, 0},
	},
	{
		Name:      "horizontal_edge",
		Width:     4,
		Height:    2,
		CellSize:  2,
		Threshold: 0.5,
		Data: []float32{
			1, 1, 1, 1,
			0, 0, 0, 0,
		},
	},
	{
		Name:      "vertical_edge",
		Width:     2,
		Height:    4,
		CellSize:  2,
		Threshold: 0.5,
		Data: []float32{
			1, 0,
			1, 0,
			1, 0,
			1, 0,
		},
	},
	{
		Name:      "saddle",
		Width:     2,
		Height:    2,
		CellSize:  2,
		Threshold: 0.5,
		Data:      []float32{1, 0, 0, 1},
	},
	{
		Name:      "checkerboard",
		Width:     6,
		Height:    6,
		CellSize:  1,
		Threshold: 0.5,
		Data:      checkerboard(6, 6),
	},
	{
		Name:      "gradient",
		Width:     8,
		Height:    8,
		CellSize:  1,
		Threshold: 0.4,
		Data:      gradient(8, 8),
	},
	{
		Name:      "noise",
		Width:     24,
		Height:    16,
		CellSize:  2,
		Threshold: 0.5,
		Data:      noise(24, 16, 1),
	},
}

// checkerboard returns a raster of alternating zeros and ones.
func checkerboard(w, h int) []float32 {
	data := make([]float32, w*h)
	for y := range h {
		for x := range w {
			data[y*w+x] = float32((x + y) % 2)
		}
	}
	return data
}

// gradient returns a raster which grows from 0 at the top-left corner
// to 1 at the bottom-right corner.
func gradient(w, h int) []float32 {
	data := make([]float32, w*h)
	for y := range h {
		for x := range w {
			data[y*w+x] = float32(x+y) / float32(w+h-2)
		}
	}
	return data
}

// noise returns a deterministic pseudo-random raster with values in [0, 1).
func noise(w, h int, seed uint32) []float32 {
	data := make([]float32, w*h)
	s := seed
	for i := range data {
		// xorshift32
		s ^= s << 13
		s ^= s >> 17
		s ^= s << 5
		data[i] = float32(s>>8) / (1 << 24)
	}
	return data
}
