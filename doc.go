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

// Package msquares converts rasters into triangle meshes using marching
// squares.
//
// The raster is divided into square cells. Every cell corner is classified
// as inside or outside, and each of the 16 possible corner codes maps to a
// fixed set of triangles over the cell corners and edge midpoints.
// Neighbouring cells share their common vertices, so the result is a
// single connected mesh with counter-clockwise triangles.
//
// [FromGrayscale] and [FromLevels] classify float samples against
// thresholds, [FromColor] and [FromColors] compare 8-bit pixels against
// colors. The results are returned as a [MeshList].
package msquares

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
