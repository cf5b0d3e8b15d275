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

package msquares

import (
	"fmt"
	"math"
)

// grid describes a raster to be marched.
// Samples are addressed by their row-major index, top row first.
type grid struct {
	width, height int
	cellSize      int

	// inside reports whether the sample at index i is inside the region.
	inside func(i int) bool

	// value returns the height of the sample at index i.
	// If value is nil, all points are placed at z = 0.
	value func(i int) float32
}

// cellPoints records the mesh vertex index of every sample point emitted
// by one cell.
type cellPoints struct {
	mask  uint8 // bit i is set if sample point i was emitted
	index [numSamplePoints]int
}

func (c *cellPoints) has(id int) bool {
	return c.mask&(1<<id) != 0
}

func (c *cellPoints) set(id, idx int) {
	c.mask |= 1 << id
	c.index[id] = idx
}

// march sweeps the grid cell by cell and returns the resulting mesh.
//
// Sample points on the west and north edge of a cell are taken over from
// the neighbouring cells whenever these have already emitted them, so that
// adjacent cells share vertices.
func march(g *grid) (*Mesh, error) {
	cases := cellCases()

	const dim = 3
	nCols := g.width / g.cellSize
	nRows := g.height / g.cellSize
	maxTris := nCols * nRows * maxCellTriangles
	maxPts := nCols * nRows * maxCellPoints
	tris := make([]uint16, 0, maxTris*3)
	pts := make([]float32, 0, maxPts*dim)

	cell := float32(g.cellSize) / float32(max(g.width, g.height))
	stride := g.cellSize * g.width
	maxRow := (g.height - 1) * g.width

	// prevRow holds the points of the row above, curRow those of the
	// current row.
	prevRow := make([]cellPoints, nCols)
	curRow := make([]cellPoints, nCols)

	var z [numSamplePoints]float32
	for row := range nRows {
		northIdx := row * stride
		southIdx := min(northIdx+stride, maxRow)
		northWest := g.inside(northIdx)
		southWest := g.inside(southIdx)
		if g.value != nil {
			z[ptNorthWest] = g.value(northIdx)
			z[ptSouthWest] = g.value(southIdx)
		}

		y0 := float32(row) * cell
		var west cellPoints
		for col := range nCols {
			northIdx += g.cellSize
			southIdx += g.cellSize
			if col == nCols-1 {
				// stay inside the raster on the last column
				northIdx--
				southIdx--
			}

			northEast := g.inside(northIdx)
			southEast := g.inside(southIdx)
			code := b2i(southWest) | b2i(southEast)<<1 | b2i(northWest)<<2 | b2i(northEast)<<3
			if g.value != nil {
				z[ptNorthEast] = g.value(northIdx)
				z[ptSouthEast] = g.value(southIdx)
				z[ptSouth] = (z[ptSouthWest] + z[ptSouthEast]) / 2
				z[ptEast] = (z[ptSouthEast] + z[ptNorthEast]) / 2
				z[ptNorth] = (z[ptNorthEast] + z[ptNorthWest]) / 2
				z[ptWest] = (z[ptNorthWest] + z[ptSouthWest]) / 2
			}

			x0 := float32(col) * cell
			north := &prevRow[col]
			cur := &curRow[col]
			*cur = cellPoints{}

			cc := &cases[code]
			for _, id := range cc.points {
				if j := westShared[id]; j >= 0 && west.has(j) {
					cur.set(id, west.index[j])
					continue
				}
				if j := northShared[id]; j >= 0 && north.has(j) {
					cur.set(id, north.index[j])
					continue
				}

				n := len(pts) / dim
				if n > math.MaxUint16 {
					return nil, fmt.Errorf("%w: more than %d points", ErrTooManyPoints, math.MaxUint16+1)
				}
				pos := samplePos[id]
				pts = append(pts, x0+pos.x*cell, y0+pos.y*cell, z[id])
				cur.set(id, n)
			}

			for _, t := range cc.triangles {
				tris = append(tris,
					uint16(cur.index[t[2]]),
					uint16(cur.index[t[1]]),
					uint16(cur.index[t[0]]))
			}

			west = *cur
			northWest, southWest = northEast, southEast
			z[ptNorthWest], z[ptSouthWest] = z[ptNorthEast], z[ptSouthEast]
		}
		prevRow, curRow = curRow, prevRow
	}

	nPts := len(pts) / dim
	nTris := len(tris) / 3
	if nPts > maxPts || nTris > maxTris {
		panic(fmt.Sprintf("msquares: %d points and %d triangles exceed the bounds %d and %d",
			nPts, nTris, maxPts, maxTris))
	}

	Logger().Debug("marched grid",
		"cols", nCols, "rows", nRows,
		"points", nPts, "triangles", nTris)

	return &Mesh{
		Points:    pts,
		Triangles: tris,
		Dim:       dim,
	}, nil
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
