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
	"strconv"
	"strings"
	"sync"
)

// Sample points on the boundary of a cell, in counter-clockwise order.
// Corners and edge midpoints alternate. The compass names refer to the
// raster: "north" is the earlier raster row, which has the smaller y
// coordinate in the mesh.
const (
	ptSouthWest = iota // corner, code bit 0
	ptSouth
	ptSouthEast // corner, code bit 1
	ptEast
	ptNorthEast // corner, code bit 3
	ptNorth
	ptNorthWest // corner, code bit 2
	ptWest

	numSamplePoints
)

// Per-cell limits, used to size the output buffers before the sweep.
const (
	maxCellTriangles = 3
	maxCellPoints    = 6
)

// samplePos gives the position of each sample point in units of one cell.
var samplePos = [numSamplePoints]struct{ x, y float32 }{
	ptSouthWest: {0, 1},
	ptSouth:     {0.5, 1},
	ptSouthEast: {1, 1},
	ptEast:      {1, 0.5},
	ptNorthEast: {1, 0},
	ptNorth:     {0.5, 0},
	ptNorthWest: {0, 0},
	ptWest:      {0, 0.5},
}

// westShared maps a sample point to the point of the cell to the west which
// is at the same location, or -1 if the point is not on the west edge.
var westShared = [numSamplePoints]int{
	ptSouthWest: ptSouthEast,
	ptSouth:     -1,
	ptSouthEast: -1,
	ptEast:      -1,
	ptNorthEast: -1,
	ptNorth:     -1,
	ptNorthWest: ptNorthEast,
	ptWest:      ptEast,
}

// northShared maps a sample point to the point of the cell in the previous
// row which is at the same location, or -1 if the point is not on the north
// edge.
var northShared = [numSamplePoints]int{
	ptSouthWest: -1,
	ptSouth:     -1,
	ptSouthEast: -1,
	ptEast:      -1,
	ptNorthEast: ptSouthEast,
	ptNorth:     ptSouth,
	ptNorthWest: ptSouthWest,
	ptWest:      -1,
}

// caseTable lists the triangulation for every corner code. Each line gives
// the code as a hex digit, the number of triangles, and three sample point
// ids per triangle.
const caseTable = `
0 0
1 1 0 1 7
2 1 1 2 3
3 2 0 2 3 3 7 0
4 1 7 5 6
5 2 0 1 5 5 6 0
6 2 1 2 3 7 5 6
7 3 0 2 3 0 3 5 0 5 6
8 1 3 4 5
9 2 0 1 7 3 4 5
a 2 1 2 4 4 5 1
b 3 0 2 4 0 4 5 0 5 7
c 2 7 3 4 4 6 7
d 3 0 1 3 0 3 4 0 4 6
e 3 1 2 4 1 4 6 1 6 7
f 2 0 2 4 4 6 0
`

// cellCase describes the geometry emitted for one corner code.
type cellCase struct {
	// points lists the distinct sample points used by the triangles,
	// in order of first use.
	points []int

	// triangles lists the triangles as authored in the case table.
	// The engine emits the vertices in reverse order.
	triangles [][3]int
}

// cellCases returns the cases for all 16 corner codes.
// The table is built on first use and never modified afterwards.
var cellCases = sync.OnceValue(func() *[16]cellCase {
	return parseCaseTable(caseTable)
})

// parseCaseTable converts the textual case table into cellCase values.
// A malformed table is a programming error and causes a panic.
func parseCaseTable(text string) *[16]cellCase {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) != 16 {
		panic(fmt.Sprintf("msquares: case table has %d lines, want 16", len(lines)))
	}

	cases := new([16]cellCase)
	for i, line := range lines {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			panic(fmt.Sprintf("msquares: case table line %d is truncated", i))
		}
		code, err := strconv.ParseUint(fields[0], 16, 8)
		if err != nil || int(code) != i {
			panic(fmt.Sprintf("msquares: case table line %d has code %q", i, fields[0]))
		}
		nTri, err := strconv.Atoi(fields[1])
		if err != nil || nTri < 0 || nTri > maxCellTriangles || len(fields) != 2+3*nTri {
			panic(fmt.Sprintf("msquares: case table line %d has a bad triangle count", i))
		}

		c := &cases[i]
		var seen uint8
		for t := range nTri {
			var tri [3]int
			for k := range 3 {
				id, err := strconv.Atoi(fields[2+3*t+k])
				if err != nil || id < 0 || id >= numSamplePoints {
					panic(fmt.Sprintf("msquares: case table line %d has point id %q", i, fields[2+3*t+k]))
				}
				tri[k] = id
				if bit := uint8(1) << id; seen&bit == 0 {
					seen |= bit
					c.points = append(c.points, id)
				}
			}
			c.triangles = append(c.triangles, tri)
		}
		if len(c.points) > maxCellPoints {
			panic(fmt.Sprintf("msquares: case %x uses %d points", i, len(c.points)))
		}
	}
	return cases
}
