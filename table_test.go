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
	"slices"
	"strings"
	"testing"
)

// cornerBits gives the code bit of each corner sample point.
var cornerBits = map[int]int{
	ptSouthWest: 1 << 0,
	ptSouthEast: 1 << 1,
	ptNorthWest: 1 << 2,
	ptNorthEast: 1 << 3,
}

// edgeEnds gives the two corners of each midpoint sample point.
var edgeEnds = map[int][2]int{
	ptSouth: {ptSouthWest, ptSouthEast},
	ptEast:  {ptSouthEast, ptNorthEast},
	ptNorth: {ptNorthEast, ptNorthWest},
	ptWest:  {ptNorthWest, ptSouthWest},
}

func TestCellCasesShape(t *testing.T) {
	cases := cellCases()

	if n := len(cases[0].triangles); n != 0 {
		t.Errorf("code 0 has %d triangles; want 0", n)
	}
	if n := len(cases[15].triangles); n != 2 {
		t.Errorf("code 15 has %d triangles; want 2", n)
	}

	for code := range 16 {
		c := &cases[code]
		if code != 0 && len(c.triangles) == 0 {
			t.Errorf("code %d has no triangles", code)
		}
		if len(c.triangles) > maxCellTriangles {
			t.Errorf("code %d has %d triangles", code, len(c.triangles))
		}
		if len(c.points) > maxCellPoints {
			t.Errorf("code %d has %d points", code, len(c.points))
		}
		for _, tri := range c.triangles {
			for _, id := range tri {
				if !slices.Contains(c.points, id) {
					t.Errorf("code %d: triangle %v uses undeclared point %d", code, tri, id)
				}
			}
		}
	}
}

// TestCellCasesPoints checks that a case uses exactly the inside corners
// and the midpoints of edges where the boundary crosses. This is what
// makes the points on a shared edge agree between neighbouring cells.
func TestCellCasesPoints(t *testing.T) {
	cases := cellCases()
	for code := range 16 {
		inside := func(corner int) bool { return code&cornerBits[corner] != 0 }

		var want []int
		for id := range numSamplePoints {
			if _, isCorner := cornerBits[id]; isCorner {
				if inside(id) {
					want = append(want, id)
				}
			} else if ends := edgeEnds[id]; inside(ends[0]) != inside(ends[1]) {
				want = append(want, id)
			}
		}

		got := slices.Sorted(slices.Values(cases[code].points))
		if !slices.Equal(got, want) {
			t.Errorf("code %d uses points %v; want %v", code, got, want)
		}
	}
}

func TestCellCasesWinding(t *testing.T) {
	cases := cellCases()
	for code := range 16 {
		var area float32
		for _, tri := range cases[code].triangles {
			// vertices are emitted in reverse order
			a, b, c := samplePos[tri[2]], samplePos[tri[1]], samplePos[tri[0]]
			cross := (b.x-a.x)*(c.y-a.y) - (b.y-a.y)*(c.x-a.x)
			if cross <= 0 {
				t.Errorf("code %d: triangle %v is not counter-clockwise", code, tri)
			}
			area += cross / 2
		}

		if code == 15 && area != 1 {
			t.Errorf("code 15 covers area %g; want 1", area)
		}
		if code == 0 && area != 0 {
			t.Errorf("code 0 covers area %g; want 0", area)
		}
	}
}

func TestSharedPoints(t *testing.T) {
	for id := range numSamplePoints {
		if j := westShared[id]; j >= 0 {
			p, q := samplePos[id], samplePos[j]
			if p.x != q.x-1 || p.y != q.y {
				t.Errorf("point %d does not coincide with west point %d", id, j)
			}
		}
		if j := northShared[id]; j >= 0 {
			p, q := samplePos[id], samplePos[j]
			if p.x != q.x || p.y != q.y-1 {
				t.Errorf("point %d does not coincide with north point %d", id, j)
			}
		}
	}

	// Three points are shared with each of the two earlier neighbours.
	count := func(m [numSamplePoints]int) int {
		n := 0
		for _, j := range m {
			if j >= 0 {
				n++
			}
		}
		return n
	}
	if n := count(westShared); n != 3 {
		t.Errorf("%d points shared with the west neighbour; want 3", n)
	}
	if n := count(northShared); n != 3 {
		t.Errorf("%d points shared with the north neighbour; want 3", n)
	}
}

func TestParseCaseTableMalformed(t *testing.T) {
	lines := strings.Split(strings.TrimSpace(caseTable), "\n")
	broken := map[string]string{
		"short":     strings.Join(lines[:15], "\n"),
		"bad_code":  strings.Replace(caseTable, "\n7 3", "\n6 3", 1),
		"bad_count": strings.Replace(caseTable, "\n8 1 3 4 5", "\n8 2 3 4 5", 1),
		"bad_point": strings.Replace(caseTable, "\n8 1 3 4 5", "\n8 1 3 4 9", 1),
	}
	for name, text := range broken {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("no panic for malformed table")
				}
			}()
			parseCaseTable(text)
		})
	}
}
