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

// Command export writes the meshes of all test cases to JSON, for
// inspection with external tools.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/msquares"
	"seehuhn.de/go/msquares/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			jtc, err := toJSON(category, tc)
			if err != nil {
				panic(err)
			}
			out.TestCases = append(out.TestCases, jtc)
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/meshes.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string      `json:"name"`
	Width     int         `json:"width"`
	Height    int         `json:"height"`
	CellSize  int         `json:"cell_size"`
	Threshold float32     `json:"threshold"`
	Points    [][]float32 `json:"points"`
	Triangles [][3]int    `json:"triangles"`
}

func toJSON(category string, tc testcases.TestCase) (jsonTestCase, error) {
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		CellSize:  tc.CellSize,
		Threshold: tc.Threshold,
	}

	f := tc.Field()
	meshes, err := msquares.FromGrayscale(f.Data, f.Width, f.Height, tc.CellSize, tc.Threshold, 0)
	if err != nil {
		return jtc, err
	}
	defer meshes.Free()

	m := meshes.Mesh(0)
	jtc.Points = make([][]float32, m.NumPoints())
	for i := range jtc.Points {
		jtc.Points[i] = slices.Clone(m.Points[i*m.Dim : (i+1)*m.Dim])
	}
	jtc.Triangles = make([][3]int, m.NumTriangles())
	for i := range jtc.Triangles {
		jtc.Triangles[i] = m.Triangle(i)
	}
	return jtc, nil
}
