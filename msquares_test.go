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
	"errors"
	"testing"
)

func TestInputErrors(t *testing.T) {
	gray := func(data []float32, w, h, cs int, flags Flags) error {
		_, err := FromGrayscale(data, w, h, cs, 0.5, flags)
		return err
	}
	rgb := func(data []byte, w, h, cs, bpp int) error {
		_, err := FromColor(data, w, h, cs, 0, bpp, 0)
		return err
	}

	cases := []struct {
		name string
		err  error
		want error
	}{
		{"odd width", gray(make([]float32, 12), 3, 4, 2, 0), ErrDimensions},
		{"zero cell", gray(make([]float32, 4), 2, 2, 0, 0), ErrDimensions},
		{"zero width", gray(nil, 0, 2, 1, 0), ErrDimensions},
		{"short data", gray(make([]float32, 3), 2, 2, 1, 0), ErrDataSize},
		{"long data", gray(make([]float32, 5), 2, 2, 1, 0), ErrDataSize},
		{"reserved flag", gray(make([]float32, 4), 2, 2, 1, 1<<2), ErrFlags},
		{"high flag", gray(make([]float32, 4), 2, 2, 1, 1<<8), ErrFlags},
		{"zero bpp", rgb(make([]byte, 4), 2, 2, 1, 0), ErrPixelSize},
		{"large bpp", rgb(make([]byte, 20), 2, 2, 1, 5), ErrPixelSize},
		{"color data", rgb(make([]byte, 4), 2, 2, 1, 3), ErrDataSize},
	}
	for _, c := range cases {
		if !errors.Is(c.err, c.want) {
			t.Errorf("%s: got %v; want %v", c.name, c.err, c.want)
		}
	}
}

func TestCheckDimensions(t *testing.T) {
	good := [][3]int{{1, 1, 1}, {4, 2, 2}, {640, 480, 16}}
	for _, d := range good {
		if err := CheckDimensions(d[0], d[1], d[2]); err != nil {
			t.Errorf("CheckDimensions%v: %v", d, err)
		}
	}
	bad := [][3]int{{0, 4, 1}, {4, -4, 1}, {4, 4, -1}, {6, 4, 4}}
	for _, d := range bad {
		if err := CheckDimensions(d[0], d[1], d[2]); !errors.Is(err, ErrDimensions) {
			t.Errorf("CheckDimensions%v: got %v", d, err)
		}
	}
}

func TestFromLevels(t *testing.T) {
	const n = 8
	data := make([]float32, n*n)
	for y := range n {
		for x := range n {
			data[y*n+x] = float32(x) / (n - 1)
		}
	}

	thresholds := []float32{0.2, 0.5, 0.8}
	meshes, err := FromLevels(data, n, n, 1, thresholds, 0)
	if err != nil {
		t.Fatal(err)
	}
	if meshes.Count() != len(thresholds) {
		t.Fatalf("Count() = %d; want %d", meshes.Count(), len(thresholds))
	}

	prev := 2.0
	for i, m := range meshes.All() {
		checkMesh(t, m, n, n)
		a := m.Area()
		if a <= 0 || a >= prev {
			t.Errorf("threshold %g: area %g, previous %g", thresholds[i], a, prev)
		}
		prev = a
	}

	none, err := FromLevels(data, n, n, 1, nil, Dual)
	if err != nil {
		t.Fatal(err)
	}
	if none.Count() != 0 {
		t.Errorf("no thresholds gave %d meshes", none.Count())
	}
}

func TestFromColors(t *testing.T) {
	const (
		red  = 0xff0000
		blue = 0x0000ff
	)
	data := []byte{
		0xff, 0, 0, 0xff, 0, 0,
		0xff, 0, 0, 0, 0, 0xff,
	}

	meshes, err := FromColors(data, 2, 2, 2, []uint32{red, blue, 0x00ff00}, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if meshes.Count() != 3 {
		t.Fatalf("Count() = %d; want 3", meshes.Count())
	}

	want := []struct{ points, triangles int }{{5, 3}, {3, 1}, {0, 0}}
	for i, m := range meshes.All() {
		checkMesh(t, m, 1, 1)
		if m.NumPoints() != want[i].points || m.NumTriangles() != want[i].triangles {
			t.Errorf("mesh %d: %d points, %d triangles; want %d, %d",
				i, m.NumPoints(), m.NumTriangles(), want[i].points, want[i].triangles)
		}
	}
}

func TestFromColorHeights(t *testing.T) {
	const rgba = 0x102030ff
	data := make([]byte, 4*4*4)
	for i := 0; i < len(data); i += 4 {
		data[i], data[i+1], data[i+2], data[i+3] = 0x10, 0x20, 0x30, 0xff
	}

	meshes, err := FromColor(data, 4, 4, 2, rgba, 4, Heights)
	if err != nil {
		t.Fatal(err)
	}
	m := meshes.Mesh(0)
	if m.NumTriangles() != 8 {
		t.Fatalf("%d triangles; want 8", m.NumTriangles())
	}
	for i := range m.NumPoints() {
		if z := m.Height(i); z != 1 {
			t.Errorf("vertex %d: z = %g; want 1", i, z)
		}
	}
}

func TestFromColorSinglePlane(t *testing.T) {
	data := []byte{
		7, 7, 0, 0,
		7, 7, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	meshes, err := FromColor(data, 4, 4, 2, 7, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	m := meshes.Mesh(0)
	checkMesh(t, m, 2, 2)
	if m.NumTriangles() == 0 {
		t.Error("no triangles for the matching block")
	}
}

func TestFlagsString(t *testing.T) {
	cases := []struct {
		f    Flags
		want string
	}{
		{0, "0"},
		{Invert, "Invert"},
		{Invert | Dual, "Invert|Dual"},
		{Heights | 1<<3, "Heights|0x8"},
	}
	for _, c := range cases {
		if got := c.f.String(); got != c.want {
			t.Errorf("Flags(%d).String() = %q; want %q", int(c.f), got, c.want)
		}
	}
}
