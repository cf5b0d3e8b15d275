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

package main

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(0, 0, color.Gray{})

	fname := filepath.Join(dir, "in.png")
	f, err := os.Create(fname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	return fname
}

func countOBJ(t *testing.T, fname string) (vertices, faces int) {
	t.Helper()

	data, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	for line := range strings.Lines(string(data)) {
		switch {
		case strings.HasPrefix(line, "v "):
			vertices++
		case strings.HasPrefix(line, "f "):
			faces++
		}
	}
	return vertices, faces
}

func TestRunOBJ(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, 4, 4)
	out := filepath.Join(dir, "out.obj")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(in, out, 2, 0.5, 0, logger); err != nil {
		t.Fatal(err)
	}
	v, f := countOBJ(t, out)
	// the dark pixel cuts off the north-west corner of the first cell
	if v != 10 || f != 9 {
		t.Errorf("%d vertices, %d faces; want 10, 9", v, f)
	}
}

func TestRunResample(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, 5, 5)
	out := filepath.Join(dir, "out.obj")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(in, out, 2, 0.5, 0, logger); err != nil {
		t.Fatal(err)
	}
	v, f := countOBJ(t, out)
	if v == 0 || f == 0 {
		t.Errorf("empty mesh after resampling")
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	in := writePNG(t, dir, 4, 4)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if err := run(in, filepath.Join(dir, "out.txt"), 2, 0.5, 0, logger); err == nil {
		t.Error("unsupported extension accepted")
	}
	if err := run(in, filepath.Join(dir, "out.obj"), 0, 0.5, 0, logger); err == nil {
		t.Error("zero cell size accepted")
	}
	if err := run(filepath.Join(dir, "missing.png"), filepath.Join(dir, "out.obj"), 2, 0.5, 0, logger); err == nil {
		t.Error("missing input accepted")
	}
}
