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

// Command msquares converts a grayscale image into a triangle mesh.
//
// Usage:
//
//	msquares [flags] input.png output.obj
//
// The output format is chosen by the file extension: ".obj" writes a
// Wavefront OBJ file, ".pdf" writes a preview of the triangles. If the
// image size is not a multiple of the cell size, the image is resampled
// to the next larger multiple.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"seehuhn.de/go/msquares"
	"seehuhn.de/go/msquares/field"
	"seehuhn.de/go/msquares/meshpdf"
)

func main() {
	cellSize := flag.Int("cell", 4, "cell size in pixels")
	threshold := flag.Float64("threshold", 0.5, "luminance threshold in [0, 1]")
	invert := flag.Bool("invert", false, "triangulate the dark instead of the light region")
	heights := flag.Bool("heights", false, "use the luminance as z-coordinate")
	verbose := flag.Bool("v", false, "log debug output to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] input output.{obj,pdf}\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	msquares.SetLogger(logger)

	var flags msquares.Flags
	if *invert {
		flags |= msquares.Invert
	}
	if *heights {
		flags |= msquares.Heights
	}

	err := run(flag.Arg(0), flag.Arg(1), *cellSize, float32(*threshold), flags, logger)
	if err != nil {
		logger.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func run(in, out string, cellSize int, threshold float32, flags msquares.Flags, logger *slog.Logger) error {
	if cellSize < 1 {
		return fmt.Errorf("invalid cell size %d", cellSize)
	}

	img, err := loadImage(in)
	if err != nil {
		return err
	}

	b := img.Bounds()
	w, h := field.AlignedSize(b.Dx(), b.Dy(), cellSize)
	var f *field.Field
	if w != b.Dx() || h != b.Dy() {
		logger.Info("resampling image", "from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), "to", fmt.Sprintf("%dx%d", w, h))
		f = field.Resample(img, w, h)
	} else {
		f = field.FromImage(img)
	}

	meshes, err := msquares.FromGrayscale(f.Data, f.Width, f.Height, cellSize, threshold, flags)
	if err != nil {
		return err
	}
	defer meshes.Free()
	m := meshes.Mesh(0)
	logger.Info("triangulated", "points", m.NumPoints(), "triangles", m.NumTriangles())

	switch ext := strings.ToLower(filepath.Ext(out)); ext {
	case ".obj":
		return writeOBJ(out, m)
	case ".pdf":
		return meshpdf.Write(out, m, nil)
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

func loadImage(fname string) (image.Image, error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return img, nil
}

func writeOBJ(fname string, m *msquares.Mesh) (err error) {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return m.WriteOBJ(f)
}
