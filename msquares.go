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
	"fmt"
	"strings"
)

// Flags select variants of the triangulation.
type Flags int

const (
	// Invert swaps inside and outside.
	Invert Flags = 1 << 0

	// Dual adds a second mesh for the complement of the region
	// after each regular mesh.
	Dual Flags = 1 << 1

	// Heights sets the z-coordinate of every vertex from the sampled
	// data instead of zero. Edge midpoints get the mean of the two
	// adjacent corners.
	Heights Flags = 1 << 5

	// Bits 2, 3 and 4 are reserved.
	validFlags = Invert | Dual | Heights
)

func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	for _, x := range []struct {
		flag Flags
		name string
	}{{Invert, "Invert"}, {Dual, "Dual"}, {Heights, "Heights"}} {
		if f&x.flag != 0 {
			parts = append(parts, x.name)
			f &^= x.flag
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", int(f)))
	}
	return strings.Join(parts, "|")
}

var (
	// ErrDimensions indicates that the raster size is not a positive
	// multiple of the cell size.
	ErrDimensions = errors.New("msquares: width and height must be positive multiples of the cell size")

	// ErrDataSize indicates that the data slice does not match the
	// raster size.
	ErrDataSize = errors.New("msquares: data length does not match the raster size")

	// ErrFlags indicates that reserved flag bits were set.
	ErrFlags = errors.New("msquares: unsupported flags")

	// ErrPixelSize indicates an unsupported number of bytes per pixel.
	ErrPixelSize = errors.New("msquares: bytes per pixel must be between 1 and 4")

	// ErrTooManyPoints indicates that a mesh would need vertex indices
	// which do not fit into 16 bits.
	ErrTooManyPoints = errors.New("msquares: too many points for 16-bit indices")
)

// CheckDimensions verifies that a width × height raster can be divided
// into square cells of the given size.
func CheckDimensions(width, height, cellSize int) error {
	if cellSize < 1 || width <= 0 || height <= 0 ||
		width%cellSize != 0 || height%cellSize != 0 {
		return fmt.Errorf("%w: %dx%d with cell size %d",
			ErrDimensions, width, height, cellSize)
	}
	return nil
}

// FromGrayscale triangulates the region of a grayscale raster where the
// values exceed threshold.
//
// The data is in row-major order, top row first. Width and height must be
// multiples of cellSize. The result holds one mesh, or two if the Dual
// flag is set. The mesh spans [0, width/s] × [0, height/s] with
// s = max(width, height); the y coordinate grows with the raster row.
func FromGrayscale(data []float32, width, height, cellSize int, threshold float32, flags Flags) (*MeshList, error) {
	return FromLevels(data, width, height, cellSize, []float32{threshold}, flags)
}

// FromLevels triangulates a grayscale raster once for every threshold.
// Mesh i covers the region where the values exceed thresholds[i].
// With the Dual flag, each mesh is followed by its complement.
func FromLevels(data []float32, width, height, cellSize int, thresholds []float32, flags Flags) (*MeshList, error) {
	if err := checkInput(len(data), width, height, cellSize, 1, flags); err != nil {
		return nil, err
	}

	value := func(i int) float32 { return data[i] }
	res := &MeshList{}
	for _, threshold := range thresholds {
		g := &grid{
			width:    width,
			height:   height,
			cellSize: cellSize,
			inside:   func(i int) bool { return data[i] > threshold },
		}
		if flags&Heights != 0 {
			g.value = value
		}
		if err := res.appendMeshes(g, flags); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// FromColor triangulates the region of an 8-bit color raster where the
// pixels equal color.
//
// Each pixel occupies bpp bytes (1 to 4). The color is packed with the
// first byte of a pixel in the most significant position, e.g. 0xRRGGBB
// for bpp = 3. With the Heights flag, the z-coordinate is taken from the
// last byte of each pixel, scaled to [0, 1].
func FromColor(data []byte, width, height, cellSize int, color uint32, bpp int, flags Flags) (*MeshList, error) {
	return FromColors(data, width, height, cellSize, []uint32{color}, bpp, flags)
}

// FromColors triangulates an 8-bit color raster once for every color.
// Mesh i covers the pixels equal to colors[i].
func FromColors(data []byte, width, height, cellSize int, colors []uint32, bpp int, flags Flags) (*MeshList, error) {
	if bpp < 1 || bpp > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrPixelSize, bpp)
	}
	if err := checkInput(len(data), width, height, cellSize, bpp, flags); err != nil {
		return nil, err
	}

	pixel := func(i int) uint32 {
		var c uint32
		for _, b := range data[i*bpp : i*bpp+bpp] {
			c = c<<8 | uint32(b)
		}
		return c
	}
	value := func(i int) float32 { return float32(data[i*bpp+bpp-1]) / 255 }

	res := &MeshList{}
	for _, color := range colors {
		g := &grid{
			width:    width,
			height:   height,
			cellSize: cellSize,
			inside:   func(i int) bool { return pixel(i) == color },
		}
		if flags&Heights != 0 {
			g.value = value
		}
		if err := res.appendMeshes(g, flags); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func checkInput(n, width, height, cellSize, bpp int, flags Flags) error {
	if err := CheckDimensions(width, height, cellSize); err != nil {
		return err
	}
	if n != width*height*bpp {
		return fmt.Errorf("%w: got %d values for %dx%d", ErrDataSize, n, width, height)
	}
	if flags&^validFlags != 0 {
		return fmt.Errorf("%w: %s", ErrFlags, flags)
	}
	return nil
}

// appendMeshes marches g and appends the mesh, followed by the mesh of
// the complement if the Dual flag is set.
func (l *MeshList) appendMeshes(g *grid, flags Flags) error {
	base := g.inside
	inverted := func(i int) bool { return !base(i) }

	if flags&Invert != 0 {
		g.inside = inverted
	}
	m, err := march(g)
	if err != nil {
		return err
	}
	l.meshes = append(l.meshes, m)

	if flags&Dual != 0 {
		if flags&Invert != 0 {
			g.inside = base
		} else {
			g.inside = inverted
		}
		m, err := march(g)
		if err != nil {
			return err
		}
		l.meshes = append(l.meshes, m)
	}
	return nil
}
