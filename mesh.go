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
	"bufio"
	"io"
	"iter"
	"math"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Mesh is a triangle mesh produced by marching squares.
//
// The layout can be uploaded to a graphics buffer without repacking.
// Points holds Dim coordinates per vertex, Triangles holds three vertex
// indices per triangle. Triangles are oriented counter-clockwise in the
// xy-plane.
type Mesh struct {
	Points    []float32
	Triangles []uint16
	Dim       int // number of coordinates per point, 2 or 3
}

// NumPoints returns the number of vertices in the mesh.
func (m *Mesh) NumPoints() int {
	if m.Dim == 0 {
		return 0
	}
	return len(m.Points) / m.Dim
}

// NumTriangles returns the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// Point returns the xy-coordinates of vertex i.
func (m *Mesh) Point(i int) vec.Vec2 {
	p := m.Points[i*m.Dim:]
	return vec.Vec2{X: float64(p[0]), Y: float64(p[1])}
}

// Height returns the z-coordinate of vertex i, or 0 for a 2D mesh.
func (m *Mesh) Height(i int) float32 {
	if m.Dim < 3 {
		return 0
	}
	return m.Points[i*m.Dim+2]
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]int {
	t := m.Triangles[3*i : 3*i+3]
	return [3]int{int(t[0]), int(t[1]), int(t[2])}
}

// Bounds returns the smallest rectangle containing all vertices.
// The result is the zero rectangle for an empty mesh.
func (m *Mesh) Bounds() rect.Rect {
	n := m.NumPoints()
	if n == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{
		LLx: math.Inf(+1), LLy: math.Inf(+1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for i := range n {
		p := m.Point(i)
		b.LLx = min(b.LLx, p.X)
		b.LLy = min(b.LLy, p.Y)
		b.URx = max(b.URx, p.X)
		b.URy = max(b.URy, p.Y)
	}
	return b
}

// SignedArea returns twice the signed area of triangle i.
// The value is positive for counter-clockwise triangles.
func (m *Mesh) SignedArea(i int) float64 {
	t := m.Triangle(i)
	a, b, c := m.Point(t[0]), m.Point(t[1]), m.Point(t[2])
	u := b.Sub(a)
	v := c.Sub(a)
	return u.X*v.Y - u.Y*v.X
}

// Area returns the total area covered by the triangles.
func (m *Mesh) Area() float64 {
	var sum float64
	for i := range m.NumTriangles() {
		sum += m.SignedArea(i)
	}
	return sum / 2
}

// Transform applies the affine map M to the xy-coordinates of all vertices.
// If M reverses orientation, the triangles become clockwise.
func (m *Mesh) Transform(M matrix.Matrix) {
	for i := 0; i+1 < len(m.Points); i += m.Dim {
		x, y := float64(m.Points[i]), float64(m.Points[i+1])
		m.Points[i] = float32(M[0]*x + M[2]*y + M[4])
		m.Points[i+1] = float32(M[1]*x + M[3]*y + M[5])
	}
}

// WriteOBJ writes the mesh in Wavefront OBJ format.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	var buf []byte
	for i := range m.NumPoints() {
		p := m.Points[i*m.Dim : (i+1)*m.Dim]
		buf = append(buf[:0], 'v')
		for k := range 3 {
			var c float32
			if k < len(p) {
				c = p[k]
			}
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, float64(c), 'g', -1, 32)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	for i := range m.NumTriangles() {
		t := m.Triangle(i)
		buf = append(buf[:0], 'f')
		for _, idx := range t {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// MeshList holds the meshes produced by one call.
// The list owns its meshes.
type MeshList struct {
	meshes []*Mesh
}

// Count returns the number of meshes in the list.
func (l *MeshList) Count() int {
	return len(l.meshes)
}

// Mesh returns mesh n. The mesh remains owned by the list.
// Mesh panics if n is out of range.
func (l *MeshList) Mesh(n int) *Mesh {
	if n < 0 || n >= len(l.meshes) {
		panic("msquares: mesh index " + strconv.Itoa(n) + " out of range")
	}
	return l.meshes[n]
}

// All iterates over the meshes in the list.
func (l *MeshList) All() iter.Seq2[int, *Mesh] {
	return func(yield func(int, *Mesh) bool) {
		for i, m := range l.meshes {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Free releases the storage of all meshes in the list.
// Afterwards the list is empty and meshes obtained from it have no
// points and no triangles.
func (l *MeshList) Free() {
	for _, m := range l.meshes {
		m.Points = nil
		m.Triangles = nil
	}
	clear(l.meshes)
	l.meshes = nil
}
