package render

import (
	"io"

	"github.com/jaufderheide/torosphere"
	"gonum.org/v1/gonum/spatial/r3"
)

// meshTriangles streams the triangulation of a structured revolution
// grid: two triangles per quadrilateral cell, walking rows then columns.
// Quads touching a pole row (source radius zero) collapse one or both
// of their triangles; collapsed triangles are skipped rather than
// emitted as zero-area facets.
type meshTriangles struct {
	m    *torosphere.Mesh
	quad int // next quad to triangulate
}

// NewMeshRenderer returns a Renderer streaming the surface triangles of
// a revolution mesh.
func NewMeshRenderer(m *torosphere.Mesh) *meshTriangles {
	if m.Rows() < 2 || m.Cols() < 2 {
		panic("mesh too small to triangulate")
	}
	return &meshTriangles{m: m}
}

// ReadTriangles reads triangles into t, returning io.EOF once the grid
// is exhausted.
func (s *meshTriangles) ReadTriangles(t []Triangle) (int, error) {
	if len(t) < 2 {
		panic("triangle buffer smaller than a single quad")
	}
	nq := s.m.NQuads()
	cols := s.m.Cols() - 1
	n := 0
	for n+2 <= len(t) && s.quad < nq {
		i, j := s.quad/cols, s.quad%cols
		a := s.m.At(i, j)
		b := s.m.At(i+1, j)
		c := s.m.At(i+1, j+1)
		d := s.m.At(i, j+1)
		for _, tri := range [2]Triangle{
			{V: [3]r3.Vec{a, b, c}},
			{V: [3]r3.Vec{a, c, d}},
		} {
			if !tri.Degenerate(0) {
				t[n] = tri
				n++
			}
		}
		s.quad++
	}
	if n == 0 && s.quad >= nq {
		return 0, io.EOF
	}
	return n, nil
}
