package render

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Triangle is a 3D triangle with vertices in counter-clockwise order
// when viewed from outside the surface.
type Triangle struct {
	V [3]r3.Vec
}

// Normal returns the unit normal of the triangle by the right-hand rule.
func (t Triangle) Normal() r3.Vec {
	e1 := r3.Sub(t.V[1], t.V[0])
	e2 := r3.Sub(t.V[2], t.V[0])
	return r3.Unit(r3.Cross(e1, e2))
}

// Degenerate reports whether any two vertices coincide within tol.
func (t Triangle) Degenerate(tol float64) bool {
	return equalWithin(t.V[0], t.V[1], tol) ||
		equalWithin(t.V[1], t.V[2], tol) ||
		equalWithin(t.V[2], t.V[0], tol)
}

func equalWithin(a, b r3.Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}

// Renderer is a triangle source. ReadTriangles follows the io.Reader
// contract: it fills t with up to len(t) triangles and returns io.EOF
// once the source is exhausted.
type Renderer interface {
	ReadTriangles(t []Triangle) (int, error)
}
