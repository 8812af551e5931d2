package torosphere

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrNegativeProfileRadius is returned by Revolve when the source
// profile reaches into r < 0; a solid of revolution is undefined there.
var ErrNegativeProfileRadius = errors.New("profile r values must be >= 0 for revolution")

// Mesh is the structured surface grid of a revolved profile.
//
// Grid arrays have shape (rows, nAzimuthal+1):
//
//	axis 0 (rows)    : meridional direction, along the source profile
//	axis 1 (columns) : azimuthal direction, angle theta about the z axis
//
// The last column repeats the first (theta = 2π ≡ 0) so azimuthal
// closure is explicit rather than implied by wraparound; when the source
// profile is closed the first and last rows coincide the same way. Rows
// with r = 0 collapse to a single point for every column: degenerate
// poles, not an error.
type Mesh struct {
	X, Y, Z [][]float64 // cartesian grids, X[i][j] = r[i]·cos(theta[j])

	R     []float64 // source profile, radial
	Zprof []float64 // source profile, axial
	Theta []float64 // azimuthal angles, linspace(0, 2π, nAzimuthal+1)

	Geom Geometry // derived geometry the mesh was built from (zero for raw Revolve)

	NMeridional int // arc samples per segment of the source profile
	NAzimuthal  int // azimuthal subdivisions (columns - 1)
}

// Revolve builds the surface of revolution of an axisymmetric profile
// about the z axis:
//
//	X[i][j] = r[i]·cos(theta[j])
//	Y[i][j] = r[i]·sin(theta[j])
//	Z[i][j] = z[i]
//
// The construction is a rank-1 outer product; no cell depends on any
// other. nAzimuthal < 1 panics; mismatched r/z lengths panic.
func Revolve(r, z []float64, nAzimuthal int) (*Mesh, error) {
	if nAzimuthal < 1 {
		panic("number of azimuthal subdivisions < 1")
	}
	if len(r) != len(z) {
		panic("profile r and z lengths mismatch")
	}
	for i, ri := range r {
		if ri < 0 {
			return nil, fmt.Errorf("%w (r[%d]=%g)", ErrNegativeProfileRadius, i, ri)
		}
	}

	theta := linspace(0, tau, nAzimuthal+1)
	sin := make([]float64, len(theta))
	cos := make([]float64, len(theta))
	for j, th := range theta {
		sin[j], cos[j] = math.Sincos(th)
	}

	m := &Mesh{
		X:          make([][]float64, len(r)),
		Y:          make([][]float64, len(r)),
		Z:          make([][]float64, len(r)),
		R:          r,
		Zprof:      z,
		Theta:      theta,
		NAzimuthal: nAzimuthal,
	}
	for i, ri := range r {
		xi := make([]float64, len(theta))
		yi := make([]float64, len(theta))
		zi := make([]float64, len(theta))
		for j := range theta {
			xi[j] = ri * cos[j]
			yi[j] = ri * sin[j]
			zi[j] = z[i]
		}
		m.X[i], m.Y[i], m.Z[i] = xi, yi, zi
	}
	return m, nil
}

// BuildMesh computes the complete structured surface mesh of a
// torospherical head: derived geometry, closed cross-section with
// nMeridional samples per arc, revolved through nAzimuthal azimuthal
// subdivisions. Either every artifact is produced or the parameter
// error is returned with nothing built.
func BuildMesh(p Parameters, nMeridional, nAzimuthal int) (*Mesh, error) {
	g, err := ComputeGeometry(p)
	if err != nil {
		return nil, err
	}
	prof, err := CrossSection(p, nMeridional)
	if err != nil {
		return nil, err
	}
	m, err := Revolve(prof.R(), prof.Z(), nAzimuthal)
	if err != nil {
		return nil, err
	}
	m.Geom = g
	m.NMeridional = nMeridional
	return m, nil
}

// Rows returns the number of meridional rows (source profile points).
func (m *Mesh) Rows() int { return len(m.X) }

// Cols returns the number of azimuthal columns, seam column included.
func (m *Mesh) Cols() int { return len(m.Theta) }

// At returns the mesh point at row i, column j.
func (m *Mesh) At(i, j int) r3.Vec {
	return r3.Vec{X: m.X[i][j], Y: m.Y[i][j], Z: m.Z[i][j]}
}

// NQuads returns the number of quadrilateral cells in the surface grid.
func (m *Mesh) NQuads() int {
	if m.Rows() == 0 {
		return 0
	}
	return (m.Rows() - 1) * (m.Cols() - 1)
}

// RMax returns the maximum radial extent of the mesh. For a head mesh
// this is the outer flange radius D/2 + t.
func (m *Mesh) RMax() float64 {
	max := 0.0
	for _, ri := range m.R {
		if ri > max {
			max = ri
		}
	}
	return max
}

// ZMin returns the minimum axial coordinate of the mesh.
func (m *Mesh) ZMin() float64 {
	min := math.Inf(1)
	for _, zi := range m.Zprof {
		if zi < min {
			min = zi
		}
	}
	return min
}

// ZMax returns the maximum axial coordinate of the mesh.
func (m *Mesh) ZMax() float64 {
	max := math.Inf(-1)
	for _, zi := range m.Zprof {
		if zi > max {
			max = zi
		}
	}
	return max
}
