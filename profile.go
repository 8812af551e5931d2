package torosphere

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// SegmentID identifies one of the eight profile segments. The declared
// order is the counter-clockwise traversal order of the cross-section:
// inner surface from apex to flange, across the rim, outer surface back
// up, then closed along the axis.
type SegmentID int

const (
	InnerCrown SegmentID = iota // inner crown arc, phi 0 -> phi_t
	InnerKnuckle                // inner knuckle arc, theta alpha -> 0
	InnerFlange                 // inner straight flange, z h -> 0
	BottomRim                   // bottom rim, r D/2 -> D/2+t
	OuterFlange                 // outer straight flange, z 0 -> h
	OuterKnuckle                // outer knuckle arc, theta 0 -> alpha
	OuterCrown                  // outer crown arc, phi phi_t -> 0
	ApexFlat                    // apex flat, r=0, z outer apex -> inner apex

	numSegments
)

var segmentNames = [numSegments]string{
	InnerCrown:   "Inner crown arc",
	InnerKnuckle: "Inner knuckle arc",
	InnerFlange:  "Inner straight flange",
	BottomRim:    "Bottom rim",
	OuterFlange:  "Outer straight flange",
	OuterKnuckle: "Outer knuckle arc",
	OuterCrown:   "Outer crown arc",
	ApexFlat:     "Apex flat",
}

func (id SegmentID) String() string {
	if id < 0 || id >= numSegments {
		return "unknown segment"
	}
	return segmentNames[id]
}

// Segment is one sampled profile segment. V holds the samples in
// traversal order as r2.Vec{X: r, Y: z}, both endpoints included.
type Segment struct {
	ID SegmentID
	V  []r2.Vec
}

// Profile is the closed cross-section polyline in the r-z half-plane.
// The first and last points are identical.
type Profile []r2.Vec

// R returns the radial coordinates of the profile.
func (p Profile) R() []float64 {
	r := make([]float64, len(p))
	for i, v := range p {
		r[i] = v.X
	}
	return r
}

// Z returns the axial coordinates of the profile.
func (p Profile) Z() []float64 {
	z := make([]float64, len(p))
	for i, v := range p {
		z[i] = v.Y
	}
	return z
}

// Closed reports whether the profile's first and last points coincide.
func (p Profile) Closed() bool {
	return len(p) > 1 && p[0] == p[len(p)-1]
}

// CrossSectionSegments samples the eight profile segments individually.
// Unlike CrossSection the segments are not de-duplicated at junctions;
// each includes both endpoints so zone identity survives for colouring
// and slicing. Arc segments carry nArc samples, straight segments 2.
// nArc < 1 panics.
func CrossSectionSegments(p Parameters, nArc int) ([]Segment, Geometry, error) {
	g, err := ComputeGeometry(p)
	if err != nil {
		return nil, Geometry{}, err
	}
	segs := segmentTable(g, nArc)
	return segs[:], g, nil
}

// CrossSection builds the closed 2D cross-section of the head.
//
// Segments are concatenated dropping the final sample of every segment
// except the last, then a copy of the very first sample is appended to
// close the loop. Each true geometric vertex therefore appears exactly
// once, with the single intentional repeat at the closure.
func CrossSection(p Parameters, nArc int) (Profile, error) {
	segs, _, err := CrossSectionSegments(p, nArc)
	if err != nil {
		return nil, err
	}
	return JoinSegments(segs), nil
}

// JoinSegments concatenates ordered segments into a closed profile using
// the junction de-duplication policy described at CrossSection.
func JoinSegments(segs []Segment) Profile {
	var n int
	for _, s := range segs {
		n += len(s.V) - 1
	}
	prof := make(Profile, 0, n+2)
	for i, s := range segs {
		if i == len(segs)-1 {
			prof = append(prof, s.V...)
		} else {
			prof = append(prof, s.V[:len(s.V)-1]...)
		}
	}
	return append(prof, prof[0])
}

// segmentTable generates all eight segments in traversal order. Every
// segment is "sample this parametric curve over this range", so one
// data table replaces any per-segment dispatch.
func segmentTable(g Geometry, nArc int) [numSegments]Segment {
	if nArc < 1 {
		panic("number of arc samples < 1")
	}
	p := g.Params
	return [numSegments]Segment{
		{InnerCrown, arcCrown(p.Rc, g.Zsc, 0, g.PhiT, nArc)},
		{InnerKnuckle, arcKnuckle(g.Rkc, g.Zkc, p.Rk, g.Alpha, 0, nArc)},
		{InnerFlange, segLine(p.D/2, p.H, p.D/2, 0)},
		{BottomRim, segLine(p.D/2, 0, p.D/2+p.T, 0)},
		{OuterFlange, segLine(p.D/2+p.T, 0, p.D/2+p.T, p.H)},
		{OuterKnuckle, arcKnuckle(g.Rkc, g.Zkc, p.Rk+p.T, 0, g.Alpha, nArc)},
		{OuterCrown, arcCrown(p.Rc+p.T, g.Zsc, g.PhiT, 0, nArc)},
		{ApexFlat, segLine(0, g.ZApexOuter, 0, g.ZApexInner)},
	}
}

// arcCrown samples n points on a crown (spherical) arc. phi is the polar
// angle from the +z axis, zero at the apex.
func arcCrown(radius, zsc, phi0, phi1 float64, n int) []r2.Vec {
	v := make([]r2.Vec, n)
	for i, phi := range linspace(phi0, phi1, n) {
		s, c := math.Sincos(phi)
		v[i] = r2.Vec{X: radius * s, Y: zsc + radius*c}
	}
	return v
}

// arcKnuckle samples n points on a knuckle (toroidal) arc. theta is
// measured from the positive-r axis at the knuckle ring centre:
// theta = 0 is the flange junction, theta = alpha the crown tangency.
func arcKnuckle(rkc, zkc, rk, theta0, theta1 float64, n int) []r2.Vec {
	v := make([]r2.Vec, n)
	for i, theta := range linspace(theta0, theta1, n) {
		s, c := math.Sincos(theta)
		v[i] = r2.Vec{X: rkc + rk*c, Y: zkc + rk*s}
	}
	return v
}

func segLine(r0, z0, r1, z1 float64) []r2.Vec {
	return []r2.Vec{{X: r0, Y: z0}, {X: r1, Y: z1}}
}

// linspace returns n values evenly spaced over [start, stop], both ends
// included. n==1 yields just the start value.
func linspace(start, stop float64, n int) []float64 {
	if n < 1 {
		panic("linspace needs at least one sample")
	}
	if n == 1 {
		return []float64{start}
	}
	dst := floats.Span(make([]float64, n), start, stop)
	// Step rounding must not creep into the endpoint: pole rows and
	// junction de-duplication rely on sweeps ending exactly at stop.
	dst[n-1] = stop
	return dst
}

// RowRange is the contiguous row-index range a segment occupies within
// the closed profile and any mesh revolved from it. Adjacent ranges
// share their boundary row: the junction sample belongs to both zones.
type RowRange struct {
	ID    SegmentID
	Start int // first row, inclusive
	End   int // last row, inclusive
}

// SegmentRowRanges maps each segment to its row range in the closed
// profile built with nArc samples per arc. It is a pure function of the
// sampling density, independent of the physical parameters, and follows
// from the junction de-duplication policy of CrossSection. The ranges
// tile [0, 4·nArc+1] exactly. nArc < 1 panics.
func SegmentRowRanges(nArc int) []RowRange {
	if nArc < 1 {
		panic("number of arc samples < 1")
	}
	n := nArc
	return []RowRange{
		{InnerCrown, 0, n - 1},
		{InnerKnuckle, n - 1, 2*n - 2},
		{InnerFlange, 2*n - 2, 2*n - 1},
		{BottomRim, 2*n - 1, 2 * n},
		{OuterFlange, 2 * n, 2*n + 1},
		{OuterKnuckle, 2*n + 1, 3 * n},
		{OuterCrown, 3 * n, 4*n - 1},
		{ApexFlat, 4*n - 1, 4*n + 1},
	}
}

// ProfileRows returns the number of rows in a closed profile built with
// nArc samples per arc, the explicit closure row included.
func ProfileRows(nArc int) int {
	return 4*nArc + 2
}
