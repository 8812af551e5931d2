package torosphere

import "math"

// Geometry holds every analytic quantity derived from a validated set of
// head Parameters. Values are computed once by ComputeGeometry and read
// thereafter.
//
// The outer arcs (radius Rc+T and Rk+T) share the same centre points as
// the inner arcs, so Alpha and PhiT apply to both surfaces. This is the
// uniform normal-offset (parallel curve) property.
type Geometry struct {
	Params Parameters

	Zsc   float64 // crown sphere centre z-coordinate, typically negative
	Alpha float64 // knuckle arc sweep angle, rad, from horizontal to tangency
	PhiT  float64 // crown arc polar angle to tangency point, rad, from apex

	Rkc float64 // knuckle ring centre, radial
	Zkc float64 // knuckle ring centre, axial

	Rt    float64 // inner tangency point, radial
	Zt    float64 // inner tangency point, axial
	RtOut float64 // outer tangency point, radial
	ZtOut float64 // outer tangency point, axial

	ZApexInner float64 // z at the inner apex (r = 0)
	ZApexOuter float64 // z at the outer apex (r = 0)
}

// ComputeGeometry validates p and derives the head geometry.
//
// Zsc follows from the tangency condition
//
//	distance(crown centre, knuckle centre) = Rc - Rk
//
// and is frequently negative for typical proportions (e.g. Rc = D): only
// a shallow spherical cap, not a full hemisphere, forms the dome.
func ComputeGeometry(p Parameters) (Geometry, error) {
	if err := Validate(p); err != nil {
		return Geometry{}, err
	}

	rb := p.D/2 - p.Rk // knuckle centre radius, also the ratio numerator
	zsc := p.H - math.Sqrt((p.Rc-p.Rk)*(p.Rc-p.Rk)-rb*rb)

	// Alpha and PhiT are complementary by construction. Both are computed
	// from the shared ratio rather than one from the other so round-off
	// is symmetric; tests verify Alpha+PhiT == pi/2.
	ratio := rb / (p.Rc - p.Rk)
	alpha := math.Acos(ratio)
	phiT := math.Asin(ratio)

	rt := p.Rc * rb / (p.Rc - p.Rk)
	rtOut := (p.Rc + p.T) * rb / (p.Rc - p.Rk)

	return Geometry{
		Params: p,
		Zsc:    zsc,
		Alpha:  alpha,
		PhiT:   phiT,
		Rkc:    rb,
		Zkc:    p.H,
		Rt:     rt,
		Zt:     zsc + math.Sqrt(p.Rc*p.Rc-rt*rt),
		RtOut:  rtOut,
		ZtOut:  zsc + math.Sqrt((p.Rc+p.T)*(p.Rc+p.T)-rtOut*rtOut),

		ZApexInner: zsc + p.Rc,
		ZApexOuter: zsc + p.Rc + p.T,
	}, nil
}

// DomeHeight returns the inner apex height above the top of the
// straight flange (z = h), the usual quoted dome depth.
func (g Geometry) DomeHeight() float64 {
	return g.ZApexInner - g.Params.H
}
