// Package torosphere computes the wall cross-section geometry of a
// torospherical pressure-vessel head and revolves it into a structured
// surface mesh.
//
// Coordinate convention:
//
//	r : radial distance from the centreline axis (r >= 0)
//	z : axial distance, z = 0 at the open flange end, positive toward apex
//
// All dimensions must use consistent units (e.g. millimetres throughout).
package torosphere

import (
	"errors"
	"fmt"
	"math"
)

const (
	pi  = math.Pi
	tau = 2 * pi
	// tolerance guards the tangency ratio against the acos/asin domain edge.
	tolerance = 1e-9
)

// Parameters are the five physical inputs defining a torospherical head.
// The struct is a plain value and is never mutated by this package.
type Parameters struct {
	D  float64 // inside diameter
	Rc float64 // crown (spherical cap) radius, inner surface
	Rk float64 // knuckle radius, inner surface
	T  float64 // shell thickness
	H  float64 // straight flange height
}

// Feasibility errors returned by Validate, one per violated constraint.
// Returned errors wrap these sentinels and carry the offending values;
// match with errors.Is.
var (
	ErrNonPositiveDiameter      = errors.New("inside diameter D must be positive")
	ErrNonPositiveThickness     = errors.New("shell thickness t must be positive")
	ErrNonPositiveKnuckleRadius = errors.New("knuckle radius r_k must be positive")
	ErrNegativeFlangeHeight     = errors.New("straight flange height h must be non-negative")
	ErrCrownTooSmallForBore     = errors.New("crown radius R_c must be >= D/2")
	ErrKnuckleExceedsBore       = errors.New("knuckle radius r_k must be < D/2")
	ErrThicknessExceedsKnuckle  = errors.New("shell thickness t must be < knuckle radius r_k")
	ErrNoTangencySolution       = errors.New("crown sphere cannot span the knuckle")
)

// Validate checks the head parameters for geometric feasibility. Checks
// run in a fixed order and the first violated constraint is returned.
// A nil result guarantees the derived geometry exists and is real valued.
func Validate(p Parameters) error {
	switch {
	case p.D <= 0:
		return fmt.Errorf("%w (got D=%g)", ErrNonPositiveDiameter, p.D)
	case p.T <= 0:
		return fmt.Errorf("%w (got t=%g)", ErrNonPositiveThickness, p.T)
	case p.Rk <= 0:
		return fmt.Errorf("%w (got r_k=%g)", ErrNonPositiveKnuckleRadius, p.Rk)
	case p.H < 0:
		return fmt.Errorf("%w (got h=%g)", ErrNegativeFlangeHeight, p.H)
	case p.Rc < p.D/2:
		return fmt.Errorf("%w (R_c=%g, D/2=%g)", ErrCrownTooSmallForBore, p.Rc, p.D/2)
	case p.Rk >= p.D/2:
		return fmt.Errorf("%w (r_k=%g, D/2=%g)", ErrKnuckleExceedsBore, p.Rk, p.D/2)
	case p.T >= p.Rk:
		return fmt.Errorf("%w (t=%g, r_k=%g): outer knuckle would self-intersect", ErrThicknessExceedsKnuckle, p.T, p.Rk)
	}
	// The ratio is the cosine of the knuckle sweep angle. At 1 the crown
	// sphere degenerates onto the knuckle centre line; floating noise a
	// hair below 1 is just as unusable, so reject within tolerance.
	ratio := (p.D/2 - p.Rk) / (p.Rc - p.Rk)
	if ratio >= 1-tolerance {
		return fmt.Errorf("%w: (D/2 - r_k)/(R_c - r_k) = %.6f >= 1; increase R_c or decrease r_k", ErrNoTangencySolution, ratio)
	}
	return nil
}

// DtoR converts degrees to radians.
func DtoR(degrees float64) float64 {
	return (pi / 180) * degrees
}

// RtoD converts radians to degrees.
func RtoD(radians float64) float64 {
	return (180 / pi) * radians
}
