package interpolate

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/phil-mansfield/tispline/math/mat"
)

var (
	// ErrInsufficientData is returned when a spline is given fewer than three
	// samples.
	ErrInsufficientData = errors.New("interpolate: need at least 3 samples")
	// ErrZeroWidth is returned when two neighboring samples share an x value.
	// It wraps mat.ErrSingular, since the resulting system cannot be solved.
	ErrZeroWidth = fmt.Errorf("interpolate: zero-width interval: %w", mat.ErrSingular)
	// ErrNotFitted is returned by queries on a Spline without a fit.
	ErrNotFitted = errors.New("interpolate: spline has not been fitted")
	// ErrStepCount is returned when a curve is requested with fewer than one
	// step.
	ErrStepCount = errors.New("interpolate: step count must be positive")
)

// Cubic holds the coefficients of
//
//	f(x) = C3*x^3 + C2*x^2 + C1*x + C0
//
// Note that x is the absolute position, not the offset from the start of the
// interval. A Cubic is only valid within its own interval.
type Cubic struct {
	C0, C1, C2, C3 float64
}

// Spline is a natural cubic spline through a table of samples: the second
// derivative vanishes at both ends of the table.
//
// The samples must be sorted in strictly increasing order in x. This is not
// checked. Unsorted tables produce meaningless (but finite) fits unless the
// resulting system happens to be singular.
type Spline struct {
	samples []Sample
	sys *System
	y2s []float64
	coeffs []Cubic

	lin *Linear
}

// NewSpline creates a spline based off a table of samples. pts is copied.
func NewSpline(pts []Sample) (*Spline, error) {
	sp := &Spline{}
	if _, err := sp.Load(pts); err != nil { return nil, err }
	return sp, nil
}

// Load replaces the samples of the spline and refits it, returning a copy of
// the stored samples.
//
// All previous state is discarded before fitting. If the fit fails, the
// spline is left empty and the error is returned.
func (sp *Spline) Load(pts []Sample) ([]Sample, error) {
	*sp = Spline{}

	samples := slices.Clone(pts)
	sys, y2s, coeffs, err := fit(samples)
	if err != nil { return nil, err }

	xs, ys := SplitSamples(samples)
	sp.samples, sp.sys, sp.y2s, sp.coeffs = samples, sys, y2s, coeffs
	sp.lin = NewLinear(xs, ys)

	return sp.Samples(), nil
}

// fit builds and solves the second derivative system and derives the
// coefficients of every interval. Nothing is returned unless every step
// succeeds.
func fit(pts []Sample) (*System, []float64, []Cubic, error) {
	sys, err := NewSystem(pts)
	if err != nil { return nil, nil, nil, err }

	y2s, err := sys.Solve()
	if err != nil {
		return nil, nil, nil, fmt.Errorf(
			"solving %d x %d spline system: %w", sys.Order(), sys.Order(), err,
		)
	}

	coeffs := make([]Cubic, len(pts) - 1)
	for i := range coeffs {
		coeffs[i] = cubicCoeffs(pts[i], pts[i+1], y2s[i], y2s[i+1])
	}

	return sys, y2s, coeffs, nil
}

// cubicCoeffs expands the standard spline segment
//
//	f(x) = z0 (xb-x)^3/6h + z1 (x-xa)^3/6h +
//	       (ya/h - z0 h/6)(xb-x) + (yb/h - z1 h/6)(x-xa)
//
// into powers of x.
func cubicCoeffs(a, b Sample, z0, z1 float64) Cubic {
	xa, xb := a.X, b.X
	h := xb - xa

	return Cubic{
		C3: (z1 - z0) / (6*h),
		C2: (z0*xb - z1*xa) / (2*h),
		C1: (z1*xa*xa - z0*xb*xb) / (2*h) + (b.Y - a.Y)/h - h*(z1 - z0)/6,
		C0: (z0*xb*xb*xb - z1*xa*xa*xa) / (6*h) + (a.Y*xb - b.Y*xa)/h +
			h*(z1*xa - z0*xb)/6,
	}
}

// Len returns the number of samples in the spline.
func (sp *Spline) Len() int { return len(sp.samples) }

// Fitted returns true if the spline holds a usable fit.
func (sp *Spline) Fitted() bool { return len(sp.coeffs) > 0 }

// Samples returns a copy of the spline's samples.
func (sp *Spline) Samples() []Sample { return slices.Clone(sp.samples) }

// Coeffs returns a copy of the per-interval coefficients. Coeffs()[i] is
// valid between Samples()[i].X and Samples()[i+1].X.
func (sp *Spline) Coeffs() []Cubic { return slices.Clone(sp.coeffs) }

// SecondDerivs returns a copy of the second derivative at every knot.
func (sp *Spline) SecondDerivs() []float64 { return slices.Clone(sp.y2s) }

// System returns the linear system that was solved for the current fit, as it
// was before elimination. It must not be modified.
func (sp *Spline) System() *System { return sp.sys }

// Flatten returns the coefficients as [c0_0, c1_0, c2_0, c3_0, c0_1, ...].
func (sp *Spline) Flatten() []float64 {
	out := make([]float64, 0, 4*len(sp.coeffs))
	for _, c := range sp.coeffs {
		out = append(out, c.C0, c.C1, c.C2, c.C3)
	}
	return out
}
