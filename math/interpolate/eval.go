package interpolate

import (
	"fmt"
	"math"
)

// Eval computes the value of the spline at the given point.
//
// The interval used is the first one whose upper knot is >= x, so points below
// the table use the first cubic and points above it use the last one. Eval
// returns NaN if the spline has not been fitted.
func (sp *Spline) Eval(x float64) float64 {
	if !sp.Fitted() { return math.NaN() }
	c := sp.coeffs[sp.search(x)]
	return ((c.C3*x + c.C2)*x + c.C1)*x + c.C0
}

// EvalAll evaluates the spline at all the given x values. If an output array
// is given, the output is written to that array (the array is still returned
// as a convenience).
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = sp.Eval(x) }
	return out[0]
}

// Diff computes the derivative of the spline at the given point to the
// specified order. Interval selection is the same as Eval.
func (sp *Spline) Diff(x float64, order int) float64 {
	if !sp.Fitted() { return math.NaN() }
	c := sp.coeffs[sp.search(x)]

	switch order {
	case 0:
		return ((c.C3*x + c.C2)*x + c.C1)*x + c.C0
	case 1:
		return (3*c.C3*x + 2*c.C2)*x + c.C1
	case 2:
		return 6*c.C3*x + 2*c.C2
	case 3:
		return 6*c.C3
	default:
		return 0
	}
}

// search returns the index of the first interval whose upper knot is not
// smaller than x, or the last interval if there is no such knot.
func (sp *Spline) search(x float64) int {
	last := len(sp.coeffs) - 1
	for i := 0; i < last; i++ {
		if sp.samples[i+1].X >= x { return i }
	}
	return last
}

// Integral integrates each cubic exactly over its own interval and returns the
// sum. This is the spline estimate of the free energy difference.
func (sp *Spline) Integral() float64 {
	area := 0.0
	for i, c := range sp.coeffs {
		xa, xb := sp.samples[i].X, sp.samples[i+1].X
		area += c.C3*(pow4(xb) - pow4(xa))/4 +
			c.C2*(xb*xb*xb - xa*xa*xa)/3 +
			c.C1*(xb*xb - xa*xa)/2 +
			c.C0*(xb - xa)
	}
	return area
}

func pow4(x float64) float64 { x2 := x*x; return x2*x2 }

// Quadrature returns the trapezoidal estimate of the integral, computed
// directly from the samples and independent of the fit.
func (sp *Spline) Quadrature() float64 {
	if sp.lin == nil { return 0 }
	return sp.lin.Integral()
}

// Estimate evaluates the spline at steps+1 evenly spaced points starting at
// x = 0 with a spacing of 1/steps, which covers the lambda range [0, 1]. The
// points are generated by repeated addition of the spacing.
//
// The range does not follow the sample table: points outside the table are
// evaluated with the nearest end cubic.
func (sp *Spline) Estimate(steps int) ([]Sample, error) {
	if !sp.Fitted() {
		return nil, ErrNotFitted
	} else if steps < 1 {
		return nil, fmt.Errorf("%d steps requested: %w", steps, ErrStepCount)
	}

	dx := 1 / float64(steps)
	pts := make([]Sample, steps + 1)
	x := 0.0
	for i := range pts {
		pts[i] = Sample{x, sp.Eval(x)}
		x += dx
	}
	return pts, nil
}
