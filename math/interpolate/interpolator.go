/*package interpolate fits smooth analytic functions through tabulated data and
integrates them.

The main type is Spline, a natural cubic spline which is used to estimate
free energy differences from thermodynamic integration curves (dG/dlambda
sampled at a handful of lambda values). Linear is a piecewise linear
interpolator whose integral is the trapezoidal estimate that splines are
usually compared against.
*/
package interpolate

// Interpolator is a 1D interpolator. Interpolators are not safe for
// concurrent use while they are being reloaded.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
	// Integral returns the integral of the interpolator over the range of
	// its input table.
	Integral() float64
}

var (
	_ Interpolator = &Spline{}
	_ Interpolator = &Linear{}
)
