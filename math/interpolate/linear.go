package interpolate

import (
	"fmt"
	"sort"
)

// Linear is a piecewise linear interpolator.
type Linear struct {
	xs, vals []float64
}

// NewLinear creates a linear interpolator for a sequence of increasing points,
// xs, which take on the values given by vals. At least two points are needed.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"Table given to NewLinear() has len(xs) = %d but len(vals) = %d.",
			len(xs), len(vals),
		))
	} else if len(xs) < 2 {
		panic(fmt.Sprintf("Table given to NewLinear() has length of %d.", len(xs)))
	}
	return &Linear{xs: xs, vals: vals}
}

// Eval returns the interpolated value at x. Values outside the table are
// extrapolated from the nearest end segment.
func (lin *Linear) Eval(x float64) float64 {
	i1 := sort.SearchFloat64s(lin.xs, x) - 1
	if i1 < 0 {
		i1 = 0
	} else if i1 > len(lin.xs) - 2 {
		i1 = len(lin.xs) - 2
	}
	i2 := i1 + 1

	x1, x2 := lin.xs[i1], lin.xs[i2]
	v1, v2 := lin.vals[i1], lin.vals[i2]

	return ((v2 - v1) / (x2 - x1)) * (x - x1) + v1
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 { out = [][]float64{ make([]float64, len(xs)) } }
	for i, x := range xs { out[0][i] = lin.Eval(x) }
	return out[0]
}

// Integral returns the exact integral of the interpolator over its table,
// i.e. the trapezoidal rule applied to the table.
func (lin *Linear) Integral() float64 {
	area := 0.0
	for i := 0; i < len(lin.xs) - 1; i++ {
		area += (lin.vals[i+1] + lin.vals[i]) * 0.5 * (lin.xs[i+1] - lin.xs[i])
	}
	return area
}
