package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/tispline/math/mat"
)

// tiCurve returns a dG/dlambda-like curve sampled at n evenly spaced lambda
// values in [0, 1].
func tiCurve(n int) []Sample {
	pts := make([]Sample, n)
	for i := range pts {
		l := float64(i) / float64(n - 1)
		pts[i] = Sample{l, 30*(l - 0.4)*(l - 0.4) - 5 + 3*math.Sin(5*l)}
	}
	return pts
}

func unevenCurve() []Sample {
	return JoinSamples(
		[]float64{0, 1, 1.5, 2, 3, 4, 5},
		[]float64{2, 1, 1, 0, 2, 3, 1},
	)
}

func evalCubic(c Cubic, x float64) float64 {
	return c.C3*x*x*x + c.C2*x*x + c.C1*x + c.C0
}

func diffCubic(c Cubic, x float64) float64 {
	return 3*c.C3*x*x + 2*c.C2*x + c.C1
}

func TestSplineBoundary(t *testing.T) {
	for _, pts := range [][]Sample{tiCurve(3), tiCurve(12), unevenCurve()} {
		sp, err := NewSpline(pts)
		require.NoError(t, err)

		y2s := sp.SecondDerivs()
		require.Len(t, y2s, len(pts))
		assert.Equal(t, 0.0, y2s[0])
		assert.Equal(t, 0.0, y2s[len(y2s) - 1])
		assert.Len(t, sp.Coeffs(), len(pts) - 1)
	}
}

func TestSplineInterpolates(t *testing.T) {
	for _, pts := range [][]Sample{tiCurve(3), tiCurve(12), unevenCurve()} {
		sp, err := NewSpline(pts)
		require.NoError(t, err)

		for i, c := range sp.Coeffs() {
			a, b := pts[i], pts[i+1]
			assert.InDelta(t, a.Y, evalCubic(c, a.X), 1e-9, "left knot %d", i)
			assert.InDelta(t, b.Y, evalCubic(c, b.X), 1e-9, "right knot %d", i)
		}
		for _, pt := range pts {
			assert.InDelta(t, pt.Y, sp.Eval(pt.X), 1e-9)
		}
	}
}

func TestSplineContinuity(t *testing.T) {
	for _, pts := range [][]Sample{tiCurve(12), unevenCurve()} {
		sp, err := NewSpline(pts)
		require.NoError(t, err)
		cs := sp.Coeffs()

		for i := 1; i < len(pts) - 1; i++ {
			x := pts[i].X
			left, right := cs[i-1], cs[i]
			assert.InDelta(t, evalCubic(left, x), evalCubic(right, x), 1e-9,
				"value at knot %d", i)
			assert.InDelta(t, diffCubic(left, x), diffCubic(right, x), 1e-9,
				"slope at knot %d", i)
		}
	}
}

func TestSplineSecondDerivs(t *testing.T) {
	sp, err := NewSpline(unevenCurve())
	require.NoError(t, err)

	y2s := sp.SecondDerivs()
	for i, pt := range sp.Samples() {
		assert.InDelta(t, y2s[i], sp.Diff(pt.X, 2), 1e-9, "knot %d", i)
	}
}

func TestSplineStraightLine(t *testing.T) {
	sp, err := NewSpline([]Sample{{0, 2}, {1, 3}, {2, 4}, {3, 5}})
	require.NoError(t, err)

	for _, z := range sp.SecondDerivs() { assert.Equal(t, 0.0, z) }
	for _, c := range sp.Coeffs() {
		assert.Equal(t, 0.0, c.C3)
		assert.Equal(t, 0.0, c.C2)
		assert.InDelta(t, 1, c.C1, 1e-12)
		assert.InDelta(t, 2, c.C0, 1e-12)
	}
	assert.InDelta(t, 10.5, sp.Integral(), 1e-12)
	assert.Equal(t, 10.5, sp.Quadrature())
}

func TestSplineIdempotentLoad(t *testing.T) {
	pts := tiCurve(9)
	sp, err := NewSpline(pts)
	require.NoError(t, err)
	first, flat := sp.Coeffs(), sp.Flatten()

	stored, err := sp.Load(pts)
	require.NoError(t, err)
	assert.Equal(t, pts, stored)
	assert.Equal(t, first, sp.Coeffs())
	assert.Equal(t, flat, sp.Flatten())
}

func TestSplineCopiesSamples(t *testing.T) {
	pts := tiCurve(5)
	sp, err := NewSpline(pts)
	require.NoError(t, err)

	want := sp.Coeffs()
	pts[2].Y = 1000
	assert.NotEqual(t, pts, sp.Samples())
	assert.Equal(t, want, sp.Coeffs())
}

func TestSplineFlatten(t *testing.T) {
	sp, err := NewSpline(unevenCurve())
	require.NoError(t, err)

	flat := sp.Flatten()
	cs := sp.Coeffs()
	require.Len(t, flat, 4*len(cs))
	for i, c := range cs {
		assert.Equal(t, []float64{c.C0, c.C1, c.C2, c.C3}, flat[4*i: 4*i+4])
	}
}

func TestSplineFailedLoadClears(t *testing.T) {
	sp, err := NewSpline(tiCurve(6))
	require.NoError(t, err)
	require.True(t, sp.Fitted())

	_, err = sp.Load([]Sample{{0, 0}, {1, 1}})
	require.ErrorIs(t, err, ErrInsufficientData)

	assert.False(t, sp.Fitted())
	assert.Equal(t, 0, sp.Len())
	assert.Empty(t, sp.Coeffs())
	assert.Empty(t, sp.Flatten())
	assert.Nil(t, sp.System())
	assert.True(t, math.IsNaN(sp.Eval(0.5)))
	assert.Equal(t, 0.0, sp.Integral())
	assert.Equal(t, 0.0, sp.Quadrature())
	_, err = sp.Estimate(4)
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestSplineDuplicateX(t *testing.T) {
	sp, err := NewSpline([]Sample{{0, 0}, {1, 1}, {1, 2}, {2, 0}})
	assert.Nil(t, sp)
	assert.ErrorIs(t, err, ErrZeroWidth)
	assert.ErrorIs(t, err, mat.ErrSingular)
}

// x values are not checked for order. A table which folds back on itself
// can give a singular system...
func TestSplineUnsortedSingular(t *testing.T) {
	_, err := NewSpline([]Sample{{0, 0}, {1, 1}, {0, 2}})
	assert.ErrorIs(t, err, mat.ErrSingular)
	assert.NotErrorIs(t, err, ErrZeroWidth)
}

// ...or a finite fit with no meaning.
func TestSplineUnsortedFinite(t *testing.T) {
	sp, err := NewSpline([]Sample{{0, 0}, {2, 1}, {1, 0}, {3, 1}})
	require.NoError(t, err)
	for _, c := range sp.Flatten() {
		assert.False(t, math.IsNaN(c) || math.IsInf(c, 0))
	}
}

func TestSplineSystem(t *testing.T) {
	sp, err := NewSpline([]Sample{{0, 0}, {1, 1}, {2, 0}, {3, 1}})
	require.NoError(t, err)

	sys := sp.System()
	require.NotNil(t, sys)
	assert.Equal(t, []float64{4, 1, 1, 4}, sys.Matrix.Vals)
	assert.Equal(t, []float64{-12, 12}, sys.RHS)
}
