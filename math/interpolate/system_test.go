package interpolate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/tispline/math/mat"
)

func TestNewSystemFourPoints(t *testing.T) {
	sys, err := NewSystem([]Sample{{0, 0}, {1, 1}, {2, 0}, {3, 1}})
	require.NoError(t, err)

	assert.Equal(t, 2, sys.Order())
	assert.Equal(t, []float64{1, 1, 1}, sys.Widths)
	assert.Equal(t, []float64{1, -1, 1}, sys.Slopes)
	assert.Equal(t, []float64{4, 1, 1, 4}, sys.Matrix.Vals)
	assert.Equal(t, []float64{-12, 12}, sys.RHS)

	zs, err := sys.Solve()
	require.NoError(t, err)
	require.Len(t, zs, 4)
	assert.Equal(t, 0.0, zs[0])
	assert.Equal(t, 0.0, zs[3])
	assert.InDelta(t, -4, zs[1], 1e-12)
	assert.Equal(t, -zs[1], zs[2])

	assert.Equal(t, []float64{4, 1, 1, 4}, sys.Matrix.Vals, "Solve leaves sys alone")
	assert.Equal(t, []float64{-12, 12}, sys.RHS)
}

func TestNewSystemIsTridiagonal(t *testing.T) {
	pts := tiCurve(15)
	sys, err := NewSystem(pts)
	require.NoError(t, err)

	n := sys.Order()
	require.Equal(t, len(pts) - 2, n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			v := sys.Matrix.At(r, c)
			switch {
			case r == c:
				assert.Equal(t, 2*(sys.Widths[r] + sys.Widths[r+1]), v)
			case r - c == 1 || c - r == 1:
				assert.Equal(t, sys.Widths[maxInt(r, c)], v)
				assert.Equal(t, sys.Matrix.At(c, r), v, "symmetric")
			default:
				assert.Equal(t, 0.0, v, "(%d, %d)", r, c)
			}
		}
	}
	assert.True(t, sys.Matrix.IsTridiagonal())
}

func TestNewSystemResidual(t *testing.T) {
	sys, err := NewSystem(tiCurve(11))
	require.NoError(t, err)
	zs, err := sys.Solve()
	require.NoError(t, err)

	n := sys.Order()
	got := sys.Matrix.MultVector(zs[1:n+1])
	for i := range got {
		assert.InDelta(t, sys.RHS[i], got[i], 1e-9)
	}
}

func TestNewSystemInsufficientData(t *testing.T) {
	for _, pts := range [][]Sample{nil, {{0, 1}}, {{0, 1}, {1, 2}}} {
		_, err := NewSystem(pts)
		assert.ErrorIs(t, err, ErrInsufficientData, "%d samples", len(pts))
	}
}

func TestNewSystemZeroWidth(t *testing.T) {
	_, err := NewSystem([]Sample{{0, 0}, {1, 1}, {1, 2}, {2, 0}})
	assert.ErrorIs(t, err, ErrZeroWidth)
	assert.ErrorIs(t, err, mat.ErrSingular)
}

func maxInt(a, b int) int {
	if a > b { return a }
	return b
}
