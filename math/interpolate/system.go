package interpolate

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/tispline/math/mat"
)

// System is the linear system satisfied by the interior second derivatives of
// a natural cubic spline:
//
//	| 2(h0+h1)    h1        0      || z1 |     | s1 - s0 |
//	|    h1    2(h1+h2)    h2      || z2 | = 6 | s2 - s1 |
//	|    0        h2    2(h2+h3)   || z3 |     | s3 - s2 |
//
// where h_i = x_{i+1} - x_i and s_i = (y_{i+1} - y_i) / h_i. The end second
// derivatives, z0 and z_{N-1}, are zero and do not appear.
type System struct {
	// Matrix is the (N-2) x (N-2) coefficient matrix. It is tridiagonal, but
	// stored densely.
	Matrix *mat.Matrix
	// RHS has one entry per matrix row.
	RHS []float64
	// Widths and Slopes have one entry per interval.
	Widths, Slopes []float64
}

// NewSystem builds the second derivative system for a table of at least three
// samples. An interval with zero width makes the system singular and is
// reported as ErrZeroWidth before any division is done.
func NewSystem(pts []Sample) (*System, error) {
	if len(pts) < 3 {
		return nil, fmt.Errorf(
			"table has %d samples: %w", len(pts), ErrInsufficientData,
		)
	}

	sys := &System{
		Widths: make([]float64, len(pts) - 1),
		Slopes: make([]float64, len(pts) - 1),
	}

	for i := range sys.Widths {
		h := pts[i+1].X - pts[i].X
		if math.Abs(h) <= mat.Tolerance {
			return nil, fmt.Errorf(
				"interval %d between x = %g and x = %g: %w",
				i, pts[i].X, pts[i+1].X, ErrZeroWidth,
			)
		}
		sys.Widths[i] = h
		sys.Slopes[i] = (pts[i+1].Y - pts[i].Y) / h
	}

	n := len(pts) - 2
	hs, ss := sys.Widths, sys.Slopes
	sys.Matrix = mat.NewSquare(n)
	sys.RHS = make([]float64, n)

	for i := 0; i < n; i++ {
		sys.Matrix.Set(i, i, 2*(hs[i] + hs[i+1]))
		sys.RHS[i] = 6*(ss[i+1] - ss[i])
	}
	for j := 1; j < n; j++ {
		sys.Matrix.Set(j-1, j, hs[j])
		sys.Matrix.Set(j, j-1, hs[j])
	}

	return sys, nil
}

// Order returns the number of unknowns in the system.
func (sys *System) Order() int { return len(sys.RHS) }

// Solve returns the second derivatives at every knot, including the two zero
// end points. sys itself is not modified.
func (sys *System) Solve() ([]float64, error) {
	n := sys.Order()
	zs := make([]float64, n + 2)
	copy(zs[1:n+1], sys.RHS)

	if err := mat.GaussianEliminate(sys.Matrix.Clone(), zs[1:n+1]); err != nil {
		return nil, err
	}
	return zs, nil
}
