package mat

import (
	"fmt"
	"math"
)

// Tolerance is the smallest pivot magnitude GaussianEliminate will divide by.
const Tolerance = 1e-30

// GaussianEliminate solves m * xs = bs in place using Gaussian elimination with
// partial pivoting followed by back substitution. On success the solution is
// written into bs and m is left as the identity matrix.
//
// Pivoting swaps in any lower row whose entry in the pivot column is larger
// than the current diagonal. The comparison is on raw values rather than
// magnitudes, so a large negative entry is never chosen as a pivot.
//
// If a pivot with magnitude <= Tolerance is encountered, an error wrapping
// ErrSingular is returned and the contents of m and bs are unspecified.
func GaussianEliminate(m *Matrix, bs []float64) error {
	n := m.Width
	if m.Height != n {
		return fmt.Errorf(
			"%d x %d matrix is not square: %w", m.Height, m.Width,
			ErrDimensionMismatch,
		)
	} else if len(bs) != n {
		return fmt.Errorf(
			"len(bs) = %d, but matrix order is %d: %w", len(bs), n,
			ErrDimensionMismatch,
		)
	}

	vals := m.Vals

	// Forward elimination.
	for s := 0; s < n; s++ {
		pivot(m, bs, s)

		diag := vals[s*n + s]
		if math.Abs(diag) <= Tolerance {
			return fmt.Errorf("pivot %d is %g: %w", s, diag, ErrSingular)
		}

		for i := s + 1; i < n; i++ {
			ratio := vals[i*n + s] / diag
			bs[i] -= bs[s] * ratio
			for j := s; j < n; j++ {
				vals[i*n + j] -= vals[s*n + j] * ratio
			}
		}
	}

	// Back substitution.
	for u := n - 1; u >= 0; u-- {
		x := bs[u] / vals[u*n + u]
		vals[u*n + u], bs[u] = 1, x

		for v := 0; v < u; v++ {
			bs[v] -= vals[v*n + u] * x
			vals[v*n + u] = 0
		}
	}

	return nil
}

// pivot swaps rows below s into row s whenever their value in column s is
// larger than the current diagonal. Every later row is compared against the
// diagonal as it stands after any earlier swap.
func pivot(m *Matrix, bs []float64, s int) {
	n, vals := m.Width, m.Vals
	for i := s + 1; i < n; i++ {
		if !(vals[i*n + s] > vals[s*n + s]) { continue }

		swapRows(i, s, n, vals)
		bs[i], bs[s] = bs[s], bs[i]
	}
}

func swapRows(i1, i2, n int, vals []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset + j, i2Offset + j
		vals[idx1], vals[idx2] = vals[idx2], vals[idx1]
	}
}
