/*package mat contains a small dense matrix type and the elimination routine
used to solve the second derivative systems of cubic splines.

Everything is stored in a single flat row-major buffer. Most of the systems
this package sees are tridiagonal and tiny, so dense storage is used anyway:
it keeps the index arithmetic in one place and makes the matrices trivial to
print and compare.
*/
package mat

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSingular is returned when elimination finds a pivot whose magnitude
	// does not exceed Tolerance.
	ErrSingular = errors.New("mat: matrix is singular")
	// ErrDimensionMismatch is returned when a right-hand side does not have
	// one entry per matrix row.
	ErrDimensionMismatch = errors.New("mat: dimension mismatch")
)

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// NewSquare creates an n x n matrix of zeros. n may be zero, in which case
// the matrix is empty.
func NewSquare(n int) *Matrix {
	m := &Matrix{}
	m.Resize(n)
	return m
}

// Resize turns m into an n x n matrix of zeros, reusing the existing buffer
// when it is large enough.
func (m *Matrix) Resize(n int) {
	if n < 0 {
		panic(fmt.Sprintf("Cannot resize matrix to negative order %d.", n))
	}

	if cap(m.Vals) >= n*n {
		m.Vals = m.Vals[:n*n]
		for i := range m.Vals { m.Vals[i] = 0 }
	} else {
		m.Vals = make([]float64, n*n)
	}
	m.Width, m.Height = n, n
}

// Index returns the position of element (row, col) within Vals.
func (m *Matrix) Index(row, col int) int {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		panic(fmt.Sprintf(
			"Index (%d, %d) out of range for %d x %d matrix.",
			row, col, m.Height, m.Width,
		))
	}
	return row*m.Width + col
}

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.Vals[m.Index(row, col)]
}

// Set assigns v to the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.Vals[m.Index(row, col)] = v
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	vals := make([]float64, len(m.Vals))
	copy(vals, m.Vals)
	return &Matrix{Vals: vals, Width: m.Width, Height: m.Height}
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	}

	for i := range out.Vals { out.Vals[i] = 0 }
	for i := 0; i < m1.Height; i++ {
		off := i*m1.Width
		for j := 0; j < m2.Width; j++ {
			outIdx := i*out.Width + j
			for k := 0; k < m1.Width; k++ {
				m1Idx := off + k
				m2Idx := k*m2.Width + j
				out.Vals[outIdx] += m1.Vals[m1Idx] * m2.Vals[m2Idx]
			}
		}
	}

	return out
}

// MultVector computes m * xs. If an output array is given, the result is
// written to it.
func (m *Matrix) MultVector(xs []float64, out ...[]float64) []float64 {
	if len(xs) != m.Width {
		panic("Multiplication of incompatible matrix and vector sizes.")
	}
	if len(out) == 0 { out = [][]float64{ make([]float64, m.Height) } }

	for i := 0; i < m.Height; i++ {
		sum, off := 0.0, i*m.Width
		for j, x := range xs { sum += m.Vals[off + j] * x }
		out[0][i] = sum
	}
	return out[0]
}

// IsTridiagonal returns true if every element more than one place away from
// the diagonal is exactly zero.
func (m *Matrix) IsTridiagonal() bool {
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			if (i - j > 1 || j - i > 1) && m.Vals[i*m.Width + j] != 0 {
				return false
			}
		}
	}
	return true
}

// String prints the rows of m with the given number of decimal places.
func (m *Matrix) String() string {
	sb := &strings.Builder{}
	for i := 0; i < m.Height; i++ {
		sb.WriteString("[")
		for j := 0; j < m.Width; j++ {
			if j > 0 { sb.WriteString(", ") }
			fmt.Fprintf(sb, "%g", m.Vals[i*m.Width + j])
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
