package io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/phil-mansfield/tispline/math/interpolate"
)

// WriteEstimate writes one "x, y" line per point.
func WriteEstimate(w io.Writer, pts []interpolate.Sample) error {
	bw := bufio.NewWriter(w)
	for _, pt := range pts {
		fmt.Fprintf(bw, "%.4f, %.8f\n", pt.X, pt.Y)
	}
	return bw.Flush()
}

// WriteEstimateFile writes pts to fname with WriteEstimate, truncating any
// existing file.
func WriteEstimateFile(fname string, pts []interpolate.Sample) error {
	f, err := os.Create(fname)
	if err != nil { return err }

	if err = WriteEstimate(f, pts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteCoeffs writes a table of the coefficients of every interval of sp,
// lowest order first.
func WriteCoeffs(w io.Writer, sp *interpolate.Spline) error {
	bw := bufio.NewWriter(w)
	pts := sp.Samples()

	fmt.Fprintf(bw, "   Interval, Polynomial coefficients\n")
	for i, c := range sp.Coeffs() {
		fmt.Fprintf(bw, "%1.2f - %1.2f, %.8f %.8f %.8f %.8f\n",
			pts[i].X, pts[i+1].X, c.C0, c.C1, c.C2, c.C3)
	}
	return bw.Flush()
}

// WriteSystem writes each row of the system's matrix followed by its
// right-hand side.
func WriteSystem(w io.Writer, sys *interpolate.System) error {
	bw := bufio.NewWriter(w)
	n := sys.Order()

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			fmt.Fprintf(bw, "%.4f ", sys.Matrix.At(i, j))
		}
		fmt.Fprintf(bw, "| %.6f\n", sys.RHS[i])
	}
	return bw.Flush()
}

// WriteSummary writes the two free energy estimates.
func WriteSummary(w io.Writer, integral, quadrature float64) error {
	_, err := fmt.Fprintf(w,
		"Free energy difference\nCubic Spline: %.8f\n   Trapezoid: %.8f\n",
		integral, quadrature,
	)
	return err
}
