package io

import (
	"fmt"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/tispline/math/interpolate"
)

// ReadSamples reads a table of (lambda, dG/dlambda) samples from the given
// columns of a whitespace separated text file. Comment lines start with '#'.
func ReadSamples(fname string, xCol, yCol int) ([]interpolate.Sample, error) {
	cols, err := table.ReadTable(fname, []int{ xCol, yCol }, nil)
	if err != nil {
		return nil, fmt.Errorf("Could not read samples from %s: %w", fname, err)
	}

	xs, ys := cols[0], cols[1]
	if len(xs) != len(ys) {
		return nil, fmt.Errorf(
			"Columns %d and %d of %s have different lengths, %d and %d.",
			xCol, yCol, fname, len(xs), len(ys),
		)
	}

	return interpolate.JoinSamples(xs, ys), nil
}
