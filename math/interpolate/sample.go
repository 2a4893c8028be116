package interpolate

import (
	"fmt"
)

// Sample is a single tabulated point, y = f(x).
type Sample struct {
	X, Y float64
}

// JoinSamples zips a table of x and y values into Samples.
func JoinSamples(xs, ys []float64) []Sample {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"Table given to JoinSamples() has len(xs) = %d but len(ys) = %d.",
			len(xs), len(ys),
		))
	}

	pts := make([]Sample, len(xs))
	for i := range pts { pts[i] = Sample{xs[i], ys[i]} }
	return pts
}

// SplitSamples unzips Samples into separate x and y tables.
func SplitSamples(pts []Sample) (xs, ys []float64) {
	xs, ys = make([]float64, len(pts)), make([]float64, len(pts))
	for i, pt := range pts { xs[i], ys[i] = pt.X, pt.Y }
	return xs, ys
}
