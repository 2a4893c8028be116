package io

import (
	"fmt"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/tispline/math/interpolate"
)

// PlotFit renders the samples of sp and the sampled curve pts to fname using
// matplotlib. python must be on the PATH.
func PlotFit(fname string, sp *interpolate.Spline, pts []interpolate.Sample) {
	xs, ys := interpolate.SplitSamples(sp.Samples())
	curveXs, curveYs := interpolate.SplitSamples(pts)

	plt.Reset()
	plt.Figure()
	plt.Plot(curveXs, curveYs, "r", plt.LW(2))
	plt.Plot(xs, ys, "ok")

	plt.Title(fmt.Sprintf(
		`$\Delta G$ = %.4f (spline), %.4f (trapezoid)`,
		sp.Integral(), sp.Quadrature(),
	))
	plt.XLabel(`$\lambda$`, plt.FontSize(16))
	plt.YLabel(`$dG/d\lambda$`, plt.FontSize(16))
	plt.SaveFig(fname)

	plt.Execute()
}
