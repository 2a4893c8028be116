package main

import (
	"flag"
	"fmt"
	stdio "io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/phil-mansfield/tispline/io"
	"github.com/phil-mansfield/tispline/math/interpolate"
)

const usage = `%[1]s input_file [plot_file [data_points]]
%[1]s -Fit fit.cfg
%[1]s -ExampleConfig Fit

 input_file: file contains thermodynamic integration data
  plot_file: file for the plot data [optional]
data_points: number of data points for plot [optional]
`

func main() {
	var fitFile, exampleConfig string
	vars := map[string]*string {
		"Fit": &fitFile,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&fitFile, "Fit", "",
		"Configuration file for [Fit] mode. Positional arguments are " +
			"ignored when this is set.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to " +
			"stdout. The only accepted argument is 'Fit'.",
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), usage, os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	var con *io.FitConfig
	switch modeName {
	case "ExampleConfig":
		if exampleConfig != "Fit" {
			fmt.Fprintf(os.Stderr, "Unrecognized 'ExampleConfig' argument " +
				"'%s'. The only recognized argument is 'Fit'.\n", exampleConfig)
			os.Exit(2)
		}
		fmt.Println(io.ExampleFitFile)
		return
	case "Fit":
		con, err = io.ReadFitConfig(fitFile)
	case "":
		if flag.NArg() == 0 {
			flag.Usage()
			return
		}
		con, err = argsConfig(flag.Args())
	default:
		panic("Impossible")
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	logger, err := newLogger(con)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	zap.ReplaceGlobals(logger.With(zap.String("run", uuid.NewString())))
	defer zap.S().Sync()

	if err := fitMain(con, os.Stdout); err != nil {
		zap.S().Fatalf("Fit of %s failed: %s", con.Input, err.Error())
	}
}

// getModeName returns the name of the mode set by the user, or the empty
// string if no mode flag was given.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but only one flag is " +
				"accepted at a time.", strings.Join(setNames, ", "),
		)
	} else if len(setNames) == 0 {
		return "", nil
	}

	return setNames[0], nil
}

// argsConfig builds a FitConfig from the positional form of the command,
// input_file [plot_file [data_points]].
func argsConfig(args []string) (*io.FitConfig, error) {
	if len(args) > 3 {
		return nil, fmt.Errorf(
			"Expected at most 3 arguments, but got %d.", len(args),
		)
	}

	con := &io.DefaultFitWrapper().Fit
	con.Input = args[0]
	if len(args) > 1 { con.PlotData = args[1] }
	if len(args) > 2 {
		steps, err := strconv.Atoi(args[2])
		if err != nil || steps <= 0 {
			return nil, fmt.Errorf(
				"data_points must be a positive integer, but is '%s'.", args[2],
			)
		}
		con.Steps = steps
	}

	if err := con.CheckInit(); err != nil { return nil, err }
	return con, nil
}

// newLogger builds a console logger at the configured level, writing to
// LogFile if one is set.
func newLogger(con *io.FitConfig) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(con.LogLevel)
	if err != nil { return nil, err }

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level
	cfg.DisableStacktrace = true
	if con.LogFile != "" {
		cfg.OutputPaths = []string{ con.LogFile }
	}
	return cfg.Build()
}

// fitMain fits a spline to the configured samples, writes the report to out
// and writes any requested plot files.
func fitMain(con *io.FitConfig, out stdio.Writer) error {
	pts, err := io.ReadSamples(con.Input, con.XColumn, con.YColumn)
	if err != nil { return err }
	zap.S().Infow("Read samples", "file", con.Input, "samples", len(pts))

	if i := unsortedIndex(pts); i >= 0 {
		zap.S().Warnw(
			"Lambda values are not strictly increasing. The fit will not " +
				"be meaningful.", "index", i, "lambda", pts[i].X,
		)
	}

	sp, err := interpolate.NewSpline(pts)
	if err != nil { return err }
	zap.S().Debugw("Fitted spline",
		"order", sp.System().Order(), "coeffs", sp.Flatten())

	if con.ShowSystem {
		if err := io.WriteSystem(out, sp.System()); err != nil { return err }
		fmt.Fprintln(out)
	}
	if err := io.WriteCoeffs(out, sp); err != nil { return err }
	fmt.Fprintln(out)

	integral, quadrature := sp.Integral(), sp.Quadrature()
	if err := io.WriteSummary(out, integral, quadrature); err != nil {
		return err
	}
	zap.S().Infow("Estimated free energy difference",
		"spline", integral, "trapezoid", quadrature)

	if con.PlotData == "" && con.PlotFigure == "" { return nil }

	steps := con.StepCount(sp.Len())
	curve, err := sp.Estimate(steps)
	if err != nil { return err }

	if con.PlotData != "" {
		if err := io.WriteEstimateFile(con.PlotData, curve); err != nil {
			return err
		}
		zap.S().Infow("Wrote curve", "file", con.PlotData, "points", len(curve))
	}
	if con.PlotFigure != "" {
		io.PlotFit(con.PlotFigure, sp, curve)
		zap.S().Infow("Wrote figure", "file", con.PlotFigure)
	}

	return nil
}

// unsortedIndex returns the first index whose lambda value is not larger than
// the one before it, or -1.
func unsortedIndex(pts []interpolate.Sample) int {
	for i := 1; i < len(pts); i++ {
		if !(pts[i].X > pts[i-1].X) { return i }
	}
	return -1
}
