package io

import (
	"fmt"
	"strings"

	"gopkg.in/gcfg.v1"
)

const ExampleFitFile = `[Fit]

#######################
# Required Parameters #
#######################

# Table of thermodynamic integration samples. Each line holds a lambda value
# and the corresponding dG/dlambda value in whitespace separated columns.
# Lines starting with '#' are ignored.
Input = path/to/dgdl.dat

#######################
# Optional Parameters #
#######################

# Zero-indexed columns holding lambda and dG/dlambda. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# File which the fitted curve will be written to as "lambda, dG/dlambda"
# lines. The curve is sampled Steps + 1 times over lambda in [0, 1]. If Steps
# isn't set, it is one less than the number of input samples.
# PlotData = path/to/curve.dat
# Steps = 100

# Image of the input samples and the fitted curve. Any extension matplotlib
# understands works. Requires python and matplotlib.
# PlotFigure = path/to/curve.png

# Prints the linear system solved for the spline's second derivatives.
# ShowSystem = false

# Logging. LogLevel must be one of [ debug | info | warn | error ]. Logs go to
# stderr unless LogFile is set.
# LogFile = log.out
# LogLevel = info`

// FitConfig describes a single spline fit.
type FitConfig struct {
	// Required
	Input string

	// Optional
	XColumn, YColumn int
	PlotData string
	Steps int
	PlotFigure string
	ShowSystem bool
	LogFile, LogLevel string
}

// FitWrapper is the gcfg layout of a [Fit] config file.
type FitWrapper struct {
	Fit FitConfig
}

// DefaultFitWrapper returns a wrapper with every optional value set to its
// default.
func DefaultFitWrapper() *FitWrapper {
	cfg := FitConfig{ XColumn: 0, YColumn: 1, LogLevel: "info" }
	return &FitWrapper{ cfg }
}

// ReadFitConfig reads and checks a [Fit] config file.
func ReadFitConfig(fname string) (*FitConfig, error) {
	wrap := DefaultFitWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	if err := wrap.Fit.CheckInit(); err != nil { return nil, err }
	return &wrap.Fit, nil
}

// ParseFitConfig is identical to ReadFitConfig, but reads the config from a
// string.
func ParseFitConfig(text string) (*FitConfig, error) {
	wrap := DefaultFitWrapper()
	if err := gcfg.ReadStringInto(wrap, text); err != nil {
		return nil, err
	}
	if err := wrap.Fit.CheckInit(); err != nil { return nil, err }
	return &wrap.Fit, nil
}

func (con *FitConfig) ValidInput() bool {
	return con.Input != ""
}

func (con *FitConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}

func (con *FitConfig) ValidSteps() bool {
	return con.Steps >= 0
}

func (con *FitConfig) ValidLogLevel() bool {
	switch con.LogLevel {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

// CheckInit normalizes con and returns a descriptive error for the first
// invalid value.
func (con *FitConfig) CheckInit() error {
	con.LogLevel = strings.ToLower(strings.Trim(con.LogLevel, " "))

	if !con.ValidInput() {
		return fmt.Errorf("Invalid/non-existent 'Input' value.")
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'XColumn' and 'YColumn' must be distinct and non-negative, " +
				"but are %d and %d.", con.XColumn, con.YColumn,
		)
	} else if !con.ValidSteps() {
		return fmt.Errorf("'Steps' must be non-negative, but is %d.", con.Steps)
	} else if !con.ValidLogLevel() {
		return fmt.Errorf(
			"'LogLevel' must be one of [debug | info | warn | error]. '%s' " +
				"is not recognized.", con.LogLevel,
		)
	}

	return nil
}

// StepCount returns the number of steps the fitted curve should be sampled
// with for a table of n samples.
func (con *FitConfig) StepCount(n int) int {
	if con.Steps > 0 { return con.Steps }
	return n - 1
}
