package main

const (
	ExampleInterpolateFile = `[Interpolate]

#######################
# Required Parameters #
#######################

# Text table containing the samples, one point per row. Rows starting with
# '#' are skipped.
Input = path/to/samples.txt

#######################
# Optional Parameters #
#######################

# Zero-indexed table columns holding the sample positions and values. The
# positions must be strictly increasing. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# File the resampled curve is written to. Defaults to stdout.
# Output = path/to/curve.txt

# Number of points in the resampled curve. The default is ten points per
# sample, clamped to the range [1000, 100000].
# Samples = 2000

# Evaluate the curve slightly past the sample range instead of stopping
# exactly at it.
# Extrapolate = true

# Write a third column containing the derivative of the curve.
# Derivs = true

# Image file the curve is rendered to. This requires Python with matplotlib
# on the host.
# PlotFile = path/to/curve.png

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`

	ExampleIntegrateFile = `[Integrate]

#######################
# Required Parameters #
#######################

# Text table containing the samples, one point per row. Rows starting with
# '#' are skipped.
Input = path/to/samples.txt

# Integration bounds. Reversed bounds negate the integral, and bounds outside
# the sample range require Extrapolate.
Low  = 0
High = 1

#######################
# Optional Parameters #
#######################

# Zero-indexed table columns holding the sample positions and values. The
# positions must be strictly increasing. Defaults are 0 and 1.
# XColumn = 0
# YColumn = 1

# Allow integration bounds outside the sample range.
# Extrapolate = true

# Output files which are useful for profiling and debugging. Generally, there
# isn't a reason to use these unless something goes wrong.
# ProfileFile = prof.out
# LogFile = log.out`
)

type SharedConfig struct {
	// Required
	Input string
	// Optional
	XColumn, YColumn     int
	LogFile, ProfileFile string
}

func (con *SharedConfig) ValidInput() bool {
	return con.Input != ""
}
func (con *SharedConfig) ValidColumns() bool {
	return con.XColumn >= 0 && con.YColumn >= 0 && con.XColumn != con.YColumn
}
func (con *SharedConfig) ValidLogFile() bool {
	return con.LogFile != ""
}
func (con *SharedConfig) ValidProfileFile() bool {
	return con.ProfileFile != ""
}

type InterpolateConfig struct {
	SharedConfig

	// Optional
	Output      string
	Samples     int
	Extrapolate bool
	Derivs      bool
	PlotFile    string
}

type InterpolateWrapper struct {
	Interpolate InterpolateConfig
}

func DefaultInterpolateWrapper() *InterpolateWrapper {
	con := InterpolateConfig{}
	con.XColumn = 0
	con.YColumn = 1
	return &InterpolateWrapper{con}
}

func (con *InterpolateConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *InterpolateConfig) ValidSamples() bool {
	return con.Samples >= 2
}
func (con *InterpolateConfig) ValidPlotFile() bool {
	return con.PlotFile != ""
}

type IntegrateConfig struct {
	SharedConfig

	// Required
	Low, High float64

	// Optional
	Extrapolate bool
}

type IntegrateWrapper struct {
	Integrate IntegrateConfig
}

func DefaultIntegrateWrapper() *IntegrateWrapper {
	con := IntegrateConfig{}
	con.XColumn = 0
	con.YColumn = 1
	return &IntegrateWrapper{con}
}
