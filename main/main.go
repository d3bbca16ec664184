package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/pchip"
	"github.com/phil-mansfield/pchip/plot"
	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	// The main function manages input sanitization and calls the secondary
	// main functions for each mode.

	var (
		interpolate, integrate string
		exampleConfig          string
	)
	vars := map[string]*string{
		"Interpolate":   &interpolate,
		"Integrate":     &integrate,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&interpolate, "Interpolate", "",
		"Configuration file for [Interpolate] mode.",
	)
	flag.StringVar(
		&integrate, "Integrate", "",
		"Configuration file for [Integrate] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Interpolate' and 'Integrate'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Interpolate":
		wrap := DefaultInterpolateWrapper()
		err := gcfg.ReadFileInto(wrap, interpolate)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Interpolate

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Invalid 'XColumn'/'YColumn' values.")
		} else if con.Samples != 0 && !con.ValidSamples() {
			log.Fatal("Invalid 'Samples' value.")
		}

		interpolateMain(con)

	case "Integrate":
		wrap := DefaultIntegrateWrapper()
		err := gcfg.ReadFileInto(wrap, integrate)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Integrate

		if !con.ValidInput() {
			log.Fatal("Invalid/non-existent 'Input' value.")
		} else if !con.ValidColumns() {
			log.Fatal("Invalid 'XColumn'/'YColumn' values.")
		}

		integrateMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Interpolate":
			fmt.Println(ExampleInterpolateFile)
		case "Integrate":
			fmt.Println(ExampleIntegrateFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Interpolate' and 'Integrate'.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode flag the user set and fails with
// a descriptive error if zero or several were given.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but pchip only accepts one "+
				"flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// setupFiles redirects logging and starts profiling according to the shared
// config options. The returned FileGroup must be closed when the mode
// finishes.
func setupFiles(con *SharedConfig) *FileGroup {
	fg := new(FileGroup)
	var err error

	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

// readInterpolator reads the configured columns out of a text table and fits
// an interpolant through them.
func readInterpolator(con *SharedConfig, extrapolate bool) *pchip.Interpolator {
	cols, err := table.ReadTable(con.Input, []int{con.XColumn, con.YColumn}, nil)
	if err != nil {
		log.Fatal(err.Error())
	}
	xs, ys := cols[0], cols[1]
	log.Printf("Read %d samples from %s", len(xs), con.Input)

	p, err := pchip.New(xs, ys, pchip.Extrapolate(extrapolate))
	if err != nil {
		log.Fatal(err.Error())
	}

	return p
}

// interpolateMain resamples the input table onto a dense grid and writes the
// result as a text table, optionally with a derivative column and a rendered
// figure.
func interpolateMain(con *InterpolateConfig) {
	fg := setupFiles(&con.SharedConfig)
	defer fg.Close()

	p := readInterpolator(&con.SharedConfig, con.Extrapolate)

	var xs []float64
	if con.ValidSamples() {
		xs = plot.GridN(p, con.Samples)
	} else {
		xs = plot.Grid(p)
	}

	ys, err := p.EvalAll(xs)
	if err != nil {
		log.Fatal(err.Error())
	}

	var dys []float64
	if con.Derivs {
		dys = make([]float64, len(xs))
		for i := range xs {
			dys[i], err = p.Deriv(xs[i], 1)
			if err != nil {
				log.Fatal(err.Error())
			}
		}
	}

	out := os.Stdout
	if con.ValidOutput() {
		out, err = os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.Close()
	}
	printCurve(out, xs, ys, dys)

	if con.ValidPlotFile() {
		savePlot(p, con.PlotFile)
	}
}

// printCurve writes the resampled curve as a text table, one point per row.
func printCurve(out *os.File, xs, ys, dys []float64) {
	buf := bufio.NewWriter(out)
	defer buf.Flush()

	for i := range xs {
		if dys == nil {
			fmt.Fprintf(buf, "%g %g\n", xs[i], ys[i])
		} else {
			fmt.Fprintf(buf, "%g %g %g\n", xs[i], ys[i], dys[i])
		}
	}
}

// savePlot renders the curve and its samples to an image file.
func savePlot(p *pchip.Interpolator, fname string) {
	plt.Reset()
	plt.Figure(plt.FigSize(8, 8))

	err := plot.Curve(p, "b", plt.Label("PCHIP"), plt.LW(3))
	if err != nil {
		log.Fatal(err.Error())
	}
	plot.Points(p, "ok", plt.Label("Samples"))

	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$y$", plt.FontSize(16))
	plt.Legend(plt.Loc("upper left"), plt.FrameOn(false))

	plt.SaveFig(fname)
	plt.Execute()
}

// integrateMain prints the definite integral of the interpolant between the
// configured bounds.
func integrateMain(con *IntegrateConfig) {
	fg := setupFiles(&con.SharedConfig)
	defer fg.Close()

	p := readInterpolator(&con.SharedConfig, con.Extrapolate)

	sum, err := p.Integrate(con.Low, con.High)
	if err != nil {
		log.Fatal(err.Error())
	}

	fmt.Printf("%g\n", sum)
}
