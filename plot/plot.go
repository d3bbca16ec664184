/*package plot draws pchip interpolants through the pyplot bridge. It only
issues plotting commands: the caller owns the figure and decides when to call
pyplot.Show, pyplot.SaveFig, and pyplot.Execute.
*/
package plot

import (
	"github.com/phil-mansfield/pchip"
	plt "github.com/phil-mansfield/pyplot"
)

// extrapMargin is the fraction of the sample range added to each side of the
// plotted range when the interpolant extrapolates.
const extrapMargin = 0.1

// Curve draws the interpolant as a densely sampled line over Grid(p). opts
// are forwarded to pyplot.Plot, so format strings and keywords like
// pyplot.Label and pyplot.LW all work.
func Curve(p *pchip.Interpolator, opts ...interface{}) error {
	xs := Grid(p)
	ys, err := p.EvalAll(xs)
	if err != nil {
		return err
	}

	args := append([]interface{}{xs, ys}, opts...)
	plt.Plot(args...)
	return nil
}

// Points draws the interpolant's samples as markers. opts are forwarded to
// pyplot.Plot.
func Points(p *pchip.Interpolator, opts ...interface{}) {
	args := append([]interface{}{p.Xs(), p.Ys()}, opts...)
	plt.Plot(args...)
}

// Grid returns the abscissas Curve samples the interpolant on: ten points
// per sample, clamped to [1000, 100000], spanning the sample range. The
// range is widened by a tenth of its width on each side when the interpolant
// extrapolates.
func Grid(p *pchip.Interpolator) []float64 {
	return GridN(p, gridSize(p.Len()))
}

// GridN is Grid with a caller-chosen number of points, which must be at
// least two.
func GridN(p *pchip.Interpolator, n int) []float64 {
	lo, hi := p.Bounds()
	if p.Extrapolating() {
		pad := extrapMargin * (hi - lo)
		lo, hi = lo-pad, hi+pad
	}
	return linspace(lo, hi, n)
}

// gridSize returns the number of grid points used for an interpolant with n
// samples.
func gridSize(n int) int {
	size := 10 * n
	if size < 1000 {
		size = 1000
	} else if size > 100000 {
		size = 100000
	}
	return size
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	// Rounding in dx can push the final point past hi, which a
	// non-extrapolating interpolant would reject.
	xs[n-1] = hi
	return xs
}
