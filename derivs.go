package pchip

import (
	"math"
)

// secants returns the secant slope of each of the len(xs)-1 sample intervals.
func secants(xs, ys []float64) []float64 {
	ms := make([]float64, len(xs)-1)
	for i := range ms {
		ms[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}
	return ms
}

// estimateDerivs returns a derivative estimate at every sample point chosen
// so that the Hermite interpolant through (xs, ys) preserves the shape of
// the data: runs of monotone samples get a monotone curve and samples at
// local extrema get a flat tangent. xs must be strictly increasing and at
// least two points long.
func estimateDerivs(xs, ys []float64) []float64 {
	n := len(xs)
	ds := make([]float64, n)
	ms := secants(xs, ys)

	// A single interval degenerates to a straight line.
	if n == 2 {
		ds[0], ds[1] = ms[0], ms[0]
		return ds
	}

	for i := 1; i < n-1; i++ {
		hl, hr := xs[i]-xs[i-1], xs[i+1]-xs[i]
		dl, dr := ms[i-1], ms[i]
		if dl*dr <= 0 {
			// A sign change or a flat secant means the sample sits at
			// a local extremum, which must get a zero tangent.
			ds[i] = 0
		} else {
			// Weighted harmonic mean of the adjacent secant slopes.
			// The weights keep the tangent within three times either
			// slope, which is what stops the curve from overshooting.
			wl, wr := 2*hl+hr, hl+2*hr
			ds[i] = (wl + wr) / (wl/dl + wr/dr)
		}
	}

	ds[0] = edgeDeriv(xs[1]-xs[0], xs[2]-xs[1], ms[0], ms[1])
	ds[n-1] = edgeDeriv(xs[n-1]-xs[n-2], xs[n-2]-xs[n-3], ms[n-2], ms[n-3])

	return ds
}

// edgeDeriv estimates the derivative at a boundary sample from the widths
// and secant slopes of the two nearest intervals, d1 and h1 being the ones
// adjacent to the boundary. The estimate is clamped so the boundary interval
// cannot overshoot the data it passes through.
func edgeDeriv(h1, h2, d1, d2 float64) float64 {
	d := ((2*h1+h2)*d1 - h2*d2) / (h1 + h2)
	if d*d1 <= 0 {
		d = 0
	} else if d1*d2 < 0 && math.Abs(d) > 3*math.Abs(d1) {
		d = 3 * d1
	}
	return d
}
