package pchip

import (
	"math"
)

// uniformEps is the relative tolerance used to classify a grid as uniformly
// spaced. It only selects the lookup strategy: the arithmetic path still
// checks its guess against the actual breakpoints, so a borderline
// classification cannot return a wrong interval.
const uniformEps = 1e-10

// locator maps query points to the index of the sample interval containing
// them. The lookup strategy is fixed once by init: grids with uniform spacing
// are indexed arithmetically in O(1), everything else goes through a binary
// search seeded with a uniform-spacing guess.
type locator struct {
	xs           []float64
	x0, dx, lim  float64
	n            int
	unif, extrap bool
}

func (loc *locator) init(xs []float64, extrap bool) {
	loc.xs = xs
	loc.x0 = xs[0]
	loc.lim = xs[len(xs)-1]
	loc.n = len(xs)
	loc.dx = (loc.lim - loc.x0) / float64(loc.n-1)
	loc.unif = loc.uniform()
	loc.extrap = extrap
}

// uniform reports whether every interval width agrees with the mean width to
// a relative tolerance of uniformEps.
func (loc *locator) uniform() bool {
	eps := uniformEps * loc.dx
	for i := 0; i < loc.n-1; i++ {
		h := loc.xs[i+1] - loc.xs[i]
		if h-loc.dx > eps || loc.dx-h > eps {
			return false
		}
	}
	return true
}

// search returns the index of the interval which owns x, defined as the last
// index i with xs[i] < x. Queries landing exactly on an interior breakpoint
// resolve to the lower interval, and the two boundary intervals own their
// outer endpoints. Out of range queries map to the nearest boundary interval
// when extrapolation is on and fail with a *DomainError otherwise. A NaN
// query fails unconditionally, since no interval can own it.
func (loc *locator) search(x float64) (int, error) {
	// NaN passes every negated range check and turns the arithmetic index
	// into garbage, so it has to be rejected before anything else.
	if math.IsNaN(x) {
		return -1, &DomainError{X: x, Lo: loc.x0, Hi: loc.lim}
	}

	if x < loc.x0 {
		if loc.extrap {
			return 0, nil
		}
		return -1, &DomainError{X: x, Lo: loc.x0, Hi: loc.lim}
	} else if x > loc.lim {
		if loc.extrap {
			return loc.n - 2, nil
		}
		return -1, &DomainError{X: x, Lo: loc.x0, Hi: loc.lim, Above: true}
	}

	if loc.unif {
		idx := int((x - loc.x0) / loc.dx)
		if idx > loc.n-2 {
			idx = loc.n - 2
		}
		// Float jitter and the breakpoint tie-break can shift the
		// arithmetic guess by one interval at most.
		if idx > 0 && x <= loc.xs[idx] {
			idx--
		} else if idx < loc.n-2 && x > loc.xs[idx+1] {
			idx++
		}
		return idx, nil
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - loc.x0) / loc.dx)
	if guess >= 0 && guess < loc.n-1 &&
		(guess == 0 || loc.xs[guess] < x) && x <= loc.xs[guess+1] {

		return guess, nil
	}

	// Binary search for the last index with xs[i] < x.
	lo, hi := 0, loc.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if loc.xs[mid] < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo, nil
}
