package pchip

import (
	"math"
	"testing"
)

func TestUniformDetection(t *testing.T) {
	table := []struct {
		xs   []float64
		unif bool
	}{
		{[]float64{0, 1}, true},
		{[]float64{0, 1, 2, 3}, true},
		{[]float64{-3, -1.5, 0, 1.5, 3}, true},
		{[]float64{0, 1, 2.5, 3}, false},
		{[]float64{0, 1e-4, 1, 2}, false},
		// Jitter far below the classification tolerance still counts as
		// uniform.
		{[]float64{0, 1, 2 + 1e-12, 3}, true},
		{[]float64{0, 1, 2 + 1e-6, 3}, false},
	}

	for i, test := range table {
		loc := &locator{}
		loc.init(test.xs, false)
		if loc.unif != test.unif {
			t.Errorf("%d) Expected uniform = %v for %g. Got %v.",
				i+1, test.unif, test.xs, loc.unif)
		}
	}
}

func TestSearchUniform(t *testing.T) {
	loc := &locator{}
	loc.init([]float64{0, 1, 2, 3, 4}, false)

	table := []struct {
		x   float64
		idx int
	}{
		{0, 0}, {0.5, 0},
		// Breakpoints belong to the interval below them.
		{1, 0}, {2, 1}, {3, 2},
		{1.5, 1}, {2.5, 2}, {3.5, 3},
		// Both boundary intervals own their outer endpoint.
		{4, 3},
	}

	for i, test := range table {
		idx, err := loc.search(test.x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if idx != test.idx {
			t.Errorf("%d) Expected search(%g) = %d. Got %d.",
				i+1, test.x, test.idx, idx)
		}
	}
}

func TestSearchIrregular(t *testing.T) {
	loc := &locator{}
	loc.init([]float64{0, 0.1, 0.5, 2.5, 3, 10}, false)
	if loc.unif {
		t.Fatal("Irregular grid classified as uniform.")
	}

	table := []struct {
		x   float64
		idx int
	}{
		{0, 0}, {0.05, 0}, {0.1, 0},
		{0.3, 1}, {0.5, 1},
		{1.7, 2}, {2.5, 2},
		{2.75, 3}, {3, 3},
		{5, 4}, {9.9, 4}, {10, 4},
	}

	for i, test := range table {
		idx, err := loc.search(test.x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if idx != test.idx {
			t.Errorf("%d) Expected search(%g) = %d. Got %d.",
				i+1, test.x, test.idx, idx)
		}
	}
}

func TestSearchNearUniform(t *testing.T) {
	// This grid passes the uniformity classification even though one
	// breakpoint is minutely displaced, so the arithmetic guess can land
	// one interval off and must be corrected against the real breakpoints.
	xs := []float64{0, 1, 2 + 1e-12, 3}
	loc := &locator{}
	loc.init(xs, false)
	if !loc.unif {
		t.Fatal("Nearly uniform grid classified as irregular.")
	}

	table := []struct {
		x   float64
		idx int
	}{
		{1, 0},
		// 2 sits just below the displaced breakpoint.
		{2, 1},
		{2 + 2e-12, 2},
		{3, 2},
	}

	for i, test := range table {
		idx, err := loc.search(test.x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if idx != test.idx {
			t.Errorf("%d) Expected search(%g) = %d. Got %d.",
				i+1, test.x, test.idx, idx)
		}
	}
}

func TestSearchOutOfRange(t *testing.T) {
	grids := [][]float64{
		{0, 1, 2, 3, 4},
		{0, 0.1, 0.5, 2.5, 3, 10},
	}

	for i, xs := range grids {
		loc := &locator{}
		loc.init(xs, false)

		_, err := loc.search(xs[0] - 1)
		if domErr, ok := err.(*DomainError); !ok {
			t.Errorf("%d) Expected *DomainError below the range. Got %v.",
				i+1, err)
		} else if domErr.Above {
			t.Errorf("%d) Below-range error reports Above.", i+1)
		}

		_, err = loc.search(xs[len(xs)-1] + 1)
		if domErr, ok := err.(*DomainError); !ok {
			t.Errorf("%d) Expected *DomainError above the range. Got %v.",
				i+1, err)
		} else if !domErr.Above {
			t.Errorf("%d) Above-range error does not report Above.", i+1)
		}

		loc.init(xs, true)

		idx, err := loc.search(xs[0] - 1)
		if err != nil || idx != 0 {
			t.Errorf("%d) Expected the first interval below the range. "+
				"Got %d, %v.", i+1, idx, err)
		}
		idx, err = loc.search(xs[len(xs)-1] + 1)
		if err != nil || idx != len(xs)-2 {
			t.Errorf("%d) Expected the last interval above the range. "+
				"Got %d, %v.", i+1, idx, err)
		}
	}
}

func TestSearchNaN(t *testing.T) {
	grids := [][]float64{
		{0, 1, 2, 3, 4},
		{0, 0.1, 0.5, 2.5, 3, 10},
	}

	for i, xs := range grids {
		for _, extrap := range []bool{false, true} {
			loc := &locator{}
			loc.init(xs, extrap)

			idx, err := loc.search(math.NaN())
			if _, ok := err.(*DomainError); !ok || idx != -1 {
				t.Errorf("%d) Expected (-1, *DomainError) for a NaN query "+
					"with extrap = %v. Got %d, %v.", i+1, extrap, idx, err)
			}
		}
	}
}

func TestSearchPathsAgree(t *testing.T) {
	// The arithmetic path and the binary search implement the same
	// interval rule, so forcing a uniform grid down the search path must
	// not change any answer.
	xs := linspace(0, 5, 21)
	fast, slow := &locator{}, &locator{}
	fast.init(xs, false)
	slow.init(xs, false)
	slow.unif = false

	qs := append(linspace(0, 5, 201), xs...)
	for _, x := range qs {
		fastIdx, err := fast.search(x)
		if err != nil {
			t.Fatal(err.Error())
		}
		slowIdx, err := slow.search(x)
		if err != nil {
			t.Fatal(err.Error())
		}
		if fastIdx != slowIdx {
			t.Errorf("Arithmetic path gives %d at x = %g, but the search "+
				"path gives %d.", fastIdx, x, slowIdx)
		}
	}
}
