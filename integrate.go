package pchip

// Integrate computes the definite integral of the interpolant from lo to hi.
// Reversing the bounds negates the result. Both bounds must be within the
// sample range unless the Interpolator was created with Extrapolate(true).
func (p *Interpolator) Integrate(lo, hi float64) (float64, error) {
	if hi < lo {
		sum, err := p.Integrate(hi, lo)
		return -sum, err
	}

	iLo, err := p.loc.search(lo)
	if err != nil {
		return 0, err
	}
	iHi, err := p.loc.search(hi)
	if err != nil {
		return 0, err
	}

	if iLo == iHi {
		return p.simpson(iLo, lo, hi), nil
	}

	sum := p.simpson(iLo, lo, p.xs[iLo+1]) + p.simpson(iHi, p.xs[iHi], hi)
	for i := iLo + 1; i < iHi; i++ {
		sum += p.simpson(i, p.xs[i], p.xs[i+1])
	}

	return sum, nil
}

// simpson integrates the cubic owned by interval i over [lo, hi] with the
// three point Simpson rule. The rule is exact for cubics, so the only error
// in Integrate is float rounding.
func (p *Interpolator) simpson(i int, lo, hi float64) float64 {
	yLo := p.evalInterval(i, lo)
	yMid := p.evalInterval(i, (lo+hi)/2)
	yHi := p.evalInterval(i, hi)

	return (hi - lo) / 6 * (yLo + 4*yMid + yHi)
}
