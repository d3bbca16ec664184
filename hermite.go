package pchip

// Cubic Hermite basis over the unit interval. phi blends the endpoint values
// and psi blends the endpoint tangents: phi(0) = 0, phi(1) = 1, and both
// basis functions are flat at 0 and 1 except for psi'(1) = 1.
func phi(t float64) float64 { return t * t * (3 - 2*t) }
func psi(t float64) float64 { return t * t * (t - 1) }

func dPhi(t float64) float64 { return 6 * t * (1 - t) }
func dPsi(t float64) float64 { return t * (3*t - 2) }

func ddPhi(t float64) float64 { return 6 - 12*t }
func ddPsi(t float64) float64 { return 6*t - 2 }

// evalInterval evaluates the cubic owned by interval i at x. x does not need
// to fall inside the interval: an extrapolating Interpolator evaluates its
// boundary cubics past their nominal domain.
func (p *Interpolator) evalInterval(i int, x float64) float64 {
	x1, x2 := p.xs[i], p.xs[i+1]
	y1, y2 := p.ys[i], p.ys[i+1]
	d1, d2 := p.ds[i], p.ds[i+1]
	h := x2 - x1
	t, u := (x-x1)/h, (x2-x)/h

	return y1*phi(u) + y2*phi(t) - d1*h*psi(u) + d2*h*psi(t)
}

// derivInterval evaluates a derivative of the cubic owned by interval i at
// x. Order 0 is the value itself and orders above three are identically
// zero.
func (p *Interpolator) derivInterval(i int, x float64, order int) float64 {
	x1, x2 := p.xs[i], p.xs[i+1]
	y1, y2 := p.ys[i], p.ys[i+1]
	d1, d2 := p.ds[i], p.ds[i+1]
	h := x2 - x1
	t, u := (x-x1)/h, (x2-x)/h

	switch order {
	case 0:
		return p.evalInterval(i, x)
	case 1:
		return (y2*dPhi(t)-y1*dPhi(u))/h + d1*dPsi(u) + d2*dPsi(t)
	case 2:
		return (y2*ddPhi(t)+y1*ddPhi(u))/(h*h) +
			(d2*ddPsi(t)-d1*ddPsi(u))/h
	case 3:
		return 12*(y1-y2)/(h*h*h) + 6*(d1+d2)/(h*h)
	default:
		return 0
	}
}
