/*package pchip computes shape-preserving piecewise cubic Hermite
interpolants (PCHIP) through tables of sample points. The interpolant passes
through every sample, is monotone wherever the samples are monotone, and does
not overshoot or oscillate near local extrema the way a natural cubic spline
can. It can be evaluated, differentiated, and integrated anywhere in the
sample range, or outside it when extrapolation is switched on.
*/
package pchip

// Interpolator is a PCHIP interpolant through a fixed table of samples. It
// is immutable once constructed: every method is read-only, so a single
// Interpolator may be used from many goroutines at once.
type Interpolator struct {
	xs, ys, ds  []float64
	extrapolate bool
	loc         locator
}

type internalOption func(*Interpolator)

// Option is an abstract data type which allows for the customization of
// calls to New and NewWithDerivs without cluttering the call signature in
// the common case. This works similarly to kwargs in other languages.
type Option internalOption

func (p *Interpolator) loadOptions(opts []Option) {
	for _, opt := range opts {
		opt(p)
	}
}

// Extrapolate controls whether queries outside the sample range evaluate the
// nearest boundary cubic past its nominal domain instead of failing with a
// *DomainError. The default is false. Extrapolated values are an extension
// of the boundary cubic, not a new fit, and degrade with distance from the
// sample range.
func Extrapolate(on bool) Option {
	return func(p *Interpolator) { p.extrapolate = on }
}

// New creates an Interpolator through the given samples, estimating the
// tangent at every sample from the data with a monotonicity-preserving rule.
// xs must be strictly increasing and both tables must share a length of at
// least two.
//
// The input tables are copied, so the caller may modify them afterwards
// without disturbing the Interpolator.
func New(xs, ys []float64, opts ...Option) (*Interpolator, error) {
	if len(xs) != len(ys) {
		return nil, &DimensionError{XLen: len(xs), YLen: len(ys), DLen: -1}
	}
	if err := validateGrid(xs); err != nil {
		return nil, err
	}

	p := &Interpolator{xs: dup(xs), ys: dup(ys)}
	p.ds = estimateDerivs(p.xs, p.ys)
	p.loadOptions(opts)
	p.loc.init(p.xs, p.extrapolate)

	return p, nil
}

// NewWithDerivs creates an Interpolator which uses the caller's derivative
// table instead of estimating tangents from the data. It is the escape hatch
// for custom tangent schemes: nothing is checked about ds beyond its length,
// so a table which does not respect the shape of ys can overshoot. The same
// grid constraints as New apply.
func NewWithDerivs(xs, ys, ds []float64, opts ...Option) (*Interpolator, error) {
	if len(xs) != len(ys) || len(xs) != len(ds) {
		return nil, &DimensionError{
			XLen: len(xs), YLen: len(ys), DLen: len(ds),
		}
	}
	if err := validateGrid(xs); err != nil {
		return nil, err
	}

	p := &Interpolator{xs: dup(xs), ys: dup(ys), ds: dup(ds)}
	p.loadOptions(opts)
	p.loc.init(p.xs, p.extrapolate)

	return p, nil
}

// validateGrid checks the two grid constraints that the derivative estimator
// and the locator both rely on: at least two samples and strictly increasing
// xs.
func validateGrid(xs []float64) error {
	if len(xs) < 2 {
		return tooFewPointsErr(len(xs))
	}
	for i := 0; i < len(xs)-1; i++ {
		// The positive comparison also rejects NaN positions, which fail
		// every ordering test and would slip through the negated form.
		if !(xs[i] < xs[i+1]) {
			return notIncreasingErr()
		}
	}
	return nil
}

// Eval computes the value of the interpolant at x.
//
// x must be within the sample range unless the Interpolator was created with
// Extrapolate(true).
func (p *Interpolator) Eval(x float64) (float64, error) {
	i, err := p.loc.search(x)
	if err != nil {
		return 0, err
	}
	return p.evalInterval(i, x), nil
}

// EvalAll computes the value of the interpolant at every point in xs. If an
// output slice is given, the values are written into it, otherwise a new
// slice is allocated. On error the contents of the output slice are
// unspecified.
func (p *Interpolator) EvalAll(xs []float64, out ...[]float64) ([]float64, error) {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	for i := range xs {
		y, err := p.Eval(xs[i])
		if err != nil {
			return nil, err
		}
		out[0][i] = y
	}

	return out[0], nil
}

// Deriv computes the derivative of the interpolant at x to the given order.
// Order 0 is the value itself and orders above three are identically zero.
// The same range rules as Eval apply.
func (p *Interpolator) Deriv(x float64, order int) (float64, error) {
	i, err := p.loc.search(x)
	if err != nil {
		return 0, err
	}
	return p.derivInterval(i, x, order), nil
}

// Xs returns a copy of the sample positions.
func (p *Interpolator) Xs() []float64 { return dup(p.xs) }

// Ys returns a copy of the sample values.
func (p *Interpolator) Ys() []float64 { return dup(p.ys) }

// Derivs returns a copy of the tangent table, one derivative per sample.
func (p *Interpolator) Derivs() []float64 { return dup(p.ds) }

// Len returns the number of samples.
func (p *Interpolator) Len() int { return len(p.xs) }

// Bounds returns the positions of the first and last sample.
func (p *Interpolator) Bounds() (lo, hi float64) {
	return p.xs[0], p.xs[len(p.xs)-1]
}

// Extrapolating reports whether queries outside the sample range are legal
// for this Interpolator.
func (p *Interpolator) Extrapolating() bool { return p.extrapolate }

func dup(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	return out
}
