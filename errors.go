package pchip

import (
	"fmt"
	"math"
)

// DimensionError is returned by New and NewWithDerivs when the input tables
// do not all have the same length.
type DimensionError struct {
	XLen, YLen int
	// DLen is -1 when no derivative table was supplied.
	DLen int
}

func (e *DimensionError) Error() string {
	if e.DLen < 0 {
		return fmt.Sprintf("Input table has len(xs) = %d but len(ys) = %d.",
			e.XLen, e.YLen)
	}
	return fmt.Sprintf("Input table has len(xs) = %d, len(ys) = %d, "+
		"and len(ds) = %d.", e.XLen, e.YLen, e.DLen)
}

// ConstraintError is returned by New and NewWithDerivs when the input table
// has a consistent shape but cannot support an interpolant, either because it
// contains fewer than two points or because xs is not strictly increasing.
type ConstraintError struct {
	Reason string
}

func (e *ConstraintError) Error() string { return e.Reason }

func tooFewPointsErr(n int) *ConstraintError {
	return &ConstraintError{fmt.Sprintf("Input table has length %d, but "+
		"at least 2 points are needed.", n)}
}

func notIncreasingErr() *ConstraintError {
	return &ConstraintError{"xs must be strictly increasing"}
}

// DomainError is returned when a query point falls outside the interpolation
// range of an Interpolator which does not extrapolate. X is the offending
// point and Above gives the side of the range it fell on. NaN queries are
// rejected even by extrapolating Interpolators and report Above as false.
type DomainError struct {
	X, Lo, Hi float64
	Above     bool
}

func (e *DomainError) Error() string {
	if math.IsNaN(e.X) {
		return fmt.Sprintf("Point NaN outside interpolation range [%g, %g].",
			e.Lo, e.Hi)
	}
	if e.Above {
		return fmt.Sprintf("Point %g above interpolation range [%g, %g].",
			e.X, e.Lo, e.Hi)
	}
	return fmt.Sprintf("Point %g below interpolation range [%g, %g].",
		e.X, e.Lo, e.Hi)
}
