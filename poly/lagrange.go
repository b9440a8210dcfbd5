package poly

import (
	"fmt"

	"github.com/ppopth/threshold-algebra/field"
)

// Interpolate returns the unique polynomial of degree at most D through
// the points (xs[i], ys[i]).
//
// Exactly D+1 points are required. The x-coordinates must be pairwise
// distinct; a repeated one surfaces as field.ErrDivisionByZero.
func Interpolate[E field.Element[E], D Bound](xs, ys []E) (Polynomial[E, D], error) {
	d := bound[D]()
	if len(xs) != d+1 || len(ys) != d+1 {
		return Polynomial[E, D]{}, fmt.Errorf("got %d x and %d y coordinates, want %d: %w", len(xs), len(ys), d+1, ErrSizeMismatch)
	}

	var result Polynomial[E, D]
	for i := 0; i <= d; i++ {
		// term = ys[i] * prod_{j != i} (x - xs[j]) / (xs[i] - xs[j]),
		// with ys[i] folded into the first linear factor
		term := Constant[E, D](ys[i].One())
		scale := ys[i]
		scaled := false
		for j := 0; j <= d; j++ {
			if i == j {
				continue
			}
			factor, err := basisFactor[E, D](xs[i], xs[j], scale)
			if err != nil {
				return Polynomial[E, D]{}, fmt.Errorf("interpolating point %d against %d: %w", i, j, err)
			}
			term, err = term.Mul(factor)
			if err != nil {
				return Polynomial[E, D]{}, err
			}
			scale, scaled = scale.One(), true
		}
		if !scaled {
			term = term.Scale(scale)
		}
		result = result.Add(term)
	}
	return result, nil
}

// basisFactor returns s(x - xj)/(xi - xj), the linear polynomial worth s
// at xi and zero at xj
func basisFactor[E field.Element[E], D Bound](xi, xj, s E) (Polynomial[E, D], error) {
	c0, err := s.Mul(xj).Div(xj.Sub(xi))
	if err != nil {
		return Polynomial[E, D]{}, err
	}
	c1, err := s.Div(xi.Sub(xj))
	if err != nil {
		return Polynomial[E, D]{}, err
	}
	return FromCoefficients[E, D](c0, c1)
}
