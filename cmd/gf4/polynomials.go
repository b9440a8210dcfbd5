package main

import (
	"fmt"

	"github.com/ppopth/threshold-algebra/field"
	"github.com/ppopth/threshold-algebra/poly"
)

// maxDegree is the largest degree bound the commands instantiate
const maxDegree = 7

// gf4Polynomial is the part of poly.Polynomial the commands need,
// independent of the degree bound
type gf4Polynomial interface {
	fmt.Stringer
	Degree() int
	Bound() int
	Evaluate(x field.GF4) field.GF4
}

func wrap[D poly.Bound](p poly.Polynomial[field.GF4, D], err error) (gf4Polynomial, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}

// newPolynomial builds the polynomial whose degree bound is len(coeffs)-1
func newPolynomial(coeffs []field.GF4) (gf4Polynomial, error) {
	switch len(coeffs) - 1 {
	case 0:
		return wrap[poly.Deg0](poly.New[field.GF4, poly.Deg0](coeffs...))
	case 1:
		return wrap[poly.Deg1](poly.New[field.GF4, poly.Deg1](coeffs...))
	case 2:
		return wrap[poly.Deg2](poly.New[field.GF4, poly.Deg2](coeffs...))
	case 3:
		return wrap[poly.Deg3](poly.New[field.GF4, poly.Deg3](coeffs...))
	case 4:
		return wrap[poly.Deg4](poly.New[field.GF4, poly.Deg4](coeffs...))
	case 5:
		return wrap[poly.Deg5](poly.New[field.GF4, poly.Deg5](coeffs...))
	case 6:
		return wrap[poly.Deg6](poly.New[field.GF4, poly.Deg6](coeffs...))
	case 7:
		return wrap[poly.Deg7](poly.New[field.GF4, poly.Deg7](coeffs...))
	}
	return nil, fmt.Errorf("%d coefficients: degree bound must be in [0, %d]", len(coeffs), maxDegree)
}

// interpolate runs Lagrange interpolation with degree bound len(xs)-1
func interpolate(xs, ys []field.GF4) (gf4Polynomial, error) {
	switch len(xs) - 1 {
	case 0:
		return wrap[poly.Deg0](poly.Interpolate[field.GF4, poly.Deg0](xs, ys))
	case 1:
		return wrap[poly.Deg1](poly.Interpolate[field.GF4, poly.Deg1](xs, ys))
	case 2:
		return wrap[poly.Deg2](poly.Interpolate[field.GF4, poly.Deg2](xs, ys))
	case 3:
		return wrap[poly.Deg3](poly.Interpolate[field.GF4, poly.Deg3](xs, ys))
	}
	// GF(4) has only four points, so larger bounds can never have distinct x-coordinates
	return nil, fmt.Errorf("%d points: at most %d distinct points exist", len(xs), field.GF4Order)
}
