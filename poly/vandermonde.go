package poly

import (
	"fmt"

	"github.com/ppopth/threshold-algebra/field"
)

// InterpolateVandermonde returns the same polynomial as Interpolate by
// solving the Vandermonde system V c = y, where V[i][k] = xs[i]^k.
//
// A repeated x-coordinate makes V singular and fails with field.ErrSingularMatrix.
func InterpolateVandermonde[E field.Element[E], D Bound](xs, ys []E) (Polynomial[E, D], error) {
	d := bound[D]()
	if len(xs) != d+1 || len(ys) != d+1 {
		return Polynomial[E, D]{}, fmt.Errorf("got %d x and %d y coordinates, want %d: %w", len(xs), len(ys), d+1, ErrSizeMismatch)
	}

	// Build Vandermonde matrix where V[i][k] = xs[i]^k
	vandermonde := make([][]E, d+1)
	for i, x := range xs {
		vandermonde[i] = make([]E, d+1)
		power := x.One()
		for k := 0; k <= d; k++ {
			vandermonde[i][k] = power
			power = power.Mul(x)
		}
	}

	inv, err := field.InvertMatrix(vandermonde)
	if err != nil {
		return Polynomial[E, D]{}, err
	}

	column := make([][]E, d+1)
	for i, y := range ys {
		column[i] = []E{y}
	}
	coeffs, err := field.MatrixMultiply(inv, column)
	if err != nil {
		return Polynomial[E, D]{}, err
	}

	result := make([]E, d+1)
	for k := range result {
		result[k] = coeffs[k][0]
	}
	return New[E, D](result...)
}
