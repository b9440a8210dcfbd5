package field

import (
	"fmt"
)

// Matrix operations over finite fields

// InvertMatrix computes the inverse of an n x n matrix over the field using Gaussian elimination.
func InvertMatrix[E Element[E]](A [][]E) ([][]E, error) {
	n := len(A)
	for i := range A {
		if len(A[i]) != n {
			return nil, fmt.Errorf("row %d has %d entries, want %d: %w", i, len(A[i]), n, ErrMatrixShape)
		}
	}

	var zero E
	one := zero.One()

	// Initialize inverse matrix as identity matrix
	inv := make([][]E, n)
	for i := range inv {
		inv[i] = make([]E, n)
		inv[i][i] = one
	}

	// Work on a copy of A
	B := make([][]E, n)
	for i := range A {
		B[i] = append([]E(nil), A[i]...)
	}

	for i := 0; i < n; i++ {
		// Find pivot: look for a non-zero element in column i
		pivot := -1
		for k := i; k < n; k++ {
			if !B[k][i].IsZero() {
				pivot = k
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingularMatrix
		}

		if pivot != i {
			B[i], B[pivot] = B[pivot], B[i]
			inv[i], inv[pivot] = inv[pivot], inv[i]
		}

		// Normalize the pivot row
		invPivot, err := one.Div(B[i][i])
		if err != nil {
			return nil, err
		}
		for j := 0; j < n; j++ {
			B[i][j] = B[i][j].Mul(invPivot)
			inv[i][j] = inv[i][j].Mul(invPivot)
		}

		// Eliminate other rows
		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := B[k][i]
			for j := 0; j < n; j++ {
				B[k][j] = B[k][j].Sub(factor.Mul(B[i][j]))
				inv[k][j] = inv[k][j].Sub(factor.Mul(inv[i][j]))
			}
		}
	}
	return inv, nil
}

// MatrixMultiply computes A × B matrix multiplication over the field
// A is m×n, B is n×p, result is m×p
func MatrixMultiply[E Element[E]](A, B [][]E) ([][]E, error) {
	if len(A) == 0 || len(B) == 0 {
		return nil, nil
	}

	m := len(A)    // rows of A
	n := len(A[0]) // cols of A = rows of B
	p := len(B[0]) // cols of B

	if len(B) != n {
		return nil, fmt.Errorf("A is %d×%d, B is %d×%d: %w", m, n, len(B), p, ErrMatrixShape)
	}

	C := make([][]E, m)
	for i := range C {
		if len(A[i]) != n {
			return nil, fmt.Errorf("row %d of A has %d entries, want %d: %w", i, len(A[i]), n, ErrMatrixShape)
		}
		C[i] = make([]E, p)
		for j := 0; j < p; j++ {
			var sum E
			for k := 0; k < n; k++ {
				if len(B[k]) != p {
					return nil, fmt.Errorf("row %d of B has %d entries, want %d: %w", k, len(B[k]), p, ErrMatrixShape)
				}
				sum = sum.Add(A[i][k].Mul(B[k][j]))
			}
			C[i][j] = sum
		}
	}
	return C, nil
}
