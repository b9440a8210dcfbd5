package field

import "errors"

var (
	// ErrDomain is returned when a value does not name an element of the field
	ErrDomain = errors.New("value outside the field")

	// ErrDivisionByZero is returned when dividing by the zero element
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDigitCount is returned when a digit sequence cannot be packed into whole bytes
	ErrDigitCount = errors.New("digit count is not a multiple of the digits per byte")

	// ErrSingularMatrix is returned when a matrix has no inverse
	ErrSingularMatrix = errors.New("matrix not invertible")

	// ErrMatrixShape is returned when matrix dimensions do not fit the operation
	ErrMatrixShape = errors.New("matrix dimensions mismatch")
)

// Element is the capability set of a finite field element.
//
// E is the concrete element type itself, so that arithmetic stays typed
// without interface boxing. The zero value of E must be the additive
// identity.
type Element[E any] interface {
	// Add returns a + b in the field
	Add(b E) E

	// Sub returns a - b in the field
	Sub(b E) E

	// Mul returns a * b in the field
	Mul(b E) E

	// Div returns a / b in the field, or ErrDivisionByZero if b is zero
	Div(b E) (E, error)

	// Neg returns the additive inverse of a
	Neg() E

	// One returns the multiplicative identity, whatever the receiver
	One() E

	// Next returns the successor of a in a fixed enumeration order that
	// visits every element once and wraps to zero
	Next() E

	// IsZero returns true if the element is the zero element
	IsZero() bool

	// Equal returns true if two elements are equal
	Equal(b E) bool

	// String returns the string representation of the element
	String() string
}
