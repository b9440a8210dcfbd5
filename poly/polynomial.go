package poly

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/ppopth/threshold-algebra/field"
)

var (
	// ErrSizeMismatch is returned when a coefficient or sample count differs from D+1
	ErrSizeMismatch = errors.New("size does not match degree bound")

	// ErrDegreeOverflow is returned when a result would not fit in degree bound D
	ErrDegreeOverflow = errors.New("degree overflow")
)

// Polynomial is a polynomial of degree at most D over the field of E.
//
// Coefficients are stored in ascending order of powers of x: New(a, b, c)
// is c.x^2 + b.x + a. The zero value is the zero polynomial. Values are
// immutable; every operation returns a new polynomial.
type Polynomial[E field.Element[E], D Bound] struct {
	coeffs []E // coeffs[i] is the coefficient of x^i, nil or exactly D+1 entries
}

// New creates a polynomial from exactly D+1 coefficients
func New[E field.Element[E], D Bound](coeffs ...E) (Polynomial[E, D], error) {
	d := bound[D]()
	if len(coeffs) != d+1 {
		return Polynomial[E, D]{}, fmt.Errorf("got %d coefficients, want %d: %w", len(coeffs), d+1, ErrSizeMismatch)
	}
	return Polynomial[E, D]{coeffs: append([]E(nil), coeffs...)}, nil
}

// FromCoefficients creates a polynomial from at most D+1 coefficients,
// padding the missing high-order ones with zero
func FromCoefficients[E field.Element[E], D Bound](coeffs ...E) (Polynomial[E, D], error) {
	d := bound[D]()
	if len(coeffs) > d+1 {
		return Polynomial[E, D]{}, fmt.Errorf("got %d coefficients, want at most %d: %w", len(coeffs), d+1, ErrSizeMismatch)
	}
	padded := make([]E, d+1)
	copy(padded, coeffs)
	return Polynomial[E, D]{coeffs: padded}, nil
}

// Constant returns the constant polynomial c
func Constant[E field.Element[E], D Bound](c E) Polynomial[E, D] {
	coeffs := make([]E, bound[D]()+1)
	coeffs[0] = c
	return Polynomial[E, D]{coeffs: coeffs}
}

// Monomial returns c.x^n
func Monomial[E field.Element[E], D Bound](c E, n int) (Polynomial[E, D], error) {
	d := bound[D]()
	if n < 0 || n > d {
		return Polynomial[E, D]{}, fmt.Errorf("exponent %d outside [0, %d]: %w", n, d, ErrDegreeOverflow)
	}
	coeffs := make([]E, d+1)
	coeffs[n] = c
	return Polynomial[E, D]{coeffs: coeffs}, nil
}

// X returns the polynomial x. It fails for a degree bound of 0.
func X[E field.Element[E], D Bound]() (Polynomial[E, D], error) {
	var zero E
	return Monomial[E, D](zero.One(), 1)
}

// All enumerates every polynomial of the type, starting from zero
func All[E field.Element[E], D Bound]() iter.Seq[Polynomial[E, D]] {
	return func(yield func(Polynomial[E, D]) bool) {
		var p Polynomial[E, D]
		for {
			if !yield(p) {
				return
			}
			p = p.Next()
			if p.IsZero() {
				return
			}
		}
	}
}

func (p Polynomial[E, D]) at(i int) E {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}
	var zero E
	return zero
}

// Bound returns the degree bound D
func (p Polynomial[E, D]) Bound() int {
	return bound[D]()
}

// Coefficient returns the coefficient of x^i, zero outside [0, D]
func (p Polynomial[E, D]) Coefficient(i int) E {
	if i < 0 {
		var zero E
		return zero
	}
	return p.at(i)
}

// Coefficients returns a copy of the D+1 coefficients in ascending order
func (p Polynomial[E, D]) Coefficients() []E {
	coeffs := make([]E, bound[D]()+1)
	copy(coeffs, p.coeffs)
	return coeffs
}

// Degree returns the highest power with a non-zero coefficient.
// The zero polynomial has degree 0.
func (p Polynomial[E, D]) Degree() int {
	for i := len(p.coeffs) - 1; i > 0; i-- {
		if !p.coeffs[i].IsZero() {
			return i
		}
	}
	return 0
}

// IsZero returns true if every coefficient is zero
func (p Polynomial[E, D]) IsZero() bool {
	for _, c := range p.coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

// Add returns p + q
func (p Polynomial[E, D]) Add(q Polynomial[E, D]) Polynomial[E, D] {
	sum := make([]E, bound[D]()+1)
	for i := range sum {
		sum[i] = p.at(i).Add(q.at(i))
	}
	return Polynomial[E, D]{coeffs: sum}
}

// Sub returns p - q
func (p Polynomial[E, D]) Sub(q Polynomial[E, D]) Polynomial[E, D] {
	diff := make([]E, bound[D]()+1)
	for i := range diff {
		diff[i] = p.at(i).Sub(q.at(i))
	}
	return Polynomial[E, D]{coeffs: diff}
}

// Neg returns -p
func (p Polynomial[E, D]) Neg() Polynomial[E, D] {
	neg := make([]E, bound[D]()+1)
	for i := range neg {
		neg[i] = p.at(i).Neg()
	}
	return Polynomial[E, D]{coeffs: neg}
}

// Scale returns c.p
func (p Polynomial[E, D]) Scale(c E) Polynomial[E, D] {
	scaled := make([]E, bound[D]()+1)
	for i := range scaled {
		scaled[i] = c.Mul(p.at(i))
	}
	return Polynomial[E, D]{coeffs: scaled}
}

// Mul returns p * q. The product must fit in the degree bound: it fails
// with ErrDegreeOverflow when deg p + deg q > D.
func (p Polynomial[E, D]) Mul(q Polynomial[E, D]) (Polynomial[E, D], error) {
	d := bound[D]()
	if p.Degree()+q.Degree() > d {
		return Polynomial[E, D]{}, fmt.Errorf("deg %d + deg %d exceeds bound %d: %w", p.Degree(), q.Degree(), d, ErrDegreeOverflow)
	}

	prod := make([]E, d+1)
	for i := 0; i <= d; i++ {
		for j := 0; j <= i; j++ {
			prod[i] = prod[i].Add(p.at(j).Mul(q.at(i - j)))
		}
	}
	return Polynomial[E, D]{coeffs: prod}, nil
}

// Evaluate returns p(x)
func (p Polynomial[E, D]) Evaluate(x E) E {
	result := p.at(0)
	power := x.One()
	for i := 1; i <= bound[D](); i++ {
		power = power.Mul(x)
		result = result.Add(p.at(i).Mul(power))
	}
	return result
}

// Next returns the successor of p in a fixed enumeration of all
// polynomials of the type: coefficient 0 is advanced and every wrap to
// zero carries into the next coefficient. The last polynomial wraps to zero.
func (p Polynomial[E, D]) Next() Polynomial[E, D] {
	coeffs := p.Coefficients()
	for i := range coeffs {
		coeffs[i] = coeffs[i].Next()
		if !coeffs[i].IsZero() {
			break
		}
	}
	return Polynomial[E, D]{coeffs: coeffs}
}

// Equal returns true if p and q have the same coefficients
func (p Polynomial[E, D]) Equal(q Polynomial[E, D]) bool {
	for i := 0; i <= bound[D](); i++ {
		if !p.at(i).Equal(q.at(i)) {
			return false
		}
	}
	return true
}

// String renders p as "c_D.x^D + ... + c_1.x + c_0", highest power first.
// Zero terms are left out; the zero polynomial renders as its zero coefficient.
func (p Polynomial[E, D]) String() string {
	var terms []string
	for i := bound[D](); i >= 0; i-- {
		c := p.at(i)
		if c.IsZero() {
			continue
		}
		switch i {
		case 0:
			terms = append(terms, c.String())
		case 1:
			terms = append(terms, c.String()+".x")
		default:
			terms = append(terms, fmt.Sprintf("%s.x^%d", c, i))
		}
	}
	if len(terms) == 0 {
		return p.at(0).String()
	}
	return strings.Join(terms, " + ")
}
