package field

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

// GF4 is an element of the finite field GF(2)[x]/(x^2 + x + 1).
//
// Elements are tagged 0, 1, 2, 3 for 0, 1, alpha and alpha+1, where alpha
// is the image of x. The zero value is the zero element.
type GF4 struct {
	tag uint8
}

// GF4Order is the number of elements of GF(4)
const GF4Order = 4

var _ Element[GF4] = GF4{}

// Named elements of GF(4)
var (
	Zero         = GF4{0}
	One          = GF4{1}
	Alpha        = GF4{2}
	AlphaPlusOne = GF4{3}
)

type gf4Table = [GF4Order][GF4Order]uint8

var gf4Addition = gf4Table{
	{0, 1, 2, 3},
	{1, 0, 3, 2},
	{2, 3, 0, 1},
	{3, 2, 1, 0},
}

var gf4Multiplication = gf4Table{
	{0, 0, 0, 0},
	{0, 1, 2, 3},
	{0, 2, 3, 1},
	{0, 3, 1, 2},
}

// gf4Division[a][b] = a / b. Column 0 is never read.
var gf4Division = gf4Table{
	{0, 0, 0, 0},
	{0, 1, 3, 2},
	{0, 2, 1, 3},
	{0, 3, 2, 1},
}

var gf4Names = [GF4Order]string{"0", "1", "alpha", "alpha+1"}

// NewGF4 creates the element with the given tag
func NewGF4(tag uint8) (GF4, error) {
	if tag >= GF4Order {
		return GF4{}, fmt.Errorf("GF(4) tag %d: %w", tag, ErrDomain)
	}
	return GF4{tag}, nil
}

// MustGF4 is like NewGF4 but panics on an invalid tag
func MustGF4(tag uint8) GF4 {
	e, err := NewGF4(tag)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseGF4 parses the rendering produced by String. Decimal tags are
// accepted as well.
func ParseGF4(s string) (GF4, error) {
	s = strings.TrimSpace(s)
	for tag, name := range gf4Names {
		if s == name {
			return GF4{uint8(tag)}, nil
		}
	}
	switch s {
	case "2":
		return Alpha, nil
	case "3":
		return AlphaPlusOne, nil
	}
	return GF4{}, fmt.Errorf("parse GF(4) element %q: %w", s, ErrDomain)
}

// RandomGF4 returns a uniformly random element read from r
func RandomGF4(r io.Reader) (GF4, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return GF4{}, err
	}
	// 256 is a multiple of 4, so the low two bits are uniform
	return GF4{b[0] & 0x3}, nil
}

// GF4Elements returns every element in enumeration order
func GF4Elements() []GF4 {
	elems := make([]GF4, 0, GF4Order)
	for e := range AllGF4() {
		elems = append(elems, e)
	}
	return elems
}

// AllGF4 enumerates the field starting from zero
func AllGF4() iter.Seq[GF4] {
	return func(yield func(GF4) bool) {
		e := Zero
		for {
			if !yield(e) {
				return
			}
			e = e.Next()
			if e.IsZero() {
				return
			}
		}
	}
}

// Tag returns the integer tag of a in [0, 3]
func (a GF4) Tag() uint8 {
	return a.tag
}

// Add returns a + b
func (a GF4) Add(b GF4) GF4 {
	return GF4{gf4Addition[a.tag][b.tag]}
}

// Sub returns a - b, which equals a + b in characteristic 2
func (a GF4) Sub(b GF4) GF4 {
	return GF4{gf4Addition[a.tag][b.tag]}
}

// Mul returns a * b
func (a GF4) Mul(b GF4) GF4 {
	return GF4{gf4Multiplication[a.tag][b.tag]}
}

// Div returns a / b
func (a GF4) Div(b GF4) (GF4, error) {
	if b.tag == 0 {
		return GF4{}, fmt.Errorf("%s / 0: %w", a, ErrDivisionByZero)
	}
	return GF4{gf4Division[a.tag][b.tag]}, nil
}

// Inv returns the multiplicative inverse of a
func (a GF4) Inv() (GF4, error) {
	return One.Div(a)
}

// Neg returns -a, which is a itself
func (a GF4) Neg() GF4 {
	return a
}

// One returns the multiplicative identity
func (GF4) One() GF4 {
	return One
}

// Next returns the element after a in the order 0, 1, alpha, alpha+1, 0
func (a GF4) Next() GF4 {
	return GF4{(a.tag + 1) % GF4Order}
}

// IsZero returns true if a is the zero element
func (a GF4) IsZero() bool {
	return a.tag == 0
}

// Equal returns true if a equals b
func (a GF4) Equal(b GF4) bool {
	return a.tag == b.tag
}

// String renders a as "0", "1", "alpha" or "alpha+1"
func (a GF4) String() string {
	return gf4Names[a.tag]
}
