package field

import (
	"bytes"
	"errors"
	"testing"
)

var gf4Nonzero = []GF4{One, Alpha, AlphaPlusOne}

// TestGF4Constructor tests tag validation
func TestGF4Constructor(t *testing.T) {
	for tag := uint8(0); tag < GF4Order; tag++ {
		e, err := NewGF4(tag)
		if err != nil {
			t.Fatalf("NewGF4(%d) failed: %v", tag, err)
		}
		if e.Tag() != tag {
			t.Errorf("NewGF4(%d) has tag %d", tag, e.Tag())
		}
	}

	for _, tag := range []uint8{4, 5, 128, 255} {
		_, err := NewGF4(tag)
		if !errors.Is(err, ErrDomain) {
			t.Errorf("NewGF4(%d) should fail with ErrDomain, got %v", tag, err)
		}
	}

	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustGF4(4) should panic")
		}
	}()
	MustGF4(4)
}

// TestGF4HasFourElements tests closure and enumeration order
func TestGF4HasFourElements(t *testing.T) {
	elems := GF4Elements()
	if len(elems) != GF4Order {
		t.Fatalf("expected %d elements, got %d", GF4Order, len(elems))
	}
	for i := range elems {
		if elems[i].Tag() != uint8(i) {
			t.Errorf("element %d has tag %d", i, elems[i].Tag())
		}
		for j := 0; j < i; j++ {
			if elems[i].Equal(elems[j]) {
				t.Errorf("elements %d and %d are equal", i, j)
			}
		}
	}

	// Next visits all four elements and returns to zero
	e := Zero
	for i := 0; i < GF4Order; i++ {
		if !e.Equal(elems[i]) {
			t.Errorf("step %d: expected %s, got %s", i, elems[i], e)
		}
		e = e.Next()
	}
	if !e.IsZero() {
		t.Errorf("enumeration should wrap to zero, got %s", e)
	}
}

// TestGF4Tables checks the arithmetic against the canonical tables
func TestGF4Tables(t *testing.T) {
	add := [4][4]uint8{{0, 1, 2, 3}, {1, 0, 3, 2}, {2, 3, 0, 1}, {3, 2, 1, 0}}
	mul := [4][4]uint8{{0, 0, 0, 0}, {0, 1, 2, 3}, {0, 2, 3, 1}, {0, 3, 1, 2}}
	div := [4][4]uint8{{0, 0, 0, 0}, {0, 1, 3, 2}, {0, 2, 1, 3}, {0, 3, 2, 1}}

	for a := uint8(0); a < GF4Order; a++ {
		for b := uint8(0); b < GF4Order; b++ {
			x, y := MustGF4(a), MustGF4(b)
			if got := x.Add(y).Tag(); got != add[a][b] {
				t.Errorf("%d + %d = %d, expected %d", a, b, got, add[a][b])
			}
			if got := x.Sub(y).Tag(); got != add[a][b] {
				t.Errorf("%d - %d = %d, expected %d", a, b, got, add[a][b])
			}
			if got := x.Mul(y).Tag(); got != mul[a][b] {
				t.Errorf("%d * %d = %d, expected %d", a, b, got, mul[a][b])
			}
			if b == 0 {
				continue
			}
			q, err := x.Div(y)
			if err != nil {
				t.Fatalf("%d / %d failed: %v", a, b, err)
			}
			if q.Tag() != div[a][b] {
				t.Errorf("%d / %d = %d, expected %d", a, b, q.Tag(), div[a][b])
			}
		}
	}
}

// TestGF4IsField verifies the field axioms exhaustively
func TestGF4IsField(t *testing.T) {
	elems := GF4Elements()

	// Additive group
	for _, a := range elems {
		if !a.Add(Zero).Equal(a) {
			t.Errorf("%s + 0 != %s", a, a)
		}
		if !a.Add(Zero.Sub(a)).IsZero() {
			t.Errorf("%s + (0 - %s) != 0", a, a)
		}
		if !a.Add(a.Neg()).IsZero() {
			t.Errorf("%s + (-%s) != 0", a, a)
		}
		for _, b := range elems {
			if !a.Add(b).Equal(b.Add(a)) {
				t.Errorf("%s + %s not commutative", a, b)
			}
			for _, c := range elems {
				if !a.Add(b).Add(c).Equal(a.Add(b.Add(c))) {
					t.Errorf("(%s + %s) + %s not associative", a, b, c)
				}
			}
		}
	}

	// Multiplicative group of the non-zero elements
	for _, a := range gf4Nonzero {
		if !a.Mul(One).Equal(a) {
			t.Errorf("%s * 1 != %s", a, a)
		}
		inv, err := One.Div(a)
		if err != nil {
			t.Fatalf("1 / %s failed: %v", a, err)
		}
		if !a.Mul(inv).Equal(One) {
			t.Errorf("%s * (1 / %s) != 1", a, a)
		}
		for _, b := range gf4Nonzero {
			if a.Mul(b).IsZero() {
				t.Errorf("%s * %s is zero", a, b)
			}
			if !a.Mul(b).Equal(b.Mul(a)) {
				t.Errorf("%s * %s not commutative", a, b)
			}
			for _, c := range gf4Nonzero {
				if !a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))) {
					t.Errorf("(%s * %s) * %s not associative", a, b, c)
				}
			}
		}
	}

	// Distributivity over all 64 triples
	for _, a := range elems {
		if !a.Mul(Zero).IsZero() {
			t.Errorf("%s * 0 != 0", a)
		}
		for _, b := range elems {
			for _, c := range elems {
				if !a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) {
					t.Errorf("%s * (%s + %s) not distributive", a, b, c)
				}
			}
		}
	}
}

// TestGF4DivisionInvertsMultiplication tests (a / b) * b = a and (a * b) / b = a
func TestGF4DivisionInvertsMultiplication(t *testing.T) {
	for _, a := range GF4Elements() {
		for _, b := range gf4Nonzero {
			q, err := a.Div(b)
			if err != nil {
				t.Fatalf("%s / %s failed: %v", a, b, err)
			}
			if !q.Mul(b).Equal(a) {
				t.Errorf("(%s / %s) * %s != %s", a, b, b, a)
			}
			back, err := a.Mul(b).Div(b)
			if err != nil {
				t.Fatalf("%s / %s failed: %v", a.Mul(b), b, err)
			}
			if !back.Equal(a) {
				t.Errorf("(%s * %s) / %s != %s", a, b, b, a)
			}
		}
	}
}

// TestGF4DivisionByZero tests that every division by zero is rejected
func TestGF4DivisionByZero(t *testing.T) {
	for _, a := range GF4Elements() {
		q, err := a.Div(Zero)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s / 0 should fail with ErrDivisionByZero, got %v", a, err)
		}
		if !q.IsZero() {
			t.Errorf("failed division should return the zero value, got %s", q)
		}
	}
	if _, err := Zero.Inv(); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("0^(-1) should fail with ErrDivisionByZero, got %v", err)
	}
}

// TestGF4OneDivAlpha tests 1 / alpha = alpha+1
func TestGF4OneDivAlpha(t *testing.T) {
	q, err := One.Div(Alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !q.Equal(AlphaPlusOne) {
		t.Errorf("1 / alpha = %s, expected alpha+1", q)
	}
	if !Alpha.Add(One).Equal(AlphaPlusOne) {
		t.Errorf("alpha + 1 = %s", Alpha.Add(One))
	}
	// alpha is a root of x^2 + x + 1
	if !Alpha.Mul(Alpha).Add(Alpha).Add(One).IsZero() {
		t.Errorf("alpha is not a root of x^2 + x + 1")
	}
}

// TestGF4StringAndParse tests rendering and its inverse
func TestGF4StringAndParse(t *testing.T) {
	expected := []string{"0", "1", "alpha", "alpha+1"}
	for i, e := range GF4Elements() {
		if e.String() != expected[i] {
			t.Errorf("element %d renders as %q, expected %q", i, e.String(), expected[i])
		}
		parsed, err := ParseGF4(e.String())
		if err != nil {
			t.Fatalf("ParseGF4(%q) failed: %v", e.String(), err)
		}
		if !parsed.Equal(e) {
			t.Errorf("ParseGF4(%q) = %s", e.String(), parsed)
		}
	}

	tests := []struct {
		in   string
		want GF4
	}{
		{"2", Alpha},
		{"3", AlphaPlusOne},
		{" alpha+1 ", AlphaPlusOne},
	}
	for _, tc := range tests {
		got, err := ParseGF4(tc.in)
		if err != nil || !got.Equal(tc.want) {
			t.Errorf("ParseGF4(%q) = %s, %v; expected %s", tc.in, got, err, tc.want)
		}
	}

	for _, bad := range []string{"", "4", "beta", "alpha+2", "-1"} {
		if _, err := ParseGF4(bad); !errors.Is(err, ErrDomain) {
			t.Errorf("ParseGF4(%q) should fail with ErrDomain, got %v", bad, err)
		}
	}
}

// TestRandomGF4 tests that random elements stay in the field
func TestRandomGF4(t *testing.T) {
	src := bytes.NewReader([]byte{0x00, 0x01, 0xFE, 0xFF})
	expected := []GF4{Zero, One, Alpha, AlphaPlusOne}
	for _, want := range expected {
		e, err := RandomGF4(src)
		if err != nil {
			t.Fatal(err)
		}
		if !e.Equal(want) {
			t.Errorf("expected %s, got %s", want, e)
		}
	}
	if _, err := RandomGF4(src); err == nil {
		t.Errorf("exhausted reader should fail")
	}
}
