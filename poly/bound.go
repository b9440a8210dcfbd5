package poly

// Bound fixes the maximum degree of a polynomial type at compile time.
//
// Implementations are zero-size marker types; Polynomial[E, Deg2] and
// Polynomial[E, Deg3] are distinct types that never mix. Callers needing
// a larger bound declare their own marker, whose Degree must be
// non-negative.
type Bound interface {
	Degree() int
}

type (
	Deg0 struct{}
	Deg1 struct{}
	Deg2 struct{}
	Deg3 struct{}
	Deg4 struct{}
	Deg5 struct{}
	Deg6 struct{}
	Deg7 struct{}
)

func (Deg0) Degree() int { return 0 }
func (Deg1) Degree() int { return 1 }
func (Deg2) Degree() int { return 2 }
func (Deg3) Degree() int { return 3 }
func (Deg4) Degree() int { return 4 }
func (Deg5) Degree() int { return 5 }
func (Deg6) Degree() int { return 6 }
func (Deg7) Degree() int { return 7 }

func bound[D Bound]() int {
	var d D
	return d.Degree()
}
