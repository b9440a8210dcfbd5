// Package sharing splits byte secrets into threshold shares over GF(4).
//
// Every byte of the secret is written as four GF(4) digits. Each digit is
// the constant term of a fresh random polynomial of degree at most D, and
// share k holds the evaluations of all those polynomials at a distinct
// non-zero point x_k. Any D+1 shares recover the secret by Lagrange
// interpolation at zero; D or fewer reveal nothing about it.
//
// GF(4) has three non-zero points, so at most three shares exist and the
// degree bound is at most 2.
package sharing

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ppopth/threshold-algebra/field"
	"github.com/ppopth/threshold-algebra/poly"

	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("sharing")

var (
	ErrInvalidConfig      = errors.New("invalid sharing config")
	ErrEmptySecret        = errors.New("secret cannot be empty")
	ErrTooFewShares       = errors.New("not enough shares to reconstruct")
	ErrInconsistentShares = errors.New("inconsistent shares")
)

// MaxShares is the number of non-zero evaluation points in GF(4)
const MaxShares = field.GF4Order - 1

// Config contains configuration for a Splitter
type Config struct {
	// Number of shares produced by Split, between D+1 and MaxShares
	Shares int
	// Source of randomness for the hidden coefficients
	Rand io.Reader
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Shares: MaxShares,
		Rand:   rand.Reader,
	}
}

// Share is one share of a secret
type Share struct {
	X      field.GF4   // Evaluation point, never zero
	Digits []field.GF4 // One evaluation per secret digit
}

// String renders the share as "x=<point> [d0 d1 ...]"
func (s Share) String() string {
	digits := make([]string, len(s.Digits))
	for i, d := range s.Digits {
		digits[i] = d.String()
	}
	return fmt.Sprintf("x=%s [%s]", s.X, strings.Join(digits, " "))
}

// Splitter splits and combines secrets with threshold D+1
type Splitter[D poly.Bound] struct {
	config    *Config
	threshold int
	points    []field.GF4
}

// NewSplitter creates a new Splitter. A nil config uses DefaultConfig.
func NewSplitter[D poly.Bound](config *Config) (*Splitter[D], error) {
	if config == nil {
		config = DefaultConfig()
	}

	var d D
	threshold := d.Degree() + 1
	if threshold < 1 || threshold > MaxShares {
		return nil, fmt.Errorf("threshold %d outside [1, %d]: %w", threshold, MaxShares, ErrInvalidConfig)
	}
	if config.Shares < threshold || config.Shares > MaxShares {
		return nil, fmt.Errorf("share count %d outside [%d, %d]: %w", config.Shares, threshold, MaxShares, ErrInvalidConfig)
	}
	if config.Rand == nil {
		return nil, fmt.Errorf("random source must be provided: %w", ErrInvalidConfig)
	}

	return &Splitter[D]{
		config:    config,
		threshold: threshold,
		points:    evaluationPoints(config.Shares),
	}, nil
}

// evaluationPoints creates evaluation points as powers of alpha, which
// generates the multiplicative group of GF(4)
func evaluationPoints(n int) []field.GF4 {
	points := make([]field.GF4, n)
	power := field.One
	for i := range points {
		points[i] = power
		power = power.Mul(field.Alpha)
	}
	return points
}

// Threshold returns the number of shares needed to reconstruct
func (s *Splitter[D]) Threshold() int {
	return s.threshold
}

// Split divides a secret into the configured number of shares
func (s *Splitter[D]) Split(secret []byte) ([]Share, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}

	digits := field.SplitBytes(secret)
	shares := make([]Share, len(s.points))
	for k, x := range s.points {
		shares[k] = Share{X: x, Digits: make([]field.GF4, len(digits))}
	}

	for i, digit := range digits {
		p, err := s.randomPolynomial(digit)
		if err != nil {
			return nil, fmt.Errorf("generating polynomial for digit %d: %w", i, err)
		}
		for k := range shares {
			shares[k].Digits[i] = p.Evaluate(shares[k].X)
		}
	}

	log.Debugf("split %d-byte secret into %d shares with threshold %d", len(secret), len(shares), s.threshold)
	return shares, nil
}

// randomPolynomial returns a polynomial with the given constant term and
// uniformly random higher coefficients
func (s *Splitter[D]) randomPolynomial(constant field.GF4) (poly.Polynomial[field.GF4, D], error) {
	coeffs := make([]field.GF4, s.threshold)
	coeffs[0] = constant
	for i := 1; i < len(coeffs); i++ {
		c, err := field.RandomGF4(s.config.Rand)
		if err != nil {
			return poly.Polynomial[field.GF4, D]{}, err
		}
		coeffs[i] = c
	}
	return poly.New[field.GF4, D](coeffs...)
}

// Combine recovers the secret from at least Threshold shares. Only the
// first Threshold shares are used; their points must be distinct.
func (s *Splitter[D]) Combine(shares []Share) ([]byte, error) {
	if len(shares) < s.threshold {
		return nil, fmt.Errorf("got %d shares, need %d: %w", len(shares), s.threshold, ErrTooFewShares)
	}
	used := shares[:s.threshold]

	n := len(used[0].Digits)
	if n == 0 {
		return nil, fmt.Errorf("shares carry no digits: %w", ErrInconsistentShares)
	}
	xs := make([]field.GF4, len(used))
	for k, share := range used {
		if len(share.Digits) != n {
			return nil, fmt.Errorf("share %d has %d digits, share 0 has %d: %w", k, len(share.Digits), n, ErrInconsistentShares)
		}
		if share.X.IsZero() {
			return nil, fmt.Errorf("share %d is evaluated at zero: %w", k, ErrInconsistentShares)
		}
		xs[k] = share.X
	}

	digits := make([]field.GF4, n)
	ys := make([]field.GF4, len(used))
	for i := range digits {
		for k, share := range used {
			ys[k] = share.Digits[i]
		}
		p, err := poly.Interpolate[field.GF4, D](xs, ys)
		if err != nil {
			return nil, fmt.Errorf("interpolating digit %d: %w", i, err)
		}
		digits[i] = p.Coefficient(0)
	}

	secret, err := field.JoinBytes(digits)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInconsistentShares, err)
	}
	log.Debugf("combined %d shares into %d-byte secret", len(used), len(secret))
	return secret, nil
}
