// Package fraction implements an exact rational number value type.
//
// A Fraction keeps the numerator and denominator exactly as given, it is never
// reduced to lowest terms implicitly. Equality compares mathematical value, so
// 1/2 equals 2/4, and Hash is consistent with that equality.
//
// The zero value is the fraction 0/1.
package fraction

import (
	"fmt"
	"strconv"
)

// Fraction is a numerator/denominator pair with a strictly positive denominator.
type Fraction struct {
	numerator   int32
	denominator int32 // 0 only in the zero value, read as 1
}

// New returns p/q. It fails with ErrInvalidArgument if q <= 0.
func New(p int32, q int32) (Fraction, error) {
	var f Fraction
	f.SetNumerator(p)
	if err := f.SetDenominator(q); err != nil {
		return Fraction{}, err
	}
	return f, nil
}

// MustNew is like New but panics on an invalid denominator.
func MustNew(p int32, q int32) Fraction {
	f, err := New(p, q)
	if err != nil {
		panic(err)
	}
	return f
}

func build(p int32, q int32) Fraction {
	assertTrue(q > 0)
	return Fraction{numerator: p, denominator: q}
}

// Numerator ...
func (f Fraction) Numerator() int32 {
	return f.numerator
}

// SetNumerator ...
func (f *Fraction) SetNumerator(p int32) {
	f.numerator = p
}

// Denominator returns the denominator, always > 0.
func (f Fraction) Denominator() int32 {
	if f.denominator == 0 {
		return 1
	}
	return f.denominator
}

// SetDenominator sets the denominator. A value <= 0 is rejected with
// ErrInvalidArgument and leaves f unchanged.
func (f *Fraction) SetDenominator(q int32) error {
	if q <= 0 {
		return fmt.Errorf("denominator must be positive, got %d: %w", q, ErrInvalidArgument)
	}
	f.denominator = q
	return nil
}

// Value ...
func (f Fraction) Value() float64 {
	return float64(f.numerator) / float64(f.Denominator())
}

// String renders the raw fields as "p/q".
func (f Fraction) String() string {
	return strconv.FormatInt(int64(f.numerator), 10) + "/" + strconv.FormatInt(int64(f.Denominator()), 10)
}

// ScaleInt64 returns v * p / q, truncated toward zero.
func (f Fraction) ScaleInt64(v int64) int64 {
	return v * int64(f.numerator) / int64(f.Denominator())
}
