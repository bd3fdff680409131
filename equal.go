package fraction

import "fmt"

// Equals compares f with a Fraction or *Fraction by value.
// Any other operand, a nil pointer included, is an ErrInvalidArgument.
func (f Fraction) Equals(other interface{}) (bool, error) {
	switch o := other.(type) {
	case Fraction:
		return f.Equal(o), nil
	case *Fraction:
		if o != nil {
			return f.Equal(*o), nil
		}
	}
	return false, fmt.Errorf("cannot compare fraction with %T: %w", other, ErrInvalidArgument)
}

// Equal reports whether f and other have the same value.
func (f Fraction) Equal(other Fraction) bool {
	return int64(f.numerator)*int64(other.Denominator()) == int64(other.numerator)*int64(f.Denominator())
}

// NotEqual ...
func (f Fraction) NotEqual(other Fraction) bool {
	return !f.Equal(other)
}

// Reduced returns f in lowest terms. Equal fractions have identical
// reduced forms, so the result can be used as a map key.
func (f Fraction) Reduced() Fraction {
	p, q := int64(f.numerator), int64(f.Denominator())
	d := gcd(abs(p), q)
	return build(int32(p/d), int32(q/d))
}

// Hash is consistent with Equal: it hashes the reduced form.
func (f Fraction) Hash() int32 {
	r := f.Reduced()

	const prime int32 = 23
	hash := int32(17)
	hash = hash*prime + r.numerator
	hash = hash*prime + r.denominator
	return hash
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// gcd expects a, b >= 0, and gcd(0, n) = n.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
