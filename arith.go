package fraction

import "fmt"

// Results of the operators below are not reduced. Operands are never modified.
// Like plain int32 arithmetic they wrap on overflow.

// Add returns a + b.
func Add(a, b Fraction) Fraction {
	aq, bq := a.Denominator(), b.Denominator()
	return build(a.numerator*bq+b.numerator*aq, aq*bq)
}

// Sub returns a - b.
func Sub(a, b Fraction) Fraction {
	aq, bq := a.Denominator(), b.Denominator()
	return build(a.numerator*bq-b.numerator*aq, aq*bq)
}

// Mul returns a * b.
func Mul(a, b Fraction) Fraction {
	return build(a.numerator*b.numerator, a.Denominator()*b.Denominator())
}

// Div returns a / b, or ErrDivisionByZero if b is zero.
// The signs are moved to the numerator to keep the denominator positive.
func Div(a, b Fraction) (Fraction, error) {
	if b.numerator == 0 {
		return Fraction{}, fmt.Errorf("divide %v by %v: %w", a, b, ErrDivisionByZero)
	}

	p := a.numerator * b.Denominator()
	q := a.Denominator() * b.numerator
	if q < 0 {
		p = -p
		q = -q
	}
	return build(p, q), nil
}
