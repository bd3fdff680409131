package fraction

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse reads a fraction in the String format "p/q". A bare integer "p" is p/1.
// Malformed input, int32 overflow and q <= 0 are all ErrInvalidArgument.
func Parse(s string) (Fraction, error) {
	text := strings.TrimSpace(s)

	numText, denText := text, "1"
	if i := strings.IndexByte(text, '/'); i >= 0 {
		numText, denText = text[:i], text[i+1:]
	}

	p, err := parseInt32(numText)
	if err != nil {
		return Fraction{}, fmt.Errorf("parse fraction %q: numerator: %v: %w", s, err, ErrInvalidArgument)
	}
	q, err := parseInt32(denText)
	if err != nil {
		return Fraction{}, fmt.Errorf("parse fraction %q: denominator: %v: %w", s, err, ErrInvalidArgument)
	}

	f, err := New(p, q)
	if err != nil {
		return Fraction{}, fmt.Errorf("parse fraction %q: %w", s, err)
	}
	return f, nil
}

func parseInt32(s string) (int32, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, err
	}
	return int32(v), nil
}

// MarshalText implements encoding.TextMarshaler.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// MarshalYAML encodes f as a "p/q" scalar.
func (f Fraction) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML accepts a "p/q" string or an integer scalar.
func (f *Fraction) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: fraction must be a scalar: %w", value.Line, ErrInvalidArgument)
	}
	v, err := Parse(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*f = v
	return nil
}
