package fraction

import "errors"

// Sentinel errors, match with errors.Is.
var (
	ErrInvalidArgument = errors.New("fraction: invalid argument")
	ErrDivisionByZero  = errors.New("fraction: division by zero")
)

func assertTrue(b bool) {
	if !b {
		panic("must be true")
	}
}
