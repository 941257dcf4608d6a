package subtle

import "errors"

var (
	// ErrInvalidArgument indicates a malformed or out-of-range operand, such as a
	// zero modulus or a decimal string containing non-digit characters.
	ErrInvalidArgument = errors.New("subtle: invalid argument")

	// ErrNoInverse indicates that a has no inverse modulo m because gcd(a, m) != 1.
	ErrNoInverse = errors.New("subtle: no modular inverse")
)
