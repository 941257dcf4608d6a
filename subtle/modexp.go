package subtle

import "fmt"

// ModExp returns base^exponent mod modulus using right-to-left binary
// exponentiation. Every product is reduced immediately, so operands never grow
// past twice the digit length of the modulus regardless of the exponent.
//
// A modulus of one always yields zero, and exponent zero yields one otherwise.
// A zero modulus fails with ErrInvalidArgument.
func ModExp(base, exponent, modulus *Nat) (*Nat, error) {
	if base == nil || exponent == nil {
		return nil, fmt.Errorf("%w: base and exponent are required", ErrInvalidArgument)
	}
	if modulus == nil || modulus.IsZero() {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	if modulus.isOne() {
		return NewNat(0), nil
	}

	b, err := Reduce(base, modulus)
	if err != nil {
		return nil, err
	}
	result := NewNat(1)
	e := exponent

	for !e.IsZero() {
		if e.isOdd() {
			result = mulMod(result, b, modulus)
		}
		e = e.half()
		// The last square would never be used.
		if !e.IsZero() {
			b = mulMod(b, b, modulus)
		}
	}
	return result, nil
}
