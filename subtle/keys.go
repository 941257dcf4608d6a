package subtle

import "fmt"

// DeriveKey computes the modulus n = p·q and the private exponent
// d = e⁻¹ mod (p−1)(q−1) from caller-supplied primes. p and q are not tested
// for primality.
func DeriveKey(p, q, e *Nat) (n, d *Nat, err error) {
	if p == nil || q == nil || e == nil {
		return nil, nil, fmt.Errorf("%w: p, q and e are required", ErrInvalidArgument)
	}
	two := NewNat(2)
	if p.Cmp(two) < 0 || q.Cmp(two) < 0 {
		return nil, nil, fmt.Errorf("%w: primes must be at least 2, got p=%s q=%s", ErrInvalidArgument, p, q)
	}

	n = Multiply(p, q)
	phi := Multiply(p.pred(), q.pred())
	d, err = ModInverse(e, phi)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive private exponent: %w", err)
	}
	return n, d, nil
}
