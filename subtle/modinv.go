package subtle

import "fmt"

// ModInverse returns x with a·x ≡ 1 (mod m) and 0 <= x < m.
//
// It runs the extended Euclidean algorithm iteratively, carrying each
// (remainder, coefficient) pair with the coefficient kept reduced modulo m so
// no negative values are needed. It fails with ErrNoInverse when
// gcd(a, m) != 1 and with ErrInvalidArgument when m is zero.
func ModInverse(a, m *Nat) (*Nat, error) {
	if a == nil {
		return nil, fmt.Errorf("%w: operand is required", ErrInvalidArgument)
	}
	if m == nil || m.IsZero() {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	if m.isOne() {
		return NewNat(0), nil
	}

	md := m.le()
	_, ar := divMod(a.le(), md)

	// Invariant: r ≡ s·a (mod m) for both pairs.
	r0, r1 := md, ar
	s0, s1 := []uint8{0}, []uint8{1}
	for !(len(r1) == 1 && r1[0] == 0) {
		q, r := divMod(r0, r1)
		_, qs := divMod(Multiply(&Nat{digits: q}, &Nat{digits: s1}).le(), md)
		r0, r1 = r1, r
		s0, s1 = s1, subMod(s0, qs, md)
	}

	if !(len(r0) == 1 && r0[0] == 1) {
		return nil, fmt.Errorf("%w: gcd(%s, %s) = %s", ErrNoInverse, a, m, &Nat{digits: r0})
	}
	return &Nat{digits: s0}, nil
}

// subMod returns (x - y) mod m for x, y < m.
func subMod(x, y, m []uint8) []uint8 {
	if cmpDigits(x, y) >= 0 {
		return sub(x, y)
	}
	return add(sub(m, y), x)
}
