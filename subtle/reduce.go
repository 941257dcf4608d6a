package subtle

import "fmt"

// Reduce returns x mod m, computed by long division on the decimal digits.
// It fails with ErrInvalidArgument when m is zero.
func Reduce(x, m *Nat) (*Nat, error) {
	if m == nil || m.IsZero() {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	_, r := divMod(x.le(), m.le())
	return &Nat{digits: r}, nil
}

// divMod returns floor(x/m) and x mod m. Both inputs must be trimmed and m must
// be non-zero. The results never alias the inputs.
func divMod(x, m []uint8) (q, r []uint8) {
	if cmpDigits(x, m) < 0 {
		r = make([]uint8, len(x))
		copy(r, x)
		return []uint8{0}, r
	}

	q = make([]uint8, len(x))
	r = make([]uint8, 0, len(m)+1)
	for i := len(x) - 1; i >= 0; i-- {
		// r = r*10 + x[i]
		r = append(r, 0)
		copy(r[1:], r[:len(r)-1])
		r[0] = x[i]
		r = trim(r)

		// r < 10·m here, so at most nine subtractions.
		var qd uint8
		for cmpDigits(r, m) >= 0 {
			r = subInPlace(r, m)
			qd++
		}
		q[i] = qd
	}
	return trim(q), r
}

func mulMod(a, b, m *Nat) *Nat {
	_, r := divMod(Multiply(a, b).le(), m.le())
	return &Nat{digits: r}
}
