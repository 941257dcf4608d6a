package subtle

import (
	"errors"
	"math/big"
	"testing"
)

func TestDeriveKey_DemoPrimes(t *testing.T) {
	n, d, err := DeriveKey(NewNat(1000003), NewNat(1000033), NewNat(65537))
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if n.String() != "1000036000099" {
		t.Errorf("n = %s, want 1000036000099", n)
	}

	phi := big.NewInt(1000002 * 1000032)
	want := new(big.Int).ModInverse(big.NewInt(65537), phi)
	if d.String() != want.String() {
		t.Errorf("d = %s, want %s", d, want)
	}
}

func TestDeriveKey_Errors(t *testing.T) {
	if _, _, err := DeriveKey(NewNat(1), NewNat(1000033), NewNat(65537)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("p=1: error = %v, want ErrInvalidArgument", err)
	}
	if _, _, err := DeriveKey(nil, NewNat(7), NewNat(3)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil p: error = %v, want ErrInvalidArgument", err)
	}
	// φ is even for odd primes, so e = 2 has no inverse.
	if _, _, err := DeriveKey(NewNat(1000003), NewNat(1000033), NewNat(2)); !errors.Is(err, ErrNoInverse) {
		t.Errorf("e=2: error = %v, want ErrNoInverse", err)
	}
}
