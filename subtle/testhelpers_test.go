package subtle

import (
	"math/big"
	"math/rand"
	"strings"
	"testing"
)

// randomDecimal returns a decimal string of exactly n digits with no leading zero.
func randomDecimal(rng *rand.Rand, n int) string {
	var b strings.Builder
	b.WriteByte(byte('1' + rng.Intn(9)))
	for i := 1; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(10)))
	}
	return b.String()
}

func mustBig(t testing.TB, s string) *big.Int {
	t.Helper()
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		t.Fatalf("Failed to parse %q as big.Int", s)
	}
	return v
}

func mustNat(t testing.TB, s string) *Nat {
	t.Helper()
	n, err := ParseNat(s)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", s, err)
	}
	return n
}
