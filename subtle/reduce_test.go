package subtle

import (
	"errors"
	"math/big"
	"math/rand"
	"testing"
)

func TestReduce(t *testing.T) {
	testCases := []struct {
		x, m string
	}{
		{"1024", "1000"},
		{"0", "7"},
		{"6", "7"},
		{"7", "7"},
		{"998001", "1"},
		{"1000036000099", "1000003"},
		{"123456789012345678901234567890", "9876543210"},
	}
	for _, tc := range testCases {
		got, err := Reduce(mustNat(t, tc.x), mustNat(t, tc.m))
		if err != nil {
			t.Fatalf("Reduce(%s, %s) failed: %v", tc.x, tc.m, err)
		}
		want := new(big.Int).Mod(mustBig(t, tc.x), mustBig(t, tc.m))
		if got.String() != want.String() {
			t.Errorf("Reduce(%s, %s) = %s, want %s", tc.x, tc.m, got, want)
		}
	}
}

func TestReduce_ZeroModulus(t *testing.T) {
	for _, m := range []*Nat{nil, NewNat(0), mustNat(t, "000")} {
		if _, err := Reduce(NewNat(5), m); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("Reduce(5, %v) error = %v, want ErrInvalidArgument", m, err)
		}
	}
}

func TestDivMod_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 300; i++ {
		x := randomDecimal(rng, 1+rng.Intn(120))
		m := randomDecimal(rng, 1+rng.Intn(60))

		q, r := divMod(mustNat(t, x).le(), mustNat(t, m).le())
		wantQ, wantR := new(big.Int).QuoRem(mustBig(t, x), mustBig(t, m), new(big.Int))
		if got := (&Nat{digits: q}).String(); got != wantQ.String() {
			t.Fatalf("quotient of %s / %s = %s, want %s", x, m, got, wantQ)
		}
		if got := (&Nat{digits: r}).String(); got != wantR.String() {
			t.Fatalf("remainder of %s / %s = %s, want %s", x, m, got, wantR)
		}
	}
}
