package subtle

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"
)

func TestMultiply(t *testing.T) {
	testCases := []struct {
		name string
		a, b string
		want string
	}{
		{"nines", "999", "999", "998001"},
		{"zero_left", "0", "12345", "0"},
		{"zero_right", "12345", "0", "0"},
		{"identity", "1", "987654321", "987654321"},
		{"leading_zeros", "000123", "0045", "5535"},
		{"carry_chain", "99999999", "99999999", "9999999800000001"},
		{"demo_modulus", "1000003", "1000033", "1000036000099"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Multiply(mustNat(t, tc.a), mustNat(t, tc.b))
			if got.String() != tc.want {
				t.Errorf("Multiply(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestMultiply_MatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		a := randomDecimal(rng, 1+rng.Intn(300))
		b := randomDecimal(rng, 1+rng.Intn(300))

		got := Multiply(mustNat(t, a), mustNat(t, b))
		want := new(big.Int).Mul(mustBig(t, a), mustBig(t, b))
		if got.String() != want.String() {
			t.Fatalf("Multiply(%s, %s) = %s, want %s", a, b, got, want)
		}
		if got.Len() > len(a)+len(b) {
			t.Fatalf("product has %d digits, more than %d", got.Len(), len(a)+len(b))
		}
	}
}

func TestMultiply_DoesNotModifyOperands(t *testing.T) {
	a := mustNat(t, "123456789")
	b := mustNat(t, "987654321")
	Multiply(a, b)
	Multiply(a, a)
	if a.String() != "123456789" || b.String() != "987654321" {
		t.Errorf("operands changed: a=%s b=%s", a, b)
	}
}

func BenchmarkMultiply(b *testing.B) {
	rng := rand.New(rand.NewSource(2))
	for _, size := range []int{16, 64, 256} {
		x := MustParseNat(randomDecimal(rng, size))
		y := MustParseNat(randomDecimal(rng, size))
		b.Run(fmt.Sprintf("%d_digits", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				Multiply(x, y)
			}
		})
	}
}
