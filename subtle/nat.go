// Package subtle provides the low-level decimal arithmetic behind block RSA.
// Every multiplication, reduction and exponent step works on decimal digit
// sequences directly; nothing here delegates to math/big. It should not be used
// directly by most users; instead use the high-level APIs in the parent package.
package subtle

import (
	"fmt"
	"strings"
)

// Nat is an arbitrary-precision non-negative integer held as decimal digits,
// least significant digit first. A Nat is never modified after construction,
// so values can be shared freely between goroutines.
type Nat struct {
	// digits carries no most-significant zeros; zero is the single digit 0.
	digits []uint8
}

var zeroDigits = []uint8{0}

// NewNat returns v as a Nat.
func NewNat(v uint64) *Nat {
	if v == 0 {
		return &Nat{digits: []uint8{0}}
	}
	d := make([]uint8, 0, 20)
	for v > 0 {
		d = append(d, uint8(v%10))
		v /= 10
	}
	return &Nat{digits: d}
}

// ParseNat parses a non-negative decimal integer. Leading zeros are accepted
// and ignored; signs, spaces and any other characters are rejected.
func ParseNat(s string) (*Nat, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty decimal string", ErrInvalidArgument)
	}
	d := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("%w: %q is not a non-negative decimal integer", ErrInvalidArgument, s)
		}
		d[len(s)-1-i] = c - '0'
	}
	return &Nat{digits: trim(d)}, nil
}

// MustParseNat is like ParseNat but panics on malformed input. It is meant for
// constants.
func MustParseNat(s string) *Nat {
	n, err := ParseNat(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NatFromDigits builds a Nat from decimal digits ordered most significant
// first. An empty slice yields zero.
func NatFromDigits(digits []uint8) (*Nat, error) {
	if len(digits) == 0 {
		return NewNat(0), nil
	}
	d := make([]uint8, len(digits))
	for i, v := range digits {
		if v > 9 {
			return nil, fmt.Errorf("%w: digit %d at position %d is out of range 0..9", ErrInvalidArgument, v, i)
		}
		d[len(digits)-1-i] = v
	}
	return &Nat{digits: trim(d)}, nil
}

// le returns the normalized least-significant-first digits. A nil or zero
// value Nat reads as zero. Callers must not modify the result.
func (x *Nat) le() []uint8 {
	if x == nil || len(x.digits) == 0 {
		return zeroDigits
	}
	return x.digits
}

// Digits returns a copy of the digits of x, most significant first.
func (x *Nat) Digits() []uint8 {
	d := x.le()
	out := make([]uint8, len(d))
	for i, v := range d {
		out[len(d)-1-i] = v
	}
	return out
}

// Len returns the number of decimal digits of x. Zero has one digit.
func (x *Nat) Len() int {
	return len(x.le())
}

// IsZero reports whether x == 0.
func (x *Nat) IsZero() bool {
	d := x.le()
	return len(d) == 1 && d[0] == 0
}

func (x *Nat) isOne() bool {
	d := x.le()
	return len(d) == 1 && d[0] == 1
}

func (x *Nat) isOdd() bool {
	return x.le()[0]%2 == 1
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Nat) Cmp(y *Nat) int {
	return cmpDigits(x.le(), y.le())
}

// Equal reports whether x and y hold the same value.
func (x *Nat) Equal(y *Nat) bool {
	return x.Cmp(y) == 0
}

// Uint64 returns x as a uint64 and whether it fits.
func (x *Nat) Uint64() (uint64, bool) {
	d := x.le()
	const max = ^uint64(0)
	var v uint64
	for i := len(d) - 1; i >= 0; i-- {
		dig := uint64(d[i])
		if v > (max-dig)/10 {
			return 0, false
		}
		v = v*10 + dig
	}
	return v, true
}

// String returns the decimal representation of x.
func (x *Nat) String() string {
	d := x.le()
	var b strings.Builder
	b.Grow(len(d))
	for i := len(d) - 1; i >= 0; i-- {
		b.WriteByte('0' + d[i])
	}
	return b.String()
}

// half returns floor(x / 2), walking the digits from the most significant end.
func (x *Nat) half() *Nat {
	d := x.le()
	out := make([]uint8, len(d))
	var rem uint8
	for i := len(d) - 1; i >= 0; i-- {
		cur := rem*10 + d[i]
		out[i] = cur / 2
		rem = cur % 2
	}
	return &Nat{digits: trim(out)}
}

// pred returns x - 1. x must be positive.
func (x *Nat) pred() *Nat {
	return &Nat{digits: sub(x.le(), []uint8{1})}
}

// trim drops most-significant zeros, keeping a single digit for zero.
func trim(d []uint8) []uint8 {
	for len(d) > 1 && d[len(d)-1] == 0 {
		d = d[:len(d)-1]
	}
	if len(d) == 0 {
		return []uint8{0}
	}
	return d
}

func cmpDigits(a, b []uint8) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func add(a, b []uint8) []uint8 {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]uint8, len(a)+1)
	var carry uint8
	for i := range a {
		s := a[i] + carry
		if i < len(b) {
			s += b[i]
		}
		out[i] = s % 10
		carry = s / 10
	}
	out[len(a)] = carry
	return trim(out)
}

// sub returns a - b into a fresh slice. a must be >= b.
func sub(a, b []uint8) []uint8 {
	out := make([]uint8, len(a))
	copy(out, a)
	return subInPlace(out, b)
}

// subInPlace computes a -= b inside a's backing array. a must be >= b.
func subInPlace(a, b []uint8) []uint8 {
	var borrow uint8
	for i := range a {
		s := borrow
		if i < len(b) {
			s += b[i]
		}
		if a[i] >= s {
			a[i] -= s
			borrow = 0
		} else {
			a[i] = a[i] + 10 - s
			borrow = 1
		}
	}
	return trim(a)
}
