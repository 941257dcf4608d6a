package blockrsa

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/vdparikh/blockrsa/subtle"
)

// DefaultPublicExponent is the conventional public exponent 65537.
var DefaultPublicExponent = subtle.NewNat(65537)

// DemoPrimes are the fixed primes used by the example programs. They are far
// too small for real secrecy.
var DemoPrimes = [2]*subtle.Nat{subtle.NewNat(1000003), subtle.NewNat(1000033)}

// PublicKey holds the modulus N and public exponent E.
type PublicKey struct {
	N *subtle.Nat
	E *subtle.Nat
}

// PrivateKey embeds the public key and adds the private exponent D.
type PrivateKey struct {
	PublicKey
	D *subtle.Nat
}

// NewPrivateKeyFromPrimes derives a key pair from caller-supplied primes:
// N = p·q and D = E⁻¹ mod (p−1)(q−1). The primes are not tested for primality.
func NewPrivateKeyFromPrimes(p, q, e *subtle.Nat) (*PrivateKey, error) {
	n, d, err := subtle.DeriveKey(p, q, e)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key from primes: %w", err)
	}
	priv := &PrivateKey{PublicKey: PublicKey{N: n, E: e}, D: d}
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	return priv, nil
}

// Validate checks the public key and reports every problem found.
func (pub *PublicKey) Validate() error {
	if err := pub.problems().ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

func (pub *PublicKey) problems() *multierror.Error {
	var result *multierror.Error
	if pub.N == nil {
		result = multierror.Append(result, errors.New("missing modulus"))
	} else if MaxBlockChars(pub.N) == 0 {
		result = multierror.Append(result, fmt.Errorf("modulus must be greater than 1, got %s", pub.N))
	}
	if pub.E == nil {
		result = multierror.Append(result, errors.New("missing public exponent"))
	} else if pub.E.IsZero() {
		result = multierror.Append(result, errors.New("public exponent must be positive"))
	}
	return result
}

// Validate checks both halves of the key and that D undoes E on a few probe
// values. Every problem found is reported.
func (priv *PrivateKey) Validate() error {
	result := priv.PublicKey.problems()
	if priv.D == nil {
		result = multierror.Append(result, errors.New("missing private exponent"))
	} else if priv.D.IsZero() {
		result = multierror.Append(result, errors.New("private exponent must be positive"))
	}

	if result.ErrorOrNil() == nil {
		for _, v := range []uint64{2, 3, 5} {
			probe, err := subtle.Reduce(subtle.NewNat(v), priv.N)
			if err != nil {
				result = multierror.Append(result, err)
				break
			}
			c, err := subtle.ModExp(probe, priv.E, priv.N)
			if err == nil {
				c, err = subtle.ModExp(c, priv.D, priv.N)
			}
			if err != nil {
				result = multierror.Append(result, err)
				break
			}
			if !c.Equal(probe) {
				result = multierror.Append(result, errors.New("private exponent does not invert the public exponent"))
				break
			}
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}
