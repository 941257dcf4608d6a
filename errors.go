package blockrsa

import (
	"errors"

	"github.com/vdparikh/blockrsa/subtle"
)

var (
	// ErrInvalidArgument indicates a malformed operand such as a zero modulus,
	// a missing key component or a non-positive block size.
	ErrInvalidArgument = subtle.ErrInvalidArgument

	// ErrNoInverse indicates that the public exponent is not invertible modulo
	// the totient, so no private exponent exists.
	ErrNoInverse = subtle.ErrNoInverse

	// ErrInvalidInput indicates text or block values that cannot be carried by
	// the 3-digit character encoding.
	ErrInvalidInput = errors.New("blockrsa: invalid input")

	// ErrModulusTooSmall indicates that not even single-character blocks fit
	// below the modulus.
	ErrModulusTooSmall = errors.New("blockrsa: modulus too small for single-character blocks")

	// ErrNoPrivateKey indicates a decryption attempt on a public-only cipher.
	ErrNoPrivateKey = errors.New("blockrsa: private key required")
)
