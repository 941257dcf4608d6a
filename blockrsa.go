// Package blockrsa implements textbook RSA over decimal-encoded text blocks.
//
// Text is encoded three decimal digits per character, split into blocks whose
// encoded value stays below the modulus, and each block is raised to the
// public exponent using the digit-level arithmetic in the subtle package.
// The block size chosen at encryption time must be kept with the ciphertext;
// decryption needs it to restore characters with small code points.
//
// This is not a padding-compliant or constant-time RSA. It exists to exercise
// schoolbook arithmetic end to end.
//
// Example usage:
//
//	priv, err := blockrsa.NewPrivateKeyFromPrimes(p, q, blockrsa.DefaultPublicExponent)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	cipher, err := blockrsa.NewPrivateBlockCipher(priv)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	plan, err := cipher.Encrypt("HELLOWORLD")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Send plan.Ciphertext together with plan.BlockSize.
//	message, err := cipher.Decrypt(plan.Ciphertext, plan.BlockSize)
package blockrsa

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"github.com/vdparikh/blockrsa/subtle"
)

// BlockCipher encrypts and, when it holds a private key, decrypts messages
// block by block. It keeps no mutable state between calls and is safe for
// concurrent use.
type BlockCipher struct {
	pub         PublicKey
	priv        *PrivateKey
	log         logr.Logger
	concurrency int
}

// NewBlockCipher returns an encrypt-only cipher for pub.
func NewBlockCipher(pub *PublicKey, opts ...Option) (*BlockCipher, error) {
	if pub == nil {
		return nil, fmt.Errorf("%w: public key is required", ErrInvalidArgument)
	}
	if err := pub.Validate(); err != nil {
		return nil, err
	}
	return newBlockCipher(*pub, nil, opts...), nil
}

// NewPrivateBlockCipher returns a cipher that can both encrypt and decrypt.
func NewPrivateBlockCipher(priv *PrivateKey, opts ...Option) (*BlockCipher, error) {
	if priv == nil {
		return nil, fmt.Errorf("%w: private key is required", ErrInvalidArgument)
	}
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	return newBlockCipher(priv.PublicKey, priv, opts...), nil
}

func newBlockCipher(pub PublicKey, priv *PrivateKey, opts ...Option) *BlockCipher {
	c := &BlockCipher{
		pub:         pub,
		priv:        priv,
		log:         logr.Discard(),
		concurrency: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PublicKey returns the public half of the cipher's key.
func (c *BlockCipher) PublicKey() PublicKey {
	return c.pub
}

// CanDecrypt reports whether the cipher holds a private exponent.
func (c *BlockCipher) CanDecrypt() bool {
	return c.priv != nil
}

// Encrypt splits message into blocks and encrypts each under the public key.
//
// It starts at MaxBlockChars(N). If any encoded block is >= N, the whole
// message is split again from scratch with one character fewer per block,
// until every block fits. It fails with ErrModulusTooSmall when even
// single-character blocks do not fit, and with ErrInvalidInput for characters
// above MaxCodePoint.
func (c *BlockCipher) Encrypt(message string) (*BlockPlan, error) {
	n := c.pub.N
	if n == nil || n.IsZero() {
		return nil, fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	if err := checkCodePoints(message); err != nil {
		return nil, err
	}

	for k := MaxBlockChars(n); k > 0; k-- {
		fragments := SplitBlocks(message, k)
		encoded := make([]*subtle.Nat, len(fragments))
		fits := true
		for i, fragment := range fragments {
			m, err := EncodeMessage(fragment)
			if err != nil {
				return nil, err
			}
			if m.Cmp(n) >= 0 {
				c.log.V(1).Info("encoded block does not fit below modulus, shrinking block size",
					"block", i, "blockSize", k)
				fits = false
				break
			}
			encoded[i] = m
		}
		if !fits {
			continue
		}

		ciphertext, err := c.exponentiate(encoded, c.pub.E)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt: %w", err)
		}
		c.log.V(1).Info("encrypted message", "blockSize", k, "blocks", len(fragments))
		return &BlockPlan{
			BlockSize:  k,
			Fragments:  fragments,
			Ciphertext: ciphertext,
			Length:     utf8.RuneCountInString(message),
		}, nil
	}

	return nil, fmt.Errorf("%w: n=%s", ErrModulusTooSmall, n)
}

// Decrypt recovers the message from cipher values encrypted with block size
// blockSize. Every block but the last is decoded to exactly blockSize
// characters. The length of the last block is not known here, so leading
// U+0000 characters in it are treated as padding and dropped, including the
// whole fragment when it is all U+0000. Use DecryptPlan when the message
// length is available.
func (c *BlockCipher) Decrypt(ciphertext []*subtle.Nat, blockSize int) (string, error) {
	return c.decrypt(ciphertext, blockSize, -1)
}

// DecryptPlan is like Decrypt but uses plan.Length to decode the last block at
// its exact width. Only plan.BlockSize, plan.Ciphertext and plan.Length are
// read.
func (c *BlockCipher) DecryptPlan(plan *BlockPlan) (string, error) {
	if plan == nil {
		return "", fmt.Errorf("%w: block plan is required", ErrInvalidArgument)
	}
	return c.decrypt(plan.Ciphertext, plan.BlockSize, plan.Length)
}

// decrypt treats a negative length as unknown.
func (c *BlockCipher) decrypt(ciphertext []*subtle.Nat, blockSize, length int) (string, error) {
	if c.priv == nil {
		return "", ErrNoPrivateKey
	}
	if len(ciphertext) == 0 && length <= 0 {
		return "", nil
	}
	if blockSize <= 0 {
		return "", fmt.Errorf("%w: block size must be positive, got %d", ErrInvalidArgument, blockSize)
	}

	lastWidth := 0
	if length >= 0 {
		lastWidth = length - blockSize*(len(ciphertext)-1)
		if lastWidth < 1 || lastWidth > blockSize {
			return "", fmt.Errorf("%w: message length %d does not match %d blocks of %d characters",
				ErrInvalidArgument, length, len(ciphertext), blockSize)
		}
	}

	n := c.pub.N
	if n == nil || n.IsZero() {
		return "", fmt.Errorf("%w: modulus must be positive", ErrInvalidArgument)
	}
	for i, v := range ciphertext {
		if v == nil {
			return "", fmt.Errorf("%w: cipher block %d is missing", ErrInvalidArgument, i)
		}
		if v.Cmp(n) >= 0 {
			return "", fmt.Errorf("%w: cipher block %d is not below the modulus", ErrInvalidInput, i)
		}
	}

	encoded, err := c.exponentiate(ciphertext, c.priv.D)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt: %w", err)
	}

	var b strings.Builder
	last := len(encoded) - 1
	for i, m := range encoded {
		width := blockSize
		if i == last && lastWidth > 0 {
			width = lastWidth
		}
		fragment, err := DecodeMessage(m, width)
		if err != nil {
			return "", fmt.Errorf("failed to decode block %d: %w", i, err)
		}
		if i == last && lastWidth == 0 {
			fragment = strings.TrimLeft(fragment, "\x00")
		}
		b.WriteString(fragment)
	}
	return b.String(), nil
}

// exponentiate raises every value to exp mod N. Results are written by index,
// so the output order never depends on scheduling.
func (c *BlockCipher) exponentiate(values []*subtle.Nat, exp *subtle.Nat) ([]*subtle.Nat, error) {
	out := make([]*subtle.Nat, len(values))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, v := range values {
		i, v := i, v
		g.Go(func() error {
			r, err := subtle.ModExp(v, exp, c.pub.N)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			out[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
