// This file defines the primitive interfaces used by the Tink integration in
// the tinkrsa package.

package blockrsa

import "github.com/vdparikh/blockrsa/subtle"

// Encrypter is a Tink-style primitive for block RSA encryption.
// Encryption is deterministic: the same message and key always yield the same
// plan.
type Encrypter interface {
	// Encrypt splits message into blocks that fit below the modulus and
	// encrypts each one.
	Encrypt(message string) (*BlockPlan, error)
}

// Decrypter is a Tink-style primitive for block RSA decryption.
type Decrypter interface {
	// Decrypt recovers a message from cipher values and the block size used
	// to produce them.
	Decrypt(ciphertext []*subtle.Nat, blockSize int) (string, error)

	// DecryptPlan recovers a message using the block size, cipher values and
	// message length recorded in plan.
	DecryptPlan(plan *BlockPlan) (string, error)
}

var (
	_ Encrypter = (*BlockCipher)(nil)
	_ Decrypter = (*BlockCipher)(nil)
)
