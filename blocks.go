package blockrsa

import (
	"github.com/vdparikh/blockrsa/subtle"
)

// BlockPlan is the result of splitting and encrypting one message. BlockSize
// and the order of Ciphertext must travel with the ciphertext: the block size
// cannot be recovered from the cipher values alone.
type BlockPlan struct {
	// BlockSize is the number of characters per fragment (k).
	BlockSize int
	// Fragments holds the plaintext fragments in message order. Every
	// fragment has BlockSize characters except possibly the last.
	Fragments []string
	// Ciphertext holds one cipher value per fragment, in the same order.
	Ciphertext []*subtle.Nat
	// Length is the message length in characters.
	Length int
}

// MaxBlockChars returns the starting block size for modulus n:
// max(1, (digits(n)-1)/3) for n > 1, and 0 otherwise. It is an estimate; a
// particular block of that size can still encode to a value >= n.
func MaxBlockChars(n *subtle.Nat) int {
	if n == nil || n.Cmp(subtle.NewNat(1)) <= 0 {
		return 0
	}
	k := (n.Len() - 1) / DigitsPerChar
	if k < 1 {
		k = 1
	}
	return k
}

// SplitBlocks splits message into consecutive fragments of k characters. The
// last fragment may be shorter. An empty message or k <= 0 yields no fragments.
func SplitBlocks(message string, k int) []string {
	if k <= 0 || message == "" {
		return nil
	}
	chars := []rune(message)
	fragments := make([]string, 0, (len(chars)+k-1)/k)
	for i := 0; i < len(chars); i += k {
		end := i + k
		if end > len(chars) {
			end = len(chars)
		}
		fragments = append(fragments, string(chars[i:end]))
	}
	return fragments
}

// EncryptBlocks splits message into blocks that fit below n and raises each
// encoded block to e mod n. See BlockCipher.Encrypt.
func EncryptBlocks(message string, e, n *subtle.Nat) (*BlockPlan, error) {
	return newBlockCipher(PublicKey{N: n, E: e}, nil).Encrypt(message)
}

// DecryptBlocks recovers the message from cipher values produced with block
// size blockSize. See BlockCipher.Decrypt. The message length is not an
// input, so leading U+0000 characters of the last fragment are lost, and a
// last fragment made only of U+0000 disappears; BlockCipher.DecryptPlan
// restores them.
func DecryptBlocks(ciphertext []*subtle.Nat, d, n *subtle.Nat, blockSize int) (string, error) {
	priv := &PrivateKey{PublicKey: PublicKey{N: n}, D: d}
	return newBlockCipher(priv.PublicKey, priv).Decrypt(ciphertext, blockSize)
}
