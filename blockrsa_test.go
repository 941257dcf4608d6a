package blockrsa

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-logr/logr/testr"

	"github.com/vdparikh/blockrsa/subtle"
)

func TestBlockCipher_HelloWorld(t *testing.T) {
	priv := demoKey(t)
	if priv.N.String() != "1000036000099" {
		t.Fatalf("unexpected demo modulus %s", priv.N)
	}

	cipher, err := NewPrivateBlockCipher(priv, WithLogger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	plan, err := cipher.Encrypt("HELLOWORLD")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if plan.BlockSize < 1 {
		t.Fatalf("Block size %d must be at least 1", plan.BlockSize)
	}

	recovered, err := cipher.Decrypt(plan.Ciphertext, plan.BlockSize)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if recovered != "HELLOWORLD" {
		t.Errorf("Decryption failed: expected HELLOWORLD, got %s", recovered)
	}

	t.Logf("Block size: %d", plan.BlockSize)
	t.Logf("Plain blocks: %q", plan.Fragments)
	t.Logf("Cipher blocks: %v", plan.Ciphertext)
}

func TestBlockCipher_RoundTrip(t *testing.T) {
	cipher, err := NewPrivateBlockCipher(demoKey(t))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	testCases := []struct {
		name    string
		message string
	}{
		{"Empty", ""},
		{"SingleChar", "A"},
		{"ExactBlocks", "ABCDEFGH"},
		{"Spaces", "  hello  world  "},
		{"Punctuation", "user@domain.com, 123-45-6789!"},
		{"ControlChars", "\x00\x01line\nnext\t\x00"},
		{"HighCodePoints", "ϧϦϥ àéî"},
		{"Long", strings.Repeat("The quick brown fox. ", 8)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			plan, err := cipher.Encrypt(tc.message)
			if err != nil {
				t.Fatalf("Failed to encrypt: %v", err)
			}

			decrypted, err := cipher.DecryptPlan(plan)
			if err != nil {
				t.Fatalf("Failed to decrypt: %v", err)
			}
			if decrypted != tc.message {
				t.Errorf("Decryption failed: expected %q, got %q", tc.message, decrypted)
			}
			if joined := strings.Join(plan.Fragments, ""); joined != tc.message {
				t.Errorf("Fragments do not rebuild the message: %q", joined)
			}
		})
	}
}

func TestBlockCipher_Deterministic(t *testing.T) {
	cipher, err := NewPrivateBlockCipher(demoKey(t))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	plan1, err := cipher.Encrypt("deterministic")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	plan2, err := cipher.Encrypt("deterministic")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	if plan1.BlockSize != plan2.BlockSize || len(plan1.Ciphertext) != len(plan2.Ciphertext) {
		t.Fatal("Encryption is not deterministic: block layout differs")
	}
	for i := range plan1.Ciphertext {
		if !plan1.Ciphertext[i].Equal(plan2.Ciphertext[i]) {
			t.Errorf("Encryption is not deterministic at block %d", i)
		}
	}
}

func TestBlockCipher_ConcurrencyMatchesSequential(t *testing.T) {
	priv := demoKey(t)
	sequential, err := NewPrivateBlockCipher(priv)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}
	parallel, err := NewPrivateBlockCipher(priv, WithConcurrency(4))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	message := strings.Repeat("parallel blocks ", 6)
	want, err := sequential.Encrypt(message)
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	got, err := parallel.Encrypt(message)
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	for i := range want.Ciphertext {
		if !want.Ciphertext[i].Equal(got.Ciphertext[i]) {
			t.Fatalf("Block %d differs: sequential %s, parallel %s", i, want.Ciphertext[i], got.Ciphertext[i])
		}
	}

	decrypted, err := parallel.Decrypt(got.Ciphertext, got.BlockSize)
	if err != nil {
		t.Fatalf("Failed to decrypt: %v", err)
	}
	if decrypted != message {
		t.Errorf("Decryption failed: expected %q, got %q", message, decrypted)
	}
}

func TestBlockCipher_PublicOnly(t *testing.T) {
	priv := demoKey(t)
	cipher, err := NewBlockCipher(&priv.PublicKey)
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}
	if cipher.CanDecrypt() {
		t.Error("public-only cipher reports it can decrypt")
	}

	plan, err := cipher.Encrypt("HI")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}
	if _, err := cipher.Decrypt(plan.Ciphertext, plan.BlockSize); !errors.Is(err, ErrNoPrivateKey) {
		t.Errorf("expected ErrNoPrivateKey, got %v", err)
	}
}

func TestBlockCipher_DecryptPlanLengthMismatch(t *testing.T) {
	cipher, err := NewPrivateBlockCipher(demoKey(t))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}
	plan, err := cipher.Encrypt("HELLOWORLD")
	if err != nil {
		t.Fatalf("Failed to encrypt: %v", err)
	}

	for _, length := range []int{0, 8, 13} {
		bad := *plan
		bad.Length = length
		if _, err := cipher.DecryptPlan(&bad); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("length %d: expected ErrInvalidArgument, got %v", length, err)
		}
	}
}

func TestNewBlockCipher_InvalidKeys(t *testing.T) {
	if _, err := NewBlockCipher(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil key: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewBlockCipher(&PublicKey{N: subtle.NewNat(1), E: subtle.NewNat(3)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("n=1: expected ErrInvalidArgument, got %v", err)
	}
	if _, err := NewPrivateBlockCipher(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil private key: expected ErrInvalidArgument, got %v", err)
	}
}

func BenchmarkEncrypt(b *testing.B) {
	cipher, err := NewPrivateBlockCipher(demoKey(b))
	if err != nil {
		b.Fatalf("Failed to create cipher: %v", err)
	}

	benchmarks := []struct {
		name    string
		message string
	}{
		{"HelloWorld", "HELLOWORLD"},
		{"Sentence", "The quick brown fox jumps over the lazy dog"},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := cipher.Encrypt(bm.message); err != nil {
					b.Fatalf("Encrypt failed: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecrypt(b *testing.B) {
	cipher, err := NewPrivateBlockCipher(demoKey(b))
	if err != nil {
		b.Fatalf("Failed to create cipher: %v", err)
	}
	plan, err := cipher.Encrypt("The quick brown fox jumps over the lazy dog")
	if err != nil {
		b.Fatalf("Encrypt failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cipher.DecryptPlan(plan); err != nil {
			b.Fatalf("Decrypt failed: %v", err)
		}
	}
}
