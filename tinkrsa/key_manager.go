// Package tinkrsa provides Tink integration for block RSA.
// This file contains the KeyManagers that register block RSA with Tink's registry.
package tinkrsa

import (
	"errors"
	"fmt"

	"github.com/google/tink/go/core/registry"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"
	"google.golang.org/protobuf/proto"

	"github.com/vdparikh/blockrsa"
	"github.com/vdparikh/blockrsa/subtle"
)

const (
	// PrivateKeyTypeURL is the type URL for block RSA private keys in Tink's registry.
	PrivateKeyTypeURL = "type.googleapis.com/google.crypto.tink.BlockRsaPrivateKey"

	// PublicKeyTypeURL is the type URL for block RSA public keys in Tink's registry.
	PublicKeyTypeURL = "type.googleapis.com/google.crypto.tink.BlockRsaPublicKey"
)

var errPublicKeyGeneration = errors.New("public keys are derived from private keys; use keyset.Handle.Public")

// PrivateKeyManager implements registry.PrivateKeyManager for block RSA keys.
// Its primitives implement both blockrsa.Encrypter and blockrsa.Decrypter.
type PrivateKeyManager struct {
	opts []blockrsa.Option
}

// NewPrivateKeyManager creates a private key manager. The options are applied
// to every primitive it creates.
func NewPrivateKeyManager(opts ...blockrsa.Option) *PrivateKeyManager {
	return &PrivateKeyManager{opts: opts}
}

// Primitive creates a block cipher from the given serialized private key.
func (km *PrivateKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	priv, err := unmarshalPrivateKey(serializedKey)
	if err != nil {
		return nil, err
	}
	cipher, err := blockrsa.NewPrivateBlockCipher(priv, km.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}
	return cipher, nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *PrivateKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == PrivateKeyTypeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *PrivateKeyManager) TypeURL() string {
	return PrivateKeyTypeURL
}

// NewKey derives a private key from the primes in the serialized key format.
func (km *PrivateKeyManager) NewKey(serializedKeyFormat []byte) (proto.Message, error) {
	p, q, e, err := parseKeyFormat(serializedKeyFormat)
	if err != nil {
		return nil, err
	}
	priv, err := blockrsa.NewPrivateKeyFromPrimes(p, q, e)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key: %w", err)
	}
	return privateKeyStruct(priv)
}

// NewKeyData creates a new KeyData from the given serialized key format.
func (km *PrivateKeyManager) NewKeyData(serializedKeyFormat []byte) (*tinkpb.KeyData, error) {
	key, err := km.NewKey(serializedKeyFormat)
	if err != nil {
		return nil, err
	}
	value, err := proto.Marshal(key)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}
	return &tinkpb.KeyData{
		TypeUrl:         PrivateKeyTypeURL,
		Value:           value,
		KeyMaterialType: tinkpb.KeyData_ASYMMETRIC_PRIVATE,
	}, nil
}

// PublicKeyData extracts the public half of a serialized private key.
func (km *PrivateKeyManager) PublicKeyData(serializedPrivKey []byte) (*tinkpb.KeyData, error) {
	priv, err := unmarshalPrivateKey(serializedPrivKey)
	if err != nil {
		return nil, err
	}
	value, err := marshalPublicKey(&priv.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize public key: %w", err)
	}
	return &tinkpb.KeyData{
		TypeUrl:         PublicKeyTypeURL,
		Value:           value,
		KeyMaterialType: tinkpb.KeyData_ASYMMETRIC_PUBLIC,
	}, nil
}

// PublicKeyManager implements registry.KeyManager for block RSA public keys.
// Its primitives implement blockrsa.Encrypter only.
type PublicKeyManager struct {
	opts []blockrsa.Option
}

// NewPublicKeyManager creates a public key manager.
func NewPublicKeyManager(opts ...blockrsa.Option) *PublicKeyManager {
	return &PublicKeyManager{opts: opts}
}

// Primitive creates an encrypter from the given serialized public key.
func (km *PublicKeyManager) Primitive(serializedKey []byte) (interface{}, error) {
	pub, err := unmarshalPublicKey(serializedKey)
	if err != nil {
		return nil, err
	}
	cipher, err := blockrsa.NewBlockCipher(pub, km.opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create block cipher: %w", err)
	}
	return &encrypter{cipher: cipher}, nil
}

// DoesSupport returns true if this KeyManager supports the given key type URL.
func (km *PublicKeyManager) DoesSupport(typeURL string) bool {
	return typeURL == PublicKeyTypeURL
}

// TypeURL returns the type URL of the keys managed by this KeyManager.
func (km *PublicKeyManager) TypeURL() string {
	return PublicKeyTypeURL
}

// NewKey is not supported for public keys.
func (km *PublicKeyManager) NewKey(serializedKeyFormat []byte) (proto.Message, error) {
	return nil, errPublicKeyGeneration
}

// NewKeyData is not supported for public keys.
func (km *PublicKeyManager) NewKeyData(serializedKeyFormat []byte) (*tinkpb.KeyData, error) {
	return nil, errPublicKeyGeneration
}

var (
	_ registry.PrivateKeyManager = (*PrivateKeyManager)(nil)
	_ registry.KeyManager        = (*PublicKeyManager)(nil)
)

// encrypter hides the decrypt methods of a public-only block cipher.
type encrypter struct {
	cipher *blockrsa.BlockCipher
}

func (e *encrypter) Encrypt(message string) (*blockrsa.BlockPlan, error) {
	return e.cipher.Encrypt(message)
}

// KeyTemplate creates a key template that derives keys from the primes p and q
// and the public exponent e. The primes are not tested for primality.
func KeyTemplate(p, q, e *subtle.Nat) (*tinkpb.KeyTemplate, error) {
	format, err := newKeyStruct(map[string]*subtle.Nat{"p": p, "q": q, "e": e})
	if err != nil {
		return nil, err
	}
	value, err := proto.Marshal(format)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key template: %w", err)
	}
	return &tinkpb.KeyTemplate{
		TypeUrl:          PrivateKeyTypeURL,
		Value:            value,
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}, nil
}

// DemoKeyTemplate creates a key template for the fixed demo primes
// 1000003 and 1000033 with exponent 65537. It is for examples and tests only.
func DemoKeyTemplate() *tinkpb.KeyTemplate {
	kt, err := KeyTemplate(blockrsa.DemoPrimes[0], blockrsa.DemoPrimes[1], blockrsa.DefaultPublicExponent)
	if err != nil {
		panic(fmt.Sprintf("tinkrsa: invalid demo key template: %v", err))
	}
	return kt
}
