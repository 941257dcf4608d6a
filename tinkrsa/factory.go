// Package tinkrsa provides Tink integration for block RSA.
// This file contains the factory functions for creating primitives from Tink keyset handles.
package tinkrsa

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/google/tink/go/core/registry"
	"github.com/google/tink/go/insecurecleartextkeyset"
	"github.com/google/tink/go/keyset"
	tinkpb "github.com/google/tink/go/proto/tink_go_proto"

	"github.com/vdparikh/blockrsa"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register registers the private and public key managers with Tink's
// registry. Managers already registered for either type URL, for example ones
// created with custom options, are left in place. It is safe to call more than
// once.
func Register() error {
	registerOnce.Do(func() {
		for _, km := range []registry.KeyManager{NewPrivateKeyManager(), NewPublicKeyManager()} {
			if _, err := registry.GetKeyManager(km.TypeURL()); err == nil {
				continue
			}
			if err := registry.RegisterKeyManager(km); err != nil {
				registerErr = fmt.Errorf("failed to register %s: %w", km.TypeURL(), err)
				return
			}
		}
	})
	return registerErr
}

// NewEncrypter creates a block RSA Encrypter from a private or public keyset
// handle.
//
// Example:
//
//	handle, err := keyset.NewHandle(tinkrsa.DemoKeyTemplate())
//	if err != nil {
//	    return err
//	}
//	public, err := handle.Public()
//	if err != nil {
//	    return err
//	}
//	enc, err := tinkrsa.NewEncrypter(public)
//	if err != nil {
//	    return err
//	}
//	plan, err := enc.Encrypt("HELLOWORLD")
func NewEncrypter(handle *keyset.Handle) (blockrsa.Encrypter, error) {
	primitive, err := primaryPrimitive(handle)
	if err != nil {
		return nil, err
	}
	enc, ok := primitive.(blockrsa.Encrypter)
	if !ok {
		return nil, fmt.Errorf("primary key primitive %T is not a block RSA encrypter", primitive)
	}
	return enc, nil
}

// NewDecrypter creates a block RSA Decrypter from a private keyset handle.
func NewDecrypter(handle *keyset.Handle) (blockrsa.Decrypter, error) {
	primitive, err := primaryPrimitive(handle)
	if err != nil {
		return nil, err
	}
	dec, ok := primitive.(blockrsa.Decrypter)
	if !ok {
		return nil, fmt.Errorf("primary key primitive %T cannot decrypt; a private keyset is required", primitive)
	}
	return dec, nil
}

func primaryPrimitive(handle *keyset.Handle) (interface{}, error) {
	if handle == nil {
		return nil, fmt.Errorf("keyset handle cannot be nil")
	}
	if err := Register(); err != nil {
		return nil, err
	}

	primitives, err := handle.Primitives()
	if err != nil {
		return nil, fmt.Errorf("failed to get primitives from handle: %w", err)
	}
	primary := primitives.Primary
	if primary == nil {
		return nil, fmt.Errorf("no primary key found in keyset")
	}
	return primary.Primitive, nil
}

// NewKeysetHandleFromKey creates a keyset handle from a private key derived
// outside Tink, for example with blockrsa.NewPrivateKeyFromPrimes.
//
// Note: This creates an unencrypted keyset. In production, consider encrypting
// the keyset before storing it using keyset.Write() with an AEAD.
func NewKeysetHandleFromKey(priv *blockrsa.PrivateKey) (*keyset.Handle, error) {
	if priv == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}
	if err := priv.Validate(); err != nil {
		return nil, err
	}
	value, err := marshalPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize key: %w", err)
	}

	keyIDBytes := make([]byte, 4)
	if _, err := rand.Read(keyIDBytes); err != nil {
		return nil, fmt.Errorf("failed to generate key ID: %w", err)
	}
	keyID := binary.BigEndian.Uint32(keyIDBytes) | 1

	keysetKey := &tinkpb.Keyset_Key{
		KeyData: &tinkpb.KeyData{
			TypeUrl:         PrivateKeyTypeURL,
			Value:           value,
			KeyMaterialType: tinkpb.KeyData_ASYMMETRIC_PRIVATE,
		},
		KeyId:            keyID,
		Status:           tinkpb.KeyStatusType_ENABLED,
		OutputPrefixType: tinkpb.OutputPrefixType_RAW,
	}
	ks := &tinkpb.Keyset{
		PrimaryKeyId: keyID,
		Key:          []*tinkpb.Keyset_Key{keysetKey},
	}

	buf := &keyset.MemReaderWriter{Keyset: ks}
	return insecurecleartextkeyset.Read(buf)
}
