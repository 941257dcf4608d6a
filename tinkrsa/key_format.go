// Package tinkrsa provides Tink integration for block RSA.
// This file contains the serialized forms of keys and key templates.
package tinkrsa

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/vdparikh/blockrsa"
	"github.com/vdparikh/blockrsa/subtle"
)

// keyVersion is the only serialized key version understood by this package.
const keyVersion = 0

// Keys and templates are google.protobuf.Struct messages whose integer fields
// are decimal strings, so values of any size survive serialization.
func newKeyStruct(fields map[string]*subtle.Nat) (*structpb.Struct, error) {
	values := map[string]interface{}{"version": float64(keyVersion)}
	for name, v := range fields {
		if v == nil {
			return nil, fmt.Errorf("missing key field %q", name)
		}
		values[name] = v.String()
	}
	s, err := structpb.NewStruct(values)
	if err != nil {
		return nil, fmt.Errorf("failed to build key struct: %w", err)
	}
	return s, nil
}

func parseKeyStruct(serialized []byte, names ...string) (map[string]*subtle.Nat, error) {
	s := &structpb.Struct{}
	if err := proto.Unmarshal(serialized, s); err != nil {
		return nil, fmt.Errorf("failed to parse serialized key: %w", err)
	}
	if v := s.GetFields()["version"].GetNumberValue(); v > keyVersion {
		return nil, fmt.Errorf("unsupported key version %v (maximum %d)", v, keyVersion)
	}

	out := make(map[string]*subtle.Nat, len(names))
	for _, name := range names {
		field, ok := s.GetFields()[name]
		if !ok {
			return nil, fmt.Errorf("serialized key is missing field %q", name)
		}
		n, err := subtle.ParseNat(field.GetStringValue())
		if err != nil {
			return nil, fmt.Errorf("invalid key field %q: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}

func privateKeyStruct(priv *blockrsa.PrivateKey) (*structpb.Struct, error) {
	return newKeyStruct(map[string]*subtle.Nat{"n": priv.N, "e": priv.E, "d": priv.D})
}

func publicKeyStruct(pub *blockrsa.PublicKey) (*structpb.Struct, error) {
	return newKeyStruct(map[string]*subtle.Nat{"n": pub.N, "e": pub.E})
}

func marshalPrivateKey(priv *blockrsa.PrivateKey) ([]byte, error) {
	s, err := privateKeyStruct(priv)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalPrivateKey(serialized []byte) (*blockrsa.PrivateKey, error) {
	f, err := parseKeyStruct(serialized, "n", "e", "d")
	if err != nil {
		return nil, err
	}
	return &blockrsa.PrivateKey{PublicKey: blockrsa.PublicKey{N: f["n"], E: f["e"]}, D: f["d"]}, nil
}

func marshalPublicKey(pub *blockrsa.PublicKey) ([]byte, error) {
	s, err := publicKeyStruct(pub)
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func unmarshalPublicKey(serialized []byte) (*blockrsa.PublicKey, error) {
	f, err := parseKeyStruct(serialized, "n", "e")
	if err != nil {
		return nil, err
	}
	return &blockrsa.PublicKey{N: f["n"], E: f["e"]}, nil
}

// parseKeyFormat reads the primes and public exponent from a key template
// value. An empty value selects the demo primes with exponent 65537.
func parseKeyFormat(serialized []byte) (p, q, e *subtle.Nat, err error) {
	if len(serialized) == 0 {
		return blockrsa.DemoPrimes[0], blockrsa.DemoPrimes[1], blockrsa.DefaultPublicExponent, nil
	}
	f, err := parseKeyStruct(serialized, "p", "q", "e")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("invalid key template: %w", err)
	}
	return f["p"], f["q"], f["e"], nil
}
