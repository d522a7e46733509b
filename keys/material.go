// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package keys converts public keys between the three serializations a
// did:peer verification method can carry: raw base58, multibase with a
// multicodec tag, and JWK.
//
// Keys are opaque 32-byte blobs here; nothing checks that they are valid
// curve points.
package keys

import (
	"bytes"
	"fmt"

	"github.com/aumos-ai/peer-did/codec"
	"github.com/aumos-ai/peer-did/types"
)

// KeySize is the length of every Ed25519 and X25519 public key.
const KeySize = 32

// VerificationMaterial is a public key in one serialization format.
// Value holds the serialized form (base58 text, multibase text or JWK JSON),
// never the raw key.
type VerificationMaterial struct {
	Format types.MaterialFormat
	Value  []byte
	Type   types.VerificationMaterialType
}

// NewVerificationMaterial serializes rawKey into format under the given type.
func NewVerificationMaterial(format types.MaterialFormat, rawKey []byte, typ types.VerificationMaterialType) (VerificationMaterial, error) {
	if err := ValidateKeyLength(rawKey); err != nil {
		return VerificationMaterial{}, err
	}
	if err := typ.Validate(); err != nil {
		return VerificationMaterial{}, err
	}

	var value []byte
	switch format {
	case types.FormatJWK:
		jwk, err := NewJWK(rawKey, typ)
		if err != nil {
			return VerificationMaterial{}, err
		}
		if value, err = jwk.Bytes(); err != nil {
			return VerificationMaterial{}, err
		}
	case types.FormatBase58:
		if typ.Method == types.VerificationMethodJSONWebKey2020 {
			return VerificationMaterial{}, &types.ErrInvalidMaterialType{Type: typ.String(), Reason: "JsonWebKey2020 requires jwk format"}
		}
		value = []byte(codec.EncodeBase58(rawKey))
	case types.FormatMultibase:
		if typ.Method == types.VerificationMethodJSONWebKey2020 {
			return VerificationMaterial{}, &types.ErrInvalidMaterialType{Type: typ.String(), Reason: "JsonWebKey2020 requires jwk format"}
		}
		tagged, err := codec.Tag(rawKey, typ.Purpose)
		if err != nil {
			return VerificationMaterial{}, err
		}
		encoded, err := codec.EncodeMultibase(tagged)
		if err != nil {
			return VerificationMaterial{}, err
		}
		value = []byte(encoded)
	default:
		return VerificationMaterial{}, &types.ErrInvalidMaterialType{Type: string(format), Reason: "unknown material format"}
	}

	return VerificationMaterial{Format: format, Value: value, Type: typ}, nil
}

// FromRawKey serializes rawKey into format using the default method type for
// that format and purpose.
func FromRawKey(rawKey []byte, purpose types.KeyPurpose, format types.MaterialFormat) (VerificationMaterial, error) {
	typ, err := types.MaterialTypeFor(format, purpose)
	if err != nil {
		return VerificationMaterial{}, err
	}
	return NewVerificationMaterial(format, rawKey, typ)
}

// ValidateKeyLength rejects keys that are not exactly KeySize bytes.
func ValidateKeyLength(rawKey []byte) error {
	if len(rawKey) != KeySize {
		return &types.ErrInvalidKeyLength{Length: len(rawKey)}
	}
	return nil
}

// DecodedKey recovers the raw 32-byte key from the serialized value.
func (m VerificationMaterial) DecodedKey() ([]byte, error) {
	var raw []byte
	switch m.Format {
	case types.FormatJWK:
		jwk, err := ParseJWK(m.Value)
		if err != nil {
			return nil, err
		}
		if jwk.Purpose() != m.Type.Purpose {
			return nil, &types.ErrInvalidJWKMaterialType{Type: jwk.Crv, Reason: fmt.Sprintf("curve does not match %s material", m.Type.Purpose)}
		}
		if raw, err = jwk.RawKey(); err != nil {
			return nil, err
		}
	case types.FormatBase58:
		var err error
		if raw, err = codec.DecodeBase58(string(m.Value)); err != nil {
			return nil, err
		}
	case types.FormatMultibase:
		tagged, err := codec.DecodeMultibase(string(m.Value))
		if err != nil {
			return nil, err
		}
		c, key, err := codec.Untag(tagged)
		if err != nil {
			return nil, err
		}
		if c.Purpose() != m.Type.Purpose {
			return nil, &types.ErrInvalidMaterialType{Type: m.Type.String(), Reason: fmt.Sprintf("multicodec %s does not match %s material", c, m.Type.Purpose)}
		}
		raw = key
	default:
		return nil, &types.ErrInvalidMaterialType{Type: string(m.Format), Reason: "unknown material format"}
	}

	if err := ValidateKeyLength(raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ConvertTo re-serializes the material into format. Converting to the current
// format returns m unchanged.
func (m VerificationMaterial) ConvertTo(format types.MaterialFormat) (VerificationMaterial, error) {
	if format == m.Format {
		return m, nil
	}
	raw, err := m.DecodedKey()
	if err != nil {
		return VerificationMaterial{}, fmt.Errorf("keys: convert %s to %s: %w", m.Format, format, err)
	}
	return FromRawKey(raw, m.Type.Purpose, format)
}

// ConvertToBase58 is ConvertTo(types.FormatBase58).
func (m VerificationMaterial) ConvertToBase58() (VerificationMaterial, error) {
	return m.ConvertTo(types.FormatBase58)
}

// ConvertToMultibase is ConvertTo(types.FormatMultibase).
func (m VerificationMaterial) ConvertToMultibase() (VerificationMaterial, error) {
	return m.ConvertTo(types.FormatMultibase)
}

// ConvertToJWK is ConvertTo(types.FormatJWK).
func (m VerificationMaterial) ConvertToJWK() (VerificationMaterial, error) {
	return m.ConvertTo(types.FormatJWK)
}

// JWK parses the value of JWK-format material.
func (m VerificationMaterial) JWK() (JWK, error) {
	if m.Format != types.FormatJWK {
		return JWK{}, &types.ErrInvalidJWKMaterialType{Type: string(m.Format), Reason: "material is not in jwk format"}
	}
	return ParseJWK(m.Value)
}

// Equal reports whether two materials have the same format, type and serialized value.
func (m VerificationMaterial) Equal(other VerificationMaterial) bool {
	return m.Format == other.Format && m.Type == other.Type && bytes.Equal(m.Value, other.Value)
}
