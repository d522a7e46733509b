// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package keys

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/aumos-ai/peer-did/codec"
	"github.com/aumos-ai/peer-did/types"
)

// JWK is an OKP JSON Web Key holding an Ed25519 or X25519 public key.
type JWK struct {
	Crv string `json:"crv"`
	Kty string `json:"kty"`
	X   string `json:"x"`
}

const (
	jwkKeyType   = "OKP"
	curveEd25519 = "Ed25519"
	curveX25519  = "X25519"
)

// NewJWK builds the JWK for rawKey. typ must be one of the JsonWebKey2020 types.
func NewJWK(rawKey []byte, typ types.VerificationMaterialType) (JWK, error) {
	if typ.Method != types.VerificationMethodJSONWebKey2020 {
		return JWK{}, &types.ErrInvalidJWKMaterialType{Type: string(typ.Method), Reason: "JWK material must be JsonWebKey2020"}
	}
	crv, err := curveFor(typ.Purpose)
	if err != nil {
		return JWK{}, err
	}
	return JWK{
		Crv: crv,
		Kty: jwkKeyType,
		X:   base64.RawURLEncoding.EncodeToString(rawKey),
	}, nil
}

// ParseJWK decodes JWK bytes and checks they describe an OKP key on a supported curve.
func ParseJWK(data []byte) (JWK, error) {
	var jwk JWK
	if err := json.Unmarshal(data, &jwk); err != nil {
		return JWK{}, &types.ErrInvalidJWK{Reason: err.Error()}
	}
	if jwk.Kty != jwkKeyType {
		return JWK{}, &types.ErrInvalidJWK{Reason: "kty must be OKP, got " + jwk.Kty}
	}
	if jwk.Crv != curveEd25519 && jwk.Crv != curveX25519 {
		return JWK{}, &types.ErrInvalidJWKMaterialType{Type: jwk.Crv, Reason: "unsupported curve"}
	}
	if jwk.X == "" {
		return JWK{}, &types.ErrInvalidJWK{Reason: "missing x"}
	}
	return jwk, nil
}

// Purpose returns the key purpose implied by the curve.
func (j JWK) Purpose() types.KeyPurpose {
	if j.Crv == curveX25519 {
		return types.PurposeAgreement
	}
	return types.PurposeAuthentication
}

// RawKey decodes the unpadded base64url "x" member.
func (j JWK) RawKey() ([]byte, error) {
	// Trailing padding is tolerated on input; the encoder never emits it.
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(j.X, "="))
	if err != nil {
		return nil, &types.ErrInvalidBase64URLKey{Reason: err.Error()}
	}
	return raw, nil
}

// Bytes returns the canonical serialization: sorted keys, no escaping.
func (j JWK) Bytes() ([]byte, error) {
	return codec.CanonicalJSON().Marshal(j)
}

func curveFor(purpose types.KeyPurpose) (string, error) {
	switch purpose {
	case types.PurposeAuthentication:
		return curveEd25519, nil
	case types.PurposeAgreement:
		return curveX25519, nil
	default:
		return "", &types.ErrInvalidJWKMaterialType{Type: string(purpose), Reason: "unknown key purpose"}
	}
}
