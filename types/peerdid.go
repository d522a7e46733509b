// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package types defines shared value types used across the peer-did packages.
package types

import "strings"

// Algorithm enumerates the supported did:peer numalgo values.
type Algorithm string

const (
	// AlgorithmZero is an inception key without a document (did:peer:0).
	AlgorithmZero Algorithm = "0"
	// AlgorithmTwo is multiple inception keys plus services (did:peer:2).
	AlgorithmTwo Algorithm = "2"
)

// MaterialFormat identifies how a public key is serialized in a verification method.
type MaterialFormat string

const (
	FormatBase58    MaterialFormat = "base58"
	FormatMultibase MaterialFormat = "multibase"
	FormatJWK       MaterialFormat = "jwk"
)

// ParseMaterialFormat maps a case-insensitive format name to a MaterialFormat.
func ParseMaterialFormat(s string) (MaterialFormat, error) {
	switch MaterialFormat(strings.ToLower(s)) {
	case FormatBase58:
		return FormatBase58, nil
	case FormatMultibase:
		return FormatMultibase, nil
	case FormatJWK:
		return FormatJWK, nil
	default:
		return "", &ErrInvalidMaterialType{Type: s, Reason: "unknown material format"}
	}
}

// DocumentField is the verification method property that carries keys in this format.
func (f MaterialFormat) DocumentField() string {
	switch f {
	case FormatBase58:
		return "publicKeyBase58"
	case FormatJWK:
		return "publicKeyJwk"
	default:
		return "publicKeyMultibase"
	}
}

// KeyPurpose is the verification relationship a key serves.
type KeyPurpose string

const (
	// PurposeAuthentication marks Ed25519 signing keys.
	PurposeAuthentication KeyPurpose = "authentication"
	// PurposeAgreement marks X25519 key agreement keys.
	PurposeAgreement KeyPurpose = "keyAgreement"
)

// VerificationMethodType identifies the type of a DID verification method.
type VerificationMethodType string

const (
	VerificationMethodEd25519VerificationKey2018 VerificationMethodType = "Ed25519VerificationKey2018"
	VerificationMethodEd25519VerificationKey2020 VerificationMethodType = "Ed25519VerificationKey2020"
	VerificationMethodX25519KeyAgreementKey2019  VerificationMethodType = "X25519KeyAgreementKey2019"
	VerificationMethodX25519KeyAgreementKey2020  VerificationMethodType = "X25519KeyAgreementKey2020"
	VerificationMethodJSONWebKey2020             VerificationMethodType = "JsonWebKey2020"
)

// ParseVerificationMethodType maps a verification method type name to its constant.
func ParseVerificationMethodType(s string) (VerificationMethodType, error) {
	switch t := VerificationMethodType(s); t {
	case VerificationMethodEd25519VerificationKey2018,
		VerificationMethodEd25519VerificationKey2020,
		VerificationMethodX25519KeyAgreementKey2019,
		VerificationMethodX25519KeyAgreementKey2020,
		VerificationMethodJSONWebKey2020:
		return t, nil
	default:
		return "", &ErrInvalidMaterialType{Type: s, Reason: "unknown verification method type"}
	}
}

// VerificationMaterialType pairs a key purpose with the concrete method type
// used to publish it.
type VerificationMaterialType struct {
	Purpose KeyPurpose
	Method  VerificationMethodType
}

var (
	Ed25519VerificationKey2018 = VerificationMaterialType{PurposeAuthentication, VerificationMethodEd25519VerificationKey2018}
	Ed25519VerificationKey2020 = VerificationMaterialType{PurposeAuthentication, VerificationMethodEd25519VerificationKey2020}
	AuthenticationJSONWebKey   = VerificationMaterialType{PurposeAuthentication, VerificationMethodJSONWebKey2020}
	X25519KeyAgreementKey2019  = VerificationMaterialType{PurposeAgreement, VerificationMethodX25519KeyAgreementKey2019}
	X25519KeyAgreementKey2020  = VerificationMaterialType{PurposeAgreement, VerificationMethodX25519KeyAgreementKey2020}
	AgreementJSONWebKey        = VerificationMaterialType{PurposeAgreement, VerificationMethodJSONWebKey2020}
)

// IsAuthentication reports whether the material is an authentication key.
func (t VerificationMaterialType) IsAuthentication() bool { return t.Purpose == PurposeAuthentication }

// IsAgreement reports whether the material is a key agreement key.
func (t VerificationMaterialType) IsAgreement() bool { return t.Purpose == PurposeAgreement }

// Validate checks that the method type belongs to the purpose.
func (t VerificationMaterialType) Validate() error {
	switch t.Purpose {
	case PurposeAuthentication:
		switch t.Method {
		case VerificationMethodEd25519VerificationKey2018, VerificationMethodEd25519VerificationKey2020, VerificationMethodJSONWebKey2020:
			return nil
		}
	case PurposeAgreement:
		switch t.Method {
		case VerificationMethodX25519KeyAgreementKey2019, VerificationMethodX25519KeyAgreementKey2020, VerificationMethodJSONWebKey2020:
			return nil
		}
	default:
		return &ErrInvalidMaterialType{Type: string(t.Purpose), Reason: "unknown key purpose"}
	}
	return &ErrInvalidMaterialType{Type: string(t.Method), Reason: "not valid for " + string(t.Purpose)}
}

func (t VerificationMaterialType) String() string {
	return string(t.Method)
}

// MaterialTypeFor returns the method type a key of the given purpose takes
// when published in format.
func MaterialTypeFor(format MaterialFormat, purpose KeyPurpose) (VerificationMaterialType, error) {
	switch purpose {
	case PurposeAuthentication:
		switch format {
		case FormatBase58:
			return Ed25519VerificationKey2018, nil
		case FormatMultibase:
			return Ed25519VerificationKey2020, nil
		case FormatJWK:
			return AuthenticationJSONWebKey, nil
		}
	case PurposeAgreement:
		switch format {
		case FormatBase58:
			return X25519KeyAgreementKey2019, nil
		case FormatMultibase:
			return X25519KeyAgreementKey2020, nil
		case FormatJWK:
			return AgreementJSONWebKey, nil
		}
	default:
		return VerificationMaterialType{}, &ErrInvalidMaterialType{Type: string(purpose), Reason: "unknown key purpose"}
	}
	return VerificationMaterialType{}, &ErrInvalidMaterialType{Type: string(format), Reason: "unknown material format"}
}

// InferMaterialType derives the purpose from a method type name. JsonWebKey2020
// is ambiguous on its own, so the JWK curve decides it.
func InferMaterialType(method VerificationMethodType, jwkCurve string) (VerificationMaterialType, error) {
	switch method {
	case VerificationMethodEd25519VerificationKey2018, VerificationMethodEd25519VerificationKey2020:
		return VerificationMaterialType{PurposeAuthentication, method}, nil
	case VerificationMethodX25519KeyAgreementKey2019, VerificationMethodX25519KeyAgreementKey2020:
		return VerificationMaterialType{PurposeAgreement, method}, nil
	case VerificationMethodJSONWebKey2020:
		switch jwkCurve {
		case "Ed25519":
			return AuthenticationJSONWebKey, nil
		case "X25519":
			return AgreementJSONWebKey, nil
		}
		return VerificationMaterialType{}, &ErrInvalidJWKMaterialType{Type: string(method), Reason: "unsupported curve " + jwkCurve}
	default:
		return VerificationMaterialType{}, &ErrInvalidMaterialType{Type: string(method), Reason: "unknown verification method type"}
	}
}

// SegmentKind names the single-character prefix of a did:peer:2 segment.
type SegmentKind string

const (
	SegmentAuthentication SegmentKind = "V"
	SegmentAgreement      SegmentKind = "E"
	SegmentService        SegmentKind = "S"
)

func (k SegmentKind) String() string {
	switch k {
	case SegmentAuthentication:
		return "authentication key"
	case SegmentAgreement:
		return "agreement key"
	case SegmentService:
		return "service"
	default:
		return "segment " + string(k)
	}
}
