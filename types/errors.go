// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package types

import "fmt"

// ErrInvalidPeerDIDString is returned when a string does not follow the did:peer grammar.
type ErrInvalidPeerDIDString struct {
	DID    string
	Reason string
}

func (e *ErrInvalidPeerDIDString) Error() string {
	return fmt.Sprintf("invalid peer DID %q: %s", e.DID, e.Reason)
}

// ErrUnsupportedAlgorithm is returned for a well-formed numalgo other than 0 or 2.
type ErrUnsupportedAlgorithm struct {
	Algorithm string
}

func (e *ErrUnsupportedAlgorithm) Error() string {
	return fmt.Sprintf("unsupported peer DID algorithm: %s", e.Algorithm)
}

// ErrInvalidKeyLength is returned when a raw public key is not 32 bytes.
type ErrInvalidKeyLength struct {
	Length int
}

func (e *ErrInvalidKeyLength) Error() string {
	return fmt.Sprintf("invalid key length: expected 32 bytes, got %d", e.Length)
}

// ErrUnsupportedMulticodec is returned when a multicodec prefix is neither X25519 nor Ed25519.
type ErrUnsupportedMulticodec struct {
	Code uint64
}

func (e *ErrUnsupportedMulticodec) Error() string {
	return fmt.Sprintf("unsupported multicodec 0x%x", e.Code)
}

// ErrMalformedVarint is returned when a varint is empty, unterminated or not minimal.
type ErrMalformedVarint struct {
	Reason string
}

func (e *ErrMalformedVarint) Error() string {
	return fmt.Sprintf("malformed varint: %s", e.Reason)
}

// ErrInvalidBase58Key is returned when text is not valid base58btc.
type ErrInvalidBase58Key struct {
	Reason string
}

func (e *ErrInvalidBase58Key) Error() string {
	return fmt.Sprintf("invalid base58 key: %s", e.Reason)
}

// ErrInvalidBase64URLKey is returned when a JWK "x" value is not unpadded base64url.
type ErrInvalidBase64URLKey struct {
	Reason string
}

func (e *ErrInvalidBase64URLKey) Error() string {
	return fmt.Sprintf("invalid base64url key: %s", e.Reason)
}

// ErrUnsupportedMultibasePrefix is returned for any multibase prefix other than "z".
type ErrUnsupportedMultibasePrefix struct {
	Prefix string
}

func (e *ErrUnsupportedMultibasePrefix) Error() string {
	if e.Prefix == "" {
		return "unsupported multibase prefix: empty input"
	}
	return fmt.Sprintf("unsupported multibase prefix %q", e.Prefix)
}

// ErrInvalidMaterialType is returned when a material type, format or purpose is unknown or mismatched.
type ErrInvalidMaterialType struct {
	Type   string
	Reason string
}

func (e *ErrInvalidMaterialType) Error() string {
	return fmt.Sprintf("invalid material type %q: %s", e.Type, e.Reason)
}

// ErrInvalidJWKMaterialType is returned when JWK material is paired with a non-JWK type or curve.
type ErrInvalidJWKMaterialType struct {
	Type   string
	Reason string
}

func (e *ErrInvalidJWKMaterialType) Error() string {
	return fmt.Sprintf("invalid JWK material type %q: %s", e.Type, e.Reason)
}

// ErrInvalidJWK is returned when JWK bytes do not hold an OKP key object.
type ErrInvalidJWK struct {
	Reason string
}

func (e *ErrInvalidJWK) Error() string {
	return fmt.Sprintf("invalid JWK: %s", e.Reason)
}

// ErrInvalidService is returned when a service cannot be encoded or an encoded service cannot be decoded.
type ErrInvalidService struct {
	Reason string
}

func (e *ErrInvalidService) Error() string {
	return fmt.Sprintf("invalid peer DID service: %s", e.Reason)
}

// ErrEncodingFailure signals an internal serialization inconsistency.
type ErrEncodingFailure struct {
	Reason string
}

func (e *ErrEncodingFailure) Error() string {
	return fmt.Sprintf("encoding failure: %s", e.Reason)
}

// ErrInvalidSegment is returned by resolution when one segment of a did:peer:2
// identifier cannot be decoded. Err holds the underlying error kind.
type ErrInvalidSegment struct {
	Kind     SegmentKind
	Position int
	Err      error
}

func (e *ErrInvalidSegment) Error() string {
	return fmt.Sprintf("%s segment %d: %v", e.Kind, e.Position, e.Err)
}

func (e *ErrInvalidSegment) Unwrap() error {
	return e.Err
}
