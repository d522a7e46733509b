// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package peerdid builds and resolves did:peer identifiers for numalgo 0
// (a single inception key) and numalgo 2 (several keys plus services).
//
// Every function in this package is a pure function of its input; nothing is
// cached and there is no shared state, so all of it is safe for concurrent use.
package peerdid

import (
	"fmt"
	"strings"

	"github.com/aumos-ai/peer-did/types"
)

// Prefix is the scheme and method every did:peer identifier starts with.
const Prefix = "did:peer:"

const (
	segmentSeparator = "."
	base58Alphabet   = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	base64URLCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="
)

// PeerDID is a parsed did:peer identifier. MethodID always starts with the
// algorithm digit.
type PeerDID struct {
	Algorithm types.Algorithm
	MethodID  string
}

// Segment is one purpose-tagged element of a did:peer:2 identifier. Value
// excludes the prefix character.
type Segment struct {
	Kind  types.SegmentKind
	Value string
}

func (s Segment) String() string {
	return string(s.Kind) + s.Value
}

// String returns the full identifier.
func (d PeerDID) String() string {
	return Prefix + d.MethodID
}

// MethodIDWithoutAlgorithm strips the algorithm digit from the method id.
func (d PeerDID) MethodIDWithoutAlgorithm() string {
	if d.MethodID == "" {
		return ""
	}
	return d.MethodID[1:]
}

// Segments returns the segments of a did:peer:2 identifier in literal order.
// It returns nil for numalgo 0.
func (d PeerDID) Segments() []Segment {
	if d.Algorithm != types.AlgorithmTwo {
		return nil
	}
	rest := strings.TrimPrefix(d.MethodIDWithoutAlgorithm(), segmentSeparator)
	if rest == "" {
		return nil
	}
	parts := strings.Split(rest, segmentSeparator)
	segments := make([]Segment, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		segments = append(segments, Segment{Kind: types.SegmentKind(p[:1]), Value: p[1:]})
	}
	return segments
}

// AuthenticationKeys returns the ecnumbasis of every authentication key. For
// numalgo 0 that is the inception key.
func (d PeerDID) AuthenticationKeys() []string {
	if d.Algorithm == types.AlgorithmZero {
		return []string{d.MethodIDWithoutAlgorithm()}
	}
	return d.segmentValues(types.SegmentAuthentication)
}

// AgreementKeys returns the ecnumbasis of every key agreement key.
func (d PeerDID) AgreementKeys() []string {
	return d.segmentValues(types.SegmentAgreement)
}

// Services returns the encoded payload of every service segment.
func (d PeerDID) Services() []string {
	return d.segmentValues(types.SegmentService)
}

func (d PeerDID) segmentValues(kind types.SegmentKind) []string {
	var out []string
	for _, s := range d.Segments() {
		if s.Kind == kind {
			out = append(out, s.Value)
		}
	}
	return out
}

// Parse checks s against the did:peer grammar and returns the identifier.
func Parse(s string) (PeerDID, error) {
	if !strings.HasPrefix(s, Prefix) {
		return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: s, Reason: "missing " + Prefix + " prefix"}
	}
	methodID := strings.TrimPrefix(s, Prefix)
	if methodID == "" {
		return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: s, Reason: "missing algorithm"}
	}

	algo := methodID[:1]
	if !isAlphanumeric(algo[0]) {
		return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: s, Reason: fmt.Sprintf("invalid algorithm %q", algo)}
	}

	rest := methodID[1:]
	switch types.Algorithm(algo) {
	case types.AlgorithmZero:
		if err := checkEcnumbasis(rest); err != nil {
			return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: s, Reason: err.Error()}
		}
	case types.AlgorithmTwo:
		if err := checkAlgo2(rest); err != nil {
			return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: s, Reason: err.Error()}
		}
	default:
		return PeerDID{}, &types.ErrUnsupportedAlgorithm{Algorithm: algo}
	}

	return PeerDID{Algorithm: types.Algorithm(algo), MethodID: methodID}, nil
}

// IsPeerDID reports whether s is a syntactically valid did:peer identifier.
func IsPeerDID(s string) bool {
	_, err := Parse(s)
	return err == nil
}

func checkAlgo2(rest string) error {
	if !strings.HasPrefix(rest, segmentSeparator) {
		return fmt.Errorf("numalgo 2 segments must start with %q", segmentSeparator)
	}
	keys := 0
	for i, seg := range strings.Split(rest[1:], segmentSeparator) {
		if len(seg) < 2 {
			return fmt.Errorf("segment %d is empty", i+1)
		}
		switch types.SegmentKind(seg[:1]) {
		case types.SegmentAuthentication, types.SegmentAgreement:
			if err := checkEcnumbasis(seg[1:]); err != nil {
				return fmt.Errorf("segment %d: %w", i+1, err)
			}
			keys++
		case types.SegmentService:
			if !onlyCharset(seg[1:], base64URLCharset) {
				return fmt.Errorf("segment %d: service is not base64url", i+1)
			}
		default:
			return fmt.Errorf("segment %d: unknown prefix %q", i+1, seg[:1])
		}
	}
	if keys == 0 {
		return fmt.Errorf("numalgo 2 requires at least one key")
	}
	return nil
}

func checkEcnumbasis(s string) error {
	if len(s) < 2 || s[0] != 'z' {
		return fmt.Errorf("ecnumbasis must be multibase base58btc")
	}
	if !onlyCharset(s[1:], base58Alphabet) {
		return fmt.Errorf("ecnumbasis is not base58btc")
	}
	return nil
}

func onlyCharset(s, charset string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(charset, s[i]) < 0 {
			return false
		}
	}
	return true
}

func isAlphanumeric(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
