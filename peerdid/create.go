// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"fmt"
	"strings"

	"github.com/aumos-ai/peer-did/keys"
	"github.com/aumos-ai/peer-did/types"
)

// CreateAlgo0 builds did:peer:0 from a single authentication key.
func CreateAlgo0(inception keys.VerificationMaterial) (PeerDID, error) {
	if !inception.Type.IsAuthentication() {
		return PeerDID{}, &types.ErrInvalidMaterialType{Type: inception.Type.String(), Reason: "numalgo 0 inception key must be an authentication key"}
	}
	ecnumbasis, err := EncodeEcnumbasis(inception)
	if err != nil {
		return PeerDID{}, err
	}
	return PeerDID{
		Algorithm: types.AlgorithmZero,
		MethodID:  string(types.AlgorithmZero) + ecnumbasis,
	}, nil
}

// CreateAlgo2 builds did:peer:2 from authentication keys, agreement keys and
// services. Segments are emitted in that order, each group in input order.
func CreateAlgo2(authentication, agreement []keys.VerificationMaterial, services []Service) (PeerDID, error) {
	if len(authentication)+len(agreement) == 0 {
		return PeerDID{}, &types.ErrInvalidPeerDIDString{DID: Prefix + string(types.AlgorithmTwo), Reason: "numalgo 2 requires at least one key"}
	}

	segments := make([]string, 0, len(authentication)+len(agreement)+len(services))
	for i, m := range authentication {
		seg, err := keySegment(types.SegmentAuthentication, m)
		if err != nil {
			return PeerDID{}, fmt.Errorf("peerdid: authentication key %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}
	for i, m := range agreement {
		seg, err := keySegment(types.SegmentAgreement, m)
		if err != nil {
			return PeerDID{}, fmt.Errorf("peerdid: agreement key %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}
	for i, svc := range services {
		seg, err := EncodeService(svc)
		if err != nil {
			return PeerDID{}, fmt.Errorf("peerdid: service %d: %w", i+1, err)
		}
		segments = append(segments, seg)
	}

	return PeerDID{
		Algorithm: types.AlgorithmTwo,
		MethodID:  string(types.AlgorithmTwo) + segmentSeparator + strings.Join(segments, segmentSeparator),
	}, nil
}

func keySegment(kind types.SegmentKind, m keys.VerificationMaterial) (string, error) {
	if want := purposeOf(kind); m.Type.Purpose != want {
		return "", &types.ErrInvalidMaterialType{Type: m.Type.String(), Reason: fmt.Sprintf("%s segment needs %s material", kind, want)}
	}
	ecnumbasis, err := EncodeEcnumbasis(m)
	if err != nil {
		return "", err
	}
	return string(kind) + ecnumbasis, nil
}

func purposeOf(kind types.SegmentKind) types.KeyPurpose {
	if kind == types.SegmentAgreement {
		return types.PurposeAgreement
	}
	return types.PurposeAuthentication
}
