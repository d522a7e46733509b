// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"fmt"

	"github.com/aumos-ai/peer-did/codec"
	"github.com/aumos-ai/peer-did/keys"
	"github.com/aumos-ai/peer-did/types"
)

// EncodeEcnumbasis returns the multibase, multicodec-tagged form of the key
// held by material, whatever format it is in. The key is always decoded, so
// multibase input is validated rather than copied through.
func EncodeEcnumbasis(material keys.VerificationMaterial) (string, error) {
	raw, err := material.DecodedKey()
	if err != nil {
		return "", fmt.Errorf("peerdid: encode ecnumbasis: %w", err)
	}
	mb, err := keys.FromRawKey(raw, material.Type.Purpose, types.FormatMultibase)
	if err != nil {
		return "", fmt.Errorf("peerdid: encode ecnumbasis: %w", err)
	}
	return string(mb.Value), nil
}

// DecodeEcnumbasis decodes ecnumbasis into material of the requested format.
// The purpose is taken from the multicodec tag.
func DecodeEcnumbasis(ecnumbasis string, format types.MaterialFormat) (keys.VerificationMaterial, error) {
	tagged, err := codec.DecodeMultibase(ecnumbasis)
	if err != nil {
		return keys.VerificationMaterial{}, err
	}
	c, raw, err := codec.Untag(tagged)
	if err != nil {
		return keys.VerificationMaterial{}, err
	}
	if err := keys.ValidateKeyLength(raw); err != nil {
		return keys.VerificationMaterial{}, err
	}
	return keys.FromRawKey(raw, c.Purpose(), format)
}
