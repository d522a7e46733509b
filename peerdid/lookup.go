// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"crypto/ed25519"
	"fmt"
)

// ExtractPublicKey returns the raw key of the verification method vmID. An
// empty vmID, or one equal to the document id, selects the first
// authentication key.
func ExtractPublicKey(doc *DIDDocument, vmID string) ([]byte, error) {
	if vmID == "" || vmID == doc.ID {
		key, err := ExtractAuthenticationKey(doc)
		if err != nil {
			return nil, err
		}
		return key, nil
	}

	vm, ok := doc.VerificationMethodByID(vmID)
	if !ok {
		return nil, fmt.Errorf("peerdid: verification method %s not found in %s", vmID, doc.ID)
	}
	raw, err := vm.Material.DecodedKey()
	if err != nil {
		return nil, fmt.Errorf("peerdid: decode verification method %s: %w", vm.ID, err)
	}
	return raw, nil
}

// ExtractAuthenticationKey returns the first Ed25519 authentication key of doc.
func ExtractAuthenticationKey(doc *DIDDocument) (ed25519.PublicKey, error) {
	auth := doc.Authentication()
	if len(auth) == 0 {
		return nil, fmt.Errorf("peerdid: no authentication key in DID document for %s", doc.ID)
	}
	raw, err := auth[0].Material.DecodedKey()
	if err != nil {
		return nil, fmt.Errorf("peerdid: decode verification method %s: %w", auth[0].ID, err)
	}
	return ed25519.PublicKey(raw), nil
}
