// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package codec

import (
	"strings"

	"github.com/mr-tron/base58"
	"github.com/multiformats/go-multibase"

	"github.com/aumos-ai/peer-did/types"
)

// MultibaseBase58BTCPrefix is the only multibase prefix did:peer uses.
const MultibaseBase58BTCPrefix = "z"

// EncodeBase58 encodes data with the Bitcoin alphabet. Leading zero bytes
// become leading '1' characters.
func EncodeBase58(data []byte) string {
	return base58.Encode(data)
}

// DecodeBase58 decodes Bitcoin-alphabet base58 text.
func DecodeBase58(s string) ([]byte, error) {
	if s == "" {
		return nil, &types.ErrInvalidBase58Key{Reason: "empty input"}
	}
	data, err := base58.Decode(s)
	if err != nil {
		return nil, &types.ErrInvalidBase58Key{Reason: err.Error()}
	}
	return data, nil
}

// EncodeMultibase encodes data as base58btc multibase ("z" + base58).
func EncodeMultibase(data []byte) (string, error) {
	encoded, err := multibase.Encode(multibase.Base58BTC, data)
	if err != nil {
		return "", &types.ErrEncodingFailure{Reason: "multibase encode: " + err.Error()}
	}
	return encoded, nil
}

// DecodeMultibase decodes a "z"-prefixed multibase string. Other multibase
// encodings are rejected before any decoding happens.
func DecodeMultibase(s string) ([]byte, error) {
	if !strings.HasPrefix(s, MultibaseBase58BTCPrefix) {
		prefix := ""
		if s != "" {
			prefix = s[:1]
		}
		return nil, &types.ErrUnsupportedMultibasePrefix{Prefix: prefix}
	}
	if len(s) == len(MultibaseBase58BTCPrefix) {
		return nil, &types.ErrInvalidBase58Key{Reason: "empty multibase payload"}
	}
	_, data, err := multibase.Decode(s)
	if err != nil {
		return nil, &types.ErrInvalidBase58Key{Reason: err.Error()}
	}
	return data, nil
}
