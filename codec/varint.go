// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

// Package codec holds the byte and text encodings a did:peer identifier is
// built from: unsigned varints, multicodec key tags, base58btc, the multibase
// "z" profile and the canonical JSON form used for embedded objects.
//
// Every function is a pure transform of its arguments.
package codec

import (
	"errors"

	"github.com/multiformats/go-varint"

	"github.com/aumos-ai/peer-did/types"
)

// MaxVarintValue is the largest value a multiformats varint may carry.
const MaxVarintValue = varint.MaxValueUvarint63

// EncodeVarint returns the unsigned LEB128 encoding of n.
func EncodeVarint(n uint64) []byte {
	return varint.ToUvarint(n)
}

// DecodeVarint reads one varint from the front of buf and returns its value
// and the number of bytes consumed.
func DecodeVarint(buf []byte) (uint64, int, error) {
	if len(buf) == 0 {
		return 0, 0, &types.ErrMalformedVarint{Reason: "empty input"}
	}
	n, read, err := varint.FromUvarint(buf)
	if err != nil {
		switch {
		case errors.Is(err, varint.ErrUnderflow):
			return 0, 0, &types.ErrMalformedVarint{Reason: "continuation bit never terminated"}
		case errors.Is(err, varint.ErrOverflow):
			return 0, 0, &types.ErrMalformedVarint{Reason: "value exceeds 63 bits"}
		case errors.Is(err, varint.ErrNotMinimal):
			return 0, 0, &types.ErrMalformedVarint{Reason: "not minimally encoded"}
		default:
			return 0, 0, &types.ErrMalformedVarint{Reason: err.Error()}
		}
	}
	return n, read, nil
}
