// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package codec

import (
	"fmt"

	"github.com/aumos-ai/peer-did/types"
)

// Codec is a multicodec table entry for a public key type.
type Codec uint64

const (
	// CodecX25519 tags X25519 key agreement keys (varint 0xec01).
	CodecX25519 Codec = 0xec
	// CodecEd25519 tags Ed25519 authentication keys (varint 0xed01).
	CodecEd25519 Codec = 0xed
)

func (c Codec) String() string {
	switch c {
	case CodecX25519:
		return "x25519-pub"
	case CodecEd25519:
		return "ed25519-pub"
	default:
		return fmt.Sprintf("0x%x", uint64(c))
	}
}

// Purpose returns the key purpose the codec implies.
func (c Codec) Purpose() types.KeyPurpose {
	if c == CodecX25519 {
		return types.PurposeAgreement
	}
	return types.PurposeAuthentication
}

// CodecFor returns the codec used to tag keys of the given purpose.
func CodecFor(purpose types.KeyPurpose) (Codec, error) {
	switch purpose {
	case types.PurposeAuthentication:
		return CodecEd25519, nil
	case types.PurposeAgreement:
		return CodecX25519, nil
	default:
		return 0, &types.ErrInvalidMaterialType{Type: string(purpose), Reason: "unknown key purpose"}
	}
}

// Tag prepends the multicodec varint for purpose to rawKey.
func Tag(rawKey []byte, purpose types.KeyPurpose) ([]byte, error) {
	c, err := CodecFor(purpose)
	if err != nil {
		return nil, err
	}
	prefix := EncodeVarint(uint64(c))
	tagged := make([]byte, 0, len(prefix)+len(rawKey))
	tagged = append(tagged, prefix...)
	return append(tagged, rawKey...), nil
}

// Untag strips the multicodec prefix from tagged and reports which codec it was.
// The returned key aliases tagged.
func Untag(tagged []byte) (Codec, []byte, error) {
	code, read, err := DecodeVarint(tagged)
	if err != nil {
		return 0, nil, err
	}
	switch c := Codec(code); c {
	case CodecX25519, CodecEd25519:
		return c, tagged[read:], nil
	default:
		return 0, nil, &types.ErrUnsupportedMulticodec{Code: code}
	}
}
