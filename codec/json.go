// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package codec

import (
	"bytes"
	"encoding/json"

	"github.com/aumos-ai/peer-did/types"
)

// JSONOptions configures how embedded objects are serialized. Identifiers are
// compared byte for byte, so every producer must agree on one form.
type JSONOptions struct {
	// SortKeys orders object keys lexicographically at every depth.
	SortKeys bool
	// EscapeHTML escapes <, > and & the way encoding/json does by default.
	EscapeHTML bool
	// Indent pretty-prints with the given indent string when non-empty.
	Indent string
}

// CanonicalJSON is the form used inside did:peer identifiers and JWK material:
// compact, sorted keys, nothing escaped beyond what JSON requires ('/' is
// never escaped).
func CanonicalJSON() JSONOptions {
	return JSONOptions{SortKeys: true}
}

// Marshal serializes v according to the options.
func (o JSONOptions) Marshal(v any) ([]byte, error) {
	out, err := o.encode(v)
	if err != nil {
		return nil, err
	}
	if !o.SortKeys {
		return out, nil
	}
	// Struct fields keep declaration order; round-trip through generic values
	// so that maps re-emit with sorted keys.
	dec := json.NewDecoder(bytes.NewReader(out))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, &types.ErrEncodingFailure{Reason: "canonical json: " + err.Error()}
	}
	return o.encode(generic)
}

func (o JSONOptions) encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(o.EscapeHTML)
	if o.Indent != "" {
		enc.SetIndent("", o.Indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, &types.ErrEncodingFailure{Reason: "json encode: " + err.Error()}
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
