// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aumos-ai/peer-did/types"
)

func TestDocumentJSON(t *testing.T) {
	tests := []struct {
		format types.MaterialFormat
		want   []string
	}{
		{types.FormatBase58, []string{
			`"publicKeyBase58":"` + ed25519Key1Base58 + `"`,
			`"publicKeyBase58":"` + ed25519Key2Base58 + `"`,
			`"publicKeyBase58":"` + x25519KeyBase58 + `"`,
			`"type":"Ed25519VerificationKey2018"`,
			`"type":"X25519KeyAgreementKey2019"`,
		}},
		{types.FormatMultibase, []string{
			`"publicKeyMultibase":"` + ed25519Key1Multibase + `"`,
			`"publicKeyMultibase":"` + x25519KeyMultibase + `"`,
			`"type":"Ed25519VerificationKey2020"`,
			`"type":"X25519KeyAgreementKey2020"`,
		}},
		{types.FormatJWK, []string{
			`"publicKeyJwk":` + ed25519Key1JWK,
			`"publicKeyJwk":` + ed25519Key2JWK,
			`"publicKeyJwk":` + x25519KeyJWK,
			`"type":"JsonWebKey2020"`,
		}},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := Resolve(algo2DID, tt.format)
			require.NoError(t, err)

			out, err := json.Marshal(doc)
			require.NoError(t, err)
			encoded := string(out)

			for _, w := range tt.want {
				assert.Contains(t, encoded, w)
			}
			assert.Contains(t, encoded, `"id":"`+algo2DID+`#key-1"`)
			assert.Contains(t, encoded, `"id":"`+algo2DID+`#key-3"`)
			assert.Contains(t, encoded, `"authentication":["`+algo2DID+`#key-2","`+algo2DID+`#key-3"]`)
			assert.Contains(t, encoded, `"keyAgreement":["`+algo2DID+`#key-1"]`)
			assert.Contains(t, encoded, `"id":"`+algo2DID+`#didcommmessaging-1"`)

			var back DIDDocument
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, doc, &back)
		})
	}
}

func TestDocumentJSONEmptyListsArePresent(t *testing.T) {
	out, err := json.Marshal(DIDDocument{ID: algo0DID})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"`+algo0DID+`","verificationMethod":[],"authentication":[],"keyAgreement":[],"service":[]}`, string(out))
}

func TestVerificationMethodUnmarshalErrors(t *testing.T) {
	tests := map[string]string{
		"unknown type":    `{"id":"x","type":"RsaVerificationKey2018","controller":"c","publicKeyBase58":"abc"}`,
		"no key":          `{"id":"x","type":"Ed25519VerificationKey2018","controller":"c"}`,
		"bad jwk":         `{"id":"x","type":"JsonWebKey2020","controller":"c","publicKeyJwk":{"kty":"EC","crv":"P-256","x":"abc"}}`,
		"jwk wrong curve": `{"id":"x","type":"JsonWebKey2020","controller":"c","publicKeyJwk":{"kty":"OKP","crv":"X448","x":"abc"}}`,
	}
	for name, in := range tests {
		t.Run(name, func(t *testing.T) {
			var vm VerificationMethod
			assert.Error(t, json.Unmarshal([]byte(in), &vm))
		})
	}
}

func TestVerificationMethodUnmarshalCanonicalizesJWK(t *testing.T) {
	in := `{"id":"x","type":"JsonWebKey2020","controller":"c","publicKeyJwk":{"x":"BIiFcQEn3dfvB2pjlhOQQour6jXy9d5s2FKEJNTOJik","kty":"OKP","crv":"X25519"}}`
	var vm VerificationMethod
	require.NoError(t, json.Unmarshal([]byte(in), &vm))
	assert.Equal(t, types.AgreementJSONWebKey, vm.Material.Type)
	assert.Equal(t, x25519KeyJWK, string(vm.Material.Value))
}

func TestVerificationMethodByID(t *testing.T) {
	doc, err := Resolve(algo2DID, types.FormatMultibase)
	require.NoError(t, err)

	for _, id := range []string{algo2DID + "#key-2", "#key-2", "key-2"} {
		vm, ok := doc.VerificationMethodByID(id)
		require.True(t, ok, id)
		assert.Equal(t, ed25519Key1Multibase, string(vm.Material.Value))
	}
	_, ok := doc.VerificationMethodByID("#key-9")
	assert.False(t, ok)

	svc, ok := doc.ServiceByID("#didcommmessaging-1")
	require.True(t, ok)
	assert.Equal(t, ServiceTypeDIDCommMessaging, svc.Type)
}

func TestExtractPublicKey(t *testing.T) {
	doc, err := Resolve(algo2DID, types.FormatJWK)
	require.NoError(t, err)

	want, err := material(types.FormatBase58, ed25519Key1Base58, types.Ed25519VerificationKey2018).DecodedKey()
	require.NoError(t, err)

	got, err := ExtractPublicKey(doc, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ExtractPublicKey(doc, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	agreement, err := material(types.FormatBase58, x25519KeyBase58, types.X25519KeyAgreementKey2019).DecodedKey()
	require.NoError(t, err)
	got, err = ExtractPublicKey(doc, "#key-1")
	require.NoError(t, err)
	assert.Equal(t, agreement, got)

	_, err = ExtractPublicKey(doc, "#key-7")
	assert.Error(t, err)
}

func TestExtractAuthenticationKeyMissing(t *testing.T) {
	doc, err := Resolve("did:peer:2.E"+x25519KeyMultibase, types.FormatMultibase)
	require.NoError(t, err)

	_, err = ExtractAuthenticationKey(doc)
	assert.Error(t, err)
}
