// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aumos-ai/peer-did/types"
)

func TestResolveAlgo0(t *testing.T) {
	tests := []struct {
		format types.MaterialFormat
		value  string
		typ    types.VerificationMaterialType
	}{
		{types.FormatBase58, ed25519Key1Base58, types.Ed25519VerificationKey2018},
		{types.FormatMultibase, ed25519Key1Multibase, types.Ed25519VerificationKey2020},
		{types.FormatJWK, ed25519Key1JWK, types.AuthenticationJSONWebKey},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := Resolve(algo0DID, tt.format)
			require.NoError(t, err)
			assert.Equal(t, algo0DID, doc.ID)
			require.Len(t, doc.VerificationMethods, 1)

			vm := doc.VerificationMethods[0]
			assert.Equal(t, algo0DID+"#"+ed25519Key1Multibase, vm.ID)
			assert.Equal(t, algo0DID, vm.Controller)
			assert.Equal(t, tt.format, vm.Material.Format)
			assert.Equal(t, tt.typ, vm.Material.Type)
			assert.Equal(t, tt.value, string(vm.Material.Value))

			assert.Len(t, doc.Authentication(), 1)
			assert.Empty(t, doc.KeyAgreement())
			assert.Empty(t, doc.Services)
		})
	}
}

func TestResolveAlgo2(t *testing.T) {
	tests := []struct {
		format     types.MaterialFormat
		agreement  string
		auth1      string
		auth2      string
		authType   types.VerificationMaterialType
		agreeType  types.VerificationMaterialType
		contextTag string
	}{
		{types.FormatBase58, x25519KeyBase58, ed25519Key1Base58, ed25519Key2Base58, types.Ed25519VerificationKey2018, types.X25519KeyAgreementKey2019, "https://w3id.org/security/suites/x25519-2019/v1"},
		{types.FormatMultibase, x25519KeyMultibase, ed25519Key1Multibase, ed25519Key2Multibase, types.Ed25519VerificationKey2020, types.X25519KeyAgreementKey2020, "https://w3id.org/security/suites/ed25519-2020/v1"},
		{types.FormatJWK, x25519KeyJWK, ed25519Key1JWK, ed25519Key2JWK, types.AuthenticationJSONWebKey, types.AgreementJSONWebKey, "https://w3id.org/security/suites/jws-2020/v1"},
	}
	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			doc, err := Resolve(algo2DID, tt.format)
			require.NoError(t, err)
			assert.Equal(t, algo2DID, doc.ID)
			assert.Contains(t, doc.Context, contextDIDv1)
			assert.Contains(t, doc.Context, tt.contextTag)

			// Keys are numbered in the order their segments appear.
			require.Len(t, doc.VerificationMethods, 3)
			want := []struct {
				value string
				typ   types.VerificationMaterialType
			}{{tt.agreement, tt.agreeType}, {tt.auth1, tt.authType}, {tt.auth2, tt.authType}}
			for i, w := range want {
				vm := doc.VerificationMethods[i]
				assert.Equal(t, algo2DID+"#key-"+string(rune('1'+i)), vm.ID)
				assert.Equal(t, algo2DID, vm.Controller)
				assert.Equal(t, w.value, string(vm.Material.Value))
				assert.Equal(t, w.typ, vm.Material.Type)
			}

			auth := doc.Authentication()
			require.Len(t, auth, 2)
			assert.Equal(t, algo2DID+"#key-2", auth[0].ID)
			agreement := doc.KeyAgreement()
			require.Len(t, agreement, 1)
			assert.Equal(t, algo2DID+"#key-1", agreement[0].ID)

			require.Len(t, doc.Services, 1)
			svc := doc.Services[0]
			assert.Equal(t, algo2DID+"#didcommmessaging-1", svc.ID)
			assert.Equal(t, ServiceTypeDIDCommMessaging, svc.Type)
			assert.Equal(t, "https://example.com/endpoint", svc.ServiceEndpoint.URI)
			assert.Equal(t, []string{"did:example:somemediator#somekey"}, svc.ServiceEndpoint.RoutingKeys)
			assert.Equal(t, []string{"didcomm/v2", "didcomm/aip2;env=rfc587"}, svc.ServiceEndpoint.Accept)
		})
	}
}

func TestResolveAlgo2TwoServices(t *testing.T) {
	doc, err := Resolve(algo2TwoServicesDID, types.FormatMultibase)
	require.NoError(t, err)
	require.Len(t, doc.Services, 2)
	assert.Equal(t, algo2TwoServicesDID+"#didcommmessaging-1", doc.Services[0].ID)
	assert.Equal(t, algo2TwoServicesDID+"#didcommmessaging-2", doc.Services[1].ID)
	assert.Equal(t, "z6LSpSrLxbAhg2SHwKk7kwpsH7DM7QjFS5iK6qP87eViohud", string(doc.VerificationMethods[0].Material.Value))
}

func TestResolveServicesNumberedPerType(t *testing.T) {
	linked, err := EncodeService(Service{Type: "LinkedDomains", ServiceEndpoint: ServiceEndpoint{URI: "https://example.com"}})
	require.NoError(t, err)
	array := "SW3sicyI6eyJ1cmkiOiJodHRwczovL2EuZXhhbXBsZSJ9LCJ0IjoiZG0ifSx7InMiOnsidXJpIjoiaHR0cHM6Ly9iLmV4YW1wbGUifSwidCI6ImRtIn0seyJzIjp7InVyaSI6Imh0dHBzOi8vYy5leGFtcGxlIn0sInQiOiJMaW5rZWREb21haW5zIn1d"
	did := "did:peer:2.V" + ed25519Key1Multibase + "." + routedServiceSegment + "." + linked + "." + array

	doc, err := Resolve(did, types.FormatMultibase)
	require.NoError(t, err)

	var got []string
	for _, s := range doc.Services {
		got = append(got, s.ID[len(did):])
	}
	assert.Equal(t, []string{
		"#didcommmessaging-1",
		"#linkeddomains-1",
		"#didcommmessaging-2",
		"#didcommmessaging-3",
		"#linkeddomains-2",
	}, got)
}

func TestResolveDefaultsToMultibase(t *testing.T) {
	r := NewResolver(ResolverOptions{})
	assert.Equal(t, types.FormatMultibase, r.Format())

	doc, err := r.Resolve(algo0DID)
	require.NoError(t, err)
	assert.Equal(t, ed25519Key1Multibase, string(doc.VerificationMethods[0].Material.Value))
}

func TestResolveMissingScheme(t *testing.T) {
	doc, err := Resolve("peer:0"+ed25519Key1Multibase, types.FormatMultibase)
	assert.Nil(t, doc)
	var e *types.ErrInvalidPeerDIDString
	assert.True(t, errors.As(err, &e))
}

func TestResolveSegmentErrors(t *testing.T) {
	tests := []struct {
		name     string
		did      string
		kind     types.SegmentKind
		position int
		check    func(error) bool
	}{
		{
			name:     "algo0 short key",
			did:      "did:peer:0z2DQUz8nFdBkV4MKdqWGtQB9BsNUCioEPREBUjj3hFW95f6",
			kind:     types.SegmentAuthentication,
			position: 1,
			check:    func(err error) bool { var e *types.ErrInvalidKeyLength; return errors.As(err, &e) && e.Length == 31 },
		},
		{
			name:     "algo0 long key",
			did:      "did:peer:0zQebecCe6nywSeLgfPTzVJxypBboVUWpcqU8EfVEazmiRAhs6",
			kind:     types.SegmentAuthentication,
			position: 1,
			check:    func(err error) bool { var e *types.ErrInvalidKeyLength; return errors.As(err, &e) && e.Length == 33 },
		},
		{
			name:     "algo0 agreement key",
			did:      "did:peer:0" + x25519KeyMultibase,
			kind:     types.SegmentAuthentication,
			position: 1,
			check:    func(err error) bool { var e *types.ErrInvalidMaterialType; return errors.As(err, &e) },
		},
		{
			name:     "unknown codec",
			did:      "did:peer:2.Vz6mMWWhBxSemJKfjbbT1tTKkc5P4aQkJtwEqr7533LkNLmJG",
			kind:     types.SegmentAuthentication,
			position: 1,
			check:    func(err error) bool { var e *types.ErrUnsupportedMulticodec; return errors.As(err, &e) && e.Code == 0xff },
		},
		{
			name:     "unterminated varint",
			did:      "did:peer:2.V" + ed25519Key1Multibase + ".Ez3D",
			kind:     types.SegmentAgreement,
			position: 2,
			check:    func(err error) bool { var e *types.ErrMalformedVarint; return errors.As(err, &e) },
		},
		{
			name:     "authentication key under E",
			did:      "did:peer:2.E" + ed25519Key1Multibase,
			kind:     types.SegmentAgreement,
			position: 1,
			check:    func(err error) bool { var e *types.ErrInvalidMaterialType; return errors.As(err, &e) },
		},
		{
			name:     "agreement key under V",
			did:      "did:peer:2.V" + x25519KeyMultibase,
			kind:     types.SegmentAuthentication,
			position: 1,
			check:    func(err error) bool { var e *types.ErrInvalidMaterialType; return errors.As(err, &e) },
		},
		{
			name:     "malformed service",
			did:      "did:peer:2.V" + ed25519Key1Multibase + ".SeyJ0IjoiZG0ifQ",
			kind:     types.SegmentService,
			position: 2,
			check:    func(err error) bool { var e *types.ErrInvalidService; return errors.As(err, &e) },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Resolve(tt.did, types.FormatMultibase)
			require.Error(t, err)
			assert.Nil(t, doc)

			var seg *types.ErrInvalidSegment
			require.True(t, errors.As(err, &seg), "got %v", err)
			assert.Equal(t, tt.kind, seg.Kind)
			assert.Equal(t, tt.position, seg.Position)
			assert.True(t, tt.check(err), "got %v", err)
		})
	}
}

func TestResolverLogsOutcome(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	r := NewResolver(ResolverOptions{Format: types.FormatBase58, Logger: zap.New(core)})

	_, err := r.Resolve(algo2DID)
	require.NoError(t, err)
	_, err = r.Resolve("did:peer:9x")
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "peer DID resolved", entries[0].Message)
	assert.Equal(t, int64(3), entries[0].ContextMap()["verification_methods"])
	assert.Equal(t, "peer DID rejected", entries[1].Message)
}

func TestDecodeEcnumbasis(t *testing.T) {
	m, err := DecodeEcnumbasis(x25519KeyMultibase, types.FormatJWK)
	require.NoError(t, err)
	assert.Equal(t, types.AgreementJSONWebKey, m.Type)
	assert.Equal(t, x25519KeyJWK, string(m.Value))

	m, err = DecodeEcnumbasis(ed25519Key1Multibase, types.FormatBase58)
	require.NoError(t, err)
	assert.Equal(t, types.Ed25519VerificationKey2018, m.Type)
	assert.Equal(t, ed25519Key1Base58, string(m.Value))

	_, err = DecodeEcnumbasis("m"+ed25519Key1Multibase[1:], types.FormatBase58)
	var prefix *types.ErrUnsupportedMultibasePrefix
	assert.True(t, errors.As(err, &prefix))
}

func TestEncodeEcnumbasis(t *testing.T) {
	for _, m := range key1Inputs {
		got, err := EncodeEcnumbasis(m)
		require.NoError(t, err)
		assert.Equal(t, ed25519Key1Multibase, got, m.Format)
	}
	for _, m := range agreementInputs {
		got, err := EncodeEcnumbasis(m)
		require.NoError(t, err)
		assert.Equal(t, x25519KeyMultibase, got, m.Format)
	}
}
