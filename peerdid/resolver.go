// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aumos-ai/peer-did/keys"
	"github.com/aumos-ai/peer-did/types"
)

// ResolverOptions configures a Resolver.
type ResolverOptions struct {
	// Format is the serialization used for verification method keys. Defaults to multibase.
	Format types.MaterialFormat
	// Logger receives debug events for each resolution. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Resolver turns did:peer identifiers into DID documents. It holds only
// configuration and may be shared between goroutines.
type Resolver struct {
	format types.MaterialFormat
	logger *zap.Logger
}

// NewResolver constructs a Resolver with the provided options.
func NewResolver(opts ResolverOptions) *Resolver {
	format := opts.Format
	if format == "" {
		format = types.FormatMultibase
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{format: format, logger: logger}
}

// Resolve resolves did with a resolver using the given key format.
func Resolve(did string, format types.MaterialFormat) (*DIDDocument, error) {
	return NewResolver(ResolverOptions{Format: format}).Resolve(did)
}

// Format reports the key format documents are produced in.
func (r *Resolver) Format() types.MaterialFormat {
	return r.format
}

// Resolve parses did and builds its document. Any malformed segment fails the
// whole resolution.
func (r *Resolver) Resolve(did string) (*DIDDocument, error) {
	peerDID, err := Parse(did)
	if err != nil {
		r.logger.Debug("peer DID rejected", zap.String("did", did), zap.Error(err))
		return nil, err
	}

	var doc *DIDDocument
	switch peerDID.Algorithm {
	case types.AlgorithmZero:
		doc, err = r.resolveAlgo0(peerDID)
	case types.AlgorithmTwo:
		doc, err = r.resolveAlgo2(peerDID)
	default:
		err = &types.ErrUnsupportedAlgorithm{Algorithm: string(peerDID.Algorithm)}
	}
	if err != nil {
		r.logger.Debug("peer DID resolution failed", zap.String("did", did), zap.Error(err))
		return nil, err
	}

	r.logger.Debug("peer DID resolved",
		zap.String("did", did),
		zap.String("format", string(r.format)),
		zap.Int("verification_methods", len(doc.VerificationMethods)),
		zap.Int("services", len(doc.Services)),
	)
	return doc, nil
}

// resolveAlgo0 builds the single verification method of a did:peer:0. Its
// fragment is the ecnumbasis itself.
func (r *Resolver) resolveAlgo0(peerDID PeerDID) (*DIDDocument, error) {
	did := peerDID.String()
	ecnumbasis := peerDID.MethodIDWithoutAlgorithm()

	material, err := r.decodeKey(types.SegmentAuthentication, ecnumbasis)
	if err != nil {
		return nil, &types.ErrInvalidSegment{Kind: types.SegmentAuthentication, Position: 1, Err: err}
	}
	return &DIDDocument{
		Context: contextsFor(r.format, []keys.VerificationMaterial{material}),
		ID:      did,
		VerificationMethods: []VerificationMethod{{
			ID:         did + "#" + ecnumbasis,
			Controller: did,
			Material:   material,
		}},
		Services: []Service{},
	}, nil
}

// resolveAlgo2 walks the segments left to right. Keys are numbered key-1..n
// in that order; services are numbered per type.
func (r *Resolver) resolveAlgo2(peerDID PeerDID) (*DIDDocument, error) {
	did := peerDID.String()
	doc := &DIDDocument{
		ID:                  did,
		VerificationMethods: []VerificationMethod{},
		Services:            []Service{},
	}

	var materials []keys.VerificationMaterial
	perType := make(map[string]int)
	for i, seg := range peerDID.Segments() {
		position := i + 1
		switch seg.Kind {
		case types.SegmentAuthentication, types.SegmentAgreement:
			material, err := r.decodeKey(seg.Kind, seg.Value)
			if err != nil {
				return nil, &types.ErrInvalidSegment{Kind: seg.Kind, Position: position, Err: err}
			}
			materials = append(materials, material)
			doc.VerificationMethods = append(doc.VerificationMethods, VerificationMethod{
				ID:         fmt.Sprintf("%s#key-%d", did, len(materials)),
				Controller: did,
				Material:   material,
			})
		case types.SegmentService:
			services, err := DecodeService(seg.Value)
			if err != nil {
				return nil, &types.ErrInvalidSegment{Kind: seg.Kind, Position: position, Err: err}
			}
			for _, svc := range services {
				lower := strings.ToLower(svc.Type)
				perType[lower]++
				svc.ID = fmt.Sprintf("%s#%s-%d", did, lower, perType[lower])
				doc.Services = append(doc.Services, svc)
			}
		default:
			return nil, &types.ErrInvalidSegment{
				Kind:     seg.Kind,
				Position: position,
				Err:      &types.ErrInvalidPeerDIDString{DID: did, Reason: "unknown segment prefix " + string(seg.Kind)},
			}
		}
	}

	doc.Context = contextsFor(r.format, materials)
	return doc, nil
}

// decodeKey decodes an ecnumbasis and checks that its codec matches the
// segment it was found in.
func (r *Resolver) decodeKey(kind types.SegmentKind, ecnumbasis string) (keys.VerificationMaterial, error) {
	material, err := DecodeEcnumbasis(ecnumbasis, r.format)
	if err != nil {
		return keys.VerificationMaterial{}, err
	}
	if want := purposeOf(kind); material.Type.Purpose != want {
		return keys.VerificationMaterial{}, &types.ErrInvalidMaterialType{
			Type:   material.Type.String(),
			Reason: fmt.Sprintf("%s segment holds %s material", kind, material.Type.Purpose),
		}
	}
	return material, nil
}

// contextsFor lists the JSON-LD contexts for the method types in use.
func contextsFor(format types.MaterialFormat, materials []keys.VerificationMaterial) []string {
	contexts := []string{contextDIDv1}
	if format == types.FormatJWK {
		return append(contexts, "https://w3id.org/security/suites/jws-2020/v1")
	}
	seen := make(map[types.VerificationMethodType]bool)
	for _, m := range materials {
		if seen[m.Type.Method] {
			continue
		}
		seen[m.Type.Method] = true
		switch m.Type.Method {
		case types.VerificationMethodEd25519VerificationKey2018:
			contexts = append(contexts, "https://w3id.org/security/suites/ed25519-2018/v1")
		case types.VerificationMethodEd25519VerificationKey2020:
			contexts = append(contexts, "https://w3id.org/security/suites/ed25519-2020/v1")
		case types.VerificationMethodX25519KeyAgreementKey2019:
			contexts = append(contexts, "https://w3id.org/security/suites/x25519-2019/v1")
		case types.VerificationMethodX25519KeyAgreementKey2020:
			contexts = append(contexts, "https://w3id.org/security/suites/x25519-2020/v1")
		}
	}
	return contexts
}
