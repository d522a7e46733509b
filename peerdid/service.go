// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/aumos-ai/peer-did/codec"
	"github.com/aumos-ai/peer-did/types"
)

// ServiceTypeDIDCommMessaging is abbreviated to "dm" inside identifiers.
const ServiceTypeDIDCommMessaging = "DIDCommMessaging"

const (
	serviceTypeAbbreviation = "dm"
	quotedAbbreviation      = `"` + serviceTypeAbbreviation + `"`
	quotedServiceType       = `"` + ServiceTypeDIDCommMessaging + `"`
)

// Service is a service entry of a resolved document. ID is assigned during
// resolution and ignored when encoding.
type Service struct {
	ID              string          `json:"id,omitempty"`
	Type            string          `json:"type"`
	ServiceEndpoint ServiceEndpoint `json:"serviceEndpoint"`
	RoutingKeys     []string        `json:"routingKeys,omitempty"`
	Accept          []string        `json:"accept,omitempty"`
	// RecipientKeys only appears in services decoded from the legacy flat shape.
	RecipientKeys []string `json:"recipientKeys,omitempty"`
}

// ServiceEndpoint is the structured endpoint of a service. It unmarshals from
// either a bare URI string or a {uri, routingKeys, accept} object.
type ServiceEndpoint struct {
	URI         string   `json:"uri"`
	RoutingKeys []string `json:"routingKeys,omitempty"`
	Accept      []string `json:"accept,omitempty"`
}

func (e *ServiceEndpoint) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var uri string
		if err := json.Unmarshal(trimmed, &uri); err != nil {
			return err
		}
		*e = ServiceEndpoint{URI: uri}
		return nil
	}
	type plain ServiceEndpoint
	var p plain
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return err
	}
	*e = ServiceEndpoint(p)
	return nil
}

// effectiveRoutingKeys prefers endpoint-level routing keys over service-level ones.
func (s Service) effectiveRoutingKeys() []string {
	if len(s.ServiceEndpoint.RoutingKeys) > 0 {
		return s.ServiceEndpoint.RoutingKeys
	}
	return s.RoutingKeys
}

func (s Service) effectiveAccept() []string {
	if len(s.ServiceEndpoint.Accept) > 0 {
		return s.ServiceEndpoint.Accept
	}
	return s.Accept
}

// compactEndpoint and compactService are the abbreviated shape embedded in identifiers.
type compactEndpoint struct {
	URI string   `json:"uri"`
	R   []string `json:"r,omitempty"`
	A   []string `json:"a,omitempty"`
}

type compactService struct {
	T string          `json:"t"`
	S compactEndpoint `json:"s"`
}

// legacyService is the flat shape older identifiers carry.
type legacyService struct {
	T             string   `json:"t"`
	S             string   `json:"s"`
	RecipientKeys []string `json:"recipientKeys,omitempty"`
	R             []string `json:"r,omitempty"`
	A             []string `json:"a,omitempty"`
}

// EncodeService returns the "S"-prefixed segment for svc.
func EncodeService(svc Service) (string, error) {
	if svc.Type == "" {
		return "", &types.ErrInvalidService{Reason: "missing type"}
	}
	if svc.ServiceEndpoint.URI == "" {
		return "", &types.ErrInvalidService{Reason: "missing endpoint uri"}
	}
	if len(svc.RecipientKeys) > 0 {
		return "", &types.ErrInvalidService{Reason: "recipientKeys cannot be encoded"}
	}

	compact := compactService{
		T: svc.Type,
		S: compactEndpoint{
			URI: svc.ServiceEndpoint.URI,
			R:   svc.effectiveRoutingKeys(),
			A:   svc.effectiveAccept(),
		},
	}
	out, err := codec.CanonicalJSON().Marshal(compact)
	if err != nil {
		return "", err
	}
	abbreviated := strings.ReplaceAll(string(out), ServiceTypeDIDCommMessaging, serviceTypeAbbreviation)
	return string(types.SegmentService) + base64.RawURLEncoding.EncodeToString([]byte(abbreviated)), nil
}

// DecodeService decodes a service segment payload (without the "S" prefix).
// A payload holding a JSON array yields one service per element. IDs are left
// empty for the caller to assign.
func DecodeService(payload string) ([]Service, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(payload, "="))
	if err != nil {
		return nil, &types.ErrInvalidService{Reason: "payload is not base64url: " + err.Error()}
	}
	expanded := []byte(strings.ReplaceAll(string(raw), quotedAbbreviation, quotedServiceType))

	if svc, ok := decodeServiceObject(expanded); ok {
		return []Service{svc}, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(expanded, &elements); err != nil {
		return nil, &types.ErrInvalidService{Reason: "unrecognized service shape"}
	}
	if len(elements) == 0 {
		return nil, &types.ErrInvalidService{Reason: "empty service array"}
	}
	services := make([]Service, 0, len(elements))
	for _, el := range elements {
		svc, ok := decodeServiceObject(el)
		if !ok {
			return nil, &types.ErrInvalidService{Reason: "unrecognized service shape in array"}
		}
		services = append(services, svc)
	}
	return services, nil
}

// decodeServiceObject tries the legacy flat shape and then the structured one.
func decodeServiceObject(data []byte) (Service, bool) {
	var legacy legacyService
	if err := json.Unmarshal(data, &legacy); err == nil && legacy.T != "" && legacy.S != "" {
		return Service{
			Type: legacy.T,
			ServiceEndpoint: ServiceEndpoint{
				URI:         legacy.S,
				RoutingKeys: legacy.R,
				Accept:      legacy.A,
			},
			RecipientKeys: legacy.RecipientKeys,
		}, true
	}

	var structured compactService
	if err := json.Unmarshal(data, &structured); err == nil && structured.T != "" && structured.S.URI != "" {
		return Service{
			Type: structured.T,
			ServiceEndpoint: ServiceEndpoint{
				URI:         structured.S.URI,
				RoutingKeys: structured.S.R,
				Accept:      structured.S.A,
			},
		}, true
	}
	return Service{}, false
}
