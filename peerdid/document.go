// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package peerdid

import (
	"encoding/json"
	"fmt"

	"github.com/aumos-ai/peer-did/keys"
	"github.com/aumos-ai/peer-did/types"
)

const contextDIDv1 = "https://www.w3.org/ns/did/v1"

// DIDDocument is the identity document a did:peer identifier resolves to.
type DIDDocument struct {
	Context             []string
	ID                  string
	VerificationMethods []VerificationMethod
	Services            []Service
}

// VerificationMethod is a key entry of a DIDDocument.
type VerificationMethod struct {
	ID         string
	Controller string
	Material   keys.VerificationMaterial
}

// Authentication returns the verification methods holding authentication keys.
func (d *DIDDocument) Authentication() []VerificationMethod {
	return d.filter(types.PurposeAuthentication)
}

// KeyAgreement returns the verification methods holding key agreement keys.
func (d *DIDDocument) KeyAgreement() []VerificationMethod {
	return d.filter(types.PurposeAgreement)
}

func (d *DIDDocument) filter(purpose types.KeyPurpose) []VerificationMethod {
	var out []VerificationMethod
	for _, vm := range d.VerificationMethods {
		if vm.Material.Type.Purpose == purpose {
			out = append(out, vm)
		}
	}
	return out
}

// VerificationMethodByID finds a verification method by full id or by its
// fragment ("#key-1" or "key-1").
func (d *DIDDocument) VerificationMethodByID(id string) (VerificationMethod, bool) {
	for _, vm := range d.VerificationMethods {
		if vm.ID == id || vm.ID == d.ID+id || vm.ID == d.ID+"#"+id {
			return vm, true
		}
	}
	return VerificationMethod{}, false
}

// ServiceByID finds a service by full id or fragment.
func (d *DIDDocument) ServiceByID(id string) (Service, bool) {
	for _, s := range d.Services {
		if s.ID == id || s.ID == d.ID+id || s.ID == d.ID+"#"+id {
			return s, true
		}
	}
	return Service{}, false
}

type documentJSON struct {
	Context            []string             `json:"@context,omitempty"`
	ID                 string               `json:"id"`
	VerificationMethod []VerificationMethod `json:"verificationMethod"`
	Authentication     []string             `json:"authentication"`
	KeyAgreement       []string             `json:"keyAgreement"`
	Service            []Service            `json:"service"`
}

func ids(vms []VerificationMethod) []string {
	out := make([]string, 0, len(vms))
	for _, vm := range vms {
		out = append(out, vm.ID)
	}
	return out
}

// MarshalJSON renders the W3C DID document form. authentication and
// keyAgreement list verification method ids.
func (d DIDDocument) MarshalJSON() ([]byte, error) {
	vms := d.VerificationMethods
	if vms == nil {
		vms = []VerificationMethod{}
	}
	services := d.Services
	if services == nil {
		services = []Service{}
	}
	return json.Marshal(documentJSON{
		Context:            d.Context,
		ID:                 d.ID,
		VerificationMethod: vms,
		Authentication:     ids(d.Authentication()),
		KeyAgreement:       ids(d.KeyAgreement()),
		Service:            services,
	})
}

// UnmarshalJSON reads a document produced by MarshalJSON. The authentication
// and keyAgreement lists are derived from the verification methods, so they
// are not read back.
func (d *DIDDocument) UnmarshalJSON(data []byte) error {
	var doc documentJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = DIDDocument{
		Context:             doc.Context,
		ID:                  doc.ID,
		VerificationMethods: doc.VerificationMethod,
		Services:            doc.Service,
	}
	return nil
}

type verificationMethodJSON struct {
	ID                 string          `json:"id"`
	Type               string          `json:"type"`
	Controller         string          `json:"controller"`
	PublicKeyBase58    string          `json:"publicKeyBase58,omitempty"`
	PublicKeyMultibase string          `json:"publicKeyMultibase,omitempty"`
	PublicKeyJwk       json.RawMessage `json:"publicKeyJwk,omitempty"`
}

func (vm VerificationMethod) MarshalJSON() ([]byte, error) {
	out := verificationMethodJSON{
		ID:         vm.ID,
		Type:       vm.Material.Type.String(),
		Controller: vm.Controller,
	}
	switch vm.Material.Format {
	case types.FormatBase58:
		out.PublicKeyBase58 = string(vm.Material.Value)
	case types.FormatMultibase:
		out.PublicKeyMultibase = string(vm.Material.Value)
	case types.FormatJWK:
		out.PublicKeyJwk = json.RawMessage(vm.Material.Value)
	default:
		return nil, &types.ErrInvalidMaterialType{Type: string(vm.Material.Format), Reason: "unknown material format"}
	}
	return json.Marshal(out)
}

func (vm *VerificationMethod) UnmarshalJSON(data []byte) error {
	var in verificationMethodJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	method, err := types.ParseVerificationMethodType(in.Type)
	if err != nil {
		return err
	}

	var (
		format types.MaterialFormat
		value  []byte
		curve  string
	)
	switch {
	case in.PublicKeyBase58 != "":
		format, value = types.FormatBase58, []byte(in.PublicKeyBase58)
	case in.PublicKeyMultibase != "":
		format, value = types.FormatMultibase, []byte(in.PublicKeyMultibase)
	case len(in.PublicKeyJwk) > 0:
		jwk, err := keys.ParseJWK(in.PublicKeyJwk)
		if err != nil {
			return err
		}
		// Re-serialize so Value stays canonical regardless of the input layout.
		if value, err = jwk.Bytes(); err != nil {
			return err
		}
		format, curve = types.FormatJWK, jwk.Crv
	default:
		return fmt.Errorf("peerdid: verification method %s has no public key", in.ID)
	}

	typ, err := types.InferMaterialType(method, curve)
	if err != nil {
		return err
	}
	*vm = VerificationMethod{
		ID:         in.ID,
		Controller: in.Controller,
		Material:   keys.VerificationMaterial{Format: format, Value: value, Type: typ},
	}
	return nil
}
