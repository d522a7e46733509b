// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"encoding/json"
	"fmt"

	"github.com/aumos-ai/peer-did/keys"
	"github.com/aumos-ai/peer-did/peerdid"
	"github.com/aumos-ai/peer-did/types"
)

func (e *environment) runCreate0(args []string) int {
	fs := e.newFlagSet("create0")

	var key string
	var keyFormat string
	fs.StringVar(&key, "key", "", "Ed25519 public key in --key-format")
	fs.StringVar(&keyFormat, "key-format", string(types.FormatMultibase), "serialization of --key")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if key == "" {
		return e.fail("create0 requires --key")
	}
	log, err := e.logger()
	if err != nil {
		return e.fail("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	material, err := inputMaterial(key, keyFormat, types.PurposeAuthentication)
	if err != nil {
		return e.fail("parse key: %v", err)
	}
	did, err := peerdid.CreateAlgo0(material)
	if err != nil {
		return e.fail("create did:peer:0: %v", err)
	}
	log.Debug("created peer DID", zapDID(did)...)
	fmt.Fprintln(e.stdout, did.String())
	return 0
}

func (e *environment) runCreate2(args []string) int {
	fs := e.newFlagSet("create2")

	var auth, agreement, services stringList
	var keyFormat string
	fs.Var(&auth, "auth", "Ed25519 authentication key in --key-format (repeatable)")
	fs.Var(&agreement, "agreement", "X25519 key agreement key in --key-format (repeatable)")
	fs.Var(&services, "service", `service JSON, e.g. {"type":"DIDCommMessaging","serviceEndpoint":{"uri":"https://..."}} (repeatable)`)
	fs.StringVar(&keyFormat, "key-format", string(types.FormatMultibase), "serialization of --auth and --agreement")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if len(auth)+len(agreement) == 0 {
		return e.fail("create2 requires at least one --auth or --agreement key")
	}
	log, err := e.logger()
	if err != nil {
		return e.fail("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	authMaterials, err := inputMaterials(auth, keyFormat, types.PurposeAuthentication)
	if err != nil {
		return e.fail("parse --auth: %v", err)
	}
	agreementMaterials, err := inputMaterials(agreement, keyFormat, types.PurposeAgreement)
	if err != nil {
		return e.fail("parse --agreement: %v", err)
	}
	svcs := make([]peerdid.Service, 0, len(services))
	for i, raw := range services {
		var svc peerdid.Service
		if err := json.Unmarshal([]byte(raw), &svc); err != nil {
			return e.fail("decode --service %d: %v", i+1, err)
		}
		svcs = append(svcs, svc)
	}

	did, err := peerdid.CreateAlgo2(authMaterials, agreementMaterials, svcs)
	if err != nil {
		return e.fail("create did:peer:2: %v", err)
	}
	log.Debug("created peer DID", zapDID(did)...)
	fmt.Fprintln(e.stdout, did.String())
	return 0
}

// inputMaterial wraps a serialized key from the command line. The method type
// is the default for the format and purpose.
func inputMaterial(value, format string, purpose types.KeyPurpose) (keys.VerificationMaterial, error) {
	f, err := parseFormat(format)
	if err != nil {
		return keys.VerificationMaterial{}, err
	}
	typ, err := types.MaterialTypeFor(f, purpose)
	if err != nil {
		return keys.VerificationMaterial{}, err
	}
	m := keys.VerificationMaterial{Format: f, Value: []byte(value), Type: typ}
	if _, err := m.DecodedKey(); err != nil {
		return keys.VerificationMaterial{}, err
	}
	return m, nil
}

func inputMaterials(values []string, format string, purpose types.KeyPurpose) ([]keys.VerificationMaterial, error) {
	out := make([]keys.VerificationMaterial, 0, len(values))
	for i, v := range values {
		m, err := inputMaterial(v, format, purpose)
		if err != nil {
			return nil, fmt.Errorf("key %d: %w", i+1, err)
		}
		out = append(out, m)
	}
	return out, nil
}
