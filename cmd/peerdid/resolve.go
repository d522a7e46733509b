// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aumos-ai/peer-did/peerdid"
)

func (e *environment) runResolve(args []string) int {
	fs := e.newFlagSet("resolve")

	var compact bool
	fs.StringVar(&e.cfg.Format, "format", e.cfg.Format, "key format of verification methods (base58, multibase, jwk)")
	fs.BoolVar(&compact, "compact", false, "print the document on one line")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		return e.fail("resolve requires exactly one DID")
	}
	if compact {
		e.cfg.Pretty = false
	}
	format, err := e.cfg.MaterialFormat()
	if err != nil {
		return e.fail("parse --format: %v", err)
	}
	log, err := e.logger()
	if err != nil {
		return e.fail("logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	resolver := peerdid.NewResolver(peerdid.ResolverOptions{Format: format, Logger: log})
	doc, err := resolver.Resolve(fs.Arg(0))
	if err != nil {
		return e.fail("resolve: %v", err)
	}
	if err := e.writeJSON(doc); err != nil {
		return e.fail("write document: %v", err)
	}
	return 0
}

func (e *environment) runEcnumbasis(args []string) int {
	fs := e.newFlagSet("ecnumbasis")
	fs.StringVar(&e.cfg.Format, "format", e.cfg.Format, "output key format (base58, multibase, jwk)")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		return e.fail("ecnumbasis requires exactly one value")
	}
	format, err := e.cfg.MaterialFormat()
	if err != nil {
		return e.fail("parse --format: %v", err)
	}

	material, err := peerdid.DecodeEcnumbasis(fs.Arg(0), format)
	if err != nil {
		return e.fail("decode ecnumbasis: %v", err)
	}
	fmt.Fprintf(e.stdout, "%s %s\n", material.Type, material.Value)
	return 0
}

func zapDID(did peerdid.PeerDID) []zap.Field {
	return []zap.Field{
		zap.String("did", did.String()),
		zap.String("algorithm", string(did.Algorithm)),
	}
}
