// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package main

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/aumos-ai/peer-did/codec"
	"github.com/aumos-ai/peer-did/internal/config"
	"github.com/aumos-ai/peer-did/types"
)

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 2 {
		usage(args, stderr)
		return 1
	}

	env := &environment{cfg: config.FromEnv(), stdout: stdout, stderr: stderr}
	switch args[1] {
	case "create0":
		return env.runCreate0(args[2:])
	case "create2":
		return env.runCreate2(args[2:])
	case "resolve":
		return env.runResolve(args[2:])
	case "ecnumbasis":
		return env.runEcnumbasis(args[2:])
	case "help", "-h", "--help":
		usage(args, stdout)
		return 0
	}

	usage(args, stderr)
	return 1
}

func usage(args []string, w io.Writer) {
	name := "peerdid"
	if len(args) > 0 && args[0] != "" {
		name = filepath.Base(args[0])
	}
	fmt.Fprintf(w, "usage:\n")
	fmt.Fprintf(w, "  %s create0 --key <value> [--key-format base58|multibase|jwk]\n", name)
	fmt.Fprintf(w, "  %s create2 [--auth <value>]... [--agreement <value>]... [--service <json>]... [--key-format base58|multibase|jwk]\n", name)
	fmt.Fprintf(w, "  %s resolve [--format base58|multibase|jwk] [--compact] <did>\n", name)
	fmt.Fprintf(w, "  %s ecnumbasis [--format base58|multibase|jwk] <ecnumbasis>\n", name)
	fmt.Fprintf(w, "environment: PEERDID_FORMAT, PEERDID_LOG_LEVEL, PEERDID_PRETTY\n")
}

// environment carries configuration and output streams shared by subcommands.
type environment struct {
	cfg    config.Config
	stdout io.Writer
	stderr io.Writer
}

// newFlagSet registers the flags every subcommand accepts.
func (e *environment) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	fs.StringVar(&e.cfg.LogLevel, "log-level", e.cfg.LogLevel, "log level (debug, info, warn, error)")
	return fs
}

func (e *environment) logger() (*zap.Logger, error) {
	level, err := e.cfg.Level()
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(e.stderr),
		level,
	)
	return zap.New(core).Named("peerdid"), nil
}

func (e *environment) fail(format string, a ...any) int {
	fmt.Fprintf(e.stderr, format+"\n", a...)
	return 1
}

func (e *environment) writeJSON(v any) error {
	opts := codec.CanonicalJSON()
	if e.cfg.Pretty {
		opts.Indent = "  "
	}
	out, err := opts.Marshal(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(e.stdout, string(out))
	return err
}

func parseFormat(s string) (types.MaterialFormat, error) {
	return types.ParseMaterialFormat(strings.TrimSpace(s))
}

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}
