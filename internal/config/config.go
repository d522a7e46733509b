// SPDX-License-Identifier: BSL-1.1
// Copyright (c) 2026 MuVeraAI Corporation

package config

import (
	"os"
	"strconv"

	"go.uber.org/zap/zapcore"

	"github.com/aumos-ai/peer-did/types"
)

// Config holds the peerdid command settings. Flags override these values.
type Config struct {
	Format   string
	LogLevel string
	Pretty   bool
}

func FromEnv() Config {
	return Config{
		Format:   envDefault("PEERDID_FORMAT", string(types.FormatMultibase)),
		LogLevel: envDefault("PEERDID_LOG_LEVEL", "warn"),
		Pretty:   envBoolDefault("PEERDID_PRETTY", true),
	}
}

// MaterialFormat parses Format.
func (c Config) MaterialFormat() (types.MaterialFormat, error) {
	return types.ParseMaterialFormat(c.Format)
}

// Level parses LogLevel.
func (c Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(c.LogLevel)
}

func envDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func envBoolDefault(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return parsed
}
