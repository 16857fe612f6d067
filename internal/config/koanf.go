// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order
// of priority. The first file found wins.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/skillsync/config.yaml",
	"/etc/skillsync/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML config file (if present)
//  3. Environment variables: override any setting
func Load() (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// Layer 2: optional config file
	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: environment variables (highest priority)
	envProvider := env.Provider("", ".", envTransformFunc)
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment variables: %w", err)
	}

	// Slice-valued settings arrive from env vars as comma-separated strings.
	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the first file found, or empty string if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths are parsed as comma-separated slices.
var sliceConfigPaths = []string{
	"server.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known
// slice fields. Env vars come in as strings but the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		val := k.Get(path)
		if val == nil {
			continue
		}

		// Already a slice (from YAML or defaults) - nothing to do.
		if _, ok := val.([]interface{}); ok {
			continue
		}
		if _, ok := val.([]string); ok {
			continue
		}

		strVal, ok := val.(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) > 0 {
			if err := k.Set(path, trimmed); err != nil {
				return fmt.Errorf("set %s: %w", path, err)
			}
		}
	}
	return nil
}

// envKeyMap maps environment variable names to koanf config paths.
// Only variables listed here are honored; everything else in the process
// environment is ignored so unrelated vars cannot clobber config keys.
var envKeyMap = map[string]string{
	"SERVER_HOST":            "server.host",
	"SERVER_PORT":            "server.port",
	"PORT":                   "server.port",
	"SERVER_TIMEOUT":         "server.timeout",
	"CORS_ORIGINS":           "server.cors_origins",
	"FRONTEND_URL":           "server.cors_origins",
	"JWT_SECRET":             "security.jwt_secret",
	"JWT_EXPIRES":            "security.token_ttl",
	"BCRYPT_COST":            "security.bcrypt_cost",
	"RATE_LIMIT_REQUESTS":    "security.rate_limit_requests",
	"RATE_LIMIT_WINDOW":      "security.rate_limit_window",
	"AI_RATE_LIMIT_REQUESTS": "security.ai_rate_limit_requests",
	"AI_RATE_LIMIT_WINDOW":   "security.ai_rate_limit_window",
	"RATE_LIMIT_DISABLED":    "security.rate_limit_disabled",
	"OPENAI_API_KEY":         "ai.api_key",
	"OPENAI_BASE_URL":        "ai.base_url",
	"OPENAI_MODEL":           "ai.model",
	"AI_TIMEOUT":             "ai.timeout",
	"AI_ENABLED":             "ai.enabled",
	"USERS_FILE":             "store.users_file",
	"PROGRESS_DIR":           "store.progress_dir",
	"LOG_LEVEL":              "logging.level",
	"LOG_FORMAT":             "logging.format",
	"LOG_CALLER":             "logging.caller",
}

// envTransformFunc maps environment variable names to koanf config paths.
// Returning empty string tells koanf to skip the variable.
func envTransformFunc(key string) string {
	return envKeyMap[strings.ToUpper(key)]
}
