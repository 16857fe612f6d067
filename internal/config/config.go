// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package config provides layered configuration loading via Koanf v2.
//
// Configuration sources in order of precedence (highest wins):
//  1. Environment variables (JWT_SECRET, OPENAI_API_KEY, SERVER_PORT, ...)
//  2. Config file (config.yaml)
//  3. Built-in defaults
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the SkillSync server.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	AI       AIConfig       `koanf:"ai"`
	Store    StoreConfig    `koanf:"store"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address.
	Host string `koanf:"host"`

	// Port is the listen port.
	Port int `koanf:"port"`

	// Timeout is the read/write timeout for HTTP requests.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed CORS origins (the frontend dev server by default).
	CORSOrigins []string `koanf:"cors_origins"`
}

// SecurityConfig holds authentication and rate limiting settings.
type SecurityConfig struct {
	// JWTSecret signs session tokens (HS256). Required, 32+ characters.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL is the JWT validity window.
	TokenTTL time.Duration `koanf:"token_ttl"`

	// BcryptCost is the bcrypt work factor for password hashes.
	BcryptCost int `koanf:"bcrypt_cost"`

	// RateLimitRequests / RateLimitWindow bound general API traffic per IP.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`

	// AIRateLimitRequests / AIRateLimitWindow bound AI endpoints per IP,
	// which fan out to a paid upstream API.
	AIRateLimitRequests int           `koanf:"ai_rate_limit_requests"`
	AIRateLimitWindow   time.Duration `koanf:"ai_rate_limit_window"`

	// RateLimitDisabled turns off all rate limiting (tests only).
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// AIConfig holds settings for the OpenAI-compatible chat completions API.
type AIConfig struct {
	// BaseURL is the API root, e.g. https://api.openai.com.
	BaseURL string `koanf:"base_url"`

	// APIKey authenticates requests. Required when AI endpoints are enabled.
	APIKey string `koanf:"api_key"`

	// Model is the chat model identifier.
	Model string `koanf:"model"`

	// Timeout bounds a single completion request.
	Timeout time.Duration `koanf:"timeout"`

	// Enabled toggles the AI assistant endpoints.
	Enabled bool `koanf:"enabled"`
}

// StoreConfig holds persistence paths.
type StoreConfig struct {
	// UsersFile is the flat JSON file holding registered users.
	UsersFile string `koanf:"users_file"`

	// ProgressDir is the BadgerDB directory for the skill progress store.
	ProgressDir string `koanf:"progress_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            5000,
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			CORSOrigins:     []string{"http://localhost:5173"},
		},
		Security: SecurityConfig{
			JWTSecret:           "",
			TokenTTL:            7 * 24 * time.Hour,
			BcryptCost:          10,
			RateLimitRequests:   100,
			RateLimitWindow:     15 * time.Minute,
			AIRateLimitRequests: 10,
			AIRateLimitWindow:   time.Minute,
			RateLimitDisabled:   false,
		},
		AI: AIConfig{
			BaseURL: "https://api.openai.com",
			APIKey:  "",
			Model:   "gpt-4o-mini",
			Timeout: 60 * time.Second,
			Enabled: true,
		},
		Store: StoreConfig{
			UsersFile:   "data/users.json",
			ProgressDir: "data/progress",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for inconsistent or insecure values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}

	if c.Security.JWTSecret == "" {
		return fmt.Errorf("security.jwt_secret is required (set JWT_SECRET)")
	}
	if len(c.Security.JWTSecret) < 32 {
		return fmt.Errorf("security.jwt_secret must be at least 32 characters, got %d", len(c.Security.JWTSecret))
	}

	if c.Security.BcryptCost < 4 || c.Security.BcryptCost > 31 {
		return fmt.Errorf("security.bcrypt_cost must be 4-31, got %d", c.Security.BcryptCost)
	}

	if c.Security.TokenTTL <= 0 {
		return fmt.Errorf("security.token_ttl must be positive")
	}

	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitRequests <= 0 {
			return fmt.Errorf("security.rate_limit_requests must be positive")
		}
		if c.Security.AIRateLimitRequests <= 0 {
			return fmt.Errorf("security.ai_rate_limit_requests must be positive")
		}
	}

	if c.AI.Enabled && c.AI.APIKey == "" {
		return fmt.Errorf("ai.api_key is required when AI endpoints are enabled (set OPENAI_API_KEY or AI_ENABLED=false)")
	}

	if c.Store.UsersFile == "" {
		return fmt.Errorf("store.users_file is required")
	}
	if c.Store.ProgressDir == "" {
		return fmt.Errorf("store.progress_dir is required")
	}

	return nil
}
