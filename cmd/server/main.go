// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package main is the entry point for the SkillSync server application.
//
// SkillSync is a career guidance platform for students. It turns a
// one-time questionnaire into a recommended career role, a personalized
// skill curriculum, dashboard metrics, and course and project suggestions,
// with an optional AI assistant proxied to an OpenAI-compatible API.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Logging: Structured zerolog output (JSON or console)
//  3. User store: Flat JSON file with bcrypt password hashes
//  4. Progress store: BadgerDB key-value store for per-user skill progress
//  5. Recommendation engine: Deterministic role matching and pathway personalization
//  6. Authentication: JWT (HS256) session tokens
//  7. AI client (optional): Chat completions behind a circuit breaker
//  8. HTTP server: REST API under /api/v1 plus Prometheus /metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// Required settings:
//   - JWT_SECRET: 32+ character secret for token signing
//
// AI assistant (optional):
//   - AI_ENABLED=true
//   - OPENAI_API_KEY: key for the OpenAI-compatible upstream
//   - OPENAI_BASE_URL: API root (default https://api.openai.com)
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (configurable timeout)
//   - Closes the progress store
//
// # Example Usage
//
// Development without the AI assistant:
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	./skillsync
//
// Production with the AI assistant enabled:
//
//	export JWT_SECRET=$(openssl rand -base64 32)
//	export AI_ENABLED=true
//	export OPENAI_API_KEY=sk-...
//	./skillsync
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/skillsync/internal/ai"
	"github.com/tomtom215/skillsync/internal/api"
	"github.com/tomtom215/skillsync/internal/auth"
	"github.com/tomtom215/skillsync/internal/config"
	"github.com/tomtom215/skillsync/internal/dashboard"
	"github.com/tomtom215/skillsync/internal/logging"
	"github.com/tomtom215/skillsync/internal/metrics"
	"github.com/tomtom215/skillsync/internal/pathway"
	"github.com/tomtom215/skillsync/internal/progress"
	"github.com/tomtom215/skillsync/internal/userstore"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", api.Version).
		Str("users_file", cfg.Store.UsersFile).
		Str("progress_dir", cfg.Store.ProgressDir).
		Bool("ai_enabled", cfg.AI.Enabled).
		Msg("Starting SkillSync")

	logger := logging.Logger()

	users, err := userstore.New(cfg.Store.UsersFile, cfg.Security.BcryptCost, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open user store")
	}
	metrics.RegisteredUsers.Set(float64(users.Count()))

	progressStore, err := progress.Open(cfg.Store.ProgressDir, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open progress store")
	}
	defer func() {
		if err := progressStore.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing progress store")
		}
	}()

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to configure JWT authentication")
	}

	engine := pathway.NewEngine(logger)
	dash := dashboard.NewService(engine, logger)

	// The AI assistant is optional. Without a key the routes answer 503
	// and everything else works normally.
	var aiService *ai.Service
	if cfg.AI.Enabled {
		if cfg.AI.APIKey == "" {
			logging.Fatal().Msg("AI is enabled but no API key is configured")
		}
		aiService = ai.NewService(ai.NewClient(&cfg.AI, logger), logger)
		logging.Info().Str("model", cfg.AI.Model).Msg("AI assistant enabled")
	} else {
		logging.Info().Msg("AI assistant disabled")
	}

	server := api.NewServer(cfg, engine, dash, users, progressStore, jwtManager, aiService, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      server.Router(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	// Run the server in a goroutine so shutdown signals can be handled
	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", httpServer.Addr).Msg("HTTP server listening")
		serverErr <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stop:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed, forcing close")
		_ = httpServer.Close()
	}

	logging.Info().Msg("Server stopped")
}
