// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package api

import (
	"errors"
	"net/http"

	"github.com/tomtom215/skillsync/internal/auth"
	"github.com/tomtom215/skillsync/internal/logging"
	"github.com/tomtom215/skillsync/internal/metrics"
	"github.com/tomtom215/skillsync/internal/userstore"
)

// handleRegister creates a user account and issues a token.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeRequest(w, r, &req) {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		return
	}

	user, err := s.users.Create(req.Name, req.Email, req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		if errors.Is(err, userstore.ErrEmailTaken) {
			respondError(w, r, http.StatusConflict, ErrCodeConflict, "An account with this email already exists")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to create user")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create account")
		return
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("register", "failure").Inc()
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to sign token")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create session")
		return
	}

	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	metrics.RegisteredUsers.Set(float64(s.users.Count()))
	logging.Ctx(r.Context()).Info().Str("user_id", user.ID).Msg("User registered")

	respondJSON(w, r, http.StatusCreated, AuthResponse{Token: token, User: user.Public()})
}

// handleLogin verifies credentials and issues a token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeRequest(w, r, &req) {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return
	}

	user, err := s.users.Authenticate(req.Email, req.Password)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		if errors.Is(err, userstore.ErrInvalidCredentials) {
			respondError(w, r, http.StatusUnauthorized, ErrCodeUnauthorized, "Invalid email or password")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Login failed")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Login failed")
		return
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Name, user.Email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to sign token")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to create session")
		return
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	respondJSON(w, r, http.StatusOK, AuthResponse{Token: token, User: user.Public()})
}

// handleUserInfo returns the authenticated user's profile.
func (s *Server) handleUserInfo(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFromContext(r.Context())

	user, err := s.users.FindByID(userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			respondError(w, r, http.StatusNotFound, ErrCodeNotFound, "User not found")
			return
		}
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to load user")
		respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, "Failed to load user")
		return
	}

	respondJSON(w, r, http.StatusOK, user.Public())
}
