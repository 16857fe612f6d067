// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/skillsync/internal/logging"
	"github.com/tomtom215/skillsync/internal/models"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Middleware rejects requests without a valid Bearer token and stores the
// verified claims in the request context for handlers.
func (m *JWTManager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			unauthorized(w, "Missing Authorization header")
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			unauthorized(w, "Authorization header must use the Bearer scheme")
			return
		}

		claims, err := m.ValidateToken(tokenString)
		if err != nil {
			logging.Ctx(r.Context()).Debug().Err(err).Msg("Token validation failed")
			unauthorized(w, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the verified claims stored by Middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// UserIDFromContext returns the authenticated user's ID, or "" when the
// request was not authenticated.
func UserIDFromContext(ctx context.Context) string {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.Subject
	}
	return ""
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error: &models.APIError{
			Code:    "UNAUTHORIZED",
			Message: message,
		},
	})
}
