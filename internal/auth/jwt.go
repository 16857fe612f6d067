// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package auth issues and validates the JWT bearer tokens that protect the
// assessment, dashboard, progress, and AI endpoints.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tomtom215/skillsync/internal/config"
)

// Claims are the JWT claims issued at login. Subject carries the user ID.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTManager creates and validates HS256-signed tokens.
type JWTManager struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTManager builds a token manager from the security configuration.
// The secret must be at least 32 characters; config validation enforces
// this before the manager is constructed.
func NewJWTManager(cfg *config.SecurityConfig) (*JWTManager, error) {
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but was empty")
	}
	return &JWTManager{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
	}, nil
}

// GenerateToken signs a token for the given user, valid for the configured
// TTL (default seven days, matching the web client's session expectations).
func (m *JWTManager) GenerateToken(userID, name, email string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name:  name,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token string. It rejects any signing
// method other than HMAC to prevent algorithm confusion.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
