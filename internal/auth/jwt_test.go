// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/tomtom215/skillsync/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func testManager(t *testing.T, ttl time.Duration) *JWTManager {
	t.Helper()
	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, TokenTTL: ttl})
	if err != nil {
		t.Fatalf("NewJWTManager() error: %v", err)
	}
	return m
}

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	t.Parallel()

	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Error("NewJWTManager() accepted empty secret")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	t.Parallel()

	m := testManager(t, time.Hour)
	token, err := m.GenerateToken("user-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if strings.Count(token, ".") != 2 {
		t.Errorf("token %q is not a three-part JWT", token)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("Subject = %q, want user-1", claims.Subject)
	}
	if claims.Name != "Alice" || claims.Email != "alice@example.com" {
		t.Errorf("claims = (%q, %q), want (Alice, alice@example.com)", claims.Name, claims.Email)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	t.Parallel()

	m := testManager(t, -time.Minute)
	token, err := m.GenerateToken("user-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateToken() error: %v", err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted expired token")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	m := testManager(t, time.Hour)
	other, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret: "ffffffffffffffffffffffffffffffff",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatal(err)
	}

	token, err := other.GenerateToken("user-1", "Alice", "alice@example.com")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := m.ValidateToken(token); err == nil {
		t.Error("ValidateToken() accepted token signed with different secret")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Parallel()

	m := testManager(t, time.Hour)
	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := m.ValidateToken(token); err == nil {
			t.Errorf("ValidateToken(%q) accepted malformed token", token)
		}
	}
}
