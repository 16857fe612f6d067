// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

package userstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "users.json"), 4, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNewRejectsBadBcryptCost(t *testing.T) {
	t.Parallel()

	if _, err := New(filepath.Join(t.TempDir(), "users.json"), 99, zerolog.Nop()); err == nil {
		t.Error("New() accepted out-of-range bcrypt cost")
	}
}

func TestCreateAndAuthenticate(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	user, err := s.Create("Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if user.ID == "" {
		t.Error("Create() returned empty ID")
	}
	if user.PasswordHash == "hunter22" {
		t.Error("password stored in plaintext")
	}
	if !strings.HasPrefix(user.PasswordHash, "$2a$") {
		t.Errorf("PasswordHash = %q, want bcrypt hash", user.PasswordHash)
	}

	got, err := s.Authenticate("alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("Authenticate() returned user %q, want %q", got.ID, user.ID)
	}
}

func TestAuthenticateFailures(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Create("Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "alice@example.com", "wrong"},
		{"unknown email", "bob@example.com", "hunter22"},
		{"empty password", "alice@example.com", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := s.Authenticate(tt.email, tt.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Errorf("Authenticate() error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestCreateDuplicateEmail(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if _, err := s.Create("Alice", "alice@example.com", "hunter22"); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := s.Create("Alice Again", "ALICE@Example.COM", "other"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Create() error = %v, want ErrEmailTaken", err)
	}
	if s.Count() != 1 {
		t.Errorf("Count() = %d after rejected duplicate, want 1", s.Count())
	}
}

func TestFindByEmailCaseInsensitive(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	created, err := s.Create("Alice", "Alice@Example.com", "hunter22")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	got, err := s.FindByEmail("alice@example.com")
	if err != nil {
		t.Fatalf("FindByEmail() error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("FindByEmail() returned %q, want %q", got.ID, created.ID)
	}
}

func TestFindByID(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	created, err := s.Create("Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	if _, err := s.FindByID(created.ID); err != nil {
		t.Errorf("FindByID() error: %v", err)
	}
	if _, err := s.FindByID("missing"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("FindByID(missing) error = %v, want ErrUserNotFound", err)
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	s, err := New(path, 4, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	created, err := s.Create("Alice", "alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	reopened, err := New(path, 4, zerolog.Nop())
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	got, err := reopened.Authenticate("alice@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate() after reopen error: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("reopened store returned user %q, want %q", got.ID, created.ID)
	}
}

func TestNewRejectsCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := New(path, 4, zerolog.Nop()); err == nil {
		t.Error("New() accepted corrupt user file")
	}
}
