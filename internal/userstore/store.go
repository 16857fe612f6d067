// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package userstore persists user accounts in a single JSON file.
//
// The store targets small single-instance deployments: the full user list is
// held in memory behind a mutex and flushed to disk on every mutation with a
// write-to-temp-then-rename so a crash mid-write never corrupts the file.
package userstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/skillsync/internal/models"
)

// Sentinel errors callers branch on for HTTP status mapping.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Store is a file-backed user registry. Safe for concurrent use.
type Store struct {
	mu         sync.RWMutex
	users      []models.User
	path       string
	bcryptCost int
	logger     zerolog.Logger
}

// New opens the user file at path, creating parent directories and starting
// with an empty registry when the file does not exist yet.
func New(path string, bcryptCost int, logger zerolog.Logger) (*Store, error) {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create user store directory: %w", err)
	}

	s := &Store{
		path:       path,
		bcryptCost: bcryptCost,
		logger:     logger.With().Str("component", "userstore").Logger(),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.logger.Info().Str("path", path).Msg("User file not found, starting empty")
	case err != nil:
		return nil, fmt.Errorf("failed to read user file: %w", err)
	default:
		if err := json.Unmarshal(data, &s.users); err != nil {
			return nil, fmt.Errorf("failed to parse user file %s: %w", path, err)
		}
		s.logger.Info().Int("users", len(s.users)).Str("path", path).Msg("User file loaded")
	}

	return s, nil
}

// Create registers a new user with a bcrypt-hashed password. Email
// uniqueness is checked case-insensitively.
func (s *Store) Create(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findByEmailLocked(email) != nil {
		return nil, ErrEmailTaken
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	s.users = append(s.users, user)

	if err := s.persistLocked(); err != nil {
		s.users = s.users[:len(s.users)-1]
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Msg("User registered")
	return &user, nil
}

// Authenticate verifies the email/password pair and returns the matching
// user. It returns ErrInvalidCredentials for both unknown emails and wrong
// passwords so responses do not leak which emails are registered.
func (s *Store) Authenticate(email, password string) (*models.User, error) {
	s.mu.RLock()
	user := s.findByEmailLocked(email)
	s.mu.RUnlock()

	if user == nil {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// dummyHash is a valid bcrypt hash of an unguessable value, compared against
// when the email is unknown.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

// FindByID returns the user with the given ID.
func (s *Store) FindByID(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByEmail returns the user with the given email, case-insensitively.
func (s *Store) FindByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u := s.findByEmailLocked(email); u != nil {
		return u, nil
	}
	return nil, ErrUserNotFound
}

// Count returns the number of registered users.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// findByEmailLocked returns a copy of the matching user. Caller holds mu.
func (s *Store) findByEmailLocked(email string) *models.User {
	for i := range s.users {
		if strings.EqualFold(s.users[i].Email, email) {
			u := s.users[i]
			return &u
		}
	}
	return nil
}

// persistLocked writes the registry atomically. Caller holds mu.
func (s *Store) persistLocked() error {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace user file: %w", err)
	}
	return nil
}
