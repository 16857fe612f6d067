// SkillSync - Student Career Guidance Platform
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/skillsync

// Package progress stores per-user skill progress in BadgerDB.
//
// The pathway engine derives a starting progress for skills a student
// already has; this store records the student's actual progress updates so
// dashboards and pathways reflect real learning activity across sessions.
package progress

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const keyPrefix = "progress:"

// ErrNotFound is returned when no progress is recorded for a user+skill.
var ErrNotFound = errors.New("progress not found")

// Record is one stored skill progress entry.
type Record struct {
	Skill     string    `json:"skill"`
	Progress  int       `json:"progress"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store persists skill progress. Safe for concurrent use.
type Store struct {
	db     *badger.DB
	logger zerolog.Logger
}

// Open creates a store backed by a Badger database in dir. An empty dir
// opens an in-memory database, used by tests and ephemeral deployments.
func Open(dir string, logger zerolog.Logger) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open progress database: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With().Str("component", "progress").Logger(),
	}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Upsert records progress for a user's skill. Progress must be in [0, 100].
func (s *Store) Upsert(ctx context.Context, userID, skill string, percent int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if userID == "" || strings.TrimSpace(skill) == "" {
		return fmt.Errorf("user ID and skill are required")
	}
	if percent < 0 || percent > 100 {
		return fmt.Errorf("progress %d out of range [0, 100]", percent)
	}

	rec := Record{Skill: skill, Progress: percent, UpdatedAt: time.Now().UTC()}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode progress record: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(userID, skill), data)
	})
	if err != nil {
		return fmt.Errorf("failed to store progress: %w", err)
	}

	s.logger.Debug().Str("user_id", userID).Str("skill", skill).Int("progress", percent).
		Msg("Progress updated")
	return nil
}

// Get returns the recorded progress for one skill.
func (s *Store) Get(ctx context.Context, userID, skill string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}

	var rec Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(userID, skill))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to read progress: %w", err)
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rec)
		})
	})
	if err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns all recorded progress for a user, keyed iteration order.
func (s *Store) List(ctx context.Context, userID string) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prefix := []byte(keyPrefix + userID + ":")
	records := []Record{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var rec Record
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rec)
			})
			if err != nil {
				return fmt.Errorf("failed to decode progress record: %w", err)
			}
			records = append(records, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func key(userID, skill string) []byte {
	return []byte(keyPrefix + userID + ":" + strings.ToLower(skill))
}
