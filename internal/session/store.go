// Package session persists the signed-in user as a single serialized
// record under a fixed key.
package session

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"

	"earnplay/internal/domain"
)

// DefaultKey is the key of the persisted user record.
const DefaultKey = "earnplay_user"

// Backend is a key-value store holding raw records.
type Backend interface {
	// Get returns the record at key; found is false when there is none.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Store reads and writes the user record.
type Store struct {
	backend Backend
	key     string
}

// NewStore creates a store over backend; an empty key selects DefaultKey.
func NewStore(backend Backend, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{backend: backend, key: key}
}

// Restore returns the persisted user. A missing, unreadable or malformed
// record is treated as no session.
func (s *Store) Restore(ctx context.Context) (domain.User, bool) {
	raw, found, err := s.backend.Get(ctx, s.key)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": s.key, "error": err.Error()}).Warn("Session record unreadable")
		return domain.User{}, false
	}
	if !found {
		return domain.User{}, false
	}
	var u domain.User
	if err := json.Unmarshal(raw, &u); err != nil {
		logrus.WithFields(logrus.Fields{"key": s.key, "error": err.Error()}).Warn("Session record malformed")
		return domain.User{}, false
	}
	if err := u.Validate(); err != nil {
		logrus.WithFields(logrus.Fields{"key": s.key, "error": err.Error()}).Warn("Session record incomplete")
		return domain.User{}, false
	}
	return u, true
}

// Login persists u, replacing any previous record.
func (s *Store) Login(ctx context.Context, u domain.User) error {
	if err := u.Validate(); err != nil {
		return err
	}
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.backend.Set(ctx, s.key, raw)
}

// Logout removes the persisted record.
func (s *Store) Logout(ctx context.Context) error {
	return s.backend.Delete(ctx, s.key)
}
