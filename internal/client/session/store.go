// Package session owns the issued token pair: the sole source of truth for
// "is a user authenticated". The store is an injectable service with a
// defined init (load persisted values at construction) and teardown (Clear)
// contract, so tests can substitute an in-memory Storage.
//
// Clearing is a pure data operation here. The redirect-to-login that logout
// implies belongs to the presentation layer, which navigates after calling
// Clear.
package session

import (
	"context"
	"sync"

	"github.com/secureapp/secureapp-cli/internal/common"
	"github.com/secureapp/secureapp-cli/internal/logging"
)

// Store holds the current token pair in memory and mirrors every change to
// its Storage.
type Store struct {
	mu      sync.Mutex
	storage Storage
	log     logging.Logger

	access  string
	refresh string
}

// NewStore builds a Store and loads any persisted pair. A load failure is
// logged and treated as an empty session.
func NewStore(storage Storage, log logging.Logger) *Store {
	s := &Store{storage: storage, log: log}
	access, refresh, err := storage.Load()
	if err != nil {
		log.Warn(context.Background(), "could not load persisted tokens", "error", err.Error())
		return s
	}
	s.access, s.refresh = access, refresh
	return s
}

// Save persists both tokens, overwriting any prior pair. If either value is
// empty the save is rejected: a diagnostic is emitted, prior state stays
// untouched, and ErrEmptyToken is returned. There is no partial write.
func (s *Store) Save(access, refresh string) error {
	if access == "" || refresh == "" {
		s.log.Error(context.Background(), "attempted to save empty tokens")
		return common.ErrEmptyToken
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Store(access, refresh); err != nil {
		return err
	}
	s.access, s.refresh = access, refresh
	return nil
}

// AccessToken returns the stored access token, or "" if none.
func (s *Store) AccessToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.access
}

// RefreshToken returns the stored refresh token, or "" if none.
func (s *Store) RefreshToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refresh
}

// Clear removes both values. Idempotent: clearing an empty store is safe and
// leaves it empty.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.Store("", ""); err != nil {
		return err
	}
	s.access, s.refresh = "", ""
	return nil
}
