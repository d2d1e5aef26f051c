// Package memory is an in-process db.Store for single-instance deployments and tests.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kailas-cloud/finsite/internal/db"
)

// Compile-time check: Store implements db.Store.
var _ db.Store = (*Store)(nil)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// sweepInterval bounds how often a write scans the whole map for expired keys.
const sweepInterval = time.Minute

// Store keeps values in a map. Expired keys are dropped on access and by a
// periodic sweep run from SetWithTTL.
type Store struct {
	mu        sync.Mutex
	items     map[string]entry
	now       func() time.Time
	nextSweep time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{items: make(map[string]entry), now: time.Now}
}

// NewStoreWithClock creates a store that reads time from now.
func NewStoreWithClock(now func() time.Time) *Store {
	return &Store{items: make(map[string]entry), now: now}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// Close drops all keys.
func (s *Store) Close() {
	s.mu.Lock()
	s.items = make(map[string]entry)
	s.mu.Unlock()
}

// WaitForReady returns immediately.
func (s *Store) WaitForReady(context.Context, time.Duration) error { return nil }

// Get retrieves a value by key.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	return clone(e.value), nil
}

// SetWithTTL stores a value with an expiration. A non-positive ttl keeps the key forever.
func (s *Store) SetWithTTL(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if !now.Before(s.nextSweep) {
		s.sweep(now)
		s.nextSweep = now.Add(sweepInterval)
	}

	e := entry{value: clone(value)}
	if ttl > 0 {
		e.expiresAt = now.Add(ttl)
	}
	s.items[key] = e
	return nil
}

// sweep must be called with mu held.
func (s *Store) sweep(now time.Time) {
	for k, e := range s.items {
		if !e.expiresAt.IsZero() && !now.Before(e.expiresAt) {
			delete(s.items, k)
		}
	}
}

// GetDel returns the value and removes the key.
func (s *Store) GetDel(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.live(key)
	if !ok {
		return nil, db.ErrKeyNotFound
	}
	delete(s.items, key)
	return e.value, nil
}

// Del removes a key. Missing keys are not an error.
func (s *Store) Del(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.items, key)
	s.mu.Unlock()
	return nil
}

// live must be called with mu held.
func (s *Store) live(key string) (entry, bool) {
	e, ok := s.items[key]
	if !ok {
		return entry{}, false
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.items, key)
		return entry{}, false
	}
	return e, true
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
