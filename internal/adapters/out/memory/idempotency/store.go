// Package idempotency is the in-process ports.IdempotencyStore used when no Redis
// address is configured.
package idempotency

import (
	"context"
	"sync"
	"time"

	"orders/internal/core/domain/model/kernel"
)

type binding struct {
	id        kernel.UUID
	expiresAt time.Time
}

// InMemoryStore keeps key bindings in a map. Expired bindings are ignored on Claim
// and removed by PurgeExpired.
type InMemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	byKey map[string]binding
}

// Option customizes an InMemoryStore.
type Option func(*InMemoryStore)

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *InMemoryStore) {
		s.now = now
	}
}

// NewInMemoryStore keeps each binding for ttl after it is claimed.
func NewInMemoryStore(ttl time.Duration, opts ...Option) *InMemoryStore {
	s := &InMemoryStore{
		ttl:   ttl,
		now:   time.Now,
		byKey: make(map[string]binding),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Claim binds key to id unless a live binding exists. It returns the bound id and
// whether this call created the binding.
func (s *InMemoryStore) Claim(ctx context.Context, key string, id kernel.UUID) (kernel.UUID, bool, error) {
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if b, ok := s.byKey[key]; ok && now.Before(b.expiresAt) {
		return b.id, false, nil
	}
	s.byKey[key] = binding{id: id, expiresAt: now.Add(s.ttl)}
	return id, true, nil
}

// Release removes the binding of key, but only while it still points at id.
func (s *InMemoryStore) Release(ctx context.Context, key string, id kernel.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.byKey[key]; ok && b.id.IsEqual(id) {
		delete(s.byKey, key)
	}
	return nil
}

// PurgeExpired drops expired bindings and returns how many were dropped.
func (s *InMemoryStore) PurgeExpired(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for key, b := range s.byKey {
		if !now.Before(b.expiresAt) {
			delete(s.byKey, key)
			purged++
		}
	}
	return purged, nil
}

// Len returns the number of stored bindings, expired ones included.
func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byKey)
}
