package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/auction-network/common/errs"
)

var _ Store = (*MemoryStore)(nil)

type memoryEntry struct {
	resp      *Response // nil while in flight
	expiresAt time.Time
}

// MemoryStore is a process-local Store, used when no redis server is configured.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Reserve(_ context.Context, key string, ttl time.Duration) (*Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if entry, ok := s.entries[key]; ok && now.Before(entry.expiresAt) {
		if entry.resp == nil {
			return nil, errors.Wrapf(errs.Conflict, "idempotency key %q is in flight", key)
		}
		resp := *entry.resp
		return &resp, nil
	}

	s.entries[key] = memoryEntry{expiresAt: now.Add(ttl)}
	return nil, nil
}

func (s *MemoryStore) Save(_ context.Context, key string, resp Response, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = memoryEntry{resp: &resp, expiresAt: s.now().Add(ttl)}
	s.gc()
	return nil
}

func (s *MemoryStore) Release(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// gc drops expired entries. Caller must hold mu.
func (s *MemoryStore) gc() {
	now := s.now()
	for key, entry := range s.entries {
		if !now.Before(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
