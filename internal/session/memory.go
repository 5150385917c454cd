package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	state     FormState
	expiresAt time.Time
}

type memoryStore struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]memoryEntry
}

// NewMemoryStore builds in-process Store, entries expire after ttl
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *memoryStore) Load(_ context.Context, id string) (FormState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return FormState{}, nil
	}

	if s.ttl > 0 && s.now().After(e.expiresAt) {
		delete(s.entries, id)
		return FormState{}, nil
	}

	return FormState{Criteria: e.state.Criteria.Clone()}, nil
}

func (s *memoryStore) Save(_ context.Context, id string, state FormState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[id] = memoryEntry{
		state:     FormState{Criteria: state.Criteria.Clone()},
		expiresAt: s.now().Add(s.ttl),
	}
	return nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, id)
	return nil
}
