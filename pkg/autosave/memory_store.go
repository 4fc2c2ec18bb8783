package autosave

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps drafts in process memory.
type MemoryStore struct {
	opts options

	mu     sync.RWMutex
	drafts map[string]memoryEntry
}

type memoryEntry struct {
	draft     Draft
	expiresAt time.Time
}

func NewMemoryStore(opts ...Option) *MemoryStore {
	return &MemoryStore{
		opts:   newOptions(opts),
		drafts: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Save(ctx context.Context, d Draft) error {
	if d.FormID == "" {
		return ErrEmptyFormID
	}
	now := s.opts.clock.Now()
	d = cloneDraft(d)
	d.SavedAt = now

	var expiresAt time.Time
	if s.opts.ttl > 0 {
		expiresAt = now.Add(s.opts.ttl)
	}

	s.mu.Lock()
	s.drafts[s.opts.key(d.FormID)] = memoryEntry{draft: d, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Load(ctx context.Context, formID string) (Draft, error) {
	if formID == "" {
		return Draft{}, ErrEmptyFormID
	}
	key := s.opts.key(formID)

	s.mu.RLock()
	e, ok := s.drafts[key]
	s.mu.RUnlock()
	if !ok {
		return Draft{}, ErrDraftNotFound
	}

	if !e.expiresAt.IsZero() && !s.opts.clock.Now().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, ok := s.drafts[key]; ok && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.drafts, key)
		}
		s.mu.Unlock()
		return Draft{}, ErrDraftNotFound
	}
	return cloneDraft(e.draft), nil
}

func (s *MemoryStore) Delete(ctx context.Context, formID string) error {
	if formID == "" {
		return ErrEmptyFormID
	}
	s.mu.Lock()
	delete(s.drafts, s.opts.key(formID))
	s.mu.Unlock()
	return nil
}

// Len reports the number of stored drafts, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.drafts)
}
