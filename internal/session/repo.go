package session

import (
	"context"
	"errors"
	"sync"
)

var (
	ErrNotFound      = errors.New("session not found")
	ErrStoryNotFound = errors.New("story not found")
	ErrNotReady      = errors.New("activity not fully answered")
	ErrIncomplete    = errors.New("session not complete")
	ErrNoLiveState   = errors.New("session has no live state")
)

// Store persists session records.
type Store interface {
	Create(ctx context.Context, rec Record) error
	Get(ctx context.Context, id string) (Record, error)
	SaveScores(ctx context.Context, rec Record) error
	ListByUser(ctx context.Context, userID string) ([]Record, error)
}

type memoryStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

// NewInMemoryStore backs sessions with a map; used in tests and when no
// database is configured.
func NewInMemoryStore() Store {
	return &memoryStore{recs: map[string]Record{}}
}

func (m *memoryStore) Create(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[rec.ID] = rec
	return nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (m *memoryStore) SaveScores(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.recs[rec.ID]; !ok {
		return ErrNotFound
	}
	m.recs[rec.ID] = rec
	return nil
}

func (m *memoryStore) ListByUser(_ context.Context, userID string) ([]Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Record
	for _, rec := range m.recs {
		if rec.UserID == userID {
			out = append(out, rec)
		}
	}
	return out, nil
}
