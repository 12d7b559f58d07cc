package tracker

import (
	"context"
	"sync"
)

// Snapshot keys, one per persisted store. Version suffixes change only when
// the snapshot layout changes incompatibly.
const (
	KeyCourses = "courses_v1"
	KeyProfile = "user_v1"
)

// SnapshotStore persists whole-snapshot values under fixed keys. Writes
// overwrite the previous snapshot for the key.
type SnapshotStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, data []byte) error
}

// MemoryStore is an in-memory SnapshotStore.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new in-memory snapshot store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]byte),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, true, nil
}

func (s *MemoryStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	s.data[key] = stored
	return nil
}
