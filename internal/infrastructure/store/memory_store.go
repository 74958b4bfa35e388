package store

import (
	"context"
	"sync"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
)

// MemoryStore keeps the encoded document in memory. Used by tests; goes
// through the same codec as the real drivers.
type MemoryStore struct {
	mu    sync.Mutex
	data  []byte
	Saves int
}

// NewMemoryStore creates an empty in-memory state store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load(_ context.Context) (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, nil
	}
	return Decode(s.data)
}

func (s *MemoryStore) Save(_ context.Context, state *entity.AppState) error {
	data, err := Encode(state)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.Saves++
	return nil
}

func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}

// Empty reports whether nothing is stored.
func (s *MemoryStore) Empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data == nil
}

// SetRaw replaces the stored blob verbatim, bypassing the encoder. Lets tests
// plant legacy or corrupt documents.
func (s *MemoryStore) SetRaw(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
}
