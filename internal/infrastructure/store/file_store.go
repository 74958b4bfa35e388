package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/repository"
)

// fileStore keeps the state document in a single JSON file. It is the
// local-first rendition of the original key-value storage: one blob, one key,
// single browsing context. Not safe for concurrent multi-process access.
type fileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed state store at path, creating the parent
// directory if needed.
func NewFileStore(path string) (repository.StateRepository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &fileStore{path: path}, nil
}

func (s *fileStore) Load(_ context.Context) (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return Decode(data)
}

func (s *fileStore) Save(_ context.Context, state *entity.AppState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Encode(state)
	if err != nil {
		return err
	}

	// Write-then-rename so a crash mid-write cannot leave a torn document.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}

func (s *fileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}
