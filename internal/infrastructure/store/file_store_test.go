package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
)

func TestFileStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "bizscale_state.json")

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}

	// Nothing stored yet.
	got, err := fs.Load(ctx)
	if err != nil {
		t.Fatalf("Load() on empty store error = %v", err)
	}
	if got != nil {
		t.Fatalf("Load() on empty store = %+v, want nil", got)
	}

	state := entity.NewAppState(enum.RoleAdmin, true)
	state.BusinessConfig = &entity.BusinessConfig{
		Name:     "Haul & Go",
		Type:     enum.BusinessTypeLogistics,
		Currency: "EUR",
		Modules:  []string{"Finance", "Vehicles"},
	}
	if err := fs.Save(ctx, state); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err = fs.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got == nil || got.BusinessConfig == nil || got.BusinessConfig.Name != "Haul & Go" {
		t.Fatalf("Load() = %+v, want saved state back", got)
	}

	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("state file still present after Clear: %v", err)
	}

	// Clear on an already-empty store is not an error.
	if err := fs.Clear(ctx); err != nil {
		t.Fatalf("Clear() on empty store error = %v", err)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bizscale_state.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore() error = %v", err)
	}
	if _, err := fs.Load(context.Background()); err == nil {
		t.Fatal("Load() of corrupt file did not error")
	}
}
