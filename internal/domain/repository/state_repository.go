package repository

import (
	"context"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
)

// StateRepository persists the full application state as a single document
// under a fixed key. Last write wins; there is no partial update.
type StateRepository interface {
	// Load returns the persisted state, or (nil, nil) when nothing is stored.
	Load(ctx context.Context) (*entity.AppState, error)
	Save(ctx context.Context, state *entity.AppState) error
	// Clear removes the stored document entirely (logout).
	Clear(ctx context.Context) error
}
