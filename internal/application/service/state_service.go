package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/domain/repository"
	"github.com/bizscale/bizscale-api/internal/domain/taxonomy"
	"github.com/bizscale/bizscale-api/pkg/apperror"
)

// Phase is the lifecycle phase of the application state.
type Phase string

const (
	PhaseUnconfigured Phase = "UNCONFIGURED"
	PhaseActive       Phase = "ACTIVE"
)

// ErrAlreadyConfigured is returned when onboarding runs against an already
// configured business. The configuration is immutable; it has to be reset
// first.
var ErrAlreadyConfigured = apperror.NewConflictError("Business is already configured; reset the configuration first")

// Views that do not depend on any module being enabled.
var baseViews = map[string]bool{
	entity.ViewDashboard: true,
	"finance":            true,
	"settings":           true,
}

// Views unlocked by a module of the configured business model.
var moduleViews = map[string]string{
	"inventory": "Inventory",
	"employees": "Employees",
}

// StateService owns the application state. All transitions go through it:
// they mutate a deep copy, swap it in and serialize the full state to the
// backing store. Handlers hold a reference to the service, never to the
// state itself.
type StateService struct {
	mu        sync.Mutex
	repo      repository.StateRepository
	state     *entity.AppState
	autoLogin bool
}

// NewStateService creates a state service over the given store. autoLogin
// controls whether a fresh default state starts logged in.
func NewStateService(repo repository.StateRepository, autoLogin bool) *StateService {
	return &StateService{repo: repo, autoLogin: autoLogin}
}

func (s *StateService) defaultState() *entity.AppState {
	return entity.NewAppState(enum.RoleAdmin, s.autoLogin)
}

// Init rehydrates the state from the store, or starts from the default
// unconfigured state when nothing is persisted. A corrupt stored document is
// an error; startup should fail loudly instead of silently discarding data.
func (s *StateService) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	loaded, err := s.repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("rehydrate state: %w", err)
	}
	if loaded == nil {
		loaded = s.defaultState()
	}
	s.state = loaded
	return nil
}

// Snapshot returns a deep copy of the current state.
func (s *StateService) Snapshot() *entity.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Phase reports the lifecycle phase.
func (s *StateService) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.Configured() {
		return PhaseActive
	}
	return PhaseUnconfigured
}

// commit swaps next in and serializes it. The swap happens regardless of the
// save outcome: the store is last-write-wins with no rollback contract, so a
// failed save leaves the in-memory state ahead of the persisted one.
func (s *StateService) commit(ctx context.Context, next *entity.AppState) error {
	s.state = next
	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("persist state: %w", err)
	}
	return nil
}

// CompleteOnboarding transitions Unconfigured -> Active. The module set
// defaults to the business model's registry entry when the caller does not
// choose one.
func (s *StateService) CompleteOnboarding(ctx context.Context, cfg entity.BusinessConfig) (*entity.AppState, error) {
	var fieldErrs []apperror.FieldError
	if cfg.Name == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "name", Message: "business name is required"})
	}
	if !cfg.Type.Valid() {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "type", Message: fmt.Sprintf("unknown business type %q", cfg.Type)})
	}
	if cfg.Currency == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "currency", Message: "currency is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Configured() {
		return nil, ErrAlreadyConfigured
	}

	if len(cfg.Modules) == 0 {
		cfg.Modules = taxonomy.ModulesFor(cfg.Type)
	}

	next := s.state.Clone()
	next.BusinessConfig = &cfg
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// AppendTransaction prepends a transaction to the ledger. Entries are never
// updated or removed afterwards.
func (s *StateService) AppendTransaction(ctx context.Context, tx entity.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.Configured() {
		return apperror.ErrNotConfigured
	}

	next := s.state.Clone()
	next.Transactions = append([]entity.Transaction{tx}, next.Transactions...)
	return s.commit(ctx, next)
}

// ResetConfig transitions Active -> Unconfigured. Only the business
// configuration is cleared; the ledger, inventory and employees survive.
func (s *StateService) ResetConfig(ctx context.Context) (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.BusinessConfig = nil
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

// SelectView records the active view. Unknown views, and views whose module
// is not enabled for the configured business, fall back to the dashboard.
func (s *StateService) SelectView(ctx context.Context, view string) (*entity.AppState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	next.ActiveView = resolveView(next, view)
	if err := s.commit(ctx, next); err != nil {
		return nil, err
	}
	return next.Clone(), nil
}

func resolveView(state *entity.AppState, view string) string {
	if baseViews[view] {
		return view
	}
	if module, ok := moduleViews[view]; ok {
		if state.BusinessConfig != nil && state.BusinessConfig.HasModule(module) {
			return view
		}
	}
	return entity.ViewDashboard
}

// MarkLoggedIn flips the session flag after a successful login.
func (s *StateService) MarkLoggedIn(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsLoggedIn {
		return nil
	}
	next := s.state.Clone()
	next.IsLoggedIn = true
	return s.commit(ctx, next)
}

// Logout clears the backing store entirely and resets to the default state,
// as if the application were loaded for the first time.
func (s *StateService) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear state store: %w", err)
	}
	s.state = s.defaultState()
	return nil
}
