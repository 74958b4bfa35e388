package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
	"github.com/bizscale/bizscale-api/internal/infrastructure/store"
	"github.com/bizscale/bizscale-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// failingStore fails every Save once armed; loads and clears pass through.
type failingStore struct {
	*store.MemoryStore
	failSaves bool
}

func (s *failingStore) Save(ctx context.Context, state *entity.AppState) error {
	if s.failSaves {
		return errors.New("disk full")
	}
	return s.MemoryStore.Save(ctx, state)
}

func newActiveState(t *testing.T) (*StateService, *store.MemoryStore) {
	t.Helper()
	mem := store.NewMemoryStore()
	svc := NewStateService(mem, true)
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	_, err := svc.CompleteOnboarding(context.Background(), entity.BusinessConfig{
		Name:     "Corner Cafe",
		Type:     enum.BusinessTypeRestaurant,
		Currency: "USD",
	})
	if err != nil {
		t.Fatalf("CompleteOnboarding() error = %v", err)
	}
	return svc, mem
}

func TestInitDefaultsWhenStoreEmpty(t *testing.T) {
	svc := NewStateService(store.NewMemoryStore(), false)
	if err := svc.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if svc.Phase() != PhaseUnconfigured {
		t.Errorf("Phase() = %s, want %s", svc.Phase(), PhaseUnconfigured)
	}
	state := svc.Snapshot()
	if state.IsLoggedIn {
		t.Error("default state is logged in with auto-login disabled")
	}
	if state.Transactions == nil || state.Inventory == nil || state.Employees == nil {
		t.Error("default state has nil collections")
	}
}

func TestInitRestoresPersistedState(t *testing.T) {
	mem := store.NewMemoryStore()
	first := NewStateService(mem, true)
	if err := first.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := first.CompleteOnboarding(context.Background(), entity.BusinessConfig{
		Name:     "Steel & Sons",
		Type:     enum.BusinessTypeIndustrial,
		Currency: "INR",
	}); err != nil {
		t.Fatal(err)
	}

	// A fresh process over the same store comes back Active.
	second := NewStateService(mem, true)
	if err := second.Init(context.Background()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if second.Phase() != PhaseActive {
		t.Fatalf("Phase() after restore = %s, want %s", second.Phase(), PhaseActive)
	}
	if got := second.Snapshot().BusinessConfig.Name; got != "Steel & Sons" {
		t.Errorf("restored business name = %q", got)
	}
}

func TestInitFailsOnCorruptStore(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.SetRaw([]byte("{broken"))

	svc := NewStateService(mem, true)
	if err := svc.Init(context.Background()); err == nil {
		t.Fatal("Init() on corrupt store did not error")
	}
}

func TestCompleteOnboarding(t *testing.T) {
	tests := []struct {
		name    string
		cfg     entity.BusinessConfig
		wantErr bool
	}{
		{
			name: "valid config defaults modules from registry",
			cfg:  entity.BusinessConfig{Name: "Corner Cafe", Type: enum.BusinessTypeRestaurant, Currency: "USD"},
		},
		{
			name:    "missing name",
			cfg:     entity.BusinessConfig{Type: enum.BusinessTypeRestaurant, Currency: "USD"},
			wantErr: true,
		},
		{
			name:    "unknown type",
			cfg:     entity.BusinessConfig{Name: "X", Type: enum.BusinessType("SPACE_MINING"), Currency: "USD"},
			wantErr: true,
		},
		{
			name:    "missing currency",
			cfg:     entity.BusinessConfig{Name: "X", Type: enum.BusinessTypeRetailShop},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewStateService(store.NewMemoryStore(), true)
			if err := svc.Init(context.Background()); err != nil {
				t.Fatal(err)
			}

			state, err := svc.CompleteOnboarding(context.Background(), tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("CompleteOnboarding() did not error")
				}
				if svc.Phase() != PhaseUnconfigured {
					t.Error("failed onboarding still transitioned the state")
				}
				return
			}
			if err != nil {
				t.Fatalf("CompleteOnboarding() error = %v", err)
			}
			if svc.Phase() != PhaseActive {
				t.Errorf("Phase() = %s, want %s", svc.Phase(), PhaseActive)
			}
			if !state.BusinessConfig.HasModule("Kitchen") {
				t.Errorf("restaurant modules not defaulted from registry: %v", state.BusinessConfig.Modules)
			}
		})
	}
}

func TestCompleteOnboardingTwiceConflicts(t *testing.T) {
	svc, _ := newActiveState(t)
	_, err := svc.CompleteOnboarding(context.Background(), entity.BusinessConfig{
		Name:     "Another",
		Type:     enum.BusinessTypeRetailShop,
		Currency: "USD",
	})
	if !errors.Is(err, ErrAlreadyConfigured) {
		t.Fatalf("error = %v, want ErrAlreadyConfigured", err)
	}
}

func TestResetKeepsLedgerInventoryEmployees(t *testing.T) {
	svc, mem := newActiveState(t)
	ctx := context.Background()

	if err := svc.AppendTransaction(ctx, entity.Transaction{
		ID: "t1", Date: "2026-08-29", Type: enum.TransactionTypeSale,
		Category: "Food", Amount: decimal.NewFromInt(100),
	}); err != nil {
		t.Fatal(err)
	}

	state, err := svc.ResetConfig(ctx)
	if err != nil {
		t.Fatalf("ResetConfig() error = %v", err)
	}
	if svc.Phase() != PhaseUnconfigured {
		t.Errorf("Phase() after reset = %s, want %s", svc.Phase(), PhaseUnconfigured)
	}
	if state.BusinessConfig != nil {
		t.Error("business config survived reset")
	}
	if len(state.Transactions) != 1 {
		t.Errorf("reset wiped the ledger: %d entries", len(state.Transactions))
	}
	if state.Inventory == nil || state.Employees == nil {
		t.Error("reset wiped inventory/employees")
	}
	if mem.Empty() {
		t.Error("reset did not persist the new state")
	}
}

func TestLogoutClearsStore(t *testing.T) {
	svc, mem := newActiveState(t)

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if !mem.Empty() {
		t.Error("backing store not cleared on logout")
	}
	if svc.Phase() != PhaseUnconfigured {
		t.Errorf("Phase() after logout = %s, want %s", svc.Phase(), PhaseUnconfigured)
	}
	if got := svc.Snapshot(); len(got.Transactions) != 0 || got.BusinessConfig != nil {
		t.Errorf("logout did not reset to default state: %+v", got)
	}
}

func TestSelectView(t *testing.T) {
	tests := []struct {
		name string
		view string
		want string
	}{
		{"base view", "finance", "finance"},
		{"module view enabled for restaurant", "inventory", "inventory"},
		{"module view disabled for restaurant", "employees", entity.ViewDashboard},
		{"unknown view falls back", "spaceships", entity.ViewDashboard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newActiveState(t)
			state, err := svc.SelectView(context.Background(), tt.view)
			if err != nil {
				t.Fatalf("SelectView() error = %v", err)
			}
			if state.ActiveView != tt.want {
				t.Errorf("ActiveView = %q, want %q", state.ActiveView, tt.want)
			}
		})
	}
}

func TestEveryTransitionPersists(t *testing.T) {
	svc, mem := newActiveState(t)
	ctx := context.Background()
	before := mem.Saves

	if err := svc.AppendTransaction(ctx, entity.Transaction{
		ID: "t1", Date: "2026-08-29", Type: enum.TransactionTypeSale,
		Category: "Food", Amount: decimal.NewFromInt(10),
	}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.SelectView(ctx, "finance"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.ResetConfig(ctx); err != nil {
		t.Fatal(err)
	}

	if got := mem.Saves - before; got != 3 {
		t.Errorf("transitions persisted %d times, want 3", got)
	}
}

func TestFailedSaveStillAppliesTransition(t *testing.T) {
	ctx := context.Background()
	fs := &failingStore{MemoryStore: store.NewMemoryStore(), failSaves: true}
	svc := NewStateService(fs, true)
	if err := svc.Init(ctx); err != nil {
		t.Fatal(err)
	}

	// The store is last-write-wins with no rollback contract: a failed save
	// surfaces as an error, but the in-memory transition has already applied.
	_, err := svc.CompleteOnboarding(ctx, entity.BusinessConfig{
		Name:     "Corner Cafe",
		Type:     enum.BusinessTypeRestaurant,
		Currency: "USD",
	})
	if err == nil {
		t.Fatal("CompleteOnboarding() with failing store did not error")
	}
	if svc.Phase() != PhaseActive {
		t.Errorf("Phase() = %s, want %s despite failed save", svc.Phase(), PhaseActive)
	}
	if !fs.Empty() {
		t.Error("failed save still wrote to the store")
	}

	err = svc.AppendTransaction(ctx, entity.Transaction{
		ID: "t1", Date: "2026-08-29", Type: enum.TransactionTypeSale,
		Category: "Food", Amount: decimal.NewFromInt(10),
	})
	if err == nil {
		t.Fatal("AppendTransaction() with failing store did not error")
	}
	if got := svc.Snapshot().Transactions; len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("in-memory ledger after failed save = %v, want the appended entry", got)
	}

	// Once the store recovers, the next transition persists the current state.
	fs.failSaves = false
	if _, err := svc.SelectView(ctx, "finance"); err != nil {
		t.Fatalf("SelectView() after store recovery error = %v", err)
	}
	if fs.Empty() {
		t.Error("recovered store still empty after a successful transition")
	}
}

func TestAppendRequiresConfiguration(t *testing.T) {
	svc := NewStateService(store.NewMemoryStore(), true)
	if err := svc.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	err := svc.AppendTransaction(context.Background(), entity.Transaction{
		ID: "t1", Date: "2026-08-29", Type: enum.TransactionTypeSale,
		Category: "Food", Amount: decimal.NewFromInt(10),
	})
	if !errors.Is(err, apperror.ErrNotConfigured) {
		t.Fatalf("error = %v, want ErrNotConfigured", err)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	svc, _ := newActiveState(t)

	snap := svc.Snapshot()
	snap.BusinessConfig.Name = "tampered"
	snap.Transactions = append(snap.Transactions, entity.Transaction{ID: "rogue"})

	fresh := svc.Snapshot()
	if fresh.BusinessConfig.Name == "tampered" {
		t.Error("mutating a snapshot leaked into the service state")
	}
	if len(fresh.Transactions) != 0 {
		t.Error("appending to a snapshot leaked into the service state")
	}
}
