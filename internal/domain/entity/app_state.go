package entity

import "github.com/bizscale/bizscale-api/internal/domain/enum"

// ViewDashboard is the default view every session starts on and the fallback
// for unknown view selections.
const ViewDashboard = "dashboard"

// AppState is the composite root of everything the dashboard knows: business
// configuration, ledger, inventory, employees and session flags. It is the
// single source of truth; mutations replace it wholesale via deep copies and
// every transition serializes the full state to the backing store.
type AppState struct {
	IsLoggedIn     bool            `json:"is_logged_in"`
	UserRole       enum.UserRole   `json:"user_role"`
	BusinessConfig *BusinessConfig `json:"business_config"`
	Transactions   []Transaction   `json:"transactions"`
	Inventory      []InventoryItem `json:"inventory"`
	Employees      []Employee      `json:"employees"`
	ActiveView     string          `json:"active_view"`
}

// NewAppState returns the default unconfigured state.
func NewAppState(role enum.UserRole, loggedIn bool) *AppState {
	return &AppState{
		IsLoggedIn:   loggedIn,
		UserRole:     role,
		Transactions: []Transaction{},
		Inventory:    []InventoryItem{},
		Employees:    []Employee{},
		ActiveView:   ViewDashboard,
	}
}

// Configured reports whether onboarding has completed, i.e. whether the state
// machine is in its Active phase.
func (s *AppState) Configured() bool {
	return s.BusinessConfig != nil
}

// Clone returns a deep copy. Services mutate clones and swap them in, so a
// state handed out to a caller is never written to again.
func (s *AppState) Clone() *AppState {
	out := *s
	if s.BusinessConfig != nil {
		cfg := *s.BusinessConfig
		cfg.Modules = append([]string(nil), s.BusinessConfig.Modules...)
		out.BusinessConfig = &cfg
	}
	out.Transactions = make([]Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		out.Transactions[i] = cloneTransaction(t)
	}
	out.Inventory = make([]InventoryItem, len(s.Inventory))
	for i, item := range s.Inventory {
		out.Inventory[i] = item
		if item.ExpiryDate != nil {
			exp := *item.ExpiryDate
			out.Inventory[i].ExpiryDate = &exp
		}
	}
	out.Employees = append([]Employee(nil), s.Employees...)
	return &out
}

func cloneTransaction(t Transaction) Transaction {
	if t.Quantity != nil {
		q := *t.Quantity
		t.Quantity = &q
	}
	if t.Unit != nil {
		u := *t.Unit
		t.Unit = &u
	}
	return t
}
