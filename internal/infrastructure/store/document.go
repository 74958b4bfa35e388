// Package store persists the application state as one serialized JSON
// document under a fixed key. Three drivers share the same codec: a postgres
// blob table, a local JSON file and an in-memory store for tests.
package store

import (
	"encoding/json"
	"fmt"

	"github.com/bizscale/bizscale-api/internal/domain/entity"
	"github.com/bizscale/bizscale-api/internal/domain/enum"
)

// StateKey is the fixed key the state document lives under.
const StateKey = "bizscale_state"

// SchemaVersion is stamped into every document written. Documents without a
// version field are treated as version 0, this service's pre-versioned shape.
const SchemaVersion = 1

type document struct {
	SchemaVersion int `json:"schema_version"`
	entity.AppState
}

// Encode serializes state into the current document shape.
func Encode(state *entity.AppState) ([]byte, error) {
	doc := document{SchemaVersion: SchemaVersion, AppState: *state}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode state document: %w", err)
	}
	return data, nil
}

// Decode parses a stored document, migrating older versions to the current
// shape. A blob that does not parse, or that carries a version newer than
// this build understands, is an error: startup refuses to run on garbage
// rather than silently resetting.
func Decode(data []byte) (*entity.AppState, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode state document: %w", err)
	}
	if err := migrate(&doc); err != nil {
		return nil, err
	}
	state := doc.AppState
	return &state, nil
}

// migrate upgrades a decoded document to the current schema in place.
func migrate(doc *document) error {
	switch doc.SchemaVersion {
	case 0:
		// Unversioned documents predate the role field being mandatory.
		if doc.UserRole == "" {
			doc.UserRole = enum.RoleAdmin
		}
		doc.SchemaVersion = SchemaVersion
	case SchemaVersion:
	default:
		return fmt.Errorf("state document schema version %d is newer than supported version %d", doc.SchemaVersion, SchemaVersion)
	}

	// Readers tolerate absence of the optional collections.
	if doc.Transactions == nil {
		doc.Transactions = []entity.Transaction{}
	}
	if doc.Inventory == nil {
		doc.Inventory = []entity.InventoryItem{}
	}
	if doc.Employees == nil {
		doc.Employees = []entity.Employee{}
	}
	if doc.ActiveView == "" {
		doc.ActiveView = entity.ViewDashboard
	}
	return nil
}
