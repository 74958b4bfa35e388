package utils

import "github.com/google/uuid"

// NewEntryID generates a unique ledger entry identifier. UUIDv4 gives the
// negligible-collision identifier space the append-only ledger relies on.
func NewEntryID() string {
	return uuid.NewString()
}
