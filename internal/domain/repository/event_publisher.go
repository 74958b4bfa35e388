package repository

import "context"

// EventPublisher emits domain events to an external broker. Publication is
// best effort: ledger appends succeed even when the broker is down.
type EventPublisher interface {
	Publish(ctx context.Context, event any) error
	Close() error
}
