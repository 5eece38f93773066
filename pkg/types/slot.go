package types

import (
	"context"
	"errors"
)

// Slot is a durable key-value store holding whole values under a name.
// It plays the role browser local storage plays for a web client: the
// catalog keeps its entire collection in a single key.
type Slot interface {
	// Get returns the value stored under key.
	// Returns ErrSlotEmpty if nothing is stored there.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put overwrites the value stored under key.
	Put(ctx context.Context, key string, value []byte) error

	// Remove deletes key. Removing a missing key succeeds.
	Remove(ctx context.Context, key string) error

	// Close releases backend resources. Idempotent: multiple calls succeed.
	// After Close, all other operations return ErrSlotClosed.
	Close() error
}

// Slot errors.
var (
	ErrSlotEmpty  = errors.New("slot is empty")
	ErrSlotClosed = errors.New("slot is closed")
	ErrInvalidKey = errors.New("invalid slot key")

	// ErrSlotUnreadable marks a read that failed for a reason other than
	// the slot being empty, such as a timeout or an I/O error.
	ErrSlotUnreadable = errors.New("slot unreadable")
)

// Catalog errors.
var (
	ErrNotFound      = errors.New("recipe not found")
	ErrInvalidID     = errors.New("invalid recipe ID")
	ErrInvalidRecord = errors.New("invalid recipe record")
)
