package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Store persists the whole collection as a single value in one slot key.
// Every Save is a full overwrite: no diffs, no batching.
type Store struct {
	slot   types.Slot
	key    string
	logger *slog.Logger
}

// NewStore returns a Store writing to key in slot. A nil logger discards.
func NewStore(slot types.Slot, key string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{slot: slot, key: key, logger: logger}
}

// Key returns the slot key the store writes to.
func (s *Store) Key() string { return s.key }

// Load reads the slot and reports whether it held a well-formed collection.
// Read and parse failures are logged and reported as absent, never returned.
func (s *Store) Load(ctx context.Context) ([]types.Recipe, bool) {
	recipes, err := s.read(ctx)
	return recipes, err == nil
}

// read returns the stored collection or why there is none: ErrSlotEmpty,
// an error wrapping ErrInvalidRecord for a malformed value, or one
// wrapping ErrSlotUnreadable when the backend could not be read.
func (s *Store) read(ctx context.Context) ([]types.Recipe, error) {
	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, types.ErrSlotEmpty) {
		return nil, err
	}
	if err != nil {
		s.logger.Debug("slot unreadable, treating as empty", "key", s.key, "error", err)
		return nil, fmt.Errorf("%w: %w", types.ErrSlotUnreadable, err)
	}

	recipes, err := decodeCollection(data)
	if err != nil {
		s.logger.Debug("slot holds a malformed collection, treating as empty", "key", s.key, "error", err)
		return nil, err
	}
	return recipes, nil
}

// Save overwrites the slot with the entire collection.
func (s *Store) Save(ctx context.Context, recipes []types.Recipe) error {
	data, err := encodeCollection(recipes)
	if err != nil {
		return err
	}
	if err := s.slot.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("saving collection: %w", err)
	}
	s.logger.Debug("collection saved", "key", s.key, "recipes", len(recipes), "bytes", len(data))
	return nil
}

// Clear removes the slot entirely.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slot.Remove(ctx, s.key); err != nil {
		return fmt.Errorf("clearing collection: %w", err)
	}
	return nil
}
