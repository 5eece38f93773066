// Package recipebox provides the public API for opening a recipe slot.
// It exposes the backend factory while keeping implementation details
// internal.
package recipebox

import (
	"context"

	"github.com/mesh-intelligence/recipebox/internal/slot"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Version is the recipebox release.
const Version = "0.1.0"

// NewSlot validates cfg and opens the durable slot it selects.
// The caller must Close the returned slot.
//
// Example:
//
//	s, err := recipebox.NewSlot(ctx, types.Config{
//	    Backend: types.BackendFile,
//	    DataDir: "/tmp/recipebox",
//	}.WithDefaults())
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
func NewSlot(ctx context.Context, cfg types.Config) (types.Slot, error) {
	return slot.Open(ctx, cfg)
}
