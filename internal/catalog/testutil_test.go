package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/internal/slot"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

const testKey = "recipebox_test"

// counterIDs returns a deterministic id generator: id-1, id-2, ...
func counterIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

// newTestRepo returns a repository over an empty memory slot, seeded.
func newTestRepo(t *testing.T) (*Repository, *slot.Memory) {
	t.Helper()
	mem := slot.NewMemory()
	t.Cleanup(func() { mem.Close() })
	repo := NewRepository(context.Background(), NewStore(mem, testKey, nil), WithIDGenerator(counterIDs()))
	return repo, mem
}

// persisted decodes what the slot currently holds.
func persisted(t *testing.T, s types.Slot) []types.Recipe {
	t.Helper()
	data, err := s.Get(context.Background(), testKey)
	require.NoError(t, err)
	recipes, err := decodeCollection(data)
	require.NoError(t, err)
	return recipes
}

func titles(recipes []types.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.Title
	}
	return out
}

func recipeIDs(recipes []types.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

// failingSlot wraps a slot and fails every Put.
type failingSlot struct {
	types.Slot
}

func (failingSlot) Put(context.Context, string, []byte) error {
	return fmt.Errorf("disk full")
}

// unreadableSlot wraps a slot and fails every Get the way a timed-out
// backend does.
type unreadableSlot struct {
	types.Slot
}

func (unreadableSlot) Get(context.Context, string) ([]byte, error) {
	return nil, fmt.Errorf("i/o timeout")
}
