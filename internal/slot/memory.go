package slot

import (
	"context"
	"sync"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Memory keeps values in a map for the lifetime of the process.
type Memory struct {
	mu     sync.RWMutex
	values map[string][]byte
	closed bool
}

// NewMemory returns an empty Memory slot.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key.
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, types.ErrSlotClosed
	}
	if key == "" {
		return nil, types.ErrInvalidKey
	}
	v, ok := m.values[key]
	if !ok {
		return nil, types.ErrSlotEmpty
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put stores a copy of value under key.
func (m *Memory) Put(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrSlotClosed
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

// Remove deletes key. Removing a missing key succeeds.
func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return types.ErrSlotClosed
	}
	if key == "" {
		return types.ErrInvalidKey
	}
	delete(m.values, key)
	return nil
}

// Close marks the slot closed and keeps its values. Idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
