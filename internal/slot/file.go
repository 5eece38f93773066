// This file implements the file backend: one JSON file per key, written
// atomically.
package slot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// fileExt is appended to the key to form the file name.
const fileExt = ".json"

// File stores each key as <dir>/<key>.json.
type File struct {
	mu     sync.RWMutex
	dir    string
	closed bool
}

// OpenFile creates dir if it does not exist and returns a File slot rooted
// there. An empty dir means the working directory.
func OpenFile(dir string) (*File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}
	return &File{dir: dir}, nil
}

// Path returns the file that holds key. The watch command observes it.
func (f *File) Path(key string) string {
	return filepath.Join(f.dir, key+fileExt)
}

// Get reads the file for key.
func (f *File) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	if f.closed {
		return nil, types.ErrSlotClosed
	}
	if err := checkKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, types.ErrSlotEmpty
		}
		return nil, fmt.Errorf("reading %s: %w", key, err)
	}
	return data, nil
}

// Put atomically replaces the file for key.
func (f *File) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return types.ErrSlotClosed
	}
	if err := checkKey(key); err != nil {
		return err
	}
	return writeAtomic(f.Path(key), value)
}

// Remove deletes the file for key. A missing file is not an error.
func (f *File) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return types.ErrSlotClosed
	}
	if err := checkKey(key); err != nil {
		return err
	}
	if err := os.Remove(f.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// Close marks the slot closed. There is nothing else to release.
func (f *File) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// checkKey rejects keys that would escape the data directory.
func checkKey(key string) error {
	if key == "" || key == "." || key == ".." || strings.ContainsAny(key, `/\`) {
		return fmt.Errorf("key %q: %w", key, types.ErrInvalidKey)
	}
	return nil
}

// writeAtomic writes data to path using the temp-file, fsync, rename
// pattern, so readers see either the old value or the new one.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".slot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
