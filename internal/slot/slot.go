// Package slot implements the durable key-value backends behind
// types.Slot: a directory of files, a SQLite database, a Redis server, and
// a process-local map.
package slot

import (
	"context"
	"fmt"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Open validates cfg and returns the Slot for cfg.Backend. The caller must
// Close the returned slot.
func Open(ctx context.Context, cfg types.Config) (types.Slot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Backend {
	case types.BackendFile:
		f, err := OpenFile(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return f, nil
	case types.BackendSQLite:
		s, err := OpenSQLite(cfg.DataDir)
		if err != nil {
			return nil, err
		}
		return s, nil
	case types.BackendRedis:
		r, err := OpenRedis(ctx, RedisOptions{Addr: cfg.RedisAddr})
		if err != nil {
			return nil, err
		}
		return r, nil
	case types.BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("open slot %q: %w", cfg.Backend, types.ErrBackendUnknown)
	}
}

// LocalFile returns the name of the file inside cfg.DataDir that holds
// cfg.SlotKey, for the backends that keep one. ok is false for redis and
// memory.
func LocalFile(cfg types.Config) (name string, ok bool) {
	switch cfg.Backend {
	case types.BackendFile:
		return cfg.SlotKey + fileExt, true
	case types.BackendSQLite:
		return SQLiteFile, true
	default:
		return "", false
	}
}
