package slot

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// backendFactories opens a fresh slot of every backend for a test.
func backendFactories(t *testing.T) map[string]func() types.Slot {
	t.Helper()
	return map[string]func() types.Slot{
		types.BackendFile: func() types.Slot {
			s, err := OpenFile(t.TempDir())
			require.NoError(t, err)
			return s
		},
		types.BackendSQLite: func() types.Slot {
			s, err := OpenSQLite(t.TempDir())
			require.NoError(t, err)
			return s
		},
		types.BackendRedis: func() types.Slot {
			mr := miniredis.RunT(t)
			s, err := OpenRedis(context.Background(), RedisOptions{Addr: mr.Addr()})
			require.NoError(t, err)
			return s
		},
		types.BackendMemory: func() types.Slot {
			return NewMemory()
		},
	}
}

func TestSlotBackends(t *testing.T) {
	ctx := context.Background()

	for name, open := range backendFactories(t) {
		t.Run(name, func(t *testing.T) {
			t.Run("get on empty slot returns ErrSlotEmpty", func(t *testing.T) {
				s := open()
				defer s.Close()

				_, err := s.Get(ctx, "recipes")
				assert.ErrorIs(t, err, types.ErrSlotEmpty)
			})

			t.Run("put then get returns the value", func(t *testing.T) {
				s := open()
				defer s.Close()

				require.NoError(t, s.Put(ctx, "recipes", []byte(`[{"id":"a"}]`)))
				got, err := s.Get(ctx, "recipes")
				require.NoError(t, err)
				assert.Equal(t, `[{"id":"a"}]`, string(got))
			})

			t.Run("put overwrites the whole value", func(t *testing.T) {
				s := open()
				defer s.Close()

				require.NoError(t, s.Put(ctx, "recipes", []byte(`[1,2,3,4,5]`)))
				require.NoError(t, s.Put(ctx, "recipes", []byte(`[]`)))
				got, err := s.Get(ctx, "recipes")
				require.NoError(t, err)
				assert.Equal(t, `[]`, string(got))
			})

			t.Run("keys are independent", func(t *testing.T) {
				s := open()
				defer s.Close()

				require.NoError(t, s.Put(ctx, "a", []byte("1")))
				require.NoError(t, s.Put(ctx, "b", []byte("2")))
				require.NoError(t, s.Remove(ctx, "a"))

				_, err := s.Get(ctx, "a")
				assert.ErrorIs(t, err, types.ErrSlotEmpty)
				got, err := s.Get(ctx, "b")
				require.NoError(t, err)
				assert.Equal(t, "2", string(got))
			})

			t.Run("remove missing key succeeds", func(t *testing.T) {
				s := open()
				defer s.Close()

				assert.NoError(t, s.Remove(ctx, "never-written"))
			})

			t.Run("empty key is rejected", func(t *testing.T) {
				s := open()
				defer s.Close()

				assert.ErrorIs(t, s.Put(ctx, "", []byte("x")), types.ErrInvalidKey)
				_, err := s.Get(ctx, "")
				assert.ErrorIs(t, err, types.ErrInvalidKey)
			})

			t.Run("operations after close return ErrSlotClosed", func(t *testing.T) {
				s := open()
				require.NoError(t, s.Close())
				require.NoError(t, s.Close(), "Close is idempotent")

				_, err := s.Get(ctx, "recipes")
				assert.ErrorIs(t, err, types.ErrSlotClosed)
				assert.ErrorIs(t, s.Put(ctx, "recipes", []byte("[]")), types.ErrSlotClosed)
				assert.ErrorIs(t, s.Remove(ctx, "recipes"), types.ErrSlotClosed)
			})
		})
	}
}

func TestFileSlotLayout(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := OpenFile(dir)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(ctx, "recipebox_v1", []byte("[]")))

	data, err := os.ReadFile(filepath.Join(dir, "recipebox_v1.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
	assert.Equal(t, filepath.Join(dir, "recipebox_v1.json"), s.Path("recipebox_v1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestFileSlotRejectsPathKeys(t *testing.T) {
	s, err := OpenFile(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	for _, key := range []string{"../escape", "a/b", `a\b`, "..", "."} {
		err := s.Put(context.Background(), key, []byte("x"))
		assert.ErrorIs(t, err, types.ErrInvalidKey, key)
	}
}

func TestSQLiteSlotSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Put(ctx, "recipebox_v1", []byte(`["kept"]`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, "recipebox_v1")
	require.NoError(t, err)
	assert.Equal(t, `["kept"]`, string(got))
}

func TestRedisSlotUsesPrefixedKeys(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	s, err := OpenRedis(ctx, RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put(ctx, "recipebox_v1", []byte("[]")))

	got, err := mr.Get("recipebox:recipebox_v1")
	require.NoError(t, err)
	assert.Equal(t, "[]", got)
}

func TestOpenRedisGivesUpWhenServerIsDown(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := OpenRedis(context.Background(), RedisOptions{Addr: addr, MaxElapsed: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects invalid config", func(t *testing.T) {
		_, err := Open(ctx, types.Config{Backend: "postgres", SlotKey: "k"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("opens each backend", func(t *testing.T) {
		mr := miniredis.RunT(t)
		cases := map[string]types.Config{
			types.BackendFile:   {Backend: types.BackendFile, DataDir: t.TempDir(), SlotKey: "k"},
			types.BackendSQLite: {Backend: types.BackendSQLite, DataDir: t.TempDir(), SlotKey: "k"},
			types.BackendRedis:  {Backend: types.BackendRedis, RedisAddr: mr.Addr(), SlotKey: "k"},
			types.BackendMemory: {Backend: types.BackendMemory, SlotKey: "k"},
		}
		for name, cfg := range cases {
			s, err := Open(ctx, cfg)
			require.NoError(t, err, name)
			require.NoError(t, s.Close(), name)
		}
	})
}
