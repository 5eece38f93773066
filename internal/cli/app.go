package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/recipebox/internal/catalog"
	"github.com/mesh-intelligence/recipebox/internal/query"
	"github.com/mesh-intelligence/recipebox/pkg/recipebox"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// app is everything a command needs for one invocation: the opened slot,
// the repository loaded from it and the session over that repository.
type app struct {
	cfg     types.Config
	slot    types.Slot
	store   *catalog.Store
	session *catalog.Session
	logger  *slog.Logger
}

// openApp resolves configuration, opens the slot and initializes the
// repository. The caller must defer a.close().
func openApp(cmd *cobra.Command) (*app, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, sysError("%w", err)
	}
	logger := newLogger(cmd.ErrOrStderr())

	locale, err := query.ParseLocale(cfg.Locale)
	if err != nil {
		return nil, userError("invalid locale %q: %w", cfg.Locale, err)
	}

	s, err := recipebox.NewSlot(cmd.Context(), cfg)
	if err != nil {
		if errors.Is(err, types.ErrBackendUnknown) || errors.Is(err, types.ErrBackendEmpty) {
			return nil, userError("open storage: %w (want file, sqlite, redis or memory)", err)
		}
		return nil, sysError("open storage: %w", err)
	}
	logger.Debug("slot opened", "backend", cfg.Backend, "data_dir", cfg.DataDir, "key", cfg.SlotKey)

	store := catalog.NewStore(s, cfg.SlotKey, logger)
	repo := catalog.NewRepository(cmd.Context(), store, catalog.WithLogger(logger))

	return &app{
		cfg:     cfg,
		slot:    s,
		store:   store,
		session: catalog.NewSession(repo, locale),
		logger:  logger,
	}, nil
}

func (a *app) repo() *catalog.Repository { return a.session.Repository() }

func (a *app) close() {
	if err := a.slot.Close(); err != nil {
		a.logger.Warn("close storage", "err", err)
	}
}

// withApp opens the app, runs fn and closes it. A slot that could not be
// read stops every command except reset, which discards it anyway.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app) error) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()
	if err := a.repo().LoadErr(); err != nil && cmd.Name() != "reset" {
		return sysError("load recipes: %w", err)
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return fn(ctx, a)
}

// lookup returns the recipe with id or a user error naming it.
func (a *app) lookup(id string) (types.Recipe, error) {
	if id == "" {
		return types.Recipe{}, userError("%w", types.ErrInvalidID)
	}
	rec, ok := a.repo().Get(id)
	if !ok {
		return types.Recipe{}, userError("recipe %s: %w", id, types.ErrNotFound)
	}
	return rec, nil
}

// persistError reports a failed write after a mutation. The mutation
// itself stands in memory but is lost when the process exits.
func persistError(err error) error {
	return sysError("save failed: %w", err)
}

// wrapMutation maps a repository mutation error to an exit-coded error.
func wrapMutation(op string, err error) error {
	if err == nil {
		return nil
	}
	return persistError(fmt.Errorf("%s: %w", op, err))
}
