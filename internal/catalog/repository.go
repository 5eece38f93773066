// Package catalog holds the recipe collection: the Repository that owns
// and mutates it, the Store that persists it to a slot, and the Session
// that carries view state for a presentation layer.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/recipebox/pkg/types"
)

// Repository is the only mutator of the recipe collection. The collection
// is an ordered slice (new recipes go to the front) with an id index that
// is rebuilt after every structural change.
//
// A Repository is owned by one caller and is not safe for concurrent use.
type Repository struct {
	store   *Store
	recipes []types.Recipe
	index   map[string]int
	newID   func() string
	logger  *slog.Logger
	loadErr error
}

// Option configures a Repository.
type Option func(*Repository)

// WithLogger sets the logger for persistence diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(r *Repository) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIDGenerator replaces the UUID v7 id generator.
func WithIDGenerator(fn func() string) Option {
	return func(r *Repository) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRepository initializes a Repository from store. When the slot is
// empty or holds a malformed collection the seed set is installed and
// written back, so seed ids stay stable across runs. When the slot could
// not be read at all the seed set is used in memory only and LoadErr
// reports why; the stored collection is left untouched. NewRepository
// never fails; a failed seed write is logged.
func NewRepository(ctx context.Context, store *Store, opts ...Option) *Repository {
	r := &Repository{
		store:  store,
		newID:  generateUUID,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}

	recipes, err := store.read(ctx)
	if err == nil {
		r.recipes = recipes
		r.reindex()
		r.logger.Debug("collection loaded", "recipes", len(recipes))
		return r
	}

	r.recipes = seedSet(r.uniqueID)
	r.reindex()
	if errors.Is(err, types.ErrSlotUnreadable) {
		r.loadErr = err
		r.logger.Warn("stored collection unreadable, using seed recipes without saving", "error", err)
		return r
	}
	if err := r.persist(ctx); err != nil {
		r.logger.Warn("could not persist seed recipes", "error", err)
	}
	r.logger.Debug("seed recipes installed", "recipes", len(r.recipes))
	return r
}

// LoadErr returns the read error that kept NewRepository from loading the
// stored collection, wrapping types.ErrSlotUnreadable, or nil. An empty
// or malformed slot is not a load error.
func (r *Repository) LoadErr() error { return r.loadErr }

// generateUUID generates a new UUID v7 for recipe IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}

// uniqueID returns an id not present in the collection.
func (r *Repository) uniqueID() string {
	for {
		id := r.newID()
		if _, taken := r.index[id]; !taken && id != "" {
			return id
		}
	}
}

// Len returns the number of recipes in the collection.
func (r *Repository) Len() int { return len(r.recipes) }

// All returns a snapshot of the collection in insertion order. The
// returned recipes are copies.
func (r *Repository) All() []types.Recipe {
	out := make([]types.Recipe, len(r.recipes))
	for i, rec := range r.recipes {
		out[i] = rec.Clone()
	}
	return out
}

// Get returns a copy of the recipe with the given id.
func (r *Repository) Get(id string) (types.Recipe, bool) {
	i, ok := r.index[id]
	if !ok {
		return types.Recipe{}, false
	}
	return r.recipes[i].Clone(), true
}

// Create normalizes d, assigns a fresh id (any id on the draft is
// ignored), inserts the recipe at the front and persists the collection.
// The returned recipe is stored even when the write fails.
func (r *Repository) Create(ctx context.Context, d types.Draft) (types.Recipe, error) {
	rec := Normalize(d)
	rec.ID = r.uniqueID()
	r.insertFront(rec)
	return rec.Clone(), r.persist(ctx)
}

// Update replaces the recipe with rec.ID in place, keeping its position.
// An unknown id is inserted at the front as a new recipe, keeping the
// caller's id; an empty id gets a fresh one. Fields are normalized.
func (r *Repository) Update(ctx context.Context, rec types.Recipe) (types.Recipe, error) {
	rec = r.upsert(normalizeRecipe(rec))
	return rec.Clone(), r.persist(ctx)
}

// Save is the form-submit path: the draft replaces the recipe whose id it
// carries, or becomes a new recipe.
func (r *Repository) Save(ctx context.Context, d types.Draft) (types.Recipe, error) {
	return r.Update(ctx, Normalize(d))
}

// Delete removes the recipe with id. A missing id is a no-op and writes
// nothing.
func (r *Repository) Delete(ctx context.Context, id string) error {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.recipes = append(r.recipes[:i:i], r.recipes[i+1:]...)
	r.reindex()
	return r.persist(ctx)
}

// ToggleFavorite flips the favorite flag of the recipe with id. A missing
// id is a no-op and writes nothing.
func (r *Repository) ToggleFavorite(ctx context.Context, id string) error {
	i, ok := r.index[id]
	if !ok {
		return nil
	}
	r.recipes[i].Favorite = !r.recipes[i].Favorite
	return r.persist(ctx)
}

// Import upserts every recipe in order, as Update would, and persists
// once. Recipes new to the collection end up at the front in the order
// given. It returns how many recipes were new.
func (r *Repository) Import(ctx context.Context, recipes []types.Recipe) (int, error) {
	if len(recipes) == 0 {
		return 0, nil
	}
	before := len(r.recipes)
	for i := len(recipes) - 1; i >= 0; i-- {
		r.upsert(normalizeRecipe(recipes[i]))
	}
	return len(r.recipes) - before, r.persist(ctx)
}

// Reset clears the slot and reinstalls the seed set with fresh ids. It
// discards whatever the slot held, so it also clears LoadErr.
func (r *Repository) Reset(ctx context.Context) error {
	if err := r.store.Clear(ctx); err != nil {
		return err
	}
	r.loadErr = nil
	r.recipes = seedSet(r.uniqueID)
	r.reindex()
	return r.persist(ctx)
}

// ExportJSON returns the collection in the slot's JSON format.
func (r *Repository) ExportJSON() ([]byte, error) {
	return encodeCollection(r.recipes)
}

// upsert stores a normalized recipe and returns it with its final id.
func (r *Repository) upsert(rec types.Recipe) types.Recipe {
	if i, ok := r.index[rec.ID]; ok && rec.ID != "" {
		r.recipes[i] = rec
		return rec
	}
	if rec.ID == "" {
		rec.ID = r.uniqueID()
	}
	r.insertFront(rec)
	return rec
}

func (r *Repository) insertFront(rec types.Recipe) {
	r.recipes = append([]types.Recipe{rec}, r.recipes...)
	r.reindex()
}

func (r *Repository) reindex() {
	r.index = make(map[string]int, len(r.recipes))
	for i, rec := range r.recipes {
		r.index[rec.ID] = i
	}
}

func (r *Repository) persist(ctx context.Context) error {
	if r.loadErr != nil {
		// The slot may still hold the real collection; never overwrite it
		// with one built on the in-memory seed.
		return fmt.Errorf("persist: %w", r.loadErr)
	}
	if err := r.store.Save(ctx, r.recipes); err != nil {
		r.logger.Warn("collection not persisted", "error", err)
		return fmt.Errorf("persist: %w", err)
	}
	return nil
}
