package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/recipebox/internal/slot"
	"github.com/mesh-intelligence/recipebox/pkg/types"
)

func TestNewRepositorySeedsEmptySlot(t *testing.T) {
	repo, mem := newTestRepo(t)

	assert.Equal(t, []string{"Classic Pancakes", "Simple Tomato Pasta"}, titles(repo.All()))
	assert.Equal(t, []string{"id-1", "id-2"}, recipeIDs(repo.All()))

	pasta, ok := repo.Get("id-2")
	require.True(t, ok)
	assert.True(t, pasta.Favorite)

	// The seed is written back so its ids survive a restart.
	assert.Equal(t, recipeIDs(repo.All()), recipeIDs(persisted(t, mem)))
}

func TestNewRepositoryFallsBackOnInvalidJSON(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	require.NoError(t, mem.Put(ctx, testKey, []byte("this is not json")))

	repo := NewRepository(ctx, NewStore(mem, testKey, nil))

	assert.Equal(t, []string{"Classic Pancakes", "Simple Tomato Pasta"}, titles(repo.All()))
}

func TestNewRepositoryLoadsPersistedCollection(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	require.NoError(t, mem.Put(ctx, testKey, []byte(`[`+validRecord+`]`)))

	repo := NewRepository(ctx, NewStore(mem, testKey, nil))

	require.Equal(t, 1, repo.Len())
	r, ok := repo.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Toast", r.Title)
}

func TestRepositoryUsesUUIDv7ByDefault(t *testing.T) {
	repo := NewRepository(context.Background(), NewStore(slot.NewMemory(), testKey, nil))
	r, err := repo.Create(context.Background(), types.Draft{Title: "x"})
	require.NoError(t, err)
	assert.Len(t, r.ID, 36)
	assert.Equal(t, byte('7'), r.ID[14], "version nibble")
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)
	before := recipeIDs(repo.All())

	r, err := repo.Create(ctx, types.Draft{ID: "id-1", Title: "Porridge", Ingredients: "oats\nmilk"})
	require.NoError(t, err)

	assert.NotContains(t, before, r.ID, "fresh id even when the draft carries one")
	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, r.ID, repo.All()[0].ID, "inserted at the front")

	count := 0
	for _, id := range recipeIDs(repo.All()) {
		if id == r.ID {
			count++
		}
	}
	assert.Equal(t, 1, count)
	assert.Equal(t, recipeIDs(repo.All()), recipeIDs(persisted(t, mem)))
}

func TestCreateCoercesBlankInput(t *testing.T) {
	repo, _ := newTestRepo(t)

	r, err := repo.Create(context.Background(), types.Draft{Title: "  ", Servings: "abc"})
	require.NoError(t, err)

	stored, ok := repo.Get(r.ID)
	require.True(t, ok)
	assert.Equal(t, "Untitled", stored.Title)
	assert.Equal(t, 1, stored.Servings)
}

func TestUpdateExistingKeepsPosition(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)
	_, err := repo.Create(ctx, types.Draft{Title: "Third"})
	require.NoError(t, err)
	order := recipeIDs(repo.All())

	pancakes, _ := repo.Get("id-1")
	pancakes.Title = "Fluffy Pancakes"
	pancakes.Tags = append(pancakes.Tags, " brunch ")

	got, err := repo.Update(ctx, pancakes)
	require.NoError(t, err)

	assert.Equal(t, order, recipeIDs(repo.All()), "length and positions unchanged")
	assert.Equal(t, "Fluffy Pancakes", got.Title)
	assert.Equal(t, []string{"breakfast", "easy", "brunch"}, got.Tags)
	assert.Equal(t, "Fluffy Pancakes", persisted(t, mem)[1].Title)
}

func TestUpdateUnknownIDInsertsAtFront(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	got, err := repo.Update(ctx, types.Recipe{ID: "imported", Title: "Flatbread", Servings: 2})
	require.NoError(t, err)

	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, "imported", got.ID)
	assert.Equal(t, "imported", repo.All()[0].ID)
}

func TestUpdateEmptyIDGetsFreshID(t *testing.T) {
	repo, _ := newTestRepo(t)

	got, err := repo.Update(context.Background(), types.Recipe{Title: "Anonymous"})
	require.NoError(t, err)

	assert.NotEmpty(t, got.ID)
	assert.Equal(t, got.ID, repo.All()[0].ID)
	assert.Equal(t, 1, got.Servings)
}

func TestSaveDraftUpserts(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)

	pasta, _ := repo.Get("id-2")
	d := DraftFrom(pasta)
	d.Servings = "6"

	got, err := repo.Save(ctx, d)
	require.NoError(t, err)
	assert.Equal(t, "id-2", got.ID)
	assert.Equal(t, 6, got.Servings)
	assert.True(t, got.Favorite, "favorite carried by the draft")
	assert.Equal(t, 2, repo.Len())

	got, err = repo.Save(ctx, types.Draft{Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, 3, repo.Len())
	assert.Equal(t, got.ID, repo.All()[0].ID)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)

	require.NoError(t, repo.Delete(ctx, "id-1"))
	assert.Equal(t, []string{"id-2"}, recipeIDs(repo.All()))
	assert.Equal(t, []string{"id-2"}, recipeIDs(persisted(t, mem)))

	_, ok := repo.Get("id-1")
	assert.False(t, ok)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	repo, _ := newTestRepo(t)
	before := repo.All()

	require.NoError(t, repo.Delete(context.Background(), "nope"))
	assert.Equal(t, before, repo.All())
}

func TestDeleteReindexes(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRepo(t)
	third, err := repo.Create(ctx, types.Draft{Title: "Third"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, third.ID))
	require.NoError(t, repo.ToggleFavorite(ctx, "id-1"))

	r, ok := repo.Get("id-1")
	require.True(t, ok)
	assert.True(t, r.Favorite, "index points at the right record after removal")
}

func TestToggleFavoriteTwiceRestores(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)

	require.NoError(t, repo.ToggleFavorite(ctx, "id-1"))
	r, _ := repo.Get("id-1")
	assert.True(t, r.Favorite)
	assert.True(t, persisted(t, mem)[0].Favorite)

	require.NoError(t, repo.ToggleFavorite(ctx, "id-1"))
	r, _ = repo.Get("id-1")
	assert.False(t, r.Favorite)

	require.NoError(t, repo.ToggleFavorite(ctx, "missing"))
}

func TestSnapshotsAreIsolated(t *testing.T) {
	repo, _ := newTestRepo(t)

	all := repo.All()
	all[0].Title = "mutated"
	all[0].Tags[0] = "mutated"

	r, _ := repo.Get(all[0].ID)
	assert.Equal(t, "Classic Pancakes", r.Title)
	assert.Equal(t, "breakfast", r.Tags[0])
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)

	pasta, _ := repo.Get("id-2")
	pasta.Time = "15 min"

	added, err := repo.Import(ctx, []types.Recipe{
		{ID: "x", Title: "X"},
		pasta,
		{ID: "y", Title: "Y"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, added)
	assert.Equal(t, []string{"x", "y", "id-1", "id-2"}, recipeIDs(repo.All()))
	updated, _ := repo.Get("id-2")
	assert.Equal(t, "15 min", updated.Time)
	assert.Len(t, persisted(t, mem), 4)

	added, err = repo.Import(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, added)
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	repo, mem := newTestRepo(t)
	_, err := repo.Create(ctx, types.Draft{Title: "Extra"})
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "id-2"))

	require.NoError(t, repo.Reset(ctx))

	assert.Equal(t, []string{"Classic Pancakes", "Simple Tomato Pasta"}, titles(repo.All()))
	for _, id := range recipeIDs(repo.All()) {
		assert.NotContains(t, []string{"id-1", "id-2", "id-3"}, id, "ids are never reused")
	}
	assert.Equal(t, recipeIDs(repo.All()), recipeIDs(persisted(t, mem)))
}

func TestExportJSON(t *testing.T) {
	repo, _ := newTestRepo(t)

	data, err := repo.ExportJSON()
	require.NoError(t, err)

	got, err := decodeCollection(data)
	require.NoError(t, err)
	assert.Equal(t, repo.All(), got)
}

func TestMutationStandsWhenWriteFails(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	repo := NewRepository(ctx, NewStore(failingSlot{mem}, testKey, nil), WithIDGenerator(counterIDs()))

	r, err := repo.Create(ctx, types.Draft{Title: "Unsaved"})
	assert.Error(t, err)
	got, ok := repo.Get(r.ID)
	require.True(t, ok)
	assert.Equal(t, "Unsaved", got.Title)
}

func TestNewRepositoryKeepsStoredCollectionOnReadError(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	repo := NewRepository(ctx, NewStore(mem, testKey, nil), WithIDGenerator(counterIDs()))
	_, err := repo.Create(ctx, types.Draft{Title: "Grandma's Soup"})
	require.NoError(t, err)
	require.NoError(t, repo.LoadErr())
	stored := persisted(t, mem)
	require.Len(t, stored, 3)

	down := NewRepository(ctx, NewStore(unreadableSlot{mem}, testKey, nil), WithIDGenerator(counterIDs()))
	require.ErrorIs(t, down.LoadErr(), types.ErrSlotUnreadable)
	assert.Equal(t, []string{"Classic Pancakes", "Simple Tomato Pasta"}, titles(down.All()))
	assert.Equal(t, stored, persisted(t, mem), "seed must not overwrite the stored collection")

	// Mutations stay in memory until the slot is readable again.
	_, err = down.Create(ctx, types.Draft{Title: "Toast"})
	assert.ErrorIs(t, err, types.ErrSlotUnreadable)
	assert.Equal(t, stored, persisted(t, mem))
}

func TestResetAfterReadErrorWrites(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	require.NoError(t, mem.Put(ctx, testKey, []byte(`[`+validRecord+`]`)))

	repo := NewRepository(ctx, NewStore(unreadableSlot{mem}, testKey, nil), WithIDGenerator(counterIDs()))
	require.Error(t, repo.LoadErr())

	require.NoError(t, repo.Reset(ctx))
	assert.NoError(t, repo.LoadErr())
	assert.Equal(t, recipeIDs(repo.All()), recipeIDs(persisted(t, mem)))
}

func TestNewRepositoryMalformedSlotIsNotALoadError(t *testing.T) {
	ctx := context.Background()
	mem := slot.NewMemory()
	require.NoError(t, mem.Put(ctx, testKey, []byte("this is not json")))

	repo := NewRepository(ctx, NewStore(mem, testKey, nil), WithIDGenerator(counterIDs()))
	assert.NoError(t, repo.LoadErr())
	assert.Equal(t, recipeIDs(repo.All()), recipeIDs(persisted(t, mem)))
}
