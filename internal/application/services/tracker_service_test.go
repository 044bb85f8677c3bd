package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/adapters/repository"
	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// memoryKV is a map-backed KV for tests
type memoryKV struct {
	data map[string]string
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: make(map[string]string)}
}

func (m *memoryKV) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.data[key]
	return value, ok, nil
}

func (m *memoryKV) Set(_ context.Context, key, value string) error {
	m.data[key] = value
	return nil
}

func newTestStore() ports.DocumentStore {
	return repository.NewDocumentRepository(newMemoryKV())
}

func TestTrackerServiceCreateAndGet(t *testing.T) {
	store := newTestStore()
	svc := NewTrackerService(store, logger.NewNop())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "one piece"})
	require.NoError(t, err)
	assert.Equal(t, "Anime", item.Category)
	assert.Equal(t, "One piece", item.Title)

	fetched, err := svc.GetItem(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, fetched.ID)

	_, err = svc.GetItem(ctx, "missing")
	assert.ErrorIs(t, err, entities.ErrItemNotFound)
}

func TestTrackerServiceListItems(t *testing.T) {
	store := newTestStore()
	svc := NewTrackerService(store, logger.NewNop())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "attack on titan"})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, ports.CreateItemRequest{Category: "books", Title: "dune"})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "berserk"})
	require.NoError(t, err)

	t.Run("no filters", func(t *testing.T) {
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("category filter", func(t *testing.T) {
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{Category: "Anime"})
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("query", func(t *testing.T) {
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{Query: "titan"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Attack on titan", items[0].Title)
	})

	t.Run("blank query treated as none", func(t *testing.T) {
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{Query: "   "})
		require.NoError(t, err)
		assert.Len(t, items, 3)
	})

	t.Run("query combined with category", func(t *testing.T) {
		// "e" appears in every title, the category narrows it down
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{Query: "e", Category: "Books"})
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Dune", items[0].Title)
	})

	t.Run("alphabetical sort", func(t *testing.T) {
		items, err := svc.ListItems(ctx, ports.ListItemsRequest{Sort: ports.SortAlphabetical})
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "Attack on titan", items[0].Title)
		assert.Equal(t, "Berserk", items[1].Title)
		assert.Equal(t, "Dune", items[2].Title)
	})
}

func TestTrackerServiceUpdateAndDelete(t *testing.T) {
	store := newTestStore()
	svc := NewTrackerService(store, logger.NewNop())
	ctx := context.Background()

	item, err := svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "berserk"})
	require.NoError(t, err)

	progress := "Chapter 45"
	updated, err := svc.UpdateItem(ctx, item.ID, ports.ItemPatch{Progress: &progress})
	require.NoError(t, err)
	assert.Equal(t, "Chapter 45", updated.Progress)

	_, err = svc.UpdateItem(ctx, "missing", ports.ItemPatch{Progress: &progress})
	assert.ErrorIs(t, err, entities.ErrItemNotFound)

	replaced, err := svc.ReplaceItem(ctx, item.ID, ports.CreateItemRequest{Category: "manga", Title: "berserk"})
	require.NoError(t, err)
	assert.Equal(t, "Manga", replaced.Category)
	// The full update cleared the patched progress
	assert.Empty(t, replaced.Progress)

	require.NoError(t, svc.DeleteItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeleteItem(ctx, item.ID), entities.ErrItemNotFound)
}

func TestTrackerServiceDeleteCategory(t *testing.T) {
	store := newTestStore()
	svc := NewTrackerService(store, logger.NewNop())
	ctx := context.Background()

	_, err := svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "one piece"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, "Anime"))

	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	// Deleting again still succeeds
	require.NoError(t, svc.DeleteCategory(ctx, "Anime"))
}

func TestTrackerServiceFavoritesAndStats(t *testing.T) {
	store := newTestStore()
	svc := NewTrackerService(store, logger.NewNop())
	ctx := context.Background()

	fav, err := svc.CreateItem(ctx, ports.CreateItemRequest{Category: "anime", Title: "one piece", IsFavorite: true})
	require.NoError(t, err)
	_, err = svc.CreateItem(ctx, ports.CreateItemRequest{Category: "books", Title: "dune", IsCompleted: true})
	require.NoError(t, err)

	favorites, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, fav.ID, favorites[0].ID)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalItems)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 1, stats.TotalFavorites)
	assert.Equal(t, 1, stats.TotalCompleted)
}
