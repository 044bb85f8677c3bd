package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

func TestWishlistServiceCreateDefaultsPriority(t *testing.T) {
	svc := NewWishlistService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Vinland Saga"})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityMedium, entry.Priority)

	entry, err = svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Vagabond", Priority: entities.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, entities.PriorityHigh, entry.Priority)

	_, err = svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Bad", Priority: "urgent"})
	assert.ErrorIs(t, err, entities.ErrInvalidPriority)
}

func TestWishlistServiceUpdate(t *testing.T) {
	svc := NewWishlistService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Vinland Saga", Category: "Manga"})
	require.NoError(t, err)

	name := "Vinland Saga Deluxe"
	updated, err := svc.UpdateEntry(ctx, entry.ID, ports.WishlistPatch{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Vinland Saga Deluxe", updated.Name)
	assert.Equal(t, "Manga", updated.Category)

	bad := entities.Priority("urgent")
	_, err = svc.UpdateEntry(ctx, entry.ID, ports.WishlistPatch{Priority: &bad})
	assert.ErrorIs(t, err, entities.ErrInvalidPriority)

	_, err = svc.UpdateEntry(ctx, "missing", ports.WishlistPatch{Name: &name})
	assert.ErrorIs(t, err, entities.ErrWishlistNotFound)
}

func TestWishlistServiceDelete(t *testing.T) {
	svc := NewWishlistService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Vinland Saga"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEntry(ctx, entry.ID))
	assert.ErrorIs(t, svc.DeleteEntry(ctx, entry.ID), entities.ErrWishlistNotFound)
}

func TestWishlistServiceListCategories(t *testing.T) {
	svc := NewWishlistService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	// Defaults only, before anything is added
	categories, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anime", "Manga", "Manwha"}, categories)

	_, err = svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Dune", Category: "Books"})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Berserk", Category: "Manga"})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, ports.CreateWishlistRequest{Name: "Uncategorized"})
	require.NoError(t, err)

	// In-use values follow the defaults, deduplicated, blanks skipped
	categories, err = svc.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Anime", "Manga", "Manwha", "Books"}, categories)
}
