package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// TrackerService handles items, categories, favorites, search and stats
type TrackerService struct {
	store  ports.DocumentStore
	logger *logger.Logger
}

// NewTrackerService creates a new tracker service
func NewTrackerService(store ports.DocumentStore, logger *logger.Logger) *TrackerService {
	return &TrackerService{
		store:  store,
		logger: logger,
	}
}

// ListItems lists items filtered by category and/or free-text query, in the
// requested sort order. A blank query is treated as no query at all; the
// store's substring match would otherwise match everything.
func (s *TrackerService) ListItems(ctx context.Context, req ports.ListItemsRequest) ([]entities.Item, error) {
	var (
		items []entities.Item
		err   error
	)

	query := strings.TrimSpace(req.Query)
	if query != "" {
		items, err = s.store.SearchItems(ctx, query)
		if err == nil && req.Category != "" {
			filtered := items[:0]
			for _, item := range items {
				if item.Category == req.Category {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}
	} else {
		items, err = s.store.GetItems(ctx, req.Category)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	if req.Sort != "" {
		items = s.store.SortItems(items, req.Sort)
	}

	return items, nil
}

// CreateItem creates a new item, registering its category if needed
func (s *TrackerService) CreateItem(ctx context.Context, req ports.CreateItemRequest) (*entities.Item, error) {
	item, err := s.store.AddItem(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	s.logger.Info("Item created", "item_id", item.ID, "category", item.Category, "title", item.Title)

	return item, nil
}

// GetItem retrieves an item by ID
func (s *TrackerService) GetItem(ctx context.Context, id string) (*entities.Item, error) {
	item, err := s.store.GetItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, entities.ErrItemNotFound
	}

	return item, nil
}

// UpdateItem applies a partial update and returns the refreshed item
func (s *TrackerService) UpdateItem(ctx context.Context, id string, patch ports.ItemPatch) (*entities.Item, error) {
	ok, err := s.store.UpdateItem(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if !ok {
		return nil, entities.ErrItemNotFound
	}

	s.logger.Info("Item updated", "item_id", id)

	return s.GetItem(ctx, id)
}

// ReplaceItem applies a full update, re-deriving title and category
func (s *TrackerService) ReplaceItem(ctx context.Context, id string, req ports.CreateItemRequest) (*entities.Item, error) {
	ok, err := s.store.UpdateItemFull(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to replace item: %w", err)
	}
	if !ok {
		return nil, entities.ErrItemNotFound
	}

	s.logger.Info("Item replaced", "item_id", id)

	return s.GetItem(ctx, id)
}

// DeleteItem removes an item by ID
func (s *TrackerService) DeleteItem(ctx context.Context, id string) error {
	ok, err := s.store.RemoveItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if !ok {
		return entities.ErrItemNotFound
	}

	s.logger.Info("Item deleted", "item_id", id)

	return nil
}

// ListCategories returns the categories in insertion order
func (s *TrackerService) ListCategories(ctx context.Context) ([]string, error) {
	categories, err := s.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category and every item referencing it. Deleting
// an absent category succeeds; the operation is idempotent.
func (s *TrackerService) DeleteCategory(ctx context.Context, name string) error {
	if _, err := s.store.RemoveCategory(ctx, name); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.Info("Category deleted", "category", name)

	return nil
}

// ListFavorites returns the favorite items
func (s *TrackerService) ListFavorites(ctx context.Context) ([]entities.Item, error) {
	favorites, err := s.store.GetFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}

	return favorites, nil
}

// Stats aggregates counters over the current document
func (s *TrackerService) Stats(ctx context.Context) (*entities.Stats, error) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get stats: %w", err)
	}

	return stats, nil
}
