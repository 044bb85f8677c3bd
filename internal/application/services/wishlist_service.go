package services

import (
	"context"
	"fmt"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// WishlistService handles wishlist entries. Wishlist categories are
// free-form and independent of the item categories set.
type WishlistService struct {
	store  ports.DocumentStore
	logger *logger.Logger
}

// NewWishlistService creates a new wishlist service
func NewWishlistService(store ports.DocumentStore, logger *logger.Logger) *WishlistService {
	return &WishlistService{
		store:  store,
		logger: logger,
	}
}

// ListWishlist returns all wishlist entries in insertion order
func (s *WishlistService) ListWishlist(ctx context.Context) ([]entities.WishlistEntry, error) {
	entries, err := s.store.GetWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	return entries, nil
}

// CreateEntry appends a new wishlist entry. An unset priority defaults to
// medium.
func (s *WishlistService) CreateEntry(ctx context.Context, req ports.CreateWishlistRequest) (*entities.WishlistEntry, error) {
	if req.Priority == "" {
		req.Priority = entities.PriorityMedium
	}
	if !req.Priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	entry, err := s.store.AddWishlistItem(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create wishlist entry: %w", err)
	}

	s.logger.Info("Wishlist entry created", "entry_id", entry.ID, "name", entry.Name, "priority", entry.Priority)

	return entry, nil
}

// UpdateEntry applies a partial update and returns the refreshed entry
func (s *WishlistService) UpdateEntry(ctx context.Context, id string, patch ports.WishlistPatch) (*entities.WishlistEntry, error) {
	if patch.Priority != nil && !patch.Priority.IsValid() {
		return nil, entities.ErrInvalidPriority
	}

	ok, err := s.store.UpdateWishlistItem(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update wishlist entry: %w", err)
	}
	if !ok {
		return nil, entities.ErrWishlistNotFound
	}

	s.logger.Info("Wishlist entry updated", "entry_id", id)

	entries, err := s.store.GetWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload wishlist: %w", err)
	}
	for i := range entries {
		if entries[i].ID == id {
			return &entries[i], nil
		}
	}
	return nil, entities.ErrWishlistNotFound
}

// DeleteEntry removes a wishlist entry by ID
func (s *WishlistService) DeleteEntry(ctx context.Context, id string) error {
	ok, err := s.store.RemoveWishlistItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete wishlist entry: %w", err)
	}
	if !ok {
		return entities.ErrWishlistNotFound
	}

	s.logger.Info("Wishlist entry deleted", "entry_id", id)

	return nil
}

// ListCategories merges the suggested default categories with every category
// currently in use, deduplicated, defaults first
func (s *WishlistService) ListCategories(ctx context.Context) ([]string, error) {
	entries, err := s.store.GetWishlist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}

	seen := make(map[string]bool)
	categories := []string{}
	for _, c := range entities.DefaultWishlistCategories {
		seen[c] = true
		categories = append(categories, c)
	}
	for _, entry := range entries {
		if entry.Category != "" && !seen[entry.Category] {
			seen[entry.Category] = true
			categories = append(categories, entry.Category)
		}
	}

	return categories, nil
}
