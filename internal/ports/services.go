package ports

import (
	"time"

	"github.com/activitytracker/core/internal/domain/entities"
)

// Request types shared by the HTTP adapters and the application services.
// Patch structs carry only the optional fields; a nil field is left as-is.

// CreateItemRequest creates an item, and also serves the full-update
// operation, which requires category and title to be re-derived.
type CreateItemRequest struct {
	Category    string `json:"category" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Progress    string `json:"progress"`
	IsFavorite  bool   `json:"isFavorite"`
	IsCompleted bool   `json:"isCompleted"`
}

// ItemPatch is a partial item update
type ItemPatch struct {
	Category    *string `json:"category"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Progress    *string `json:"progress"`
	IsFavorite  *bool   `json:"isFavorite"`
	IsCompleted *bool   `json:"isCompleted"`
}

// SaveProfileRequest replaces the profile wholesale. Image and join date are
// preserved from the stored profile unless explicitly provided.
type SaveProfileRequest struct {
	Name     string     `json:"name"`
	Username string     `json:"username"`
	Tagline  string     `json:"tagline"`
	Image    *string    `json:"image"`
	JoinDate *time.Time `json:"joinDate"`
}

// WorkoutRequest creates or replaces a workout entry
type WorkoutRequest struct {
	Name string `json:"name" validate:"required"`
	Sets string `json:"sets"`
	Reps string `json:"reps"`
	Best string `json:"best"`
}

// CreateWishlistRequest creates a wishlist entry. Category is free-form.
type CreateWishlistRequest struct {
	Name        string            `json:"name" validate:"required"`
	Description string            `json:"description"`
	Category    string            `json:"category"`
	Priority    entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Date        string            `json:"date"`
}

// WishlistPatch is a partial wishlist entry update
type WishlistPatch struct {
	Name        *string            `json:"name"`
	Description *string            `json:"description"`
	Category    *string            `json:"category"`
	Priority    *entities.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
	Date        *string            `json:"date"`
}

// ListItemsRequest bundles the item listing query parameters
type ListItemsRequest struct {
	Category string   `query:"category"`
	Sort     SortMode `query:"sort"`
	Query    string   `query:"q"`
}

// SetThemeRequest updates the theme preference
type SetThemeRequest struct {
	Theme entities.Theme `json:"theme" validate:"required,oneof=system light dark"`
}
