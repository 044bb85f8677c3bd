package ports

import (
	"context"

	"github.com/activitytracker/core/internal/domain/entities"
)

// KV is the storage medium: whole-value reads and whole-value writes under
// fixed keys. It serializes nothing beyond that, so the last write wins.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// DocumentStore is the sole authority for reading, defaulting, mutating and
// persisting the document. Operations on missing ids report false rather
// than an error; errors are reserved for the storage layer itself.
type DocumentStore interface {
	Load(ctx context.Context) (*entities.Document, error)
	Save(ctx context.Context, doc *entities.Document) error

	ListCategories(ctx context.Context) ([]string, error)
	RemoveCategory(ctx context.Context, name string) (bool, error)

	AddItem(ctx context.Context, req CreateItemRequest) (*entities.Item, error)
	UpdateItem(ctx context.Context, id string, patch ItemPatch) (bool, error)
	UpdateItemFull(ctx context.Context, id string, req CreateItemRequest) (bool, error)
	RemoveItem(ctx context.Context, id string) (bool, error)
	GetItems(ctx context.Context, filterCategory string) ([]entities.Item, error)
	GetItemByID(ctx context.Context, id string) (*entities.Item, error)
	SearchItems(ctx context.Context, query string) ([]entities.Item, error)
	SortItems(items []entities.Item, mode SortMode) []entities.Item
	GetFavorites(ctx context.Context) ([]entities.Item, error)

	GetProfile(ctx context.Context) (*entities.Profile, error)
	SaveProfile(ctx context.Context, profile entities.Profile) error

	GetStats(ctx context.Context) (*entities.Stats, error)

	Export(ctx context.Context) ([]byte, error)
	Import(ctx context.Context, payload []byte) error

	GetWorkouts(ctx context.Context) ([]entities.Workout, error)
	SaveWorkout(ctx context.Context, req WorkoutRequest) (*entities.Workout, error)
	UpdateWorkout(ctx context.Context, id string, req WorkoutRequest) (bool, error)
	DeleteWorkout(ctx context.Context, id string) (bool, error)

	GetWishlist(ctx context.Context) ([]entities.WishlistEntry, error)
	AddWishlistItem(ctx context.Context, req CreateWishlistRequest) (*entities.WishlistEntry, error)
	UpdateWishlistItem(ctx context.Context, id string, patch WishlistPatch) (bool, error)
	RemoveWishlistItem(ctx context.Context, id string) (bool, error)
}

// ThemeRepository manages the theme preference, stored under its own key
// independently of the document
type ThemeRepository interface {
	GetTheme(ctx context.Context) (entities.Theme, error)
	SetTheme(ctx context.Context, theme entities.Theme) error
}

// SortMode selects the ordering applied by SortItems
type SortMode string

const (
	SortNewest       SortMode = "newest"
	SortOldest       SortMode = "oldest"
	SortAlphabetical SortMode = "alphabetical"
	SortFavorites    SortMode = "favorites"
)
