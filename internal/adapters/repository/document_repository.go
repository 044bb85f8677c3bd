package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/ports"
)

// DocumentRepositoryImpl implements the DocumentStore interface. Every
// operation is load-mutate-save over the whole document; no session state is
// retained between calls.
type DocumentRepositoryImpl struct {
	kv ports.KV
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(kv ports.KV) ports.DocumentStore {
	return &DocumentRepositoryImpl{kv: kv}
}

// Load returns the persisted document. When none exists yet it writes and
// returns a fresh default document; absence is not an error.
func (r *DocumentRepositoryImpl) Load(ctx context.Context) (*entities.Document, error) {
	raw, ok, err := r.kv.Get(ctx, DocumentKey)
	if err != nil {
		return nil, fmt.Errorf("load document: %w", err)
	}

	if !ok {
		doc := entities.NewDocument()
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc entities.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	doc.Normalize()

	return &doc, nil
}

// Save serializes and persists the full document, overwriting prior content.
// The last writer wins; there is no merge.
func (r *DocumentRepositoryImpl) Save(ctx context.Context, doc *entities.Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}

	if err := r.kv.Set(ctx, DocumentKey, string(raw)); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	return nil
}

func (r *DocumentRepositoryImpl) ListCategories(ctx context.Context) ([]string, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Categories, nil
}

// RemoveCategory removes the category and cascades to every item referencing
// it. Removing an absent category is not an error; the delete is idempotent.
func (r *DocumentRepositoryImpl) RemoveCategory(ctx context.Context, name string) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	categories := doc.Categories[:0]
	for _, c := range doc.Categories {
		if c != name {
			categories = append(categories, c)
		}
	}
	doc.Categories = categories

	items := doc.Items[:0]
	for _, item := range doc.Items {
		if item.Category != name {
			items = append(items, item)
		}
	}
	doc.Items = items

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DocumentRepositoryImpl) AddItem(ctx context.Context, req ports.CreateItemRequest) (*entities.Item, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	item := entities.Item{
		ID:          uuid.NewString(),
		Category:    entities.FormatName(req.Category),
		Title:       entities.FormatName(req.Title),
		Description: req.Description,
		Progress:    req.Progress,
		IsFavorite:  req.IsFavorite,
		IsCompleted: req.IsCompleted,
		DateAdded:   now,
		LastUpdated: now,
	}

	doc.RegisterCategory(item.Category)
	doc.Items = append(doc.Items, item)

	if err := r.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *DocumentRepositoryImpl) UpdateItem(ctx context.Context, id string, patch ports.ItemPatch) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	item := doc.FindItem(id)
	if item == nil {
		return false, nil
	}

	if patch.Title != nil {
		item.Title = entities.FormatName(*patch.Title)
	}
	if patch.Category != nil {
		item.Category = entities.FormatName(*patch.Category)
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Progress != nil {
		item.Progress = *patch.Progress
	}
	if patch.IsFavorite != nil {
		item.IsFavorite = *patch.IsFavorite
	}
	if patch.IsCompleted != nil {
		item.IsCompleted = *patch.IsCompleted
	}
	item.LastUpdated = time.Now().UTC()

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateItemFull replaces every user-editable field and, unlike UpdateItem,
// guarantees the (possibly new) category is registered.
func (r *DocumentRepositoryImpl) UpdateItemFull(ctx context.Context, id string, req ports.CreateItemRequest) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	item := doc.FindItem(id)
	if item == nil {
		return false, nil
	}

	item.Category = entities.FormatName(req.Category)
	item.Title = entities.FormatName(req.Title)
	item.Description = req.Description
	item.Progress = req.Progress
	item.IsFavorite = req.IsFavorite
	item.IsCompleted = req.IsCompleted
	item.LastUpdated = time.Now().UTC()

	doc.RegisterCategory(item.Category)

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DocumentRepositoryImpl) RemoveItem(ctx context.Context, id string) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	items := doc.Items[:0]
	for _, item := range doc.Items {
		if item.ID != id {
			items = append(items, item)
		}
	}
	if len(items) == len(doc.Items) {
		return false, nil
	}
	doc.Items = items

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

// GetItems returns items, optionally filtered by exact category match,
// newest first. The sort is stable so equal timestamps keep insertion order.
func (r *DocumentRepositoryImpl) GetItems(ctx context.Context, filterCategory string) ([]entities.Item, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	items := []entities.Item{}
	for _, item := range doc.Items {
		if filterCategory == "" || item.Category == filterCategory {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].DateAdded.After(items[j].DateAdded)
	})
	return items, nil
}

func (r *DocumentRepositoryImpl) GetItemByID(ctx context.Context, id string) (*entities.Item, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	item := doc.FindItem(id)
	if item == nil {
		return nil, nil
	}
	found := *item
	return &found, nil
}

// SearchItems performs a literal case-insensitive substring match, so an
// empty query matches everything; blank input is the caller's concern.
func (r *DocumentRepositoryImpl) SearchItems(ctx context.Context, query string) ([]entities.Item, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	matches := []entities.Item{}
	for _, item := range doc.Items {
		if item.Matches(query) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

// SortItems is a pure function: it returns a sorted copy and never mutates
// its input. Favorites mode sorts favorites first with newest as tiebreak.
func (r *DocumentRepositoryImpl) SortItems(items []entities.Item, mode ports.SortMode) []entities.Item {
	sorted := make([]entities.Item, len(items))
	copy(sorted, items)

	switch mode {
	case ports.SortFavorites:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].IsFavorite != sorted[j].IsFavorite {
				return sorted[i].IsFavorite
			}
			return sorted[i].DateAdded.After(sorted[j].DateAdded)
		})
	case ports.SortAlphabetical:
		// Collators are not safe for concurrent use, so each sort gets its own
		titles := collate.New(language.Und)
		sort.SliceStable(sorted, func(i, j int) bool {
			return titles.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case ports.SortOldest:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateAdded.Before(sorted[j].DateAdded)
		})
	default: // newest
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].DateAdded.After(sorted[j].DateAdded)
		})
	}

	return sorted
}

func (r *DocumentRepositoryImpl) GetFavorites(ctx context.Context) ([]entities.Item, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Favorites(), nil
}

// GetProfile lazily creates the profile singleton with empty defaults on
// first read
func (r *DocumentRepositoryImpl) GetProfile(ctx context.Context) (*entities.Profile, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	if doc.Profile == nil {
		doc.Profile = &entities.Profile{JoinDate: time.Now().UTC()}
		if err := r.Save(ctx, doc); err != nil {
			return nil, err
		}
	}

	profile := *doc.Profile
	return &profile, nil
}

func (r *DocumentRepositoryImpl) SaveProfile(ctx context.Context, profile entities.Profile) error {
	doc, err := r.Load(ctx)
	if err != nil {
		return err
	}

	doc.Profile = &profile
	return r.Save(ctx, doc)
}

func (r *DocumentRepositoryImpl) GetStats(ctx context.Context) (*entities.Stats, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	stats := doc.Stats()
	return &stats, nil
}

// Export serializes the whole document, pretty-printed, for download
func (r *DocumentRepositoryImpl) Export(ctx context.Context) ([]byte, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode export: %w", err)
	}
	return raw, nil
}

// Import validates user-supplied JSON and replaces the persisted document
// wholesale. Missing collections are lenient-filled; a payload that is not a
// JSON object, or whose categories/items are not lists, is rejected and the
// prior document is left untouched.
func (r *DocumentRepositoryImpl) Import(ctx context.Context, payload []byte) error {
	var probe any
	if err := json.Unmarshal(payload, &probe); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidImport, err)
	}

	obj, ok := probe.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: not a JSON object", entities.ErrInvalidImport)
	}
	if v, present := obj["categories"]; present && v != nil {
		if _, isList := v.([]any); !isList {
			return fmt.Errorf("%w: categories is not a list", entities.ErrInvalidImport)
		}
	}
	if v, present := obj["items"]; present && v != nil {
		if _, isList := v.([]any); !isList {
			return fmt.Errorf("%w: items is not a list", entities.ErrInvalidImport)
		}
	}

	var doc entities.Document
	if err := json.Unmarshal(payload, &doc); err != nil {
		return fmt.Errorf("%w: %v", entities.ErrInvalidImport, err)
	}
	doc.Normalize()

	return r.Save(ctx, &doc)
}

func (r *DocumentRepositoryImpl) GetWorkouts(ctx context.Context) ([]entities.Workout, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Workouts, nil
}

func (r *DocumentRepositoryImpl) SaveWorkout(ctx context.Context, req ports.WorkoutRequest) (*entities.Workout, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	workout := entities.Workout{
		ID:   uuid.NewString(),
		Name: req.Name,
		Sets: req.Sets,
		Reps: req.Reps,
		Best: req.Best,
		Date: time.Now().UTC(),
	}
	doc.Workouts = append(doc.Workouts, workout)

	if err := r.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &workout, nil
}

// UpdateWorkout replaces the entry wholesale, keeping its id and refreshing
// its date
func (r *DocumentRepositoryImpl) UpdateWorkout(ctx context.Context, id string, req ports.WorkoutRequest) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range doc.Workouts {
		if doc.Workouts[i].ID == id {
			doc.Workouts[i] = entities.Workout{
				ID:   id,
				Name: req.Name,
				Sets: req.Sets,
				Reps: req.Reps,
				Best: req.Best,
				Date: time.Now().UTC(),
			}
			if err := r.Save(ctx, doc); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *DocumentRepositoryImpl) DeleteWorkout(ctx context.Context, id string) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	workouts := doc.Workouts[:0]
	for _, w := range doc.Workouts {
		if w.ID != id {
			workouts = append(workouts, w)
		}
	}
	if len(workouts) == len(doc.Workouts) {
		return false, nil
	}
	doc.Workouts = workouts

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}

func (r *DocumentRepositoryImpl) GetWishlist(ctx context.Context) ([]entities.WishlistEntry, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Wishlist, nil
}

func (r *DocumentRepositoryImpl) AddWishlistItem(ctx context.Context, req ports.CreateWishlistRequest) (*entities.WishlistEntry, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	entry := entities.WishlistEntry{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Priority:    req.Priority,
		Date:        req.Date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	doc.Wishlist = append(doc.Wishlist, entry)

	if err := r.Save(ctx, doc); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *DocumentRepositoryImpl) UpdateWishlistItem(ctx context.Context, id string, patch ports.WishlistPatch) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	for i := range doc.Wishlist {
		if doc.Wishlist[i].ID != id {
			continue
		}

		entry := &doc.Wishlist[i]
		if patch.Name != nil {
			entry.Name = *patch.Name
		}
		if patch.Description != nil {
			entry.Description = *patch.Description
		}
		if patch.Category != nil {
			entry.Category = *patch.Category
		}
		if patch.Priority != nil {
			entry.Priority = *patch.Priority
		}
		if patch.Date != nil {
			entry.Date = *patch.Date
		}
		entry.UpdatedAt = time.Now().UTC()

		if err := r.Save(ctx, doc); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (r *DocumentRepositoryImpl) RemoveWishlistItem(ctx context.Context, id string) (bool, error) {
	doc, err := r.Load(ctx)
	if err != nil {
		return false, err
	}

	wishlist := doc.Wishlist[:0]
	for _, entry := range doc.Wishlist {
		if entry.ID != id {
			wishlist = append(wishlist, entry)
		}
	}
	if len(wishlist) == len(doc.Wishlist) {
		return false, nil
	}
	doc.Wishlist = wishlist

	if err := r.Save(ctx, doc); err != nil {
		return false, err
	}
	return true, nil
}
