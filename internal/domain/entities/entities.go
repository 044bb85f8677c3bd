package entities

import (
	"errors"
	"strings"
	"time"
	"unicode"
)

// Common errors
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrWishlistNotFound = errors.New("wishlist entry not found")
	ErrInvalidImport    = errors.New("invalid import data")
	ErrInvalidTheme     = errors.New("invalid theme")
	ErrInvalidPriority  = errors.New("invalid priority")
)

// Enums and types
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Document is the single root value holding all persisted tracker state.
// It is always read and written as a whole; there is no row-level storage.
type Document struct {
	Profile    *Profile        `json:"profile"`
	Categories []string        `json:"categories"`
	Items      []Item          `json:"items"`
	Workouts   []Workout       `json:"workouts"`
	Wishlist   []WishlistEntry `json:"wishlist"`
	Settings   Settings        `json:"settings"`
}

// Item represents a tracked entry (a show, a book, a habit)
type Item struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Progress    string    `json:"progress"`
	IsFavorite  bool      `json:"isFavorite"`
	IsCompleted bool      `json:"isCompleted"`
	DateAdded   time.Time `json:"dateAdded"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// Profile is the singleton user profile, lazily created on first read
type Profile struct {
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Tagline  string    `json:"tagline"`
	Image    string    `json:"image"`
	JoinDate time.Time `json:"joinDate"`
}

// Workout is a free-form exercise log entry, independent of items
type Workout struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Sets string    `json:"sets"`
	Reps string    `json:"reps"`
	Best string    `json:"best"`
	Date time.Time `json:"date"`
}

// WishlistEntry is a planned-acquisition record. Its category is free-form
// and not constrained to the item categories set.
type WishlistEntry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Priority    Priority  `json:"priority"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Settings holds document-level preferences
type Settings struct {
	Theme Theme `json:"theme"`
}

// Stats is the aggregation returned by the stats operation
type Stats struct {
	TotalItems      int `json:"totalItems"`
	TotalCategories int `json:"totalCategories"`
	TotalFavorites  int `json:"totalFavorites"`
	TotalCompleted  int `json:"totalCompleted"`
}

// DefaultWishlistCategories are the suggested wishlist categories. Free-form
// values entered by the user are merged with these at the service layer.
var DefaultWishlistCategories = []string{"Anime", "Manga", "Manwha"}

// NewDocument returns the default document written on first load
func NewDocument() *Document {
	return &Document{
		Profile:    nil,
		Categories: []string{},
		Items:      []Item{},
		Workouts:   []Workout{},
		Wishlist:   []WishlistEntry{},
		Settings:   Settings{Theme: ThemeSystem},
	}
}

// Normalize fills any missing sub-collection so downstream code can assume
// all collections exist. Runs once immediately after deserialization.
func (d *Document) Normalize() {
	if d.Categories == nil {
		d.Categories = []string{}
	}
	if d.Items == nil {
		d.Items = []Item{}
	}
	if d.Workouts == nil {
		d.Workouts = []Workout{}
	}
	if d.Wishlist == nil {
		d.Wishlist = []WishlistEntry{}
	}
	if !d.Settings.Theme.IsValid() {
		d.Settings.Theme = ThemeSystem
	}
}

// HasCategory reports whether name is registered in the categories set
func (d *Document) HasCategory(name string) bool {
	for _, c := range d.Categories {
		if c == name {
			return true
		}
	}
	return false
}

// RegisterCategory appends name to the categories set if absent.
// Returns true when the category was added.
func (d *Document) RegisterCategory(name string) bool {
	if d.HasCategory(name) {
		return false
	}
	d.Categories = append(d.Categories, name)
	return true
}

// FindItem returns a pointer into the items list, or nil when id is unknown
func (d *Document) FindItem(id string) *Item {
	for i := range d.Items {
		if d.Items[i].ID == id {
			return &d.Items[i]
		}
	}
	return nil
}

// Favorites is a pure filter over items; favorites have no storage of their own
func (d *Document) Favorites() []Item {
	favorites := []Item{}
	for _, item := range d.Items {
		if item.IsFavorite {
			favorites = append(favorites, item)
		}
	}
	return favorites
}

// Stats aggregates counters over the current document
func (d *Document) Stats() Stats {
	stats := Stats{
		TotalItems:      len(d.Items),
		TotalCategories: len(d.Categories),
	}
	for _, item := range d.Items {
		if item.IsFavorite {
			stats.TotalFavorites++
		}
		if item.IsCompleted {
			stats.TotalCompleted++
		}
	}
	return stats
}

// Matches reports whether the item matches a case-insensitive substring
// query across title, description, category and progress. An empty query
// matches everything; callers special-case blank input.
func (it *Item) Matches(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(it.Title), q) ||
		strings.Contains(strings.ToLower(it.Description), q) ||
		strings.Contains(strings.ToLower(it.Category), q) ||
		strings.Contains(strings.ToLower(it.Progress), q)
}

// FormatName normalizes a display name: first letter capitalized, the rest
// lowercased. Applied to item titles and categories at write time.
func FormatName(name string) string {
	if name == "" {
		return ""
	}
	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Utility methods
func (t Theme) IsValid() bool {
	switch t {
	case ThemeSystem, ThemeLight, ThemeDark:
		return true
	default:
		return false
	}
}

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
