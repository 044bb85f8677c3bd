package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase word", input: "anime", expected: "Anime"},
		{name: "uppercase word", input: "MANGA", expected: "Manga"},
		{name: "mixed case", input: "mAnWhA", expected: "Manwha"},
		{name: "multiple words keep single capital", input: "attack on titan", expected: "Attack on titan"},
		{name: "already formatted", input: "Books", expected: "Books"},
		{name: "single rune", input: "x", expected: "X"},
		{name: "empty", input: "", expected: ""},
		{name: "leading digit unchanged", input: "86 eighty six", expected: "86 eighty six"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatName(tt.input))
		})
	}
}

func TestThemeIsValid(t *testing.T) {
	assert.True(t, ThemeSystem.IsValid())
	assert.True(t, ThemeLight.IsValid())
	assert.True(t, ThemeDark.IsValid())
	assert.False(t, Theme("").IsValid())
	assert.False(t, Theme("neon").IsValid())
}

func TestPriorityIsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, Priority("").IsValid())
	assert.False(t, Priority("urgent").IsValid())
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	assert.Nil(t, doc.Profile)
	assert.Empty(t, doc.Categories)
	assert.NotNil(t, doc.Categories)
	assert.NotNil(t, doc.Items)
	assert.NotNil(t, doc.Workouts)
	assert.NotNil(t, doc.Wishlist)
	assert.Equal(t, ThemeSystem, doc.Settings.Theme)
}

func TestDocumentNormalize(t *testing.T) {
	doc := &Document{Settings: Settings{Theme: "bogus"}}
	doc.Normalize()

	assert.NotNil(t, doc.Categories)
	assert.NotNil(t, doc.Items)
	assert.NotNil(t, doc.Workouts)
	assert.NotNil(t, doc.Wishlist)
	assert.Equal(t, ThemeSystem, doc.Settings.Theme)

	doc = &Document{Settings: Settings{Theme: ThemeDark}}
	doc.Normalize()
	assert.Equal(t, ThemeDark, doc.Settings.Theme)
}

func TestRegisterCategory(t *testing.T) {
	doc := NewDocument()

	assert.True(t, doc.RegisterCategory("Anime"))
	assert.False(t, doc.RegisterCategory("Anime"))
	assert.True(t, doc.RegisterCategory("Books"))
	assert.Equal(t, []string{"Anime", "Books"}, doc.Categories)
	assert.True(t, doc.HasCategory("Anime"))
	assert.False(t, doc.HasCategory("anime"))
}

func TestFavoritesAndStats(t *testing.T) {
	doc := NewDocument()
	doc.Categories = []string{"Anime", "Books"}
	doc.Items = []Item{
		{ID: "1", Title: "One Piece", IsFavorite: true},
		{ID: "2", Title: "Dune", IsCompleted: true},
		{ID: "3", Title: "Berserk", IsFavorite: true, IsCompleted: true},
	}

	favorites := doc.Favorites()
	assert.Len(t, favorites, 2)
	assert.Equal(t, "One Piece", favorites[0].Title)
	assert.Equal(t, "Berserk", favorites[1].Title)

	stats := doc.Stats()
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.TotalCategories)
	assert.Equal(t, 2, stats.TotalFavorites)
	assert.Equal(t, 2, stats.TotalCompleted)
}

func TestItemMatches(t *testing.T) {
	item := Item{
		Title:       "Attack on Titan",
		Description: "Final season",
		Category:    "Anime",
		Progress:    "Episode 12",
	}

	tests := []struct {
		name    string
		query   string
		matches bool
	}{
		{name: "title substring", query: "titan", matches: true},
		{name: "case insensitive", query: "ATTACK", matches: true},
		{name: "description", query: "final", matches: true},
		{name: "category", query: "anime", matches: true},
		{name: "progress", query: "episode", matches: true},
		{name: "no match", query: "naruto", matches: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.matches, item.Matches(tt.query))
		})
	}
}
