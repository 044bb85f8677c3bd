package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/domain/entities"
)

func TestGetThemeDefaultsToSystem(t *testing.T) {
	kv := newMemoryKV()
	themes := NewThemeRepository(kv)
	ctx := context.Background()

	theme, err := themes.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeSystem, theme)

	// A corrupted stored value falls back to system
	kv.data[ThemeKey] = "neon"
	theme, err = themes.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeSystem, theme)
}

func TestSetTheme(t *testing.T) {
	kv := newMemoryKV()
	themes := NewThemeRepository(kv)
	ctx := context.Background()

	require.NoError(t, themes.SetTheme(ctx, entities.ThemeDark))

	theme, err := themes.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, theme)

	err = themes.SetTheme(ctx, entities.Theme("neon"))
	assert.ErrorIs(t, err, entities.ErrInvalidTheme)

	// The rejected write leaves the stored value alone
	theme, err = themes.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, theme)
}

func TestThemeIndependentOfDocument(t *testing.T) {
	kv := newMemoryKV()
	themes := NewThemeRepository(kv)
	store := NewDocumentRepository(kv)
	ctx := context.Background()

	require.NoError(t, themes.SetTheme(ctx, entities.ThemeLight))

	// Replacing the document does not disturb the theme key
	require.NoError(t, store.Import(ctx, []byte(`{}`)))

	theme, err := themes.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeLight, theme)
}
