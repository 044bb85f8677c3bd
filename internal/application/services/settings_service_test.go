package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/adapters/repository"
	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
)

func TestSettingsServiceTheme(t *testing.T) {
	themes := repository.NewThemeRepository(newMemoryKV())
	svc := NewSettingsService(themes, logger.NewNop())
	ctx := context.Background()

	theme, err := svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeSystem, theme)

	require.NoError(t, svc.SetTheme(ctx, entities.ThemeDark))

	theme, err = svc.GetTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.ThemeDark, theme)

	assert.ErrorIs(t, svc.SetTheme(ctx, entities.Theme("neon")), entities.ErrInvalidTheme)
}
