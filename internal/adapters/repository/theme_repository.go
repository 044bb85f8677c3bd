package repository

import (
	"context"
	"fmt"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/ports"
)

// ThemeRepositoryImpl stores the theme preference under its own key,
// independent of the document
type ThemeRepositoryImpl struct {
	kv ports.KV
}

// NewThemeRepository creates a new theme repository
func NewThemeRepository(kv ports.KV) ports.ThemeRepository {
	return &ThemeRepositoryImpl{kv: kv}
}

func (r *ThemeRepositoryImpl) GetTheme(ctx context.Context) (entities.Theme, error) {
	raw, ok, err := r.kv.Get(ctx, ThemeKey)
	if err != nil {
		return "", fmt.Errorf("get theme: %w", err)
	}

	theme := entities.Theme(raw)
	if !ok || !theme.IsValid() {
		return entities.ThemeSystem, nil
	}
	return theme, nil
}

func (r *ThemeRepositoryImpl) SetTheme(ctx context.Context, theme entities.Theme) error {
	if !theme.IsValid() {
		return entities.ErrInvalidTheme
	}

	if err := r.kv.Set(ctx, ThemeKey, string(theme)); err != nil {
		return fmt.Errorf("set theme: %w", err)
	}
	return nil
}
