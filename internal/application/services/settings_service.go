package services

import (
	"context"
	"fmt"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// SettingsService handles the theme preference. The theme lives under its
// own storage key, independent of the document.
type SettingsService struct {
	themes ports.ThemeRepository
	logger *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(themes ports.ThemeRepository, logger *logger.Logger) *SettingsService {
	return &SettingsService{
		themes: themes,
		logger: logger,
	}
}

// GetTheme returns the current theme, defaulting to system
func (s *SettingsService) GetTheme(ctx context.Context) (entities.Theme, error) {
	theme, err := s.themes.GetTheme(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get theme: %w", err)
	}

	return theme, nil
}

// SetTheme updates the theme preference
func (s *SettingsService) SetTheme(ctx context.Context, theme entities.Theme) error {
	if !theme.IsValid() {
		return entities.ErrInvalidTheme
	}

	if err := s.themes.SetTheme(ctx, theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}

	s.logger.Info("Theme changed", "theme", theme)

	return nil
}
