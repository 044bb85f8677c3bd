package services

import (
	"context"
	"fmt"

	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// ProfileService handles the profile singleton
type ProfileService struct {
	store  ports.DocumentStore
	logger *logger.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(store ports.DocumentStore, logger *logger.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
	}
}

// GetProfile returns the profile, lazily creating it with empty defaults on
// first read
func (s *ProfileService) GetProfile(ctx context.Context) (*entities.Profile, error) {
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return profile, nil
}

// SaveProfile replaces the profile wholesale. Image and join date are kept
// from the stored profile unless the request overwrites them.
func (s *ProfileService) SaveProfile(ctx context.Context, req ports.SaveProfileRequest) (*entities.Profile, error) {
	current, err := s.store.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile := entities.Profile{
		Name:     req.Name,
		Username: req.Username,
		Tagline:  req.Tagline,
		Image:    current.Image,
		JoinDate: current.JoinDate,
	}
	if req.Image != nil {
		profile.Image = *req.Image
	}
	if req.JoinDate != nil {
		profile.JoinDate = *req.JoinDate
	}

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info("Profile saved", "username", profile.Username)

	return &profile, nil
}
