package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

func TestProfileServiceLazyCreation(t *testing.T) {
	svc := NewProfileService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.Name)
	assert.False(t, profile.JoinDate.IsZero())
}

func TestProfileServiceSavePreservesImageAndJoinDate(t *testing.T) {
	svc := NewProfileService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	image := "data:image/png;base64,abc"
	first, err := svc.SaveProfile(ctx, ports.SaveProfileRequest{
		Name:     "Ayla",
		Username: "ayla",
		Image:    &image,
	})
	require.NoError(t, err)
	assert.Equal(t, image, first.Image)

	// A later save without image keeps the stored one
	second, err := svc.SaveProfile(ctx, ports.SaveProfileRequest{
		Name:     "Ayla",
		Username: "ayla",
		Tagline:  "one chapter at a time",
	})
	require.NoError(t, err)
	assert.Equal(t, image, second.Image)
	assert.Equal(t, first.JoinDate, second.JoinDate)
	assert.Equal(t, "one chapter at a time", second.Tagline)
}

func TestProfileServiceSaveOverridesJoinDate(t *testing.T) {
	svc := NewProfileService(newTestStore(), logger.NewNop())
	ctx := context.Background()

	join := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)
	profile, err := svc.SaveProfile(ctx, ports.SaveProfileRequest{
		Name:     "Ayla",
		JoinDate: &join,
	})
	require.NoError(t, err)
	assert.Equal(t, join, profile.JoinDate)

	fetched, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, join, fetched.JoinDate)
}
