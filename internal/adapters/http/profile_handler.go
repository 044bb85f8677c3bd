package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// ProfileHandler handles profile requests
type ProfileHandler struct {
	profileService *services.ProfileService
	logger         *logger.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *services.ProfileService, logger *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		logger:         logger,
	}
}

// GetProfile returns the profile, creating it with empty defaults first time
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	profile, err := h.profileService.GetProfile(c.Request().Context())
	if err != nil {
		h.logger.Error("Get profile failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, profile)
}

// SaveProfile replaces the profile
func (h *ProfileHandler) SaveProfile(c echo.Context) error {
	var req ports.SaveProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	profile, err := h.profileService.SaveProfile(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Save profile failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, profile)
}
