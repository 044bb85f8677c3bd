package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// SettingsHandler handles theme preference requests
type SettingsHandler struct {
	settingsService *services.SettingsService
	logger          *logger.Logger
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService, logger *logger.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		logger:          logger,
	}
}

// GetTheme returns the current theme
func (h *SettingsHandler) GetTheme(c echo.Context) error {
	theme, err := h.settingsService.GetTheme(c.Request().Context())
	if err != nil {
		h.logger.Error("Get theme failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ThemeResponse{Theme: theme})
}

// SetTheme updates the theme preference
func (h *SettingsHandler) SetTheme(c echo.Context) error {
	var req ports.SetThemeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.settingsService.SetTheme(c.Request().Context(), req.Theme); err != nil {
		h.logger.Error("Set theme failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, ThemeResponse{Theme: req.Theme})
}
