package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/infrastructure/logger"
)

// BackupHandler handles document export and import
type BackupHandler struct {
	backupService *services.BackupService
	logger        *logger.Logger
}

// NewBackupHandler creates a new backup handler
func NewBackupHandler(backupService *services.BackupService, logger *logger.Logger) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
		logger:        logger,
	}
}

// Export streams the document as a downloadable JSON file with a
// date-stamped filename
func (h *BackupHandler) Export(c echo.Context) error {
	data, filename, err := h.backupService.Export(c.Request().Context())
	if err != nil {
		h.logger.Error("Export failed", "error", err)
		return serviceError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, data)
}

// Import replaces the persisted document with the uploaded JSON. The replace
// is destructive; callers are expected to reload their views afterwards.
func (h *BackupHandler) Import(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Failed to read request body")
	}

	if err := h.backupService.Import(c.Request().Context(), payload); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Import successful"})
}
