package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/domain/entities"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// TrackerHandler handles item, category, favorite and stats requests
type TrackerHandler struct {
	trackerService *services.TrackerService
	logger         *logger.Logger
}

// NewTrackerHandler creates a new tracker handler
func NewTrackerHandler(trackerService *services.TrackerService, logger *logger.Logger) *TrackerHandler {
	return &TrackerHandler{
		trackerService: trackerService,
		logger:         logger,
	}
}

// ListItems handles listing, filtering, searching and sorting items
func (h *TrackerHandler) ListItems(c echo.Context) error {
	var req ports.ListItemsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid query parameters")
	}

	items, err := h.trackerService.ListItems(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("List items failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, items)
}

// CreateItem handles item creation
func (h *TrackerHandler) CreateItem(c echo.Context) error {
	var req ports.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.trackerService.CreateItem(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create item failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, item)
}

// GetItem handles getting an item by ID
func (h *TrackerHandler) GetItem(c echo.Context) error {
	item, err := h.trackerService.GetItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// UpdateItem handles partial item updates
func (h *TrackerHandler) UpdateItem(c echo.Context) error {
	var patch ports.ItemPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	item, err := h.trackerService.UpdateItem(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// ReplaceItem handles full item updates
func (h *TrackerHandler) ReplaceItem(c echo.Context) error {
	var req ports.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.trackerService.ReplaceItem(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, item)
}

// DeleteItem handles item removal
func (h *TrackerHandler) DeleteItem(c echo.Context) error {
	if err := h.trackerService.DeleteItem(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Item deleted"})
}

// ListCategories handles listing categories in insertion order
func (h *TrackerHandler) ListCategories(c echo.Context) error {
	categories, err := h.trackerService.ListCategories(c.Request().Context())
	if err != nil {
		h.logger.Error("List categories failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, categories)
}

// DeleteCategory handles category removal with item cascade
func (h *TrackerHandler) DeleteCategory(c echo.Context) error {
	name := c.Param("name")
	if err := h.trackerService.DeleteCategory(c.Request().Context(), name); err != nil {
		h.logger.Error("Delete category failed", "error", err, "category", name)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted"})
}

// ListFavorites handles listing favorite items
func (h *TrackerHandler) ListFavorites(c echo.Context) error {
	favorites, err := h.trackerService.ListFavorites(c.Request().Context())
	if err != nil {
		h.logger.Error("List favorites failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, favorites)
}

// GetStats handles the stats aggregation
func (h *TrackerHandler) GetStats(c echo.Context) error {
	stats, err := h.trackerService.Stats(c.Request().Context())
	if err != nil {
		h.logger.Error("Get stats failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, stats)
}

// serviceError maps service errors onto HTTP status codes
func serviceError(err error) error {
	switch {
	case errors.Is(err, entities.ErrItemNotFound),
		errors.Is(err, entities.ErrWorkoutNotFound),
		errors.Is(err, entities.ErrWishlistNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, entities.ErrInvalidImport),
		errors.Is(err, entities.ErrInvalidTheme),
		errors.Is(err, entities.ErrInvalidPriority):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// Response types
type MessageResponse struct {
	Message string `json:"message"`
}

type ThemeResponse struct {
	Theme entities.Theme `json:"theme"`
}
