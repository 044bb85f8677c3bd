package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// WishlistHandler handles wishlist requests
type WishlistHandler struct {
	wishlistService *services.WishlistService
	logger          *logger.Logger
}

// NewWishlistHandler creates a new wishlist handler
func NewWishlistHandler(wishlistService *services.WishlistService, logger *logger.Logger) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		logger:          logger,
	}
}

// ListWishlist returns all wishlist entries
func (h *WishlistHandler) ListWishlist(c echo.Context) error {
	entries, err := h.wishlistService.ListWishlist(c.Request().Context())
	if err != nil {
		h.logger.Error("List wishlist failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, entries)
}

// CreateEntry appends a new wishlist entry
func (h *WishlistHandler) CreateEntry(c echo.Context) error {
	var req ports.CreateWishlistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	entry, err := h.wishlistService.CreateEntry(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create wishlist entry failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, entry)
}

// UpdateEntry applies a partial wishlist update
func (h *WishlistHandler) UpdateEntry(c echo.Context) error {
	var patch ports.WishlistPatch
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	entry, err := h.wishlistService.UpdateEntry(c.Request().Context(), c.Param("id"), patch)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes a wishlist entry
func (h *WishlistHandler) DeleteEntry(c echo.Context) error {
	if err := h.wishlistService.DeleteEntry(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Wishlist entry deleted"})
}

// ListCategories returns the suggested defaults merged with in-use values
func (h *WishlistHandler) ListCategories(c echo.Context) error {
	categories, err := h.wishlistService.ListCategories(c.Request().Context())
	if err != nil {
		h.logger.Error("List wishlist categories failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, categories)
}
