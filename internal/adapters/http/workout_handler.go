package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/activitytracker/core/internal/application/services"
	"github.com/activitytracker/core/internal/infrastructure/logger"
	"github.com/activitytracker/core/internal/ports"
)

// WorkoutHandler handles workout log requests
type WorkoutHandler struct {
	workoutService *services.WorkoutService
	logger         *logger.Logger
}

// NewWorkoutHandler creates a new workout handler
func NewWorkoutHandler(workoutService *services.WorkoutService, logger *logger.Logger) *WorkoutHandler {
	return &WorkoutHandler{
		workoutService: workoutService,
		logger:         logger,
	}
}

// ListWorkouts returns all workout entries
func (h *WorkoutHandler) ListWorkouts(c echo.Context) error {
	workouts, err := h.workoutService.ListWorkouts(c.Request().Context())
	if err != nil {
		h.logger.Error("List workouts failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, workouts)
}

// CreateWorkout appends a new workout entry
func (h *WorkoutHandler) CreateWorkout(c echo.Context) error {
	var req ports.WorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	workout, err := h.workoutService.CreateWorkout(c.Request().Context(), req)
	if err != nil {
		h.logger.Error("Create workout failed", "error", err)
		return serviceError(err)
	}

	return c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout replaces a workout entry
func (h *WorkoutHandler) UpdateWorkout(c echo.Context) error {
	var req ports.WorkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	workout, err := h.workoutService.UpdateWorkout(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes a workout entry
func (h *WorkoutHandler) DeleteWorkout(c echo.Context) error {
	if err := h.workoutService.DeleteWorkout(c.Request().Context(), c.Param("id")); err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Workout deleted"})
}
