package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/usecase"
)

// TripsHandler serves the trip persistence endpoints. The owner is taken from
// the authenticated context, never from the payload.
type TripsHandler struct {
	tripsUseCase usecase.TripsUseCase
}

func NewTripsHandler(tripsUseCase usecase.TripsUseCase) *TripsHandler {
	return &TripsHandler{tripsUseCase: tripsUseCase}
}

// PostTrip saves a planned trip.
// POST /api/trips
func (h *TripsHandler) PostTrip(c *gin.Context) {
	var trip model.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	saved, err := h.tripsUseCase.SaveTrip(c.Request.Context(), ownerID(c), &trip)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save trip",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, saved)
}

// PatchTrip rewrites an existing trip.
// PATCH /api/trips/:id
func (h *TripsHandler) PatchTrip(c *gin.Context) {
	var trip model.Trip
	if err := c.ShouldBindJSON(&trip); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	updated, err := h.tripsUseCase.UpdateTrip(c.Request.Context(), c.Param("id"), ownerID(c), &trip)
	if err != nil {
		var vErr *model.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "trip not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to update trip",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// GetTrips lists the caller's trips as summaries.
// GET /api/trips
func (h *TripsHandler) GetTrips(c *gin.Context) {
	trips, err := h.tripsUseCase.ListTrips(c.Request.Context(), ownerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to list trips",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip returns a full trip record plus a fresh forecast.
// GET /api/trips/:id
func (h *TripsHandler) GetTrip(c *gin.Context) {
	result, err := h.tripsUseCase.GetTrip(c.Request.Context(), c.Param("id"), ownerID(c))
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "trip not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to get trip",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteTrip removes a trip.
// DELETE /api/trips/:id
func (h *TripsHandler) DeleteTrip(c *gin.Context) {
	if err := h.tripsUseCase.DeleteTrip(c.Request.Context(), c.Param("id"), ownerID(c)); err != nil {
		if strings.Contains(err.Error(), "not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "trip not found",
				"details": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to delete trip",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// ownerID reads the authenticated user set by the auth middleware.
func ownerID(c *gin.Context) string {
	return c.GetString("user_id")
}
