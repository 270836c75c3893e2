package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"TripPlanner-App/internal/domain/model"
	"TripPlanner-App/internal/usecase"
)

// PlanHandler serves the trip-planning endpoint.
type PlanHandler struct {
	planningUseCase usecase.TripPlanningUseCase
}

func NewPlanHandler(planningUseCase usecase.TripPlanningUseCase) *PlanHandler {
	return &PlanHandler{planningUseCase: planningUseCase}
}

// PostPlanTrip runs the planning workflow.
// POST /api/trips/plan
func (h *PlanHandler) PostPlanTrip(c *gin.Context) {
	var req model.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": err.Error(),
		})
		return
	}

	response, err := h.planningUseCase.PlanTrip(c.Request.Context(), &req)
	if err != nil {
		status, message := planErrorStatus(err)
		c.JSON(status, gin.H{
			"error":   message,
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// planErrorStatus maps planning failures to HTTP statuses. Location and
// routing failures are user-correctable, everything else is a server error.
func planErrorStatus(err error) (int, string) {
	var vErr *model.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, "validation failed"
	}
	msg := err.Error()
	if strings.Contains(msg, "could not be found") {
		return http.StatusBadRequest, "location lookup failed"
	}
	if strings.Contains(msg, "no route found") {
		return http.StatusBadRequest, "no route found"
	}
	return http.StatusInternalServerError, "trip planning failed"
}
