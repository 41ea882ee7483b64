package handlers

import (
	"errors"
	"net/http"

	"bloodlink_backend/internal/services"
	"bloodlink_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler holds the donation event service.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// CreateEvent posts a new donation drive. The creator is taken from the token.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	creatorName := c.GetString("fullName")
	creatorID := c.GetString("donorID")

	event, err := h.eventService.Create(req, creatorName, creatorID)
	if err != nil {
		if respondValidation(c, err) {
			return
		}
		if errors.Is(err, services.ErrEventDateInPast) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Event date cannot be in the past.", err.Error()))
			return
		}
		utils.LogError(err, "CreateEvent: Error from eventService.Create")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create event.", "Internal error"))
		return
	}
	c.JSON(http.StatusCreated, event)
}

// ListEvents returns upcoming events, soonest first, with countdown labels
// and poster QR code links. Expired events are pruned on the way out.
func (h *EventHandler) ListEvents(c *gin.Context) {
	views, err := h.eventService.List()
	if err != nil {
		utils.LogError(err, "ListEvents: Error from eventService.List")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch events.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": views, "count": len(views)})
}
