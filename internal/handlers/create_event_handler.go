package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	createmodels "io.myazahq.khalidlifestyle/internal/models/create_event"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

// CreateEvent handles creation of new events
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req createmodels.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, createmodels.CreateEventResponse{Error: "Invalid request format"})
		return
	}

	id, createdAt, err := h.store.Create(c.Request.Context(), eventmodels.Event{
		Title:       req.Title,
		Date:        req.Date,
		Location:    req.Location,
		Thumbnail:   req.Thumbnail,
		Description: req.Description,
		Featured:    req.Featured,
	})
	if err != nil {
		h.logError(c, err, "failed to create event", "title", req.Title)
		c.JSON(http.StatusInternalServerError, createmodels.CreateEventResponse{Error: "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, createmodels.CreateEventResponse{
		Success:   true,
		ID:        id,
		CreatedAt: createdAt,
	})
}
