package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	addmodels "io.myazahq.khalidlifestyle/internal/models/add_media"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
	"io.myazahq.khalidlifestyle/internal/store"
)

// AddMedia appends already-uploaded gallery items to an event
func (h *EventHandler) AddMedia(c *gin.Context) {
	id := c.Param("id")

	var req addmodels.AddMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, addmodels.AddMediaResponse{Error: "Invalid request format"})
		return
	}

	for _, item := range req.Items {
		if item.Src == "" {
			c.JSON(http.StatusBadRequest, addmodels.AddMediaResponse{Error: "Every item needs a src URL"})
			return
		}
		if item.Type != eventmodels.MediaTypeImage && item.Type != eventmodels.MediaTypeVideo {
			c.JSON(http.StatusBadRequest, addmodels.AddMediaResponse{Error: "Item type must be image or video"})
			return
		}
	}

	if err := h.store.AddMedia(c.Request.Context(), id, req.Items); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, addmodels.AddMediaResponse{Error: "Event not found"})
			return
		}
		h.logError(c, err, "failed to add media", "event_id", id)
		c.JSON(http.StatusInternalServerError, addmodels.AddMediaResponse{Error: "Failed to add media"})
		return
	}

	c.JSON(http.StatusOK, addmodels.AddMediaResponse{Success: true, Count: len(req.Items)})
}
