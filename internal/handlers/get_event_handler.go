package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	getmodels "io.myazahq.khalidlifestyle/internal/models/get_event"
	"io.myazahq.khalidlifestyle/internal/projection"
)

// GetEvent returns one event by its slug
func (h *EventHandler) GetEvent(c *gin.Context) {
	id := c.Param("id")

	ev, found, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		h.logError(c, err, "failed to get event", "event_id", id)
		c.JSON(http.StatusBadGateway, getmodels.GetEventResponse{Error: "Failed to load event"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, getmodels.GetEventResponse{Error: "Event not found"})
		return
	}

	c.JSON(http.StatusOK, getmodels.GetEventResponse{
		Event:         &ev,
		DateFormatted: projection.FormatLong(ev.Date),
	})
}
