package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	deletemodels "io.myazahq.khalidlifestyle/internal/models/delete_event"
)

// DeleteEvent removes an event. Deleting an already-deleted id still succeeds.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	if err := h.store.Delete(c.Request.Context(), id); err != nil {
		h.logError(c, err, "failed to delete event", "event_id", id)
		c.JSON(http.StatusInternalServerError, deletemodels.DeleteEventResponse{Error: "Failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, deletemodels.DeleteEventResponse{Success: true})
}
