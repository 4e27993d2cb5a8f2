package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	updatemodels "io.myazahq.khalidlifestyle/internal/models/update_event"
)

// UpdateEvent merges the supplied fields into an existing event
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var req updatemodels.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, updatemodels.UpdateEventResponse{Error: "Invalid request format"})
		return
	}

	fields := req.Fields()
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, updatemodels.UpdateEventResponse{Error: "No fields to update"})
		return
	}

	// The merge never touches the slug; the id assigned at creation is final.
	if err := h.store.Update(c.Request.Context(), id, fields); err != nil {
		h.logError(c, err, "failed to update event", "event_id", id)
		c.JSON(http.StatusInternalServerError, updatemodels.UpdateEventResponse{Error: "Failed to update event"})
		return
	}

	c.JSON(http.StatusOK, updatemodels.UpdateEventResponse{Success: true})
}
