package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	removemodels "io.myazahq.khalidlifestyle/internal/models/remove_media"
	"io.myazahq.khalidlifestyle/internal/store"
)

// RemoveMedia drops the gallery item at a positional index. The index counts
// against the sequence as stored when the request lands, not a stable item
// id, so a removal racing an append can hit a different item than the admin
// saw.
func (h *EventHandler) RemoveMedia(c *gin.Context) {
	id := c.Param("id")

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, removemodels.RemoveMediaResponse{Error: "Invalid media index"})
		return
	}

	if err := h.store.RemoveMedia(c.Request.Context(), id, index); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, removemodels.RemoveMediaResponse{Error: "Event not found"})
			return
		}
		h.logError(c, err, "failed to remove media", "event_id", id, "index", index)
		c.JSON(http.StatusInternalServerError, removemodels.RemoveMediaResponse{Error: "Failed to remove media"})
		return
	}

	c.JSON(http.StatusOK, removemodels.RemoveMediaResponse{Success: true})
}
