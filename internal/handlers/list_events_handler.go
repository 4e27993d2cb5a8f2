package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
	listmodels "io.myazahq.khalidlifestyle/internal/models/list_events"
	"io.myazahq.khalidlifestyle/internal/projection"
)

// ListEvents returns every event, newest first
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to list events")
		c.JSON(http.StatusBadGateway, listmodels.ListEventsResponse{Error: "Failed to load events"})
		return
	}

	c.JSON(http.StatusOK, listmodels.ListEventsResponse{Events: toViews(events)})
}

// ListUpcomingEvents returns events dated today or later
func (h *EventHandler) ListUpcomingEvents(c *gin.Context) {
	events, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to list upcoming events")
		c.JSON(http.StatusBadGateway, listmodels.ListEventsResponse{Error: "Failed to load events"})
		return
	}

	_, upcoming := projection.SplitPastUpcoming(events, time.Now())
	c.JSON(http.StatusOK, listmodels.ListEventsResponse{Events: toViews(upcoming)})
}

// ListPastEvents returns events dated strictly before today
func (h *EventHandler) ListPastEvents(c *gin.Context) {
	events, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to list past events")
		c.JSON(http.StatusBadGateway, listmodels.ListEventsResponse{Error: "Failed to load events"})
		return
	}

	past, _ := projection.SplitPastUpcoming(events, time.Now())
	c.JSON(http.StatusOK, listmodels.ListEventsResponse{Events: toViews(past)})
}

func toViews(events []eventmodels.Event) []listmodels.EventView {
	views := make([]listmodels.EventView, 0, len(events))
	for _, ev := range events {
		views = append(views, listmodels.EventView{
			Event:         ev,
			DateFormatted: projection.FormatLong(ev.Date),
		})
	}
	return views
}
