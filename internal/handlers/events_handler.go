package handlers

import (
	"go.uber.org/zap"

	"io.myazahq.khalidlifestyle/internal/media"
	"io.myazahq.khalidlifestyle/internal/store"
)

type EventHandler struct {
	store    *store.EventStore
	uploader *media.Uploader
	logger   *zap.SugaredLogger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventStore *store.EventStore, uploader *media.Uploader, logger *zap.SugaredLogger) *EventHandler {
	return &EventHandler{
		store:    eventStore,
		uploader: uploader,
		logger:   logger,
	}
}
