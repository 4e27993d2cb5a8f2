package models

import (
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

type EventView struct {
	eventmodels.Event
	DateFormatted string `json:"dateFormatted,omitempty"`
}

type ListEventsResponse struct {
	Events []EventView `json:"events"`
	Error  string      `json:"error,omitempty"`
}
