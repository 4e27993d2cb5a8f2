package models

import (
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

type GetEventResponse struct {
	Event         *eventmodels.Event `json:"event,omitempty"`
	DateFormatted string             `json:"dateFormatted,omitempty"`
	Error         string             `json:"error,omitempty"`
}
