package models

import "time"

type CreateEventResponse struct {
	Success   bool      `json:"success"`
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	Error     string    `json:"error,omitempty"`
}
