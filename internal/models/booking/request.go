package models

type BookingRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	EventType string `json:"eventType"`
	Message   string `json:"message" binding:"required"`
}
