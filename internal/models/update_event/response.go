package models

type UpdateEventResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
