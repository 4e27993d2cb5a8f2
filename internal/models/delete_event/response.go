package models

type DeleteEventResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
