package models

type RemoveMediaResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
