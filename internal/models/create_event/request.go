package models

type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description" binding:"required"`
	Featured    bool   `json:"featured"`
}
