package models

import (
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

type AddMediaRequest struct {
	Items []eventmodels.GalleryItem `json:"items" binding:"required,min=1"`
}
