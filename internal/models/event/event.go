package models

import "time"

// Media types for gallery items
const (
	MediaTypeImage   = "image"
	MediaTypeVideo   = "video"
	MediaTypeUnknown = "unknown"
)

// Aspect hints for gallery display; storage and retrieval ignore them
const (
	AspectPortrait  = "portrait"
	AspectLandscape = "landscape"
	AspectSquare    = "square"
)

type GalleryItem struct {
	Type   string `json:"type" firestore:"type"`
	Src    string `json:"src" firestore:"src"`
	Aspect string `json:"aspect" firestore:"aspect"`
}

type Event struct {
	ID          string        `json:"id" firestore:"-"`
	Title       string        `json:"title" firestore:"title"`
	Date        string        `json:"date" firestore:"date"`
	Location    string        `json:"location" firestore:"location"`
	Thumbnail   string        `json:"thumbnail" firestore:"thumbnail"`
	Description string        `json:"description" firestore:"description"`
	Items       []GalleryItem `json:"items" firestore:"items"`
	Featured    bool          `json:"featured" firestore:"featured"`
	CreatedAt   time.Time     `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" firestore:"updatedAt"`
}

type Inquiry struct {
	ID        string    `json:"id" firestore:"-"`
	Name      string    `json:"name" firestore:"name"`
	Email     string    `json:"email" firestore:"email"`
	EventType string    `json:"eventType" firestore:"eventType"`
	Message   string    `json:"message" firestore:"message"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`
}
