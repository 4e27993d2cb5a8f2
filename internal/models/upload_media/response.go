package models

import (
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

// UploadMediaResponse reports a batch upload. Success is true only when every
// file in the batch was uploaded and appended; partial results are still
// returned so the caller can see what did make it.
type UploadMediaResponse struct {
	Success  bool                      `json:"success"`
	Uploaded []eventmodels.GalleryItem `json:"uploaded"`
	Errors   []string                  `json:"errors,omitempty"`
	Error    string                    `json:"error,omitempty"`
}
