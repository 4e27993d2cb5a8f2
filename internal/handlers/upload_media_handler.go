package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"io.myazahq.khalidlifestyle/internal/media"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
	uploadmodels "io.myazahq.khalidlifestyle/internal/models/upload_media"
	"io.myazahq.khalidlifestyle/internal/store"
)

// UploadMedia accepts a multipart batch of photos and videos, uploads them to
// the media host one at a time in input order, and appends the stored URLs to
// the event's gallery. Files that fail to upload are skipped; the response
// reports them so the admin can retry.
func (h *EventHandler) UploadMedia(c *gin.Context) {
	id := c.Param("id")

	if _, found, err := h.store.GetByID(c.Request.Context(), id); err != nil {
		h.logError(c, err, "failed to verify event before upload", "event_id", id)
		c.JSON(http.StatusBadGateway, uploadmodels.UploadMediaResponse{Error: "Failed to load event"})
		return
	} else if !found {
		c.JSON(http.StatusNotFound, uploadmodels.UploadMediaResponse{Error: "Event not found"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, uploadmodels.UploadMediaResponse{Error: "Invalid multipart form"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, uploadmodels.UploadMediaResponse{Error: "Please select at least one file to upload"})
		return
	}

	files := make([]media.File, 0, len(headers))
	for _, header := range headers {
		f := media.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}

		if media.ResolveType(f) == eventmodels.MediaTypeUnknown {
			c.JSON(http.StatusBadRequest, uploadmodels.UploadMediaResponse{
				Error: "Unsupported file type: " + header.Filename,
			})
			return
		}
		if ok, msg := media.ValidateSize(f); !ok {
			c.JSON(http.StatusBadRequest, uploadmodels.UploadMediaResponse{Error: msg})
			return
		}

		content, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, uploadmodels.UploadMediaResponse{
				Error: "Failed to read file: " + header.Filename,
			})
			return
		}
		defer content.Close()

		f.Content = content
		files = append(files, f)
	}

	result := h.uploader.UploadMany(c.Request.Context(), files, id, func(current, total int) {
		h.logger.Infow("upload progress", "event_id", id, "current", current, "total", total)
	})

	if len(result.Items) > 0 {
		if err := h.store.AddMedia(c.Request.Context(), id, result.Items); err != nil {
			if errors.Is(err, store.ErrEventNotFound) {
				c.JSON(http.StatusNotFound, uploadmodels.UploadMediaResponse{Error: "Event not found"})
				return
			}
			h.logError(c, err, "failed to attach uploaded media", "event_id", id)
			c.JSON(http.StatusInternalServerError, uploadmodels.UploadMediaResponse{
				Uploaded: result.Items,
				Errors:   result.Errors,
				Error:    "Failed to add media to event",
			})
			return
		}
	}

	c.JSON(http.StatusOK, uploadmodels.UploadMediaResponse{
		Success:  result.Success,
		Uploaded: result.Items,
		Errors:   result.Errors,
	})
}
