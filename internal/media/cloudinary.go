// Package media validates uploaded files and delivers them to Cloudinary,
// returning the durable URLs the gallery stores.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"io.myazahq.khalidlifestyle/internal/config"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

// Size caps are advisory, checked before the upload is attempted. The video
// boundary is inclusive: a file of exactly the cap passes.
const (
	MaxImageSize = 10 * 1024 * 1024
	MaxVideoSize = 100 * 1024 * 1024
)

const defaultBaseURL = "https://api.cloudinary.com/v1_1"

// File is one upload candidate.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

// BatchResult reports a sequential batch upload. URLs and Errors are partial
// on failure: callers decide whether partial success is acceptable.
type BatchResult struct {
	Success bool
	Items   []eventmodels.GalleryItem
	Errors  []string
}

// ProgressFunc is called after each attempted upload, in input order.
type ProgressFunc func(current, total int)

type Uploader struct {
	client       *http.Client
	baseURL      string
	cloudName    string
	uploadPreset string
	folder       string
	logger       *zap.SugaredLogger
}

// NewUploader creates a new Cloudinary uploader
func NewUploader(cfg config.Cloudinary, logger *zap.SugaredLogger) *Uploader {
	return &Uploader{
		client:       &http.Client{Timeout: 120 * time.Second},
		baseURL:      defaultBaseURL,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		folder:       cfg.Folder,
		logger:       logger,
	}
}

// Classify buckets a file by its declared content type.
func Classify(contentType string) string {
	switch {
	case strings.HasPrefix(contentType, "image/"):
		return eventmodels.MediaTypeImage
	case strings.HasPrefix(contentType, "video/"):
		return eventmodels.MediaTypeVideo
	default:
		return eventmodels.MediaTypeUnknown
	}
}

// ResolveType is Classify with a fallback for HEIC files that arrive with a
// generic content type: the extension still marks them as images, and they are
// delivered as JPEG on upload.
func ResolveType(f File) string {
	mediaType := Classify(f.ContentType)
	if mediaType == eventmodels.MediaTypeUnknown && IsHEIC(f) {
		return eventmodels.MediaTypeImage
	}
	return mediaType
}

// ValidateSize checks a file against the cap for its media type and returns a
// human-readable rejection message when it is over.
func ValidateSize(f File) (bool, string) {
	maxSize := int64(MaxVideoSize)
	maxLabel := "100MB"
	if ResolveType(f) == eventmodels.MediaTypeImage {
		maxSize = MaxImageSize
		maxLabel = "10MB"
	}

	if f.Size > maxSize {
		return false, fmt.Sprintf("File size exceeds %s. Please choose a smaller file.", maxLabel)
	}
	return true, ""
}

// IsHEIC reports whether the file is a high-efficiency image container, which
// browsers outside Safari cannot render.
func IsHEIC(f File) bool {
	switch strings.ToLower(f.ContentType) {
	case "image/heic", "image/heif":
		return true
	}
	ext := strings.ToLower(path.Ext(f.Name))
	return ext == ".heic" || ext == ".heif"
}

// UploadImage sends one image to Cloudinary under the event's folder and
// returns the secure URL. HEIC input is delivered as JPEG so the stored asset
// is viewable everywhere.
func (u *Uploader) UploadImage(ctx context.Context, f File, eventID string) (string, error) {
	format := ""
	if IsHEIC(f) {
		format = "jpg"
		f.Name = strings.TrimSuffix(f.Name, path.Ext(f.Name)) + ".jpg"
	}
	return u.upload(ctx, f, fmt.Sprintf("%s/%s", u.folder, eventID), "image", format)
}

// UploadVideo sends one video to Cloudinary under the event's videos folder
func (u *Uploader) UploadVideo(ctx context.Context, f File, eventID string) (string, error) {
	return u.upload(ctx, f, fmt.Sprintf("%s/%s/videos", u.folder, eventID), "video", "")
}

// UploadMany uploads files one at a time, strictly in input order, invoking
// onProgress after each attempt. It stops early if ctx is cancelled; items
// uploaded before the cancellation point are still returned.
func (u *Uploader) UploadMany(ctx context.Context, files []File, eventID string, onProgress ProgressFunc) BatchResult {
	result := BatchResult{Items: []eventmodels.GalleryItem{}}

	for i, f := range files {
		if err := ctx.Err(); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("upload cancelled: %v", err))
			break
		}

		mediaType := ResolveType(f)

		var url string
		var err error
		if mediaType == eventmodels.MediaTypeVideo {
			url, err = u.UploadVideo(ctx, f, eventID)
		} else {
			url, err = u.UploadImage(ctx, f, eventID)
		}

		if err != nil {
			u.logger.Errorw("file upload failed", "file", f.Name, "event_id", eventID, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %v", f.Name, err))
		} else {
			result.Items = append(result.Items, eventmodels.GalleryItem{
				Type:   mediaType,
				Src:    url,
				Aspect: eventmodels.AspectLandscape,
			})
		}

		if onProgress != nil {
			onProgress(i+1, len(files))
		}
	}

	result.Success = len(result.Errors) == 0
	return result
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *Uploader) upload(ctx context.Context, f File, folder, resourceType, format string) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", f.Name)
	if err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := io.Copy(part, f.Content); err != nil {
		return "", fmt.Errorf("failed to read %s: %w", f.Name, err)
	}

	fields := map[string]string{
		"upload_preset": u.uploadPreset,
		"folder":        folder,
	}
	if resourceType == "video" {
		fields["resource_type"] = "video"
	}
	if format != "" {
		fields["format"] = format
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return "", fmt.Errorf("failed to build upload form: %w", err)
		}
	}
	if err := form.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload form: %w", err)
	}

	endpoint := fmt.Sprintf("%s/%s/%s/upload", u.baseURL, u.cloudName, resourceType)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil && resp.StatusCode < 300 {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if parsed.Error.Message != "" {
			return "", fmt.Errorf("upload failed with status %d: %s", resp.StatusCode, parsed.Error.Message)
		}
		return "", fmt.Errorf("upload failed with status %d", resp.StatusCode)
	}

	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	return parsed.SecureURL, nil
}
