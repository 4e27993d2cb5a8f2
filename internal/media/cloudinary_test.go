package media

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"io.myazahq.khalidlifestyle/internal/config"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

func testUploader(t *testing.T, handler http.HandlerFunc) *Uploader {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	u := NewUploader(config.Cloudinary{
		CloudName:    "demo",
		UploadPreset: "unsigned-preset",
		Folder:       "khalid-lifestyle",
	}, zap.NewNop().Sugar())
	u.baseURL = server.URL
	u.client = server.Client()

	return u
}

func TestClassify(t *testing.T) {
	assert.Equal(t, eventmodels.MediaTypeImage, Classify("image/jpeg"))
	assert.Equal(t, eventmodels.MediaTypeImage, Classify("image/heic"))
	assert.Equal(t, eventmodels.MediaTypeVideo, Classify("video/mp4"))
	assert.Equal(t, eventmodels.MediaTypeUnknown, Classify("application/pdf"))
	assert.Equal(t, eventmodels.MediaTypeUnknown, Classify(""))
}

func TestResolveType(t *testing.T) {
	assert.Equal(t, eventmodels.MediaTypeImage, ResolveType(File{Name: "pic.jpg", ContentType: "image/jpeg"}))
	assert.Equal(t, eventmodels.MediaTypeVideo, ResolveType(File{Name: "clip.mp4", ContentType: "video/mp4"}))
	assert.Equal(t, eventmodels.MediaTypeImage, ResolveType(File{Name: "pic.heic", ContentType: "application/octet-stream"}))
	assert.Equal(t, eventmodels.MediaTypeUnknown, ResolveType(File{Name: "doc.pdf", ContentType: "application/pdf"}))
}

func TestValidateSizeBoundaries(t *testing.T) {
	tests := []struct {
		name        string
		fileName    string
		contentType string
		size        int64
		wantValid   bool
		wantInMsg   string
	}{
		{"image at cap", "f.jpg", "image/jpeg", MaxImageSize, true, ""},
		{"image one byte over", "f.jpg", "image/jpeg", MaxImageSize + 1, false, "10MB"},
		{"video at cap", "f.mp4", "video/mp4", MaxVideoSize, true, ""},
		{"video one byte over", "f.mp4", "video/mp4", MaxVideoSize + 1, false, "100MB"},
		{"heic by extension gets image cap", "f.heic", "application/octet-stream", MaxImageSize + 1, false, "10MB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valid, msg := ValidateSize(File{Name: tt.fileName, ContentType: tt.contentType, Size: tt.size})
			assert.Equal(t, tt.wantValid, valid)
			if tt.wantInMsg != "" {
				assert.Contains(t, msg, tt.wantInMsg)
			}
		})
	}
}

func TestIsHEIC(t *testing.T) {
	assert.True(t, IsHEIC(File{Name: "pic.heic", ContentType: "image/heic"}))
	assert.True(t, IsHEIC(File{Name: "pic.HEIF", ContentType: "application/octet-stream"}))
	assert.False(t, IsHEIC(File{Name: "pic.jpg", ContentType: "image/jpeg"}))
}

func TestUploadImageSendsFormFields(t *testing.T) {
	var gotPreset, gotFolder, gotResource, gotPath string

	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotPreset = r.FormValue("upload_preset")
		gotFolder = r.FormValue("folder")
		gotResource = r.FormValue("resource_type")
		gotPath = r.URL.Path
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/pic.jpg"}`)
	})

	url, err := u.UploadImage(context.Background(), File{
		Name:        "pic.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	}, "summer-gala")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/pic.jpg", url)
	assert.Equal(t, "unsigned-preset", gotPreset)
	assert.Equal(t, "khalid-lifestyle/summer-gala", gotFolder)
	assert.Empty(t, gotResource)
	assert.Equal(t, "/demo/image/upload", gotPath)
}

func TestUploadVideoSendsResourceTypeAndVideosFolder(t *testing.T) {
	var gotFolder, gotResource string

	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFolder = r.FormValue("folder")
		gotResource = r.FormValue("resource_type")
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/clip.mp4"}`)
	})

	url, err := u.UploadVideo(context.Background(), File{
		Name:        "clip.mp4",
		ContentType: "video/mp4",
		Content:     strings.NewReader("mp4-bytes"),
	}, "summer-gala")

	require.NoError(t, err)
	assert.Equal(t, "https://res.cloudinary.com/demo/clip.mp4", url)
	assert.Equal(t, "khalid-lifestyle/summer-gala/videos", gotFolder)
	assert.Equal(t, "video", gotResource)
}

func TestUploadImageTranscodesHEIC(t *testing.T) {
	var gotFormat, gotFilename string

	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFormat = r.FormValue("format")
		if files := r.MultipartForm.File["file"]; len(files) == 1 {
			gotFilename = files[0].Filename
		}
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/pic.jpg"}`)
	})

	_, err := u.UploadImage(context.Background(), File{
		Name:        "pic.heic",
		ContentType: "image/heic",
		Content:     strings.NewReader("heic-bytes"),
	}, "summer-gala")

	require.NoError(t, err)
	assert.Equal(t, "jpg", gotFormat)
	assert.Equal(t, "pic.jpg", gotFilename)
}

func TestUploadManyStoresHEICByExtensionAsImage(t *testing.T) {
	var gotFormat string

	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		gotFormat = r.FormValue("format")
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/pic.jpg"}`)
	})

	files := []File{
		{Name: "pic.heic", ContentType: "application/octet-stream", Content: strings.NewReader("heic-bytes")},
	}

	result := u.UploadMany(context.Background(), files, "summer-gala", nil)

	assert.True(t, result.Success)
	require.Len(t, result.Items, 1)
	assert.Equal(t, eventmodels.MediaTypeImage, result.Items[0].Type)
	assert.Equal(t, "jpg", gotFormat)
}

func TestUploadImageNon2xxIsFailure(t *testing.T) {
	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Upload preset not found"}}`)
	})

	_, err := u.UploadImage(context.Background(), File{
		Name:        "pic.jpg",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	}, "summer-gala")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Upload preset not found")
}

func TestUploadManyPartialFailure(t *testing.T) {
	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		name := r.MultipartForm.File["file"][0].Filename
		if name == "second.jpg" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprintf(w, `{"secure_url":"https://res.cloudinary.com/demo/%s"}`, name)
	})

	files := []File{
		{Name: "first.jpg", ContentType: "image/jpeg", Content: strings.NewReader("1")},
		{Name: "second.jpg", ContentType: "image/jpeg", Content: strings.NewReader("2")},
		{Name: "third.mp4", ContentType: "video/mp4", Content: strings.NewReader("3")},
	}

	var progress [][2]int
	result := u.UploadMany(context.Background(), files, "summer-gala", func(current, total int) {
		progress = append(progress, [2]int{current, total})
	})

	assert.False(t, result.Success)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "https://res.cloudinary.com/demo/first.jpg", result.Items[0].Src)
	assert.Equal(t, eventmodels.MediaTypeImage, result.Items[0].Type)
	assert.Equal(t, "https://res.cloudinary.com/demo/third.mp4", result.Items[1].Src)
	assert.Equal(t, eventmodels.MediaTypeVideo, result.Items[1].Type)

	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "second.jpg")

	assert.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, progress)
}

func TestUploadManyStopsOnCancellation(t *testing.T) {
	u := testUploader(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"secure_url":"https://res.cloudinary.com/demo/ok.jpg"}`)
	})

	ctx, cancel := context.WithCancel(context.Background())

	files := []File{
		{Name: "first.jpg", ContentType: "image/jpeg", Content: strings.NewReader("1")},
		{Name: "second.jpg", ContentType: "image/jpeg", Content: strings.NewReader("2")},
		{Name: "third.jpg", ContentType: "image/jpeg", Content: strings.NewReader("3")},
	}

	result := u.UploadMany(ctx, files, "summer-gala", func(current, total int) {
		if current == 1 {
			cancel()
		}
	})

	assert.False(t, result.Success)
	assert.Len(t, result.Items, 1)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "cancelled")
}
