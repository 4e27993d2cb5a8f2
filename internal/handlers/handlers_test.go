package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Request validation rejects before any store or uploader is touched, so the
// handlers can be constructed with nil collaborators here.

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop().Sugar()
	eventHandler := NewEventHandler(nil, nil, logger)
	bookingHandler := NewBookingHandler(nil, logger)

	router := gin.New()
	router.POST("/api/v1/admin/events", eventHandler.CreateEvent)
	router.PATCH("/api/v1/admin/events/:id", eventHandler.UpdateEvent)
	router.DELETE("/api/v1/admin/events/:id/media/:index", eventHandler.RemoveMedia)
	router.POST("/api/v1/admin/events/:id/media/items", eventHandler.AddMedia)
	router.POST("/api/v1/bookings", bookingHandler.CreateInquiry)

	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateEventRejectsMissingRequiredFields(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/admin/events", `{"title":"NYE"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request format")
}

func TestUpdateEventRejectsEmptyPatch(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodPatch, "/api/v1/admin/events/summer-gala", `{}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No fields to update")
}

func TestRemoveMediaRejectsNonNumericIndex(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodDelete, "/api/v1/admin/events/summer-gala/media/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid media index")
}

func TestRemoveMediaRejectsNegativeIndex(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodDelete, "/api/v1/admin/events/summer-gala/media/-1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddMediaRejectsItemWithoutSrc(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/admin/events/summer-gala/media/items",
		`{"items":[{"type":"image","src":"","aspect":"landscape"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "src")
}

func TestAddMediaRejectsUnknownType(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/admin/events/summer-gala/media/items",
		`{"items":[{"type":"gif","src":"https://cdn.example/a.gif","aspect":"square"}]}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "image or video")
}

func TestCreateInquiryRejectsBadEmail(t *testing.T) {
	router := testRouter()

	w := doJSON(router, http.MethodPost, "/api/v1/bookings",
		`{"name":"A Guest","email":"not-an-email","message":"table for ten"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
