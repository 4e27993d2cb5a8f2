package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bookingmodels "io.myazahq.khalidlifestyle/internal/models/booking"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
	inquirymodels "io.myazahq.khalidlifestyle/internal/models/list_inquiries"
	"io.myazahq.khalidlifestyle/internal/store"
)

type BookingHandler struct {
	store  *store.InquiryStore
	logger *zap.SugaredLogger
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(inquiryStore *store.InquiryStore, logger *zap.SugaredLogger) *BookingHandler {
	return &BookingHandler{
		store:  inquiryStore,
		logger: logger,
	}
}

// CreateInquiry stores a booking inquiry from the site's contact form
func (h *BookingHandler) CreateInquiry(c *gin.Context) {
	var req bookingmodels.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, bookingmodels.BookingResponse{Error: "Invalid request format"})
		return
	}

	id, err := h.store.Create(c.Request.Context(), eventmodels.Inquiry{
		Name:      req.Name,
		Email:     req.Email,
		EventType: req.EventType,
		Message:   req.Message,
	})
	if err != nil {
		h.logError(c, err, "failed to store inquiry", "email", req.Email)
		c.JSON(http.StatusInternalServerError, bookingmodels.BookingResponse{Error: "Failed to send inquiry"})
		return
	}

	c.JSON(http.StatusCreated, bookingmodels.BookingResponse{Success: true, ID: id})
}

// ListInquiries returns all inquiries for the admin dashboard, newest first
func (h *BookingHandler) ListInquiries(c *gin.Context) {
	inquiries, err := h.store.ListAll(c.Request.Context())
	if err != nil {
		h.logError(c, err, "failed to list inquiries")
		c.JSON(http.StatusBadGateway, inquirymodels.ListInquiriesResponse{Error: "Failed to load inquiries"})
		return
	}

	c.JSON(http.StatusOK, inquirymodels.ListInquiriesResponse{Inquiries: inquiries})
}
