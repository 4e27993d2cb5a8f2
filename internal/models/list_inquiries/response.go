package models

import (
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

type ListInquiriesResponse struct {
	Inquiries []eventmodels.Inquiry `json:"inquiries"`
	Error     string                `json:"error,omitempty"`
}
