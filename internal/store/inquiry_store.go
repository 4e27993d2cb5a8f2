package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
)

const inquiriesCollection = "inquiries"

// InquiryStore persists booking inquiries from the site's contact form.
type InquiryStore struct {
	fs     *firestore.Client
	logger *zap.SugaredLogger
}

// NewInquiryStore creates a new inquiry store
func NewInquiryStore(fs *firestore.Client, logger *zap.SugaredLogger) *InquiryStore {
	return &InquiryStore{
		fs:     fs,
		logger: logger,
	}
}

// Create stores an inquiry under a fresh uuid and returns it.
func (s *InquiryStore) Create(ctx context.Context, inq eventmodels.Inquiry) (string, error) {
	id := uuid.New().String()

	doc := map[string]interface{}{
		"name":      inq.Name,
		"email":     inq.Email,
		"eventType": inq.EventType,
		"message":   inq.Message,
		"createdAt": time.Now(),
	}

	if _, err := s.fs.Collection(inquiriesCollection).Doc(id).Create(ctx, doc); err != nil {
		return "", fmt.Errorf("failed to create inquiry: %w", err)
	}

	return id, nil
}

// ListAll returns every inquiry, newest first, for the admin dashboard.
func (s *InquiryStore) ListAll(ctx context.Context) ([]eventmodels.Inquiry, error) {
	iter := s.fs.Collection(inquiriesCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	inquiries := []eventmodels.Inquiry{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list inquiries: %w", err)
		}

		data := doc.Data()
		inq := eventmodels.Inquiry{
			ID:        doc.Ref.ID,
			Name:      stringField(data, "name"),
			Email:     stringField(data, "email"),
			EventType: stringField(data, "eventType"),
			Message:   stringField(data, "message"),
		}
		if createdAt, ok := data["createdAt"].(time.Time); ok {
			inq.CreatedAt = createdAt
		}
		inquiries = append(inquiries, inq)
	}

	return inquiries, nil
}
