package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"io.myazahq.khalidlifestyle/internal/cache"
	eventmodels "io.myazahq.khalidlifestyle/internal/models/event"
	"io.myazahq.khalidlifestyle/internal/projection"
	"io.myazahq.khalidlifestyle/internal/slug"
)

const (
	eventsCollection = "events"

	allEventsKey   = "events:all"
	eventKeyPrefix = "events:id:"
)

// ErrEventNotFound is returned by media operations targeting a missing event.
var ErrEventNotFound = errors.New("event not found")

// EventStore translates between the normalized Event shape and the events
// collection, reading through the query cache and invalidating it on writes.
type EventStore struct {
	fs     *firestore.Client
	cache  cache.Cache
	logger *zap.SugaredLogger
}

// NewEventStore creates a new event store
func NewEventStore(fs *firestore.Client, c cache.Cache, logger *zap.SugaredLogger) *EventStore {
	return &EventStore{
		fs:     fs,
		cache:  c,
		logger: logger,
	}
}

// Create assigns a slug derived from the title, writes the document with an
// empty gallery, and returns the new id. The slug never changes afterwards.
func (s *EventStore) Create(ctx context.Context, ev eventmodels.Event) (string, time.Time, error) {
	id, err := slug.Unique(ctx, ev.Title, s.slugExists)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to derive event id: %w", err)
	}

	now := time.Now()
	doc := map[string]interface{}{
		"title":       ev.Title,
		"date":        ev.Date,
		"location":    ev.Location,
		"thumbnail":   ev.Thumbnail,
		"description": ev.Description,
		"featured":    ev.Featured,
		"items":       []eventmodels.GalleryItem{},
		"createdAt":   now,
		"updatedAt":   now,
	}

	if _, err := s.fs.Collection(eventsCollection).Doc(id).Create(ctx, doc); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to create event: %w", err)
	}

	s.invalidate(ctx)
	return id, now, nil
}

// GetAll returns every event ordered by creation time, newest first. A read
// failure is returned as an error so callers can render it distinctly from a
// confirmed-empty listing.
func (s *EventStore) GetAll(ctx context.Context) ([]eventmodels.Event, error) {
	var cached []eventmodels.Event
	if hit, err := s.cache.Get(ctx, allEventsKey, &cached); err == nil && hit {
		return cached, nil
	} else if err != nil {
		s.logger.Warnw("event list cache read failed", "error", err)
	}

	iter := s.fs.Collection(eventsCollection).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	events := []eventmodels.Event{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		events = append(events, docToEvent(doc))
	}

	if err := s.cache.Set(ctx, allEventsKey, events); err != nil {
		s.logger.Warnw("event list cache write failed", "error", err)
	}

	return events, nil
}

// GetByID returns the event with the given slug. found is false on a
// confirmed miss; err is non-nil only when the read itself failed.
func (s *EventStore) GetByID(ctx context.Context, id string) (eventmodels.Event, bool, error) {
	key := eventKeyPrefix + id

	var cached eventmodels.Event
	if hit, err := s.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, true, nil
	} else if err != nil {
		s.logger.Warnw("event cache read failed", "id", id, "error", err)
	}

	ev, found, err := s.fetch(ctx, id)
	if err != nil || !found {
		return eventmodels.Event{}, found, err
	}

	if err := s.cache.Set(ctx, key, ev); err != nil {
		s.logger.Warnw("event cache write failed", "id", id, "error", err)
	}

	return ev, true, nil
}

// Update merges only the supplied fields into the document and stamps the
// update time. Merging into a missing id creates a partial document, matching
// the underlying store's upsert semantics; callers that care check existence
// first.
func (s *EventStore) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}

	merged := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updatedAt"] = time.Now()

	if _, err := s.fs.Collection(eventsCollection).Doc(id).Set(ctx, merged, firestore.MergeAll); err != nil {
		return fmt.Errorf("failed to update event %s: %w", id, err)
	}

	s.invalidate(ctx)
	return nil
}

// Delete removes the event document. Deleting an id that does not exist still
// succeeds.
func (s *EventStore) Delete(ctx context.Context, id string) error {
	if _, err := s.fs.Collection(eventsCollection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete event %s: %w", id, err)
	}

	s.invalidate(ctx)
	return nil
}

// AddMedia appends items to the end of the event's gallery. The gallery is
// replaced wholesale on write, so two concurrent media writes on one event
// can lose one side's update; there is no concurrency token in this design.
func (s *EventStore) AddMedia(ctx context.Context, id string, items []eventmodels.GalleryItem) error {
	ev, found, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEventNotFound
	}

	return s.Update(ctx, id, map[string]interface{}{
		"items": appendItems(ev.Items, items),
	})
}

// RemoveMedia drops the gallery item at index, counted against the sequence
// as stored right now. An out-of-range index removes nothing and is not an
// error.
func (s *EventStore) RemoveMedia(ctx context.Context, id string, index int) error {
	ev, found, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return ErrEventNotFound
	}

	return s.Update(ctx, id, map[string]interface{}{
		"items": removeAt(ev.Items, index),
	})
}

// fetch reads the document directly, bypassing the cache, so read-modify-write
// cycles see the stored sequence rather than a memoized one.
func (s *EventStore) fetch(ctx context.Context, id string) (eventmodels.Event, bool, error) {
	doc, err := s.fs.Collection(eventsCollection).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return eventmodels.Event{}, false, nil
	}
	if err != nil {
		return eventmodels.Event{}, false, fmt.Errorf("failed to fetch event %s: %w", id, err)
	}

	return docToEvent(doc), true, nil
}

func (s *EventStore) slugExists(ctx context.Context, candidate string) (bool, error) {
	_, err := s.fs.Collection(eventsCollection).Doc(candidate).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check slug %s: %w", candidate, err)
	}
	return true, nil
}

func (s *EventStore) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warnw("event cache invalidation failed", "error", err)
	}
}

// appendItems returns the gallery with newItems appended in order.
func appendItems(existing, newItems []eventmodels.GalleryItem) []eventmodels.GalleryItem {
	merged := make([]eventmodels.GalleryItem, 0, len(existing)+len(newItems))
	merged = append(merged, existing...)
	merged = append(merged, newItems...)
	return merged
}

// removeAt returns the gallery without the element at index; out-of-range
// indexes leave it unchanged.
func removeAt(items []eventmodels.GalleryItem, index int) []eventmodels.GalleryItem {
	kept := make([]eventmodels.GalleryItem, 0, len(items))
	for i, item := range items {
		if i == index {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// docToEvent converts a raw document into the normalized event shape every
// consumer sees. Dates stored as provider timestamps and dates stored as ISO
// strings both come out as YYYY-MM-DD.
func docToEvent(doc *firestore.DocumentSnapshot) eventmodels.Event {
	data := doc.Data()

	ev := eventmodels.Event{
		ID:          doc.Ref.ID,
		Title:       stringField(data, "title"),
		Date:        projection.NormalizeDate(data["date"]),
		Location:    stringField(data, "location"),
		Thumbnail:   stringField(data, "thumbnail"),
		Description: stringField(data, "description"),
		Items:       itemsField(data["items"]),
	}

	if featured, ok := data["featured"].(bool); ok {
		ev.Featured = featured
	}
	if createdAt, ok := data["createdAt"].(time.Time); ok {
		ev.CreatedAt = createdAt
	}
	if updatedAt, ok := data["updatedAt"].(time.Time); ok {
		ev.UpdatedAt = updatedAt
	}

	return ev
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}

func itemsField(v interface{}) []eventmodels.GalleryItem {
	raw, ok := v.([]interface{})
	if !ok {
		return []eventmodels.GalleryItem{}
	}

	items := make([]eventmodels.GalleryItem, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]interface{})
		if !ok {
			continue
		}
		items = append(items, eventmodels.GalleryItem{
			Type:   stringField(fields, "type"),
			Src:    stringField(fields, "src"),
			Aspect: stringField(fields, "aspect"),
		})
	}
	return items
}
