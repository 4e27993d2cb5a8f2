package models

// UpdateEventRequest carries a partial update; nil fields are left untouched.
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
	Thumbnail   *string `json:"thumbnail"`
	Description *string `json:"description"`
	Featured    *bool   `json:"featured"`
}

// Fields flattens the set fields into the partial-update map the store expects.
func (r UpdateEventRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if r.Title != nil {
		fields["title"] = *r.Title
	}
	if r.Date != nil {
		fields["date"] = *r.Date
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	if r.Thumbnail != nil {
		fields["thumbnail"] = *r.Thumbnail
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Featured != nil {
		fields["featured"] = *r.Featured
	}
	return fields
}
