package dto

import (
	"time"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/helpers"
)

// CreateEventRequest carries the fields of a new campus event.
type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	EventType   string    `json:"eventType"`
	Organizer   string    `json:"organizer"`
}

// UpdateEventRequest carries a full event replacement.
type UpdateEventRequest struct {
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Date        time.Time `json:"date" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	EventType   string    `json:"eventType"`
	Organizer   string    `json:"organizer"`
}

// EventResponse is the API representation of an event. The date is stored as
// an instant; FormattedDate is the long-form rendering done at display time.
type EventResponse struct {
	*models.Event
	FormattedDate string `json:"formattedDate" example:"January 5, 2025"`
}

// NewEventResponse wraps an event with its display-time date rendering.
func NewEventResponse(e *models.Event) *EventResponse {
	return &EventResponse{Event: e, FormattedDate: helpers.FormatLongDate(e.Date)}
}

// NewEventListResponse maps an event slice to API representations.
func NewEventListResponse(events []*models.Event) []*EventResponse {
	out := make([]*EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
