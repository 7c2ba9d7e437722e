package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/app/models/dto"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/helpers"
)

// EventRepository is the persistence surface the event service depends on.
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id int64) error
}

// EventService defines the interface for campus event operations
type EventService interface {
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	GetEventByID(ctx context.Context, id int64) (*models.Event, error)
	ListEvents(ctx context.Context, search string) ([]*models.Event, error)
	UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

// eventServiceImpl implements the EventService interface
type eventServiceImpl struct {
	eventRepo EventRepository
}

// NewEventService creates a new event service instance
func NewEventService(eventRepo EventRepository) EventService {
	return &eventServiceImpl{
		eventRepo: eventRepo,
	}
}

// CreateEvent creates a new campus event.
func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", apperrors.ErrValidationFailed)
	}

	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		EventType:   req.EventType,
		Organizer:   req.Organizer,
	}

	id, err := s.eventRepo.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}

	event.ID = id
	return event, nil
}

// GetEventByID retrieves one event.
func (s *eventServiceImpl) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}
	return s.eventRepo.GetByID(ctx, id)
}

// ListEvents returns all events, filtered by the optional search query over
// title, description, display date, location, type and organizer.
func (s *eventServiceImpl) ListEvents(ctx context.Context, search string) ([]*models.Event, error) {
	events, err := s.eventRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving events: %w", err)
	}
	if search == "" {
		return events, nil
	}

	filtered := []*models.Event{}
	for _, event := range events {
		if matchesSearch(search,
			event.Title, event.Description, helpers.FormatLongDate(event.Date),
			event.Location, event.EventType, event.Organizer,
		) {
			filtered = append(filtered, event)
		}
	}
	return filtered, nil
}

// UpdateEvent replaces an event's fields and returns the updated event.
func (s *eventServiceImpl) UpdateEvent(ctx context.Context, id int64, req *dto.UpdateEventRequest) (*models.Event, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}
	if req == nil {
		return nil, fmt.Errorf("%w: request is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidationFailed)
	}

	event := &models.Event{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		EventType:   req.EventType,
		Organizer:   req.Organizer,
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByID(ctx, id)
}

// DeleteEvent removes an event.
func (s *eventServiceImpl) DeleteEvent(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid event ID", apperrors.ErrValidationFailed)
	}
	return s.eventRepo.Delete(ctx, id)
}
