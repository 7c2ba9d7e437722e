package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rtorralba/schooldesk/internal/app/models"
	"github.com/rtorralba/schooldesk/internal/pkg/apperrors"
	"github.com/rtorralba/schooldesk/internal/pkg/logger"
)

// EventRepository handles campus event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new event and returns its ID.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	now := time.Now()
	sqlStr, args, err := r.sb.Insert("events").
		Columns("title", "description", "date", "location", "event_type", "organizer", "created_at", "updated_at").
		Values(event.Title, event.Description, event.Date, event.Location, event.EventType, event.Organizer, now, now).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create event SQL")
		return 0, fmt.Errorf("failed to build create event query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sqlStr, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return 0, fmt.Errorf("error creating event: %w", err)
	}

	return id, nil
}

// GetByID retrieves an event by ID.
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	sqlStr, args, err := r.sb.Select("id", "title", "description", "date", "location", "event_type", "organizer", "created_at", "updated_at").
		From("events").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get event SQL")
		return nil, fmt.Errorf("failed to build get event query: %w", err)
	}

	event := &models.Event{}
	err = r.db.QueryRow(ctx, sqlStr, args...).Scan(
		&event.ID, &event.Title, &event.Description, &event.Date,
		&event.Location, &event.EventType, &event.Organizer,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		logger.Error().Err(err).Int64("eventID", id).Msg("Error scanning event row")
		return nil, fmt.Errorf("error getting event by ID: %w", err)
	}

	return event, nil
}

// GetAll retrieves all events ordered by date.
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	sqlStr, args, err := r.sb.Select("id", "title", "description", "date", "location", "event_type", "organizer", "created_at", "updated_at").
		From("events").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get all events SQL")
		return nil, fmt.Errorf("failed to build get all events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing get all events query")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		event := &models.Event{}
		if err := rows.Scan(
			&event.ID, &event.Title, &event.Description, &event.Date,
			&event.Location, &event.EventType, &event.Organizer,
			&event.CreatedAt, &event.UpdatedAt,
		); err != nil {
			logger.Error().Err(err).Msg("Error scanning event row during get all")
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating event rows")
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}

// Update replaces the mutable fields of an event.
func (r *EventRepository) Update(ctx context.Context, event *models.Event) error {
	sqlStr, args, err := r.sb.Update("events").
		SetMap(map[string]interface{}{
			"title":       event.Title,
			"description": event.Description,
			"date":        event.Date,
			"location":    event.Location,
			"event_type":  event.EventType,
			"organizer":   event.Organizer,
			"updated_at":  time.Now(),
		}).
		Where(squirrel.Eq{"id": event.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update event SQL")
		return fmt.Errorf("failed to build update event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", event.ID).Msg("Error executing update event query")
		return fmt.Errorf("error updating event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Delete removes an event by ID.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	sqlStr, args, err := r.sb.Delete("events").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building delete event SQL")
		return fmt.Errorf("failed to build delete event query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sqlStr, args...)
	if err != nil {
		logger.Error().Err(err).Int64("eventID", id).Msg("Error executing delete event query")
		return fmt.Errorf("error deleting event: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
