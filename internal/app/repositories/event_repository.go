package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/anantsaxena14/campus-sphere/internal/app/models"
)

// EventRepository handles database operations for campus events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, title, description, event_date, venue, registration_link,
	is_highlighted, event_type, highlight_images`

func scanEvent(row pgx.Row) (*models.Event, error) {
	var event models.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.EventDate,
		&event.Venue,
		&event.RegistrationLink,
		&event.IsHighlighted,
		&event.EventType,
		&event.HighlightImages,
	)
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) queryEvents(ctx context.Context, query string, args ...interface{}) ([]*models.Event, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning event: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}
	return events, nil
}

// GetAll retrieves all events ordered by date
func (r *EventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	query := fmt.Sprintf(`SELECT %s FROM events ORDER BY event_date`, eventColumns)
	return r.queryEvents(ctx, query)
}

// GetUpcoming retrieves events on or after the given time, soonest first
func (r *EventRepository) GetUpcoming(ctx context.Context, after time.Time, limit int) ([]*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE event_date >= $1
		ORDER BY event_date
		LIMIT $2`, eventColumns)
	return r.queryEvents(ctx, query, after, limit)
}

// GetHighlighted retrieves events flagged for the home screen carousel
func (r *EventRepository) GetHighlighted(ctx context.Context) ([]*models.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM events
		WHERE is_highlighted = TRUE
		ORDER BY event_date DESC`, eventColumns)
	return r.queryEvents(ctx, query)
}

// Create inserts a new event
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (int64, error) {
	query := `
		INSERT INTO events (title, description, event_date, venue, registration_link,
		                    is_highlighted, event_type, highlight_images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		event.Title, event.Description, event.EventDate, event.Venue,
		event.RegistrationLink, event.IsHighlighted, event.EventType, event.HighlightImages).
		Scan(&event.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating event: %w", err)
	}
	return event.ID, nil
}

// CountEvents returns the total number of events
func (r *EventRepository) CountEvents(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting events: %w", err)
	}
	return count, nil
}
