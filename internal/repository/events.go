package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// ListEvents returns calendar events overlapping the inclusive [start, end]
// date range, ordered by start date.
func (r *Repository) ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error) {
	query := `
		SELECT event_id, date_start, date_end, title_ko, title_en
		FROM public.events
		WHERE date_start <= $2 AND date_end >= $1
		ORDER BY date_start ASC, event_id ASC;
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// AllEvents returns every calendar event. The frontend calendar fetches
// the full set once and filters client-side.
func (r *Repository) AllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT event_id, date_start, date_end, title_ko, title_en
		FROM public.events
		ORDER BY date_start ASC, event_id ASC;
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// GetEvent returns a single event by id, or ErrNotFound.
func (r *Repository) GetEvent(ctx context.Context, eventID int) (models.Event, error) {
	query := `
		SELECT event_id, date_start, date_end, title_ko, title_en
		FROM public.events
		WHERE event_id = $1;
	`

	var event models.Event
	err := r.db.QueryRow(ctx, query, eventID).Scan(
		&event.ID, &event.DateStart, &event.DateEnd, &event.TitleKorean, &event.TitleEnglish,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Event{}, ErrNotFound
		}
		return models.Event{}, fmt.Errorf("failed to get event: %w", err)
	}

	return event, nil
}

// CreateEvent inserts an event and returns its generated id.
func (r *Repository) CreateEvent(ctx context.Context, event models.Event) (int, error) {
	query := `
		INSERT INTO public.events (date_start, date_end, title_ko, title_en)
		VALUES ($1, $2, $3, $4)
		RETURNING event_id;
	`

	var eventID int
	err := r.db.QueryRow(ctx, query, event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish).
		Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to create event: %w", err)
	}

	return eventID, nil
}

// UpdateEvent replaces the fields of an event.
func (r *Repository) UpdateEvent(ctx context.Context, event models.Event) error {
	query := `
		UPDATE public.events
		SET date_start = $1, date_end = $2, title_ko = $3, title_en = $4
		WHERE event_id = $5;
	`

	tag, err := r.db.Exec(ctx, query,
		event.DateStart, event.DateEnd, event.TitleKorean, event.TitleEnglish, event.ID)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteEvent removes an event by id.
func (r *Repository) DeleteEvent(ctx context.Context, eventID int) error {
	query := `DELETE FROM public.events WHERE event_id = $1;`

	tag, err := r.db.Exec(ctx, query, eventID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

func scanEvents(rows pgx.Rows) ([]models.Event, error) {
	var events []models.Event
	for rows.Next() {
		var event models.Event
		err := rows.Scan(
			&event.ID, &event.DateStart, &event.DateEnd, &event.TitleKorean, &event.TitleEnglish,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read row: %w", err)
	}

	return events, nil
}
