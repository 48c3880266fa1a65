package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/gophcal/internal/models"
	"github.com/iudanet/gophcal/internal/month"
	"github.com/iudanet/gophcal/internal/server/storage"
)

// CreateEvent stores a new event
func (s *Storage) CreateEvent(ctx context.Context, event *models.Event) error {
	key, err := month.Of(event.Date)
	if err != nil {
		return fmt.Errorf("failed to derive event month: %w", err)
	}

	query := `
		INSERT INTO events (id, owner_id, title, date, month, time, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		event.ID,
		event.OwnerID,
		event.Title,
		event.Date,
		key.String(),
		event.Time,
		event.CreatedAt.UTC(),
	)

	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}

	return nil
}

// ListEvents returns events of the owner ordered by date and time
func (s *Storage) ListEvents(ctx context.Context, ownerID string, filter storage.EventFilter) ([]models.Event, error) {
	query := `
		SELECT id, owner_id, title, date, time, created_at
		FROM events
		WHERE owner_id = ?
	`
	args := []any{ownerID}

	switch {
	case filter.Month != "":
		query += ` AND month = ?`
		args = append(args, filter.Month)
	case filter.Date != "":
		query += ` AND date = ?`
		args = append(args, filter.Date)
	}
	query += ` ORDER BY date, time, id`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	events := make([]models.Event, 0)

	for rows.Next() {
		var event models.Event
		if err := rows.Scan(
			&event.ID,
			&event.OwnerID,
			&event.Title,
			&event.Date,
			&event.Time,
			&event.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return events, nil
}

// DeleteEvent deletes the event of the owner
func (s *Storage) DeleteEvent(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM events WHERE id = ? AND owner_id = ?`

	result, err := s.db.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrEventNotFound
	}

	return nil
}
