package storage

import (
	"context"
	"errors"

	"github.com/iudanet/gophcal/internal/models"
)

// ErrEventNotFound у владельца нет события с таким id
var ErrEventNotFound = errors.New("event not found")

// EventFilter narrows ListEvents. Month (YYYY-MM-01) and Date (YYYY-MM-DD)
// are mutually exclusive; both empty lists every event of the owner.
type EventFilter struct {
	Month string
	Date  string
}

// EventStorage defines interface for calendar events persistence
type EventStorage interface {
	// CreateEvent stores a new event; ID and CreatedAt are set by the caller
	CreateEvent(ctx context.Context, event *models.Event) error

	// ListEvents returns events of the owner ordered by date and time
	// Returns empty slice if no events found
	ListEvents(ctx context.Context, ownerID string, filter EventFilter) ([]models.Event, error)

	// DeleteEvent deletes the event of the owner
	// Returns ErrEventNotFound if the owner has no event with this id
	DeleteEvent(ctx context.Context, ownerID, id string) error
}
